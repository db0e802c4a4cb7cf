package task

import (
	"context"
	"time"

	"github.com/golang-module/carbon/v2"
	"github.com/neko-project/nekopay/model/dao"
	"github.com/neko-project/nekopay/model/data"
	"github.com/neko-project/nekopay/model/service"
	"github.com/neko-project/nekopay/util/log"
)

// CleanPendingJob 清理过期的待转账记录
type CleanPendingJob struct {
	Store  dao.SlotStore
	MaxAge time.Duration
}

func NewCleanPendingJob() CleanPendingJob {
	return CleanPendingJob{MaxAge: service.InvoiceExpiresIn * time.Second}
}

// Run 执行清理
func (j CleanPendingJob) Run() {
	j.Clean(context.Background())
}

// Clean 返回是否删除了记录
func (j CleanPendingJob) Clean(ctx context.Context) bool {
	store := j.Store
	if store == nil {
		store = dao.Slots
	}
	pending := data.GetPendingCryptoPayment(ctx, store)
	if pending == nil {
		return false
	}
	created, err := time.Parse(time.RFC3339Nano, pending.CreatedAt)
	if err != nil {
		log.Sugar.Warnf("[清理] 待转账记录时间无法解析: %s", pending.CreatedAt)
		return false
	}
	if carbon.Now().Timestamp()-created.Unix() < int64(j.MaxAge.Seconds()) {
		return false
	}
	if err = data.ClearPendingCryptoPayment(ctx, store); err != nil {
		log.Sugar.Errorf("[清理] 删除待转账记录失败: %v", err)
		return false
	}
	log.Sugar.Infof("[清理] 已删除过期待转账记录 asset=%s created_at=%s", pending.Asset, pending.CreatedAt)
	return true
}
