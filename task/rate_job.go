package task

import (
	"context"

	"github.com/neko-project/nekopay/model/service"
	"github.com/neko-project/nekopay/util/log"
)

// RateRefreshJob 刷新服务端价格表
type RateRefreshJob struct {
	Rates *service.RateProvider
}

func (r RateRefreshJob) Run() {
	rates := r.Rates
	if rates == nil {
		rates = service.ServerRates()
	}
	if !rates.Refresh(context.Background()) {
		log.Sugar.Warn("[汇率] 实时汇率获取失败，继续使用兜底价格")
		return
	}
	log.Sugar.Debugf("[汇率] 已更新，来源 %s", rates.Source())
}
