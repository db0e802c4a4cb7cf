package task

import (
	"fmt"

	"github.com/neko-project/nekopay/config"
	"github.com/neko-project/nekopay/model/service"
	"github.com/neko-project/nekopay/util/log"
	"github.com/robfig/cron/v3"
)

func Start() {
	c := cron.New()

	// 汇率刷新
	rateJob := RateRefreshJob{Rates: service.ServerRates()}
	interval := config.GetRateRefreshInterval()
	if _, err := c.AddJob(fmt.Sprintf("@every %ds", interval), rateJob); err != nil {
		log.Sugar.Errorf("[任务] 汇率刷新任务注册失败: %v", err)
	} else {
		log.Sugar.Infof("[任务] 汇率刷新已启动，每%d秒执行", interval)
	}

	// 过期待转账记录清理
	if _, err := c.AddJob("@every 5m", NewCleanPendingJob()); err != nil {
		log.Sugar.Errorf("[任务] 清理任务注册失败: %v", err)
	}

	// 启动时立即拉取一次
	go rateJob.Run()

	c.Start()
	log.Sugar.Info("[任务] 所有定时任务运行中")
}
