package bootstrap

import (
	"github.com/neko-project/nekopay/command"
	"github.com/neko-project/nekopay/config"
	"github.com/neko-project/nekopay/model/dao"
	"github.com/neko-project/nekopay/model/service"
	"github.com/neko-project/nekopay/util/log"
)

// Start 服务启动
func Start() {
	// 配置加载
	config.Init()
	// 日志加载
	log.Init()
	// 槽位存储
	dao.StoreInit()
	// 收款地址检查
	service.CheckWalletAddresses()
	err := command.Execute()
	if err != nil {
		panic(err)
	}
}
