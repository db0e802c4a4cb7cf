package telegram

import (
	"time"

	"github.com/neko-project/nekopay/config"
	"github.com/neko-project/nekopay/notify"
	"github.com/neko-project/nekopay/util/log"
	tb "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/middleware"
)

const (
	START_CMD  = "/start"
	RATES_CMD  = "/rates"
	WALLET_CMD = "/wallets"
)

// Cmds 机器人命令菜单
var Cmds = []tb.Command{
	{Text: START_CMD, Description: "收银台菜单"},
	{Text: RATES_CMD, Description: "查看当前汇率"},
	{Text: WALLET_CMD, Description: "查看收款地址"},
}

var bots *tb.Bot

// BotStart 机器人启动
func BotStart() {
	if config.TgBotToken == "" {
		log.Sugar.Info("[Telegram] 未配置 tg_bot_token，跳过机器人启动")
		return
	}
	var err error
	botSetting := tb.Settings{
		Token:  config.TgBotToken,
		Poller: &tb.LongPoller{Timeout: 10 * time.Second},
	}
	if config.TgProxy != "" {
		botSetting.URL = config.TgProxy
	}
	bots, err = tb.NewBot(botSetting)
	if err != nil {
		log.Sugar.Error(err.Error())
		return
	}
	err = bots.SetCommands(Cmds)
	if err != nil {
		log.Sugar.Error(err.Error())
		return
	}
	// 设置通知bot实例
	notify.SetBot(bots)
	RegisterHandle()
	log.Sugar.Info("[Telegram] 机器人启动成功")
	bots.Start()
}

// RegisterHandle 注册处理器
func RegisterHandle() {
	adminOnly := bots.Group()
	adminOnly.Use(middleware.Whitelist(config.TgManage))

	// 注册命令处理器
	adminOnly.Handle(START_CMD, ShowMenu)
	adminOnly.Handle(RATES_CMD, ShowRates)
	adminOnly.Handle(WALLET_CMD, ShowWallets)

	// 注册文本消息处理器
	adminOnly.Handle(tb.OnText, OnTextMessageHandle)

	// 注册回调处理器
	adminOnly.Handle(tb.OnCallback, OnCallbackHandle)
}
