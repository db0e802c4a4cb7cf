package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/neko-project/nekopay/config"
	"github.com/neko-project/nekopay/model/mdb"
	"github.com/neko-project/nekopay/model/request"
	"github.com/neko-project/nekopay/model/service"
	"github.com/neko-project/nekopay/util/json"
	"github.com/neko-project/nekopay/util/log"
	"github.com/neko-project/nekopay/util/money"
	"github.com/tidwall/gjson"

	tb "gopkg.in/telebot.v3"
)

// 临时存储用户输入的发票金额（使用sync.Map保证并发安全）
var userInvoiceAmountCache sync.Map

// OnCallbackHandle 统一的回调处理器
func OnCallbackHandle(c tb.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	btnData := callback.Data
	log.Sugar.Infof("[Telegram] 收到回调，数据=%s", btnData)

	// 先响应回调，避免超时
	c.Respond()

	parts := strings.Split(btnData, ":")
	action := parts[0]

	switch action {
	case "show_rates":
		return ShowRates(c)

	case "show_wallets":
		return ShowWallets(c)

	case "create_invoice":
		return RequestInvoiceAmount(c)

	case "invoice_asset":
		if len(parts) < 2 {
			return c.Send("操作失败：缺少币种")
		}
		return CreateInvoiceLink(c, parts[1])

	case "back_to_menu":
		return ShowMenu(c)

	default:
		return c.Send(fmt.Sprintf("未知操作: %s", action))
	}
}

// OnTextMessageHandle 处理文本消息
func OnTextMessageHandle(c tb.Context) error {
	if c.Message().ReplyTo == nil {
		return nil
	}

	// 处理发票金额输入
	if strings.Contains(c.Message().ReplyTo.Text, "请输入发票金额") {
		amountStr := strings.TrimSpace(c.Message().Text)
		amount, err := strconv.ParseFloat(strings.Replace(amountStr, ",", ".", 1), 64)
		if err != nil {
			return c.Send("金额格式不正确，请输入数字\n例如：9.99")
		}
		if amount <= 0 {
			return c.Send("金额必须大于0")
		}
		userInvoiceAmountCache.Store(c.Sender().ID, amount)
		return ShowAssetMenu(c, amount)
	}

	return nil
}

// ShowMenu 主菜单
func ShowMenu(c tb.Context) error {
	buttons := [][]tb.InlineButton{
		{{Text: "查看汇率", Data: "show_rates"}},
		{{Text: "收款地址", Data: "show_wallets"}},
		{{Text: "创建发票", Data: "create_invoice"}},
	}
	message := fmt.Sprintf("【%s 收银台】\n\n银行卡支付后端：%s", config.GetShopName(), config.GetCardBackend())
	return c.Send(message, &tb.SendOptions{
		ReplyMarkup: &tb.ReplyMarkup{
			InlineKeyboard: buttons,
		},
	})
}

// ShowRates 显示服务端价格表
func ShowRates(c tb.Context) error {
	return c.Send(FormatRates(service.ServerRates()))
}

// FormatRates 价格表文本
func FormatRates(rates *service.RateProvider) string {
	status := rates.Status()
	if status == "" {
		status = service.RateStatusFallback
	}
	table := rates.Table()
	message := "【当前汇率】\n\n"
	for _, asset := range config.SupportedAssets {
		price, ok := table[asset]
		if !ok || !service.UsablePrice(price) {
			message += fmt.Sprintf("%s：%s\n", asset, money.Placeholder)
			continue
		}
		message += fmt.Sprintf("%s：%s\n", asset, money.FormatMoney(price, "USD"))
	}
	message += fmt.Sprintf("\n来源：%s\n%s", rates.Source(), status)
	return message
}

// ShowWallets 显示配置的收款地址
func ShowWallets(c tb.Context) error {
	return c.Send(FormatWallets(config.GetWalletAddresses()))
}

// FormatWallets 收款地址文本
func FormatWallets(wallets map[string]string) string {
	message := "【收款地址】\n\n"
	for _, asset := range config.SupportedAssets {
		address := service.ResolveWalletAddress(wallets, asset)
		status := "有效"
		if address == mdb.PlaceholderWalletAddress {
			status = "未配置"
		} else if !service.ValidateWalletAddress(asset, address) {
			status = "格式错误"
		}
		message += fmt.Sprintf("%s（%s）\n%s\n\n", asset, status, address)
	}
	return strings.TrimRight(message, "\n")
}

// RequestInvoiceAmount 请求输入发票金额
func RequestInvoiceAmount(c tb.Context) error {
	message := "【创建发票 - 步骤 1/2】\n\n请输入发票金额（单位：USD）\n例如：9.99"
	return c.Send(message, &tb.SendOptions{
		ReplyMarkup: &tb.ReplyMarkup{
			ForceReply: true,
		},
	})
}

// ShowAssetMenu 选择收款币种
func ShowAssetMenu(c tb.Context, amount float64) error {
	var buttons [][]tb.InlineButton
	for _, asset := range config.SupportedAssets {
		buttons = append(buttons, []tb.InlineButton{{Text: asset, Data: "invoice_asset:" + asset}})
	}
	buttons = append(buttons, []tb.InlineButton{{Text: "返回", Data: "back_to_menu"}})

	message := fmt.Sprintf("【创建发票 - 步骤 2/2】\n\n金额：%s\n请选择收款币种：", money.FormatMoney(amount, "USD"))
	return c.Send(message, &tb.SendOptions{
		ReplyMarkup: &tb.ReplyMarkup{
			InlineKeyboard: buttons,
		},
	})
}

// CreateInvoiceLink 通过中继服务创建 Crypto Pay 发票
func CreateInvoiceLink(c tb.Context, asset string) error {
	amountVal, ok := userInvoiceAmountCache.Load(c.Sender().ID)
	if !ok {
		return c.Send("金额信息丢失，请重新创建发票")
	}
	userInvoiceAmountCache.Delete(c.Sender().ID)
	amount := amountVal.(float64)

	body, err := json.Cjson.Marshal(&request.InvoiceRelayRequest{
		Amount:   amount,
		Currency: "USD",
		Asset:    asset,
		Product:  config.GetShopName(),
		Plan:     "Telegram",
	})
	if err != nil {
		return c.Send(fmt.Sprintf("创建失败：%s", err.Error()))
	}

	result, err := service.NewDefaultInvoiceService().CreateInvoice(context.Background(), body)
	if err != nil {
		log.Sugar.Errorf("[Telegram] 创建发票失败: %v", err)
		return c.Send(fmt.Sprintf("创建失败：%s", err.Error()))
	}

	invoice := gjson.ParseBytes(result).Get("result")
	message := "【发票创建成功】\n\n"
	message += fmt.Sprintf("发票号：%s\n", invoice.Get("invoice_id").String())
	message += fmt.Sprintf("金额：%s\n", money.FormatMoney(amount, "USD"))
	message += fmt.Sprintf("币种：%s\n\n", asset)
	message += fmt.Sprintf("支付链接：\n%s", invoice.Get("bot_invoice_url").String())
	return c.Send(message)
}
