package command

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/neko-project/nekopay/config"
	"github.com/neko-project/nekopay/model/dao"
	"github.com/neko-project/nekopay/model/data"
	"github.com/neko-project/nekopay/model/mdb"
	"github.com/neko-project/nekopay/model/request"
	"github.com/neko-project/nekopay/model/service"
	"github.com/neko-project/nekopay/task"
	"github.com/neko-project/nekopay/util/constant"
	"github.com/spf13/cobra"
)

var (
	checkoutQuery   string
	checkoutEmail   string
	checkoutMethod  string
	checkoutAsset   string
	checkoutCard    string
	checkoutCoupon  string
	checkoutOffline bool
	checkoutPayWait bool
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "收银台：计算总额、报价并提交订单",
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer := &ConsoleRenderer{}
		_, err := RunCheckout(cmd.Context(), CheckoutOptions{
			Query:   checkoutQuery,
			Email:   checkoutEmail,
			Method:  checkoutMethod,
			Asset:   checkoutAsset,
			Card:    checkoutCard,
			Coupon:  checkoutCoupon,
			Offline: checkoutOffline,
			PayWait: checkoutPayWait,
		}, renderer)
		if constant.IsKind(err, constant.KindInputValidation) || constant.IsKind(err, constant.KindInvoiceRelay) {
			// 已经提示过用户
			return nil
		}
		return err
	},
}

func init() {
	flags := checkoutCmd.Flags()
	flags.StringVar(&checkoutQuery, "query", "", "页面查询参数，如 ?product=Pro&plan=Monthly&price=9.99&currency=USD")
	flags.StringVar(&checkoutEmail, "email", "", "邮箱")
	flags.StringVar(&checkoutMethod, "method", "", "支付方式: card, crypto")
	flags.StringVar(&checkoutAsset, "asset", "", "加密货币: USDT, TON, TRX, BTC, ETH, LTC")
	flags.StringVar(&checkoutCard, "card", "", "卡号，只保存末四位")
	flags.StringVar(&checkoutCoupon, "coupon", "", "优惠码")
	flags.BoolVar(&checkoutOffline, "offline", false, "不拉取实时汇率")
	flags.BoolVar(&checkoutPayWait, "check-payment", false, "钱包直付后持续检查到账，Ctrl+C 退出")
}

// CheckoutOptions 收银台命令参数
type CheckoutOptions struct {
	Query   string
	Email   string
	Method  string
	Asset   string
	Card    string
	Coupon  string
	Offline bool
	PayWait bool
}

// RunCheckout 组装会话并提交订单
func RunCheckout(ctx context.Context, opts CheckoutOptions, renderer *ConsoleRenderer) (*mdb.Order, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	stored := data.GetCheckoutPayload(ctx, dao.Slots)
	summary := service.AssembleSummary(request.ParseCheckoutQuery(opts.Query), stored)

	var rates *service.RateProvider
	if opts.Offline {
		rates = service.NewRateProvider(config.GetFallbackPrices())
	} else {
		rates = service.NewDefaultRateProvider()
	}
	session := service.NewSession(summary, rates, config.GetWalletAddresses())
	if !opts.Offline {
		session.RefreshRates(ctx)
	}

	if opts.Coupon != "" {
		if err := session.ApplyCoupon(opts.Coupon); err != nil {
			renderer.Alert(constant.UserMessage(err))
		}
	}
	if opts.Method != "" {
		session.SelectMethod(opts.Method)
	}
	if opts.Asset != "" {
		session.SelectAsset(opts.Asset)
	}
	renderer.RenderView(session.View())

	orchestrator := service.NewOrchestrator(session, renderer)
	orchestrator.AfterFunc = func(d time.Duration, f func()) {
		time.Sleep(d)
		f()
	}
	order, err := orchestrator.Submit(ctx, request.SubmitForm{Email: opts.Email, CardNumber: opts.Card})
	if err != nil {
		return order, err
	}

	if opts.PayWait && order.PaymentMethod == mdb.PaymentMethodCrypto {
		waitCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
		loop := &task.PayCheckLoop{
			OnStart: func(label string) { renderer.printf(statusStyle, "%s\n", label) },
			OnTick:  func(status string) { renderer.printf(statusStyle, "\r%s", status) },
		}
		_ = loop.Run(waitCtx)
		renderer.printf(statusStyle, "\n")
	}
	return order, nil
}
