package service

import (
	"context"
	"strings"
	"time"

	"github.com/neko-project/nekopay/config"
	"github.com/neko-project/nekopay/model/dao"
	"github.com/neko-project/nekopay/model/data"
	"github.com/neko-project/nekopay/model/mdb"
	"github.com/neko-project/nekopay/model/request"
	"github.com/neko-project/nekopay/relay"
	"github.com/neko-project/nekopay/util/constant"
	"github.com/neko-project/nekopay/util/log"
	"github.com/neko-project/nekopay/util/money"
)

// RedirectDetails 跳转遮罩展示的内容
type RedirectDetails struct {
	Item   string
	Total  string
	Amount string
	Asset  string
}

// SuccessView 下单成功弹窗
type SuccessView struct {
	Title       string
	Description string
	Email       string
	Item        string
	Total       string
	Method      string
}

// Renderer 页面渲染层
type Renderer interface {
	ShowRedirectOverlay(details RedirectDetails)
	HideRedirectOverlay()
	Alert(message string)
	Navigate(url string)
	ShowSuccess(view SuccessView)
}

// Orchestrator 提交订单：校验、保存、按支付方式跳转
type Orchestrator struct {
	Session          *Session
	Store            dao.SlotStore
	Backend          relay.CardBackend
	Renderer         Renderer
	CryptoPaymentUrl string
	RedirectDelay    time.Duration
	AfterFunc        func(d time.Duration, f func())
}

// NewOrchestrator 按配置创建，银行卡后端取 card_backend
func NewOrchestrator(session *Session, renderer Renderer) *Orchestrator {
	return &Orchestrator{
		Session:          session,
		Store:            dao.Slots,
		Backend:          relay.GetBackend(config.GetCardBackend()),
		Renderer:         renderer,
		CryptoPaymentUrl: config.GetCryptoPaymentUrl(),
		RedirectDelay:    config.GetRedirectDelay(),
	}
}

// Submit 提交订单，校验失败或银行卡中继失败时返回错误
func (o *Orchestrator) Submit(ctx context.Context, form request.SubmitForm) (*mdb.Order, error) {
	email := strings.TrimSpace(form.Email)
	if email == "" {
		return nil, o.reject(constant.MsgEmailRequired)
	}
	method := o.Session.Method()
	if method == mdb.PaymentMethodNone {
		return nil, o.reject(constant.MsgMethodRequired)
	}
	asset := o.Session.Asset()
	if method == mdb.PaymentMethodCrypto && asset == "" {
		return nil, o.reject(constant.MsgAssetRequired)
	}

	summary := o.Session.Summary()
	order := BuildOrder(&summary, email, method, asset, form.CardNumber)
	if err := data.SaveLastOrder(ctx, o.Store, order); err != nil {
		log.Sugar.Debugf("[submit] last order not saved: %v", err)
	}

	switch method {
	case mdb.PaymentMethodCrypto:
		o.submitCrypto(ctx, &summary, order)
		return order, nil
	case mdb.PaymentMethodCard:
		return order, o.submitCard(ctx, &summary, order)
	default:
		o.Renderer.ShowSuccess(BuildSuccessView(order))
		return order, nil
	}
}

func (o *Orchestrator) reject(message string) error {
	o.Renderer.Alert(message)
	return constant.InputValidationError(message)
}

// submitCrypto 钱包直付，不发起网络请求
func (o *Orchestrator) submitCrypto(ctx context.Context, summary *CheckoutSummary, order *mdb.Order) {
	quote := o.Session.Quote()
	pending := &mdb.PendingCryptoPayment{
		Asset:     order.Asset,
		Address:   ResolveWalletAddress(o.Session.Wallets(), order.Asset),
		Total:     summary.Total,
		Currency:  summary.Currency,
		Amount:    quote.CryptoAmount,
		AmountStr: quote.DisplayString,
		CreatedAt: order.CreatedAt,
	}
	if err := data.SavePendingCryptoPayment(ctx, o.Store, pending); err != nil {
		log.Sugar.Debugf("[submit] pending payment not saved: %v", err)
	}

	o.Session.SetRedirecting(true)
	o.Renderer.ShowRedirectOverlay(RedirectDetails{
		Item:   summary.Item(),
		Total:  summary.TotalDisplay(),
		Amount: quote.DisplayString,
		Asset:  order.Asset,
	})

	target := o.CryptoPaymentUrl
	after := o.AfterFunc
	if after == nil {
		after = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	after(o.RedirectDelay, func() {
		o.Renderer.Navigate(target)
	})
}

// submitCard 银行卡支付，失败时撤销跳转状态并提示用户
func (o *Orchestrator) submitCard(ctx context.Context, summary *CheckoutSummary, order *mdb.Order) error {
	o.Session.SetRedirecting(true)
	o.Renderer.ShowRedirectOverlay(RedirectDetails{
		Item:   summary.Item(),
		Total:  summary.TotalDisplay(),
		Amount: summary.TotalDisplay(),
		Asset:  "Card",
	})

	url, err := o.createPaymentLink(ctx, order)
	if err != nil {
		log.Sugar.Errorf("[submit] card payment link failed: %v", err)
		o.Renderer.HideRedirectOverlay()
		o.Session.SetRedirecting(false)
		o.Renderer.Alert(constant.MsgPaymentLinkFailed)
		return constant.InvoiceRelayError(err)
	}
	o.Renderer.Navigate(url)
	return nil
}

func (o *Orchestrator) createPaymentLink(ctx context.Context, order *mdb.Order) (string, error) {
	if o.Backend == nil {
		return "", constant.RelayBackendNotFound
	}
	url, err := o.Backend.CreatePaymentLink(ctx, order)
	if err != nil {
		return "", err
	}
	if url == "" {
		return "", constant.RelayNoRedirectUrl
	}
	return url, nil
}

// BuildSuccessView 成功弹窗文案
func BuildSuccessView(order *mdb.Order) SuccessView {
	view := SuccessView{
		Email: order.Email,
		Item:  order.Product,
		Total: money.FormatMoney(order.Total, order.Currency),
	}
	if order.Plan != "" {
		view.Item += " — " + order.Plan
	}
	switch order.PaymentMethod {
	case mdb.PaymentMethodCrypto:
		view.Method = "Crypto"
		if order.Asset != "" {
			view.Method += " (" + order.Asset + ")"
		}
		view.Title = "Complete payment"
		view.Description = "Send the exact amount to the wallet address shown. After sending, click Check payment."
	case mdb.PaymentMethodCard:
		view.Method = "Card"
		view.Title = "Order created"
		view.Description = "Card checkout is simulated on the static version. Connect your payment provider later if needed."
	default:
		view.Method = order.PaymentMethod
		view.Title = "Order created"
		view.Description = "Your order details were saved locally."
	}
	return view
}
