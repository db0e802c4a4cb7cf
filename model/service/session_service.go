package service

import (
	"context"
	"sync"

	"github.com/neko-project/nekopay/config"
	"github.com/neko-project/nekopay/model/mdb"
	"github.com/neko-project/nekopay/model/request"
	"github.com/neko-project/nekopay/util/money"
)

// WalletView 钱包直付区域
type WalletView struct {
	Asset          string
	Amount         string
	FiatEquivalent string
	Address        string
	CopyValue      string
}

// CheckoutView 收银台页面展示的全部状态
type CheckoutView struct {
	Product     string
	Plan        string
	Subtotal    string
	Total       string
	Method      string
	State       MethodState
	Regions     Regions
	Asset       string
	Wallet      WalletView
	Quote       *mdb.CryptoQuote
	RatesStatus string
	Redirecting bool
}

// Session 一次收银台会话
type Session struct {
	mu          sync.Mutex
	summary     *CheckoutSummary
	methods     MethodController
	rates       *RateProvider
	wallets     map[string]string
	redirecting bool
}

func NewSession(summary *CheckoutSummary, rates *RateProvider, wallets map[string]string) *Session {
	if summary == nil {
		summary = AssembleSummary(request.CheckoutQuery{}, nil)
	}
	if rates == nil {
		rates = NewRateProvider(config.GetFallbackPrices())
	}
	if wallets == nil {
		wallets = map[string]string{}
	}
	return &Session{summary: summary, rates: rates, wallets: wallets}
}

// RefreshRates 拉取实时汇率，失败时继续使用兜底价
func (s *Session) RefreshRates(ctx context.Context) bool {
	return s.rates.Refresh(ctx)
}

func (s *Session) SelectMethod(method string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.methods.SelectMethod(method)
}

func (s *Session) SelectAsset(asset string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.methods.SelectAsset(asset)
}

// ApplyCoupon 返回的错误携带提示文案
func (s *Session) ApplyCoupon(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary.ApplyCoupon(code)
}

func (s *Session) Method() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.methods.Method()
}

func (s *Session) Asset() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.methods.Asset()
}

// Summary 摘要副本
func (s *Session) Summary() CheckoutSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.summary
}

func (s *Session) Wallets() map[string]string {
	return s.wallets
}

func (s *Session) SetRedirecting(redirecting bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.redirecting = redirecting
}

func (s *Session) Redirecting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.redirecting
}

// Quote 按当前总额和币种实时计算
func (s *Session) Quote() *mdb.CryptoQuote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CalculateQuote(s.summary.Total, s.methods.ActiveAsset(), s.rates.Table())
}

// View 由当前状态推导展示内容
func (s *Session) View() CheckoutView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := CheckoutView{
		Product:     s.summary.Product,
		Plan:        s.summary.PlanLabel(),
		Subtotal:    s.summary.SubtotalDisplay(),
		Total:       s.summary.TotalDisplay(),
		Method:      s.methods.Method(),
		State:       s.methods.State(),
		Regions:     s.methods.Regions(),
		Asset:       s.methods.Asset(),
		RatesStatus: s.rates.Status(),
		Redirecting: s.redirecting,
	}
	if view.State != MethodCrypto {
		return view
	}

	asset := s.methods.ActiveAsset()
	quote := CalculateQuote(s.summary.Total, asset, s.rates.Table())
	view.Quote = quote
	view.RatesStatus = quote.Status
	if asset == "" {
		view.Wallet = WalletView{
			Amount:         money.Placeholder,
			FiatEquivalent: money.Placeholder,
			Address:        money.Placeholder,
		}
		return view
	}
	address := ResolveWalletAddress(s.wallets, asset)
	view.Wallet = WalletView{
		Asset:          asset,
		Amount:         quote.DisplayString,
		FiatEquivalent: quote.FiatDisplay,
		Address:        address,
		CopyValue:      address,
	}
	return view
}
