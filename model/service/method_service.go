package service

import (
	"github.com/neko-project/nekopay/model/mdb"
)

// MethodState 支付方式状态
type MethodState int

const (
	MethodUnselected MethodState = iota
	MethodCard
	MethodCrypto
	MethodOther
)

func (s MethodState) String() string {
	switch s {
	case MethodCard:
		return "Card"
	case MethodCrypto:
		return "Crypto"
	case MethodOther:
		return "Other"
	default:
		return "Unselected"
	}
}

// Regions 各区域是否展示
type Regions struct {
	CardFields bool
	CryptoWrap bool
	CryptoNote bool
	WalletBox  bool
}

// MethodController 支付方式与币种选择
type MethodController struct {
	method string
	asset  string
}

// SelectMethod 切换支付方式，进入加密货币时默认选中 USDT
func (c *MethodController) SelectMethod(method string) {
	c.method = method
	if method == mdb.PaymentMethodCrypto && c.asset == "" {
		c.asset = mdb.AssetUSDT
	}
}

// SelectAsset 切换币种
func (c *MethodController) SelectAsset(asset string) {
	c.asset = asset
}

func (c *MethodController) Method() string {
	return c.method
}

// Asset 币种选择框的值，不论当前支付方式
func (c *MethodController) Asset() string {
	return c.asset
}

// ActiveAsset 仅在加密货币支付时有效
func (c *MethodController) ActiveAsset() string {
	if c.method != mdb.PaymentMethodCrypto {
		return ""
	}
	return c.asset
}

func (c *MethodController) State() MethodState {
	switch c.method {
	case mdb.PaymentMethodNone:
		return MethodUnselected
	case mdb.PaymentMethodCard:
		return MethodCard
	case mdb.PaymentMethodCrypto:
		return MethodCrypto
	default:
		return MethodOther
	}
}

func (c *MethodController) Regions() Regions {
	crypto := c.State() == MethodCrypto
	return Regions{
		CardFields: c.State() == MethodCard,
		CryptoWrap: crypto,
		CryptoNote: crypto,
		WalletBox:  crypto,
	}
}
