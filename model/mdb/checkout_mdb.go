package mdb

// 币种常量
const (
	AssetUSDT = "USDT"
	AssetTON  = "TON"
	AssetTRX  = "TRX"
	AssetBTC  = "BTC"
	AssetETH  = "ETH"
	AssetLTC  = "LTC"
)

// 支付方式
const (
	PaymentMethodNone   = ""
	PaymentMethodCard   = "card"
	PaymentMethodCrypto = "crypto"
)

// 持久化槽位
const (
	SlotCheckoutPayload      = "neko_checkout_v1"
	SlotLastOrder            = "neko_last_order_v1"
	SlotPendingCryptoPayment = "neko_pending_crypto_payment_v1"
)

// 未配置钱包时展示的占位地址
const PlaceholderWalletAddress = "YOUR_WALLET_ADDRESS"

// CheckoutPayload 商品页传递给收银台的套餐选择
type CheckoutPayload struct {
	Product  string  `json:"product"`
	Plan     string  `json:"plan"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Qty      int     `json:"qty"`
	Ts       int64   `json:"ts"` // 创建时间，毫秒
}

// RateTable 每枚币的美元价格
type RateTable map[string]float64

// Clone 复制价格表
func (t RateTable) Clone() RateTable {
	clone := make(RateTable, len(t))
	for asset, price := range t {
		clone[asset] = price
	}
	return clone
}

// Order 一次提交生成的订单
type Order struct {
	OrderId       string  `json:"order_id"`
	Email         string  `json:"email"`
	Product       string  `json:"product"`
	Plan          string  `json:"plan"`
	Subtotal      float64 `json:"subtotal"`
	Discount      float64 `json:"discount"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"payment_method"`
	Asset         string  `json:"asset,omitempty"`
	CouponCode    string  `json:"coupon_code,omitempty"`
	CardLast4     string  `json:"card_last4,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// CryptoQuote 法币总额折算的加密货币报价
type CryptoQuote struct {
	Asset         string   `json:"asset"`
	FiatAmount    float64  `json:"fiat_amount"`
	UnitPrice     *float64 `json:"unit_price"`
	CryptoAmount  *float64 `json:"crypto_amount"`
	DisplayString string   `json:"display"`
	FiatDisplay   string   `json:"fiat_display"`
	Status        string   `json:"status"`
}

// PendingCryptoPayment 等待用户转账的钱包直付记录
type PendingCryptoPayment struct {
	Asset     string   `json:"asset"`
	Address   string   `json:"address"`
	Total     float64  `json:"total"`
	Currency  string   `json:"currency"`
	Amount    *float64 `json:"amount"`
	AmountStr string   `json:"amount_str"`
	CreatedAt string   `json:"created_at"`
}

// CouponState 优惠码状态
type CouponState struct {
	Code     string  `json:"code,omitempty"`
	Discount float64 `json:"discount"`
}
