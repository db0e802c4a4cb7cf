package request

import (
	"net/url"
	"strings"
)

// CheckoutQuery 收银台页面的查询参数，nil 表示未携带
type CheckoutQuery struct {
	Product  *string
	Plan     *string
	Price    *string
	Currency *string
}

// ParseCheckoutQuery 解析 ?product=&plan=&price=&currency=
func ParseCheckoutQuery(rawQuery string) CheckoutQuery {
	values, err := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if err != nil {
		return CheckoutQuery{}
	}
	return CheckoutQuery{
		Product:  queryValue(values, "product"),
		Plan:     queryValue(values, "plan"),
		Price:    queryValue(values, "price"),
		Currency: queryValue(values, "currency"),
	}
}

func queryValue(values url.Values, key string) *string {
	if _, ok := values[key]; !ok {
		return nil
	}
	value := values.Get(key)
	return &value
}

// SubmitForm 提交表单中用户输入的字段
type SubmitForm struct {
	Email      string
	CardNumber string
}

// InvoiceRelayRequest 浏览器侧发往中继接口的请求
type InvoiceRelayRequest struct {
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	Asset      string  `json:"asset"`
	Product    string  `json:"product"`
	Plan       string  `json:"plan"`
	Email      string  `json:"email"`
	CouponCode *string `json:"coupon_code"`
	Discount   float64 `json:"discount"`
}

// CreateInvoiceRequest 中继接口收到的请求，字段类型宽松
type CreateInvoiceRequest struct {
	Amount     interface{} `json:"amount" validate:"required"`
	Currency   interface{} `json:"currency"`
	Asset      interface{} `json:"asset"`
	Product    interface{} `json:"product"`
	Plan       interface{} `json:"plan"`
	Email      interface{} `json:"email"`
	CouponCode interface{} `json:"coupon_code"`
	Discount   interface{} `json:"discount"`
}

// CustomEuAdRequest 广告创建接口的请求体
type CustomEuAdRequest struct {
	UserId         int64   `json:"userId"`
	Id             string  `json:"id"`
	Title          string  `json:"title"`
	Version        int     `json:"version"`
	Price          float64 `json:"price"`
	BalanceChecker string  `json:"balanceChecker"`
	Billing        string  `json:"billing"`
	MultiAd        bool    `json:"multiAd"`
	About          string  `json:"about"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Subdomain      string  `json:"subdomain"`
	Language       string  `json:"language"`
	Logo           string  `json:"logo"`
	Favicon        string  `json:"favicon"`
	Color          string  `json:"color"`
	Background     string  `json:"background"`
}

// CryptoPayInvoiceRequest Crypto Pay createInvoice 请求体
type CryptoPayInvoiceRequest struct {
	CurrencyType   string `json:"currency_type"`
	Fiat           string `json:"fiat"`
	Amount         string `json:"amount"`
	AcceptedAssets string `json:"accepted_assets"`
	Description    string `json:"description"`
	Payload        string `json:"payload"`
	AllowComments  bool   `json:"allow_comments"`
	AllowAnonymous bool   `json:"allow_anonymous"`
	ExpiresIn      int    `json:"expires_in"`
}

// InvoicePayload 附在发票上的买家信息，服务商原样保存
type InvoicePayload struct {
	Email      interface{} `json:"email"`
	Product    string      `json:"product"`
	Plan       string      `json:"plan"`
	Amount     string      `json:"amount"`
	Fiat       string      `json:"fiat"`
	Asset      string      `json:"asset"`
	CouponCode interface{} `json:"coupon_code"`
	Discount   interface{} `json:"discount"`
}
