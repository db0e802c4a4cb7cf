package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-module/carbon/v2"
	"github.com/neko-project/nekopay/model/mdb"
	"github.com/neko-project/nekopay/model/request"
	"github.com/neko-project/nekopay/util/constant"
	"github.com/neko-project/nekopay/util/money"
	uuid "github.com/satori/go.uuid"
)

// 订单缺省值
const (
	DefaultProduct  = "Product"
	DefaultCurrency = "USD"
)

var nonDigits = regexp.MustCompile(`\D`)

// CheckoutSummary 收银台订单摘要
type CheckoutSummary struct {
	Product   string
	Plan      string
	Currency  string
	BasePrice float64
	Coupon    mdb.CouponState
	Subtotal  float64
	Total     float64
}

// AssembleSummary 字段优先级：查询参数 -> 已存储的套餐 -> 缺省值
func AssembleSummary(query request.CheckoutQuery, stored *mdb.CheckoutPayload) *CheckoutSummary {
	if stored == nil {
		stored = &mdb.CheckoutPayload{}
	}
	summary := &CheckoutSummary{
		Product:  firstNonEmpty(query.Product, stored.Product, DefaultProduct),
		Plan:     firstNonEmpty(query.Plan, stored.Plan, ""),
		Currency: strings.ToUpper(firstNonEmpty(query.Currency, stored.Currency, DefaultCurrency)),
	}
	if query.Price != nil && *query.Price != "" {
		summary.BasePrice = money.ToNumber(*query.Price)
	} else {
		summary.BasePrice = stored.Price
	}
	summary.Recompute()
	return summary
}

func firstNonEmpty(query *string, stored, def string) string {
	if query != nil && *query != "" {
		return *query
	}
	if stored != "" {
		return stored
	}
	return def
}

// Recompute 小计与总额，负数归零
func (s *CheckoutSummary) Recompute() {
	s.Subtotal = money.Clamp(s.BasePrice)
	s.Total = money.Clamp(s.Subtotal - s.Coupon.Discount)
}

// SetBasePrice 修改单价后重算
func (s *CheckoutSummary) SetBasePrice(price float64) {
	s.BasePrice = price
	s.Recompute()
}

// ApplyCoupon 目前所有优惠码均无效，折扣保持为 0
func (s *CheckoutSummary) ApplyCoupon(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return constant.InputValidationError(constant.MsgCouponRequired)
	}
	s.Coupon = mdb.CouponState{}
	s.Recompute()
	return constant.InputValidationError(constant.MsgCouponInvalid)
}

// Item 商品名与套餐名，无套餐时只有商品名
func (s *CheckoutSummary) Item() string {
	if s.Plan == "" {
		return s.Product
	}
	return s.Product + " — " + s.Plan
}

// PlanLabel "(Plan)"
func (s *CheckoutSummary) PlanLabel() string {
	if s.Plan == "" {
		return ""
	}
	return "(" + s.Plan + ")"
}

// SubtotalDisplay 小计展示
func (s *CheckoutSummary) SubtotalDisplay() string {
	return money.FormatMoney(s.Subtotal, s.Currency)
}

// TotalDisplay 总额展示
func (s *CheckoutSummary) TotalDisplay() string {
	return money.FormatMoney(s.Total, s.Currency)
}

// BuildOrder 提交时生成订单，金额按当前价格重新计算
func BuildOrder(summary *CheckoutSummary, email, method, asset, cardNumber string) *mdb.Order {
	subtotal := money.Clamp(summary.BasePrice)
	order := &mdb.Order{
		OrderId:       GenerateOrderId(),
		Email:         email,
		Product:       summary.Product,
		Plan:          summary.Plan,
		Subtotal:      subtotal,
		Discount:      summary.Coupon.Discount,
		Total:         money.Clamp(subtotal - summary.Coupon.Discount),
		Currency:      summary.Currency,
		PaymentMethod: method,
		CouponCode:    summary.Coupon.Code,
		CreatedAt:     IsoTimestamp(time.Now()),
	}
	if method == mdb.PaymentMethodCrypto {
		order.Asset = asset
	}
	if method == mdb.PaymentMethodCard {
		order.CardLast4 = CardLast4(cardNumber)
	}
	return order
}

// CardLast4 只保留卡号末四位
func CardLast4(cardNumber string) string {
	digits := nonDigits.ReplaceAllString(cardNumber, "")
	if len(digits) > 4 {
		return digits[len(digits)-4:]
	}
	return digits
}

// GenerateOrderId 订单号
func GenerateOrderId() string {
	return fmt.Sprintf("%s-%s", carbon.Now().ToShortDateString(), uuid.NewV4().String())
}

// IsoTimestamp UTC 毫秒精度时间
func IsoTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
