package data

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-module/carbon/v2"
	"github.com/neko-project/nekopay/model/dao"
	"github.com/neko-project/nekopay/model/mdb"
	"github.com/neko-project/nekopay/util/constant"
	"github.com/neko-project/nekopay/util/json"
	"github.com/neko-project/nekopay/util/log"
	"github.com/neko-project/nekopay/util/money"
)

// BuildPayloadFromPlan 商品页选中套餐后生成的交接数据
func BuildPayloadFromPlan(product, plan string, price interface{}, currency string) *mdb.CheckoutPayload {
	if product == "" {
		product = "Product"
	}
	if currency == "" {
		currency = "USD"
	}
	return &mdb.CheckoutPayload{
		Product:  product,
		Plan:     plan,
		Price:    money.ToNumber(price),
		Currency: strings.ToUpper(currency),
		Qty:      1,
		Ts:       carbon.Now().TimestampWithMillisecond(),
	}
}

// SetCheckoutPayload 写入套餐交接槽位，失败时返回错误，调用方可忽略
func SetCheckoutPayload(ctx context.Context, store dao.SlotStore, payload *mdb.CheckoutPayload) error {
	return setSlot(ctx, store, mdb.SlotCheckoutPayload, payload)
}

// GetCheckoutPayload 读取套餐交接槽位，不存在或损坏时返回 nil
func GetCheckoutPayload(ctx context.Context, store dao.SlotStore) *mdb.CheckoutPayload {
	raw, ok := getSlotObject(ctx, store, mdb.SlotCheckoutPayload)
	if !ok {
		return nil
	}
	return &mdb.CheckoutPayload{
		Product:  looseString(raw["product"]),
		Plan:     looseString(raw["plan"]),
		Price:    money.ToNumber(raw["price"]),
		Currency: looseString(raw["currency"]),
		Qty:      int(money.ToNumber(raw["qty"])),
		Ts:       int64(money.ToNumber(raw["ts"])),
	}
}

// SaveLastOrder 保存最近一次提交的订单
func SaveLastOrder(ctx context.Context, store dao.SlotStore, order *mdb.Order) error {
	return setSlot(ctx, store, mdb.SlotLastOrder, order)
}

// GetLastOrder 读取最近一次提交的订单
func GetLastOrder(ctx context.Context, store dao.SlotStore) *mdb.Order {
	order := new(mdb.Order)
	if !getSlot(ctx, store, mdb.SlotLastOrder, order) {
		return nil
	}
	return order
}

// SavePendingCryptoPayment 保存待转账记录
func SavePendingCryptoPayment(ctx context.Context, store dao.SlotStore, payment *mdb.PendingCryptoPayment) error {
	return setSlot(ctx, store, mdb.SlotPendingCryptoPayment, payment)
}

// GetPendingCryptoPayment 读取待转账记录
func GetPendingCryptoPayment(ctx context.Context, store dao.SlotStore) *mdb.PendingCryptoPayment {
	payment := new(mdb.PendingCryptoPayment)
	if !getSlot(ctx, store, mdb.SlotPendingCryptoPayment, payment) {
		return nil
	}
	return payment
}

func setSlot(ctx context.Context, store dao.SlotStore, key string, value interface{}) error {
	if store == nil {
		return constant.StorageError(key, constant.SlotStoreNotReady)
	}
	payload, err := json.Cjson.Marshal(value)
	if err != nil {
		return fmt.Errorf("slot %s: marshal failed: %w", key, err)
	}
	if err = store.Set(ctx, key, string(payload)); err != nil {
		log.Sugar.Debugf("[slot] write %s failed: %v", key, err)
		return constant.StorageError(key, err)
	}
	return nil
}

func getSlot(ctx context.Context, store dao.SlotStore, key string, dst interface{}) bool {
	if store == nil {
		return false
	}
	raw, err := store.Get(ctx, key)
	if err != nil || raw == "" {
		return false
	}
	if err = json.Cjson.Unmarshal([]byte(raw), dst); err != nil {
		log.Sugar.Debugf("[slot] read %s failed: %v", key, err)
		return false
	}
	return true
}

// getSlotObject 读取任意 JSON 对象，字段类型不做约束
func getSlotObject(ctx context.Context, store dao.SlotStore, key string) (map[string]interface{}, bool) {
	var raw map[string]interface{}
	if !getSlot(ctx, store, key, &raw) || raw == nil {
		return nil, false
	}
	return raw, true
}

func looseString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		if !s {
			return ""
		}
		return "true"
	case float64:
		if s == 0 {
			return ""
		}
		return money.TrimZeros(fmt.Sprint(s))
	default:
		return fmt.Sprint(v)
	}
}

// ClearPendingCryptoPayment 删除待转账记录
func ClearPendingCryptoPayment(ctx context.Context, store dao.SlotStore) error {
	if store == nil {
		return constant.StorageError(mdb.SlotPendingCryptoPayment, constant.SlotStoreNotReady)
	}
	return store.Del(ctx, mdb.SlotPendingCryptoPayment)
}
