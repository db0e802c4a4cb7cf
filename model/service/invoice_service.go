package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-module/carbon/v2"
	"github.com/gookit/goutil/stdutil"
	"github.com/gookit/validate"
	"github.com/neko-project/nekopay/config"
	"github.com/neko-project/nekopay/model/request"
	"github.com/neko-project/nekopay/notify"
	"github.com/neko-project/nekopay/util/constant"
	"github.com/neko-project/nekopay/util/http_client"
	"github.com/neko-project/nekopay/util/json"
	"github.com/neko-project/nekopay/util/log"
	"github.com/neko-project/nekopay/util/money"
	"github.com/sony/gobreaker/v2"
	"github.com/tidwall/gjson"
)

// InvoiceExpiresIn 发票有效期（秒）
const InvoiceExpiresIn = 3600

// InvoiceService 持有 Crypto Pay 凭证，代浏览器创建发票
type InvoiceService struct {
	Token   string
	ApiUri  string
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker[*resty.Response]
}

func NewInvoiceService(token, apiUri string) *InvoiceService {
	return &InvoiceService{
		Token:  token,
		ApiUri: strings.TrimRight(apiUri, "/"),
		client: http_client.GetHttpClient(),
		breaker: gobreaker.NewCircuitBreaker[*resty.Response](gobreaker.Settings{
			Name:    "crypto-pay",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				log.Sugar.Warnf("[invoice] breaker %s: %s -> %s", name, from, to)
			},
		}),
	}
}

// NewDefaultInvoiceService 按配置创建
func NewDefaultInvoiceService() *InvoiceService {
	return NewInvoiceService(config.GetCryptoPayApiToken(), config.GetCryptoPayApiUri())
}

// CreateInvoice 校验请求并转发到服务商，成功时原样返回服务商响应
func (s *InvoiceService) CreateInvoice(ctx context.Context, body []byte) ([]byte, error) {
	if s.Token == "" {
		return nil, constant.ConfigurationError(constant.CryptoPayTokenMissing)
	}

	req := new(request.CreateInvoiceRequest)
	if err := json.Cjson.Unmarshal(body, req); err != nil {
		// 请求体无法解析时按空对象处理
		req = new(request.CreateInvoiceRequest)
	}
	if v := validate.Struct(req); !v.Validate() {
		return nil, constant.InvoiceAmountInvalid
	}
	amount, ok := money.ParseFloat(scalarString(req.Amount))
	if !ok || amount <= 0 {
		return nil, constant.InvoiceAmountInvalid
	}

	invoiceReq, err := BuildCryptoPayInvoice(req, amount)
	if err != nil {
		return nil, err
	}
	payload, err := json.Cjson.Marshal(invoiceReq)
	if err != nil {
		return nil, err
	}

	resp, err := s.breaker.Execute(func() (*resty.Response, error) {
		return s.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetHeader("Crypto-Pay-API-Token", s.Token).
			SetBody(payload).
			Post(s.ApiUri + "/api/createInvoice")
	})
	if err != nil {
		log.Sugar.Errorf("[invoice] crypto pay unreachable: %v", err)
		return nil, &constant.UpstreamError{Reason: constant.CodeApiError, Err: err}
	}

	result := resp.Body()
	if !gjson.ValidBytes(result) {
		log.Sugar.Errorf("[invoice] crypto pay returned malformed body, status=%d", resp.StatusCode())
		return nil, &constant.UpstreamError{Reason: constant.CodeApiError}
	}
	if gjson.GetBytes(result, "ok").Type != gjson.True {
		var raw interface{}
		_ = json.Cjson.Unmarshal(result, &raw)
		reason := interface{}(constant.CodeApiError)
		if errField := gjson.GetBytes(result, "error"); truthy(errField) {
			reason = errField.Value()
		}
		log.Sugar.Warnf("[invoice] crypto pay rejected invoice: %s", string(result))
		return nil, &constant.UpstreamError{Reason: reason, Raw: raw}
	}

	s.notifyCreated(invoiceReq, result)
	return result, nil
}

// BuildCryptoPayInvoice 组装 createInvoice 请求，金额保留 2 位小数
func BuildCryptoPayInvoice(req *request.CreateInvoiceRequest, amount float64) (*request.CryptoPayInvoiceRequest, error) {
	fiat := strings.ToUpper(looseField(req.Currency, "USD"))
	asset := strings.ToUpper(looseField(req.Asset, "USDT"))
	product := looseField(req.Product, "Product")
	plan := looseField(req.Plan, "")
	amountStr := money.ToFixed(amount, 2)

	meta := &request.InvoicePayload{
		Email:      orDefault(req.Email, nil),
		Product:    product,
		Plan:       plan,
		Amount:     amountStr,
		Fiat:       fiat,
		Asset:      asset,
		CouponCode: orDefault(req.CouponCode, nil),
		Discount:   orDefault(req.Discount, 0),
	}
	metaJson, err := json.Cjson.MarshalToString(meta)
	if err != nil {
		return nil, fmt.Errorf("invoice payload: %w", err)
	}

	description := product
	if plan != "" {
		description = product + " — " + plan
	}
	return &request.CryptoPayInvoiceRequest{
		CurrencyType:   "fiat",
		Fiat:           fiat,
		Amount:         amountStr,
		AcceptedAssets: asset,
		Description:    description,
		Payload:        metaJson,
		AllowComments:  false,
		AllowAnonymous: true,
		ExpiresIn:      InvoiceExpiresIn,
	}, nil
}

func (s *InvoiceService) notifyCreated(req *request.CryptoPayInvoiceRequest, result []byte) {
	invoiceId := gjson.GetBytes(result, "result.invoice_id").String()
	payUrl := relayUrl(result)
	log.Sugar.Infof("[invoice] created invoice_id=%s amount=%s %s", invoiceId, req.Amount, req.Fiat)
	msgTpl := `【发票创建通知】

发票号：%s
商品：%s
金额：%s %s
支付币种：%s
支付链接：%s

过期时间：%s`
	notify.SendToBot(fmt.Sprintf(msgTpl,
		invoiceId,
		req.Description,
		req.Amount,
		req.Fiat,
		req.AcceptedAssets,
		payUrl,
		carbon.Now().AddSeconds(req.ExpiresIn).ToDateTimeString()))
}

func relayUrl(result []byte) string {
	for _, path := range []string{"result.bot_invoice_url", "result.pay_url", "result.mini_app_invoice_url", "result.web_app_invoice_url"} {
		if url := gjson.GetBytes(result, path).String(); url != "" {
			return url
		}
	}
	return ""
}

// isFalsy nil、false、0 与空串视为未填写
func isFalsy(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return true
	case bool:
		return !value
	case float64:
		return value == 0
	case string:
		return value == ""
	default:
		return false
	}
}

func orDefault(v interface{}, def interface{}) interface{} {
	if isFalsy(v) {
		return def
	}
	return v
}

func looseField(v interface{}, def string) string {
	if isFalsy(v) {
		return def
	}
	return scalarString(v)
}

// scalarString 标量按字面值转换，对象和数组按其 Go 表示
func scalarString(v interface{}) string {
	switch v.(type) {
	case string, float64, bool:
		return stdutil.ToString(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
