package cryptobot

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/neko-project/nekopay/config"
	"github.com/neko-project/nekopay/model/mdb"
	"github.com/neko-project/nekopay/model/request"
	"github.com/neko-project/nekopay/relay"
	"github.com/neko-project/nekopay/util/constant"
	"github.com/neko-project/nekopay/util/http_client"
	"github.com/tidwall/gjson"
)

// 跳转地址字段优先级
var redirectPaths = []string{
	"result.bot_invoice_url",
	"result.pay_url",
	"result.mini_app_invoice_url",
	"result.web_app_invoice_url",
	"url",
}

// Backend 通过自建中继接口创建 Crypto Pay 发票
type Backend struct {
	Endpoint string
	client   *resty.Client
}

func NewBackend() *Backend {
	return &Backend{}
}

func (b *Backend) GetName() string {
	return config.CardBackendCryptoBot
}

func (b *Backend) endpoint() string {
	if b.Endpoint != "" {
		return b.Endpoint
	}
	return config.GetInvoiceRelayUrl()
}

func (b *Backend) httpClient() *resty.Client {
	if b.client == nil {
		b.client = http_client.GetHttpClient()
	}
	return b.client
}

func (b *Backend) CreatePaymentLink(ctx context.Context, order *mdb.Order) (string, error) {
	asset := order.Asset
	if asset == "" {
		asset = mdb.AssetUSDT
	}
	var couponCode *string
	if order.CouponCode != "" {
		couponCode = &order.CouponCode
	}
	body := request.InvoiceRelayRequest{
		Amount:     order.Total,
		Currency:   order.Currency,
		Asset:      asset,
		Product:    order.Product,
		Plan:       order.Plan,
		Email:      order.Email,
		CouponCode: couponCode,
		Discount:   order.Discount,
	}

	resp, err := b.httpClient().R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(b.endpoint())
	if err != nil {
		return "", fmt.Errorf("invoice relay request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("invoice relay error: %d %s", resp.StatusCode(), gjson.GetBytes(resp.Body(), "error").String())
	}
	if gjson.GetBytes(resp.Body(), "ok").Type != gjson.True {
		return "", fmt.Errorf("invoice relay rejected: %s", gjson.GetBytes(resp.Body(), "error").String())
	}

	redirectUrl := relay.ExtractRedirectUrl(resp.Body(), redirectPaths...)
	if redirectUrl == "" {
		return "", constant.RelayNoRedirectUrl
	}
	return redirectUrl, nil
}

func init() {
	relay.RegisterBackend(NewBackend())
}
