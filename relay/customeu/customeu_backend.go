package customeu

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
	"github.com/neko-project/nekopay/util/log"
)

const serviceId = "create_link_service_custom_eu"

// Backend 通过第三方广告创建接口生成支付页
// 该接口的凭据在客户端，生产环境不安全
type Backend struct {
	Endpoint string
	client   *resty.Client
}

func NewBackend() *Backend {
	return &Backend{}
}

func (b *Backend) GetName() string {
	return config.CardBackendCustomEu
}

func (b *Backend) endpoint() string {
	if b.Endpoint != "" {
		return b.Endpoint
	}
	return config.GetCustomEuApiUrl()
}

func (b *Backend) httpClient() *resty.Client {
	if b.client == nil {
		b.client = http_client.GetHttpClient()
	}
	return b.client
}

// BuildAdRequest 组装广告创建请求
func BuildAdRequest(order *mdb.Order) request.CustomEuAdRequest {
	productName := order.Product
	if productName == "" {
		productName = config.GetShopName()
	}
	title := productName
	if order.Plan != "" {
		title = fmt.Sprintf("%s (%s)", productName, order.Plan)
	}
	imageUrl := config.GetCustomEuImageUrl()
	return request.CustomEuAdRequest{
		UserId:         config.GetCustomEuUserId(),
		Id:             serviceId,
		Title:          title,
		Version:        1,
		Price:          order.Total,
		BalanceChecker: "false",
		Billing:        "true",
		MultiAd:        true,
		About:          fmt.Sprintf("%s order: %s", config.GetShopName(), title),
		Name:           config.GetShopName(),
		Address:        order.Email,
		Subdomain:      config.GetCustomEuSubdomain(),
		Language:       config.GetCustomEuLanguage(),
		Logo:           imageUrl,
		Favicon:        imageUrl,
		Color:          config.GetCustomEuColor(),
		Background:     imageUrl,
	}
}

func (b *Backend) CreatePaymentLink(ctx context.Context, order *mdb.Order) (string, error) {
	resp, err := b.httpClient().R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(BuildAdRequest(order)).
		Post(b.endpoint())
	if err != nil {
		return "", fmt.Errorf("createAd request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("createAd API error: %d", resp.StatusCode())
	}

	redirectUrl := relay.ExtractRedirectUrl(resp.Body(), "url", "my", "short")
	if redirectUrl == "" {
		log.Sugar.Warnf("[custom_eu] no url in response: %s", string(resp.Body()))
		return "", constant.RelayNoRedirectUrl
	}
	return redirectUrl, nil
}

func init() {
	relay.RegisterBackend(NewBackend())
}
