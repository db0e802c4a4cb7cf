package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/neko-project/nekopay/config"
	"github.com/neko-project/nekopay/model/mdb"
	"github.com/neko-project/nekopay/util/constant"
	"github.com/neko-project/nekopay/util/http_client"
	"github.com/neko-project/nekopay/util/log"
	"github.com/neko-project/nekopay/util/money"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"
)

// 汇率状态文案
const (
	RateStatusUpdated    = "Rates: updated just now"
	RateStatusFallback   = "Rates: using embedded fallback"
	RateStatusSelectCoin = "Rates: select a coin…"
	RateStatusQuoted     = "Rates: live / fallback (USD)"
)

// CoinGecko 使用的币种 id
var coinGeckoIds = map[string]string{
	mdb.AssetUSDT: "tether",
	mdb.AssetTON:  "the-open-network",
	mdb.AssetTRX:  "tron",
	mdb.AssetBTC:  "bitcoin",
	mdb.AssetETH:  "ethereum",
	mdb.AssetLTC:  "litecoin",
}

// RateSource 汇率数据源
type RateSource interface {
	GetName() string
	FetchRates(ctx context.Context) (mdb.RateTable, error)
}

// CryptoCompareSource 主数据源，按币种符号查询
type CryptoCompareSource struct {
	Uri    string
	client *resty.Client
}

func NewCryptoCompareSource(uri string) *CryptoCompareSource {
	return &CryptoCompareSource{Uri: uri, client: http_client.GetNoStoreHttpClient()}
}

func (s *CryptoCompareSource) GetName() string {
	return "cryptocompare"
}

func (s *CryptoCompareSource) FetchRates(ctx context.Context) (mdb.RateTable, error) {
	resp, err := s.client.R().SetContext(ctx).SetQueryParams(map[string]string{
		"fsyms": strings.Join(config.SupportedAssets, ","),
		"tsyms": "USD",
	}).Get(s.Uri)
	if err != nil {
		return nil, constant.RateFetchError(s.GetName(), err)
	}
	return parseRateBody(s.GetName(), resp, func(asset string) string {
		return asset + ".USD"
	})
}

// CoinGeckoSource 备用数据源，按币种 id 查询
type CoinGeckoSource struct {
	Uri    string
	client *resty.Client
}

func NewCoinGeckoSource(uri string) *CoinGeckoSource {
	return &CoinGeckoSource{Uri: uri, client: http_client.GetNoStoreHttpClient()}
}

func (s *CoinGeckoSource) GetName() string {
	return "coingecko"
}

func (s *CoinGeckoSource) FetchRates(ctx context.Context) (mdb.RateTable, error) {
	ids := make([]string, 0, len(config.SupportedAssets))
	for _, asset := range config.SupportedAssets {
		ids = append(ids, coinGeckoIds[asset])
	}
	resp, err := s.client.R().SetContext(ctx).SetQueryParams(map[string]string{
		"ids":           strings.Join(ids, ","),
		"vs_currencies": "usd",
	}).Get(s.Uri)
	if err != nil {
		return nil, constant.RateFetchError(s.GetName(), err)
	}
	return parseRateBody(s.GetName(), resp, func(asset string) string {
		return coinGeckoIds[asset] + ".usd"
	})
}

// parseRateBody USDT 报价缺失视为整个响应不可用
func parseRateBody(source string, resp *resty.Response, path func(asset string) string) (mdb.RateTable, error) {
	if !resp.IsSuccess() {
		return nil, constant.RateFetchError(source, fmt.Errorf("status %d", resp.StatusCode()))
	}
	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return nil, constant.RateFetchError(source, fmt.Errorf("malformed body"))
	}
	if !truthy(gjson.GetBytes(body, path(mdb.AssetUSDT))) {
		return nil, constant.RateFetchError(source, constant.RateSourceInvalid)
	}
	table := make(mdb.RateTable, len(config.SupportedAssets))
	for _, asset := range config.SupportedAssets {
		table[asset] = money.ToNumber(gjson.GetBytes(body, path(asset)).Value())
	}
	return table, nil
}

func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	case gjson.True, gjson.JSON:
		return true
	default:
		return false
	}
}

// UsablePrice 有限正数才能用于报价
func UsablePrice(price float64) bool {
	return !math.IsNaN(price) && !math.IsInf(price, 0) && price > 0
}

// RateProvider 当前会话的价格表：主源 -> 备用源 -> 内置兜底
type RateProvider struct {
	mu       sync.RWMutex
	sources  []RateSource
	fallback mdb.RateTable
	table    mdb.RateTable
	fetched  bool
	updated  bool
	source   string
	sfg      singleflight.Group
}

func NewRateProvider(fallback mdb.RateTable, sources ...RateSource) *RateProvider {
	if fallback == nil {
		fallback = mdb.RateTable{}
	}
	return &RateProvider{
		sources:  sources,
		fallback: fallback.Clone(),
		table:    fallback.Clone(),
	}
}

// NewDefaultRateProvider 按配置创建
func NewDefaultRateProvider() *RateProvider {
	return NewRateProvider(
		config.GetFallbackPrices(),
		NewCryptoCompareSource(config.GetRatePrimaryUri()),
		NewCoinGeckoSource(config.GetRateSecondaryUri()),
	)
}

// Refresh 依次尝试各数据源，全部失败时保留现有价格，返回是否更新成功
func (p *RateProvider) Refresh(ctx context.Context) bool {
	v, _, _ := p.sfg.Do("refresh", func() (interface{}, error) {
		return p.refresh(ctx), nil
	})
	return v.(bool)
}

func (p *RateProvider) refresh(ctx context.Context) bool {
	for _, source := range p.sources {
		table, err := fetchIsolated(ctx, source)
		if err != nil {
			log.Sugar.Warnf("[rates] %s unavailable: %v", source.GetName(), err)
			continue
		}
		p.mu.Lock()
		p.table = p.merge(table)
		p.fetched = true
		p.updated = true
		p.source = source.GetName()
		p.mu.Unlock()
		log.Sugar.Infof("[rates] updated from %s", source.GetName())
		return true
	}

	p.mu.Lock()
	p.fetched = true
	p.updated = false
	p.source = "fallback"
	p.mu.Unlock()
	log.Sugar.Warn("[rates] all sources failed, using embedded fallback")
	return false
}

// fetchIsolated 单个数据源的 panic 不影响下一个
func fetchIsolated(ctx context.Context, source RateSource) (table mdb.RateTable, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = constant.RateFetchError(source.GetName(), fmt.Errorf("panic: %v", r))
		}
	}()
	return source.FetchRates(ctx)
}

// merge 实时价格缺失或无效的币种沿用兜底价
func (p *RateProvider) merge(live mdb.RateTable) mdb.RateTable {
	merged := p.fallback.Clone()
	for asset, price := range live {
		if UsablePrice(price) {
			merged[asset] = price
		}
	}
	return merged
}

// Table 当前价格表副本
func (p *RateProvider) Table() mdb.RateTable {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.table.Clone()
}

// Price 查询单个币种价格，无效时回落到兜底价
func (p *RateProvider) Price(asset string) (float64, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if price, ok := p.table[asset]; ok && UsablePrice(price) {
		return price, true
	}
	if price, ok := p.fallback[asset]; ok && UsablePrice(price) {
		return price, true
	}
	return 0, false
}

// Status 刷新结果文案，首次刷新完成前为空
func (p *RateProvider) Status() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.fetched {
		return ""
	}
	if p.updated {
		return RateStatusUpdated
	}
	return RateStatusFallback
}

// Source 当前价格来源
func (p *RateProvider) Source() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.source == "" {
		return "fallback"
	}
	return p.source
}

var (
	serverRates     *RateProvider
	serverRatesOnce sync.Once
)

// ServerRates 服务端共享的价格表，由定时任务刷新
func ServerRates() *RateProvider {
	serverRatesOnce.Do(func() {
		serverRates = NewDefaultRateProvider()
	})
	return serverRates
}
