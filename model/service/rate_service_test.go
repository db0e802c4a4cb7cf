package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/neko-project/nekopay/model/mdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fallbackTable() mdb.RateTable {
	return mdb.RateTable{
		mdb.AssetUSDT: 0.9987,
		mdb.AssetTON:  1.75,
		mdb.AssetTRX:  0.2992,
		mdb.AssetBTC:  90233.26,
		mdb.AssetETH:  3108.61,
		mdb.AssetLTC:  79.22,
	}
}

func jsonServer(t *testing.T, status int, body string, hits *int32) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		assert.Equal(t, "no-store", r.Header.Get("Cache-Control"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

type stubSource struct {
	name  string
	table mdb.RateTable
	err   error
	panic bool
	calls int32
}

func (s *stubSource) GetName() string { return s.name }

func (s *stubSource) FetchRates(ctx context.Context) (mdb.RateTable, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.panic {
		panic("boom")
	}
	return s.table, s.err
}

func TestCryptoCompareSource(t *testing.T) {
	server := jsonServer(t, http.StatusOK, `{"USDT":{"USD":1.0},"TON":{"USD":2.1},"TRX":{"USD":0.3},"BTC":{"USD":100000},"ETH":{"USD":3500},"LTC":{"USD":"80,5"}}`, nil)
	table, err := NewCryptoCompareSource(server.URL).FetchRates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.0, table[mdb.AssetUSDT])
	assert.Equal(t, 0.3, table[mdb.AssetTRX])
	assert.Equal(t, 80.5, table[mdb.AssetLTC])
}

func TestCryptoCompareSource_MissingSentinel(t *testing.T) {
	server := jsonServer(t, http.StatusOK, `{"TON":{"USD":2.1}}`, nil)
	_, err := NewCryptoCompareSource(server.URL).FetchRates(context.Background())
	assert.Error(t, err)
}

func TestCoinGeckoSource(t *testing.T) {
	server := jsonServer(t, http.StatusOK, `{"tether":{"usd":1.001},"the-open-network":{"usd":2.2},"tron":{"usd":0.31}}`, nil)
	table, err := NewCoinGeckoSource(server.URL).FetchRates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.001, table[mdb.AssetUSDT])
	assert.Equal(t, 2.2, table[mdb.AssetTON])
	assert.Equal(t, 0.0, table[mdb.AssetBTC])
}

func TestCoinGeckoSource_Unusable(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"tether":{"usd":1}}`},
		{name: "malformed", status: http.StatusOK, body: `not json`},
		{name: "zero sentinel", status: http.StatusOK, body: `{"tether":{"usd":0}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := jsonServer(t, tt.status, tt.body, nil)
			_, err := NewCoinGeckoSource(server.URL).FetchRates(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestRateProvider_PrimaryWins(t *testing.T) {
	primary := &stubSource{name: "primary", table: mdb.RateTable{mdb.AssetUSDT: 1, mdb.AssetTON: 2}}
	secondary := &stubSource{name: "secondary", table: mdb.RateTable{mdb.AssetUSDT: 1}}
	provider := NewRateProvider(fallbackTable(), primary, secondary)

	assert.True(t, provider.Refresh(context.Background()))
	assert.Equal(t, RateStatusUpdated, provider.Status())
	assert.Equal(t, "primary", provider.Source())
	assert.EqualValues(t, 0, secondary.calls)
	assert.Equal(t, 2.0, provider.Table()[mdb.AssetTON])
	// 实时源缺失的币种沿用兜底价
	assert.Equal(t, 90233.26, provider.Table()[mdb.AssetBTC])
}

func TestRateProvider_SecondaryAfterPrimaryFails(t *testing.T) {
	primary := &stubSource{name: "primary", err: errors.New("down")}
	secondary := &stubSource{name: "secondary", table: mdb.RateTable{mdb.AssetUSDT: 1, mdb.AssetTRX: 0.31}}
	provider := NewRateProvider(fallbackTable(), primary, secondary)

	assert.True(t, provider.Refresh(context.Background()))
	assert.Equal(t, "secondary", provider.Source())
	price, ok := provider.Price(mdb.AssetTRX)
	assert.True(t, ok)
	assert.Equal(t, 0.31, price)
}

func TestRateProvider_AllFailKeepsFallback(t *testing.T) {
	primary := &stubSource{name: "primary", panic: true}
	secondary := &stubSource{name: "secondary", err: errors.New("down")}
	provider := NewRateProvider(fallbackTable(), primary, secondary)

	assert.Equal(t, "", provider.Status())
	assert.False(t, provider.Refresh(context.Background()))
	assert.Equal(t, RateStatusFallback, provider.Status())
	assert.Equal(t, fallbackTable(), provider.Table())
	assert.EqualValues(t, 1, secondary.calls)
}

func TestRateProvider_PriceFallsBackPerAsset(t *testing.T) {
	provider := NewRateProvider(mdb.RateTable{mdb.AssetTON: 1.75})
	price, ok := provider.Price(mdb.AssetTON)
	assert.True(t, ok)
	assert.Equal(t, 1.75, price)

	_, ok = provider.Price(mdb.AssetBTC)
	assert.False(t, ok)
}

func TestRateProvider_TableIsCopy(t *testing.T) {
	provider := NewRateProvider(fallbackTable())
	table := provider.Table()
	table[mdb.AssetUSDT] = 42
	assert.Equal(t, 0.9987, provider.Table()[mdb.AssetUSDT])
}

func TestRateProvider_HttpSources(t *testing.T) {
	var primaryHits, secondaryHits int32
	primary := jsonServer(t, http.StatusBadGateway, `{}`, &primaryHits)
	secondary := jsonServer(t, http.StatusOK, `{"tether":{"usd":1},"tron":{"usd":0.30}}`, &secondaryHits)
	provider := NewRateProvider(fallbackTable(), NewCryptoCompareSource(primary.URL), NewCoinGeckoSource(secondary.URL))

	assert.True(t, provider.Refresh(context.Background()))
	assert.EqualValues(t, 1, primaryHits)
	assert.EqualValues(t, 1, secondaryHits)
	assert.Equal(t, 0.30, provider.Table()[mdb.AssetTRX])
	assert.Equal(t, 1.75, provider.Table()[mdb.AssetTON])
}
