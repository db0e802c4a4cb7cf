package service

import (
	"math"
	"testing"

	"github.com/neko-project/nekopay/model/mdb"
	"github.com/neko-project/nekopay/util/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateQuote(t *testing.T) {
	quote := CalculateQuote(10, mdb.AssetUSDT, mdb.RateTable{mdb.AssetUSDT: 1.0})
	require.NotNil(t, quote.CryptoAmount)
	assert.Equal(t, 10.0, *quote.CryptoAmount)
	assert.Equal(t, "10", quote.DisplayString)
	assert.Equal(t, "$10.00", quote.FiatDisplay)
	assert.Equal(t, RateStatusQuoted, quote.Status)
}

func TestCalculateQuote_Trx(t *testing.T) {
	quote := CalculateQuote(9.99, mdb.AssetTRX, mdb.RateTable{mdb.AssetTRX: 0.30})
	assert.Equal(t, "33.3", quote.DisplayString)
}

func TestCalculateQuote_NoAsset(t *testing.T) {
	quote := CalculateQuote(10, "", fallbackTable())
	assert.Nil(t, quote.CryptoAmount)
	assert.Equal(t, money.Placeholder, quote.DisplayString)
	assert.Equal(t, money.Placeholder, quote.FiatDisplay)
	assert.Equal(t, RateStatusSelectCoin, quote.Status)
}

func TestCalculateQuote_UnusablePrice(t *testing.T) {
	tables := map[string]mdb.RateTable{
		"missing":  {mdb.AssetUSDT: 1},
		"zero":     {mdb.AssetTON: 0},
		"negative": {mdb.AssetTON: -1},
		"nan":      {mdb.AssetTON: math.NaN()},
		"inf":      {mdb.AssetTON: math.Inf(1)},
	}
	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			quote := CalculateQuote(12.5, mdb.AssetTON, table)
			assert.Nil(t, quote.CryptoAmount)
			assert.Nil(t, quote.UnitPrice)
			assert.Equal(t, money.Placeholder, quote.DisplayString)
			assert.Equal(t, "$12.50", quote.FiatDisplay)
			assert.Equal(t, RateStatusFallback, quote.Status)
		})
	}
}

func TestCalculateQuote_ZeroTotal(t *testing.T) {
	quote := CalculateQuote(0, mdb.AssetBTC, fallbackTable())
	require.NotNil(t, quote.CryptoAmount)
	assert.Equal(t, money.Placeholder, quote.DisplayString)
}
