package service

import (
	"github.com/neko-project/nekopay/model/mdb"
	"github.com/neko-project/nekopay/util/money"
)

// CalculateQuote 法币总额折算为加密货币数量，总额视为美元
func CalculateQuote(fiatTotal float64, asset string, table mdb.RateTable) *mdb.CryptoQuote {
	quote := &mdb.CryptoQuote{
		Asset:         asset,
		FiatAmount:    fiatTotal,
		DisplayString: money.Placeholder,
		FiatDisplay:   money.Placeholder,
	}
	if asset == "" {
		quote.Status = RateStatusSelectCoin
		return quote
	}

	quote.FiatDisplay = money.FormatMoney(fiatTotal, "USD")
	price, ok := table[asset]
	if !ok || !UsablePrice(price) {
		quote.Status = RateStatusFallback
		return quote
	}

	amount := fiatTotal / price
	quote.UnitPrice = &price
	quote.CryptoAmount = &amount
	quote.DisplayString = money.FormatCrypto(asset, amount)
	quote.Status = RateStatusQuoted
	return quote
}
