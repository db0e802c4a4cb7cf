package service

import (
	"testing"

	"github.com/neko-project/nekopay/model/mdb"
	"github.com/stretchr/testify/assert"
)

func TestMethodController(t *testing.T) {
	var c MethodController
	assert.Equal(t, MethodUnselected, c.State())
	assert.Equal(t, Regions{}, c.Regions())

	c.SelectMethod(mdb.PaymentMethodCard)
	assert.Equal(t, MethodCard, c.State())
	assert.Equal(t, Regions{CardFields: true}, c.Regions())
	assert.Equal(t, "", c.ActiveAsset())

	c.SelectMethod(mdb.PaymentMethodCrypto)
	assert.Equal(t, MethodCrypto, c.State())
	assert.Equal(t, mdb.AssetUSDT, c.ActiveAsset())
	assert.Equal(t, Regions{CryptoWrap: true, CryptoNote: true, WalletBox: true}, c.Regions())
}

func TestMethodController_KeepsChosenAsset(t *testing.T) {
	var c MethodController
	c.SelectAsset(mdb.AssetBTC)
	c.SelectMethod(mdb.PaymentMethodCrypto)
	assert.Equal(t, mdb.AssetBTC, c.ActiveAsset())

	c.SelectMethod(mdb.PaymentMethodCard)
	assert.Equal(t, "", c.ActiveAsset())
	assert.Equal(t, mdb.AssetBTC, c.Asset())
}

func TestMethodController_Other(t *testing.T) {
	var c MethodController
	c.SelectMethod("paypal")
	assert.Equal(t, MethodOther, c.State())
	assert.Equal(t, "Other", c.State().String())
	assert.Equal(t, Regions{}, c.Regions())
}
