package service

import (
	"regexp"

	"github.com/neko-project/nekopay/config"
	"github.com/neko-project/nekopay/model/mdb"
	"github.com/neko-project/nekopay/util/log"
)

// 各币种收款地址格式
var walletPatterns = map[string]*regexp.Regexp{
	mdb.AssetUSDT: regexp.MustCompile(`^T[1-9A-HJ-NP-Za-km-z]{33}$`),
	mdb.AssetTRX:  regexp.MustCompile(`^T[1-9A-HJ-NP-Za-km-z]{33}$`),
	mdb.AssetTON:  regexp.MustCompile(`^([EU]Q[A-Za-z0-9_-]{46}|-?\d:[0-9a-fA-F]{64})$`),
	mdb.AssetBTC:  regexp.MustCompile(`^(bc1[02-9ac-hj-np-z]{11,71}|[13][1-9A-HJ-NP-Za-km-z]{25,34})$`),
	mdb.AssetETH:  regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`),
	mdb.AssetLTC:  regexp.MustCompile(`^(ltc1[02-9ac-hj-np-z]{11,71}|[LM3][1-9A-HJ-NP-Za-km-z]{26,33})$`),
}

// ResolveWalletAddress 币种对应的收款地址，未配置时返回占位地址
func ResolveWalletAddress(wallets map[string]string, asset string) string {
	if address, ok := wallets[asset]; ok && address != "" {
		return address
	}
	return mdb.PlaceholderWalletAddress
}

// ValidateWalletAddress 校验地址格式，未知币种不校验
func ValidateWalletAddress(asset, address string) bool {
	pattern, ok := walletPatterns[asset]
	if !ok {
		return true
	}
	return pattern.MatchString(address)
}

// CheckWalletAddresses 启动时检查配置的收款地址，只记录警告
func CheckWalletAddresses() int {
	wallets := config.GetWalletAddresses()
	invalid := 0
	for _, asset := range config.SupportedAssets {
		address, ok := wallets[asset]
		if !ok {
			log.Sugar.Warnf("[wallet] %s address not configured, using placeholder", asset)
			continue
		}
		if !ValidateWalletAddress(asset, address) {
			invalid++
			log.Sugar.Warnf("[wallet] %s address looks invalid: %s", asset, address)
		}
	}
	return invalid
}
