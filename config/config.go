package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// 支持的币种，顺序即下拉框顺序
var SupportedAssets = []string{"USDT", "TON", "TRX", "BTC", "ETH", "LTC"}

// 内置兜底价格（USD / 1 枚），实时汇率获取失败时使用
var embeddedFallbackPrices = map[string]float64{
	"USDT": 0.9987,
	"TON":  1.75,
	"TRX":  0.2992,
	"BTC":  90233.26,
	"ETH":  3108.61,
	"LTC":  79.22,
}

const (
	CardBackendCryptoBot = "cryptobot"
	CardBackendCustomEu  = "custom_eu"
)

const (
	StoreDriverMemory = "memory"
	StoreDriverMysql  = "mysql"
	StoreDriverRedis  = "redis"
)

var (
	AppDebug      bool
	LogDebug      bool // 日志是否输出到控制台
	MysqlHost     string
	MysqlPort     string
	MysqlUser     string
	MysqlPassword string
	MysqlDatabase string
	RuntimePath   string
	LogSavePath   string
	Proxy         string
	TgBotToken    string
	TgProxy       string
	TgManage      int64
)

func Init() {
	viper.AddConfigPath("./")
	viper.SetConfigFile(".env")
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
	gwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	AppDebug = viper.GetBool("app_debug")
	LogDebug = viper.GetBool("log_debug")
	RuntimePath = fmt.Sprintf(
		"%s%s",
		gwd,
		viper.GetString("runtime_root_path"))
	LogSavePath = fmt.Sprintf(
		"%s%s",
		RuntimePath,
		viper.GetString("log_save_path"))
	Proxy = viper.GetString("http_proxy")
	// MySQL 槽位存储配置
	MysqlHost = viper.GetString("mysql_host")
	if MysqlHost == "" {
		MysqlHost = "127.0.0.1"
	}
	MysqlPort = viper.GetString("mysql_port")
	if MysqlPort == "" {
		MysqlPort = "3306"
	}
	MysqlUser = viper.GetString("mysql_user")
	if MysqlUser == "" {
		MysqlUser = "root"
	}
	MysqlPassword = viper.GetString("mysql_password")
	MysqlDatabase = viper.GetString("mysql_database")
	if MysqlDatabase == "" {
		MysqlDatabase = "nekopay"
	}
	TgBotToken = viper.GetString("tg_bot_token")
	TgProxy = viper.GetString("tg_proxy")
	TgManage = viper.GetInt64("tg_manage")
}

func GetAppVersion() string {
	return "0.1.0"
}

func GetAppName() string {
	appName := viper.GetString("app_name")
	if appName == "" {
		return "nekopay"
	}
	return appName
}

// GetHttpListen 中继服务监听地址
func GetHttpListen() string {
	listen := viper.GetString("http_listen")
	if listen == "" {
		return ":8000"
	}
	return listen
}

// GetStoreDriver 槽位存储驱动: memory, mysql, redis
func GetStoreDriver() string {
	driver := strings.ToLower(viper.GetString("store_driver"))
	switch driver {
	case StoreDriverMysql, StoreDriverRedis:
		return driver
	default:
		return StoreDriverMemory
	}
}

func GetRedisAddr() string {
	addr := viper.GetString("redis_addr")
	if addr == "" {
		return "127.0.0.1:6379"
	}
	return addr
}

func GetRedisPassword() string {
	return viper.GetString("redis_password")
}

func GetRedisDb() int {
	return viper.GetInt("redis_db")
}

// GetWalletAddresses 收款钱包地址，key 为币种
func GetWalletAddresses() map[string]string {
	wallets := make(map[string]string, len(SupportedAssets))
	for _, asset := range SupportedAssets {
		address := strings.TrimSpace(viper.GetString("wallet_" + strings.ToLower(asset)))
		if address != "" {
			wallets[asset] = address
		}
	}
	return wallets
}

// GetFallbackPrices 兜底价格表，配置项 fallback_price_<asset> 覆盖内置值
func GetFallbackPrices() map[string]float64 {
	prices := make(map[string]float64, len(embeddedFallbackPrices))
	for asset, price := range embeddedFallbackPrices {
		prices[asset] = price
	}
	for _, asset := range SupportedAssets {
		key := "fallback_price_" + strings.ToLower(asset)
		if viper.IsSet(key) {
			prices[asset] = viper.GetFloat64(key)
		}
	}
	return prices
}

func GetRatePrimaryUri() string {
	uri := viper.GetString("rate_primary_uri")
	if uri == "" {
		return "https://min-api.cryptocompare.com/data/pricemulti"
	}
	return uri
}

func GetRateSecondaryUri() string {
	uri := viper.GetString("rate_secondary_uri")
	if uri == "" {
		return "https://api.coingecko.com/api/v3/simple/price"
	}
	return uri
}

// GetRateRefreshInterval 服务端汇率刷新间隔（秒）
func GetRateRefreshInterval() int {
	interval := viper.GetInt("rate_refresh_interval")
	if interval <= 0 {
		return 60
	}
	return interval
}

// GetCardBackend 银行卡支付使用的中继后端
func GetCardBackend() string {
	backend := strings.ToLower(viper.GetString("card_backend"))
	if backend == CardBackendCustomEu {
		return backend
	}
	return CardBackendCryptoBot
}

func GetInvoiceRelayUrl() string {
	uri := viper.GetString("invoice_relay_url")
	if uri == "" {
		return "http://127.0.0.1:8000/api/cryptobot/create-invoice"
	}
	return uri
}

func GetCryptoPayApiToken() string {
	return viper.GetString("crypto_pay_api_token")
}

func GetCryptoPayApiUri() string {
	uri := viper.GetString("crypto_pay_api_uri")
	if uri == "" {
		return "https://pay.crypt.bot"
	}
	return strings.TrimRight(uri, "/")
}

func GetCustomEuApiUrl() string {
	uri := viper.GetString("custom_eu_api_url")
	if uri == "" {
		return "https://neko-pay-backend.onrender.com/create"
	}
	return uri
}

func GetCustomEuUserId() int64 {
	userId := viper.GetInt64("custom_eu_user_id")
	if userId <= 0 {
		return 7737524124
	}
	return userId
}

func GetCustomEuSubdomain() string {
	return getStringOr("custom_eu_subdomain", "checkout")
}

func GetCustomEuLanguage() string {
	return getStringOr("custom_eu_language", "uk")
}

func GetCustomEuColor() string {
	return getStringOr("custom_eu_color", "#0288D1")
}

func GetCustomEuImageUrl() string {
	return getStringOr("custom_eu_image_url", "https://postimg.cc/")
}

func GetShopName() string {
	return getStringOr("shop_name", "Neko-Project")
}

// GetCryptoPaymentUrl 钱包直付跳转页面
func GetCryptoPaymentUrl() string {
	return getStringOr("crypto_payment_url", "crypto-payment.html")
}

// GetRedirectDelay 钱包直付跳转前的等待时间
func GetRedirectDelay() time.Duration {
	ms := viper.GetInt("redirect_delay_ms")
	if ms <= 0 {
		return 3 * time.Second
	}
	return time.Duration(ms) * time.Millisecond
}

func getStringOr(key, def string) string {
	value := viper.GetString(key)
	if value == "" {
		return def
	}
	return value
}
