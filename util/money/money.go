package money

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Placeholder 无法计算金额时展示的占位符
const Placeholder = "—"

var (
	numberPrefix     = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	trailingZeroTail = regexp.MustCompile(`\.0+$`)
	trailingZeros    = regexp.MustCompile(`(\.\d*?)0+$`)
)

// ParseFloat 按前缀解析数字，"12px" 解析为 12，非有限值视为失败
func ParseFloat(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	match := numberPrefix.FindString(s)
	if match == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// ToNumber 转换为数字，支持逗号作小数点，无法解析时返回 0
func ToNumber(v interface{}) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(n)
	case float32:
		return finiteOrZero(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	case json.Number:
		return ToNumber(n.String())
	case string:
		parsed, ok := ParseFloat(strings.Replace(n, ",", ".", 1))
		if !ok {
			return 0
		}
		return parsed
	default:
		return ToNumber(fmt.Sprint(v))
	}
}

func finiteOrZero(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// ToFixed 定点格式化，对二进制精确值取整，恰好一半时远离零
func ToFixed(x float64, digits int) string {
	if math.IsNaN(x) {
		return "NaN"
	}
	if math.IsInf(x, 1) {
		return "Infinity"
	}
	if math.IsInf(x, -1) {
		return "-Infinity"
	}
	// float64 的十进制展开最多 1074 位小数
	exact, err := decimal.NewFromString(new(big.Float).SetFloat64(x).Text('f', 1100))
	if err != nil {
		return strconv.FormatFloat(x, 'f', digits, 64)
	}
	return exact.StringFixed(int32(digits))
}

// CurrencySymbol 法币符号，未知币种按美元处理
func CurrencySymbol(code string) string {
	switch strings.ToUpper(code) {
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	case "RUB":
		return "₽"
	case "UAH":
		return "₴"
	case "KZT":
		return "₸"
	default:
		return "$"
	}
}

// FormatMoney 法币金额，保留 2 位小数
func FormatMoney(amount interface{}, currency string) string {
	return CurrencySymbol(currency) + ToFixed(ToNumber(amount), 2)
}

// CryptoDecimals 各币种展示精度
func CryptoDecimals(asset string) int {
	switch asset {
	case "BTC":
		return 8
	case "ETH", "LTC":
		return 6
	case "TON":
		return 3
	case "TRX":
		return 2
	default:
		return 2
	}
}

// FormatCrypto 加密货币金额，去掉末尾的 0
func FormatCrypto(asset string, amount interface{}) string {
	n := ToNumber(amount)
	if n <= 0 {
		return Placeholder
	}
	return TrimZeros(ToFixed(n, CryptoDecimals(asset)))
}

// TrimZeros "10.00" -> "10", "33.30" -> "33.3"
func TrimZeros(s string) string {
	s = trailingZeroTail.ReplaceAllString(s, "")
	return trailingZeros.ReplaceAllString(s, "$1")
}

// Clamp 负数归零
func Clamp(v interface{}) float64 {
	n := ToNumber(v)
	if n < 0 {
		return 0
	}
	return n
}
