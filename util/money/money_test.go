package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		in   interface{}
		want float64
	}{
		{in: "9.99", want: 9.99},
		{in: "1,5", want: 1.5},
		{in: " 12px", want: 12},
		{in: "abc", want: 0},
		{in: "", want: 0},
		{in: nil, want: 0},
		{in: "Infinity", want: 0},
		{in: math.Inf(1), want: 0},
		{in: math.NaN(), want: 0},
		{in: 42, want: 42},
		{in: "-3.5", want: -3.5},
		{in: ".5", want: 0.5},
		{in: "1e3", want: 1000},
		{in: true, want: 0},
	}

	for _, tt := range tests {
		if got := ToNumber(tt.in); got != tt.want {
			t.Fatalf("ToNumber(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFloat(t *testing.T) {
	n, ok := ParseFloat("10.5abc")
	assert.True(t, ok)
	assert.Equal(t, 10.5, n)

	_, ok = ParseFloat("undefined")
	assert.False(t, ok)

	// 逗号不做替换
	n, ok = ParseFloat("1,5")
	assert.True(t, ok)
	assert.Equal(t, 1.0, n)

	_, ok = ParseFloat("1e400")
	assert.False(t, ok)
}

func TestToFixed(t *testing.T) {
	tests := []struct {
		x      float64
		digits int
		want   string
	}{
		{x: 1234.5, digits: 2, want: "1234.50"},
		{x: 1.005, digits: 2, want: "1.00"},
		{x: 0.125, digits: 2, want: "0.13"},
		{x: 2.5, digits: 0, want: "3"},
		{x: 0.123456789, digits: 8, want: "0.12345679"},
		{x: 9.99 / 0.30, digits: 2, want: "33.30"},
		{x: 0, digits: 2, want: "0.00"},
		{x: -1.5, digits: 0, want: "-2"},
	}

	for _, tt := range tests {
		if got := ToFixed(tt.x, tt.digits); got != tt.want {
			t.Fatalf("ToFixed(%v, %d) = %q, want %q", tt.x, tt.digits, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "€1234.50", FormatMoney(1234.5, "EUR"))
	assert.Equal(t, "$0.00", FormatMoney(nil, "USD"))
	assert.Equal(t, "£9.99", FormatMoney("9,99", "gbp"))
	assert.Equal(t, "$5.00", FormatMoney(5, "XYZ"))
	assert.Equal(t, "₽1.00", FormatMoney(1, "RUB"))
	assert.Equal(t, "₴1.00", FormatMoney(1, "UAH"))
	assert.Equal(t, "₸1.00", FormatMoney(1, "KZT"))
}

func TestCryptoDecimals(t *testing.T) {
	assert.Equal(t, 8, CryptoDecimals("BTC"))
	assert.Equal(t, 6, CryptoDecimals("ETH"))
	assert.Equal(t, 6, CryptoDecimals("LTC"))
	assert.Equal(t, 3, CryptoDecimals("TON"))
	assert.Equal(t, 2, CryptoDecimals("TRX"))
	assert.Equal(t, 2, CryptoDecimals("USDT"))
	assert.Equal(t, 2, CryptoDecimals("DOGE"))
}

func TestFormatCrypto(t *testing.T) {
	tests := []struct {
		asset  string
		amount interface{}
		want   string
	}{
		{asset: "BTC", amount: 0.123456789, want: "0.12345679"},
		{asset: "USDT", amount: 10.0 / 1.0, want: "10"},
		{asset: "TRX", amount: 9.99 / 0.30, want: "33.3"},
		{asset: "TON", amount: 5.7142857, want: "5.714"},
		{asset: "ETH", amount: 0.0100, want: "0.01"},
		{asset: "ETH", amount: 0, want: Placeholder},
		{asset: "ETH", amount: -1, want: Placeholder},
		{asset: "ETH", amount: math.NaN(), want: Placeholder},
		{asset: "USDT", amount: nil, want: Placeholder},
	}

	for _, tt := range tests {
		if got := FormatCrypto(tt.asset, tt.amount); got != tt.want {
			t.Fatalf("FormatCrypto(%s, %v) = %q, want %q", tt.asset, tt.amount, got, tt.want)
		}
	}
}

func TestTrimZeros(t *testing.T) {
	assert.Equal(t, "10", TrimZeros("10.00"))
	assert.Equal(t, "33.3", TrimZeros("33.30"))
	assert.Equal(t, "0.1", TrimZeros("0.10"))
	assert.Equal(t, "12.345", TrimZeros("12.345"))
	assert.Equal(t, "100", TrimZeros("100"))
}

func TestClamp(t *testing.T) {
	for _, p := range []float64{0, 1, 9.99, 100} {
		for _, d := range []float64{0, 5, 150} {
			total := Clamp(p - d)
			if total < 0 {
				t.Fatalf("Clamp(%v - %v) = %v, expected non-negative", p, d, total)
			}
		}
	}
	assert.Equal(t, 0.0, Clamp(-3))
	assert.Equal(t, 2.0, Clamp("2"))
}
