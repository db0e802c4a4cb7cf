package cryptobot

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neko-project/nekopay/model/mdb"
	"github.com/neko-project/nekopay/relay"
	"github.com/neko-project/nekopay/util/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string, captured *string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		if captured != nil {
			raw, _ := io.ReadAll(r.Body)
			*captured = string(raw)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func testOrder() *mdb.Order {
	return &mdb.Order{
		Email:         "buyer@example.com",
		Product:       "Pro",
		Plan:          "Monthly",
		Subtotal:      9.99,
		Total:         9.99,
		Currency:      "USD",
		PaymentMethod: mdb.PaymentMethodCard,
	}
}

func TestCreatePaymentLink_Success(t *testing.T) {
	var captured string
	server := newTestServer(t, http.StatusOK, `{"ok":true,"result":{"invoice_id":1,"bot_invoice_url":"https://t.me/CryptoBot?start=IVabc","mini_app_invoice_url":"https://t.me/mini"}}`, &captured)
	backend := &Backend{Endpoint: server.URL}

	link, err := backend.CreatePaymentLink(context.Background(), testOrder())
	require.NoError(t, err)
	assert.Equal(t, "https://t.me/CryptoBot?start=IVabc", link)
	assert.JSONEq(t, `{"amount":9.99,"currency":"USD","asset":"USDT","product":"Pro","plan":"Monthly","email":"buyer@example.com","coupon_code":null,"discount":0}`, captured)
}

func TestCreatePaymentLink_FallsBackToPayUrl(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `{"ok":true,"result":{"pay_url":"https://pay.crypt.bot/x"}}`, nil)
	backend := &Backend{Endpoint: server.URL}

	link, err := backend.CreatePaymentLink(context.Background(), testOrder())
	require.NoError(t, err)
	assert.Equal(t, "https://pay.crypt.bot/x", link)
}

func TestCreatePaymentLink_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "ok false", status: http.StatusOK, body: `{"ok":false}`},
		{name: "upstream", status: http.StatusBadGateway, body: `{"ok":false,"error":"API_ERROR","raw":null}`},
		{name: "invalid amount", status: http.StatusBadRequest, body: `{"ok":false,"error":"INVALID_AMOUNT"}`},
		{name: "no url", status: http.StatusOK, body: `{"ok":true,"result":{}}`},
		{name: "html", status: http.StatusOK, body: `<html></html>`},
	}

	for _, tt := range tests {
		server := newTestServer(t, tt.status, tt.body, nil)
		backend := &Backend{Endpoint: server.URL}
		link, err := backend.CreatePaymentLink(context.Background(), testOrder())
		assert.Error(t, err, tt.name)
		assert.Empty(t, link, tt.name)
	}
}

func TestCreatePaymentLink_NoUrlSentinel(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `{"ok":true,"result":{}}`, nil)
	backend := &Backend{Endpoint: server.URL}
	_, err := backend.CreatePaymentLink(context.Background(), testOrder())
	assert.ErrorIs(t, err, constant.RelayNoRedirectUrl)
}

func TestCreatePaymentLink_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	backend := &Backend{Endpoint: url}
	_, err := backend.CreatePaymentLink(context.Background(), testOrder())
	assert.Error(t, err)
}

func TestRegistered(t *testing.T) {
	assert.NotNil(t, relay.GetBackend("cryptobot"))
}
