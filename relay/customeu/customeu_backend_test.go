package customeu

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neko-project/nekopay/model/mdb"
	"github.com/neko-project/nekopay/relay"
	"github.com/neko-project/nekopay/util/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAdRequest(t *testing.T) {
	req := BuildAdRequest(&mdb.Order{Email: "buyer@example.com", Product: "Pro", Plan: "Monthly", Total: 9.99})

	assert.Equal(t, "Pro (Monthly)", req.Title)
	assert.Equal(t, 9.99, req.Price)
	assert.Equal(t, "buyer@example.com", req.Address)
	assert.Equal(t, "create_link_service_custom_eu", req.Id)
	assert.Equal(t, int64(7737524124), req.UserId)
	assert.Equal(t, "Neko-Project order: Pro (Monthly)", req.About)
	assert.Equal(t, "false", req.BalanceChecker)
	assert.Equal(t, "true", req.Billing)
	assert.True(t, req.MultiAd)

	req = BuildAdRequest(&mdb.Order{})
	assert.Equal(t, "Neko-Project", req.Title)
}

func TestCreatePaymentLink(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr bool
	}{
		{name: "url", status: http.StatusOK, body: `{"url":"https://checkout.example/a","my":"https://m"}`, want: "https://checkout.example/a"},
		{name: "my", status: http.StatusOK, body: `{"my":"https://m","short":"https://s"}`, want: "https://m"},
		{name: "short", status: http.StatusOK, body: `{"short":"https://s"}`, want: "https://s"},
		{name: "missing", status: http.StatusOK, body: `{"status":"created"}`, wantErr: true},
		{name: "server error", status: http.StatusInternalServerError, body: `{"url":"https://x"}`, wantErr: true},
	}

	for _, tt := range tests {
		var captured capturedAd
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			_ = json.Cjson.Unmarshal(raw, &captured)
			w.WriteHeader(tt.status)
			_, _ = w.Write([]byte(tt.body))
		}))

		backend := &Backend{Endpoint: server.URL}
		link, err := backend.CreatePaymentLink(context.Background(), &mdb.Order{Product: "Pro", Total: 5})
		server.Close()

		if tt.wantErr {
			assert.Error(t, err, tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, link, tt.name)
		assert.Equal(t, "Pro", captured.Title)
		assert.Equal(t, 5.0, captured.Price)
	}
}

type capturedAd struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

func TestRegistered(t *testing.T) {
	assert.NotNil(t, relay.GetBackend("custom_eu"))
}
