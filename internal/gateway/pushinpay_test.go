package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestClient(t *testing.T, serverURL string) Client {
	t.Helper()
	return NewPushInPayClient(Config{
		BaseURL:    serverURL,
		APIToken:   "test-token",
		WebhookURL: "https://example.com/webhooks/pushinpay",
	}, zaptest.NewLogger(t))
}

func TestCreateChargeSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/pix/cashIn", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(9900), body["value"])
		assert.Equal(t, "https://example.com/webhooks/pushinpay", body["webhook_url"])
		assert.NotNil(t, body["split_rules"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"id":             "9c2a7f5e-tx",
			"qr_code":        "00020126pixcopiacola",
			"qr_code_base64": "data:image/png;base64,abc",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	charge, err := client.CreateCharge(context.Background(), 9900)

	require.NoError(t, err)
	assert.Equal(t, "9c2a7f5e-tx", charge.TransactionID)
	assert.Equal(t, "00020126pixcopiacola", charge.PixCode)
	assert.Equal(t, "data:image/png;base64,abc", charge.QRCodeImage)
}

func TestCreateChargeMissingToken(t *testing.T) {
	// No server: the token check must fire before any I/O happens.
	client := NewPushInPayClient(Config{BaseURL: "http://127.0.0.1:0"}, zaptest.NewLogger(t))

	_, err := client.CreateCharge(context.Background(), 9900)

	assert.ErrorIs(t, err, ErrMissingAPIToken)
}

func TestCreateChargeInvalidAmount(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:0")

	_, err := client.CreateCharge(context.Background(), 0)

	assert.Error(t, err)
}

func TestCreateChargeGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid amount"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.CreateCharge(context.Background(), 9900)

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusUnprocessableEntity, gwErr.StatusCode)
	assert.Contains(t, gwErr.Body, "invalid amount")
}

func TestFetchChargeStatusSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/transactions/tx-1", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]string{"status": "paid"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	status, err := client.FetchChargeStatus(context.Background(), "tx-1")

	require.NoError(t, err)
	assert.Equal(t, "paid", status)
}

func TestFetchChargeStatusNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.FetchChargeStatus(context.Background(), "tx-unknown")

	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestFetchChargeStatusMissingToken(t *testing.T) {
	client := NewPushInPayClient(Config{BaseURL: "http://127.0.0.1:0"}, zaptest.NewLogger(t))

	_, err := client.FetchChargeStatus(context.Background(), "tx-1")

	assert.ErrorIs(t, err, ErrMissingAPIToken)
}

func TestFetchChargeStatusServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.FetchChargeStatus(context.Background(), "tx-1")

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusInternalServerError, gwErr.StatusCode)
}
