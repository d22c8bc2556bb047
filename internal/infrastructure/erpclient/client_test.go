package erpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rangipos/terminal/internal/domain/pos"
	"github.com/rangipos/terminal/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSaleRequest(t *testing.T) *pos.SaleRequest {
	t.Helper()
	cart := pos.NewCart()
	cart.AddItem("PAINT-5L", "Emulsion 5L", decimal.NewFromFloat(1000))
	cart.AddItem("THINNER", "Thinner 500ml", decimal.NewFromFloat(250))
	session, err := pos.NewSession(valueobject.NewMoneyKESFromFloat(5000), "Main Counter", "Nairobi Store")
	require.NoError(t, err)
	req, err := pos.NewSaleRequest(cart, session)
	require.NoError(t, err)
	return req
}

func TestClient_CreateInvoice(t *testing.T) {
	saleReq := testSaleRequest(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/pos/invoices", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "tenant-42", r.Header.Get("X-Tenant-ID"))
		assert.Equal(t, saleReq.IdempotencyToken.String(), r.Header.Get("X-Idempotency-Key"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Walk-in Customer", payload["customer"])
		assert.Equal(t, "Main Counter", payload["pos_profile"])
		assert.Len(t, payload["items"], 2)
		assert.Len(t, payload["payments"], 1)
		assert.Equal(t, "1450", payload["grand_total"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"INV-0042","grand_total":"1450.00","total_qty":2,"payments":[{"mode_of_payment":"Cash","amount":"1450.00"}]}`))
	}))
	defer server.Close()

	client := New(server.URL, "secret-token", "tenant-42")
	invoice, err := client.CreateInvoice(context.Background(), saleReq)
	require.NoError(t, err)

	assert.Equal(t, "INV-0042", invoice.Name)
	assert.Equal(t, "1450.00", invoice.GrandTotal.StringFixed(2))
	require.Len(t, invoice.Payments, 1)
	assert.Equal(t, "Cash", invoice.Payments[0].ModeOfPayment)
}

func TestClient_CreateInvoice_RemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"PAYMENT_MISMATCH","message":"Payment amount does not match grand total"}}`))
	}))
	defer server.Close()

	client := New(server.URL, "token", "tenant")
	_, err := client.CreateInvoice(context.Background(), testSaleRequest(t))
	require.Error(t, err)

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusBadRequest, remoteErr.StatusCode)
	assert.Equal(t, "PAYMENT_MISMATCH", remoteErr.Code)
	assert.Contains(t, remoteErr.Message, "does not match grand total")
}

func TestClient_CreateInvoice_NonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	client := New(server.URL, "token", "tenant")
	_, err := client.CreateInvoice(context.Background(), testSaleRequest(t))

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "upstream unavailable", remoteErr.Message)
}

func TestClient_NetworkError(t *testing.T) {
	client := New("http://127.0.0.1:1", "token", "tenant")
	_, err := client.GetDailySummary(context.Background(), "2026-08-31")
	require.Error(t, err)

	var remoteErr *RemoteError
	assert.False(t, errors.As(err, &remoteErr), "network failures are not remote errors")
}

func TestClient_GetDailySummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/pos/daily-summary", r.URL.Path)
		assert.Equal(t, "2026-08-31", r.URL.Query().Get("date"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total_sales":"12500.00","total_transactions":9,"total_commission":"320.00",
			"by_payment_mode":{"cash":"8000.00","mpesa":"4000.00","bank":"500.00","total":"12500.00"},
			"by_customer_type":{"Direct":"10000.00","Fundi":"2500.00"}
		}`))
	}))
	defer server.Close()

	client := New(server.URL, "token", "tenant")
	summary, err := client.GetDailySummary(context.Background(), "2026-08-31")
	require.NoError(t, err)

	assert.Equal(t, "12500.00", summary.TotalSales.StringFixed(2))
	assert.Equal(t, int64(9), summary.TotalTransactions)
	assert.Equal(t, "8000.00", summary.ByPaymentMode.Cash.StringFixed(2))
	assert.Equal(t, "2500.00", summary.ByCustomerType["Fundi"].StringFixed(2))
}

func TestClient_ListPOSProfiles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/pos/profiles", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"profiles":[{"name":"Main Counter","warehouse":"Nairobi Store"},{"name":"Back Office","warehouse":"Mombasa Depot"}]}`))
	}))
	defer server.Close()

	client := New(server.URL, "token", "tenant")
	profiles, err := client.ListPOSProfiles(context.Background())
	require.NoError(t, err)

	require.Len(t, profiles, 2)
	assert.Equal(t, "Main Counter", profiles[0].Name)
	assert.Equal(t, "Nairobi Store", profiles[0].Warehouse)
}

func TestClient_SearchItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/pos/items", r.URL.Path)
		assert.Equal(t, "Nairobi Store", r.URL.Query().Get("warehouse"))
		assert.Equal(t, "crown 5l", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"item_code":"PAINT-5L","item_name":"Crown Emulsion 5L","rate":"2500.00","stock":"14","unit":"Tin"}]}`))
	}))
	defer server.Close()

	client := New(server.URL, "token", "tenant")
	items, err := client.SearchItems(context.Background(), "Nairobi Store", "crown 5l")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "PAINT-5L", items[0].ItemCode)
	assert.Equal(t, "2500.00", items[0].Rate.StringFixed(2))
}

func TestClient_STKPush(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/pos/mpesa/stk-push":
			assert.Equal(t, http.MethodPost, r.Method)
			_, _ = w.Write([]byte(`{"checkout_request_id":"ws_CO_123","response_code":"0","customer_message":"Check your phone"}`))
		case "/api/v1/pos/mpesa/stk-push/ws_CO_123":
			assert.Equal(t, http.MethodGet, r.Method)
			_, _ = w.Write([]byte(`{"checkout_request_id":"ws_CO_123","status":"Success","result_desc":"Processed"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := New(server.URL, "token", "tenant")
	resp, err := client.InitiateSTKPush(context.Background(), STKPushRequest{
		Phone:     "254700000000",
		Amount:    decimal.NewFromFloat(1450),
		InvoiceID: "INV-0042",
	})
	require.NoError(t, err)
	assert.Equal(t, "ws_CO_123", resp.CheckoutRequestID)

	status, err := client.GetSTKStatus(context.Background(), resp.CheckoutRequestID)
	require.NoError(t, err)
	assert.Equal(t, "Success", status.Status)
}

func TestClient_QueueReceipt(t *testing.T) {
	var called bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, "/api/v1/pos/invoices/INV-0042/receipt", r.URL.Path)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := New(server.URL, "token", "tenant")
	require.NoError(t, client.QueueReceipt(context.Background(), "INV-0042"))
	assert.True(t, called)
}
