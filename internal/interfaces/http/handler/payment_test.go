package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rangipos/terminal/internal/infrastructure/erpclient"
	"github.com/rangipos/terminal/internal/interfaces/http/dto"
	"github.com/rangipos/terminal/internal/interfaces/http/middleware"
	"github.com/rangipos/terminal/internal/interfaces/http/router"
)

type stubMpesa struct {
	pushErr  error
	lastPush erpclient.STKPushRequest
}

func (s *stubMpesa) InitiateSTKPush(_ context.Context, req erpclient.STKPushRequest) (*erpclient.STKPushResponse, error) {
	s.lastPush = req
	if s.pushErr != nil {
		return nil, s.pushErr
	}
	return &erpclient.STKPushResponse{
		CheckoutRequestID: "ws_CO_310820261201",
		ResponseCode:      "0",
		CustomerMessage:   "Success. Request accepted for processing",
	}, nil
}

func (s *stubMpesa) GetSTKStatus(_ context.Context, checkoutRequestID string) (*erpclient.STKStatus, error) {
	return &erpclient.STKStatus{
		CheckoutRequestID: checkoutRequestID,
		Status:            "Pending",
	}, nil
}

func newPaymentApp(mpesa *stubMpesa) *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.RequestID())
	router.NewRouter(engine).Register(NewPaymentHandler(mpesa)).Setup()
	return engine
}

func TestInitiateSTKPush(t *testing.T) {
	mpesa := &stubMpesa{}
	app := &testApp{engine: newPaymentApp(mpesa)}

	w := app.do(t, http.MethodPost, "/api/v1/payments/mpesa/stk-push", gin.H{
		"phone":      "254712345678",
		"amount":     1450,
		"invoice_id": "ACC-PSINV-2026-00042",
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "ws_CO_310820261201", data["checkout_request_id"])
	assert.Equal(t, "254712345678", mpesa.lastPush.Phone)
	assert.Equal(t, "ACC-PSINV-2026-00042", mpesa.lastPush.InvoiceID)
}

func TestInitiateSTKPushValidatesRequest(t *testing.T) {
	app := &testApp{engine: newPaymentApp(&stubMpesa{})}

	w := app.do(t, http.MethodPost, "/api/v1/payments/mpesa/stk-push", gin.H{"phone": "254712345678"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeValidation, decodeResponse(t, w).Error.Code)
}

func TestGetSTKStatus(t *testing.T) {
	app := &testApp{engine: newPaymentApp(&stubMpesa{})}

	w := app.do(t, http.MethodGet, "/api/v1/payments/mpesa/stk-push/ws_CO_310820261201", nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]any)
	assert.Equal(t, "Pending", data["status"])
}

func TestInitiateSTKPushUpstreamFailure(t *testing.T) {
	mpesa := &stubMpesa{pushErr: &erpclient.RemoteError{StatusCode: 502, Code: "MPESA_UNAVAILABLE", Message: "daraja timeout"}}
	app := &testApp{engine: newPaymentApp(mpesa)}

	w := app.do(t, http.MethodPost, "/api/v1/payments/mpesa/stk-push", gin.H{
		"phone":      "254712345678",
		"amount":     1450,
		"invoice_id": "ACC-PSINV-2026-00042",
	})

	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, dto.ErrCodeUpstream, decodeResponse(t, w).Error.Code)
}
