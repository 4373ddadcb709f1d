package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nardoo_storefront/internal/adapter/http/handlers/mocks"
	"nardoo_storefront/internal/domain/entities"
	"nardoo_storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestOrderPaymentHandler_PayOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIOrderPaymentUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderPaymentUseCase(ctrl)
		h := NewOrderPaymentHandler(uc)
		r := gin.New()
		r.POST("/v1/orders/:id/payments", h.PayOrder)
		return r, uc
	}

	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ORD1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty object", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		r, uc := newRouter(t)

		uc.EXPECT().PayOrder(gomock.Any(), "ORD1", json.RawMessage("{}")).Return(entities.OrderPayment{ID: "pay-1", OrderID: "ORD1", Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ORD1/payments", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		r, uc := newRouter(t)

		uc.EXPECT().PayOrder(gomock.Any(), "ORD1", gomock.Any()).Return(entities.OrderPayment{}, usecase.ErrPaymentMethodMismatch)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ORD1/payments", bytes.NewBufferString(`{"payment_method_id":"visa","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success unwraps envelope", func(t *testing.T) {
		r, uc := newRouter(t)

		now := time.Now().UTC()
		uc.EXPECT().PayOrder(gomock.Any(), "ORD1", json.RawMessage(`{"payment_method_id":"visa"}`)).
			Return(entities.OrderPayment{ID: "pay-1", OrderID: "ORD1", Amount: 2980, Date: now, Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ORD1/payments", bytes.NewBufferString(`{"provider_payload":{"payment_method_id":"visa"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["status"] != "approved" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderPaymentHandler_ListOrderPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderPaymentUseCase(ctrl)
		h := NewOrderPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id/payments", h.ListOrderPayments)

		uc.EXPECT().ListOrderPayments(gomock.Any(), "ORD1").Return(nil, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ORD1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("empty list is an empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderPaymentUseCase(ctrl)
		h := NewOrderPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id/payments", h.ListOrderPayments)

		uc.EXPECT().ListOrderPayments(gomock.Any(), "ORD1").Return([]entities.OrderPayment{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ORD1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderPaymentUseCase(ctrl)
		h := NewOrderPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id/payments", h.ListOrderPayments)

		denied := entities.OrderPayment{ID: "p1", OrderID: "ORD1", Status: entities.PaymentStatusDenied}
		approved := entities.OrderPayment{ID: "p2", OrderID: "ORD1", Status: entities.PaymentStatusApproved}
		uc.EXPECT().ListOrderPayments(gomock.Any(), "ORD1").Return([]entities.OrderPayment{denied, approved}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ORD1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[1]["payment_id"] != "p2" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReadProviderPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readProviderPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readProviderPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readProviderPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readProviderPayload(makeCtx(`{"provider_payload":null}`)); err == nil {
		t.Fatalf("expected provider_payload empty error")
	}

	payload, err = readProviderPayload(makeCtx(`{"provider_payload":{"a":1}}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected wrapped payload, got %s err=%v", payload, err)
	}

	payload, err = readProviderPayload(makeCtx(`{"payment_method_id":"visa"}`))
	if err != nil || string(payload) != `{"payment_method_id":"visa"}` {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidOrderID, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrOrderNotFound, http.StatusNotFound},
		{usecase.ErrPaymentMethodMismatch, http.StatusConflict},
		{usecase.ErrOrderNotPayable, http.StatusConflict},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}

func TestIsPaymentGatewayMockEnabled(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	if isPaymentGatewayMockEnabled() {
		t.Fatalf("expected mock disabled")
	}

	t.Setenv("MERCADOPAGO_MOCK", "on")
	if !isPaymentGatewayMockEnabled() {
		t.Fatalf("expected mock enabled")
	}
}
