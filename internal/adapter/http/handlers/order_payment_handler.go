package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	request "nardoo_storefront/internal/adapter/http/dto/request"
	response "nardoo_storefront/internal/adapter/http/dto/response"
	"nardoo_storefront/internal/usecase"
	"nardoo_storefront/pkg"

	"github.com/gin-gonic/gin"
)

// OrderPaymentHandler handles HTTP requests for order payments.

type OrderPaymentHandler struct {
	usecase usecase.IOrderPaymentUseCase
}

func NewOrderPaymentHandler(uc usecase.IOrderPaymentUseCase) *OrderPaymentHandler {
	return &OrderPaymentHandler{usecase: uc}
}

// PayOrder charges a credit_card order. The body is either the raw provider payload
// or an envelope {"provider_payload": {...}}.
func (h *OrderPaymentHandler) PayOrder(c *gin.Context) {
	orderID := c.Param("id")
	log.Printf("[payment][handler] pay start order_id=%s", orderID)
	mockMode := isPaymentGatewayMockEnabled()
	payload, err := readProviderPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload order_id=%s err=%v", orderID, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload order_id=%s err=%v", orderID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.PayOrder(c.Request.Context(), orderID, payload)
	if err != nil {
		log.Printf("[payment][handler] pay failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] pay success order_id=%s payment_id=%s status=%s", orderID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromOrderPayment(created))
}

// ListOrderPayments returns every payment attempt of an order, oldest first.
func (h *OrderPaymentHandler) ListOrderPayments(c *gin.Context) {
	orderID := c.Param("id")

	payments, err := h.usecase.ListOrderPayments(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] list failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] list success order_id=%s count=%d", orderID, len(payments))

	c.JSON(http.StatusOK, response.FromOrderPayments(payments))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.OrderPaymentCreateRequest
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.ProviderPayload != nil {
		wrapped := strings.TrimSpace(string(envelope.ProviderPayload))
		if wrapped == "" || wrapped == "null" {
			return nil, errors.New("provider_payload cannot be empty")
		}
		return envelope.ProviderPayload, nil
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentMethodMismatch):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_MISMATCH", "Order is not paid by credit card", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotPayable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_PAYABLE", "Order is not payable", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
