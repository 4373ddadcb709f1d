package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"

	"nardoo_storefront/internal/domain/entities"
	"nardoo_storefront/internal/usecase/interfaces"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order_payment_usecase.go -destination=../adapter/http/handlers/mocks/mock_order_payment_usecase.go -package=mocks

var (
	ErrInvalidPaymentPayload       = errors.New("invalid payment payload")
	ErrPaymentMethodMismatch       = errors.New("order is not paid by credit card")
	ErrOrderNotPayable             = errors.New("order is not payable")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
)

const paymentApprovedMessage = "Payment approved"

// IOrderPaymentUseCase charges credit_card orders through the payment gateway.
//
// Behavior:
//   - The charged amount is always the order total held by the ledger.
//   - An approved payment confirms the order.

type IOrderPaymentUseCase interface {
	PayOrder(ctx context.Context, orderID string, providerPayload json.RawMessage) (entities.OrderPayment, error)
	ListOrderPayments(ctx context.Context, orderID string) ([]entities.OrderPayment, error)
}

type OrderPaymentUseCase struct {
	mu       sync.Mutex
	store    interfaces.IKeyValueStore
	ledger   IOrderLedger
	gateway  interfaces.IPaymentGateway
	now      Clock
	payments []entities.OrderPayment
}

var _ IOrderPaymentUseCase = (*OrderPaymentUseCase)(nil)

// NewOrderPaymentUseCase loads the payment collection. gateway may be nil, in which
// case PayOrder fails with ErrPaymentGatewayNotConfigured.
func NewOrderPaymentUseCase(ctx context.Context, store interfaces.IKeyValueStore, ledger IOrderLedger, gateway interfaces.IPaymentGateway, clock Clock) (*OrderPaymentUseCase, error) {
	if clock == nil {
		clock = SystemClock
	}
	payments, err := loadCollection[entities.OrderPayment](ctx, store, PaymentsCollectionKey)
	if err != nil {
		return nil, err
	}
	return &OrderPaymentUseCase{store: store, ledger: ledger, gateway: gateway, now: clock, payments: payments}, nil
}

func (u *OrderPaymentUseCase) PayOrder(ctx context.Context, orderID string, providerPayload json.RawMessage) (entities.OrderPayment, error) {
	log.Printf("[payment][usecase] pay-order start raw_order_id=%q payload_len=%d", orderID, len(providerPayload))
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.OrderPayment{}, ErrInvalidOrderID
	}
	if len(strings.TrimSpace(string(providerPayload))) == 0 {
		providerPayload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil || reqMap == nil {
		log.Printf("[payment][usecase] invalid payload (not-json-object) order_id=%s", orderID)
		return entities.OrderPayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured order_id=%s", orderID)
		return entities.OrderPayment{}, ErrPaymentGatewayNotConfigured
	}

	order, err := u.ledger.GetOrder(ctx, orderID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading order order_id=%s err=%v", orderID, err)
		return entities.OrderPayment{}, err
	}
	if order.PaymentMethod != entities.PaymentMethodCreditCard {
		log.Printf("[payment][usecase] payment method mismatch order_id=%s method=%s", orderID, order.PaymentMethod)
		return entities.OrderPayment{}, ErrPaymentMethodMismatch
	}
	if order.Status == entities.OrderStatusCancelled || u.hasApprovedPayment(orderID) {
		log.Printf("[payment][usecase] order not payable order_id=%s status=%s", orderID, order.Status)
		return entities.OrderPayment{}, ErrOrderNotPayable
	}

	if !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Printf("[payment][usecase] missing payment_method_id order_id=%s", orderID)
		return entities.OrderPayment{}, ErrInvalidPaymentPayload
	}
	ensurePayerDefaults(reqMap, order.CustomerEmail)
	if !hasPayer(reqMap) {
		log.Printf("[payment][usecase] missing/invalid payer order_id=%s", orderID)
		return entities.OrderPayment{}, ErrInvalidPaymentPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = order.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Order %s", order.ID)
	}
	// The source of truth for amount is the order held by the ledger.
	reqMap["transaction_amount"] = order.Total
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.OrderPayment{}, err
	}

	log.Printf("[payment][usecase] calling payment gateway order_id=%s amount=%.2f", orderID, order.Total)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed order_id=%s err=%v", orderID, err)
		switch {
		case isGatewayUnauthorized(err):
			return entities.OrderPayment{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.OrderPayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.OrderPayment{}, err
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed order_id=%s err=%v", orderID, err)
	}
	if strings.TrimSpace(providerPaymentID) == "" {
		providerPaymentID = uuid.NewString()
	}

	p := entities.OrderPayment{
		ID:                 providerPaymentID,
		OrderID:            order.ID,
		Amount:             order.Total,
		Date:               u.now(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderStatus:     providerStatus,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	if !json.Valid(p.ProviderPayloadRaw) {
		p.ProviderPayloadRaw = nil
	}
	if err := u.appendPayment(ctx, p); err != nil {
		log.Printf("[payment][usecase] payment persist failed order_id=%s payment_id=%s err=%v", orderID, p.ID, err)
		return entities.OrderPayment{}, err
	}

	if p.Status == entities.PaymentStatusApproved {
		if _, err := u.ledger.UpdateOrderStatus(ctx, order.ID, entities.OrderStatusConfirmed, paymentApprovedMessage); err != nil {
			log.Printf("[payment][usecase] order confirm failed order_id=%s err=%v", orderID, err)
			return p, err
		}
	}
	log.Printf("[payment][usecase] pay-order success order_id=%s payment_id=%s status=%s", orderID, p.ID, p.Status)
	return p, nil
}

func (u *OrderPaymentUseCase) ListOrderPayments(_ context.Context, orderID string) ([]entities.OrderPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	out := []entities.OrderPayment{}
	for _, p := range u.payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (u *OrderPaymentUseCase) appendPayment(ctx context.Context, p entities.OrderPayment) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	next := append(slices.Clip(u.payments), p)
	if err := saveCollection(ctx, u.store, PaymentsCollectionKey, next); err != nil {
		return err
	}
	u.payments = next
	return nil
}

func (u *OrderPaymentUseCase) hasApprovedPayment(orderID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	return slices.ContainsFunc(u.payments, func(p entities.OrderPayment) bool {
		return p.OrderID == orderID && p.Status == entities.PaymentStatusApproved
	})
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.email from the order customer when the caller
// supplied neither a payer id nor an email.
func ensurePayerDefaults(m map[string]any, customerEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && strings.TrimSpace(customerEmail) != "" {
		payer["email"] = strings.TrimSpace(customerEmail)
	}
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
