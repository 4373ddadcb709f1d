package interfaces

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway_interface.go -package=mock_interfaces

// IPaymentGateway abstracts external card payment providers (e.g. Mercado Pago).
//
// The storefront uses it to charge credit_card orders and persists the provider
// response payload for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
