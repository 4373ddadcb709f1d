package request

import "encoding/json"

// OrderPaymentCreateRequest is the payload of POST /orders/:id/payments.
//
// `provider_payload` is forwarded to Mercado Pago as-is (raw JSON); a body without the
// envelope is treated as the provider payload itself.

type OrderPaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
