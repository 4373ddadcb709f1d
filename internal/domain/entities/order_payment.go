package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the card payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// OrderPayment is a card payment attempt for an order.
//
// Storage model: appended to the payments collection key, looked up by order_id.
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original provider body (JSON) for traceability/audit.
//   - ProviderPayload is the parsed representation, useful for querying/debugging.

type OrderPayment struct {
	ID             string        `json:"id"`
	OrderID        string        `json:"order_id"`
	Amount         float64       `json:"amount"`
	Date           time.Time     `json:"date"`
	Status         PaymentStatus `json:"status"`
	ProviderStatus string        `json:"provider_status,omitempty"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
