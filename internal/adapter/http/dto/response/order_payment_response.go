package response

import (
	"time"

	"nardoo_storefront/internal/domain/entities"
)

type OrderPaymentResponse struct {
	PaymentID      string    `json:"payment_id"`
	OrderID        string    `json:"order_id"`
	Amount         float64   `json:"amount"`
	PaymentDate    time.Time `json:"payment_date"`
	Status         string    `json:"status"`
	ProviderStatus string    `json:"provider_status,omitempty"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromOrderPayment(p entities.OrderPayment) OrderPaymentResponse {
	return OrderPaymentResponse{
		PaymentID:          p.ID,
		OrderID:            p.OrderID,
		Amount:             p.Amount,
		PaymentDate:        p.Date,
		Status:             string(p.Status),
		ProviderStatus:     p.ProviderStatus,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromOrderPayments(ps []entities.OrderPayment) []OrderPaymentResponse {
	out := make([]OrderPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromOrderPayment(p))
	}
	return out
}
