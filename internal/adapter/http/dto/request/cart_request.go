package request

import (
	"strings"

	"nardoo_storefront/internal/domain/entities"
	"nardoo_storefront/internal/usecase"
)

type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CheckoutRequest is optional; an empty body checks out anonymously with WhatsApp payment.
type CheckoutRequest struct {
	CustomerID      string `json:"customer_id"`
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerEmail   string `json:"customer_email"`
	CustomerAddress string `json:"customer_address"`
	PaymentMethod   string `json:"payment_method"`
	Notes           string `json:"notes"`
}

func (r CheckoutRequest) ToInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		CustomerID:      strings.TrimSpace(r.CustomerID),
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
		CustomerAddress: r.CustomerAddress,
		PaymentMethod:   entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod))),
		Notes:           r.Notes,
	}
}
