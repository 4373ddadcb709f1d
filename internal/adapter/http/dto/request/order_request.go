package request

import (
	"strings"

	"nardoo_storefront/internal/domain/entities"
	"nardoo_storefront/internal/usecase"
)

type OrderItemRequest struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price" binding:"gte=0"`
	Quantity  int     `json:"quantity" binding:"gte=0"`
}

// CreateOrderRequest is the checkout payload sent by the storefront cart.
// Customer fields and items are optional; the ledger records whatever it is given.
type CreateOrderRequest struct {
	CustomerID      string             `json:"customer_id"`
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerAddress string             `json:"customer_address"`
	Items           []OrderItemRequest `json:"items" binding:"omitempty,dive"`
	Shipping        float64            `json:"shipping" binding:"gte=0"`
	Discount        float64            `json:"discount" binding:"gte=0"`
	PaymentMethod   string             `json:"payment_method"`
	Notes           string             `json:"notes"`
}

func (r CreateOrderRequest) ToInput() usecase.CreateOrderInput {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	return usecase.CreateOrderInput{
		CustomerID:      r.CustomerID,
		CustomerName:    strings.TrimSpace(r.CustomerName),
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
		CustomerAddress: r.CustomerAddress,
		Items:           items,
		Shipping:        r.Shipping,
		Discount:        r.Discount,
		PaymentMethod:   entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod))),
		Notes:           r.Notes,
	}
}

type UpdateOrderStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Message string `json:"message"`
}

func (r UpdateOrderStatusRequest) OrderStatus() entities.OrderStatus {
	return entities.OrderStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type AddNoteRequest struct {
	Note string `json:"note" binding:"required"`
}

// CleanupRequest is optional; a missing or zero retention_days uses the configured default.
type CleanupRequest struct {
	RetentionDays int `json:"retention_days" binding:"gte=0"`
}

// OrderSearchQuery binds GET /orders query parameters.
type OrderSearchQuery struct {
	Status        string   `form:"status"`
	CustomerID    string   `form:"customer_id"`
	PaymentMethod string   `form:"payment_method"`
	MinTotal      *float64 `form:"min_total"`
	MaxTotal      *float64 `form:"max_total"`
	Search        string   `form:"search"`
}

func (q OrderSearchQuery) ToFilter() usecase.OrderFilter {
	return usecase.OrderFilter{
		Status:        entities.OrderStatus(strings.ToLower(strings.TrimSpace(q.Status))),
		CustomerID:    strings.TrimSpace(q.CustomerID),
		PaymentMethod: entities.PaymentMethod(strings.ToLower(strings.TrimSpace(q.PaymentMethod))),
		MinTotal:      q.MinTotal,
		MaxTotal:      q.MaxTotal,
		Search:        q.Search,
	}
}
