package response

import (
	"time"

	"nardoo_storefront/internal/domain/entities"
)

type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type TimelineEntryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

type OrderResponse struct {
	OrderID         string                  `json:"order_id"`
	CustomerID      string                  `json:"customer_id,omitempty"`
	CustomerName    string                  `json:"customer_name"`
	CustomerPhone   string                  `json:"customer_phone"`
	CustomerEmail   string                  `json:"customer_email,omitempty"`
	CustomerAddress string                  `json:"customer_address,omitempty"`
	Items           []OrderItemResponse     `json:"items"`
	Subtotal        float64                 `json:"subtotal"`
	Tax             float64                 `json:"tax"`
	Shipping        float64                 `json:"shipping"`
	Discount        float64                 `json:"discount"`
	Total           float64                 `json:"total"`
	CouponCode      string                  `json:"coupon_code,omitempty"`
	PaymentMethod   string                  `json:"payment_method"`
	Notes           string                  `json:"notes"`
	Status          string                  `json:"status"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
	Timeline        []TimelineEntryResponse `json:"timeline"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal(),
		})
	}
	timeline := make([]TimelineEntryResponse, 0, len(o.Timeline))
	for _, e := range o.Timeline {
		timeline = append(timeline, TimelineEntryResponse{Status: string(e.Status), Timestamp: e.Timestamp, Message: e.Message})
	}
	return OrderResponse{
		OrderID:         o.ID,
		CustomerID:      o.CustomerID,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerEmail:   o.CustomerEmail,
		CustomerAddress: o.CustomerAddress,
		Items:           items,
		Subtotal:        o.Subtotal,
		Tax:             o.Tax,
		Shipping:        o.Shipping,
		Discount:        o.Discount,
		Total:           o.Total,
		CouponCode:      o.CouponCode,
		PaymentMethod:   string(o.PaymentMethod),
		Notes:           o.Notes,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Timeline:        timeline,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type DeleteOrderResponse struct {
	OrderID string `json:"order_id"`
	Deleted bool   `json:"deleted"`
}

type CleanupOrdersResponse struct {
	RetentionDays int `json:"retention_days"`
	Removed       int `json:"removed"`
}
