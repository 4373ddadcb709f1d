package response

import (
	"nardoo_storefront/internal/domain/entities"
)

type CartItemResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
	LineTotal float64 `json:"line_total"`
}

type CartResponse struct {
	CartID    string             `json:"cart_id"`
	Items     []CartItemResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Total     float64            `json:"total"`
}

func FromCart(c entities.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, CartItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
			LineTotal: it.Price * float64(it.Quantity),
		})
	}
	return CartResponse{CartID: c.ID, Items: items, ItemCount: c.ItemCount(), Total: c.Total()}
}

type ShippingQuoteResponse struct {
	Address string  `json:"address"`
	Cost    float64 `json:"cost"`
}
