package entities

import "time"

type CartItem struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// Cart is a shopper's basket, identified by a client-chosen id.
type Cart struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (c Cart) ItemIndex(productID int64) int {
	for i, it := range c.Items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

func (c Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c Cart) Total() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
