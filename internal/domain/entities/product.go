package entities

import "time"

type ProductCategory string

const (
	ProductCategoryPromo    ProductCategory = "promo"
	ProductCategorySpices   ProductCategory = "spices"
	ProductCategoryCosmetic ProductCategory = "cosmetic"
	ProductCategoryOther    ProductCategory = "other"
)

func (c ProductCategory) IsValid() bool {
	switch c {
	case ProductCategoryPromo, ProductCategorySpices, ProductCategoryCosmetic, ProductCategoryOther:
		return true
	}
	return false
}

const (
	DefaultProductRating = 4.5
	DefaultProductImage  = "https://via.placeholder.com/300/2c5e4f/ffffff?text=Nardoo"
)

// Product is a catalog entry. MerchantID is nil for products owned by the store itself.
type Product struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Category   ProductCategory `json:"category"`
	Price      float64         `json:"price"`
	Stock      int             `json:"stock"`
	Rating     float64         `json:"rating"`
	Images     []string        `json:"images"`
	MerchantID *int64          `json:"merchant_id"`
	SoldCount  int             `json:"sold_count"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

func (p Product) OwnedBy(userID int64) bool {
	return p.MerchantID != nil && *p.MerchantID == userID
}

// MerchantSummary feeds the merchant panel.
type MerchantSummary struct {
	MerchantID     int64   `json:"merchant_id"`
	ProductCount   int     `json:"product_count"`
	AvailableCount int     `json:"available_count"`
	TotalSales     float64 `json:"total_sales"`
}
