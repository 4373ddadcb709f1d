package request

import (
	"strings"

	"nardoo_storefront/internal/domain/entities"
	"nardoo_storefront/internal/usecase"
)

type ProductRequest struct {
	Name       string   `json:"name" binding:"required"`
	Category   string   `json:"category" binding:"required"`
	Price      float64  `json:"price" binding:"gt=0"`
	Stock      int      `json:"stock" binding:"gte=0"`
	Images     []string `json:"images"`
	MerchantID *int64   `json:"merchant_id"`
}

func (r ProductRequest) ToInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:       r.Name,
		Category:   entities.ProductCategory(r.Category),
		Price:      r.Price,
		Stock:      r.Stock,
		Images:     r.Images,
		MerchantID: r.MerchantID,
	}
}

// ProductQuery binds GET /products. Category "all" means no category filter.
type ProductQuery struct {
	Category          string `form:"category"`
	MerchantID        *int64 `form:"merchant_id"`
	Search            string `form:"search"`
	IncludeOutOfStock bool   `form:"include_out_of_stock"`
}

func (q ProductQuery) ToFilter() usecase.ProductFilter {
	category := strings.ToLower(strings.TrimSpace(q.Category))
	if category == "all" {
		category = ""
	}
	return usecase.ProductFilter{
		Category:          entities.ProductCategory(category),
		MerchantID:        q.MerchantID,
		Search:            q.Search,
		IncludeOutOfStock: q.IncludeOutOfStock,
	}
}
