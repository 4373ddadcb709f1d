package usecase

import (
	"strings"

	"nardoo_storefront/internal/domain/entities"
)

// ShippingCost quotes delivery for a free-form address using entities.ShippingRates.
func ShippingCost(address string) float64 {
	addr := strings.ToLower(address)
	for _, rate := range entities.ShippingRates {
		if strings.Contains(addr, rate.Region) {
			return rate.Cost
		}
	}
	return entities.DefaultShippingCost
}
