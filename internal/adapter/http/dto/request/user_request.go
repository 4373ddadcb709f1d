package request

import "nardoo_storefront/internal/usecase"

type RegisterRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	Merchant      bool   `json:"merchant"`
	MerchantLevel string `json:"merchant_level"`
	MerchantDesc  string `json:"merchant_desc"`
}

func (r RegisterRequest) ToInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Name:          r.Name,
		Email:         r.Email,
		Password:      r.Password,
		Merchant:      r.Merchant,
		MerchantLevel: r.MerchantLevel,
		MerchantDesc:  r.MerchantDesc,
	}
}

// LoginRequest accepts the account email or display name as Identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}
