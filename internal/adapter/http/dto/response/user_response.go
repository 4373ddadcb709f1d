package response

import (
	"time"

	"nardoo_storefront/internal/domain/entities"
)

// UserResponse is a User without its password hash.
type UserResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	MerchantLevel string    `json:"merchant_level,omitempty"`
	MerchantDesc  string    `json:"merchant_desc,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          string(u.Role),
		MerchantLevel: u.MerchantLevel,
		MerchantDesc:  u.MerchantDesc,
		CreatedAt:     u.CreatedAt,
	}
}

func FromUsers(users []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

type MerchantDirectoryResponse struct {
	Pending  []UserResponse `json:"pending"`
	Approved []UserResponse `json:"approved"`
}

func FromMerchantDirectory(d entities.MerchantDirectory) MerchantDirectoryResponse {
	return MerchantDirectoryResponse{Pending: FromUsers(d.Pending), Approved: FromUsers(d.Approved)}
}
