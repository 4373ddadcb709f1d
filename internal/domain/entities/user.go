package entities

import "time"

// User is a storefront account. PasswordHash is a bcrypt hash and never leaves the service.
type User struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"password_hash"`
	Role          Role      `json:"role"`
	MerchantLevel string    `json:"merchant_level,omitempty"`
	MerchantDesc  string    `json:"merchant_desc,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (u User) IsMerchant() bool {
	return u.Role == RoleMerchantApproved || u.Role == RoleMerchantPending
}

// MerchantDirectory groups merchant accounts for the admin panel.
type MerchantDirectory struct {
	Pending  []User `json:"pending"`
	Approved []User `json:"approved"`
}
