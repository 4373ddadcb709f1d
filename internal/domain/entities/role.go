package entities

// Role is the storefront role carried by the X-User-Role header.
type Role string

const (
	RoleAdmin            Role = "admin"
	RoleMerchantApproved Role = "merchant_approved"
	RoleMerchantPending  Role = "merchant_pending"
	RoleCustomer         Role = "customer"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMerchantApproved, RoleMerchantPending, RoleCustomer:
		return true
	}
	return false
}
