package entities

import "time"

// OrderStatus represents the lifecycle of a storefront order.
//
// Domain notes:
//   - Every order starts as pending.
//   - Any status may follow any other; delivered and cancelled are terminal by convention only.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every status in display order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func (s OrderStatus) IsValid() bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodWhatsApp       PaymentMethod = "whatsapp"
	PaymentMethodBankTransfer   PaymentMethod = "bank_transfer"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentMethodCreditCard     PaymentMethod = "credit_card"

	// DefaultPaymentMethod is the store checkout channel (WhatsApp handoff).
	DefaultPaymentMethod = PaymentMethodWhatsApp
)

var PaymentMethods = []PaymentMethod{
	PaymentMethodWhatsApp,
	PaymentMethodBankTransfer,
	PaymentMethodCashOnDelivery,
	PaymentMethodCreditCard,
}

func (m PaymentMethod) IsValid() bool {
	for _, v := range PaymentMethods {
		if v == m {
			return true
		}
	}
	return false
}

// TaxRate is applied to the order subtotal and rounded half up.
const TaxRate = 0.09

// OrderItem is an immutable line of a placed order.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// LineTotal returns price x quantity.
func (i OrderItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// TimelineEntry records one status change. The timeline is append-only.
type TimelineEntry struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Message   string      `json:"message"`
}

// Order is the storefront order persisted under the orders collection key.
//
// Monetary invariants:
//   - Subtotal = sum(item.Price * item.Quantity)
//   - Tax      = round(Subtotal * TaxRate)
//   - Total    = Subtotal + Tax + Shipping - Discount
type Order struct {
	ID string `json:"id"`

	CustomerID      string `json:"customer_id,omitempty"`
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerEmail   string `json:"customer_email,omitempty"`
	CustomerAddress string `json:"customer_address,omitempty"`

	Items []OrderItem `json:"items"`

	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`

	CouponCode        string `json:"coupon_code,omitempty"`
	CouponDescription string `json:"coupon_description,omitempty"`

	PaymentMethod PaymentMethod `json:"payment_method"`
	Notes         string        `json:"notes"`
	Status        OrderStatus   `json:"status"`

	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Timeline  []TimelineEntry `json:"timeline"`
}

// Coupon maps a code to a discount fraction of the subtotal.
type Coupon struct {
	Code        string  `json:"code"`
	Fraction    float64 `json:"fraction"`
	Description string  `json:"description"`
}
