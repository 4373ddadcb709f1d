package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sort"
	"strings"
	"sync"

	"nardoo_storefront/internal/domain/entities"
	"nardoo_storefront/internal/usecase/interfaces"
)

//go:generate mockgen -source=order_ledger_usecase.go -destination=../adapter/http/handlers/mocks/mock_order_ledger_usecase.go -package=mocks

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidCustomerID    = errors.New("invalid customer id")
	ErrInvalidOrderStatus   = errors.New("invalid order status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidOrderItem     = errors.New("invalid order item")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrCouponNotFound       = errors.New("coupon not found")
	ErrEmptyNote            = errors.New("empty note")
	ErrConflictingFilters   = errors.New("search cannot be combined with other filters")
)

// Event patterns published by the ledger.
const (
	PatternOrderCreated       = "order.created"
	PatternOrderStatusChanged = "order.status_changed"
)

const recentOrdersLimit = 10

// coupons is the fixed coupon table. Codes are stored upper-case.
var coupons = map[string]entities.Coupon{
	"NARDOO10":   {Code: "NARDOO10", Fraction: 0.10, Description: "10% off"},
	"NARDOO20":   {Code: "NARDOO20", Fraction: 0.20, Description: "20% off"},
	"WELCOME":    {Code: "WELCOME", Fraction: 0.15, Description: "Welcome 15% off"},
	"SUMMER2026": {Code: "SUMMER2026", Fraction: 0.25, Description: "Summer sale 25% off"},
}

var statusMessages = map[entities.OrderStatus]string{
	entities.OrderStatusPending:    "Awaiting confirmation",
	entities.OrderStatusConfirmed:  "Order confirmed",
	entities.OrderStatusProcessing: "Order is being processed",
	entities.OrderStatusShipped:    "Order shipped",
	entities.OrderStatusDelivered:  "Order delivered",
	entities.OrderStatusCancelled:  "Order cancelled",
}

const orderCreatedMessage = "Order created"

// CreateOrderInput carries checkout data. Optional fields default to empty/zero.
type CreateOrderInput struct {
	CustomerID      string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string
	Items           []entities.OrderItem
	Shipping        float64
	Discount        float64
	PaymentMethod   entities.PaymentMethod
	Notes           string
}

// OrderFilter constrains SearchOrders. Zero values mean "no constraint".
//
// Search is a free-text match on id, customer name and phone and cannot be
// combined with the structural filters in the same call.
type OrderFilter struct {
	Status        entities.OrderStatus
	CustomerID    string
	PaymentMethod entities.PaymentMethod
	MinTotal      *float64
	MaxTotal      *float64
	Search        string
}

func (f OrderFilter) hasStructural() bool {
	return f.Status != "" || f.CustomerID != "" || f.PaymentMethod != "" || f.MinTotal != nil || f.MaxTotal != nil
}

// IOrderLedger owns the order collection and its status lifecycle.

type IOrderLedger interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	GetCustomerOrders(ctx context.Context, customerID string) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus, message string) (entities.Order, error)
	ApplyCoupon(ctx context.Context, id string, code string) (entities.Order, error)
	AddNote(ctx context.Context, id string, note string) (entities.Order, error)
	SearchOrders(ctx context.Context, filter OrderFilter) ([]entities.Order, error)
	GetOrderStatistics(ctx context.Context) (entities.OrderStatistics, error)
	DeleteOrder(ctx context.Context, id string) (bool, error)
	CleanupOldOrders(ctx context.Context, retentionDays int) (int, error)
}

type OrderLedger struct {
	mu        sync.Mutex
	store     interfaces.IKeyValueStore
	publisher interfaces.IEventPublisher
	now       Clock
	orders    []entities.Order
}

var _ IOrderLedger = (*OrderLedger)(nil)

// NewOrderLedger loads the order collection from store. publisher and clock may be nil.
func NewOrderLedger(ctx context.Context, store interfaces.IKeyValueStore, publisher interfaces.IEventPublisher, clock Clock) (*OrderLedger, error) {
	if clock == nil {
		clock = SystemClock
	}
	orders, err := loadCollection[entities.Order](ctx, store, OrdersCollectionKey)
	if err != nil {
		return nil, err
	}
	log.Printf("[order][usecase] ledger loaded orders=%d", len(orders))
	return &OrderLedger{store: store, publisher: publisher, now: clock, orders: orders}, nil
}

func (l *OrderLedger) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	order, err := l.createOrder(ctx, in)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] create success order_id=%s total=%.2f items=%d", order.ID, order.Total, len(order.Items))
	publish(ctx, l.publisher, PatternOrderCreated, order)
	return order, nil
}

func (l *OrderLedger) createOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	method := in.PaymentMethod
	if method == "" {
		method = entities.DefaultPaymentMethod
	}
	if !method.IsValid() {
		return entities.Order{}, ErrInvalidPaymentMethod
	}
	if in.Shipping < 0 || in.Discount < 0 {
		return entities.Order{}, ErrInvalidAmount
	}
	items := make([]entities.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Price < 0 || it.Quantity < 0 {
			return entities.Order{}, ErrInvalidOrderItem
		}
		it.ProductID = strings.TrimSpace(it.ProductID)
		items = append(items, it)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	order := entities.Order{
		ID:              newOrderID(now),
		CustomerID:      strings.TrimSpace(in.CustomerID),
		CustomerName:    in.CustomerName,
		CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
		CustomerEmail:   strings.TrimSpace(in.CustomerEmail),
		CustomerAddress: in.CustomerAddress,
		Items:           items,
		Shipping:        in.Shipping,
		Discount:        in.Discount,
		PaymentMethod:   method,
		Notes:           in.Notes,
		Status:          entities.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
		Timeline: []entities.TimelineEntry{
			{Status: entities.OrderStatusPending, Timestamp: now, Message: orderCreatedMessage},
		},
	}
	order.Subtotal = subtotalOf(order.Items)
	order.Tax = roundHalfUp(order.Subtotal * entities.TaxRate)
	recomputeTotal(&order)

	next := append(slices.Clip(l.orders), order)
	if err := saveCollection(ctx, l.store, OrdersCollectionKey, next); err != nil {
		log.Printf("[order][usecase] create persist failed err=%v", err)
		return entities.Order{}, err
	}
	l.orders = next
	return cloneOrder(order), nil
}

func (l *OrderLedger) GetOrder(_ context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return entities.Order{}, ErrOrderNotFound
	}
	return cloneOrder(l.orders[idx]), nil
}

func (l *OrderLedger) ListOrders(_ context.Context) ([]entities.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return cloneOrders(l.orders), nil
}

func (l *OrderLedger) GetCustomerOrders(_ context.Context, customerID string) ([]entities.Order, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	out := []entities.Order{}
	for _, o := range l.orders {
		if o.CustomerID == customerID {
			out = append(out, cloneOrder(o))
		}
	}
	return out, nil
}

func (l *OrderLedger) UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus, message string) (entities.Order, error) {
	if !status.IsValid() {
		log.Printf("[order][usecase] status-update invalid status order_id=%s status=%q", id, status)
		return entities.Order{}, ErrInvalidOrderStatus
	}
	message = strings.TrimSpace(message)
	if message == "" {
		message = statusMessages[status]
	}

	var entry entities.TimelineEntry
	updated, err := l.mutate(ctx, id, func(o *entities.Order, now Clock) error {
		ts := now()
		entry = entities.TimelineEntry{Status: status, Timestamp: ts, Message: message}
		o.Status = status
		o.UpdatedAt = ts
		o.Timeline = append(slices.Clip(o.Timeline), entry)
		return nil
	})
	if err != nil {
		log.Printf("[order][usecase] status-update failed order_id=%s status=%s err=%v", id, status, err)
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] status-update success order_id=%s status=%s", updated.ID, updated.Status)

	publish(ctx, l.publisher, PatternOrderStatusChanged, map[string]any{
		"order_id":  updated.ID,
		"status":    entry.Status,
		"message":   entry.Message,
		"timestamp": entry.Timestamp,
	})
	return updated, nil
}

func (l *OrderLedger) ApplyCoupon(ctx context.Context, id string, code string) (entities.Order, error) {
	coupon, ok := coupons[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return entities.Order{}, ErrCouponNotFound
	}

	updated, err := l.mutate(ctx, id, func(o *entities.Order, now Clock) error {
		o.Discount = roundHalfUp(o.Subtotal * coupon.Fraction)
		recomputeTotal(o)
		o.CouponCode = coupon.Code
		o.CouponDescription = coupon.Description
		o.UpdatedAt = now()
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] coupon applied order_id=%s code=%s discount=%.2f", updated.ID, coupon.Code, updated.Discount)
	return updated, nil
}

func (l *OrderLedger) AddNote(ctx context.Context, id string, note string) (entities.Order, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return entities.Order{}, ErrEmptyNote
	}

	return l.mutate(ctx, id, func(o *entities.Order, now Clock) error {
		ts := now()
		o.Notes += fmt.Sprintf("\n[%s]: %s", ts.Format("2006-01-02 15:04:05"), note)
		o.UpdatedAt = ts
		return nil
	})
}

func (l *OrderLedger) SearchOrders(_ context.Context, filter OrderFilter) ([]entities.Order, error) {
	term := strings.ToLower(strings.TrimSpace(filter.Search))
	if term != "" && filter.hasStructural() {
		return nil, ErrConflictingFilters
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, ErrInvalidOrderStatus
	}
	if filter.PaymentMethod != "" && !filter.PaymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	out := []entities.Order{}
	for _, o := range l.orders {
		if term != "" {
			if matchesSearch(o, term) {
				out = append(out, cloneOrder(o))
			}
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.CustomerID != "" && o.CustomerID != filter.CustomerID {
			continue
		}
		if filter.PaymentMethod != "" && o.PaymentMethod != filter.PaymentMethod {
			continue
		}
		if filter.MinTotal != nil && o.Total < *filter.MinTotal {
			continue
		}
		if filter.MaxTotal != nil && o.Total > *filter.MaxTotal {
			continue
		}
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func matchesSearch(o entities.Order, term string) bool {
	return strings.Contains(strings.ToLower(o.ID), term) ||
		strings.Contains(strings.ToLower(o.CustomerName), term) ||
		strings.Contains(o.CustomerPhone, term)
}

func (l *OrderLedger) GetOrderStatistics(_ context.Context) (entities.OrderStatistics, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := entities.OrderStatistics{
		TotalOrders:           len(l.orders),
		OrdersByStatus:        make(map[entities.OrderStatus]int, len(entities.OrderStatuses)),
		OrdersByPaymentMethod: make(map[entities.PaymentMethod]int, len(entities.PaymentMethods)),
		TopCustomers:          map[string]entities.CustomerAggregate{},
	}
	for _, s := range entities.OrderStatuses {
		stats.OrdersByStatus[s] = 0
	}
	for _, m := range entities.PaymentMethods {
		stats.OrdersByPaymentMethod[m] = 0
	}

	for _, o := range l.orders {
		stats.TotalRevenue += o.Total
		stats.OrdersByStatus[o.Status]++
		stats.OrdersByPaymentMethod[o.PaymentMethod]++

		key := o.CustomerID
		if key == "" {
			key = o.CustomerName
		}
		agg := stats.TopCustomers[key]
		agg.Count++
		agg.Total += o.Total
		stats.TopCustomers[key] = agg
	}
	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
	}

	recent := cloneOrders(l.orders)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentOrdersLimit {
		recent = recent[:recentOrdersLimit]
	}
	stats.RecentOrders = recent
	return stats, nil
}

func (l *OrderLedger) DeleteOrder(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, ErrInvalidOrderID
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	next := slices.Delete(slices.Clone(l.orders), idx, idx+1)
	if err := saveCollection(ctx, l.store, OrdersCollectionKey, next); err != nil {
		return false, err
	}
	l.orders = next
	log.Printf("[order][usecase] delete success order_id=%s", id)
	return true, nil
}

// CleanupOldOrders removes orders created strictly before now - retentionDays.
func (l *OrderLedger) CleanupOldOrders(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		retentionDays = DefaultOrderRetentionDays
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := retentionCutoff(l.now(), retentionDays)
	next := make([]entities.Order, 0, len(l.orders))
	for _, o := range l.orders {
		if !o.CreatedAt.Before(cutoff) {
			next = append(next, o)
		}
	}
	if err := saveCollection(ctx, l.store, OrdersCollectionKey, next); err != nil {
		return 0, err
	}
	removed := len(l.orders) - len(next)
	l.orders = next
	log.Printf("[order][usecase] cleanup success retention_days=%d removed=%d", retentionDays, removed)
	return removed, nil
}

// mutate applies fn to a copy of the order and commits it once persisted.
// A failed fn or store write leaves the ledger untouched.
func (l *OrderLedger) mutate(ctx context.Context, id string, fn func(o *entities.Order, now Clock) error) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return entities.Order{}, ErrOrderNotFound
	}
	o := l.orders[idx]
	if err := fn(&o, l.now); err != nil {
		return entities.Order{}, err
	}
	next := slices.Clone(l.orders)
	next[idx] = o
	if err := saveCollection(ctx, l.store, OrdersCollectionKey, next); err != nil {
		return entities.Order{}, err
	}
	l.orders = next
	return cloneOrder(o), nil
}

func (l *OrderLedger) indexOf(id string) int {
	return slices.IndexFunc(l.orders, func(o entities.Order) bool { return o.ID == id })
}

func subtotalOf(items []entities.OrderItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.LineTotal()
	}
	return sum
}

func recomputeTotal(o *entities.Order) {
	o.Total = o.Subtotal + o.Tax + o.Shipping - o.Discount
}

func cloneOrder(o entities.Order) entities.Order {
	o.Items = slices.Clone(o.Items)
	o.Timeline = slices.Clone(o.Timeline)
	return o
}

func cloneOrders(in []entities.Order) []entities.Order {
	out := make([]entities.Order, 0, len(in))
	for _, o := range in {
		out = append(out, cloneOrder(o))
	}
	return out
}
