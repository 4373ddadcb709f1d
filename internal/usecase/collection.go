package usecase

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"nardoo_storefront/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Collection keys of the key-value store.
const (
	OrdersCollectionKey    = "nardoo_orders_management"
	EventsCollectionKey    = "nardoo_analytics_events"
	PageViewsCollectionKey = "nardoo_page_views"
	SessionsCollectionKey  = "nardoo_user_sessions"
	PaymentsCollectionKey  = "nardoo_order_payments"
	ProductsCollectionKey  = "nardoo_products"
	CartsCollectionKey     = "nardoo_carts"
	UsersCollectionKey     = "nardoo_users"
)

// Retention windows in days.
const (
	DefaultOrderRetentionDays     = 180
	DefaultAnalyticsRetentionDays = 90
)

// Clock returns the current time. Tests replace it to pin timestamps.
type Clock func() time.Time

// SystemClock returns UTC now truncated to milliseconds so stored timestamps
// survive a JSON round trip unchanged.
func SystemClock() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func loadCollection[T any](ctx context.Context, store interfaces.IKeyValueStore, key string) ([]T, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	out := []T{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return out, nil
}

func saveCollection[T any](ctx context.Context, store interfaces.IKeyValueStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, b); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func publish(ctx context.Context, publisher interfaces.IEventPublisher, pattern string, data interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, pattern, data); err != nil {
		log.Printf("[events][usecase] publish failed pattern=%s err=%v", pattern, err)
	}
}

// randomSuffix returns n base36 characters drawn from a random UUID.
func randomSuffix(n int) string {
	u := uuid.New()
	s := strconv.FormatUint(binary.BigEndian.Uint64(u[8:]), 36)
	if len(s) < n {
		s = strings.Repeat("0", n-len(s)) + s
	}
	return s[len(s)-n:]
}

func newOrderID(now time.Time) string {
	return "ORD" + strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)+randomSuffix(6))
}

func newEventID(now time.Time) string {
	return "EVT" + strconv.FormatInt(now.UnixMilli(), 10) + randomSuffix(6)
}

func newSessionID(now time.Time) string {
	return "SES" + strconv.FormatInt(now.UnixMilli(), 10) + randomSuffix(6)
}

// roundHalfUp rounds to the nearest integer, halves toward +Inf.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func retentionCutoff(now time.Time, days int) time.Time {
	return now.Add(-time.Duration(days) * 24 * time.Hour)
}
