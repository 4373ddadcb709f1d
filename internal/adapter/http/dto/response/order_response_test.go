package response

import (
	"testing"
	"time"

	"nardoo_storefront/internal/domain/entities"
)

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:            "ORD1",
		CustomerName:  "Ana",
		Items:         []entities.OrderItem{{ProductID: "p-1", Price: 500, Quantity: 2}},
		Subtotal:      1000,
		Tax:           90,
		Total:         1090,
		PaymentMethod: entities.PaymentMethodWhatsApp,
		Status:        entities.OrderStatusPending,
		CreatedAt:     now,
		Timeline:      []entities.TimelineEntry{{Status: entities.OrderStatusPending, Timestamp: now, Message: "Order created"}},
	}

	res := FromOrder(o)
	if res.OrderID != "ORD1" || res.Status != "pending" || res.PaymentMethod != "whatsapp" || res.Total != 1090 {
		t.Fatalf("unexpected response %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].LineTotal != 1000 {
		t.Fatalf("unexpected items %+v", res.Items)
	}
	if len(res.Timeline) != 1 || res.Timeline[0].Message != "Order created" || !res.Timeline[0].Timestamp.Equal(now) {
		t.Fatalf("unexpected timeline %+v", res.Timeline)
	}

	empty := FromOrder(entities.Order{})
	if empty.Items == nil || empty.Timeline == nil {
		t.Fatalf("slices must serialize as []")
	}
	if got := FromOrders(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list")
	}
}

func TestFromTrackedEvent(t *testing.T) {
	res := FromTrackedEvent(entities.TrackedEvent{ID: "EVT1", Type: "search"})
	if res.EventID != "EVT1" || res.Data == nil {
		t.Fatalf("unexpected response %+v", res)
	}
}
