package usecase

import (
	"context"
	"testing"
	"time"

	"nardoo_storefront/internal/adapter/persistence/repository"

	"golang.org/x/crypto/bcrypt"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestLedger(t *testing.T, store *repository.KeyValueMemoryRepository, clock *fakeClock) *OrderLedger {
	t.Helper()
	l, err := NewOrderLedger(context.Background(), store, nil, clock.Now)
	if err != nil {
		t.Fatalf("NewOrderLedger: %v", err)
	}
	return l
}

func newTestAggregator(t *testing.T, store *repository.KeyValueMemoryRepository, clock *fakeClock) *AnalyticsAggregator {
	t.Helper()
	a, err := NewAnalyticsAggregator(context.Background(), store, nil, clock.Now)
	if err != nil {
		t.Fatalf("NewAnalyticsAggregator: %v", err)
	}
	return a
}

func newTestCatalog(t *testing.T, store *repository.KeyValueMemoryRepository, tracker IEventTracker, clock *fakeClock) *CatalogUseCase {
	t.Helper()
	c, err := NewCatalogUseCase(context.Background(), store, tracker, clock.Now)
	if err != nil {
		t.Fatalf("NewCatalogUseCase: %v", err)
	}
	return c
}

func newTestUsers(t *testing.T, store *repository.KeyValueMemoryRepository, tracker IEventTracker, clock *fakeClock) *UserUseCase {
	t.Helper()
	u, err := NewUserUseCase(context.Background(), store, tracker, clock.Now)
	if err != nil {
		t.Fatalf("NewUserUseCase: %v", err)
	}
	u.hashCost = bcrypt.MinCost
	return u
}
