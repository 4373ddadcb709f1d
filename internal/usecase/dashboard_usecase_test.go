package usecase

import (
	"context"
	"errors"
	"testing"

	"nardoo_storefront/internal/adapter/persistence/repository"
	"nardoo_storefront/internal/domain/entities"
)

type failingStats struct{}

func (failingStats) GetOrderStatistics(context.Context) (entities.OrderStatistics, error) {
	return entities.OrderStatistics{}, errors.New("stats down")
}

type failingReport struct{}

func (failingReport) GenerateComprehensiveReport(context.Context) (entities.AnalyticsReport, error) {
	return entities.AnalyticsReport{}, errors.New("report down")
}

func TestDashboardUseCase_Overview(t *testing.T) {
	t.Run("composes both owners", func(t *testing.T) {
		store := repository.NewKeyValueMemoryRepository()
		clock := newFakeClock()
		ledger := newTestLedger(t, store, clock)
		aggregator := newTestAggregator(t, store, clock)
		_, _ = ledger.CreateOrder(context.Background(), sampleOrderInput())
		trackAll(t, aggregator, "addToCart", "checkout")

		uc := NewDashboardUseCase(ledger, aggregator, clock.Now)
		got, err := uc.Overview(context.Background())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Orders.TotalOrders != 1 || got.Orders.TotalRevenue != 2980 {
			t.Fatalf("unexpected order stats %+v", got.Orders)
		}
		if got.Analytics.ConversionRate != 100 || got.Analytics.Summary.TotalEvents != 2 {
			t.Fatalf("unexpected analytics %+v", got.Analytics)
		}
		if !got.GeneratedAt.Equal(clock.now) {
			t.Fatalf("unexpected generated_at %v", got.GeneratedAt)
		}
	})

	t.Run("order statistics error", func(t *testing.T) {
		uc := NewDashboardUseCase(failingStats{}, failingReport{}, nil)
		if _, err := uc.Overview(context.Background()); err == nil || err.Error() != "stats down" {
			t.Fatalf("expected stats down, got %v", err)
		}
	})

	t.Run("analytics report error", func(t *testing.T) {
		ledger := newTestLedger(t, repository.NewKeyValueMemoryRepository(), newFakeClock())
		uc := NewDashboardUseCase(ledger, failingReport{}, nil)
		if _, err := uc.Overview(context.Background()); err == nil || err.Error() != "report down" {
			t.Fatalf("expected report down, got %v", err)
		}
	})
}
