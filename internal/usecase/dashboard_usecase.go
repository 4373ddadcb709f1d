package usecase

import (
	"context"
	"log"

	"nardoo_storefront/internal/domain/entities"
)

//go:generate mockgen -source=dashboard_usecase.go -destination=../adapter/http/handlers/mocks/mock_dashboard_usecase.go -package=mocks

// IOrderStatisticsReader is the slice of the ledger the dashboard reads.
type IOrderStatisticsReader interface {
	GetOrderStatistics(ctx context.Context) (entities.OrderStatistics, error)
}

// IAnalyticsReportReader is the slice of the aggregator the dashboard reads.
type IAnalyticsReportReader interface {
	GenerateComprehensiveReport(ctx context.Context) (entities.AnalyticsReport, error)
}

type IDashboardUseCase interface {
	Overview(ctx context.Context) (entities.DashboardOverview, error)
}

type DashboardUseCase struct {
	orders    IOrderStatisticsReader
	analytics IAnalyticsReportReader
	now       Clock
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(orders IOrderStatisticsReader, analytics IAnalyticsReportReader, clock Clock) *DashboardUseCase {
	if clock == nil {
		clock = SystemClock
	}
	return &DashboardUseCase{orders: orders, analytics: analytics, now: clock}
}

func (u *DashboardUseCase) Overview(ctx context.Context) (entities.DashboardOverview, error) {
	stats, err := u.orders.GetOrderStatistics(ctx)
	if err != nil {
		log.Printf("[dashboard][usecase] order statistics failed err=%v", err)
		return entities.DashboardOverview{}, err
	}
	report, err := u.analytics.GenerateComprehensiveReport(ctx)
	if err != nil {
		log.Printf("[dashboard][usecase] analytics report failed err=%v", err)
		return entities.DashboardOverview{}, err
	}
	return entities.DashboardOverview{
		GeneratedAt: u.now(),
		Orders:      stats,
		Analytics:   report,
	}, nil
}
