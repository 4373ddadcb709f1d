package entities

import "time"

// CustomerAggregate accumulates orders per customer.
type CustomerAggregate struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// OrderStatistics is recomputed from the full order collection on every call.
type OrderStatistics struct {
	TotalOrders           int                          `json:"total_orders"`
	TotalRevenue          float64                      `json:"total_revenue"`
	AverageOrderValue     float64                      `json:"average_order_value"`
	OrdersByStatus        map[OrderStatus]int          `json:"orders_by_status"`
	OrdersByPaymentMethod map[PaymentMethod]int        `json:"orders_by_payment_method"`
	TopCustomers          map[string]CustomerAggregate `json:"top_customers"`
	RecentOrders          []Order                      `json:"recent_orders"`
}

type VisitStatistics struct {
	TotalPageViews         int            `json:"total_page_views"`
	UniquePages            int            `json:"unique_pages"`
	TotalSessions          int            `json:"total_sessions"`
	AverageSessionDuration int64          `json:"average_session_duration"`
	TopPages               map[string]int `json:"top_pages"`
	Referrers              map[string]int `json:"referrers"`
}

// EventCount pairs an event type with its number of occurrences.
type EventCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type EventStatistics struct {
	TotalEvents  int            `json:"total_events"`
	EventsByType map[string]int `json:"events_by_type"`
	EventsByDate map[string]int `json:"events_by_date"`
	TopEvents    []EventCount   `json:"top_events"`
}

// UserBehavior summarises event streams.
//
// AbandonedCarts is count(addToCart) - count(checkout) over the whole event log and
// may be negative: the two streams are not correlated per order.
type UserBehavior struct {
	MostViewedProducts map[string]int `json:"most_viewed_products"`
	MostSearchedTerms  map[string]int `json:"most_searched_terms"`
	AbandonedCarts     int            `json:"abandoned_carts"`
	CompletedPurchases int            `json:"completed_purchases"`
}

type CleanupResult struct {
	EventsDeleted    int `json:"events_deleted"`
	PageViewsDeleted int `json:"page_views_deleted"`
	SessionsDeleted  int `json:"sessions_deleted"`
}

type ReportSummary struct {
	TotalEvents       int `json:"total_events"`
	TotalPageViews    int `json:"total_page_views"`
	TotalSessions     int `json:"total_sessions"`
	DataRetentionDays int `json:"data_retention_days"`
}

type AnalyticsReport struct {
	GeneratedAt     time.Time       `json:"generated_at"`
	VisitStatistics VisitStatistics `json:"visit_statistics"`
	EventStatistics EventStatistics `json:"event_statistics"`
	UserBehavior    UserBehavior    `json:"user_behavior"`
	ConversionRate  float64         `json:"conversion_rate"`
	Summary         ReportSummary   `json:"summary"`
}

// DashboardOverview is the admin dashboard view over both owners.
type DashboardOverview struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Orders      OrderStatistics `json:"orders"`
	Analytics   AnalyticsReport `json:"analytics"`
}
