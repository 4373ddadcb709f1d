package entities

import "time"

// Well-known event types. The type tag itself is free-form.
const (
	EventTypeAddToCart   = "addToCart"
	EventTypeCheckout    = "checkout"
	EventTypePurchase    = "purchase"
	EventTypeSearch      = "search"
	EventTypeViewProduct = "viewProduct"

	EventTypeLogin          = "login"
	EventTypeProductAdded   = "productAdded"
	EventTypeProductDeleted = "productDeleted"
)

// Payload fields read by the behaviour report.
const (
	EventDataProductID  = "productId"
	EventDataSearchTerm = "searchTerm"
	EventDataOrderID    = "orderId"
)

// TrackedEvent is an immutable behavioural record.
type TrackedEvent struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	Timestamp time.Time      `json:"timestamp"`
	URL       string         `json:"url,omitempty"`
	UserAgent string         `json:"user_agent,omitempty"`
}

type PageView struct {
	ID        string    `json:"id"`
	PageName  string    `json:"page_name"`
	PageURL   string    `json:"page_url,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Referrer  string    `json:"referrer,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
}

// DeviceInfo describes the browser that opened a session.
type DeviceInfo struct {
	UserAgent        string `json:"user_agent,omitempty"`
	Language         string `json:"language,omitempty"`
	Platform         string `json:"platform,omitempty"`
	ScreenResolution string `json:"screen_resolution,omitempty"`
	Timezone         string `json:"timezone,omitempty"`
	CookiesEnabled   bool   `json:"cookies_enabled"`
	Online           bool   `json:"online"`
}

// UserSession is open while EndTime is nil. Once closed it is never mutated again.
type UserSession struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
	DurationMS int64      `json:"duration"`
	PageViews  []string   `json:"page_views"`
	Events     []string   `json:"events"`
	DeviceInfo DeviceInfo `json:"device_info"`
}

func (s UserSession) IsClosed() bool {
	return s.EndTime != nil
}
