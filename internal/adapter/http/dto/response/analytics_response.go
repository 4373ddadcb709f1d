package response

import (
	"time"

	"nardoo_storefront/internal/domain/entities"
)

type TrackedEventResponse struct {
	EventID   string         `json:"event_id"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	Timestamp time.Time      `json:"timestamp"`
}

func FromTrackedEvent(e entities.TrackedEvent) TrackedEventResponse {
	data := e.Data
	if data == nil {
		data = map[string]any{}
	}
	return TrackedEventResponse{EventID: e.ID, Type: e.Type, Data: data, Timestamp: e.Timestamp}
}

type PageViewResponse struct {
	PageViewID string    `json:"page_view_id"`
	PageName   string    `json:"page_name"`
	Timestamp  time.Time `json:"timestamp"`
}

func FromPageView(pv entities.PageView) PageViewResponse {
	return PageViewResponse{PageViewID: pv.ID, PageName: pv.PageName, Timestamp: pv.Timestamp}
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
}

type ConversionRateResponse struct {
	ConversionRate float64 `json:"conversion_rate"`
}
