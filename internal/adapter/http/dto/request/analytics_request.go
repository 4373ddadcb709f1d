package request

import (
	"nardoo_storefront/internal/domain/entities"
	"nardoo_storefront/internal/usecase"
)

type TrackEventRequest struct {
	Type      string         `json:"type" binding:"required"`
	Data      map[string]any `json:"data"`
	URL       string         `json:"url"`
	UserAgent string         `json:"user_agent"`
	SessionID string         `json:"session_id"`
}

// ToInput falls back to the request User-Agent header when the body has none.
func (r TrackEventRequest) ToInput(headerUserAgent string) usecase.EventInput {
	ua := r.UserAgent
	if ua == "" {
		ua = headerUserAgent
	}
	return usecase.EventInput{Type: r.Type, Data: r.Data, URL: r.URL, UserAgent: ua, SessionID: r.SessionID}
}

type PageViewRequest struct {
	PageName  string `json:"page_name" binding:"required"`
	PageURL   string `json:"page_url"`
	Referrer  string `json:"referrer"`
	UserAgent string `json:"user_agent"`
	SessionID string `json:"session_id"`
}

func (r PageViewRequest) ToInput(headerUserAgent string) usecase.PageViewInput {
	ua := r.UserAgent
	if ua == "" {
		ua = headerUserAgent
	}
	return usecase.PageViewInput{PageName: r.PageName, PageURL: r.PageURL, Referrer: r.Referrer, UserAgent: ua, SessionID: r.SessionID}
}

type DeviceInfoRequest struct {
	UserAgent        string `json:"user_agent"`
	Language         string `json:"language"`
	Platform         string `json:"platform"`
	ScreenResolution string `json:"screen_resolution"`
	Timezone         string `json:"timezone"`
	CookiesEnabled   bool   `json:"cookies_enabled"`
	Online           bool   `json:"online"`
}

type StartSessionRequest struct {
	UserID     string            `json:"user_id"`
	DeviceInfo DeviceInfoRequest `json:"device_info"`
}

func (r StartSessionRequest) ToDeviceInfo(headerUserAgent string) entities.DeviceInfo {
	d := entities.DeviceInfo{
		UserAgent:        r.DeviceInfo.UserAgent,
		Language:         r.DeviceInfo.Language,
		Platform:         r.DeviceInfo.Platform,
		ScreenResolution: r.DeviceInfo.ScreenResolution,
		Timezone:         r.DeviceInfo.Timezone,
		CookiesEnabled:   r.DeviceInfo.CookiesEnabled,
		Online:           r.DeviceInfo.Online,
	}
	if d.UserAgent == "" {
		d.UserAgent = headerUserAgent
	}
	return d
}
