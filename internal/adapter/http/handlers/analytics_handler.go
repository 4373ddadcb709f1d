package handlers

import (
	"errors"
	"log"
	"net/http"

	request "nardoo_storefront/internal/adapter/http/dto/request"
	response "nardoo_storefront/internal/adapter/http/dto/response"
	"nardoo_storefront/internal/usecase"
	"nardoo_storefront/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAnalyticsPayload = pkg.NewDomainErrorSimple("INVALID_ANALYTICS_INPUT", "Invalid analytics payload", http.StatusBadRequest)

type AnalyticsHandler struct {
	usecase       usecase.IAnalyticsAggregator
	retentionDays int
}

func NewAnalyticsHandler(uc usecase.IAnalyticsAggregator, retentionDays int) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc, retentionDays: retentionDays}
}

func (h *AnalyticsHandler) TrackEvent(c *gin.Context) {
	var payload request.TrackEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[analytics][handler] track-event invalid payload err=%v", err)
		c.JSON(errInvalidAnalyticsPayload.HTTPStatus, errInvalidAnalyticsPayload.ToHTTPError())
		return
	}

	event, err := h.usecase.TrackEvent(c.Request.Context(), payload.ToInput(c.Request.UserAgent()))
	if err != nil {
		respondAnalyticsError(c, "track-event", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromTrackedEvent(event))
}

func (h *AnalyticsHandler) TrackPageView(c *gin.Context) {
	var payload request.PageViewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[analytics][handler] page-view invalid payload err=%v", err)
		c.JSON(errInvalidAnalyticsPayload.HTTPStatus, errInvalidAnalyticsPayload.ToHTTPError())
		return
	}

	pv, err := h.usecase.TrackPageView(c.Request.Context(), payload.ToInput(c.Request.UserAgent()))
	if err != nil {
		respondAnalyticsError(c, "page-view", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPageView(pv))
}

// StartSession accepts an empty body; the device falls back to the request User-Agent.
func (h *AnalyticsHandler) StartSession(c *gin.Context) {
	var payload request.StartSessionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidAnalyticsPayload.HTTPStatus, errInvalidAnalyticsPayload.ToHTTPError())
			return
		}
	}

	id, err := h.usecase.StartSession(c.Request.Context(), payload.UserID, payload.ToDeviceInfo(c.Request.UserAgent()))
	if err != nil {
		respondAnalyticsError(c, "start-session", err)
		return
	}
	c.JSON(http.StatusCreated, response.SessionResponse{SessionID: id})
}

func (h *AnalyticsHandler) EndSession(c *gin.Context) {
	if err := h.usecase.EndSession(c.Request.Context(), c.Param("id")); err != nil {
		respondAnalyticsError(c, "end-session", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AnalyticsHandler) GetVisitStatistics(c *gin.Context) {
	stats, err := h.usecase.GetVisitStatistics(c.Request.Context())
	if err != nil {
		respondAnalyticsError(c, "visits", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) GetEventStatistics(c *gin.Context) {
	stats, err := h.usecase.GetEventStatistics(c.Request.Context())
	if err != nil {
		respondAnalyticsError(c, "events", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) GetConversionRate(c *gin.Context) {
	rate, err := h.usecase.GetConversionRate(c.Request.Context())
	if err != nil {
		respondAnalyticsError(c, "conversion-rate", err)
		return
	}
	c.JSON(http.StatusOK, response.ConversionRateResponse{ConversionRate: rate})
}

func (h *AnalyticsHandler) GetUserBehavior(c *gin.Context) {
	behavior, err := h.usecase.GetUserBehavior(c.Request.Context())
	if err != nil {
		respondAnalyticsError(c, "behavior", err)
		return
	}
	c.JSON(http.StatusOK, behavior)
}

func (h *AnalyticsHandler) GetReport(c *gin.Context) {
	report, err := h.usecase.GenerateComprehensiveReport(c.Request.Context())
	if err != nil {
		respondAnalyticsError(c, "report", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *AnalyticsHandler) CleanupOldData(c *gin.Context) {
	days, ok := bindRetentionDays(c, h.retentionDays)
	if !ok {
		return
	}

	res, err := h.usecase.CleanupOldData(c.Request.Context(), days)
	if err != nil {
		respondAnalyticsError(c, "cleanup", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func respondAnalyticsError(c *gin.Context, op string, err error) {
	appErr := mapAnalyticsError(err)
	log.Printf("[analytics][handler] %s failed status=%d err=%v", op, appErr.HTTPStatus, err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapAnalyticsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEventType):
		return pkg.NewDomainErrorSimple("INVALID_EVENT_TYPE", "Event type is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPageName):
		return pkg.NewDomainErrorSimple("INVALID_PAGE_NAME", "Page name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_SESSION_ID", "Session id is required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
