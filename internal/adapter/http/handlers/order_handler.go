package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "nardoo_storefront/internal/adapter/http/dto/request"
	response "nardoo_storefront/internal/adapter/http/dto/response"
	"nardoo_storefront/internal/domain/entities"
	"nardoo_storefront/internal/usecase"
	"nardoo_storefront/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidRequest      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// OrderHandler exposes the order ledger.

type OrderHandler struct {
	usecase       usecase.IOrderLedger
	retentionDays int
}

func NewOrderHandler(uc usecase.IOrderLedger, retentionDays int) *OrderHandler {
	return &OrderHandler{usecase: uc, retentionDays: retentionDays}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[order][handler] create invalid payload err=%v", err)
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondOrderError(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondOrderError(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListOrders returns every order, or the filtered subset when query parameters are present.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var query request.OrderSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	var (
		orders []entities.Order
		err    error
	)
	filter := query.ToFilter()
	if filter == (usecase.OrderFilter{}) {
		orders, err = h.usecase.ListOrders(c.Request.Context())
	} else {
		orders, err = h.usecase.SearchOrders(c.Request.Context(), filter)
	}
	if err != nil {
		respondOrderError(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) GetCustomerOrders(c *gin.Context) {
	orders, err := h.usecase.GetCustomerOrders(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		respondOrderError(c, "customer-orders", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateOrderStatus(c.Request.Context(), c.Param("id"), payload.OrderStatus(), payload.Message)
	if err != nil {
		respondOrderError(c, "status-update", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) ApplyCoupon(c *gin.Context) {
	var payload request.ApplyCouponRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	order, err := h.usecase.ApplyCoupon(c.Request.Context(), c.Param("id"), payload.Code)
	if err != nil {
		respondOrderError(c, "coupon", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) AddNote(c *gin.Context) {
	var payload request.AddNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	order, err := h.usecase.AddNote(c.Request.Context(), c.Param("id"), payload.Note)
	if err != nil {
		respondOrderError(c, "note", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.usecase.DeleteOrder(c.Request.Context(), id)
	if err != nil {
		respondOrderError(c, "delete", err)
		return
	}
	if !deleted {
		respondOrderError(c, "delete", usecase.ErrOrderNotFound)
		return
	}
	c.JSON(http.StatusOK, response.DeleteOrderResponse{OrderID: id, Deleted: true})
}

func (h *OrderHandler) GetStatistics(c *gin.Context) {
	stats, err := h.usecase.GetOrderStatistics(c.Request.Context())
	if err != nil {
		respondOrderError(c, "statistics", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *OrderHandler) CleanupOldOrders(c *gin.Context) {
	days, ok := bindRetentionDays(c, h.retentionDays)
	if !ok {
		return
	}

	removed, err := h.usecase.CleanupOldOrders(c.Request.Context(), days)
	if err != nil {
		respondOrderError(c, "cleanup", err)
		return
	}
	c.JSON(http.StatusOK, response.CleanupOrdersResponse{RetentionDays: days, Removed: removed})
}

// bindRetentionDays reads an optional CleanupRequest body. It writes the 400 itself.
func bindRetentionDays(c *gin.Context, def int) (int, bool) {
	var payload request.CleanupRequest
	if c.Request.ContentLength == 0 {
		return def, true
	}
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return 0, false
	}
	if payload.RetentionDays > 0 {
		return payload.RetentionDays, true
	}
	return def, true
}

func respondOrderError(c *gin.Context, op string, err error) {
	appErr := mapOrderError(err)
	log.Printf("[order][handler] %s failed id=%s status=%d err=%v", op, c.Param("id"), appErr.HTTPStatus, err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidOrderItem), errors.Is(err, usecase.ErrInvalidAmount), errors.Is(err, usecase.ErrEmptyNote):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_STATUS", "Unknown order status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Unknown payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConflictingFilters):
		return pkg.NewDomainErrorSimple("CONFLICTING_FILTERS", "search cannot be combined with other filters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCouponNotFound):
		return pkg.NewDomainErrorSimple("COUPON_NOT_FOUND", "Coupon not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
