package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	request "nardoo_storefront/internal/adapter/http/dto/request"
	response "nardoo_storefront/internal/adapter/http/dto/response"
	"nardoo_storefront/internal/usecase"
	"nardoo_storefront/pkg"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.usecase.GetCart(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		respondCartError(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.AddCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	cart, err := h.usecase.AddToCart(c.Request.Context(), c.Param("cart_id"), payload.ProductID)
	if err != nil {
		respondCartError(c, "add", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}
	var payload request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	cart, err := h.usecase.UpdateCartItem(c.Request.Context(), c.Param("cart_id"), productID, *payload.Quantity)
	if err != nil {
		respondCartError(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}

	cart, err := h.usecase.RemoveFromCart(c.Request.Context(), c.Param("cart_id"), productID)
	if err != nil {
		respondCartError(c, "remove", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// Checkout accepts an empty body. The customer id falls back to X-User-ID.
func (h *CartHandler) Checkout(c *gin.Context) {
	var payload request.CheckoutRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
	}
	in := payload.ToInput()
	if in.CustomerID == "" {
		in.CustomerID = strings.TrimSpace(c.GetHeader(HeaderUserID))
	}

	order, err := h.usecase.Checkout(c.Request.Context(), c.Param("cart_id"), in)
	if err != nil {
		respondCartError(c, "checkout", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// QuoteShipping prices delivery to the address query parameter.
func (h *CartHandler) QuoteShipping(c *gin.Context) {
	address := c.Query("address")
	c.JSON(http.StatusOK, response.ShippingQuoteResponse{Address: address, Cost: usecase.ShippingCost(address)})
}

func respondCartError(c *gin.Context, op string, err error) {
	appErr := mapCartError(err)
	log.Printf("[cart][handler] %s failed cart_id=%s status=%d err=%v", op, c.Param("cart_id"), appErr.HTTPStatus, err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCartID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Unknown payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCartItemNotFound):
		return pkg.NewDomainErrorSimple("CART_ITEM_NOT_FOUND", "Product is not in the cart", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductUnavailable):
		return pkg.NewDomainErrorSimple("PRODUCT_UNAVAILABLE", "Product is out of stock", http.StatusConflict)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Requested quantity exceeds stock", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Cart is empty", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
