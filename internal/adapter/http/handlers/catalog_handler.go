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

var errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)

// CatalogHandler exposes the product catalog and the merchant panel.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var query request.ProductQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	products, err := h.usecase.ListProducts(c.Request.Context(), query.ToFilter())
	if err != nil {
		respondCatalogError(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.usecase.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondCatalogError(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	actor, ok := actorFromRequest(c)
	if !ok {
		return
	}
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[catalog][handler] create invalid payload err=%v", err)
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.CreateProduct(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		respondCatalogError(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	actor, ok := actorFromRequest(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[catalog][handler] update invalid payload err=%v", err)
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.UpdateProduct(c.Request.Context(), actor, id, payload.ToInput())
	if err != nil {
		respondCatalogError(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	actor, ok := actorFromRequest(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.DeleteProduct(c.Request.Context(), actor, id); err != nil {
		respondCatalogError(c, "delete", err)
		return
	}
	c.JSON(http.StatusOK, response.DeleteProductResponse{ProductID: id, Deleted: true})
}

// MerchantSummary reports on the calling merchant's own products.
func (h *CatalogHandler) MerchantSummary(c *gin.Context) {
	actor, ok := actorFromRequest(c)
	if !ok {
		return
	}

	summary, err := h.usecase.MerchantSummary(c.Request.Context(), actor.UserID)
	if err != nil {
		respondCatalogError(c, "merchant-summary", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func respondCatalogError(c *gin.Context, op string, err error) {
	appErr := mapCatalogError(err)
	log.Printf("[catalog][handler] %s failed id=%s status=%d err=%v", op, c.Param("id"), appErr.HTTPStatus, err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProduct):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT", "Name, price and stock are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProductCategory):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT_CATEGORY", "Unknown product category", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Product belongs to another merchant", http.StatusForbidden)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
