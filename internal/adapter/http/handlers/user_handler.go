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

var errInvalidUserPayload = pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Name, email and password are required", http.StatusBadRequest)

// UserHandler exposes registration, login and merchant approval.

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

func (h *UserHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[user][handler] register invalid payload err=%v", err)
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondUserError(c, "register", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

func (h *UserHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	user, err := h.usecase.Login(c.Request.Context(), payload.Identifier, payload.Password)
	if err != nil {
		respondUserError(c, "login", err)
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.usecase.GetUser(c.Request.Context(), id)
	if err != nil {
		respondUserError(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) ListMerchants(c *gin.Context) {
	dir, err := h.usecase.ListMerchants(c.Request.Context())
	if err != nil {
		respondUserError(c, "list-merchants", err)
		return
	}
	c.JSON(http.StatusOK, response.FromMerchantDirectory(dir))
}

func (h *UserHandler) ApproveMerchant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.usecase.ApproveMerchant(c.Request.Context(), id)
	if err != nil {
		respondUserError(c, "approve-merchant", err)
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) RejectMerchant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.usecase.RejectMerchant(c.Request.Context(), id)
	if err != nil {
		respondUserError(c, "reject-merchant", err)
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func respondUserError(c *gin.Context, op string, err error) {
	appErr := mapUserError(err)
	log.Printf("[user][handler] %s failed id=%s status=%d err=%v", op, c.Param("id"), appErr.HTTPStatus, err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserInput):
		return errInvalidUserPayload
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "Email already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrMerchantNotPending):
		return pkg.NewDomainErrorSimple("MERCHANT_NOT_PENDING", "User is not a pending merchant", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
