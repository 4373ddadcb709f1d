package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"nardoo_storefront/internal/domain/entities"
	"nardoo_storefront/internal/usecase"
	"nardoo_storefront/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserRole = "X-User-Role"
	HeaderUserID   = "X-User-ID"
	contextRoleKey = "user_role"
)

var (
	errForbidden     = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role for this operation", http.StatusForbidden)
	errInvalidUserID = pkg.NewDomainErrorSimple("INVALID_USER_ID", "X-User-ID must be a positive integer", http.StatusBadRequest)
)

// RequireRole lets the request through only when X-User-Role is one of allowed.
func RequireRole(allowed ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entities.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserRole))))
		for _, r := range allowed {
			if role == r {
				c.Set(contextRoleKey, role)
				c.Next()
				return
			}
		}
		log.Printf("[auth][middleware] forbidden method=%s path=%s role=%q", c.Request.Method, c.FullPath(), role)
		c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
	}
}

func headerRole(c *gin.Context) entities.Role {
	if v, ok := c.Get(contextRoleKey); ok {
		if role, ok := v.(entities.Role); ok {
			return role
		}
	}
	return entities.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserRole))))
}

// actorFromRequest reads the caller from X-User-Role and X-User-ID. Approved merchants
// must identify themselves; the header is optional for everyone else. It writes the 400 itself.
func actorFromRequest(c *gin.Context) (usecase.Actor, bool) {
	actor := usecase.Actor{Role: headerRole(c)}
	if raw := strings.TrimSpace(c.GetHeader(HeaderUserID)); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(errInvalidUserID.HTTPStatus, errInvalidUserID.ToHTTPError())
			return usecase.Actor{}, false
		}
		actor.UserID = id
	}
	if actor.Role == entities.RoleMerchantApproved && actor.UserID == 0 {
		c.AbortWithStatusJSON(errInvalidUserID.HTTPStatus, errInvalidUserID.ToHTTPError())
		return usecase.Actor{}, false
	}
	return actor, true
}

// parseIDParam reads a positive integer path parameter. It writes the 400 itself.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return 0, false
	}
	return id, true
}
