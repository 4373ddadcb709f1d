package handlers

import (
	"log"
	"net/http"

	"nardoo_storefront/internal/usecase"
	"nardoo_storefront/pkg"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Overview combines the order statistics and the analytics report.
func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.usecase.Overview(c.Request.Context())
	if err != nil {
		log.Printf("[dashboard][handler] overview failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, overview)
}
