package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nardoo_storefront/internal/adapter/http/handlers/mocks"
	"nardoo_storefront/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_Overview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/dashboard", h.Overview)

		uc.EXPECT().Overview(gomock.Any()).Return(entities.DashboardOverview{}, errors.New("boom"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/dashboard", h.Overview)

		uc.EXPECT().Overview(gomock.Any()).Return(entities.DashboardOverview{Orders: entities.OrderStatistics{TotalOrders: 2}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Orders struct {
				TotalOrders int `json:"total_orders"`
			} `json:"orders"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Orders.TotalOrders != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
