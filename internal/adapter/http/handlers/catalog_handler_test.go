package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nardoo_storefront/internal/adapter/http/handlers/mocks"
	"nardoo_storefront/internal/domain/entities"
	"nardoo_storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCatalogRouter(t *testing.T) (*gin.Engine, *mocks.MockICatalogUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.GET("/v1/products", h.ListProducts)
	r.GET("/v1/products/:id", h.GetProduct)
	r.POST("/v1/products", h.CreateProduct)
	r.PUT("/v1/products/:id", h.UpdateProduct)
	r.DELETE("/v1/products/:id", h.DeleteProduct)
	r.GET("/v1/merchants/me/summary", h.MerchantSummary)
	return r, uc
}

func doAs(r *gin.Engine, method, path, role, userID, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set(HeaderUserRole, role)
	}
	if userID != "" {
		req.Header.Set(HeaderUserID, userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleProduct() entities.Product {
	merchant := int64(7)
	return entities.Product{ID: 10, Name: "Dates", Category: entities.ProductCategoryOther, Price: 900, Stock: 3, MerchantID: &merchant}
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	t.Run("query becomes a filter", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().ListProducts(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, f usecase.ProductFilter) ([]entities.Product, error) {
			if f.Category != "" || f.Search != "dates" || f.MerchantID == nil || *f.MerchantID != 7 || !f.IncludeOutOfStock {
				t.Fatalf("unexpected filter %+v", f)
			}
			return []entities.Product{sampleProduct()}, nil
		})

		w := doJSON(r, http.MethodGet, "/v1/products?category=all&search=dates&merchant_id=7&include_out_of_stock=true", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []entities.Product
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if len(got) != 1 || got[0].ID != 10 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("bad merchant id", func(t *testing.T) {
		r, _ := newCatalogRouter(t)
		w := doJSON(r, http.MethodGet, "/v1/products?merchant_id=abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	cases := []struct {
		name string
		path string
		err  error
		code int
	}{
		{"found", "/v1/products/10", nil, http.StatusOK},
		{"not found", "/v1/products/404", usecase.ErrProductNotFound, http.StatusNotFound},
		{"internal", "/v1/products/10", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newCatalogRouter(t)
			uc.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Return(sampleProduct(), tc.err)

			w := doJSON(r, http.MethodGet, tc.path, "")
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}

	t.Run("non numeric id", func(t *testing.T) {
		r, _ := newCatalogRouter(t)
		if w := doJSON(r, http.MethodGet, "/v1/products/abc", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_CreateProduct(t *testing.T) {
	body := `{"name":"Dates","category":"other","price":900,"stock":3}`

	t.Run("merchant actor", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().CreateProduct(gomock.Any(), usecase.Actor{UserID: 7, Role: entities.RoleMerchantApproved}, gomock.Any()).Return(sampleProduct(), nil)

		w := doAs(r, http.MethodPost, "/v1/products", "merchant_approved", "7", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("merchant without user id", func(t *testing.T) {
		r, _ := newCatalogRouter(t)
		w := doAs(r, http.MethodPost, "/v1/products", "merchant_approved", "", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newCatalogRouter(t)
		w := doAs(r, http.MethodPost, "/v1/products", "admin", "", `{"name":"Dates","category":"other","price":0,"stock":3}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().CreateProduct(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Product{}, usecase.ErrInvalidProductCategory)

		w := doAs(r, http.MethodPost, "/v1/products", "admin", "", `{"name":"Dates","category":"toys","price":9,"stock":3}`)
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if w.Code != http.StatusBadRequest || resp["code"] != "INVALID_PRODUCT_CATEGORY" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestCatalogHandler_UpdateAndDelete(t *testing.T) {
	t.Run("other merchant's product", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().UpdateProduct(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).Return(entities.Product{}, usecase.ErrProductForbidden)

		w := doAs(r, http.MethodPut, "/v1/products/1", "merchant_approved", "7", `{"name":"x","category":"promo","price":1,"stock":1}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("update", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().UpdateProduct(gomock.Any(), gomock.Any(), int64(10), gomock.Any()).Return(sampleProduct(), nil)

		w := doAs(r, http.MethodPut, "/v1/products/10", "admin", "", `{"name":"Dates","category":"other","price":900,"stock":0}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().DeleteProduct(gomock.Any(), usecase.Actor{Role: entities.RoleAdmin}, int64(10)).Return(nil)

		w := doAs(r, http.MethodDelete, "/v1/products/10", "admin", "", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"deleted":true`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().DeleteProduct(gomock.Any(), gomock.Any(), int64(404)).Return(usecase.ErrProductNotFound)

		if w := doAs(r, http.MethodDelete, "/v1/products/404", "admin", "", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_MerchantSummary(t *testing.T) {
	r, uc := newCatalogRouter(t)
	uc.EXPECT().MerchantSummary(gomock.Any(), int64(7)).Return(entities.MerchantSummary{MerchantID: 7, ProductCount: 2, AvailableCount: 1, TotalSales: 4300}, nil)

	w := doAs(r, http.MethodGet, "/v1/merchants/me/summary", "merchant_approved", "7", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got entities.MerchantSummary
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.TotalSales != 4300 || got.ProductCount != 2 {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
