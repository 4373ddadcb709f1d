package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"nardoo_storefront/internal/adapter/persistence/repository"
	"nardoo_storefront/internal/domain/entities"
	mock_interfaces "nardoo_storefront/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	adminActor    = Actor{UserID: 1, Role: entities.RoleAdmin}
	merchantActor = Actor{UserID: 7, Role: entities.RoleMerchantApproved}
)

func int64Ptr(v int64) *int64 { return &v }

func TestNewCatalogUseCase(t *testing.T) {
	t.Run("seeds an empty store once", func(t *testing.T) {
		store := repository.NewKeyValueMemoryRepository()
		clock := newFakeClock()
		c := newTestCatalog(t, store, nil, clock)

		all, _ := c.ListProducts(context.Background(), ProductFilter{IncludeOutOfStock: true})
		if len(all) != 9 || all[0].ID != 1 || all[8].ID != 9 {
			t.Fatalf("unexpected seed %+v", all)
		}

		if err := c.DeleteProduct(context.Background(), adminActor, 9); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		reloaded := newTestCatalog(t, store, nil, clock)
		all, _ = reloaded.ListProducts(context.Background(), ProductFilter{IncludeOutOfStock: true})
		if len(all) != 8 {
			t.Fatalf("existing catalog must not be reseeded, got %d", len(all))
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIKeyValueStore(ctrl)
		store.EXPECT().Get(gomock.Any(), ProductsCollectionKey).Return(nil, errors.New("db"))

		if _, err := NewCatalogUseCase(context.Background(), store, nil, nil); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestCatalogUseCase_ListProducts(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store := repository.NewKeyValueMemoryRepository()
	tracker := newTestAggregator(t, store, clock)
	c := newTestCatalog(t, store, tracker, clock)

	if _, err := c.CreateProduct(ctx, merchantActor, ProductInput{Name: "Honey jar", Category: entities.ProductCategoryOther, Price: 1500, Stock: 0}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	t.Run("hides out of stock", func(t *testing.T) {
		got, _ := c.ListProducts(ctx, ProductFilter{})
		if len(got) != 9 {
			t.Fatalf("expected 9 in-stock products, got %d", len(got))
		}
		got, _ = c.ListProducts(ctx, ProductFilter{IncludeOutOfStock: true})
		if len(got) != 10 {
			t.Fatalf("expected 10 products, got %d", len(got))
		}
	})

	t.Run("category", func(t *testing.T) {
		got, _ := c.ListProducts(ctx, ProductFilter{Category: entities.ProductCategorySpices})
		if len(got) != 2 {
			t.Fatalf("expected 2 spices, got %d", len(got))
		}
	})

	t.Run("merchant", func(t *testing.T) {
		got, _ := c.ListProducts(ctx, ProductFilter{MerchantID: int64Ptr(7), IncludeOutOfStock: true})
		if len(got) != 1 || got[0].Name != "Honey jar" {
			t.Fatalf("unexpected merchant products %+v", got)
		}
	})

	t.Run("search is case-insensitive and tracked", func(t *testing.T) {
		got, _ := c.ListProducts(ctx, ProductFilter{Search: " SAFFRON "})
		if len(got) != 1 || got[0].ID != 3 {
			t.Fatalf("unexpected search result %+v", got)
		}
		behavior, _ := tracker.GetUserBehavior(ctx)
		if behavior.MostSearchedTerms["SAFFRON"] != 1 {
			t.Fatalf("search not tracked: %v", behavior.MostSearchedTerms)
		}
	})
}

func TestCatalogUseCase_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("merchant owns the product", func(t *testing.T) {
		clock := newFakeClock()
		store := repository.NewKeyValueMemoryRepository()
		tracker := newTestAggregator(t, store, clock)
		c := newTestCatalog(t, store, tracker, clock)

		p, err := c.CreateProduct(ctx, merchantActor, ProductInput{Name: " Dates ", Category: "Other", Price: 900, Stock: 3, MerchantID: int64Ptr(99)})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if p.ID != 10 || p.Name != "Dates" || !p.OwnedBy(7) || p.Rating != entities.DefaultProductRating {
			t.Fatalf("unexpected product %+v", p)
		}
		if len(p.Images) != 1 || p.Images[0] != entities.DefaultProductImage || !p.CreatedAt.Equal(clock.now) {
			t.Fatalf("unexpected defaults %+v", p)
		}
		stats, _ := tracker.GetEventStatistics(ctx)
		if stats.EventsByType[entities.EventTypeProductAdded] != 1 {
			t.Fatalf("productAdded not tracked: %v", stats.EventsByType)
		}
	})

	t.Run("admin picks the merchant", func(t *testing.T) {
		c := newTestCatalog(t, repository.NewKeyValueMemoryRepository(), nil, newFakeClock())
		p, err := c.CreateProduct(ctx, adminActor, ProductInput{Name: "Mint", Category: entities.ProductCategorySpices, Price: 300, Stock: 5, MerchantID: int64Ptr(7), Images: []string{" ", "a.png"}})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !p.OwnedBy(7) || len(p.Images) != 1 || p.Images[0] != "a.png" {
			t.Fatalf("unexpected product %+v", p)
		}
	})

	tests := []struct {
		name  string
		actor Actor
		in    ProductInput
		want  error
	}{
		{"customer", Actor{UserID: 3, Role: entities.RoleCustomer}, ProductInput{Name: "x", Category: "other", Price: 1, Stock: 1}, ErrProductForbidden},
		{"pending merchant", Actor{UserID: 3, Role: entities.RoleMerchantPending}, ProductInput{Name: "x", Category: "other", Price: 1, Stock: 1}, ErrProductForbidden},
		{"blank name", adminActor, ProductInput{Name: " ", Category: "other", Price: 1, Stock: 1}, ErrInvalidProduct},
		{"zero price", adminActor, ProductInput{Name: "x", Category: "other", Price: 0, Stock: 1}, ErrInvalidProduct},
		{"negative stock", adminActor, ProductInput{Name: "x", Category: "other", Price: 1, Stock: -1}, ErrInvalidProduct},
		{"unknown category", adminActor, ProductInput{Name: "x", Category: "toys", Price: 1, Stock: 1}, ErrInvalidProductCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCatalog(t, repository.NewKeyValueMemoryRepository(), nil, newFakeClock())
			if _, err := c.CreateProduct(ctx, tt.actor, tt.in); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCatalogUseCase_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store := repository.NewKeyValueMemoryRepository()
	tracker := newTestAggregator(t, store, clock)
	c := newTestCatalog(t, store, tracker, clock)

	own, err := c.CreateProduct(ctx, merchantActor, ProductInput{Name: "Dates", Category: "other", Price: 900, Stock: 3, Images: []string{"d.png"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	t.Run("merchant cannot touch store products", func(t *testing.T) {
		if _, err := c.UpdateProduct(ctx, merchantActor, 1, ProductInput{Name: "x", Category: "promo", Price: 1, Stock: 1}); !errors.Is(err, ErrProductForbidden) {
			t.Fatalf("expected ErrProductForbidden, got %v", err)
		}
		if err := c.DeleteProduct(ctx, merchantActor, 1); !errors.Is(err, ErrProductForbidden) {
			t.Fatalf("expected ErrProductForbidden, got %v", err)
		}
	})

	t.Run("update keeps images when none are sent", func(t *testing.T) {
		clock.Advance(time.Minute)
		p, err := c.UpdateProduct(ctx, merchantActor, own.ID, ProductInput{Name: "Dates deluxe", Category: "promo", Price: 1200, Stock: 0})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if p.Name != "Dates deluxe" || p.Stock != 0 || p.Images[0] != "d.png" || !p.OwnedBy(7) || !p.UpdatedAt.Equal(clock.now) {
			t.Fatalf("unexpected product %+v", p)
		}
	})

	t.Run("missing product", func(t *testing.T) {
		if _, err := c.UpdateProduct(ctx, adminActor, 404, ProductInput{Name: "x", Category: "promo", Price: 1, Stock: 1}); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
		if _, err := c.GetProduct(ctx, 404); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("owner deletes", func(t *testing.T) {
		if err := c.DeleteProduct(ctx, merchantActor, own.ID); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if err := c.DeleteProduct(ctx, merchantActor, own.ID); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
		stats, _ := tracker.GetEventStatistics(ctx)
		if stats.EventsByType[entities.EventTypeProductDeleted] != 1 {
			t.Fatalf("productDeleted not tracked: %v", stats.EventsByType)
		}
	})
}

func TestCatalogUseCase_RecordSaleAndMerchantSummary(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t, repository.NewKeyValueMemoryRepository(), nil, newFakeClock())

	a, _ := c.CreateProduct(ctx, merchantActor, ProductInput{Name: "Dates", Category: "other", Price: 900, Stock: 3})
	b, _ := c.CreateProduct(ctx, merchantActor, ProductInput{Name: "Figs", Category: "other", Price: 500, Stock: 1})

	err := c.RecordSale(ctx, []entities.CartItem{
		{ProductID: a.ID, Quantity: 2},
		{ProductID: b.ID, Quantity: 5},
		{ProductID: 404, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, _ := c.GetProduct(ctx, b.ID)
	if got.Stock != 0 || got.SoldCount != 5 {
		t.Fatalf("stock must floor at zero: %+v", got)
	}

	summary, _ := c.MerchantSummary(ctx, 7)
	want := entities.MerchantSummary{MerchantID: 7, ProductCount: 2, AvailableCount: 1, TotalSales: 2*900 + 5*500}
	if summary != want {
		t.Fatalf("expected %+v, got %+v", want, summary)
	}
}
