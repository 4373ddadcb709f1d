package usecase

import (
	"context"
	"errors"
	"testing"

	"nardoo_storefront/internal/adapter/persistence/repository"
	"nardoo_storefront/internal/domain/entities"
)

type cartFixture struct {
	store      *repository.KeyValueMemoryRepository
	catalog    *CatalogUseCase
	ledger     *OrderLedger
	aggregator *AnalyticsAggregator
	cart       *CartUseCase
}

func newCartFixture(t *testing.T) cartFixture {
	t.Helper()
	clock := newFakeClock()
	store := repository.NewKeyValueMemoryRepository()
	aggregator := newTestAggregator(t, store, clock)
	catalog := newTestCatalog(t, store, aggregator, clock)
	ledger := newTestLedger(t, store, clock)
	cart, err := NewCartUseCase(context.Background(), store, catalog, ledger, aggregator, clock.Now)
	if err != nil {
		t.Fatalf("NewCartUseCase: %v", err)
	}
	return cartFixture{store: store, catalog: catalog, ledger: ledger, aggregator: aggregator, cart: cart}
}

type failingOrderCreator struct{}

func (failingOrderCreator) CreateOrder(context.Context, CreateOrderInput) (entities.Order, error) {
	return entities.Order{}, errors.New("ledger offline")
}

func TestCartUseCase_AddToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("stock caps the quantity", func(t *testing.T) {
		f := newCartFixture(t)

		// product 5 has 3 units in the starter catalog
		for i := 0; i < 3; i++ {
			if _, err := f.cart.AddToCart(ctx, "c1", 5); err != nil {
				t.Fatalf("add %d: %v", i, err)
			}
		}
		if _, err := f.cart.AddToCart(ctx, "c1", 5); !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}

		got, _ := f.cart.GetCart(ctx, "c1")
		if len(got.Items) != 1 || got.Items[0].Quantity != 3 || got.Items[0].Price != 2500 || got.Items[0].Image == "" {
			t.Fatalf("unexpected cart %+v", got)
		}
		stats, _ := f.aggregator.GetEventStatistics(ctx)
		if stats.EventsByType[entities.EventTypeAddToCart] != 3 {
			t.Fatalf("expected 3 addToCart events, got %v", stats.EventsByType)
		}
	})

	t.Run("out of stock product", func(t *testing.T) {
		f := newCartFixture(t)
		p, _ := f.catalog.CreateProduct(ctx, adminActor, ProductInput{Name: "Empty", Category: "other", Price: 10, Stock: 0})

		if _, err := f.cart.AddToCart(ctx, "c1", p.ID); !errors.Is(err, ErrProductUnavailable) {
			t.Fatalf("expected ErrProductUnavailable, got %v", err)
		}
	})

	t.Run("unknown product and blank cart", func(t *testing.T) {
		f := newCartFixture(t)
		if _, err := f.cart.AddToCart(ctx, "c1", 404); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
		if _, err := f.cart.AddToCart(ctx, " ", 1); !errors.Is(err, ErrInvalidCartID) {
			t.Fatalf("expected ErrInvalidCartID, got %v", err)
		}
	})

	t.Run("carts survive a reload", func(t *testing.T) {
		f := newCartFixture(t)
		if _, err := f.cart.AddToCart(ctx, "c1", 1); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		reloaded, err := NewCartUseCase(ctx, f.store, f.catalog, f.ledger, nil, nil)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		got, _ := reloaded.GetCart(ctx, "c1")
		if got.ItemCount() != 1 || got.Total() != 3500 {
			t.Fatalf("unexpected cart %+v", got)
		}
	})
}

func TestCartUseCase_UpdateAndRemove(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)
	if _, err := f.cart.AddToCart(ctx, "c1", 4); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	t.Run("set quantity", func(t *testing.T) {
		got, err := f.cart.UpdateCartItem(ctx, "c1", 4, 8)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Items[0].Quantity != 8 || got.Total() != 8*3500 {
			t.Fatalf("unexpected cart %+v", got)
		}
	})

	t.Run("above stock", func(t *testing.T) {
		if _, err := f.cart.UpdateCartItem(ctx, "c1", 4, 9); !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("not in cart", func(t *testing.T) {
		if _, err := f.cart.UpdateCartItem(ctx, "c1", 1, 1); !errors.Is(err, ErrCartItemNotFound) {
			t.Fatalf("expected ErrCartItemNotFound, got %v", err)
		}
		if _, err := f.cart.RemoveFromCart(ctx, "c1", 1); !errors.Is(err, ErrCartItemNotFound) {
			t.Fatalf("expected ErrCartItemNotFound, got %v", err)
		}
	})

	t.Run("zero removes the line", func(t *testing.T) {
		got, err := f.cart.UpdateCartItem(ctx, "c1", 4, 0)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got.Items) != 0 {
			t.Fatalf("expected empty cart, got %+v", got)
		}
	})
}

func TestCartUseCase_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the order and empties the cart", func(t *testing.T) {
		f := newCartFixture(t)
		for _, id := range []int64{2, 2, 3} {
			if _, err := f.cart.AddToCart(ctx, "c1", id); err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
		}

		order, err := f.cart.Checkout(ctx, "c1", CheckoutInput{CustomerID: "7", CustomerAddress: "حي النصر، وهران"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if order.CustomerName != DefaultCheckoutCustomerName || order.PaymentMethod != entities.PaymentMethodWhatsApp {
			t.Fatalf("unexpected defaults %+v", order)
		}
		if order.Shipping != 700 || order.Subtotal != 2*4500+12000 || len(order.Items) != 2 || order.Items[0].ProductID != "2" {
			t.Fatalf("unexpected order %+v", order)
		}
		if _, err := f.ledger.GetOrder(ctx, order.ID); err != nil {
			t.Fatalf("order not stored: %v", err)
		}

		cart, _ := f.cart.GetCart(ctx, "c1")
		if len(cart.Items) != 0 {
			t.Fatalf("cart not cleared %+v", cart)
		}
		saffron, _ := f.catalog.GetProduct(ctx, 3)
		if saffron.Stock != 24 || saffron.SoldCount != 1 {
			t.Fatalf("stock not settled %+v", saffron)
		}
		stats, _ := f.aggregator.GetEventStatistics(ctx)
		if stats.EventsByType[entities.EventTypeCheckout] != 1 {
			t.Fatalf("checkout not tracked: %v", stats.EventsByType)
		}
		if _, err := f.cart.Checkout(ctx, "c1", CheckoutInput{}); !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("invalid payment method keeps the cart", func(t *testing.T) {
		f := newCartFixture(t)
		_, _ = f.cart.AddToCart(ctx, "c1", 1)

		if _, err := f.cart.Checkout(ctx, "c1", CheckoutInput{PaymentMethod: "bitcoin"}); !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
		cart, _ := f.cart.GetCart(ctx, "c1")
		if len(cart.Items) != 1 {
			t.Fatalf("cart must be kept on failure %+v", cart)
		}
	})

	t.Run("ledger failure", func(t *testing.T) {
		f := newCartFixture(t)
		cart, err := NewCartUseCase(ctx, f.store, f.catalog, failingOrderCreator{}, nil, nil)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		_, _ = cart.AddToCart(ctx, "c1", 1)

		if _, err := cart.Checkout(ctx, "c1", CheckoutInput{}); err == nil {
			t.Fatalf("expected error")
		}
		product, _ := f.catalog.GetProduct(ctx, 1)
		if product.Stock != 20 {
			t.Fatalf("stock must not move on failure %+v", product)
		}
	})
}

func TestShippingCost(t *testing.T) {
	tests := []struct {
		address string
		want    float64
	}{
		{"شارع ديدوش مراد، الجزائر العاصمة", 500},
		{"حي النصر، وهران", 700},
		{"تيزي وزو", 650},
		{"الجزائر الشرقية", 500},
		{"الجنوب، ورقلة", 1200},
		{"12 rue Larbi Ben M'hidi, Oran", 700},
		{"Tizi Ouzou centre", 650},
		{"", entities.DefaultShippingCost},
		{"Paris", entities.DefaultShippingCost},
	}
	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			if got := ShippingCost(tt.address); got != tt.want {
				t.Fatalf("ShippingCost(%q) = %v, want %v", tt.address, got, tt.want)
			}
		})
	}
}
