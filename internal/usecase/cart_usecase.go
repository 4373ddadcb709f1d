package usecase

import (
	"context"
	"errors"
	"log"
	"slices"
	"strconv"
	"strings"
	"sync"

	"nardoo_storefront/internal/domain/entities"
	"nardoo_storefront/internal/usecase/interfaces"
)

//go:generate mockgen -source=cart_usecase.go -destination=../adapter/http/handlers/mocks/mock_cart_usecase.go -package=mocks

var (
	ErrInvalidCartID      = errors.New("invalid cart id")
	ErrProductUnavailable = errors.New("product out of stock")
	ErrInsufficientStock  = errors.New("requested quantity exceeds stock")
	ErrCartItemNotFound   = errors.New("product not in cart")
	ErrEmptyCart          = errors.New("cart is empty")
)

// DefaultCheckoutCustomerName is recorded when a cart is checked out anonymously.
const DefaultCheckoutCustomerName = "Customer"

// CheckoutInput carries the delivery details added to a cart at checkout.
// Shipping is quoted from CustomerAddress.
type CheckoutInput struct {
	CustomerID      string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string
	PaymentMethod   entities.PaymentMethod
	Notes           string
}

// IProductStock is the slice of the catalog the cart reads and settles against.
type IProductStock interface {
	GetProduct(ctx context.Context, id int64) (entities.Product, error)
	RecordSale(ctx context.Context, items []entities.CartItem) error
}

// IOrderCreator is the slice of the ledger checkout writes to.
type IOrderCreator interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error)
}

type ICartUseCase interface {
	GetCart(ctx context.Context, cartID string) (entities.Cart, error)
	AddToCart(ctx context.Context, cartID string, productID int64) (entities.Cart, error)
	UpdateCartItem(ctx context.Context, cartID string, productID int64, quantity int) (entities.Cart, error)
	RemoveFromCart(ctx context.Context, cartID string, productID int64) (entities.Cart, error)
	Checkout(ctx context.Context, cartID string, in CheckoutInput) (entities.Order, error)
}

type CartUseCase struct {
	mu       sync.Mutex
	store    interfaces.IKeyValueStore
	products IProductStock
	orders   IOrderCreator
	tracker  IEventTracker
	now      Clock
	carts    []entities.Cart
}

var (
	_ ICartUseCase  = (*CartUseCase)(nil)
	_ IProductStock = (*CatalogUseCase)(nil)
	_ IOrderCreator = (*OrderLedger)(nil)
)

// NewCartUseCase loads the cart collection. tracker and clock may be nil.
func NewCartUseCase(ctx context.Context, store interfaces.IKeyValueStore, products IProductStock, orders IOrderCreator, tracker IEventTracker, clock Clock) (*CartUseCase, error) {
	if clock == nil {
		clock = SystemClock
	}
	carts, err := loadCollection[entities.Cart](ctx, store, CartsCollectionKey)
	if err != nil {
		return nil, err
	}
	log.Printf("[cart][usecase] carts loaded carts=%d", len(carts))
	return &CartUseCase{store: store, products: products, orders: orders, tracker: tracker, now: clock, carts: carts}, nil
}

// GetCart returns an empty cart for ids that hold nothing.
func (u *CartUseCase) GetCart(_ context.Context, cartID string) (entities.Cart, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.Cart{}, ErrInvalidCartID
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cartFor(cartID), nil
}

// AddToCart adds one unit of productID, never beyond the product's stock.
func (u *CartUseCase) AddToCart(ctx context.Context, cartID string, productID int64) (entities.Cart, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.Cart{}, ErrInvalidCartID
	}
	product, err := u.products.GetProduct(ctx, productID)
	if err != nil {
		return entities.Cart{}, err
	}
	if !product.InStock() {
		return entities.Cart{}, ErrProductUnavailable
	}

	cart, err := func() (entities.Cart, error) {
		u.mu.Lock()
		defer u.mu.Unlock()

		cart := u.cartFor(cartID)
		if idx := cart.ItemIndex(productID); idx >= 0 {
			if cart.Items[idx].Quantity >= product.Stock {
				return entities.Cart{}, ErrInsufficientStock
			}
			cart.Items[idx].Quantity++
		} else {
			image := ""
			if len(product.Images) > 0 {
				image = product.Images[0]
			}
			cart.Items = append(cart.Items, entities.CartItem{
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  1,
				Image:     image,
			})
		}
		if err := u.saveCart(ctx, &cart); err != nil {
			return entities.Cart{}, err
		}
		return cart, nil
	}()
	if err != nil {
		log.Printf("[cart][usecase] add failed cart_id=%s product_id=%d err=%v", cartID, productID, err)
		return entities.Cart{}, err
	}

	track(ctx, u.tracker, entities.EventTypeAddToCart, map[string]any{entities.EventDataProductID: productID})
	return cart, nil
}

// UpdateCartItem sets the quantity of a line. A quantity of zero or less removes it.
func (u *CartUseCase) UpdateCartItem(ctx context.Context, cartID string, productID int64, quantity int) (entities.Cart, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.Cart{}, ErrInvalidCartID
	}
	if quantity <= 0 {
		return u.RemoveFromCart(ctx, cartID, productID)
	}
	product, err := u.products.GetProduct(ctx, productID)
	if err != nil {
		return entities.Cart{}, err
	}
	if quantity > product.Stock {
		return entities.Cart{}, ErrInsufficientStock
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	cart := u.cartFor(cartID)
	idx := cart.ItemIndex(productID)
	if idx < 0 {
		return entities.Cart{}, ErrCartItemNotFound
	}
	cart.Items[idx].Quantity = quantity
	if err := u.saveCart(ctx, &cart); err != nil {
		log.Printf("[cart][usecase] update failed cart_id=%s product_id=%d err=%v", cartID, productID, err)
		return entities.Cart{}, err
	}
	return cart, nil
}

func (u *CartUseCase) RemoveFromCart(ctx context.Context, cartID string, productID int64) (entities.Cart, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.Cart{}, ErrInvalidCartID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	cart := u.cartFor(cartID)
	idx := cart.ItemIndex(productID)
	if idx < 0 {
		return entities.Cart{}, ErrCartItemNotFound
	}
	cart.Items = slices.Delete(cart.Items, idx, idx+1)
	if err := u.saveCart(ctx, &cart); err != nil {
		log.Printf("[cart][usecase] remove failed cart_id=%s product_id=%d err=%v", cartID, productID, err)
		return entities.Cart{}, err
	}
	return cart, nil
}

// Checkout turns the cart into a pending order and empties it. Once the order
// exists, failures to clear the cart or settle stock are logged only.
func (u *CartUseCase) Checkout(ctx context.Context, cartID string, in CheckoutInput) (entities.Order, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.Order{}, ErrInvalidCartID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	cart := u.cartFor(cartID)
	if len(cart.Items) == 0 {
		return entities.Order{}, ErrEmptyCart
	}

	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		name = DefaultCheckoutCustomerName
	}
	items := make([]entities.OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, entities.OrderItem{
			ProductID: strconv.FormatInt(it.ProductID, 10),
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	order, err := u.orders.CreateOrder(ctx, CreateOrderInput{
		CustomerID:      in.CustomerID,
		CustomerName:    name,
		CustomerPhone:   in.CustomerPhone,
		CustomerEmail:   in.CustomerEmail,
		CustomerAddress: in.CustomerAddress,
		Items:           items,
		Shipping:        ShippingCost(in.CustomerAddress),
		PaymentMethod:   in.PaymentMethod,
		Notes:           in.Notes,
	})
	if err != nil {
		log.Printf("[cart][usecase] checkout failed cart_id=%s err=%v", cartID, err)
		return entities.Order{}, err
	}

	if err := u.products.RecordSale(ctx, cart.Items); err != nil {
		log.Printf("[cart][usecase] stock settlement failed order_id=%s err=%v", order.ID, err)
	}
	cart.Items = nil
	if err := u.saveCart(ctx, &cart); err != nil {
		log.Printf("[cart][usecase] clear failed cart_id=%s order_id=%s err=%v", cartID, order.ID, err)
	}

	log.Printf("[cart][usecase] checkout success cart_id=%s order_id=%s total=%.2f", cartID, order.ID, order.Total)
	track(ctx, u.tracker, entities.EventTypeCheckout, map[string]any{entities.EventDataOrderID: order.ID})
	return order, nil
}

// cartFor returns a copy of the stored cart, or a new empty one. Callers hold mu.
func (u *CartUseCase) cartFor(cartID string) entities.Cart {
	for _, c := range u.carts {
		if c.ID == cartID {
			c.Items = slices.Clone(c.Items)
			if c.Items == nil {
				c.Items = []entities.CartItem{}
			}
			return c
		}
	}
	return entities.Cart{ID: cartID, Items: []entities.CartItem{}}
}

// saveCart writes cart into the collection; empty carts are dropped. Callers hold mu.
func (u *CartUseCase) saveCart(ctx context.Context, cart *entities.Cart) error {
	cart.UpdatedAt = u.now()
	next := slices.DeleteFunc(slices.Clone(u.carts), func(c entities.Cart) bool { return c.ID == cart.ID })
	if len(cart.Items) > 0 {
		next = append(next, *cart)
	}
	if err := saveCollection(ctx, u.store, CartsCollectionKey, next); err != nil {
		return err
	}
	u.carts = next
	return nil
}
