package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"nardoo_storefront/internal/domain/entities"
	"nardoo_storefront/internal/usecase/interfaces"
)

//go:generate mockgen -source=catalog_usecase.go -destination=../adapter/http/handlers/mocks/mock_catalog_usecase.go -package=mocks

var (
	ErrProductNotFound        = errors.New("product not found")
	ErrInvalidProduct         = errors.New("invalid product")
	ErrInvalidProductCategory = errors.New("invalid product category")
	ErrProductForbidden       = errors.New("product belongs to another merchant")
)

// Actor is the caller of a catalog write.
type Actor struct {
	UserID int64
	Role   entities.Role
}

// ProductInput is a create or update payload. MerchantID is honoured for admins only;
// approved merchants always own what they write.
type ProductInput struct {
	Name       string
	Category   entities.ProductCategory
	Price      float64
	Stock      int
	Images     []string
	MerchantID *int64
}

// ProductFilter narrows ListProducts. Out-of-stock products are hidden unless
// IncludeOutOfStock is set.
type ProductFilter struct {
	Category          entities.ProductCategory
	MerchantID        *int64
	Search            string
	IncludeOutOfStock bool
}

// ICatalogUseCase owns the product collection.

type ICatalogUseCase interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]entities.Product, error)
	GetProduct(ctx context.Context, id int64) (entities.Product, error)
	CreateProduct(ctx context.Context, actor Actor, in ProductInput) (entities.Product, error)
	UpdateProduct(ctx context.Context, actor Actor, id int64, in ProductInput) (entities.Product, error)
	DeleteProduct(ctx context.Context, actor Actor, id int64) error
	MerchantSummary(ctx context.Context, merchantID int64) (entities.MerchantSummary, error)
}

type CatalogUseCase struct {
	mu       sync.Mutex
	store    interfaces.IKeyValueStore
	tracker  IEventTracker
	now      Clock
	products []entities.Product
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

// NewCatalogUseCase loads the product collection, seeding the starter catalog
// when the store has never held one. tracker and clock may be nil.
func NewCatalogUseCase(ctx context.Context, store interfaces.IKeyValueStore, tracker IEventTracker, clock Clock) (*CatalogUseCase, error) {
	if clock == nil {
		clock = SystemClock
	}
	raw, err := store.Get(ctx, ProductsCollectionKey)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", ProductsCollectionKey, err)
	}

	var products []entities.Product
	if raw == nil {
		products = defaultProducts(clock())
		if err := saveCollection(ctx, store, ProductsCollectionKey, products); err != nil {
			return nil, err
		}
		log.Printf("[catalog][usecase] seeded products=%d", len(products))
	} else {
		products, err = loadCollection[entities.Product](ctx, store, ProductsCollectionKey)
		if err != nil {
			return nil, err
		}
	}
	log.Printf("[catalog][usecase] catalog loaded products=%d", len(products))
	return &CatalogUseCase{store: store, tracker: tracker, now: clock, products: products}, nil
}

func (u *CatalogUseCase) ListProducts(ctx context.Context, filter ProductFilter) ([]entities.Product, error) {
	term := strings.TrimSpace(filter.Search)
	search := strings.ToLower(term)

	u.mu.Lock()
	out := make([]entities.Product, 0, len(u.products))
	for _, p := range u.products {
		if !filter.IncludeOutOfStock && !p.InStock() {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.MerchantID != nil && !p.OwnedBy(*filter.MerchantID) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}
	u.mu.Unlock()

	if search != "" {
		track(ctx, u.tracker, entities.EventTypeSearch, map[string]any{entities.EventDataSearchTerm: term})
	}
	return out, nil
}

func (u *CatalogUseCase) GetProduct(_ context.Context, id int64) (entities.Product, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexOf(id)
	if idx < 0 {
		return entities.Product{}, ErrProductNotFound
	}
	return u.products[idx], nil
}

func (u *CatalogUseCase) CreateProduct(ctx context.Context, actor Actor, in ProductInput) (entities.Product, error) {
	if err := authorizeCatalogWrite(actor); err != nil {
		return entities.Product{}, err
	}
	in, err := normalizeProductInput(in)
	if err != nil {
		return entities.Product{}, err
	}

	product, err := func() (entities.Product, error) {
		u.mu.Lock()
		defer u.mu.Unlock()

		now := u.now()
		var maxID int64
		for _, p := range u.products {
			maxID = max(maxID, p.ID)
		}
		images := in.Images
		if len(images) == 0 {
			images = []string{entities.DefaultProductImage}
		}
		product := entities.Product{
			ID:         maxID + 1,
			Name:       in.Name,
			Category:   in.Category,
			Price:      in.Price,
			Stock:      in.Stock,
			Rating:     entities.DefaultProductRating,
			Images:     images,
			MerchantID: ownerFor(actor, in.MerchantID),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		next := append(slices.Clip(u.products), product)
		if err := saveCollection(ctx, u.store, ProductsCollectionKey, next); err != nil {
			return entities.Product{}, err
		}
		u.products = next
		return product, nil
	}()
	if err != nil {
		log.Printf("[catalog][usecase] create failed name=%q err=%v", in.Name, err)
		return entities.Product{}, err
	}

	log.Printf("[catalog][usecase] create success product_id=%d role=%s", product.ID, actor.Role)
	track(ctx, u.tracker, entities.EventTypeProductAdded, map[string]any{"name": product.Name, "merchantId": product.MerchantID})
	return product, nil
}

func (u *CatalogUseCase) UpdateProduct(ctx context.Context, actor Actor, id int64, in ProductInput) (entities.Product, error) {
	if err := authorizeCatalogWrite(actor); err != nil {
		return entities.Product{}, err
	}
	in, err := normalizeProductInput(in)
	if err != nil {
		return entities.Product{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexOf(id)
	if idx < 0 {
		return entities.Product{}, ErrProductNotFound
	}
	if err := authorizeOwnership(actor, u.products[idx]); err != nil {
		return entities.Product{}, err
	}

	next := slices.Clone(u.products)
	p := &next[idx]
	p.Name = in.Name
	p.Category = in.Category
	p.Price = in.Price
	p.Stock = in.Stock
	p.MerchantID = ownerFor(actor, in.MerchantID)
	if len(in.Images) > 0 {
		p.Images = in.Images
	}
	p.UpdatedAt = u.now()

	if err := saveCollection(ctx, u.store, ProductsCollectionKey, next); err != nil {
		log.Printf("[catalog][usecase] update failed product_id=%d err=%v", id, err)
		return entities.Product{}, err
	}
	u.products = next
	return next[idx], nil
}

func (u *CatalogUseCase) DeleteProduct(ctx context.Context, actor Actor, id int64) error {
	if err := authorizeCatalogWrite(actor); err != nil {
		return err
	}

	err := func() error {
		u.mu.Lock()
		defer u.mu.Unlock()

		idx := u.indexOf(id)
		if idx < 0 {
			return ErrProductNotFound
		}
		if err := authorizeOwnership(actor, u.products[idx]); err != nil {
			return err
		}
		next := slices.Delete(slices.Clone(u.products), idx, idx+1)
		if err := saveCollection(ctx, u.store, ProductsCollectionKey, next); err != nil {
			return err
		}
		u.products = next
		return nil
	}()
	if err != nil {
		log.Printf("[catalog][usecase] delete failed product_id=%d err=%v", id, err)
		return err
	}

	track(ctx, u.tracker, entities.EventTypeProductDeleted, map[string]any{entities.EventDataProductID: id})
	return nil
}

func (u *CatalogUseCase) MerchantSummary(_ context.Context, merchantID int64) (entities.MerchantSummary, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	summary := entities.MerchantSummary{MerchantID: merchantID}
	for _, p := range u.products {
		if !p.OwnedBy(merchantID) {
			continue
		}
		summary.ProductCount++
		if p.InStock() {
			summary.AvailableCount++
		}
		summary.TotalSales += p.Price * float64(p.SoldCount)
	}
	return summary, nil
}

// RecordSale moves checked-out quantities from stock to the sold counter.
// Products removed since the cart was filled are skipped.
func (u *CatalogUseCase) RecordSale(ctx context.Context, items []entities.CartItem) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	next := slices.Clone(u.products)
	for _, it := range items {
		idx := u.indexOf(it.ProductID)
		if idx < 0 {
			continue
		}
		next[idx].Stock = max(next[idx].Stock-it.Quantity, 0)
		next[idx].SoldCount += it.Quantity
	}
	if err := saveCollection(ctx, u.store, ProductsCollectionKey, next); err != nil {
		return err
	}
	u.products = next
	return nil
}

func (u *CatalogUseCase) indexOf(id int64) int {
	return slices.IndexFunc(u.products, func(p entities.Product) bool { return p.ID == id })
}

func authorizeCatalogWrite(actor Actor) error {
	if actor.Role != entities.RoleAdmin && actor.Role != entities.RoleMerchantApproved {
		return ErrProductForbidden
	}
	return nil
}

func authorizeOwnership(actor Actor, p entities.Product) error {
	if actor.Role == entities.RoleMerchantApproved && !p.OwnedBy(actor.UserID) {
		return ErrProductForbidden
	}
	return nil
}

func ownerFor(actor Actor, requested *int64) *int64 {
	if actor.Role == entities.RoleMerchantApproved {
		id := actor.UserID
		return &id
	}
	if requested == nil {
		return nil
	}
	id := *requested
	return &id
}

func normalizeProductInput(in ProductInput) (ProductInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = entities.ProductCategory(strings.ToLower(strings.TrimSpace(string(in.Category))))
	if in.Name == "" || in.Price <= 0 || in.Stock < 0 {
		return ProductInput{}, ErrInvalidProduct
	}
	if !in.Category.IsValid() {
		return ProductInput{}, ErrInvalidProductCategory
	}
	images := make([]string, 0, len(in.Images))
	for _, img := range in.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}
	in.Images = images
	return in, nil
}

func defaultProducts(now time.Time) []entities.Product {
	seed := []struct {
		name     string
		category entities.ProductCategory
		price    float64
		stock    int
		rating   float64
	}{
		{"Ramadan offer - complete spice set", entities.ProductCategoryPromo, 3500, 20, 5.0},
		{"Original biryani spices - house blend", entities.ProductCategorySpices, 4500, 15, 4.5},
		{"Pure saffron - first grade", entities.ProductCategorySpices, 12000, 25, 5.0},
		{"Argan hair oil - 100% organic", entities.ProductCategoryCosmetic, 3500, 8, 4.8},
		{"Natural clay mask", entities.ProductCategoryCosmetic, 2500, 3, 4.3},
		{"Shea butter face cream", entities.ProductCategoryCosmetic, 2800, 12, 4.4},
		{"Wireless bluetooth earbuds", entities.ProductCategoryOther, 6500, 9, 4.6},
		{"Smartphone - 6.5 inch screen", entities.ProductCategoryOther, 45000, 5, 4.7},
		{"Men's cotton shirt", entities.ProductCategoryOther, 3200, 4, 4.2},
	}
	out := make([]entities.Product, 0, len(seed))
	for i, s := range seed {
		out = append(out, entities.Product{
			ID:        int64(i + 1),
			Name:      s.name,
			Category:  s.category,
			Price:     s.price,
			Stock:     s.stock,
			Rating:    s.rating,
			Images:    []string{entities.DefaultProductImage},
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return out
}
