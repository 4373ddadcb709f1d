package usecase

import (
	"context"
	"errors"
	"testing"

	"nardoo_storefront/internal/adapter/persistence/repository"
	"nardoo_storefront/internal/domain/entities"
	mock_interfaces "nardoo_storefront/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUserUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("customer and merchant", func(t *testing.T) {
		clock := newFakeClock()
		u := newTestUsers(t, repository.NewKeyValueMemoryRepository(), nil, clock)

		customer, err := u.Register(ctx, RegisterInput{Name: " Amina ", Email: "amina@example.com", Password: "secret"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if customer.ID != 1 || customer.Name != "Amina" || customer.Role != entities.RoleCustomer || !customer.CreatedAt.Equal(clock.now) {
			t.Fatalf("unexpected user %+v", customer)
		}
		if customer.PasswordHash == "" || customer.PasswordHash == "secret" {
			t.Fatalf("password must be hashed")
		}

		merchant, err := u.Register(ctx, RegisterInput{Name: "Karim", Email: "karim@example.com", Password: "pw", Merchant: true, MerchantLevel: "gold", MerchantDesc: "spices"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if merchant.ID != 2 || merchant.Role != entities.RoleMerchantPending || merchant.MerchantLevel != "gold" {
			t.Fatalf("unexpected merchant %+v", merchant)
		}
	})

	t.Run("duplicate email ignores case", func(t *testing.T) {
		u := newTestUsers(t, repository.NewKeyValueMemoryRepository(), nil, newFakeClock())
		if _, err := u.Register(ctx, RegisterInput{Name: "A", Email: "a@example.com", Password: "pw"}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if _, err := u.Register(ctx, RegisterInput{Name: "B", Email: " A@Example.com ", Password: "pw"}); !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		u := newTestUsers(t, repository.NewKeyValueMemoryRepository(), nil, newFakeClock())
		for _, in := range []RegisterInput{
			{Email: "a@example.com", Password: "pw"},
			{Name: "A", Password: "pw"},
			{Name: "A", Email: "a@example.com"},
		} {
			if _, err := u.Register(ctx, in); !errors.Is(err, ErrInvalidUserInput) {
				t.Fatalf("expected ErrInvalidUserInput for %+v, got %v", in, err)
			}
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIKeyValueStore(ctrl)
		store.EXPECT().Get(gomock.Any(), UsersCollectionKey).Return(nil, nil)
		store.EXPECT().Set(gomock.Any(), UsersCollectionKey, gomock.Any()).Return(errors.New("db"))

		u, err := NewUserUseCase(ctx, store, nil, nil)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if _, err := u.Register(ctx, RegisterInput{Name: "A", Email: "a@example.com", Password: "pw"}); err == nil {
			t.Fatalf("expected db error")
		}
		if _, err := u.GetUser(ctx, 1); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("failed registration must not be kept, got %v", err)
		}
	})
}

func TestUserUseCase_Login(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store := repository.NewKeyValueMemoryRepository()
	tracker := newTestAggregator(t, store, clock)
	u := newTestUsers(t, store, tracker, clock)

	if err := u.EnsureAdmin(ctx, "azer", "azer@admin.com", "123456"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	t.Run("by email", func(t *testing.T) {
		user, err := u.Login(ctx, "AZER@admin.com", "123456")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if user.Role != entities.RoleAdmin {
			t.Fatalf("unexpected user %+v", user)
		}
	})

	t.Run("by name", func(t *testing.T) {
		if _, err := u.Login(ctx, "azer", "123456"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("wrong password and unknown user", func(t *testing.T) {
		if _, err := u.Login(ctx, "azer", "nope"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
		if _, err := u.Login(ctx, "ghost", "123456"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
		if _, err := u.Login(ctx, "", ""); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	stats, _ := tracker.GetEventStatistics(ctx)
	if stats.EventsByType[entities.EventTypeLogin] != 2 {
		t.Fatalf("expected 2 login events, got %v", stats.EventsByType)
	}
}

func TestUserUseCase_EnsureAdmin(t *testing.T) {
	ctx := context.Background()
	u := newTestUsers(t, repository.NewKeyValueMemoryRepository(), nil, newFakeClock())

	if err := u.EnsureAdmin(ctx, "azer", "azer@admin.com", "123456"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := u.EnsureAdmin(ctx, "azer", "azer@admin.com", "changed"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := u.Login(ctx, "azer", "123456"); err != nil {
		t.Fatalf("existing admin must be kept: %v", err)
	}
	if _, err := u.GetUser(ctx, 2); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("admin must be seeded once, got %v", err)
	}
}

func TestUserUseCase_MerchantDecisions(t *testing.T) {
	ctx := context.Background()
	u := newTestUsers(t, repository.NewKeyValueMemoryRepository(), nil, newFakeClock())

	a, _ := u.Register(ctx, RegisterInput{Name: "A", Email: "a@example.com", Password: "pw", Merchant: true})
	b, _ := u.Register(ctx, RegisterInput{Name: "B", Email: "b@example.com", Password: "pw", Merchant: true})
	c, _ := u.Register(ctx, RegisterInput{Name: "C", Email: "c@example.com", Password: "pw"})

	dir, _ := u.ListMerchants(ctx)
	if len(dir.Pending) != 2 || len(dir.Approved) != 0 {
		t.Fatalf("unexpected directory %+v", dir)
	}

	approved, err := u.ApproveMerchant(ctx, a.ID)
	if err != nil || approved.Role != entities.RoleMerchantApproved {
		t.Fatalf("unexpected approve result %+v err=%v", approved, err)
	}
	rejected, err := u.RejectMerchant(ctx, b.ID)
	if err != nil || rejected.Role != entities.RoleCustomer {
		t.Fatalf("unexpected reject result %+v err=%v", rejected, err)
	}

	dir, _ = u.ListMerchants(ctx)
	if len(dir.Pending) != 0 || len(dir.Approved) != 1 || dir.Approved[0].ID != a.ID {
		t.Fatalf("unexpected directory %+v", dir)
	}

	if _, err := u.ApproveMerchant(ctx, c.ID); !errors.Is(err, ErrMerchantNotPending) {
		t.Fatalf("expected ErrMerchantNotPending, got %v", err)
	}
	if _, err := u.RejectMerchant(ctx, a.ID); !errors.Is(err, ErrMerchantNotPending) {
		t.Fatalf("expected ErrMerchantNotPending, got %v", err)
	}
	if _, err := u.ApproveMerchant(ctx, 404); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
