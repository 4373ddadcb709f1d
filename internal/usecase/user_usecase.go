package usecase

import (
	"context"
	"errors"
	"log"
	"slices"
	"strings"
	"sync"

	"nardoo_storefront/internal/domain/entities"
	"nardoo_storefront/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_usecase.go -destination=../adapter/http/handlers/mocks/mock_user_usecase.go -package=mocks

var (
	ErrInvalidUserInput   = errors.New("name, email and password are required")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrMerchantNotPending = errors.New("user is not a pending merchant")
)

// RegisterInput creates a customer account, or a pending merchant when Merchant is set.
type RegisterInput struct {
	Name          string
	Email         string
	Password      string
	Merchant      bool
	MerchantLevel string
	MerchantDesc  string
}

// IUserUseCase owns accounts and merchant approval.

type IUserUseCase interface {
	Register(ctx context.Context, in RegisterInput) (entities.User, error)
	Login(ctx context.Context, identifier, password string) (entities.User, error)
	GetUser(ctx context.Context, id int64) (entities.User, error)
	ListMerchants(ctx context.Context) (entities.MerchantDirectory, error)
	ApproveMerchant(ctx context.Context, id int64) (entities.User, error)
	RejectMerchant(ctx context.Context, id int64) (entities.User, error)
}

type UserUseCase struct {
	mu       sync.Mutex
	store    interfaces.IKeyValueStore
	tracker  IEventTracker
	now      Clock
	hashCost int
	users    []entities.User
}

var _ IUserUseCase = (*UserUseCase)(nil)

// NewUserUseCase loads the user collection. tracker and clock may be nil.
func NewUserUseCase(ctx context.Context, store interfaces.IKeyValueStore, tracker IEventTracker, clock Clock) (*UserUseCase, error) {
	if clock == nil {
		clock = SystemClock
	}
	users, err := loadCollection[entities.User](ctx, store, UsersCollectionKey)
	if err != nil {
		return nil, err
	}
	log.Printf("[user][usecase] users loaded users=%d", len(users))
	return &UserUseCase{store: store, tracker: tracker, now: clock, hashCost: bcrypt.DefaultCost, users: users}, nil
}

// EnsureAdmin creates the admin account unless one with the same email exists.
func (u *UserUseCase) EnsureAdmin(ctx context.Context, name, email, password string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.indexByEmail(email) >= 0 {
		return nil
	}
	user, err := u.insert(ctx, RegisterInput{Name: name, Email: email, Password: password}, entities.RoleAdmin)
	if err != nil {
		return err
	}
	log.Printf("[user][usecase] admin seeded user_id=%d", user.ID)
	return nil
}

func (u *UserUseCase) Register(ctx context.Context, in RegisterInput) (entities.User, error) {
	role := entities.RoleCustomer
	if in.Merchant {
		role = entities.RoleMerchantPending
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.indexByEmail(in.Email) >= 0 {
		return entities.User{}, ErrEmailTaken
	}
	user, err := u.insert(ctx, in, role)
	if err != nil {
		log.Printf("[user][usecase] register failed err=%v", err)
		return entities.User{}, err
	}
	log.Printf("[user][usecase] register success user_id=%d role=%s", user.ID, user.Role)
	return user, nil
}

// Login matches identifier against the email or the display name.
func (u *UserUseCase) Login(ctx context.Context, identifier, password string) (entities.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return entities.User{}, ErrInvalidCredentials
	}

	u.mu.Lock()
	idx := slices.IndexFunc(u.users, func(usr entities.User) bool {
		return strings.EqualFold(usr.Email, identifier) || usr.Name == identifier
	})
	var user entities.User
	if idx >= 0 {
		user = u.users[idx]
	}
	u.mu.Unlock()

	if idx < 0 || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		log.Printf("[user][usecase] login rejected")
		return entities.User{}, ErrInvalidCredentials
	}

	track(ctx, u.tracker, entities.EventTypeLogin, map[string]any{"userId": user.ID, "role": string(user.Role)})
	return user, nil
}

func (u *UserUseCase) GetUser(_ context.Context, id int64) (entities.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexOf(id)
	if idx < 0 {
		return entities.User{}, ErrUserNotFound
	}
	return u.users[idx], nil
}

func (u *UserUseCase) ListMerchants(_ context.Context) (entities.MerchantDirectory, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	dir := entities.MerchantDirectory{Pending: []entities.User{}, Approved: []entities.User{}}
	for _, usr := range u.users {
		switch usr.Role {
		case entities.RoleMerchantPending:
			dir.Pending = append(dir.Pending, usr)
		case entities.RoleMerchantApproved:
			dir.Approved = append(dir.Approved, usr)
		}
	}
	return dir, nil
}

func (u *UserUseCase) ApproveMerchant(ctx context.Context, id int64) (entities.User, error) {
	return u.decideMerchant(ctx, id, entities.RoleMerchantApproved)
}

// RejectMerchant turns the applicant back into a plain customer.
func (u *UserUseCase) RejectMerchant(ctx context.Context, id int64) (entities.User, error) {
	return u.decideMerchant(ctx, id, entities.RoleCustomer)
}

func (u *UserUseCase) decideMerchant(ctx context.Context, id int64, role entities.Role) (entities.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexOf(id)
	if idx < 0 {
		return entities.User{}, ErrUserNotFound
	}
	if u.users[idx].Role != entities.RoleMerchantPending {
		return entities.User{}, ErrMerchantNotPending
	}

	next := slices.Clone(u.users)
	next[idx].Role = role
	if err := saveCollection(ctx, u.store, UsersCollectionKey, next); err != nil {
		log.Printf("[user][usecase] merchant decision failed user_id=%d err=%v", id, err)
		return entities.User{}, err
	}
	u.users = next
	log.Printf("[user][usecase] merchant decision user_id=%d role=%s", id, role)
	return next[idx], nil
}

// insert validates, hashes and appends a new account. Callers hold mu.
func (u *UserUseCase) insert(ctx context.Context, in RegisterInput, role entities.Role) (entities.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return entities.User{}, ErrInvalidUserInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.hashCost)
	if err != nil {
		return entities.User{}, err
	}

	var maxID int64
	for _, usr := range u.users {
		maxID = max(maxID, usr.ID)
	}
	user := entities.User{
		ID:           maxID + 1,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    u.now(),
	}
	if role == entities.RoleMerchantPending {
		user.MerchantLevel = strings.TrimSpace(in.MerchantLevel)
		user.MerchantDesc = strings.TrimSpace(in.MerchantDesc)
	}

	next := append(slices.Clip(u.users), user)
	if err := saveCollection(ctx, u.store, UsersCollectionKey, next); err != nil {
		return entities.User{}, err
	}
	u.users = next
	return user, nil
}

func (u *UserUseCase) indexOf(id int64) int {
	return slices.IndexFunc(u.users, func(usr entities.User) bool { return usr.ID == id })
}

func (u *UserUseCase) indexByEmail(email string) int {
	email = strings.TrimSpace(email)
	if email == "" {
		return -1
	}
	return slices.IndexFunc(u.users, func(usr entities.User) bool { return strings.EqualFold(usr.Email, email) })
}
