package user

import (
	"context"
	"testing"

	"SaveNServe-Backend/domain"
	"SaveNServe-Backend/entities"
	"SaveNServe-Backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepository struct {
	byID    map[string]*entities.User
	byEmail map[string]*entities.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		byID:    make(map[string]*entities.User),
		byEmail: make(map[string]*entities.User),
	}
}

func (m *mockUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	m.byID[user.ID.String()] = user
	m.byEmail[user.Email] = user
	return nil
}

func (m *mockUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := m.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *mockUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	user, ok := m.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *mockUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	m.byID[user.ID.String()] = user
	m.byEmail[user.Email] = user
	return nil
}

func (m *mockUserRepository) CheckEmailExists(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func newTestUserService() (UserService, *mockUserRepository) {
	repo := newMockUserRepository()
	return NewUserService(repo, jwt.NewJWTService()), repo
}

func TestRegister(t *testing.T) {
	svc, repo := newTestUserService()

	res, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ayu",
		Email:    "ayu@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ayu", res.Name)
	assert.Equal(t, "ayu@example.com", res.Email)

	stored := repo.byEmail["ayu@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, domain.RoleUser, stored.Role)
	assert.False(t, stored.IsVerified)
	// Passwords never land in the store as plaintext.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter22")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()
	req := domain.RegisterRequest{Name: "Ayu", Email: "ayu@example.com", Password: "hunter22"}

	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: "rahasia123",
	})
	require.NoError(t, err)

	res, err := svc.Login(ctx, domain.LoginRequest{Email: "budi@example.com", Password: "rahasia123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, domain.RoleUser, res.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: "rahasia123",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "budi@example.com", Password: "salah"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	svc, repo := newTestUserService()
	ctx := context.Background()

	user := &entities.User{
		ID:           uuid.New(),
		Name:         "Citra",
		Email:        "citra@example.com",
		Role:         domain.RoleUser,
		IsVerified:   true,
		IsSubscribed: true,
	}
	require.NoError(t, repo.CreateUser(ctx, user))

	res, err := svc.Me(ctx, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Citra", res.Name)
	assert.True(t, res.IsVerified)
	assert.True(t, res.IsSubscribed)
}

func TestMe_NotFound(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Me(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateUser_PartialFields(t *testing.T) {
	svc, repo := newTestUserService()
	ctx := context.Background()

	user := &entities.User{
		ID:      uuid.New(),
		Name:    "Dewi",
		Email:   "dewi@example.com",
		Address: "Old Street 1",
	}
	require.NoError(t, repo.CreateUser(ctx, user))

	err := svc.UpdateUser(ctx, domain.UpdateUserRequest{PhoneNumber: "08123"}, user.ID.String())
	require.NoError(t, err)

	updated := repo.byID[user.ID.String()]
	assert.Equal(t, "Dewi", updated.Name)
	assert.Equal(t, "Old Street 1", updated.Address)
	assert.Equal(t, "08123", updated.PhoneNumber)
}

func TestSetSubscribed(t *testing.T) {
	svc, repo := newTestUserService()
	ctx := context.Background()

	user := &entities.User{ID: uuid.New(), Email: "eka@example.com", IsVerified: true}
	require.NoError(t, repo.CreateUser(ctx, user))

	require.NoError(t, svc.SetSubscribed(ctx, user.ID.String(), true))
	assert.True(t, repo.byID[user.ID.String()].IsSubscribed)

	require.NoError(t, svc.SetSubscribed(ctx, user.ID.String(), false))
	assert.False(t, repo.byID[user.ID.String()].IsSubscribed)
}

func TestSetSubscribed_RequiresVerifiedEmail(t *testing.T) {
	svc, repo := newTestUserService()
	ctx := context.Background()

	user := &entities.User{ID: uuid.New(), Email: "gita@example.com"}
	require.NoError(t, repo.CreateUser(ctx, user))

	err := svc.SetSubscribed(ctx, user.ID.String(), true)
	assert.ErrorIs(t, err, domain.ErrEmailNotVerified)
	assert.False(t, repo.byID[user.ID.String()].IsSubscribed)

	// Unsubscribing never needs verification.
	assert.NoError(t, svc.SetSubscribed(ctx, user.ID.String(), false))
}

func TestSendVerificationEmail_AlreadyVerified(t *testing.T) {
	svc, repo := newTestUserService()
	ctx := context.Background()

	user := &entities.User{ID: uuid.New(), Email: "fitri@example.com", IsVerified: true}
	require.NoError(t, repo.CreateUser(ctx, user))

	err := svc.SendVerificationEmail(ctx, user.Email)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyVerified)
}
