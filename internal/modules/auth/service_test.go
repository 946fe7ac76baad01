package auth

import (
	"context"
	"errors"
	"testing"

	"venuehub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	if user != nil {
		user.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockJWT struct {
	mock.Mock
}

func (m *MockJWT) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	users.On("EmailExists", mock.Anything, "new@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	jwt.On("GenerateToken", int64(42), "client").Return("token-123", nil)

	service := NewService(users, jwt)
	user, token, err := service.Register(context.Background(), RegisterRequest{
		Email:    "New@Example.com ",
		Password: "password123",
		Name:     "New User",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.Equal(t, "token-123", token)
	assert.Empty(t, user.PasswordHash)
}

func TestService_Register_VenueOwnerRole(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	users.On("EmailExists", mock.Anything, "owner@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	jwt.On("GenerateToken", int64(42), "venue_owner").Return("token-456", nil)

	service := NewService(users, jwt)
	user, _, err := service.Register(context.Background(), RegisterRequest{
		Email:    "owner@example.com",
		Password: "password123",
		Name:     "Owner",
		Role:     "venue_owner",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleVenueOwner, user.Role)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("EmailExists", mock.Anything, "taken@example.com").Return(true, nil)

	service := NewService(users, new(MockJWT))
	_, _, err := service.Register(context.Background(), RegisterRequest{
		Email:    "taken@example.com",
		Password: "password123",
		Name:     "Dup",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestService_Login_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)

	users := new(MockUserRepository)
	jwt := new(MockJWT)
	users.On("GetByEmail", mock.Anything, "user@example.com").Return(&domain.User{
		ID:           42,
		Email:        "user@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
	}, nil)
	jwt.On("GenerateToken", int64(42), "client").Return("token-789", nil)

	service := NewService(users, jwt)
	user, token, err := service.Login(context.Background(), LoginRequest{
		Email:    "User@Example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-789", token)
	assert.Empty(t, user.PasswordHash)
}

func TestService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)

	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "user@example.com").Return(&domain.User{
		ID:           42,
		PasswordHash: string(hash),
	}, nil)

	service := NewService(users, new(MockJWT))
	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, errors.New("record not found"))

	service := NewService(users, new(MockJWT))
	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
