package auth

import (
	"context"
	"testing"

	"villagebooks/internal/platform/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) CreateUser(ctx context.Context, email, passwordHash string) (User, error) {
	args := m.Called(ctx, email, passwordHash)
	return args.Get(0).(User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func TestRegister_HashesPassword(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	svc := NewService("secret", repo)

	repo.On("CreateUser", ctx, "anna@example.com", mock.MatchedBy(func(hash string) bool {
		return hash != "password123" && crypto.VerifyPassword(hash, "password123")
	})).Return(User{ID: 1, Email: "anna@example.com"}, nil).Once()

	u, err := svc.Register(ctx, "anna@example.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", u.Email)
	repo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	svc := NewService("secret", repo)

	repo.On("CreateUser", ctx, "anna@example.com", mock.Anything).Return(User{}, ErrEmailTaken)

	_, err := svc.Register(ctx, "anna@example.com", "password123")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_IssuesParseableToken(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	svc := NewService("secret", repo)

	hash, err := crypto.HashPassword("password123")
	require.NoError(t, err)

	repo.On("GetByEmail", ctx, "anna@example.com").Return(User{ID: 42, Email: "anna@example.com", Password: hash}, nil)

	token, err := svc.Login(ctx, "anna@example.com", "password123")
	require.NoError(t, err)

	claims, err := crypto.ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Sub)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	svc := NewService("secret", repo)

	hash, err := crypto.HashPassword("password123")
	require.NoError(t, err)

	repo.On("GetByEmail", ctx, "anna@example.com").Return(User{ID: 42, Password: hash}, nil)

	_, err = svc.Login(ctx, "anna@example.com", "not-the-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	svc := NewService("secret", repo)

	repo.On("GetByEmail", ctx, "ghost@example.com").Return(User{}, ErrInvalidCredentials)

	_, err := svc.Login(ctx, "ghost@example.com", "whatever123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
