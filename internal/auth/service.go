package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"villagebooks/internal/platform/crypto"
)

const tokenTTL = 24 * time.Hour

type Repository interface {
	CreateUser(ctx context.Context, email, passwordHash string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}

type Service struct {
	secret string
	repo   Repository
}

func NewService(secret string, repo Repository) *Service {
	return &Service{secret: secret, repo: repo}
}

func (s *Service) Register(ctx context.Context, email, password string) (User, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return User{}, err
	}
	return s.repo.CreateUser(ctx, email, hash)
}

// Login verifies the credentials and issues a bearer token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !crypto.VerifyPassword(u.Password, password) {
		return "", ErrInvalidCredentials
	}
	return crypto.GenerateToken(s.secret, strconv.FormatInt(u.ID, 10), tokenTTL)
}
