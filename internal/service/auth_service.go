package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "glutation/internal/errors"
	"glutation/internal/model"
	"glutation/internal/repository"
)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.User, error)
	Login(ctx context.Context, correo, password string) error
}

type authService struct {
	users repository.UserRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

// Register creates the user after checking the email is not already
// registered. The record keeps the plaintext password: the public
// contract echoes it back verbatim and login compares it literally,
// so hashing would break compatibility. Known gap, kept on purpose.
func (s *authService) Register(ctx context.Context, user *model.User) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}
	if existing != nil {
		return nil, apperrors.DuplicateEmail()
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials against the stored record. Any
// mismatch, unknown email included, reports the same error.
func (s *authService) Login(ctx context.Context, correo, password string) error {
	user, err := s.users.FindByEmail(ctx, correo)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.InvalidCredentials()
		}
		return fmt.Errorf("find user: %w", err)
	}
	if user.Password != password {
		return apperrors.InvalidCredentials()
	}
	return nil
}
