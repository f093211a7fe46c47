package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "glutation/internal/errors"
	"glutation/internal/model"
	"glutation/internal/repository"
)

// UserUpdate carries the admin-editable user fields. An empty string
// means "leave the stored value untouched" — presence is decided by
// value, not by the request shape, matching the historical contract.
type UserUpdate struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// UserService handles the admin user operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id int, upd UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, id int) error
}

type userService struct {
	users repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// ListUsers returns every registered user.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// UpdateUser applies a partial update. All validation runs before any
// field is written, so a rejected update leaves the record untouched.
// The password is never modified through this path.
func (s *userService) UpdateUser(ctx context.Context, id int, upd UserUpdate) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.UserNotFound()
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if upd.Email != "" {
		if !IsValidEmail(upd.Email) {
			return nil, apperrors.UpdateInvalidEmail()
		}
		other, err := s.users.FindByEmail(ctx, upd.Email)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("check email owner: %w", err)
		}
		// Keeping one's own email is not a conflict.
		if other != nil && other.ID != id {
			return nil, apperrors.DuplicateEmailOtherUser()
		}
	}

	if upd.Name != "" {
		user.Name = upd.Name
	}
	if upd.Email != "" {
		user.Email = upd.Email
	}
	if upd.Phone != "" {
		user.Phone = upd.Phone
	}
	if upd.Address != "" {
		user.Address = upd.Address
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes the user. Orders referencing the customer are not
// cascaded; dangling references are permitted.
func (s *userService) DeleteUser(ctx context.Context, id int) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.UserNotFound()
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
