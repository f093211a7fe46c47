package repository

import (
	"context"
	"sync"

	"glutation/internal/model"
)

// UserRepository defines persistence operations over registered users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByEmail(ctx context.Context, correo string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int) error
}

type userRepository struct {
	mu     sync.Mutex
	users  []model.User
	nextID int
}

// NewUserRepository builds an in-memory repository pre-loaded with the
// demo users. The counter starts past the seed ids.
func NewUserRepository() UserRepository {
	return &userRepository{
		users: []model.User{
			{ID: 1, Name: "Usuario Uno", Email: "usuario1@example.com", Phone: "1234567890", Address: "Calle Falsa 123", Password: "password1"},
			{ID: 2, Name: "Usuario Dos", Email: "usuario2@example.com", Phone: "0987654321", Address: "Avenida Siempre Viva 742", Password: "password2"},
			{ID: 3, Name: "Test User", Email: "test@example.com", Phone: "5555555555", Address: "Boulevard de los Sueños Rotos", Password: "password123"},
		},
		nextID: 4,
	}
}

// Create assigns the next id and appends the user.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, *user)
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

// FindByEmail matches the email exactly, case-sensitive.
func (r *userRepository) FindByEmail(ctx context.Context, correo string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == correo {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.User(nil), r.users...), nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}
	return ErrNotFound
}

func (r *userRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
