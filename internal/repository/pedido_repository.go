package repository

import (
	"context"
	"sync"

	"glutation/internal/model"
)

// OrderRepository defines persistence operations over orders. Orders
// are never deleted.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id int) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	Update(ctx context.Context, order *model.Order) error
}

type orderRepository struct {
	mu     sync.Mutex
	orders []model.Order
	nextID int
}

// NewOrderRepository builds an empty in-memory order store.
func NewOrderRepository() OrderRepository {
	return &orderRepository{nextID: 1}
}

// Create assigns the next id and appends the order.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = r.nextID
	r.nextID++
	r.orders = append(r.orders, *order)
	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id int) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, ErrNotFound
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Order(nil), r.orders...), nil
}

func (r *orderRepository) Update(ctx context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			r.orders[i] = *order
			return nil
		}
	}
	return ErrNotFound
}
