package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "glutation/internal/errors"
	"glutation/internal/model"
	"glutation/internal/repository"
)

// OrderService handles order placement and the admin order operations.
type OrderService interface {
	PlaceOrder(ctx context.Context, order *model.Order) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int, estado, direccionEntrega string) (*model.Order, error)
}

type orderService struct {
	orders   repository.OrderRepository
	users    repository.UserRepository
	products repository.ProductRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orders repository.OrderRepository, users repository.UserRepository, products repository.ProductRepository) OrderService {
	return &orderService{
		orders:   orders,
		users:    users,
		products: products,
	}
}

// PlaceOrder validates the customer and every line item before the
// order is created; a single invalid item rejects the whole order and
// leaves the store untouched.
func (s *orderService) PlaceOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	if _, err := s.users.FindByID(ctx, order.CustomerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.CustomerNotFound()
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}

	for _, item := range order.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, apperrors.InvalidLineItem()
		}
		if _, err := s.products.FindByID(ctx, item.ProductID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, apperrors.ProductNotFound(item.ProductID)
			}
			return nil, fmt.Errorf("find product: %w", err)
		}
	}

	order.PlacedAt = time.Now().UTC()
	order.Status = model.StatusPending
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// ListOrders returns every placed order.
func (s *orderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.orders.List(ctx)
}

// UpdateStatus sets the order status. Field validation runs before the
// lookup, so a bad id on an invalid status still reports the status
// error. The delivery address is always overwritten with the supplied
// value, empty included; omitting it clears the stored address. That
// clearing matches the historical contract and is kept as-is.
func (s *orderService) UpdateStatus(ctx context.Context, id int, estado, direccionEntrega string) (*model.Order, error) {
	if estado == "" {
		return nil, apperrors.MissingStatus()
	}
	if !model.IsValidStatus(estado) {
		return nil, apperrors.InvalidStatus(estado, model.ValidStatuses)
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.OrderNotFound()
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	order.Status = estado
	order.DeliveryAddress = direccionEntrega
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return order, nil
}
