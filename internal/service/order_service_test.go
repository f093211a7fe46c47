package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glutation/internal/model"
	"glutation/internal/repository"
)

func placeOrderForCustomer(customerID int) *model.Order {
	return &model.Order{
		CustomerID:      customerID,
		Items:           []model.OrderItem{{ProductID: "P003", Quantity: 1}},
		DeliveryAddress: "Calle Falsa 123",
	}
}

func newOrderFixture() (OrderService, repository.OrderRepository) {
	orders := repository.NewOrderRepository()
	svc := NewOrderService(orders, repository.NewUserRepository(), repository.NewProductRepository())
	return svc, orders
}

func TestOrderService_PlaceOrder(t *testing.T) {
	tests := []struct {
		name           string
		order          *model.Order
		expectedStatus int
		expectedCode   string
		messageHas     string
	}{
		{
			name: "successful placement",
			order: &model.Order{
				CustomerID:      1,
				Items:           []model.OrderItem{{ProductID: "P001", Quantity: 2}},
				DeliveryAddress: "Calle Falsa 123, Ciudad Ejemplo",
			},
		},
		{
			name: "unknown customer rejected before item checks",
			order: &model.Order{
				CustomerID:      99,
				Items:           []model.OrderItem{{ProductID: "P001", Quantity: 2}},
				DeliveryAddress: "addr",
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "CUSTOMER_NOT_FOUND",
		},
		{
			name: "zero quantity",
			order: &model.Order{
				CustomerID:      1,
				Items:           []model.OrderItem{{ProductID: "P001", Quantity: 0}},
				DeliveryAddress: "addr",
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_LINE_ITEM",
		},
		{
			name: "item without product id",
			order: &model.Order{
				CustomerID:      1,
				Items:           []model.OrderItem{{Quantity: 3}},
				DeliveryAddress: "addr",
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_LINE_ITEM",
		},
		{
			name: "unknown product named in message",
			order: &model.Order{
				CustomerID:      1,
				Items:           []model.OrderItem{{ProductID: "P999", Quantity: 1}},
				DeliveryAddress: "addr",
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "PRODUCT_NOT_FOUND",
			messageHas:     "P999",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, orders := newOrderFixture()

			placed, err := svc.PlaceOrder(context.Background(), tt.order)

			if tt.expectedCode != "" {
				assertHTTPError(t, err, tt.expectedStatus, tt.expectedCode)
				if tt.messageHas != "" {
					assert.Contains(t, err.Error(), tt.messageHas)
				}
				stored, _ := orders.List(context.Background())
				assert.Empty(t, stored)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, placed.ID)
			assert.Equal(t, model.StatusPending, placed.Status)
			assert.False(t, placed.PlacedAt.IsZero())
		})
	}
}

func TestOrderService_PlaceOrderIsAllOrNothing(t *testing.T) {
	svc, orders := newOrderFixture()

	// Second item is invalid; the valid first item must not leak into
	// the store.
	_, err := svc.PlaceOrder(context.Background(), &model.Order{
		CustomerID: 1,
		Items: []model.OrderItem{
			{ProductID: "P001", Quantity: 2},
			{ProductID: "P999", Quantity: 1},
		},
		DeliveryAddress: "addr",
	})

	assertHTTPError(t, err, http.StatusNotFound, "PRODUCT_NOT_FOUND")
	stored, _ := orders.List(context.Background())
	assert.Empty(t, stored)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	place := func(t *testing.T, svc OrderService) *model.Order {
		t.Helper()
		placed, err := svc.PlaceOrder(ctx, &model.Order{
			CustomerID:      1,
			Items:           []model.OrderItem{{ProductID: "P002", Quantity: 1}},
			DeliveryAddress: "Avenida Siempre Viva 742",
		})
		require.NoError(t, err)
		return placed
	}

	t.Run("missing estado", func(t *testing.T) {
		svc, _ := newOrderFixture()
		placed := place(t, svc)

		_, err := svc.UpdateStatus(ctx, placed.ID, "", "addr")
		assertHTTPError(t, err, http.StatusBadRequest, "MISSING_STATUS")
	})

	t.Run("invalid estado leaves order untouched", func(t *testing.T) {
		svc, orders := newOrderFixture()
		placed := place(t, svc)

		_, err := svc.UpdateStatus(ctx, placed.ID, "perdido", "addr")
		assertHTTPError(t, err, http.StatusBadRequest, "INVALID_STATUS")
		assert.Contains(t, err.Error(), "'perdido'")
		assert.Contains(t, err.Error(), "pendiente, en proceso, enviado, entregado, cancelado")

		stored, findErr := orders.FindByID(ctx, placed.ID)
		require.NoError(t, findErr)
		assert.Equal(t, model.StatusPending, stored.Status)
		assert.Equal(t, "Avenida Siempre Viva 742", stored.DeliveryAddress)
	})

	t.Run("status checks run before the lookup", func(t *testing.T) {
		svc, _ := newOrderFixture()

		_, err := svc.UpdateStatus(ctx, 42, "perdido", "")
		assertHTTPError(t, err, http.StatusBadRequest, "INVALID_STATUS")
	})

	t.Run("unknown order", func(t *testing.T) {
		svc, _ := newOrderFixture()

		_, err := svc.UpdateStatus(ctx, 42, model.StatusShipped, "")
		assertHTTPError(t, err, http.StatusNotFound, "ORDER_NOT_FOUND")
	})

	t.Run("successful update overwrites address", func(t *testing.T) {
		svc, _ := newOrderFixture()
		placed := place(t, svc)

		updated, err := svc.UpdateStatus(ctx, placed.ID, model.StatusShipped, "Calle Nueva 1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusShipped, updated.Status)
		assert.Equal(t, "Calle Nueva 1", updated.DeliveryAddress)
	})

	t.Run("omitted address clears the stored one", func(t *testing.T) {
		svc, orders := newOrderFixture()
		placed := place(t, svc)

		updated, err := svc.UpdateStatus(ctx, placed.ID, model.StatusProcessing, "")
		require.NoError(t, err)
		assert.Empty(t, updated.DeliveryAddress)

		stored, _ := orders.FindByID(ctx, placed.ID)
		assert.Empty(t, stored.DeliveryAddress)
	})
}
