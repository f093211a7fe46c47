package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "glutation/internal/errors"
	"glutation/internal/model"
	"glutation/internal/service"
)

// OrderHandler handles order placement.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// OrderItemRequest is one product/quantity pair in a placement request.
// Item-level validation happens in the service so that an absent
// customer is reported before any line-item error.
type OrderItemRequest struct {
	ProductID string `json:"productoId"`
	Quantity  int    `json:"cantidad"`
}

// PlaceOrderRequest represents an order placement request.
type PlaceOrderRequest struct {
	CustomerID      int                `json:"clienteId" validate:"required"`
	Items           []OrderItemRequest `json:"productosPedido" validate:"required,min=1"`
	DeliveryAddress string             `json:"direccionEntrega" validate:"required"`
}

// PlaceOrder godoc
// @Summary Registra un nuevo pedido de productos
// @Tags pedidos
// @Accept json
// @Produce json
// @Param request body PlaceOrderRequest true "Datos del pedido"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /pedidos [post]
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		// Wrong-shape payloads (productosPedido not a list, non-numeric
		// clienteId) are reported like missing fields.
		return errorJSON(c, apperrors.MissingOrderFields())
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, apperrors.MissingOrderFields())
	}

	items := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = model.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	order := &model.Order{
		CustomerID:      req.CustomerID,
		Items:           items,
		DeliveryAddress: req.DeliveryAddress,
	}

	placed, err := h.orderService.PlaceOrder(c.Request().Context(), order)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Pedido registrado exitosamente.",
		"pedido":  placed,
	})
}
