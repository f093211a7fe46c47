package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "glutation/internal/errors"
	"glutation/internal/service"
)

// AdminHandler bundles the admin operations over users and orders.
// Access control is wired at the router; by default these routes are
// open, which is a documented gap of this API.
type AdminHandler struct {
	userService  service.UserService
	orderService service.OrderService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(userService service.UserService, orderService service.OrderService) *AdminHandler {
	return &AdminHandler{
		userService:  userService,
		orderService: orderService,
	}
}

// UpdateUserRequest carries the optional user fields. Empty strings
// count as "not provided".
type UpdateUserRequest struct {
	Name    string `json:"nombre"`
	Email   string `json:"correo"`
	Phone   string `json:"telefono"`
	Address string `json:"direccion"`
}

// UpdateOrderRequest carries the new status and the optional delivery
// address.
type UpdateOrderRequest struct {
	Status          string `json:"estado"`
	DeliveryAddress string `json:"direccionEntrega"`
}

// ListUsers godoc
// @Summary (Admin) Lista todos los usuarios registrados
// @Tags admin
// @Produce json
// @Success 200 {array} model.User
// @Router /admin/usuarios [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUser godoc
// @Summary (Admin) Actualiza la información de un usuario
// @Description Actualiza nombre, correo, teléfono y dirección. La contraseña no se actualiza por esta vía.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "ID del usuario"
// @Param request body UpdateUserRequest true "Campos a actualizar"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/usuarios/{id} [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		// Non-numeric ids behave like a lookup miss.
		return errorJSON(c, apperrors.UserNotFound())
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.userService.UpdateUser(c.Request().Context(), id, service.UserUpdate{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteUser godoc
// @Summary (Admin) Elimina un usuario
// @Tags admin
// @Produce json
// @Param id path int true "ID del usuario"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/usuarios/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, apperrors.UserNotFound())
	}

	if err := h.userService.DeleteUser(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Usuario eliminado exitosamente.",
	})
}

// ListOrders godoc
// @Summary (Admin) Lista todos los pedidos
// @Tags admin
// @Produce json
// @Success 200 {array} model.Order
// @Router /admin/pedidos [get]
func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderService.ListOrders(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateOrder godoc
// @Summary (Admin) Actualiza el estado de un pedido
// @Description Omitir direccionEntrega vacía la dirección almacenada; es el comportamiento contractual.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "ID del pedido"
// @Param request body UpdateOrderRequest true "Nuevo estado"
// @Success 200 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/pedidos/{id} [put]
func (h *AdminHandler) UpdateOrder(c echo.Context) error {
	// Status validation runs before the lookup, so a non-numeric id
	// falls through to the not-found error. Id zero never exists.
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.orderService.UpdateStatus(c.Request().Context(), id, req.Status, req.DeliveryAddress)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}
