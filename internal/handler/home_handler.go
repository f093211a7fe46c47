package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"glutation/internal/service"
)

// HomeHandler serves the API root.
type HomeHandler struct {
	userService service.UserService
}

// NewHomeHandler creates a new home handler.
func NewHomeHandler(userService service.UserService) *HomeHandler {
	return &HomeHandler{userService: userService}
}

// Welcome godoc
// @Summary Ruta raíz de la API
// @Description Mensaje de bienvenida y lista actual de usuarios (solo demostración).
// @Tags home
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HomeHandler) Welcome(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":          "¡Bienvenido a la API REST de Glutation!",
		"usuariosActuales": users,
	})
}
