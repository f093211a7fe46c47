package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "glutation/internal/errors"
	"glutation/internal/model"
	"glutation/internal/service"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request. Field order
// matters: missing fields are reported one at a time, password first,
// then nombre, telefono, direccion and finally correo.
type RegisterRequest struct {
	Password string `json:"password" validate:"required"`
	Name     string `json:"nombre" validate:"required"`
	Phone    string `json:"telefono" validate:"required"`
	Address  string `json:"direccion" validate:"required"`
	Email    string `json:"correo" validate:"required,correo"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"correo" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register godoc
// @Summary Registra un nuevo usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Datos de registro"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, registerValidationError(err))
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
	}
	created, err := h.authService.Register(c.Request().Context(), user)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Usuario registrado exitosamente.",
		"usuario": created,
	})
}

// registerValidationError maps the first validator violation to the
// fixed-order registration errors. Validator reports violations in
// struct field order, which encodes the required ordering.
func registerValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.New(http.StatusBadRequest, "solicitud inválida", "INVALID_REQUEST")
	}
	fe := verrs[0]
	if fe.Field() == "correo" {
		return apperrors.RegisterInvalidEmail()
	}
	return apperrors.MissingField(fe.Field())
}

// Login godoc
// @Summary Inicia sesión de un usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credenciales"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, apperrors.MissingCredentials())
	}

	if err := h.authService.Login(c.Request().Context(), req.Email, req.Password); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Autenticación satisfactoria.",
	})
}

// Logout godoc
// @Summary Cierra la sesión del usuario
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// No session exists to invalidate; the endpoint only confirms.
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Sesión cerrada exitosamente.",
	})
}
