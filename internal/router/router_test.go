package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glutation/internal/config"
	"glutation/internal/handler"
	"glutation/internal/repository"
	"glutation/internal/service"
)

func newTestServer(cfg *config.Config) *echo.Echo {
	e := echo.New()

	userRepo := repository.NewUserRepository()
	productRepo := repository.NewProductRepository()
	orderRepo := repository.NewOrderRepository()
	contactRepo := repository.NewContactRepository()

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, nil, time.Minute)
	contactService := service.NewContactService(contactRepo)
	orderService := service.NewOrderService(orderRepo, userRepo, productRepo)

	Register(
		e,
		cfg,
		handler.NewHomeHandler(userService),
		handler.NewAuthHandler(authService),
		handler.NewProductHandler(productService),
		handler.NewContactHandler(contactService),
		handler.NewOrderHandler(orderService),
		handler.NewAdminHandler(userService, orderService),
	)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedCode int
		bodyHas      []string
	}{
		{
			name:         "successful registration echoes the record",
			body:         `{"nombre":"X","correo":"x@y.com","telefono":"1","direccion":"A","password":"p"}`,
			expectedCode: http.StatusCreated,
			bodyHas:      []string{`"id":4`, `"password":"p"`, "Usuario registrado exitosamente."},
		},
		{
			name:         "missing password reported first",
			body:         `{"correo":"x@y.com"}`,
			expectedCode: http.StatusBadRequest,
			bodyHas:      []string{"Falta el campo password", "MISSING_FIELD"},
		},
		{
			name:         "missing telefono",
			body:         `{"nombre":"X","correo":"x@y.com","direccion":"A","password":"p"}`,
			expectedCode: http.StatusBadRequest,
			bodyHas:      []string{"Falta el campo telefono"},
		},
		{
			name:         "email without domain dot",
			body:         `{"nombre":"X","correo":"x@ycom","telefono":"1","direccion":"A","password":"p"}`,
			expectedCode: http.StatusBadRequest,
			bodyHas:      []string{"INVALID_EMAIL_FORMAT"},
		},
		{
			name:         "duplicate email",
			body:         `{"nombre":"X","correo":"usuario1@example.com","telefono":"1","direccion":"A","password":"p"}`,
			expectedCode: http.StatusConflict,
			bodyHas:      []string{"DUPLICATE_EMAIL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(config.Load())

			rec := doJSON(e, http.MethodPost, "/register", tt.body)

			assert.Equal(t, tt.expectedCode, rec.Code)
			for _, want := range tt.bodyHas {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedCode int
	}{
		{name: "valid credentials", body: `{"correo":"usuario1@example.com","password":"password1"}`, expectedCode: http.StatusOK},
		{name: "wrong password", body: `{"correo":"usuario1@example.com","password":"x"}`, expectedCode: http.StatusUnauthorized},
		{name: "missing password", body: `{"correo":"usuario1@example.com"}`, expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(config.Load())

			rec := doJSON(e, http.MethodPost, "/login", tt.body)
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestLogoutIsNoOp(t *testing.T) {
	e := newTestServer(config.Load())

	rec := doJSON(e, http.MethodPost, "/logout", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sesión cerrada exitosamente.")
}

func TestWelcomeListsUsers(t *testing.T) {
	e := newTestServer(config.Load())

	rec := doJSON(e, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message string            `json:"message"`
		Users   []json.RawMessage `json:"usuariosActuales"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "¡Bienvenido a la API REST de Glutation!", body.Message)
	assert.Len(t, body.Users, 3)
}

func TestListProducts(t *testing.T) {
	e := newTestServer(config.Load())

	rec := doJSON(e, http.MethodGet, "/productos", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var products []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 3)
	assert.Equal(t, "P001", products[0].ID)
}

func TestContactForm(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedCode int
		bodyHas      string
	}{
		{
			name:         "successful submission",
			body:         `{"nombre":"Ana","correo":"ana@example.com","asunto":"Consulta","mensaje":"Hola"}`,
			expectedCode: http.StatusCreated,
			bodyHas:      "Solicitud de contacto recibida exitosamente.",
		},
		{
			name:         "missing mensaje wins over bad correo",
			body:         `{"nombre":"Ana","correo":"sin-arroba","asunto":"Consulta"}`,
			expectedCode: http.StatusBadRequest,
			bodyHas:      "MISSING_FIELDS",
		},
		{
			name:         "malformed correo",
			body:         `{"nombre":"Ana","correo":"sin-arroba","asunto":"Consulta","mensaje":"Hola"}`,
			expectedCode: http.StatusBadRequest,
			bodyHas:      "INVALID_EMAIL_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(config.Load())

			rec := doJSON(e, http.MethodPost, "/contacto", tt.body)
			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.bodyHas)
		})
	}
}

func TestPlaceOrder(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedCode int
		bodyHas      string
	}{
		{
			name:         "successful placement",
			body:         `{"clienteId":1,"productosPedido":[{"productoId":"P001","cantidad":2}],"direccionEntrega":"addr"}`,
			expectedCode: http.StatusCreated,
			bodyHas:      `"estado":"pendiente"`,
		},
		{
			name:         "empty item list",
			body:         `{"clienteId":1,"productosPedido":[],"direccionEntrega":"addr"}`,
			expectedCode: http.StatusBadRequest,
			bodyHas:      "MISSING_OR_INVALID_FIELDS",
		},
		{
			name:         "items not a list",
			body:         `{"clienteId":1,"productosPedido":"P001","direccionEntrega":"addr"}`,
			expectedCode: http.StatusBadRequest,
			bodyHas:      "MISSING_OR_INVALID_FIELDS",
		},
		{
			name:         "unknown customer",
			body:         `{"clienteId":99,"productosPedido":[{"productoId":"P001","cantidad":2}],"direccionEntrega":"addr"}`,
			expectedCode: http.StatusNotFound,
			bodyHas:      "CUSTOMER_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(config.Load())

			rec := doJSON(e, http.MethodPost, "/pedidos", tt.body)
			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.bodyHas)
		})
	}
}

func TestAdminOrderUpdate(t *testing.T) {
	e := newTestServer(config.Load())

	rec := doJSON(e, http.MethodPost, "/pedidos",
		`{"clienteId":1,"productosPedido":[{"productoId":"P002","cantidad":1}],"direccionEntrega":"addr"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPut, "/admin/pedidos/1", `{"estado":"perdido"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_STATUS")

	rec = doJSON(e, http.MethodPut, "/admin/pedidos/1", `{"estado":"enviado"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"estado":"enviado"`)
	// Omitted direccionEntrega clears the stored address.
	assert.Contains(t, rec.Body.String(), `"direccionEntrega":""`)

	rec = doJSON(e, http.MethodPut, "/admin/pedidos/99", `{"estado":"enviado"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminUserDelete(t *testing.T) {
	e := newTestServer(config.Load())

	rec := doJSON(e, http.MethodDelete, "/admin/usuarios/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Usuario eliminado exitosamente.")

	rec = doJSON(e, http.MethodDelete, "/admin/usuarios/3", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/admin/usuarios/abc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminGuard(t *testing.T) {
	cfg := config.Load()
	cfg.AdminJWTSecret = "test-secret"
	e := newTestServer(cfg)

	rec := doJSON(e, http.MethodGet, "/admin/usuarios", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/usuarios", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
