package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError carries an HTTP status code alongside a stable machine
// code and the client-facing message.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// New creates a new HTTP error.
func New(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// AsHTTP extracts an *HTTPError from err, falling back to a generic
// internal error for anything the domain did not classify.
func AsHTTP(err error) *HTTPError {
	var he *HTTPError
	if errors.As(err, &he) {
		return he
	}
	return New(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}

// MissingCredentials is returned when login lacks email or password.
func MissingCredentials() *HTTPError {
	return New(http.StatusBadRequest,
		"Error en la autenticación: Faltan campos (correo y/o contraseña).",
		"MISSING_CREDENTIALS")
}

// InvalidCredentials is returned when email or password does not match
// a registered user.
func InvalidCredentials() *HTTPError {
	return New(http.StatusUnauthorized,
		"Error en la autenticación: Correo o contraseña incorrectos.",
		"INVALID_CREDENTIALS")
}

// MissingField is returned when registration lacks a required field;
// field is the wire-level (json) name.
func MissingField(field string) *HTTPError {
	return New(http.StatusBadRequest,
		fmt.Sprintf("Error en el registro: Falta el campo %s.", field),
		"MISSING_FIELD")
}

// RegisterInvalidEmail is returned when the registration email is
// absent or malformed. The original API reported both cases with one
// message.
func RegisterInvalidEmail() *HTTPError {
	return New(http.StatusBadRequest,
		"Error en el registro: Falta el campo correo o el formato del email es inválido.",
		"INVALID_EMAIL_FORMAT")
}

// DuplicateEmail is returned when registering with an email already in use.
func DuplicateEmail() *HTTPError {
	return New(http.StatusConflict,
		"Error en el registro: El correo electrónico ya está registrado.",
		"DUPLICATE_EMAIL")
}

// MissingContactFields is returned when any contact-form field is absent.
func MissingContactFields() *HTTPError {
	return New(http.StatusBadRequest,
		"Error en la solicitud: Faltan campos (nombre, correo, asunto y/o mensaje).",
		"MISSING_FIELDS")
}

// ContactInvalidEmail is returned when the contact-form email is malformed.
func ContactInvalidEmail() *HTTPError {
	return New(http.StatusBadRequest,
		"Error en la solicitud: El formato del correo electrónico es inválido.",
		"INVALID_EMAIL_FORMAT")
}

// MissingOrderFields is returned when order placement lacks required
// fields or carries an empty or malformed item list.
func MissingOrderFields() *HTTPError {
	return New(http.StatusBadRequest,
		"Error en la solicitud: Faltan campos obligatorios (clienteId, productosPedido, direccionEntrega) o productosPedido está vacío.",
		"MISSING_OR_INVALID_FIELDS")
}

// CustomerNotFound is returned when an order references an unknown user.
func CustomerNotFound() *HTTPError {
	return New(http.StatusNotFound,
		"Error en el pedido: Cliente no encontrado.",
		"CUSTOMER_NOT_FOUND")
}

// InvalidLineItem is returned when an order item lacks a product id or
// a positive quantity.
func InvalidLineItem() *HTTPError {
	return New(http.StatusBadRequest,
		"Error en la solicitud: Cada producto en productosPedido debe tener productoId y una cantidad positiva.",
		"INVALID_LINE_ITEM")
}

// ProductNotFound is returned when an order item references an unknown
// product, naming the offending id.
func ProductNotFound(productID string) *HTTPError {
	return New(http.StatusNotFound,
		fmt.Sprintf("Error en el pedido: Producto con ID '%s' no encontrado.", productID),
		"PRODUCT_NOT_FOUND")
}

// UserNotFound is returned by admin user operations on an unknown id.
func UserNotFound() *HTTPError {
	return New(http.StatusNotFound, "Usuario no encontrado.", "USER_NOT_FOUND")
}

// UpdateInvalidEmail is returned when an admin user update carries a
// malformed email.
func UpdateInvalidEmail() *HTTPError {
	return New(http.StatusBadRequest,
		"Error en la actualización: El formato del correo electrónico es inválido.",
		"INVALID_EMAIL_FORMAT")
}

// DuplicateEmailOtherUser is returned when an admin user update sets an
// email already owned by a different user.
func DuplicateEmailOtherUser() *HTTPError {
	return New(http.StatusConflict,
		"Error en la actualización: El correo electrónico ya está registrado por otro usuario.",
		"DUPLICATE_EMAIL")
}

// OrderNotFound is returned by admin order operations on an unknown id.
func OrderNotFound() *HTTPError {
	return New(http.StatusNotFound, "Pedido no encontrado.", "ORDER_NOT_FOUND")
}

// MissingStatus is returned when an order status update lacks estado.
func MissingStatus() *HTTPError {
	return New(http.StatusBadRequest,
		"Error en la actualización: Falta el campo 'estado'.",
		"MISSING_STATUS")
}

// InvalidStatus is returned when estado is outside the accepted enum,
// naming the rejected value and listing the valid ones.
func InvalidStatus(estado string, valid []string) *HTTPError {
	return New(http.StatusBadRequest,
		fmt.Sprintf("Error en la actualización: El estado '%s' no es válido. Estados permitidos: %s.",
			estado, strings.Join(valid, ", ")),
		"INVALID_STATUS")
}
