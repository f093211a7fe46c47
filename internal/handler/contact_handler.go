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

// ContactHandler handles contact-form submissions.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactFormRequest represents a contact-form submission.
type ContactFormRequest struct {
	Name    string `json:"nombre" validate:"required"`
	Email   string `json:"correo" validate:"required,correo"`
	Subject string `json:"asunto" validate:"required"`
	Message string `json:"mensaje" validate:"required"`
}

// SubmitRequest godoc
// @Summary Envía un formulario de contacto
// @Tags contacto
// @Accept json
// @Produce json
// @Param request body ContactFormRequest true "Datos de contacto"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /contacto [post]
func (h *ContactHandler) SubmitRequest(c echo.Context) error {
	var req ContactFormRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, contactValidationError(err))
	}

	request := &model.ContactRequest{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	created, err := h.contactService.SubmitRequest(c.Request().Context(), request)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "Solicitud de contacto recibida exitosamente.",
		"solicitud": created,
	})
}

// contactValidationError maps validator violations to the combined
// missing-fields error; only a present-but-malformed correo reports
// the email-format error. Presence is checked across all fields first,
// so a missing mensaje wins over a malformed correo.
func contactValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.New(http.StatusBadRequest, "solicitud inválida", "INVALID_REQUEST")
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return apperrors.MissingContactFields()
		}
	}
	return apperrors.ContactInvalidEmail()
}
