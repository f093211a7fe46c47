package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "glutation/internal/errors"
)

// errorJSON writes the standardized error body for a domain error.
func errorJSON(c echo.Context, err error) error {
	he := apperrors.AsHTTP(err)
	return c.JSON(he.StatusCode, he.ToErrorResponse())
}
