package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"glutation/internal/service"
)

// ProductHandler serves the catalog.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts godoc
// @Summary Obtiene la lista de todos los productos
// @Tags productos
// @Produce json
// @Success 200 {array} model.Product
// @Router /productos [get]
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productService.ListProducts(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, products)
}
