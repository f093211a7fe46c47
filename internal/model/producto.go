package model

// Product is a catalog entry. The catalog is seeded at startup and has
// no mutation endpoints.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Price       float64 `json:"precio"`
	Image       string  `json:"imagen"`
	Benefits    string  `json:"beneficios"`
}
