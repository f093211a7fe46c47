package repository

import (
	"context"
	"sync"

	"glutation/internal/model"
)

// ProductRepository defines read operations over the catalog. Products
// are seeded at startup; no mutation endpoints exist.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
}

type productRepository struct {
	mu       sync.Mutex
	products []model.Product
}

// NewProductRepository builds the catalog with the demo products.
func NewProductRepository() ProductRepository {
	return &productRepository{
		products: []model.Product{
			{
				ID:          "P001",
				Name:        "Glutation Premium",
				Description: "Suplemento de glutation de alta calidad.",
				Price:       29.99,
				Image:       "url_imagen_glutation_premium.jpg",
				Benefits:    "Antioxidante, refuerza el sistema inmunológico, desintoxicante.",
			},
			{
				ID:          "P002",
				Name:        "Glutation Plus",
				Description: "Fórmula avanzada con vitaminas y minerales.",
				Price:       39.99,
				Image:       "url_imagen_glutation_plus.jpg",
				Benefits:    "Mayor absorción, energía celular, protección contra radicales libres.",
			},
			{
				ID:          "P003",
				Name:        "Glutation Esencial",
				Description: "Glutation puro para el bienestar diario.",
				Price:       24.99,
				Image:       "url_imagen_glutation_esencial.jpg",
				Benefits:    "Soporte antioxidante básico, mejora la piel.",
			},
		},
	}
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Product(nil), r.products...), nil
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, ErrNotFound
}
