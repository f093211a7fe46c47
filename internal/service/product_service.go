package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"glutation/internal/cache"
	"glutation/internal/model"
	"glutation/internal/repository"
)

const productsCacheKey = "productos"

// ProductService serves the catalog.
type ProductService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
}

type productService struct {
	repo  repository.ProductRepository
	cache *cache.Client
	ttl   time.Duration
}

// NewProductService creates a new product service. The cache client may
// be nil; listing then always hits the repository.
func NewProductService(repo repository.ProductRepository, cache *cache.Client, ttl time.Duration) ProductService {
	return &productService{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
	}
}

// ListProducts returns the full catalog, served from cache when a
// fresh copy is available.
func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	if data, _ := s.cache.Get(ctx, productsCacheKey); data != nil {
		var cached []model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if payload, err := json.Marshal(products); err == nil {
		_ = s.cache.Set(ctx, productsCacheKey, payload, s.ttl)
	}
	return products, nil
}
