package repository

import (
	"context"
	"sync"

	"glutation/internal/model"
)

// ContactRepository stores contact-form submissions. Requests are
// append-only.
type ContactRepository interface {
	Create(ctx context.Context, req *model.ContactRequest) error
}

type contactRepository struct {
	mu       sync.Mutex
	requests []model.ContactRequest
	nextID   int
}

// NewContactRepository builds an empty in-memory contact store.
func NewContactRepository() ContactRepository {
	return &contactRepository{nextID: 1}
}

// Create assigns the next id and appends the request.
func (r *contactRepository) Create(ctx context.Context, req *model.ContactRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req.ID = r.nextID
	r.nextID++
	r.requests = append(r.requests, *req)
	return nil
}
