package service

import (
	"context"
	"fmt"
	"time"

	"glutation/internal/model"
	"glutation/internal/repository"
)

// ContactService handles contact-form submissions.
type ContactService interface {
	SubmitRequest(ctx context.Context, req *model.ContactRequest) (*model.ContactRequest, error)
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService creates a new contact service.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

// SubmitRequest stamps the submission time, assigns the next id and
// stores the request.
func (s *contactService) SubmitRequest(ctx context.Context, req *model.ContactRequest) (*model.ContactRequest, error) {
	req.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create contact request: %w", err)
	}
	return req, nil
}
