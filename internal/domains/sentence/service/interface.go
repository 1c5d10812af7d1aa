package service

import (
	"context"

	"github.com/google/uuid"

	"quotebook-backend/internal/domains/sentence/model"
)

// ServiceInterface defines the business operations for the sentence domain
type ServiceInterface interface {
	// List returns every sentence, most recently created first
	List(ctx context.Context) ([]model.Sentence, error)

	// Create validates the request and stores a new sentence
	Create(ctx context.Context, req *model.CreateSentenceRequest) (*model.Sentence, error)

	// Update changes the supplied fields. Returns model.ErrSentenceNotFound for an unknown id.
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateSentenceRequest) (*model.Sentence, error)

	// Delete removes a sentence; unknown ids are not an error
	Delete(ctx context.Context, id uuid.UUID) error
}
