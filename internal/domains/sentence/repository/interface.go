package repository

import (
	"context"

	"github.com/google/uuid"

	"quotebook-backend/internal/domains/sentence/model"
	"quotebook-backend/internal/infrastructure/database"
)

// RepositoryInterface is the store boundary for sentences.
// Every mutating method performs exactly one write.
type RepositoryInterface interface {
	// List returns every sentence, newest first. An empty store yields an empty slice.
	List(ctx context.Context) ([]model.Sentence, error)

	// Create inserts a sentence; the store assigns ID, CreatedAt and UpdatedAt (equal on insert)
	Create(ctx context.Context, english, chinese string) (*model.Sentence, error)

	// Update sets the non-nil fields and refreshes UpdatedAt.
	// Returns model.ErrSentenceNotFound when id does not exist; never inserts.
	Update(ctx context.Context, id uuid.UUID, english, chinese *string) (*model.Sentence, error)

	// Delete removes the sentence if present. Unknown ids are not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

// Acquirer hands out the shared store handle; implemented by database.ConnCache
type Acquirer interface {
	Acquire(ctx context.Context) (database.Querier, error)
}
