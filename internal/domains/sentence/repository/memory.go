package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"quotebook-backend/internal/domains/sentence/model"
)

type memoryEntry struct {
	sentence model.Sentence
	seq      uint64
}

// memoryRepository keeps sentences in process memory.
// Used for local runs (DATABASE_URL=memory://) and tests.
type memoryRepository struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*memoryEntry
	seq     uint64
	now     func() time.Time
}

// NewMemoryRepository creates an empty in-memory store
func NewMemoryRepository() RepositoryInterface {
	return newMemoryRepository(time.Now)
}

func newMemoryRepository(now func() time.Time) *memoryRepository {
	return &memoryRepository{
		entries: make(map[uuid.UUID]*memoryEntry),
		now:     now,
	}
}

func (r *memoryRepository) List(ctx context.Context) ([]model.Sentence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	entries := make([]*memoryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	// newest first; insertion order breaks timestamp ties
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.sentence.CreatedAt.Equal(b.sentence.CreatedAt) {
			return a.sentence.CreatedAt.After(b.sentence.CreatedAt)
		}
		return a.seq > b.seq
	})

	out := make([]model.Sentence, len(entries))
	for i, e := range entries {
		out[i] = e.sentence
	}
	return out, nil
}

func (r *memoryRepository) Create(ctx context.Context, english, chinese string) (*model.Sentence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	e := &memoryEntry{
		sentence: model.Sentence{
			ID:        id,
			English:   english,
			Chinese:   chinese,
			CreatedAt: now,
			UpdatedAt: now,
		},
		seq: r.seq,
	}
	r.entries[id] = e

	created := e.sentence
	return &created, nil
}

func (r *memoryRepository) Update(ctx context.Context, id uuid.UUID, english, chinese *string) (*model.Sentence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, model.ErrSentenceNotFound
	}

	patch := model.UpdateSentenceRequest{English: english, Chinese: chinese}
	patch.ApplyTo(&e.sentence)
	if now := r.now(); now.After(e.sentence.UpdatedAt) {
		e.sentence.UpdatedAt = now
	}

	updated := e.sentence
	return &updated, nil
}

func (r *memoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.entries, id)
	r.mu.Unlock()
	return nil
}
