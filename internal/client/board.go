package client

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"quotebook-backend/internal/domains/sentence/model"
)

// Remote is what the board needs from the API; *Client satisfies it
type Remote interface {
	List(ctx context.Context) ([]model.Sentence, error)
	Create(ctx context.Context, english, chinese string) (*model.Sentence, error)
	Update(ctx context.Context, id string, english, chinese *string) (*model.Sentence, error)
	Delete(ctx context.Context, id string) error
}

// Board is a local, disposable view of the server's list.
// It only changes after the server confirms a write; failures are logged and
// leave the view as it was.
type Board struct {
	remote Remote

	mu    sync.Mutex
	items []model.Sentence
}

func NewBoard(remote Remote) *Board {
	return &Board{remote: remote, items: []model.Sentence{}}
}

// Items returns a copy of the current view
func (b *Board) Items() []model.Sentence {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]model.Sentence, len(b.items))
	copy(out, b.items)
	return out
}

// Refresh replaces the view with the server's list
func (b *Board) Refresh(ctx context.Context) error {
	items, err := b.remote.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch sentences")
		return err
	}

	b.mu.Lock()
	b.items = items
	b.mu.Unlock()
	return nil
}

// Add creates a sentence and puts it at the top
func (b *Board) Add(ctx context.Context, english, chinese string) (*model.Sentence, error) {
	created, err := b.remote.Create(ctx, english, chinese)
	if err != nil {
		log.Error().Err(err).Msg("failed to add sentence")
		return nil, err
	}

	b.mu.Lock()
	b.items = append([]model.Sentence{*created}, b.items...)
	b.mu.Unlock()
	return created, nil
}

// Edit updates a sentence in place. When the server no longer has it the
// stale row is dropped and nil is returned.
func (b *Board) Edit(ctx context.Context, id string, english, chinese *string) (*model.Sentence, error) {
	updated, err := b.remote.Update(ctx, id, english, chinese)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to edit sentence")
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if updated == nil {
		b.drop(id)
		return nil, nil
	}
	for i := range b.items {
		if b.items[i].ID == updated.ID {
			b.items[i] = *updated
			break
		}
	}
	return updated, nil
}

// Remove deletes a sentence and drops it from the view
func (b *Board) Remove(ctx context.Context, id string) error {
	if err := b.remote.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete sentence")
		return err
	}

	b.mu.Lock()
	b.drop(id)
	b.mu.Unlock()
	return nil
}

// drop removes id from items; caller holds mu
func (b *Board) drop(id string) {
	kept := make([]model.Sentence, 0, len(b.items))
	for _, s := range b.items {
		if s.ID.String() != id {
			kept = append(kept, s)
		}
	}
	b.items = kept
}
