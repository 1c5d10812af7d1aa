package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"quotebook-backend/internal/domains/sentence/model"
	"quotebook-backend/pkg/cache"
)

// Cache key constants
const (
	sentenceListGenKey = "sentences:list:gen"
	DefaultCacheTTL    = 5 * time.Minute
	invalidateTimeout  = 2 * time.Second
)

// listKey is the cached list for one generation. A missing generation counter reads as 0.
func listKey(gen int64) string {
	return fmt.Sprintf("sentences:list:%d", gen)
}

// cachedRepository wraps another repository with a read-through cache of the full list.
// The list is stored under a generation-versioned key; every successful write bumps the
// generation, so a snapshot taken before the write can only land under a retired key.
// Cache failures are logged and otherwise ignored.
type cachedRepository struct {
	inner RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedRepository decorates inner with the given cache
func NewCachedRepository(inner RepositoryInterface, c cache.Cache, ttl time.Duration) RepositoryInterface {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &cachedRepository{inner: inner, cache: c, ttl: ttl}
}

func (r *cachedRepository) List(ctx context.Context) ([]model.Sentence, error) {
	var gen int64
	if _, err := r.cache.Get(ctx, sentenceListGenKey, &gen); err != nil {
		log.Warn().Err(err).Str("key", sentenceListGenKey).Msg("cache read failed")
		return r.inner.List(ctx)
	}
	key := listKey(gen)

	var sentences []model.Sentence
	found, err := r.cache.Get(ctx, key, &sentences)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	if err == nil && found {
		if sentences == nil {
			sentences = []model.Sentence{}
		}
		return sentences, nil
	}

	sentences, err = r.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, sentences, r.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	return sentences, nil
}

func (r *cachedRepository) Create(ctx context.Context, english, chinese string) (*model.Sentence, error) {
	created, err := r.inner.Create(ctx, english, chinese)
	if err != nil {
		return nil, err
	}
	r.invalidateList(ctx)
	return created, nil
}

func (r *cachedRepository) Update(ctx context.Context, id uuid.UUID, english, chinese *string) (*model.Sentence, error) {
	updated, err := r.inner.Update(ctx, id, english, chinese)
	if err != nil {
		return nil, err
	}
	r.invalidateList(ctx)
	return updated, nil
}

func (r *cachedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidateList(ctx)
	return nil
}

// invalidateList retires the current list generation. The write already committed,
// so the bump must not depend on the caller still waiting.
func (r *cachedRepository) invalidateList(ctx context.Context) {
	ictx, cancel := context.WithTimeout(context.WithoutCancel(ctx), invalidateTimeout)
	defer cancel()

	if _, err := r.cache.Incr(ictx, sentenceListGenKey); err != nil {
		log.Warn().Err(err).Str("key", sentenceListGenKey).Msg("cache invalidation failed")
	}
}
