package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"quotebook-backend/internal/domains/sentence/model"
	"quotebook-backend/internal/domains/sentence/repository"
)

type sentenceService struct {
	repo repository.RepositoryInterface
}

// NewSentenceService creates a new sentence service instance
func NewSentenceService(repo repository.RepositoryInterface) ServiceInterface {
	return &sentenceService{repo: repo}
}

func (s *sentenceService) List(ctx context.Context) ([]model.Sentence, error) {
	sentences, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Str("op", "list").Msg("failed to list sentences")
		return nil, err
	}

	log.Debug().Int("count", len(sentences)).Msg("sentences listed")
	return sentences, nil
}

func (s *sentenceService) Create(ctx context.Context, req *model.CreateSentenceRequest) (*model.Sentence, error) {
	if req == nil {
		req = &model.CreateSentenceRequest{}
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		log.Error().Err(err).Str("op", "create").Msg("invalid sentence")
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.English, req.Chinese)
	if err != nil {
		log.Error().Err(err).Str("op", "create").Msg("failed to create sentence")
		return nil, err
	}

	log.Debug().Str("id", created.ID.String()).Msg("sentence created")
	return created, nil
}

func (s *sentenceService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateSentenceRequest) (*model.Sentence, error) {
	if req == nil {
		req = &model.UpdateSentenceRequest{}
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		log.Error().Err(err).Str("op", "update").Str("id", id.String()).Msg("invalid sentence")
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, req.English, req.Chinese)
	if errors.Is(err, model.ErrSentenceNotFound) {
		log.Debug().Str("id", id.String()).Msg("sentence to update not found")
		return nil, err
	}
	if err != nil {
		log.Error().Err(err).Str("op", "update").Str("id", id.String()).Msg("failed to update sentence")
		return nil, err
	}

	log.Debug().Str("id", id.String()).Msg("sentence updated")
	return updated, nil
}

func (s *sentenceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("op", "delete").Str("id", id.String()).Msg("failed to delete sentence")
		return err
	}

	log.Debug().Str("id", id.String()).Msg("sentence deleted")
	return nil
}
