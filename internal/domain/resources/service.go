package resources

import (
	"context"
	"errors"

	"github.com/ayombe/server/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type Service struct {
	repo      Repository
	logger    zerolog.Logger
	validator *validator.Validate
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		logger:    logger.With().Str("component", "resources").Logger(),
		validator: validator.New(),
	}
}

func (s *Service) Create(ctx context.Context, authorID int64, input CreateInput) (int64, error) {
	if err := s.validator.Struct(input); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, authorID, input)
}

func (s *Service) List(ctx context.Context) ([]Resource, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			s.logger.Warn().Msg("store unavailable, returning empty resource list")
			return []Resource{}, nil
		}
		return nil, err
	}
	return items, nil
}

func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) error {
	if err := s.validator.Struct(input); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, input)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
