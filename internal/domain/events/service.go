package events

import (
	"context"
	"errors"
	"time"

	"github.com/ayombe/server/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type Service struct {
	repo      Repository
	logger    zerolog.Logger
	validator *validator.Validate
	now       func() time.Time
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		logger:    logger.With().Str("component", "events").Logger(),
		validator: validator.New(),
		now:       time.Now,
	}
}

func (s *Service) Create(ctx context.Context, input CreateInput) (int64, error) {
	if err := s.validator.Struct(input); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, input)
}

func (s *Service) List(ctx context.Context) ([]Event, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			s.logger.Warn().Msg("store unavailable, returning empty event list")
			return []Event{}, nil
		}
		return nil, err
	}
	return items, nil
}

// Upcoming returns events whose date is now or in the future, soonest first.
func (s *Service) Upcoming(ctx context.Context) ([]Event, error) {
	items, err := s.repo.ListUpcoming(ctx, s.now())
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			s.logger.Warn().Msg("store unavailable, returning empty upcoming list")
			return []Event{}, nil
		}
		return nil, err
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, storage.ErrUnavailable) {
			return nil, nil
		}
		return nil, err
	}
	return event, nil
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
