package attendances

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
		logger:    logger.With().Str("component", "attendances").Logger(),
		validator: validator.New(),
	}
}

// Upsert records the caller's attendance for an event. userID comes from
// the resolved session so a member can never write another member's row.
func (s *Service) Upsert(ctx context.Context, userID int64, input UpsertInput) error {
	if err := s.validator.Struct(input); err != nil {
		return err
	}
	return s.repo.Upsert(ctx, input.EventID, userID, input.Status)
}

func (s *Service) ByEvent(ctx context.Context, eventID int64) ([]Attendance, error) {
	items, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			s.logger.Warn().Int64("event_id", eventID).Msg("store unavailable, returning empty roster")
			return []Attendance{}, nil
		}
		return nil, err
	}
	return items, nil
}

func (s *Service) ByUser(ctx context.Context, userID int64) ([]Attendance, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			s.logger.Warn().Int64("user_id", userID).Msg("store unavailable, returning empty attendances")
			return []Attendance{}, nil
		}
		return nil, err
	}
	return items, nil
}
