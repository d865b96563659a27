package news

import (
	"context"
	"errors"
	"html"

	"github.com/ayombe/server/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
)

type Service struct {
	repo      Repository
	logger    zerolog.Logger
	validator *validator.Validate
	sanitizer *bluemonday.Policy
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		logger:    logger.With().Str("component", "news").Logger(),
		validator: validator.New(),
		// Announcements render as plain text on the dashboard; strip all markup.
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *Service) Create(ctx context.Context, authorID int64, input CreateInput) (int64, error) {
	if err := s.validator.Struct(input); err != nil {
		return 0, err
	}
	input.Title = s.clean(input.Title)
	input.Content = s.clean(input.Content)
	return s.repo.Create(ctx, authorID, input)
}

func (s *Service) List(ctx context.Context) ([]News, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			s.logger.Warn().Msg("store unavailable, returning empty news list")
			return []News{}, nil
		}
		return nil, err
	}
	return items, nil
}

// Urgent returns at most the single most recent urgent announcement.
func (s *Service) Urgent(ctx context.Context) ([]News, error) {
	items, err := s.repo.ListUrgent(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			s.logger.Warn().Msg("store unavailable, returning empty urgent news")
			return []News{}, nil
		}
		return nil, err
	}
	return items, nil
}

func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) error {
	if err := s.validator.Struct(input); err != nil {
		return err
	}
	if input.Title != nil {
		clean := s.clean(*input.Title)
		input.Title = &clean
	}
	if input.Content != nil {
		clean := s.clean(*input.Content)
		input.Content = &clean
	}
	return s.repo.Update(ctx, id, input)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// clean strips markup while keeping plain text intact. StrictPolicy emits
// entity-escaped text, so the unescape restores characters like & and '
// that the admin typed literally.
func (s *Service) clean(text string) string {
	return html.UnescapeString(s.sanitizer.Sanitize(text))
}
