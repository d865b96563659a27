package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ayombe/server/internal/auth"
	"github.com/ayombe/server/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const manualLoginMethod = "manual"

type Service struct {
	repo        Repository
	logger      zerolog.Logger
	validator   *validator.Validate
	ownerOpenID string
}

// NewService wires the user service. ownerOpenID may be empty; when set,
// logins with that identity token are promoted to admin unless the caller
// supplied an explicit role.
func NewService(repo Repository, logger zerolog.Logger, ownerOpenID string) *Service {
	return &Service{
		repo:        repo,
		logger:      logger.With().Str("component", "users").Logger(),
		validator:   validator.New(),
		ownerOpenID: ownerOpenID,
	}
}

// Login inserts or updates the user row keyed by OpenID and returns the
// resulting user. Unlike the read paths, persistence failures here always
// propagate: a login that silently loses its upsert would leave the session
// pointing at a stale or missing row.
func (s *Service) Login(ctx context.Context, input LoginInput) (*User, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	params := UpsertParams{
		OpenID:      input.OpenID,
		Name:        input.Name,
		Email:       input.Email,
		LoginMethod: input.LoginMethod,
		Role:        input.Role,
	}
	if params.Role == nil && s.ownerOpenID != "" && input.OpenID == s.ownerOpenID {
		owner := string(auth.RoleAdmin)
		params.Role = &owner
	}
	// Every login touches the timestamp, even when nothing else changed.
	now := time.Now()
	params.LastSignedIn = &now

	if err := s.repo.Upsert(ctx, params); err != nil {
		s.logger.Error().Err(err).Str("open_id", input.OpenID).Msg("user upsert failed")
		return nil, err
	}

	user, err := s.repo.GetByOpenID(ctx, input.OpenID)
	if err != nil {
		return nil, fmt.Errorf("load user after upsert: %w", err)
	}
	return user, nil
}

// Create registers a user on behalf of an admin, generating a local
// identity token. The password is validated and relayed back out-of-band,
// never stored.
func (s *Service) Create(ctx context.Context, input CreateInput) (*CreateResult, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	openID := "local_" + uuid.NewString()
	method := manualLoginMethod
	now := time.Now()
	params := UpsertParams{
		OpenID:       openID,
		Name:         &input.Name,
		Email:        input.Email,
		LoginMethod:  &method,
		Role:         &input.Role,
		LastSignedIn: &now,
	}
	if err := s.repo.Upsert(ctx, params); err != nil {
		return nil, err
	}

	s.logger.Info().Str("open_id", openID).Str("role", input.Role).Msg("user created")
	return &CreateResult{OpenID: openID, Password: input.Password}, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			s.logger.Warn().Msg("store unavailable, returning empty user list")
			return []User{}, nil
		}
		return nil, err
	}
	return items, nil
}

func (s *Service) GetByOpenID(ctx context.Context, openID string) (*User, error) {
	user, err := s.repo.GetByOpenID(ctx, openID)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, storage.ErrUnavailable) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, storage.ErrUnavailable) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
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
