package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/dealflow-platform/admin-api/internal/query"
)

type Service interface {
	Create(ctx context.Context, in CreateInput) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, f Filter, s query.Sort) ([]User, error)
	RefreshAccess(ctx context.Context, id int) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, in CreateInput) (*User, error) {
	u, err := s.repo.Create(ctx, in)
	if err != nil {
		if errors.Is(err, ErrUsernameExists) {
			log.Warn().Str("username", in.Username).Msg("service: username already taken")
			return nil, ErrUsernameExists
		}
		log.Error().Err(err).Msg("service: failed to create user in repository")
		return nil, fmt.Errorf("service: failed to create user: %w", err)
	}

	log.Info().Int("user_id", u.ID).Str("username", u.Username).Msg("service: user created")
	return u, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Int("user_id", id).Msg("service: failed to get user by id")
		return nil, fmt.Errorf("service: failed to get user by id %d: %w", id, err)
	}
	return u, nil
}

func (s *service) GetByUsername(ctx context.Context, username string) (*User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Str("username", username).Msg("service: failed to get user by username")
		return nil, fmt.Errorf("service: failed to get user by username %q: %w", username, err)
	}
	return u, nil
}

// List возвращает пользователей, прошедших фильтр. Хранилище отдает полный
// список, фильтрация и сортировка выполняются движком поверх него.
func (s *service) List(ctx context.Context, f Filter, srt query.Sort) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to list users")
		return nil, fmt.Errorf("service: failed to list users: %w", err)
	}
	return Apply(users, f, srt), nil
}

func (s *service) RefreshAccess(ctx context.Context, id int) (*User, error) {
	u, err := s.repo.RefreshAccess(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Int("user_id", id).Msg("service: failed to refresh last access")
		return nil, fmt.Errorf("service: failed to refresh last access for user %d: %w", id, err)
	}
	return u, nil
}
