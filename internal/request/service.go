package request

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/dealflow-platform/admin-api/internal/query"
)

type Service interface {
	Create(ctx context.Context, in CreateInput) (*Request, error)
	GetByID(ctx context.Context, id int) (*Request, error)
	List(ctx context.Context, f Filter, s query.Sort) ([]Request, error)
	Update(ctx context.Context, id int, patch Patch) (*Request, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, in CreateInput) (*Request, error) {
	req, err := s.repo.Create(ctx, in)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to create request in repository")
		return nil, fmt.Errorf("service: failed to create request: %w", err)
	}

	log.Info().Int("request_id", req.ID).Str("topic", req.Topic).Msg("service: request created")
	return req, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Request, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Int("request_id", id).Msg("service: failed to get request by id")
		return nil, fmt.Errorf("service: failed to get request by id %d: %w", id, err)
	}
	return req, nil
}

func (s *service) List(ctx context.Context, f Filter, srt query.Sort) ([]Request, error) {
	requests, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to list requests")
		return nil, fmt.Errorf("service: failed to list requests: %w", err)
	}
	return Apply(requests, f, srt), nil
}

func (s *service) Update(ctx context.Context, id int, patch Patch) (*Request, error) {
	req, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn().Int("request_id", id).Msg("service: request not found for update")
			return nil, ErrNotFound
		}
		log.Error().Err(err).Int("request_id", id).Msg("service: failed to update request")
		return nil, fmt.Errorf("service: failed to update request %d: %w", id, err)
	}

	log.Info().Int("request_id", id).Msg("service: request updated")
	return req, nil
}
