package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/dealflow-platform/admin-api/internal/query"
)

type Service interface {
	Create(ctx context.Context, in CreateInput) (*Project, error)
	GetByID(ctx context.Context, id int) (*Project, error)
	List(ctx context.Context, f Filter, s query.Sort) ([]Project, error)
	Update(ctx context.Context, id int, patch Patch) (*Project, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, in CreateInput) (*Project, error) {
	p, err := s.repo.Create(ctx, in)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to create project in repository")
		return nil, fmt.Errorf("service: failed to create project: %w", err)
	}

	log.Info().Int("project_id", p.ID).Str("name", p.Name).Msg("service: project created")
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Int("project_id", id).Msg("service: failed to get project by id")
		return nil, fmt.Errorf("service: failed to get project by id %d: %w", id, err)
	}
	return p, nil
}

func (s *service) List(ctx context.Context, f Filter, srt query.Sort) ([]Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to list projects")
		return nil, fmt.Errorf("service: failed to list projects: %w", err)
	}
	return Apply(projects, f, srt), nil
}

func (s *service) Update(ctx context.Context, id int, patch Patch) (*Project, error) {
	p, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn().Int("project_id", id).Msg("service: project not found for update")
			return nil, ErrNotFound
		}
		log.Error().Err(err).Int("project_id", id).Msg("service: failed to update project")
		return nil, fmt.Errorf("service: failed to update project %d: %w", id, err)
	}

	log.Info().Int("project_id", id).Msg("service: project updated")
	return p, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn().Int("project_id", id).Msg("service: project not found for delete")
			return ErrNotFound
		}
		log.Error().Err(err).Int("project_id", id).Msg("service: failed to delete project")
		return fmt.Errorf("service: failed to delete project %d: %w", id, err)
	}

	log.Info().Int("project_id", id).Msg("service: project deleted")
	return nil
}
