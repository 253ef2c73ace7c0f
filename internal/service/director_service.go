package service

import (
	"context"
	"errors"
	"fmt"

	"film_api/internal/model"
	"film_api/internal/repository"
)

// DirectorService exposes the read-only director listing
type DirectorService interface {
	List(ctx context.Context) ([]model.Director, error)
	Get(ctx context.Context, id int64) (*model.Director, error)
}

type directorService struct {
	repo repository.DirectorRepository
}

func NewDirectorService(repo repository.DirectorRepository) DirectorService {
	return &directorService{repo: repo}
}

func (s *directorService) List(ctx context.Context) ([]model.Director, error) {
	directors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list directors: %w", err)
	}
	return directors, nil
}

func (s *directorService) Get(ctx context.Context, id int64) (*model.Director, error) {
	director, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDirectorNotFound
		}
		return nil, fmt.Errorf("failed to get director: %w", err)
	}
	return director, nil
}
