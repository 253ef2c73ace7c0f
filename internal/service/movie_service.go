package service

import (
	"context"
	"errors"
	"fmt"

	"film_api/internal/model"
	"film_api/internal/repository"
)

// MovieService defines operations for the movie catalog
type MovieService interface {
	List(ctx context.Context) ([]model.Movie, error)
	Get(ctx context.Context, id int64) (*model.Movie, error)
	Create(ctx context.Context, req model.MovieRequest) (*model.Movie, error)
	Update(ctx context.Context, id int64, req model.MovieRequest) (*model.Movie, error)
	Delete(ctx context.Context, id int64) error
}

type movieService struct {
	repo repository.MovieRepository
}

// NewMovieService creates a new MovieService
func NewMovieService(repo repository.MovieRepository) MovieService {
	return &movieService{repo: repo}
}

func (s *movieService) List(ctx context.Context) ([]model.Movie, error) {
	movies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

func (s *movieService) Get(ctx context.Context, id int64) (*model.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapMovieErr("failed to get movie", err)
	}
	return movie, nil
}

func (s *movieService) Create(ctx context.Context, req model.MovieRequest) (*model.Movie, error) {
	movie, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, mapMovieErr("failed to create movie", err)
	}
	return movie, nil
}

func (s *movieService) Update(ctx context.Context, id int64, req model.MovieRequest) (*model.Movie, error) {
	movie, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, mapMovieErr("failed to update movie", err)
	}
	return movie, nil
}

func (s *movieService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapMovieErr("failed to delete movie", err)
	}
	return nil
}

func mapMovieErr(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrMovieNotFound
	case errors.Is(err, repository.ErrForeignKey):
		return ErrDirectorNotFound
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
