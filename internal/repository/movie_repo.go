package repository

import (
	"context"
	"errors"
	"fmt"

	"film_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// MovieRepository defines operations for movie data
type MovieRepository interface {
	FindAll(ctx context.Context) ([]model.Movie, error)
	FindByID(ctx context.Context, id int64) (*model.Movie, error)
	Create(ctx context.Context, req model.MovieRequest) (*model.Movie, error)
	Update(ctx context.Context, id int64, req model.MovieRequest) (*model.Movie, error)
	Delete(ctx context.Context, id int64) error
}

type movieRepository struct {
	db DB
}

// NewMovieRepository creates a new MovieRepository
func NewMovieRepository(db DB) MovieRepository {
	return &movieRepository{db: db}
}

// movieColumns projects a movie row (aliased m) joined with its director (aliased d)
const movieColumns = `m.id, m.title, m.year, m.director_id, d.name`

const movieJoin = `LEFT JOIN directors d ON m.director_id = d.id`

func scanMovie(row pgx.Row) (*model.Movie, error) {
	m := &model.Movie{}
	if err := row.Scan(&m.ID, &m.Title, &m.Year, &m.DirectorID, &m.DirectorName); err != nil {
		return nil, err
	}
	return m, nil
}

// FindAll returns every movie ordered by ascending id
func (r *movieRepository) FindAll(ctx context.Context) ([]model.Movie, error) {
	sql := `SELECT ` + movieColumns + ` FROM movies m ` + movieJoin + ` ORDER BY m.id ASC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	movies := make([]model.Movie, 0)
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie row: %w", err)
		}
		movies = append(movies, *m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movie rows: %w", err)
	}
	return movies, nil
}

// FindByID retrieves a single movie, ErrNotFound if there is none
func (r *movieRepository) FindByID(ctx context.Context, id int64) (*model.Movie, error) {
	sql := `SELECT ` + movieColumns + ` FROM movies m ` + movieJoin + ` WHERE m.id = $1`
	m, err := scanMovie(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find movie by ID: %w", err)
	}
	return m, nil
}

// Create inserts a movie and returns it in the same joined shape as reads
func (r *movieRepository) Create(ctx context.Context, req model.MovieRequest) (*model.Movie, error) {
	sql := `WITH m AS (
                INSERT INTO movies (title, director_id, year) VALUES ($1, $2, $3)
                RETURNING id, title, year, director_id
            )
            SELECT ` + movieColumns + ` FROM m ` + movieJoin
	m, err := scanMovie(r.db.QueryRow(ctx, sql, req.Title, req.DirectorID, req.Year))
	if err != nil {
		if known := classify(err); known != nil {
			return nil, fmt.Errorf("failed to create movie: %w", known)
		}
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}
	return m, nil
}

// Update replaces all fields of a movie; ErrNotFound when no row matched
func (r *movieRepository) Update(ctx context.Context, id int64, req model.MovieRequest) (*model.Movie, error) {
	sql := `WITH m AS (
                UPDATE movies SET title = $1, director_id = $2, year = $3 WHERE id = $4
                RETURNING id, title, year, director_id
            )
            SELECT ` + movieColumns + ` FROM m ` + movieJoin
	m, err := scanMovie(r.db.QueryRow(ctx, sql, req.Title, req.DirectorID, req.Year, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if known := classify(err); known != nil {
			return nil, fmt.Errorf("failed to update movie: %w", known)
		}
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}
	return m, nil
}

// Delete removes a movie; ErrNotFound when no row matched
func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	sql := `DELETE FROM movies WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
