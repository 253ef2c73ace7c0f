package repository

import (
	"context"
	"errors"
	"fmt"

	"film_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// DirectorRepository reads directors; they are managed outside this service
type DirectorRepository interface {
	FindAll(ctx context.Context) ([]model.Director, error)
	FindByID(ctx context.Context, id int64) (*model.Director, error)
}

type directorRepository struct {
	db DB
}

func NewDirectorRepository(db DB) DirectorRepository {
	return &directorRepository{db: db}
}

func (r *directorRepository) FindAll(ctx context.Context) ([]model.Director, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM directors ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query directors: %w", err)
	}
	defer rows.Close()

	directors := make([]model.Director, 0)
	for rows.Next() {
		var d model.Director
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan director row: %w", err)
		}
		directors = append(directors, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating director rows: %w", err)
	}
	return directors, nil
}

func (r *directorRepository) FindByID(ctx context.Context, id int64) (*model.Director, error) {
	d := &model.Director{}
	err := r.db.QueryRow(ctx, `SELECT id, name FROM directors WHERE id = $1`, id).Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find director by ID: %w", err)
	}
	return d, nil
}
