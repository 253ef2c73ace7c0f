package repository

import (
	"context"
	"errors"
	"fmt"

	"film_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	HasAdmin(ctx context.Context) (bool, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. A taken username yields ErrDuplicate.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (username, password_hash, role)
            VALUES ($1, $2, $3) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, user.Username, user.PasswordHash, user.Role).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if known := classify(err); known != nil {
			return fmt.Errorf("failed to create user: %w", known)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByUsername retrieves a user by their (already normalized) username
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, username, password_hash, role, created_at FROM users WHERE username = $1`
	err := r.db.QueryRow(ctx, sql, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return user, nil
}

// HasAdmin reports whether at least one admin account exists
func (r *userRepository) HasAdmin(ctx context.Context) (bool, error) {
	var exists bool
	sql := `SELECT EXISTS (SELECT 1 FROM users WHERE role = $1)`
	if err := r.db.QueryRow(ctx, sql, model.RoleAdmin).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check for admin: %w", err)
	}
	return exists, nil
}
