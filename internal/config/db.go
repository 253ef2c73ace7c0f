package config

import (
	"context"
	"fmt"
	"time"

	"film_api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// ConnectDB establishes a connection pool to PostgreSQL, retrying while the
// database comes up
func ConnectDB(ctx context.Context, cfg DatabaseConfig, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	maxRetries := cfg.ConnectRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	for i := 0; i < maxRetries; i++ {
		var pool *pgxpool.Pool
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				log.Info().Str("host", poolCfg.ConnConfig.Host).Msg("connected to PostgreSQL")
				return pool, nil
			}
			pool.Close()
		}
		log.Warn().Err(err).
			Int("attempt", i+1).
			Int("max_attempts", maxRetries).
			Dur("retry_in", cfg.ConnectInterval).
			Msg("failed to connect to database")

		if i == maxRetries-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.ConnectInterval):
		}
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('user', 'admin')) DEFAULT 'user',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS directors (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS movies (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		year INTEGER NOT NULL,
		director_id INTEGER REFERENCES directors(id) ON DELETE SET NULL
	);

	CREATE INDEX IF NOT EXISTS idx_movies_director_id ON movies(director_id);
`

const seedDirectorsSQL = `
	INSERT INTO directors (name)
	SELECT name FROM (VALUES ('Peter Jackson'), ('Joss Whedon'), ('Sam Raimi')) AS seed(name)
	WHERE NOT EXISTS (SELECT 1 FROM directors)
`

// AutoMigrate creates tables if they don't exist. With seed set, an empty
// directors table gets a few rows so movies have something to reference.
func AutoMigrate(ctx context.Context, db repository.DB, seed bool, log zerolog.Logger) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	if seed {
		tag, err := db.Exec(ctx, seedDirectorsSQL)
		if err != nil {
			return fmt.Errorf("unable to seed directors: %w", err)
		}
		if tag.RowsAffected() > 0 {
			log.Info().Int64("rows", tag.RowsAffected()).Msg("seeded directors")
		}
	}

	log.Info().Msg("AutoMigrate applied successfully")
	return nil
}
