package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime settings for the API process
type Config struct {
	AppEnv        string
	ServiceName   string
	LogLevel      string
	GinMode       string
	SeedDirectors bool
	Server        ServerConfig
	Database      DatabaseConfig
	JWT           JWTConfig
	Admin         AdminConfig
}

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database connection parameters. URL wins over the
// individual fields when both are present.
type DatabaseConfig struct {
	URL             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConns        int32
	ConnectRetries  int
	ConnectInterval time.Duration
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// AdminConfig names the account created at startup when no admin exists yet
type AdminConfig struct {
	Username string
	Password string
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET not set in environment")

// Load reads an optional .env file and then the process environment.
// A missing .env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "production")
	v.SetDefault("SERVICE_NAME", "film-api")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("SEED_DIRECTORS", true)
	v.SetDefault("SERVER_PORT", "3300")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "film_api")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_CONNECT_RETRIES", 5)
	v.SetDefault("DB_CONNECT_INTERVAL", 5*time.Second)
	v.SetDefault("JWT_TTL", time.Hour)

	// PORT is what most hosting platforms inject
	port := v.GetString("SERVER_PORT")
	if p := v.GetString("PORT"); p != "" {
		port = p
	}

	cfg := &Config{
		AppEnv:        v.GetString("APP_ENV"),
		ServiceName:   v.GetString("SERVICE_NAME"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		GinMode:       v.GetString("GIN_MODE"),
		SeedDirectors: v.GetBool("SEED_DIRECTORS"),
		Server: ServerConfig{
			Port:            port,
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			URL:             v.GetString("DATABASE_URL"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetString("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSL_MODE"),
			MaxConns:        v.GetInt32("DB_MAX_CONNS"),
			ConnectRetries:  v.GetInt("DB_CONNECT_RETRIES"),
			ConnectInterval: v.GetDuration("DB_CONNECT_INTERVAL"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			TTL:    v.GetDuration("JWT_TTL"),
		},
		Admin: AdminConfig{
			Username: v.GetString("INITIAL_ADMIN_USERNAME"),
			Password: v.GetString("INITIAL_ADMIN_PASSWORD"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}
	if cfg.JWT.TTL <= 0 {
		return nil, fmt.Errorf("invalid JWT_TTL %q: must be a positive duration such as 1h", v.GetString("JWT_TTL"))
	}
	return cfg, nil
}

// DSN returns the connection string handed to pgxpool
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}
