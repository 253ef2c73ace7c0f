package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"film_api/internal/config"
	"film_api/internal/logger"
	"film_api/internal/metrics"
	"film_api/internal/server"
	"film_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		// logger is not configured yet
		fallback := logger.New("info", "", os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.AppEnv, os.Stdout)
	gin.SetMode(cfg.GinMode)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server exiting")
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database ---
	dbPool, err := config.ConnectDB(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	if err := config.AutoMigrate(ctx, dbPool, cfg.SeedDirectors, log); err != nil {
		return err
	}

	// --- Application ---
	app := server.New(server.Deps{
		ServiceName: cfg.ServiceName,
		Store:       dbPool,
		JWT:         utils.NewJWTUtil(cfg.JWT.Secret, cfg.JWT.TTL),
		Metrics:     metrics.New("film_api"),
		Log:         log,
	})

	created, err := app.AuthService.BootstrapAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		return err
	}
	if created {
		log.Info().Str("username", cfg.Admin.Username).Msg("initial admin created")
	}

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: app.Router,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Server.Port).Str("env", cfg.AppEnv).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// --- Graceful Shutdown ---
	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
