// Command server runs the Tabline HTTP API.
//
// Configuration comes from CONFIG_PATH (YAML) and environment variables.
// Exit codes: 0 = clean shutdown, 1 = startup or shutdown error.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tabline/tabline-backend/internal/adapter/postgres"
	lessonrepo "github.com/tabline/tabline-backend/internal/adapter/postgres/lesson"
	lessonsongrepo "github.com/tabline/tabline-backend/internal/adapter/postgres/lessonsong"
	songrepo "github.com/tabline/tabline-backend/internal/adapter/postgres/song"
	"github.com/tabline/tabline-backend/internal/app"
	"github.com/tabline/tabline-backend/internal/auth"
	"github.com/tabline/tabline-backend/internal/config"
	lessonsvc "github.com/tabline/tabline-backend/internal/service/lesson"
	songsvc "github.com/tabline/tabline-backend/internal/service/song"
	"github.com/tabline/tabline-backend/internal/service/songimport"
	"github.com/tabline/tabline-backend/internal/transport/middleware"
	"github.com/tabline/tabline-backend/internal/transport/rest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	logger.Info("starting server",
		slog.String("version", app.BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	songs := songrepo.New(pool)
	lessons := lessonrepo.New(pool)
	lessonSongs := lessonsongrepo.New(pool)

	importSvc := songimport.NewService(logger, songimport.Config{
		MatchThreshold:  cfg.Import.MatchThreshold,
		MatchConfidence: cfg.Import.MatchConfidence,
		MaxRows:         cfg.Import.MaxRows,
	}, songs, lessons, lessonSongs)
	songSvc := songsvc.NewService(logger, songs, cfg.Import.MatchThreshold)
	lessonSvc := lessonsvc.NewService(logger, lessons, lessonSongs, txm)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Logger:           logger,
		Validator:        jwt,
		CORS:             cfg.CORS,
		RateLimiter:      limiter,
		ImportRatePerMin: cfg.Import.RatePerMinute,
		Health:           rest.NewHealthHandler(pool, app.BuildVersion()),
		Imports:          rest.NewImportHandler(importSvc, logger),
		Songs:            rest.NewSongHandler(songSvc, logger),
		Lessons:          rest.NewLessonHandler(lessonSvc, logger),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
