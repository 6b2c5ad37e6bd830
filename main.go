package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"Spectra/internal/auth"
	"Spectra/internal/config"
	"Spectra/internal/observability"
	"Spectra/internal/repo"
	"Spectra/internal/server"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}
	logger := observability.NewLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	clock := clockwork.NewRealClock()
	deps := server.Deps{
		Logger:        logger,
		Metrics:       observability.NewMetrics(),
		Limiter:       auth.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		Clock:         clock,
		BatchMaxItems: cfg.BatchMaxItems,
	}

	if cfg.AuthEnabled {
		db, err := repo.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		users := repo.NewPostgresUserRepository(db)
		deps.Ready = users
		deps.Auth = &auth.Authenv{
			JWTKey:       []byte(cfg.TokenKey),
			Repo:         users,
			Clock:        clock,
			Logger:       logger,
			SecureCookie: cfg.TLSEnabled(),
		}
		logger.Info("user accounts enabled")
	} else {
		logger.Warn("DATABASE_URL not set, tools are public")
	}

	srv := server.NewServer(cfg.HTTPAddr, deps)

	var wg sync.WaitGroup
	errCh := make(chan error, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := srv.Start(cfg.TLSCert, cfg.TLSKey); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	wg.Wait()
	logger.Info("server stopped cleanly")
	return nil
}
