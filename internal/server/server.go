package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/yigit/wish2work/internal/bootstrap"
	"github.com/yigit/wish2work/internal/config"
)

const (
	// ShutdownTimeout bounds the graceful shutdown of the HTTP server
	ShutdownTimeout = 10 * time.Second

	// IdleTimeout closes keep-alive connections left unused this long
	IdleTimeout = 120 * time.Second
)

// Server owns the HTTP listener and the database pool behind it.
type Server struct {
	config *config.Config
	dbPool *pgxpool.Pool
	logger zerolog.Logger
	http   *http.Server
}

// New loads configuration, connects and migrates the database and builds the
// router. The returned server is not listening yet.
func New() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	return &Server{
		config: cfg,
		dbPool: dbPool,
		logger: lgr,
		http: &http.Server{
			Addr:         ":" + cfg.Server.Port,
			Handler:      bootstrap.SetupRouter(cfg, deps, lgr),
			ReadTimeout:  cfg.ReadTimeout(),
			WriteTimeout: cfg.WriteTimeout(),
			IdleTimeout:  IdleTimeout,
		},
	}, nil
}

// Run serves until ctx is cancelled or the listener fails, then shuts down.
func (s *Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		defer close(serveErr)
		s.logger.Info().Str("addr", s.http.Addr).Str("mode", s.config.Server.Mode).Msg("HTTP server listening")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- fmt.Errorf("error starting server: %w", err)
		}
	}()

	var err error
	select {
	case err = <-serveErr:
	case <-ctx.Done():
		s.logger.Info().Msg("Shutdown signal received")
	}

	return errors.Join(err, s.shutdown())
}

// shutdown drains in-flight requests, then closes the pool
func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	var err error
	if shutdownErr := s.http.Shutdown(ctx); shutdownErr != nil {
		s.logger.Error().Err(shutdownErr).Msg("HTTP server shutdown error")
		err = fmt.Errorf("http shutdown: %w", shutdownErr)
	} else {
		s.logger.Info().Msg("HTTP server stopped")
	}

	stat := s.dbPool.Stat()
	s.logger.Info().
		Int32("acquired", stat.AcquiredConns()).
		Int32("total", stat.TotalConns()).
		Msg("Closing database connection pool")
	s.dbPool.Close()

	return err
}
