package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yigit/wish2work/internal/pkg/logger"
	"github.com/yigit/wish2work/internal/server"
)

// @title Wish2Work API
// @version 1.0
// @description Staffing-match API connecting university staff with students for short engagements

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := server.New()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		stop()
		os.Exit(1)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("Server stopped with errors")
		stop()
		os.Exit(1)
	}

	logger.Info().Msg("Wish2Work API stopped")
}
