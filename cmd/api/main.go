package main

import (
	"os"

	"github.com/dishabharti/campus/internal/pkg/logger"
	"github.com/dishabharti/campus/internal/server"
)

// @title Disha Bharti Campus API
// @version 1.0
// @description API for the Disha Bharti College of Management & Education student management system

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// NewServer orchestrates config loading, snapshot storage, dependency
	// wiring and routing. Startup errors are logged within those functions.
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
