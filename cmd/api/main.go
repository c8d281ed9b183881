package main

import (
	"os"

	"github.com/edukit/school-api/internal/pkg/logger"
	"github.com/edukit/school-api/internal/server"
)

// @title School Records API
// @version 1.0
// @description CRUD API for courses, students and teachers

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
