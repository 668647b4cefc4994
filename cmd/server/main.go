package main

import (
	"log/slog"
	"os"

	"github.com/nfrund/shopdocs/internal/config"
	"github.com/nfrund/shopdocs/internal/logging"
	"github.com/nfrund/shopdocs/internal/server"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.New(cfg.LogFormat, cfg.LogLevel)

	// Create a new server instance. A catalog that fails to build stops here.
	s, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}

	// Register all application routes.
	s.RegisterRoutes()

	// Start the server.
	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
