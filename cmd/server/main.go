package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-board-api/internal/config"
	"github.com/yukikurage/project-board-api/internal/database"
	"github.com/yukikurage/project-board-api/internal/logging"
	"github.com/yukikurage/project-board-api/internal/router"
)

func main() {
	// Load configuration
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}
	cfg := config.Load()

	logger := logging.Init(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Run migrations
	if err := database.Migrate(database.GetDB()); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	if err := database.SeedUsers(database.GetDB(), cfg.SeedUsers); err != nil {
		logger.Error("failed to seed users", "error", err)
		os.Exit(1)
	}

	r, err := router.NewRouter(cfg, database.GetDB(), logger)
	if err != nil {
		logger.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	// Start server
	logger.Info("server starting", "port", cfg.Port, "driver", cfg.DBDriver, "session_store", cfg.SessionStore)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
