package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"quotebook-backend/internal/config"
	"quotebook-backend/pkg/logger"
)

func main() {
	// ========================================
	// LOAD ENVIRONMENT VARIABLES
	// ========================================
	// .env is optional; production uses the real environment
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to load configuration")
	}

	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	// ========================================
	// SET GIN MODE
	// ========================================
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info().Str("env", cfg.App.Environment).Msg("🌍 Environment")

	if err := Serve(cfg); err != nil {
		log.Fatal().Err(err).Msg("❌ Server stopped with error")
	}
}
