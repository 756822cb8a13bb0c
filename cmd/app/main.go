package main

import (
	"todolist/config"
	"todolist/di"
	"todolist/helper"
	"todolist/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title To do list API
// @version 1.0
// @description Per-user todo lists with ordered tasks.
// @BasePath /
// @securityDefinitions.basic BasicAuth
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	logger.InitLogger()

	cfg := config.Get()

	output := logger.Configure(cfg)
	defer output.Close()

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
