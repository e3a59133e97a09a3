package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yukikurage/project-manager-api/internal/config"
	"github.com/yukikurage/project-manager-api/internal/logger"
	"github.com/yukikurage/project-manager-api/internal/router"
	"github.com/yukikurage/project-manager-api/internal/taskstore"
)

func main() {
	cfg := config.Load()
	appLogger := logger.Init(cfg.LogLevel, !cfg.IsProduction())
	gin.SetMode(cfg.GinMode)

	// Tasks live in memory for the lifetime of the process.
	store := taskstore.NewStore(taskstore.NewAtomicCounter(0))

	if err := router.Serve(":"+cfg.TrackerPort, router.NewTracker(store, appLogger)); err != nil {
		log.Fatal().Err(err).Msg("tracker stopped")
	}
}
