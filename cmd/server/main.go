package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yukikurage/project-manager-api/internal/config"
	"github.com/yukikurage/project-manager-api/internal/constants"
	"github.com/yukikurage/project-manager-api/internal/database"
	"github.com/yukikurage/project-manager-api/internal/logger"
	"github.com/yukikurage/project-manager-api/internal/middleware"
	"github.com/yukikurage/project-manager-api/internal/router"
	"github.com/yukikurage/project-manager-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	appLogger := logger.Init(cfg.LogLevel, !cfg.IsProduction())

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	database.PatchSchema(db)

	secret := cfg.JWTSecret
	if secret == "" && !cfg.IsProduction() {
		log.Warn().Msg("JWT_SECRET is not set, using the development secret")
		secret = constants.DevelopmentJWTSecret
	}
	tokens, err := services.NewTokenService(services.TokenConfig{
		Secret:   secret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		Lifetime: constants.TokenLifetime,
	})
	if err != nil {
		log.Fatal().Err(err).Int("min_length", constants.MinJWTSecretLength).Msg("invalid JWT_SECRET")
	}

	r := router.New(router.Options{
		DB:             db,
		Tokens:         tokens,
		AuthLimiter:    middleware.NewClientRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow),
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         appLogger,

		TaskManagerBaseURL: cfg.TaskManagerBaseURL,
	})

	// Start server
	if err := router.Serve(":"+cfg.Port, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
