package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ShesaiXD/auth-service/config"
	"github.com/ShesaiXD/auth-service/db"
	"github.com/ShesaiXD/auth-service/internal/auth/blacklist"
	"github.com/ShesaiXD/auth-service/internal/auth/domain"
	"github.com/ShesaiXD/auth-service/internal/auth/handler"
	repo "github.com/ShesaiXD/auth-service/internal/auth/repository/postgres"
	"github.com/ShesaiXD/auth-service/internal/auth/service"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Str("service", "auth").Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	var tokenBlacklist domain.TokenBlacklist
	if cfg.RedisAddr != "" {
		redisClient, err := db.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()

		tokenBlacklist = blacklist.NewRedisStore(redisClient)
	} else {
		log.Warn().Msg("REDIS_ADDR not set, using in-memory blacklist")

		tokenBlacklist = blacklist.NewMemoryStore()
	}

	userRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.SigningSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	userService := service.NewUserService(userRepo, tokenService, tokenBlacklist, cfg)
	authHandler := handler.NewAuthHandler(userService, log)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, handler.RequireAuth(tokenService, log))

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting auth service")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
