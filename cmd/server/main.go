package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/quadraplay/court-booking-api/internal/config"
	"github.com/quadraplay/court-booking-api/internal/database"
	"github.com/quadraplay/court-booking-api/internal/handler"
	"github.com/quadraplay/court-booking-api/internal/middleware"
	"github.com/quadraplay/court-booking-api/internal/payment"
	"github.com/quadraplay/court-booking-api/internal/queue"
	"github.com/quadraplay/court-booking-api/internal/repository"
	"github.com/quadraplay/court-booking-api/internal/router"
	"github.com/quadraplay/court-booking-api/internal/storage"
)

func main() {
	// .env is optional; in containers everything comes from real env vars.
	_ = godotenv.Load()

	cfg := config.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", "court-booking-api").Logger()
	if cfg.Env == "dev" {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable, cache and rate limiting disabled")
	}

	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	sportRepo := repository.NewSportRepo(db)
	estRepo := repository.NewEstablishmentRepo(db)
	courtRepo := repository.NewCourtRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	blockedRepo := repository.NewBlockedSlotRepo(db)
	favoriteRepo := repository.NewFavoriteRepo(db)
	matchRepo := repository.NewMatchRepo(db)

	authHandler := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	publicHandler := handler.NewPublicHandler(cfg, sportRepo, estRepo, courtRepo, bookingRepo, blockedRepo)
	bookingHandler := handler.NewBookingHandler(cfg, courtRepo, bookingRepo, payment.NewMockProcessor(), log)
	favoriteHandler := handler.NewFavoriteHandler(favoriteRepo)
	matchHandler := handler.NewMatchHandler(matchRepo)
	ownerHandler := handler.NewOwnerHandler(estRepo, courtRepo, sportRepo, bookingRepo, blockedRepo)
	ownerBookingHandler := handler.NewOwnerBookingHandler(courtRepo, bookingRepo, log)

	var photoHandler *handler.CourtPhotoHandler
	if cfg.CloudinaryURL != "" {
		uploader, err := storage.NewCloudinaryStorage(cfg.CloudinaryURL, "courts")
		if err != nil {
			log.Fatal().Err(err).Msg("cloudinary init failed")
		}
		photoHandler = handler.NewCourtPhotoHandler(ownerHandler, uploader)
	} else {
		log.Warn().Msg("CLOUDINARY_URL not set, court photo upload disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.NewRateLimiter(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterPublic(e, publicHandler, config.LoadCacheConfig(), rdb)
	router.RegisterPlayer(e, bookingHandler, favoriteHandler, matchHandler, cfg.JWTSecret)
	router.RegisterOwner(e, ownerHandler, ownerBookingHandler, photoHandler, cfg.JWTSecret)

	go queue.StartBookingConsumer(log)

	// Slot claims of past dates are dead weight; sweep them daily.
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			n, err := bookingRepo.PruneExpiredClaims(ctx, time.Now().UTC())
			cancel()
			if err != nil {
				log.Warn().Err(err).Msg("prune expired claims failed")
				continue
			}
			if n > 0 {
				log.Info().Int64("rows", n).Msg("pruned expired slot claims")
			}
		}
	}()

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
