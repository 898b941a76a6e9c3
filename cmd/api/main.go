package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hoteldesk/hotel-system/internal/api"
	"github.com/hoteldesk/hotel-system/internal/pkg/config"
	"github.com/hoteldesk/hotel-system/pkg/logger"

	mongodb "github.com/hoteldesk/hotel-system/internal/infrastructure/db/mongo"
	redisdb "github.com/hoteldesk/hotel-system/internal/infrastructure/db/redis"
)

// @title        Hotel Management System API
// @version      1.0
// @description  REST backend for hotel operations: rooms, guests, bookings, payments, services and housekeeping.

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if strings.TrimSpace(cfg.JWTSecret) == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect")
	}
	defer rdb.Close()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	e, err := api.NewRouter(db, rdb, api.Config{
		JWTSecret:    cfg.JWTSecret,
		JWTAlgorithm: cfg.JWTAlgorithm,
		TokenTTL:     time.Duration(cfg.TokenTTLMinutes) * time.Minute,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build router")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("http shutdown")
	}
	log.Info().Msg("server stopped")
}

type indexEnsurer interface {
	EnsureIndexes(ctx context.Context) error
}

// ensureIndexes creates the collection indexes on startup so uniqueness
// guarantees hold from the first request.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	ensurers := []indexEnsurer{
		mongodb.NewUserRepository(db),
		mongodb.NewRoomRepository(db),
		mongodb.NewGuestRepository(db),
		mongodb.NewBookingRepository(db),
		mongodb.NewPaymentRepository(db),
		mongodb.NewServiceRepository(db),
		mongodb.NewOrderRepository(db),
		mongodb.NewHousekeepingRepository(db),
	}
	for _, e := range ensurers {
		if err := e.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
