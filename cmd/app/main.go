package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flynow/config"
	"github.com/Domenick1991/flynow/internal/bootstrap"
	"github.com/Domenick1991/flynow/internal/cache"
	"github.com/Domenick1991/flynow/internal/kafka"
	"github.com/Domenick1991/flynow/internal/repository"
	"github.com/Domenick1991/flynow/internal/service/auth"
	"github.com/Domenick1991/flynow/internal/service/flights"
	"github.com/Domenick1991/flynow/internal/service/passengers"
	"github.com/Domenick1991/flynow/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	log := logger.NewLogger()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal("load config", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal("connect postgres", "error", err)
	}
	defer pool.Close()

	redisClient := cache.NewClient(cfg.Redis)
	defer redisClient.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightCache := cache.NewFlightCache(redisClient, time.Duration(cfg.Cache.FlightsTTLSeconds)*time.Second)
	tokenStore := cache.NewTokenStore(redisClient)

	flightRepo := repository.NewFlightRepository(pool)
	passengerRepo := repository.NewPassengerRepository(pool)

	authService := auth.NewAuthService(cfg.Auth.AccessKey, cfg.Auth.AccessSecret, tokenStore, log)
	flightService := flights.NewFlightService(flightRepo, flightCache, producer, cfg.Kafka.RecordsTopic, log)
	passengerService := passengers.NewPassengerService(passengerRepo, flightRepo, producer, cfg.Kafka.RecordsTopic, log)

	if err := bootstrap.Run(ctx, cfg, log, authService, flightService, passengerService); err != nil {
		log.Fatal("server error", "error", err)
	}
}
