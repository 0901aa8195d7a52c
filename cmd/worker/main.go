package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/flynow/config"
	"github.com/Domenick1991/flynow/internal/email"
	"github.com/Domenick1991/flynow/internal/kafka"
	"github.com/Domenick1991/flynow/pkg/logger"
	"github.com/joho/godotenv"
	kafkaGo "github.com/segmentio/kafka-go"
)

// The worker consumes record events and turns them into notifications.
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

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.RecordsTopic)
	defer consumer.Close()

	sender := email.NewSender(log)

	log.Info("worker started", "topic", cfg.Kafka.RecordsTopic, "group", cfg.Kafka.GroupID)

	if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.RecordEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Warn("decode event", "error", err)
			return nil
		}
		return sender.Send(ctx, event)
	}); err != nil && ctx.Err() == nil {
		log.Error("consumer stopped", "error", err)
	}
}
