package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cisretail/receiving/cmd/config"
	"github.com/cisretail/receiving/thirdparty/vend"
	"github.com/cisretail/receiving/utils/logger"
	"go.uber.org/zap"
)

// syncworker drains the inventory sync queue and relays level updates to
// the Vend API. It runs as its own process so a slow or down POS never
// affects the receiving service.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting sync worker", zap.String("env", cfg.Environment))

	consumer, err := vend.NewConsumer(
		cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		cfg.Vend.APIURL, cfg.Vend.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("Sync worker shutting down")
}
