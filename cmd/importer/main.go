package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"newsportal/database"
	"newsportal/internal/config"
	"newsportal/internal/importer"
	"newsportal/internal/logging"
	"newsportal/internal/repository"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	prefetch := flag.Int("prefetch", 10, "unacknowledged deliveries held at once")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := logging.New(cfg.LogLevel)

	if cfg.RabbitMQ.URL == "" {
		log.Fatal("rabbitmq.url (or RABBITMQ_URL) is required for the importer")
	}

	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	sub, err := importer.Subscribe(importer.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.ImportRoutingKey,
		QueueName:  cfg.RabbitMQ.ImportQueue,
		Prefetch:   *prefetch,
	}, log)
	if err != nil {
		log.Fatalf("Failed to subscribe to import queue: %v", err)
	}
	defer sub.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := importer.NewConsumer(repository.NewRawArticleRepository(db), log)
	log.Infof("Importer consuming from queue %s", cfg.RabbitMQ.ImportQueue)
	if err := consumer.Run(ctx, sub.Deliveries); err != nil && ctx.Err() == nil {
		log.Fatalf("Importer stopped: %v", err)
	}
	log.Info("Importer stopped")
}
