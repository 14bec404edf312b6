package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"hmi-backend/config"
	"hmi-backend/consumer"
	"hmi-backend/handlers"
	"hmi-backend/models"
	"hmi-backend/monitoring"
	"hmi-backend/utils"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
)

func main() {
	logger := log.New(os.Stdout, "HMI: ", log.LstdFlags|log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		logger.Printf("No .env file loaded: %v", err)
	}
	cfg := config.Load()

	if cfg.SentryDSN != "" {
		if err := utils.InitSentry(cfg.SentryDSN, cfg.Environment, cfg.Version); err != nil {
			logger.Printf("Sentry disabled: %v", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	monitoring.Init()

	// The store is the one dependency worth retrying; the container often
	// comes up before Postgres accepts connections.
	var repo *models.GormRepository
	var err error
	maxRetries := 5
	retryDelay := 3 * time.Second

	for i := 0; i < maxRetries; i++ {
		repo, err = models.NewPostgresRepository(cfg.DatabaseDSN)
		if err == nil {
			break
		}
		logger.Printf("Attempt %d: Failed to connect to database: %v", i+1, err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if err != nil {
		logger.Fatalf("Failed to initialize database after %d attempts: %v", maxRetries, err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Printf("Error closing database connection: %v", err)
		}
	}()

	// Cache, events and search are optional: a nil client turns the
	// feature off and the API keeps serving from the store.
	cache, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Printf("Redis unavailable, contact-info caching disabled: %v", err)
		cache = nil
	} else {
		defer func() {
			if err := cache.Close(); err != nil {
				logger.Printf("Error closing Redis connection: %v", err)
			}
		}()
	}

	producer, err := utils.NewKafkaProducer(cfg.KafkaBroker)
	if err != nil {
		logger.Printf("Kafka unavailable, submission events disabled: %v", err)
		producer = nil
	} else {
		defer func() {
			if err := producer.Close(); err != nil {
				logger.Printf("Error closing Kafka producer: %v", err)
			}
		}()
	}

	if producer != nil && cfg.ElasticsearchURL != "" {
		es, err := utils.NewElasticsearchClient(cfg.ElasticsearchURL)
		if err != nil {
			logger.Printf("Elasticsearch unavailable, search mirror disabled: %v", err)
		} else {
			submissionConsumer := consumer.NewSubmissionConsumer(cfg.KafkaBroker, es)
			submissionConsumer.Start(context.Background())
			defer submissionConsumer.Stop()
		}
	}

	router := handlers.NewRouter(handlers.RouterOptions{
		Repo:        repo,
		Cache:       cache,
		Kafka:       producer,
		Verifier:    handlers.NewStaticVerifier(),
		CORSOrigins: cfg.CORSOrigins,
	})

	logger.Printf("Server is running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatalf("Server error: %v", err)
	}
}
