package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port             string
	DatabaseDSN      string
	RedisAddr        string
	RedisPassword    string
	KafkaBroker      string
	ElasticsearchURL string
	SentryDSN        string
	CORSOrigins      []string
	Environment      string
	Version          string
}

// Load reads the configuration from environment variables, applying the
// defaults used in local development.
func Load() *Config {
	return &Config{
		Port:             getenv("PORT", "8080"),
		DatabaseDSN:      postgresDSN(),
		RedisAddr:        getenv("REDIS_HOST", "localhost:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		KafkaBroker:      getenv("KAFKA_BROKER", "localhost:9092"),
		ElasticsearchURL: os.Getenv("ELASTICSEARCH_URL"),
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		CORSOrigins:      splitOrigins(getenv("CORS_ORIGINS", "*")),
		Environment:      getenv("APP_ENV", "development"),
		Version:          getenv("APP_VERSION", "dev"),
	}
}

func postgresDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getenv("DB_HOST", "localhost"),
		getenv("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		getenv("DB_NAME", "hmi"),
		getenv("DB_PORT", "5432"),
	)
}

// AllowAllOrigins reports whether CORS should be wide open.
func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.CORSOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
