package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	aws_pkg "github.com/clubcaddy/backend/pkg/aws"
)

// Config holds all environment configuration for the service. It is built
// once at startup and injected into the components that need it; nothing
// reads the environment after this.
type Config struct {
	Port        string
	Env         string
	MongoURI    string
	MongoDBName string
	RedisURL    string

	BooqableURL string
	BooqableKey string

	JWTSecret string
	ClientURL string

	SMTPServer     string
	SMTPPort       string
	SMTPEmail      string
	SMTPPassword   string
	SMTPSenderName string

	KafkaBrokers     []string
	ReservationTopic string

	AllowedOrigins []string
}

// LoadConfig loads environment variables into a Config struct and validates
// them. With AWS_USE_SECRETS=true the JWT secret and Booqable key are read
// from Secrets Manager, falling back to env vars on failure.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("APP_ENV", "development"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName: getEnv("MONGO_DB", "clubcaddy"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),

		BooqableURL: os.Getenv("BOOQABLE_API_URL"),
		BooqableKey: os.Getenv("BOOQABLE_API_KEY"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		ClientURL: getEnv("CLIENT_URL", "http://localhost:3000"),

		SMTPServer:     os.Getenv("SMTP_SERVER"),
		SMTPPort:       os.Getenv("SMTP_PORT"),
		SMTPEmail:      os.Getenv("SMTP_EMAIL"),
		SMTPPassword:   os.Getenv("SMTP_PASSWORD"),
		SMTPSenderName: os.Getenv("SMTP_SENDER_NAME"),

		ReservationTopic: getEnv("RESERVATION_EVENTS_TOPIC", "reservation-events"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = splitAndTrim(brokers)
	}
	cfg.AllowedOrigins = splitAndTrim(getEnv("ALLOWED_ORIGINS", cfg.ClientURL))

	if os.Getenv("AWS_USE_SECRETS") == "true" {
		if awsCfg, err := aws_pkg.LoadAWSConfig(context.Background()); err == nil {
			sm := aws_pkg.NewSecretsClient(awsCfg)

			if jwt, err := sm.GetSecret(context.Background(), "clubcaddy/JWT_SECRET"); err == nil && jwt != "" {
				cfg.JWTSecret = jwt
			}
			if key, err := sm.GetSecret(context.Background(), "clubcaddy/BOOQABLE_API_KEY"); err == nil && key != "" {
				cfg.BooqableKey = key
			}
		}
	}

	if cfg.BooqableURL == "" {
		return nil, fmt.Errorf("BOOQABLE_API_URL is required")
	}
	if cfg.BooqableKey == "" {
		return nil, fmt.Errorf("BOOQABLE_API_KEY is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
