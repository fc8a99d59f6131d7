package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/utafrali/recipex/pkg/config"
)

// Config holds all configuration for the recipex service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// MongoDB
	MongoURI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"recipex"`

	// Kafka
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`

	// S3 image storage
	S3Region    string `env:"S3_REGION" envDefault:"eu-central-1"`
	S3Bucket    string `env:"S3_BUCKET" envDefault:"recipex-images"`
	S3Folder    string `env:"S3_FOLDER" envDefault:"images/"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Endpoint  string `env:"S3_ENDPOINT"`

	// Lifetime of presigned image URLs, in minutes.
	ImageURLTTLMinutes int `env:"IMAGE_URL_TTL_MINUTES" envDefault:"30"`

	// OpenTelemetry
	OTELEnabled    bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTELEndpoint   string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	OTELSampleRate float64 `env:"OTEL_SAMPLE_RATE" envDefault:"1.0"`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load recipex config: %w", err)
	}
	if cfg.HTTPPort < 1 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("invalid HTTP port: %d", cfg.HTTPPort)
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI must not be empty")
	}
	if cfg.ImageURLTTLMinutes < 1 {
		return nil, fmt.Errorf("invalid image URL TTL: %d minutes", cfg.ImageURLTTLMinutes)
	}
	return cfg, nil
}

// ImageURLTTL returns the presigned URL lifetime as a duration.
func (c *Config) ImageURLTTL() time.Duration {
	return time.Duration(c.ImageURLTTLMinutes) * time.Minute
}
