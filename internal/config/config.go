package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Pickup-flow handoff publishing.
	KafkaBrokers      []string
	KafkaHandoffTopic string

	// Mapbox geocoding configuration.
	MapboxToken     string
	MapboxTimeout   time.Duration
	MapboxCacheSize int
	MapboxLanguage  string
	MapboxCountry   string
	MapboxRPS       int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	mapboxTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("MAPBOX_TIMEOUT", "5s"))
	if err != nil || mapboxTimeout <= 0 {
		return nil, errors.New("invalid MAPBOX_TIMEOUT")
	}

	mapboxRPS, err := strconv.Atoi(sharedcfg.EnvOrDefault("MAPBOX_RPS", "10"))
	if err != nil || mapboxRPS <= 0 {
		return nil, errors.New("invalid MAPBOX_RPS: must be a positive integer")
	}

	cfg := &Config{
		HTTPAddr:          sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:          sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:         sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:   shutdownTimeout,
		KafkaBrokers:      sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaHandoffTopic: sharedcfg.EnvOrDefault("KAFKA_HANDOFF_TOPIC", "pickup-handoffs"),

		MapboxToken:     os.Getenv("MAPBOX_TOKEN"),
		MapboxTimeout:   mapboxTimeout,
		MapboxCacheSize: parseMapboxCacheSize(),
		MapboxLanguage:  sharedcfg.EnvOrDefault("MAPBOX_LANGUAGE", "ko"),
		MapboxCountry:   os.Getenv("MAPBOX_COUNTRY"),
		MapboxRPS:       mapboxRPS,
	}
	if _, set := os.LookupEnv("MAPBOX_COUNTRY"); !set {
		cfg.MapboxCountry = "kr"
	}

	if cfg.MapboxToken == "" {
		return nil, errors.New("MAPBOX_TOKEN is required")
	}
	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaHandoffTopic == "" {
		return nil, errors.New("KAFKA_HANDOFF_TOPIC is required")
	}

	return cfg, nil
}

func parseMapboxCacheSize() int {
	if s := os.Getenv("MAPBOX_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 1000
}
