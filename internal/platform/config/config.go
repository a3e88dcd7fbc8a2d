package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName   string
	HTTPPort      string
	PostgresDSN   string
	RedisAddr     string
	RedisPassword string
	KafkaBrokers  []string

	LeaderboardCacheTTL    time.Duration
	EnableLeaderboardCache bool
	EnableOutboxRelay      bool
}

// fileConfig is the optional YAML overlay. Environment variables win over
// file values so deployments can override a checked-in base file.
type fileConfig struct {
	ServiceName         string   `yaml:"service_name"`
	HTTPPort            string   `yaml:"http_port"`
	PostgresDSN         string   `yaml:"postgres_dsn"`
	RedisAddr           string   `yaml:"redis_addr"`
	RedisPassword       string   `yaml:"redis_password"`
	KafkaBrokers        []string `yaml:"kafka_brokers"`
	LeaderboardCacheTTL string   `yaml:"leaderboard_cache_ttl"`
}

func Load() (Config, error) {
	overlay, err := loadFile(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return Config{}, err
	}

	service := firstNonEmpty(os.Getenv("SERVICE_NAME"), overlay.ServiceName, "chorepool")
	port := firstNonEmpty(os.Getenv("HTTP_PORT"), overlay.HTTPPort, "8080")

	var brokers []string
	for _, value := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			brokers = append(brokers, value)
		}
	}
	if len(brokers) == 0 {
		brokers = overlay.KafkaBrokers
	}
	if len(brokers) == 0 {
		brokers = []string{"localhost:9092"}
	}

	cacheTTL := 30 * time.Second
	if raw := firstNonEmpty(os.Getenv("LEADERBOARD_CACHE_TTL"), overlay.LeaderboardCacheTTL); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse LEADERBOARD_CACHE_TTL: %w", err)
		}
		cacheTTL = parsed
	}

	return Config{
		ServiceName:   service,
		HTTPPort:      port,
		PostgresDSN:   firstNonEmpty(os.Getenv("POSTGRES_DSN"), overlay.PostgresDSN),
		RedisAddr:     firstNonEmpty(os.Getenv("REDIS_ADDR"), overlay.RedisAddr),
		RedisPassword: firstNonEmpty(os.Getenv("REDIS_PASSWORD"), overlay.RedisPassword),
		KafkaBrokers:  brokers,

		LeaderboardCacheTTL:    cacheTTL,
		EnableLeaderboardCache: envBool("ENABLE_LEADERBOARD_CACHE", false),
		EnableOutboxRelay:      envBool("ENABLE_OUTBOX_RELAY", true),
	}, nil
}

func loadFile(path string) (fileConfig, error) {
	if strings.TrimSpace(path) == "" {
		return fileConfig{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config file %s: %w", path, err)
	}
	var parsed fileConfig
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return fileConfig{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return parsed, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
