package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type ServerConfig struct {
	Port string
}

type RESTConfig struct {
	BaseURL string
	Timeout time.Duration
	// Token is forwarded to the booking API as a bearer token.
	Token string
}

type KafkaConfig struct {
	Enabled bool
	Brokers []string
	GroupID string
	Topics  []string
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

type SecurityConfig struct {
	JWTSecret string
}

type LoggingConfig struct {
	Level     string
	Format    string
	Directory string
}

type WebsocketConfig struct {
	SendBuffer int
}

type Config struct {
	Server    ServerConfig
	REST      RESTConfig
	Kafka     KafkaConfig
	Redis     RedisConfig
	Security  SecurityConfig
	Logging   LoggingConfig
	Websocket WebsocketConfig
}

// Load builds the configuration from environment variables, applying defaults
// suitable for local development.
func Load() (*Config, error) {
	timeout, err := durationEnv("BOOKING_API_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	redisDB, err := intEnv("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	sendBuffer, err := intEnv("WS_SEND_BUFFER", 32)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: envOr("PORT", "8081"),
		},
		REST: RESTConfig{
			BaseURL: envOr("BOOKING_API_URL", "http://localhost:3000"),
			Timeout: timeout,
			Token:   os.Getenv("BOOKING_API_TOKEN"),
		},
		Kafka: KafkaConfig{
			Enabled: boolEnv("KAFKA_ENABLED"),
			Brokers: splitEnv("KAFKA_BROKERS"),
			GroupID: envOr("KAFKA_GROUP_ID", "petstay-gateway"),
			Topics:  splitEnvOr("KAFKA_TOPICS", []string{"bookings.changed", "unavailable-dates.changed"}),
		},
		Redis: RedisConfig{
			Enabled:  boolEnv("REDIS_ENABLED"),
			Addr:     envOr("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Security: SecurityConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Logging: LoggingConfig{
			Level:     envOr("LOG_LEVEL", "info"),
			Format:    envOr("LOG_FORMAT", "text"),
			Directory: envOr("LOG_DIR", "./logs"),
		},
		Websocket: WebsocketConfig{
			SendBuffer: sendBuffer,
		},
	}

	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) == 0 {
		return nil, fmt.Errorf("KAFKA_ENABLED is set but KAFKA_BROKERS is empty")
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func boolEnv(key string) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return value == "true" || value == "1" || value == "yes"
}

func intEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func splitEnv(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func splitEnvOr(key string, fallback []string) []string {
	if values := splitEnv(key); len(values) > 0 {
		return values
	}
	return fallback
}
