package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures everything the server needs from its environment.
type Config struct {
	Addr          string
	JWTSigningKey string

	Redis    RedisConfig
	Postgres PostgresConfig
	Kafka    KafkaConfig

	// SessionTTL bounds how long an in-progress assessment may idle before
	// the session store drops it.
	SessionTTL time.Duration

	// Classifier thresholds. Empirically chosen in the source methodology;
	// kept configurable pending domain-expert review.
	ScreeningPositiveCutoff int
	FullTierPercentCutoff   float64
	SincerityHighCutoff     int
	SincerityLowCutoff      int
}

// RedisConfig holds connection settings for the session store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig holds the archive database DSN. Empty disables archiving.
type PostgresConfig struct {
	DSN string
}

// KafkaConfig holds audit publisher settings. Empty brokers disable Kafka.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	cfg := Config{
		Addr:          envOr("PSYSCREEN_ADDR", ":8080"),
		JWTSigningKey: envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Postgres: PostgresConfig{
			DSN: os.Getenv("POSTGRES_DSN"),
		},
		Kafka: KafkaConfig{
			Topic: envOr("KAFKA_AUDIT_TOPIC", "psyscreen.assessments"),
		},
		SessionTTL:              envDuration("SESSION_TTL", 2*time.Hour),
		ScreeningPositiveCutoff: envInt("SCREENING_POSITIVE_CUTOFF", 2),
		FullTierPercentCutoff:   envFloat("FULL_TIER_PERCENT_CUTOFF", 70),
		SincerityHighCutoff:     envInt("SINCERITY_HIGH_CUTOFF", 13),
		SincerityLowCutoff:      envInt("SINCERITY_LOW_CUTOFF", 4),
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka.Brokers = splitComma(brokers)
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitComma(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
