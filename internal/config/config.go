package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	ServiceName string
	ServerPort  int
	LogLevel    string

	DBDriver    string
	DatabaseURL string

	JWTSecret []byte
	TokenTTL  time.Duration

	KafkaBrokers     []string
	KafkaTopicPrefix string

	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string
}

// Load reads .env (when present) and the process environment.
func Load() Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("notice: cannot load .env: %v", err)
	}

	driver := strings.ToLower(EnvDefault("DB_DRIVER", DriverSQLite))
	dsnDefault := ""
	if driver == DriverSQLite {
		dsnDefault = "items.db"
	}

	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "items_api"),
		ServerPort:  EnvIntDefault("SERVER_PORT", 3000),
		LogLevel:    EnvDefault("LOG_LEVEL", "info"),

		DBDriver:    driver,
		DatabaseURL: EnvDefault("DATABASE_URL", dsnDefault),

		JWTSecret: []byte(os.Getenv("JWT_SECRET")),
		TokenTTL:  EnvDurationDefault("TOKEN_TTL", time.Hour),

		KafkaBrokers:     CSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopicPrefix: os.Getenv("KAFKA_TOPIC_PREFIX"),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),
		ESIndex:    EnvDefault("ES_INDEX", "items"),
	}
}

// Validate reports the first setting that prevents the service from starting.
func (c Config) Validate() error {
	if len(c.JWTSecret) == 0 {
		return errors.New("missing required env JWT_SECRET")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DatabaseURL == "" {
		return errors.New("missing required env DATABASE_URL")
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("invalid SERVER_PORT %d", c.ServerPort)
	}
	return nil
}

func (c Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.ServerPort)
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func EnvDurationDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
