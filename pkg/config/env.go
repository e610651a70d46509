package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	DefaultCatalogURL = "http://114.67.69.198:8080/api/images"
	DefaultStateKey   = "coffee_app_store"
)

// Config holds everything the storefront needs to start.
type Config struct {
	AppEnv         string
	Port           string
	LogLevel       string
	CatalogURL     string
	CatalogTimeout time.Duration
	StateBackend   string
	StateKey       string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
}

// LoadEnv loads environment variables from .env.local if APP_ENV is "local"
func LoadEnv() {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
		os.Setenv("APP_ENV", appEnv)
	}

	if appEnv == "local" {
		err := godotenv.Load(".env.local")
		if err != nil {
			log.Warn().Err(err).Msg(".env.local not loaded, relying on system environment variables")
		} else {
			log.Info().Msg("loaded .env.local for local development")
		}
	} else {
		log.Info().Str("app_env", appEnv).Msg("not loading .env.local")
	}
}

// Load reads Config from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:        getEnvOrDefault("APP_ENV", "development"),
		Port:          getEnvOrDefault("PORT", "8080"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		CatalogURL:    getEnvOrDefault("CATALOG_URL", DefaultCatalogURL),
		StateBackend:  getEnvOrDefault("STATE_BACKEND", "memory"),
		StateKey:      getEnvOrDefault("STATE_KEY", DefaultStateKey),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		DBHost:        getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:        getEnvOrDefault("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
	}

	timeout, err := time.ParseDuration(getEnvOrDefault("CATALOG_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CATALOG_TIMEOUT: %w", err)
	}
	cfg.CatalogTimeout = timeout

	cfg.RedisDB, err = strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	switch cfg.StateBackend {
	case "memory":
	case "redis":
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR environment variable not set")
		}
	case "postgres":
		if cfg.DBUser == "" || cfg.DBName == "" {
			return nil, fmt.Errorf("DB_USER and DB_NAME must be set for the postgres state backend")
		}
	default:
		return nil, fmt.Errorf("unknown STATE_BACKEND %q", cfg.StateBackend)
	}
	return cfg, nil
}

// PostgresDSN builds the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getEnvOrDefault(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}
