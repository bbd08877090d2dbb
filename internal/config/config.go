package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultIdleTimeoutSeconds = 900   // 15 minutes of inactivity
	defaultMaxLifetimeSeconds = 14400 // 4 hour absolute cap
	defaultBaseRedirectURL    = "/login"
	defaultAppPort            = "8080"
)

type Config struct {
	AppPort string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string

	IdleTimeout        time.Duration
	MaxSessionLifetime time.Duration

	BaseRedirectURL string
}

func Load() Config {

	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg := Config{

		AppPort: getenv("APP_PORT", defaultAppPort),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		IdleTimeout:        secondsEnv("IDLE_TIMEOUT_SECONDS", defaultIdleTimeoutSeconds),
		MaxSessionLifetime: secondsEnv("MAX_SESSION_LIFETIME_SECONDS", defaultMaxLifetimeSeconds),

		BaseRedirectURL: getenv("BASE_REDIRECT_URL", defaultBaseRedirectURL),
	}

	return cfg

}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func secondsEnv(key string, fallback int) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(fallback) * time.Second
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return time.Duration(fallback) * time.Second
	}
	return time.Duration(n) * time.Second
}
