package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	SteamAPIKey string
	SteamID     string
	AuthCode    string
	BaseURL     string
	LogLevel    string

	RetryMaxAttempts  int
	RetryInitialDelay time.Duration
}

const defaultBaseURL = "https://api.steampowered.com"

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		SteamAPIKey:       getEnv("STEAM_API_KEY", ""),
		SteamID:           getEnv("STEAM_ID", ""),
		AuthCode:          getEnv("STEAM_AUTH_CODE", ""),
		BaseURL:           getEnv("PICKEM_BASE_URL", defaultBaseURL),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RetryMaxAttempts:  getEnvInt("RETRY_MAX_ATTEMPTS", 3),
		RetryInitialDelay: time.Duration(getEnvInt("RETRY_INITIAL_DELAY_MS", 1000)) * time.Millisecond,
	}

	if cfg.SteamAPIKey == "" {
		return nil, fmt.Errorf("STEAM_API_KEY is required")
	}

	logger.Debug().
		Str("base_url", cfg.BaseURL).
		Str("log_level", cfg.LogLevel).
		Int("retry_max_attempts", cfg.RetryMaxAttempts).
		Dur("retry_initial_delay", cfg.RetryInitialDelay).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

var Module = fx.Provide(Load)
