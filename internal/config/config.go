package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config captures the runtime configuration for the ytinfo service.
type Config struct {
	AppPort          int
	LogLevel         string
	LogFormat        string
	OEmbedEndpoint   string
	OEmbedTimeout    time.Duration
	MetadataCacheTTL time.Duration
	TelegramToken    string
	TelegramDebug    bool
}

// dotEnvFiles are loaded in order; variables already set are never overridden.
var dotEnvFiles = []string{".env.local", ".env"}

// Load reads configuration from environment variables after applying any
// .env files found in the working directory. Set YTINFO_DOTENV=off to skip them.
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppPort:          getInt("YTINFO_PORT", 8080),
		LogLevel:         getString("YTINFO_LOG_LEVEL", "info"),
		LogFormat:        getString("YTINFO_LOG_FORMAT", "json"),
		OEmbedEndpoint:   getString("YTINFO_OEMBED_ENDPOINT", "https://www.youtube.com/oembed"),
		OEmbedTimeout:    getDuration("YTINFO_OEMBED_TIMEOUT", 0),
		MetadataCacheTTL: getDuration("YTINFO_METADATA_CACHE_TTL", 0),
		TelegramToken:    getString("YTINFO_TELEGRAM_TOKEN", ""),
		TelegramDebug:    getBool("YTINFO_TELEGRAM_DEBUG", false),
	}

	if cfg.AppPort <= 0 || cfg.AppPort > 65535 {
		return Config{}, fmt.Errorf("invalid YTINFO_PORT %d", cfg.AppPort)
	}

	return cfg, nil
}

func loadDotEnv() error {
	if !getBool("YTINFO_DOTENV", true) {
		return nil
	}
	for _, path := range dotEnvFiles {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

func getString(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return i
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

func getBool(key string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "":
		return fallback
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
