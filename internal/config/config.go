package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the wallpaper generation server.
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Generator GeneratorConfig
}

type ServerConfig struct {
	Port int
	Env  string
}

type StorageConfig struct {
	Dir             string
	PublicBasePath  string
	MaxArtifactAge  time.Duration
	CleanupInterval time.Duration
}

// DatabaseConfig configures the optional Postgres job archive. The archive is
// disabled when URL is empty.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig configures the optional job-status mirror. Disabled when URL is
// empty.
type RedisConfig struct {
	URL string
}

type GeneratorConfig struct {
	Provider string
	Timeout  time.Duration
	Gemini   GeminiConfig
	OpenAI   OpenAIConfig
	Sana     SanaConfig
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type SanaConfig struct {
	BaseURL string
	Ratio   string
}

var validProviders = map[string]bool{
	"gemini": true,
	"openai": true,
	"sana":   true,
	"mock":   true,
}

// Load reads configuration from environment variables and returns a validated
// Config. Returns an error with a descriptive message if any required value is
// missing or invalid.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("WALLPAPER_PORT", 8000),
			Env:  envString("WALLPAPER_ENV", "development"),
		},
		Storage: StorageConfig{
			Dir:             envString("IMAGE_DIR", "generated_images"),
			PublicBasePath:  envString("IMAGE_PUBLIC_BASE_PATH", "/images"),
			MaxArtifactAge:  envDuration("IMAGE_MAX_AGE", 24*time.Hour),
			CleanupInterval: envDuration("IMAGE_CLEANUP_INTERVAL", time.Hour),
		},
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    envInt("DATABASE_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("DATABASE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: envDuration("DATABASE_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Generator: GeneratorConfig{
			Provider: envString("GENERATOR_PROVIDER", "gemini"),
			Timeout:  envDurationSecs("GENERATION_TIMEOUT_SECS", 120*time.Second),
			Gemini: GeminiConfig{
				APIKey:  os.Getenv("GEMINI_API_KEY"),
				Model:   envString("GEMINI_MODEL", "gemini-2.0-flash-preview-image-generation"),
				BaseURL: envString("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			},
			OpenAI: OpenAIConfig{
				APIKey: os.Getenv("OPENAI_API_KEY"),
				Model:  envString("OPENAI_MODEL", "dall-e-3"),
			},
			Sana: SanaConfig{
				BaseURL: envString("SANA_SERVER_BASE_URL", "http://localhost:8080"),
				Ratio:   envString("SANA_IMAGE_RATIO", "9:16"),
			},
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("WALLPAPER_PORT must be in (0, 65535], got %d", c.Server.Port)
	}

	if c.Storage.Dir == "" {
		return fmt.Errorf("IMAGE_DIR is required")
	}
	if !strings.HasPrefix(c.Storage.PublicBasePath, "/") {
		return fmt.Errorf("IMAGE_PUBLIC_BASE_PATH must start with /, got %q", c.Storage.PublicBasePath)
	}

	if !validProviders[c.Generator.Provider] {
		return fmt.Errorf("GENERATOR_PROVIDER must be one of gemini, openai, sana, mock; got %q", c.Generator.Provider)
	}
	if c.Generator.Timeout <= 0 {
		return fmt.Errorf("GENERATION_TIMEOUT_SECS must be positive")
	}

	if c.Generator.Provider == "gemini" && c.Generator.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required when GENERATOR_PROVIDER is gemini")
	}
	if c.Generator.Provider == "openai" && c.Generator.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required when GENERATOR_PROVIDER is openai")
	}
	if c.Generator.Provider == "sana" && c.Generator.Sana.BaseURL == "" {
		return fmt.Errorf("SANA_SERVER_BASE_URL is required when GENERATOR_PROVIDER is sana")
	}

	return nil
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func envDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}

func envDurationSecs(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	secs, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return time.Duration(secs) * time.Second
}
