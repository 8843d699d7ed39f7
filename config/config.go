package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Search   SearchConfig
	Vision   VisionConfig
	Session  SessionConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// SearchConfig holds Google Custom Search credentials.
type SearchConfig struct {
	BaseURL  string
	APIKey   string
	EngineID string
	Timeout  time.Duration
}

// VisionConfig holds Google Cloud Vision credentials.
type VisionConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type SessionConfig struct {
	Secret     string
	CookieName string
}

// Load reads configuration from the environment. Every value has a
// development default so the server starts without a full env file;
// provider keys default to empty and fail at the provider, not here.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getenv("PORT", "8080"),
			Env:          getenv("APP_ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			DSN: fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				getenv("DB_USER", "appuser"),
				getenv("DB_PASSWORD", ""),
				getenv("DB_HOST", "127.0.0.1"),
				getenv("DB_PORT", "3306"),
				getenv("DB_NAME", "pdf_finder"),
			),
			MaxIdleConns:    10,
			MaxOpenConns:    50,
			ConnMaxLifetime: time.Hour,
		},
		Search: SearchConfig{
			BaseURL:  getenv("SEARCH_BASE_URL", "https://www.googleapis.com"),
			APIKey:   getenv("SEARCH_API_KEY", ""),
			EngineID: getenv("SEARCH_ENGINE_ID", ""),
			Timeout:  15 * time.Second,
		},
		Vision: VisionConfig{
			BaseURL: getenv("VISION_BASE_URL", "https://vision.googleapis.com"),
			APIKey:  getenv("VISION_API_KEY", ""),
			Timeout: 15 * time.Second,
		},
		Session: SessionConfig{
			Secret:     getenv("SESSION_SECRET", "change-me-in-production"),
			CookieName: "pdf_finder_session",
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
