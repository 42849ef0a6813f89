package config

import (
	"fmt"
	"os"
)

// Config holds everything the server needs from its environment. It is built
// once in main and handed to each component explicitly.
type Config struct {
	DatabaseURL    string
	SessionSecret  string
	GeminiAPIKey   string
	UploadEndpoint string
	ListenAddr     string
	LogLevel       string
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		UploadEndpoint: os.Getenv("UPLOAD_ENDPOINT_URL"),
		ListenAddr:     os.Getenv("LISTEN_ADDR"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "default-secret-key-change-in-production"
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = "0.0.0.0:5000"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}
