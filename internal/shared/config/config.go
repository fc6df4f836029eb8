package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	OpenAIKey   string
	ContentMode string // "ai" or "local"
	UploadDir   string
	StaticDir   string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:        os.Getenv("PORT"),
		Env:         os.Getenv("ENV"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		ContentMode: os.Getenv("CONTENT_MODE"),
		UploadDir:   os.Getenv("UPLOAD_DIR"),
		StaticDir:   os.Getenv("STATIC_DIR"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "web"
	}
	if cfg.ContentMode == "" {
		// Without an API key the local template generator is the only option
		if cfg.OpenAIKey == "" {
			cfg.ContentMode = "local"
		} else {
			cfg.ContentMode = "ai"
		}
	}

	return cfg
}
