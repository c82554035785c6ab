package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr       string        `validate:"required"`
	Environment    string        `validate:"required,oneof=development production"`
	SessionFile    string        `validate:"required"`
	RequiredHours  float64       `validate:"gt=0"`
	GeminiAPIKey   string        // Пустой ключ — улучшение текста выключено, работает fallback
	GeminiBaseURL  string
	GeminiModel    string
	EnhanceTimeout time.Duration `validate:"gt=0"`
}

// Load загружает конфигурацию: сначала .env (если есть), потом переменные окружения
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		HTTPAddr:      os.Getenv("HTTP_ADDR"),
		Environment:   os.Getenv("ENV"),
		SessionFile:   os.Getenv("SESSION_FILE"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
		GeminiModel:   os.Getenv("GEMINI_MODEL"),
	}

	// Дефолты
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.SessionFile == "" {
		// Аналог ключа mapmyojt_user в localStorage веб-клиента
		cfg.SessionFile = "mapmyojt_user.json"
	}

	cfg.RequiredHours = 400
	if raw := os.Getenv("REQUIRED_HOURS"); raw != "" {
		hours, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("parse REQUIRED_HOURS: %w", err)
		}
		cfg.RequiredHours = hours
	}

	cfg.EnhanceTimeout = 10 * time.Second
	if raw := os.Getenv("ENHANCE_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse ENHANCE_TIMEOUT: %w", err)
		}
		cfg.EnhanceTimeout = timeout
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
