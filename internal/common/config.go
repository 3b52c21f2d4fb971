package common

import (
	"os"
	"strconv"
	"time"

	"github.com/nacc-tools/disclosure-etl/constants"
)

// Config holds all application configuration.
type Config struct {
	Store StoreConfig
	OCR   OCRConfig
	LLM   LLMConfig
	Parse ParseConfig
}

// StoreConfig holds relational-store configuration. An empty DSN selects the
// embedded sqlite backend at Path.
type StoreConfig struct {
	DSN         string
	Path        string
	DialTimeout time.Duration
}

// OCRConfig holds Typhoon OCR client configuration.
type OCRConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	MaxRetries  int
	RatePerSec  float64
}

// LLMConfig holds LLM parser configuration.
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// ParseConfig holds the enumerated run parameters consumed by the core.
type ParseConfig struct {
	Mode         constants.ParseMode
	PageWorkers  int // page-parse concurrency width
	DocWorkers   int // document-parse concurrency width
	OutputPrefix string
	OutputDir    string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Store: StoreConfig{
			DSN:         getEnv("STORE_DSN", ""),
			Path:        getEnv("STORE_PATH", "./disclosures.db"),
			DialTimeout: getEnvAsDuration("STORE_DIAL_TIMEOUT", 3*time.Second),
		},
		OCR: OCRConfig{
			BaseURL:     getEnv("TYPHOON_BASE_URL", "https://api.opentyphoon.ai/v1"),
			APIKey:      getEnv("TYPHOON_API_KEY", ""),
			Model:       getEnv("TYPHOON_MODEL", "typhoon-ocr-preview"),
			MaxTokens:   getEnvAsInt("TYPHOON_MAX_TOKENS", 16000),
			Temperature: getEnvAsFloat("TYPHOON_TEMPERATURE", 0.1),
			Timeout:     getEnvAsDuration("TYPHOON_TIMEOUT", 120*time.Second),
			MaxRetries:  getEnvAsInt("TYPHOON_MAX_RETRIES", 5),
			RatePerSec:  getEnvAsFloat("TYPHOON_RATE_PER_SEC", 2),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4.1-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", ""),
			Temperature: float32(getEnvAsFloat("OPENAI_TEMPERATURE", 0.1)),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 90*time.Second),
		},
		Parse: ParseConfig{
			Mode:         constants.ParseMode(getEnv("PARSE_MODE", string(constants.ParseModePageByPage))),
			PageWorkers:  getEnvAsInt("PAGE_WORKERS", 5),
			DocWorkers:   getEnvAsInt("DOC_WORKERS", 1),
			OutputPrefix: getEnv("OUTPUT_PREFIX", "Output"),
			OutputDir:    getEnv("OUTPUT_DIR", "./output"),
		},
	}
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.Parse.Mode != constants.ParseModeCombined && c.Parse.Mode != constants.ParseModePageByPage {
		return NewAppError("CONFIG_ERROR", "PARSE_MODE must be combined or page_by_page", ErrInvalidInput)
	}
	if c.Parse.PageWorkers <= 0 || c.Parse.DocWorkers <= 0 {
		return NewAppError("CONFIG_ERROR", "worker widths must be positive", ErrInvalidInput)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
