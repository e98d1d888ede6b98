package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Completion CompletionConfig
	Cache      CacheConfig
	Detection  DetectionConfig
	Extraction ExtractionConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CompletionConfig holds text-completion service configuration
type CompletionConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// DetectionConfig labels the manufacturer-detection scoring constants.
// The defaults are calibrated behavior; override only with care.
type DetectionConfig struct {
	KeywordScore      float64 `mapstructure:"keyword_score"`
	EarlyKeywordBonus float64 `mapstructure:"early_keyword_bonus"`
	BrandScore        float64 `mapstructure:"brand_score"`
	SeriesScore       float64 `mapstructure:"series_score"`
	PatternScore      float64 `mapstructure:"pattern_score"`
	MinConfidence     float64 `mapstructure:"min_confidence"`
	StrongConfidence  float64 `mapstructure:"strong_confidence"`
	LeadMargin        float64 `mapstructure:"lead_margin"`
	EarlyWindow       int     `mapstructure:"early_window"`
}

// ExtractionConfig holds extraction pipeline flags
type ExtractionConfig struct {
	EnableDebugLogging bool `mapstructure:"enable_debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/attriflow/")

	v.SetEnvPrefix("ATTRIFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Completion defaults
	v.SetDefault("completion.base_url", "https://api-inference.huggingface.co")
	v.SetDefault("completion.model", "mistralai/Mistral-7B-Instruct-v0.1")
	v.SetDefault("completion.timeout", "30s")

	// Cache defaults
	v.SetDefault("cache.ttl", "1h")

	// Detection defaults: the calibrated scoring constants
	v.SetDefault("detection.keyword_score", 30.0)
	v.SetDefault("detection.early_keyword_bonus", 15.0)
	v.SetDefault("detection.brand_score", 40.0)
	v.SetDefault("detection.series_score", 50.0)
	v.SetDefault("detection.pattern_score", 50.0)
	v.SetDefault("detection.min_confidence", 30.0)
	v.SetDefault("detection.strong_confidence", 50.0)
	v.SetDefault("detection.lead_margin", 1.5)
	v.SetDefault("detection.early_window", 500)

	// Extraction defaults
	v.SetDefault("extraction.enable_debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Completion.BaseURL == "" {
		return fmt.Errorf("completion base URL is required (set ATTRIFLOW_COMPLETION_BASE_URL)")
	}
	if config.Completion.Model == "" {
		return fmt.Errorf("completion model is required (set ATTRIFLOW_COMPLETION_MODEL)")
	}

	if config.Detection.MinConfidence <= 0 {
		return fmt.Errorf("detection min_confidence must be positive, got: %v", config.Detection.MinConfidence)
	}
	if config.Detection.LeadMargin < 1 {
		return fmt.Errorf("detection lead_margin must be at least 1, got: %v", config.Detection.LeadMargin)
	}

	return nil
}
