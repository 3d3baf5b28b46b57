package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Scraper   ScraperConfig
	Images    ImagesConfig
	SizeRec   SizeRecConfig   `mapstructure:"sizerec"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ScraperConfig holds configuration for fetching retailer pages and images
type ScraperConfig struct {
	UserAgent    string        `mapstructure:"user_agent"`
	PageTimeout  time.Duration `mapstructure:"page_timeout"`
	ImageTimeout time.Duration `mapstructure:"image_timeout"`
	MaxRetries   int           `mapstructure:"max_retries"`
	RateLimit    float64       `mapstructure:"rate_limit"` // requests per second to retail sites
	RateBurst    int           `mapstructure:"rate_burst"`
}

// ImagesConfig holds configuration for the AR image pipeline
type ImagesConfig struct {
	MaxDimension int    `mapstructure:"max_dimension"`
	JPEGQuality  int    `mapstructure:"jpeg_quality"`
	MaxProcessed int    `mapstructure:"max_processed"`
	RemoveBGURL  string `mapstructure:"removebg_url"` // empty disables background removal
}

// SizeRecConfig holds configuration for the size recommendation microservice
type SizeRecConfig struct {
	BaseURL  string        `mapstructure:"base_url"` // empty disables the sizing endpoints
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// RateLimitConfig holds inbound rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute, 0 disables
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/smart/")

	// Environment variable settings
	v.SetEnvPrefix("SMART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
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

	// Scraper defaults. Timeouts are a deliberate bound: a hung retailer
	// page must never hold a request open indefinitely.
	v.SetDefault("scraper.user_agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	v.SetDefault("scraper.page_timeout", "15s")
	v.SetDefault("scraper.image_timeout", "20s")
	v.SetDefault("scraper.max_retries", 3)
	v.SetDefault("scraper.rate_limit", 2.0)
	v.SetDefault("scraper.rate_burst", 5)

	// Image pipeline defaults
	v.SetDefault("images.max_dimension", 2048)
	v.SetDefault("images.jpeg_quality", 90)
	v.SetDefault("images.max_processed", 5)
	v.SetDefault("images.removebg_url", "")

	// Size recommendation defaults
	v.SetDefault("sizerec.base_url", "")
	v.SetDefault("sizerec.timeout", "10s")
	v.SetDefault("sizerec.cache_ttl", "1h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 60)
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Server.Environment {
	case "development", "production", "test":
	default:
		return fmt.Errorf("environment must be development, production or test, got: %s", config.Server.Environment)
	}

	if config.Images.JPEGQuality < 1 || config.Images.JPEGQuality > 100 {
		return fmt.Errorf("images.jpeg_quality must be between 1 and 100, got: %d", config.Images.JPEGQuality)
	}

	if config.Images.MaxProcessed < 0 {
		return fmt.Errorf("images.max_processed must not be negative, got: %d", config.Images.MaxProcessed)
	}

	if config.Images.MaxDimension < 1 {
		return fmt.Errorf("images.max_dimension must be positive, got: %d", config.Images.MaxDimension)
	}

	if config.Scraper.MaxRetries < 1 {
		return fmt.Errorf("scraper.max_retries must be at least 1, got: %d", config.Scraper.MaxRetries)
	}

	return nil
}
