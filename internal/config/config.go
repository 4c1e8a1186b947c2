package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env     string `envconfig:"APP_ENV" default:"development"`
	Port    int    `envconfig:"APP_PORT" default:"8080"`
	DB      DBConfig
	Redis   RedisConfig
	Limiter RateLimiterConfig
	CORS    CORSConfig
	AI      AIConfig
	Scraper ScraperConfig
	History HistoryConfig
}

// database configuration, only needed by the postgres history backend
type DBConfig struct {
	DSN             string        `envconfig:"DATABASE_URL"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

type RedisConfig struct {
	URL string `envconfig:"REDIS_URL"`
}

// rate limiting configuration
type RateLimiterConfig struct {
	RPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"10"`
	Burst   int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
	Enabled bool    `envconfig:"RATE_LIMIT_ENABLED" default:"false"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://localhost:4173,http://localhost:5173"`
}

// AIConfig selects and configures the hosted model provider.
type AIConfig struct {
	Provider        string        `envconfig:"AI_PROVIDER" default:"gemini"`
	APIKey          string        `envconfig:"AI_API_KEY" required:"true"`
	Model           string        `envconfig:"AI_MODEL"`
	BaseURL         string        `envconfig:"AI_BASE_URL"`
	Timeout         time.Duration `envconfig:"AI_TIMEOUT" default:"30s"`
	MaxTokens       int           `envconfig:"AI_MAX_TOKENS" default:"1024"`
	ChatTemperature float32       `envconfig:"AI_CHAT_TEMPERATURE" default:"0.7"`
}

// job-description scraper configuration
type ScraperConfig struct {
	Timeout      time.Duration `envconfig:"SCRAPE_TIMEOUT" default:"15s"`
	UserAgent    string        `envconfig:"SCRAPE_USER_AGENT" default:"Mozilla/5.0 (compatible; CareerCraftBot/1.0)"`
	MaxBodyBytes int64         `envconfig:"SCRAPE_MAX_BODY_BYTES" default:"2097152"`
	Structured   bool          `envconfig:"SCRAPE_STRUCTURED" default:"false"`
	CacheTTL     time.Duration `envconfig:"SCRAPE_CACHE_TTL" default:"0s"`
}

type HistoryConfig struct {
	Backend string `envconfig:"HISTORY_BACKEND" default:"memory"`
	Key     string `envconfig:"HISTORY_KEY" default:"ccai:history"`
	AutoLog bool   `envconfig:"HISTORY_AUTOLOG" default:"true"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.Limiter.RPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be non-negative")
	}
	if c.Limiter.Enabled && c.Limiter.RPS == 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive when the rate limiter is enabled")
	}
	if c.Limiter.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}
	if len(c.GetCORSOrigins()) == 0 {
		return fmt.Errorf("at least one trusted origin must be specified")
	}

	switch c.AI.Provider {
	case "gemini", "openai", "groq", "anthropic":
	default:
		return fmt.Errorf("invalid AI_PROVIDER: %s (must be one of: gemini, openai, groq, anthropic)", c.AI.Provider)
	}
	if strings.TrimSpace(c.AI.APIKey) == "" {
		return fmt.Errorf("AI_API_KEY is required")
	}
	if c.AI.Timeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive")
	}
	if c.AI.MaxTokens < 1 {
		return fmt.Errorf("AI_MAX_TOKENS must be at least 1")
	}
	if c.AI.ChatTemperature < 0 || c.AI.ChatTemperature > 2 {
		return fmt.Errorf("AI_CHAT_TEMPERATURE must be between 0 and 2")
	}

	if c.Scraper.Timeout <= 0 {
		return fmt.Errorf("SCRAPE_TIMEOUT must be positive")
	}
	if c.Scraper.MaxBodyBytes < 1024 {
		return fmt.Errorf("SCRAPE_MAX_BODY_BYTES must be at least 1024")
	}
	if c.Scraper.CacheTTL < 0 {
		return fmt.Errorf("SCRAPE_CACHE_TTL must be non-negative")
	}
	if c.Scraper.CacheTTL > 0 && c.Redis.URL == "" {
		return fmt.Errorf("REDIS_URL is required when SCRAPE_CACHE_TTL is set")
	}

	switch c.History.Backend {
	case "memory":
	case "redis":
		if c.Redis.URL == "" {
			return fmt.Errorf("REDIS_URL is required for the redis history backend")
		}
	case "postgres":
		if c.DB.DSN == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres history backend")
		}
		if c.DB.MaxConns < 1 {
			return fmt.Errorf("DB_MAX_CONNS must be at least 1")
		}
	default:
		return fmt.Errorf("invalid HISTORY_BACKEND: %s (must be one of: memory, redis, postgres)", c.History.Backend)
	}
	if strings.TrimSpace(c.History.Key) == "" {
		return fmt.Errorf("HISTORY_KEY must not be empty")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// NeedsRedis reports whether any component is backed by Redis.
func (c *Config) NeedsRedis() bool {
	return c.History.Backend == "redis" || c.Scraper.CacheTTL > 0
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, Limiter.RPS=%.2f, Limiter.Burst=%d, Limiter.Enabled=%t, "+
		"CORS.Origins=%d, AI.Provider=%s, AI.Model=%s, AI.Timeout=%s, Scraper.Structured=%t, "+
		"Scraper.CacheTTL=%s, History.Backend=%s, History.Key=%s}",
		c.Env, c.Port, c.Limiter.RPS, c.Limiter.Burst, c.Limiter.Enabled,
		len(c.CORS.TrustedOrigins), c.AI.Provider, c.AI.Model, c.AI.Timeout, c.Scraper.Structured,
		c.Scraper.CacheTTL, c.History.Backend, c.History.Key)
}
