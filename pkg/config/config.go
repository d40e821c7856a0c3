package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `env:", prefix=SERVER_"`
	Logging   LoggingConfig   `env:", prefix=LOG_"`
	Security  SecurityConfig  `env:", prefix=SECURITY_"`
	Binance   BinanceConfig   `env:", prefix=BINANCE_"`
	CoinGecko CoinGeckoConfig `env:", prefix=COINGECKO_"`
	News      NewsConfig      `env:", prefix=NEWS_"`
	Assistant AssistantConfig `env:", prefix=ASSISTANT_"`
	Redis     RedisConfig     `env:", prefix=REDIS_"`
	NATS      NATSConfig      `env:", prefix=NATS_"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `env:"HOST, default=0.0.0.0"`
	Port         int           `env:"PORT, default=8000"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT, default=30s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT, default=120s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT, default=120s"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `env:"LEVEL, default=info"`
	Format string `env:"FORMAT, default=json"`
	Output string `env:"OUTPUT, default=stdout"`
}

// SecurityConfig holds CORS configuration. Origins default to the local
// development hosts the React frontend runs on.
type SecurityConfig struct {
	CORSEnabled bool     `env:"CORS_ENABLED, default=true"`
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:5173,http://localhost:3000"`
	CORSMethods []string `env:"CORS_METHODS, default=GET,POST,PUT,DELETE,OPTIONS"`
	CORSHeaders []string `env:"CORS_HEADERS, default=*"`
}

// BinanceConfig holds market-data source configuration. FallbackURLs are
// mirror hosts tried in order when the primary API fails.
type BinanceConfig struct {
	APIKey       string        `env:"API_KEY"`
	SecretKey    string        `env:"SECRET_KEY"`
	APIURL       string        `env:"API_URL, default=https://api.binance.com"`
	FallbackURLs []string      `env:"FALLBACK_URLS, default=https://data-api.binance.vision,https://api1.binance.com"`
	Timeout      time.Duration `env:"TIMEOUT, default=30s"`
}

// CoinGeckoConfig holds tokenomics source configuration
type CoinGeckoConfig struct {
	APIKey  string        `env:"API_KEY"`
	APIURL  string        `env:"API_URL, default=https://api.coingecko.com/api/v3"`
	Timeout time.Duration `env:"TIMEOUT, default=10s"`
}

// NewsConfig holds news/sentiment source configuration
type NewsConfig struct {
	APIKey   string        `env:"API_KEY"`
	APIURL   string        `env:"API_URL, default=https://min-api.cryptocompare.com"`
	Timeout  time.Duration `env:"TIMEOUT, default=10s"`
	MaxItems int           `env:"MAX_ITEMS, default=10"`
}

// AssistantConfig holds the conversational assistant configuration
type AssistantConfig struct {
	APIKey    string        `env:"API_KEY"`
	BaseURL   string        `env:"BASE_URL, default=https://api.anthropic.com"`
	Model     string        `env:"MODEL, default=claude-3-5-sonnet-20241022"`
	MaxTokens int           `env:"MAX_TOKENS, default=2048"`
	Timeout   time.Duration `env:"TIMEOUT, default=120s"`
}

// RedisConfig holds the optional candle-cache configuration. Disabled by
// default: the service is stateless unless a deployment opts in.
type RedisConfig struct {
	Enabled      bool          `env:"ENABLED, default=false"`
	Host         string        `env:"HOST, default=localhost"`
	Port         int           `env:"PORT, default=6379"`
	Password     string        `env:"PASSWORD"`
	DB           int           `env:"DB, default=0"`
	PoolSize     int           `env:"POOL_SIZE, default=10"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT, default=5s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT, default=3s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT, default=3s"`
	CacheTTL     time.Duration `env:"CACHE_TTL, default=30s"`
}

// NATSConfig holds the optional ops-event publisher configuration
type NATSConfig struct {
	Enabled       bool          `env:"ENABLED, default=false"`
	URL           string        `env:"URL, default=nats://localhost:4222"`
	MaxReconnect  int           `env:"MAX_RECONNECT, default=10"`
	ReconnectWait time.Duration `env:"RECONNECT_WAIT, default=2s"`
}

// Load loads configuration from environment variables using go-envconfig
func Load() (*Config, error) {
	ctx := context.Background()
	var cfg Config

	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Binance.APIURL == "" {
		return fmt.Errorf("Binance API URL is required")
	}

	if c.Redis.Enabled && c.Redis.Host == "" {
		return fmt.Errorf("Redis host is required when the cache is enabled")
	}

	if c.NATS.Enabled && c.NATS.URL == "" {
		return fmt.Errorf("NATS URL is required when the publisher is enabled")
	}

	return nil
}

// GetRedisAddr returns Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// GetServerAddr returns server address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
