package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/config"
	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/models"
)

// RedisClient caches fetched candle series for a short TTL so repeated
// chart loads don't re-hit the market-data API.
type RedisClient struct {
	client *redis.Client
	logger *logrus.Entry
	ttl    time.Duration
}

// NewRedisClient creates a new Redis client
func NewRedisClient(cfg *config.RedisConfig, logger *logrus.Logger) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		logger: logger.WithField("component", "redis"),
		ttl:    cfg.CacheTTL,
	}, nil
}

// Close closes the Redis connection
func (rc *RedisClient) Close() error {
	return rc.client.Close()
}

// Health checks Redis health
func (rc *RedisClient) Health(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// SetCandles caches a candle series for a symbol/interval pair.
func (rc *RedisClient) SetCandles(ctx context.Context, symbol, interval string, candles []models.Candle) error {
	key := candleKey(symbol, interval)

	data, err := json.Marshal(candles)
	if err != nil {
		return fmt.Errorf("failed to marshal candles: %w", err)
	}

	return rc.client.Set(ctx, key, data, rc.ttl).Err()
}

// GetCandles returns the cached series, or nil on a cache miss.
func (rc *RedisClient) GetCandles(ctx context.Context, symbol, interval string) ([]models.Candle, error) {
	key := candleKey(symbol, interval)

	data, err := rc.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get candles: %w", err)
	}

	var candles []models.Candle
	if err := json.Unmarshal([]byte(data), &candles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candles: %w", err)
	}

	return candles, nil
}

func candleKey(symbol, interval string) string {
	return fmt.Sprintf("candles:%s:%s", symbol, interval)
}
