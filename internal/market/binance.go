package market

import (
	"context"
	"fmt"
	"strconv"
	"time"

	binance_connector "github.com/binance/binance-connector-go"
	"github.com/sirupsen/logrus"

	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/config"
	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/models"
)

// Client fetches candles from Binance via the official connector, falling
// back to mirror REST hosts when the primary API fails.
type Client struct {
	primary   *binance_connector.Client
	fallbacks []*restClient
	logger    *logrus.Entry
}

// NewClient creates a market-data client from the Binance configuration.
func NewClient(cfg *config.BinanceConfig, logger *logrus.Logger) *Client {
	fallbacks := make([]*restClient, 0, len(cfg.FallbackURLs))
	for _, baseURL := range cfg.FallbackURLs {
		fallbacks = append(fallbacks, newRESTClient(baseURL, cfg.Timeout, logger))
	}

	return &Client{
		primary:   binance_connector.NewClient(cfg.APIKey, cfg.SecretKey, cfg.APIURL),
		fallbacks: fallbacks,
		logger:    logger.WithField("component", "binance"),
	}
}

// Name identifies the data source.
func (c *Client) Name() string {
	return "binance"
}

// Klines fetches candles from the primary API, then from each fallback
// host in order. The last error is returned when every source fails.
func (c *Client) Klines(ctx context.Context, symbol, interval string, limit int) ([]models.Candle, error) {
	candles, err := c.fetchPrimary(ctx, symbol, interval, limit)
	if err == nil {
		return candles, nil
	}

	c.logger.WithError(err).WithFields(logrus.Fields{
		"symbol":   symbol,
		"interval": interval,
	}).Warn("Primary klines fetch failed, trying fallbacks")

	for _, fb := range c.fallbacks {
		candles, fbErr := fb.klines(ctx, symbol, interval, limit)
		if fbErr == nil {
			return candles, nil
		}
		err = fbErr
		c.logger.WithError(fbErr).WithField("host", fb.baseURL).Warn("Fallback klines fetch failed")
	}

	return nil, fmt.Errorf("all kline sources failed for %s: %w", symbol, err)
}

func (c *Client) fetchPrimary(ctx context.Context, symbol, interval string, limit int) ([]models.Candle, error) {
	resp, err := c.primary.NewKlinesService().
		Symbol(symbol).
		Interval(interval).
		Limit(limit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("klines request failed: %w", err)
	}

	candles := make([]models.Candle, 0, len(resp))
	for _, k := range resp {
		candle, err := klineToCandle(int64(k.OpenTime), k.Open, k.High, k.Low, k.Close, k.Volume)
		if err != nil {
			return nil, err
		}
		candles = append(candles, candle)
	}

	c.logger.WithFields(logrus.Fields{
		"symbol": symbol,
		"count":  len(candles),
	}).Debug("Fetched klines from primary")

	return candles, nil
}

// klineToCandle converts the string-encoded kline fields Binance returns
// into a numeric candle.
func klineToCandle(openTimeMs int64, open, high, low, closePrice, volume string) (models.Candle, error) {
	fields := [5]string{open, high, low, closePrice, volume}
	values := [5]float64{}
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return models.Candle{}, fmt.Errorf("failed to parse kline field %q: %w", s, err)
		}
		values[i] = v
	}

	return models.Candle{
		Timestamp: time.UnixMilli(openTimeMs).UTC(),
		Open:      values[0],
		High:      values[1],
		Low:       values[2],
		Close:     values[3],
		Volume:    values[4],
	}, nil
}
