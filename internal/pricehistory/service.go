package pricehistory

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mujtaba-kazmi2006/nunno-backend/internal/cache"
	"github.com/mujtaba-kazmi2006/nunno-backend/internal/market"
	"github.com/mujtaba-kazmi2006/nunno-backend/internal/messaging"
	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/models"
)

// Service runs the price-history pipeline: resolve the timeframe, fetch
// candles, shape chart points and summary stats. The cache and events
// clients are optional and may be nil.
type Service struct {
	fetcher market.Fetcher
	cache   *cache.RedisClient
	events  *messaging.NATSClient
	logger  *logrus.Entry
}

// NewService creates a price-history service.
func NewService(fetcher market.Fetcher, candleCache *cache.RedisClient, events *messaging.NATSClient, logger *logrus.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		cache:   candleCache,
		events:  events,
		logger:  logger.WithField("component", "price-history"),
	}
}

// GetPriceHistory is the failure boundary for the pipeline. On any error
// it logs the failure and substitutes a synthetic payload, so the caller
// always receives a renderable response. This is the one place errors
// are swallowed instead of surfaced; every other path in the service
// propagates them.
func (s *Service) GetPriceHistory(ctx context.Context, ticker, timeframe string) *models.PriceHistory {
	payload, err := s.build(ctx, ticker, timeframe)
	if err == nil {
		return payload
	}

	s.logger.WithError(err).WithFields(logrus.Fields{
		"ticker":    ticker,
		"timeframe": timeframe,
	}).Error("Price history pipeline failed, serving mock payload")

	if s.events != nil {
		s.events.PublishDegradation(messaging.DegradationEvent{
			Ticker:    ticker,
			Timeframe: timeframe,
			Reason:    err.Error(),
			Timestamp: time.Now().UTC(),
		})
	}

	return MockPayload(ticker)
}

// build runs Resolve → Fetch → Format → Summarize and reports any
// failure to the guard above.
func (s *Service) build(ctx context.Context, ticker, timeframe string) (*models.PriceHistory, error) {
	if s.fetcher == nil {
		return nil, fmt.Errorf("market data fetcher unavailable")
	}

	res := Resolve(timeframe)

	candles, err := s.fetchCandles(ctx, ticker, res)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candles: %w", err)
	}

	history := []models.ChartPoint{}
	if len(candles) > 0 {
		history = FormatSeries(candles, timeframe)
	}
	summary := Summarize(candles)

	return &models.PriceHistory{
		Ticker:        ticker,
		CurrentPrice:  summary.CurrentPrice,
		PercentChange: summary.PercentChange,
		HighPrice:     summary.HighPrice,
		LowPrice:      summary.LowPrice,
		History:       history,
		Timeframe:     timeframe,
	}, nil
}

// fetchCandles consults the optional cache before hitting the market
// collaborator. Cache errors degrade to a direct fetch.
func (s *Service) fetchCandles(ctx context.Context, ticker string, res Resolution) ([]models.Candle, error) {
	if s.cache != nil {
		cached, err := s.cache.GetCandles(ctx, ticker, res.Interval)
		if err != nil {
			s.logger.WithError(err).Warn("Candle cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	candles, err := s.fetcher.Klines(ctx, ticker, res.Interval, res.Limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && len(candles) > 0 {
		if err := s.cache.SetCandles(ctx, ticker, res.Interval, candles); err != nil {
			s.logger.WithError(err).Warn("Candle cache write failed")
		}
	}

	return candles, nil
}
