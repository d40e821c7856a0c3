package analysis

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mujtaba-kazmi2006/nunno-backend/internal/market"
	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/models"
)

const technicalCandleCount = 200

// TechnicalAnalyzer derives indicator values from recent candles and
// translates them into beginner-friendly language.
type TechnicalAnalyzer struct {
	fetcher market.Fetcher
	logger  *logrus.Entry
}

// NewTechnicalAnalyzer creates a technical analyzer backed by the given
// market-data fetcher.
func NewTechnicalAnalyzer(fetcher market.Fetcher, logger *logrus.Logger) *TechnicalAnalyzer {
	return &TechnicalAnalyzer{
		fetcher: fetcher,
		logger:  logger.WithField("component", "technical"),
	}
}

// Analyze fetches candles for the ticker and computes RSI, moving
// averages and the recent range.
func (t *TechnicalAnalyzer) Analyze(ctx context.Context, ticker, interval string) (*models.TechnicalAnalysis, error) {
	if interval == "" {
		interval = "15m"
	}

	candles, err := t.fetcher.Klines(ctx, ticker, interval, technicalCandleCount)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candles: %w", err)
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("no candle data for %s", ticker)
	}

	closes := make([]float64, len(candles))
	high, low := candles[0].High, candles[0].Low
	for i, c := range candles {
		closes[i] = c.Close
		if c.High > high {
			high = c.High
		}
		if c.Low < low {
			low = c.Low
		}
	}

	current := closes[len(closes)-1]
	rsi := RSI(closes, 14)
	sma20 := SMA(closes, 20)
	sma50 := SMA(closes, 50)

	trend := "sideways"
	switch {
	case sma20 > sma50 && current > sma20:
		trend = "uptrend"
	case sma20 < sma50 && current < sma20:
		trend = "downtrend"
	}

	result := &models.TechnicalAnalysis{
		Ticker:       ticker,
		Interval:     interval,
		CurrentPrice: current,
		RSI:          rsi,
		SMA20:        sma20,
		SMA50:        sma50,
		HighPrice:    high,
		LowPrice:     low,
		Trend:        trend,
		Summary:      technicalSummary(ticker, current, rsi, trend),
	}

	t.logger.WithFields(logrus.Fields{
		"ticker": ticker,
		"rsi":    rsi,
		"trend":  trend,
	}).Debug("Technical analysis computed")

	return result, nil
}

func technicalSummary(ticker string, price, rsi float64, trend string) string {
	momentum := "neutral momentum"
	switch {
	case rsi >= 70:
		momentum = "overbought territory, buyers may be exhausted"
	case rsi <= 30:
		momentum = "oversold territory, sellers may be exhausted"
	}
	return fmt.Sprintf("%s is trading at %.2f in a %s with %s (RSI %.1f).",
		ticker, price, trend, momentum, rsi)
}
