package pricehistory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/models"
)

// stubFetcher records the requested resolution and returns canned data.
type stubFetcher struct {
	candles      []models.Candle
	err          error
	lastSymbol   string
	lastInterval string
	lastLimit    int
}

func (f *stubFetcher) Klines(_ context.Context, symbol, interval string, limit int) ([]models.Candle, error) {
	f.lastSymbol = symbol
	f.lastInterval = interval
	f.lastLimit = limit
	return f.candles, f.err
}

func (f *stubFetcher) Name() string { return "stub" }

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestGetPriceHistory_RealPayload(t *testing.T) {
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	fetcher := &stubFetcher{candles: []models.Candle{
		{Timestamp: start, Open: 99, High: 105, Low: 95, Close: 100},
		{Timestamp: start.Add(time.Hour), Open: 100, High: 112, Low: 98, Close: 110},
	}}

	svc := NewService(fetcher, nil, nil, testLogger())
	payload := svc.GetPriceHistory(context.Background(), "BTCUSDT", "7D")

	require.NotNil(t, payload)
	assert.False(t, payload.IsMock)
	assert.Equal(t, "BTCUSDT", payload.Ticker)
	assert.Equal(t, "7D", payload.Timeframe)
	assert.Equal(t, "1h", fetcher.lastInterval)
	assert.Equal(t, 168, fetcher.lastLimit)
	assert.Len(t, payload.History, 2)
	assert.Equal(t, 110.0, payload.CurrentPrice)
	assert.InDelta(t, 10.0, payload.PercentChange, 1e-9)
}

func TestGetPriceHistory_FetchFailureServesMock(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("upstream down")}

	svc := NewService(fetcher, nil, nil, testLogger())
	payload := svc.GetPriceHistory(context.Background(), "BTCUSDT", "7D")

	require.NotNil(t, payload)
	assert.True(t, payload.IsMock)
	assert.Equal(t, "BTCUSDT", payload.Ticker)
	assert.Empty(t, payload.Timeframe)
	assert.Len(t, payload.History, 20)
	assert.Equal(t, 50000.0, payload.CurrentPrice)
	assert.InDelta(t, 2.5, payload.PercentChange, 1e-9)
	assert.Equal(t, 52000.0, payload.HighPrice)
	assert.Equal(t, 48000.0, payload.LowPrice)
	for _, p := range payload.History {
		assert.GreaterOrEqual(t, p.Price, 49000.0)
		assert.LessOrEqual(t, p.Price, 51000.0)
	}
}

func TestGetPriceHistory_NilFetcherServesMock(t *testing.T) {
	svc := NewService(nil, nil, nil, testLogger())
	payload := svc.GetPriceHistory(context.Background(), "ETHUSDT", "24H")

	require.NotNil(t, payload)
	assert.True(t, payload.IsMock)
}

func TestGetPriceHistory_EmptySeriesIsRealNotMock(t *testing.T) {
	fetcher := &stubFetcher{candles: []models.Candle{}}

	svc := NewService(fetcher, nil, nil, testLogger())
	payload := svc.GetPriceHistory(context.Background(), "BTCUSDT", "30D")

	require.NotNil(t, payload)
	assert.False(t, payload.IsMock)
	assert.Empty(t, payload.History)
	assert.Zero(t, payload.CurrentPrice)
	assert.Zero(t, payload.PercentChange)
}

func TestGetPriceHistory_UnknownTimeframeUses24HResolution(t *testing.T) {
	fetcher := &stubFetcher{candles: []models.Candle{
		{Timestamp: time.Now().UTC(), Close: 100, High: 101, Low: 99},
	}}

	svc := NewService(fetcher, nil, nil, testLogger())
	payload := svc.GetPriceHistory(context.Background(), "BTCUSDT", "5Y")

	assert.Equal(t, "15m", fetcher.lastInterval)
	assert.Equal(t, 96, fetcher.lastLimit)
	// The response echoes the requested timeframe, not the resolved one.
	assert.Equal(t, "5Y", payload.Timeframe)
}
