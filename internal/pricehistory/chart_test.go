package pricehistory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/models"
)

func candleAt(ts time.Time, closePrice float64) models.Candle {
	return models.Candle{
		Timestamp: ts,
		Open:      closePrice - 5,
		High:      closePrice + 10,
		Low:       closePrice - 10,
		Close:     closePrice,
		Volume:    100,
	}
}

func TestFormatSeries_Labels(t *testing.T) {
	ts := time.Date(2024, time.March, 3, 14, 5, 0, 0, time.UTC)
	candles := []models.Candle{candleAt(ts, 100)}

	tests := []struct {
		timeframe string
		label     string
	}{
		{"24H", "14:05"},
		{"7D", "Sun 14:05"},
		{"30D", "Mar 03"},
		{"1Y", "Mar 03 2024"},
		{"5Y", "Mar 03 2024"}, // unknown timeframe uses the year layout
	}

	for _, tt := range tests {
		t.Run(tt.timeframe, func(t *testing.T) {
			points := FormatSeries(candles, tt.timeframe)
			require.Len(t, points, 1)
			assert.Equal(t, tt.label, points[0].Time)
			assert.Equal(t, 100.0, points[0].Price)
		})
	}
}

func TestFormatSeries_PreservesOrderAndCount(t *testing.T) {
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]models.Candle, 0, 10)
	for i := 0; i < 10; i++ {
		candles = append(candles, candleAt(start.Add(time.Duration(i)*time.Hour), float64(100+i)))
	}

	points := FormatSeries(candles, "7D")
	require.Len(t, points, len(candles))

	for i, p := range points {
		assert.Equal(t, candles[i].Close, p.Price)
	}

	// Full timestamps must round-trip in strictly ascending order.
	prev, err := time.Parse(time.RFC3339, points[0].Date)
	require.NoError(t, err)
	for _, p := range points[1:] {
		cur, err := time.Parse(time.RFC3339, p.Date)
		require.NoError(t, err)
		assert.True(t, cur.After(prev), "dates must be strictly increasing")
		prev = cur
	}
}

func TestSummarize(t *testing.T) {
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	candles := []models.Candle{
		{Timestamp: start, Open: 99, High: 105, Low: 95, Close: 100},
		{Timestamp: start.Add(time.Hour), Open: 100, High: 130, Low: 98, Close: 110},
		{Timestamp: start.Add(2 * time.Hour), Open: 110, High: 125, Low: 90, Close: 120},
	}

	s := Summarize(candles)
	assert.Equal(t, 120.0, s.CurrentPrice)
	assert.InDelta(t, 20.0, s.PercentChange, 1e-9)
	assert.Equal(t, 130.0, s.HighPrice)
	assert.Equal(t, 90.0, s.LowPrice)
}

func TestSummarize_EmptySeries(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.CurrentPrice)
	assert.Zero(t, s.PercentChange)
	assert.Zero(t, s.HighPrice)
	assert.Zero(t, s.LowPrice)
}
