package pricehistory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_KnownTimeframes(t *testing.T) {
	tests := []struct {
		timeframe string
		interval  string
		limit     int
	}{
		{"24H", "15m", 96},
		{"7D", "1h", 168},
		{"30D", "4h", 180},
		{"1Y", "1d", 365},
	}

	for _, tt := range tests {
		t.Run(tt.timeframe, func(t *testing.T) {
			res := Resolve(tt.timeframe)
			assert.Equal(t, tt.interval, res.Interval)
			assert.Equal(t, tt.limit, res.Limit)
		})
	}
}

func TestResolve_UnknownFallsBackTo24H(t *testing.T) {
	for _, timeframe := range []string{"5Y", "", "1w", "24h", "garbage"} {
		res := Resolve(timeframe)
		assert.Equal(t, "15m", res.Interval, "timeframe %q", timeframe)
		assert.Equal(t, 96, res.Limit, "timeframe %q", timeframe)
	}
}
