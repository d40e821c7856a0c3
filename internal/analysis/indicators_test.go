package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMA(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5}

	assert.Equal(t, 3.0, SMA(prices, 5))
	assert.Equal(t, 4.0, SMA(prices, 3))
	assert.Equal(t, 0.0, SMA(prices, 10), "insufficient data returns zero")
	assert.Equal(t, 0.0, SMA(prices, 0))
}

func TestRSI_AllGains(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	assert.Equal(t, 100.0, RSI(closes, 14))
}

func TestRSI_InsufficientData(t *testing.T) {
	assert.Equal(t, 50.0, RSI([]float64{1, 2, 3}, 14))
}

func TestRSI_Bounded(t *testing.T) {
	closes := []float64{44, 44.3, 44.1, 43.6, 44.3, 44.8, 45.1, 45.4, 45.8, 46.1, 45.9, 46.3, 46.0, 46.6, 46.2, 46.4}
	rsi := RSI(closes, 14)
	assert.Greater(t, rsi, 50.0, "mostly rising series should read above midline")
	assert.Less(t, rsi, 100.0)
}
