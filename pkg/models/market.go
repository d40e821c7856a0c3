package models

import (
	"time"
)

// Candle represents one interval's OHLCV summary of price activity.
type Candle struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

// ChartPoint is a single chart-ready sample derived from a candle close.
// Time is a short display label whose format depends on the timeframe;
// Date carries the full RFC3339 timestamp for client-side tooltips.
type ChartPoint struct {
	Time  string  `json:"time"`
	Price float64 `json:"price"`
	Date  string  `json:"date,omitempty"`
}

// PriceHistory is the wire shape of the price-history endpoint. Real
// payloads carry Timeframe; synthetic ones carry IsMock instead.
type PriceHistory struct {
	Ticker        string       `json:"ticker"`
	CurrentPrice  float64      `json:"current_price"`
	PercentChange float64      `json:"percent_change"`
	HighPrice     float64      `json:"high_price"`
	LowPrice      float64      `json:"low_price"`
	History       []ChartPoint `json:"history"`
	Timeframe     string       `json:"timeframe,omitempty"`
	IsMock        bool         `json:"is_mock,omitempty"`
}
