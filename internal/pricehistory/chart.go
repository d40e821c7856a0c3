package pricehistory

import (
	"time"

	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/models"
)

// Summary holds the headline statistics derived from a candle series.
type Summary struct {
	CurrentPrice  float64
	PercentChange float64
	HighPrice     float64
	LowPrice      float64
}

// labelFormat returns the display-label layout for a timeframe. Note the
// label follows the requested timeframe string, not the resolved one: an
// unknown timeframe gets 24H data but year-style labels.
func labelFormat(timeframe string) string {
	switch timeframe {
	case "24H":
		return "15:04"
	case "7D":
		return "Mon 15:04"
	case "30D":
		return "Jan 02"
	default: // 1Y and anything else
		return "Jan 02 2006"
	}
}

// FormatSeries produces one chart point per candle, in series order.
// The series must be non-empty; callers check emptiness first.
func FormatSeries(candles []models.Candle, timeframe string) []models.ChartPoint {
	layout := labelFormat(timeframe)

	points := make([]models.ChartPoint, 0, len(candles))
	for _, c := range candles {
		points = append(points, models.ChartPoint{
			Time:  c.Timestamp.Format(layout),
			Price: c.Close,
			Date:  c.Timestamp.Format(time.RFC3339),
		})
	}
	return points
}

// Summarize computes current price (last close), percent change relative
// to the first close, max high and min low. An empty series yields all
// zeros rather than a division error.
func Summarize(candles []models.Candle) Summary {
	if len(candles) == 0 {
		return Summary{}
	}

	first := candles[0].Close
	last := candles[len(candles)-1].Close

	s := Summary{
		CurrentPrice: last,
		HighPrice:    candles[0].High,
		LowPrice:     candles[0].Low,
	}
	if first != 0 {
		s.PercentChange = (last - first) / first * 100
	}

	for _, c := range candles[1:] {
		if c.High > s.HighPrice {
			s.HighPrice = c.High
		}
		if c.Low < s.LowPrice {
			s.LowPrice = c.Low
		}
	}
	return s
}
