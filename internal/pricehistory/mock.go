package pricehistory

import (
	"math/rand"
	"strconv"

	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/models"
)

const (
	mockPoints    = 20
	mockBasePrice = 50000
	mockJitter    = 1000
)

// MockPayload builds a structurally valid but synthetic price-history
// response. The chart UI renders it like real data; the IsMock marker
// lets the client indicate degraded data without crashing.
func MockPayload(ticker string) *models.PriceHistory {
	history := make([]models.ChartPoint, 0, mockPoints)
	for i := 0; i < mockPoints; i++ {
		history = append(history, models.ChartPoint{
			Time:  strconv.Itoa(i),
			Price: float64(mockBasePrice + rand.Intn(2*mockJitter+1) - mockJitter),
		})
	}

	return &models.PriceHistory{
		Ticker:        ticker,
		CurrentPrice:  mockBasePrice,
		PercentChange: 2.5,
		HighPrice:     52000,
		LowPrice:      48000,
		History:       history,
		IsMock:        true,
	}
}
