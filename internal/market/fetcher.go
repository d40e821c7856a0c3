package market

import (
	"context"

	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/models"
)

// Fetcher defines the interface for fetching spot-market candles.
type Fetcher interface {
	// Klines returns up to limit candles for symbol at the given interval,
	// ordered by timestamp ascending.
	Klines(ctx context.Context, symbol, interval string, limit int) ([]models.Candle, error)
	Name() string
}
