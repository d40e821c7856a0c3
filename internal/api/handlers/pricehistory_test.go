package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mujtaba-kazmi2006/nunno-backend/internal/pricehistory"
	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/models"
)

type stubFetcher struct {
	candles      []models.Candle
	err          error
	lastInterval string
	lastLimit    int
}

func (s *stubFetcher) Klines(_ context.Context, _, interval string, limit int) ([]models.Candle, error) {
	s.lastInterval = interval
	s.lastLimit = limit
	return s.candles, s.err
}

func (s *stubFetcher) Name() string { return "stub" }

func newPriceHistoryRouter(fetcher *stubFetcher) *mux.Router {
	svc := pricehistory.NewService(fetcher, nil, nil, testLogger())
	h := NewPriceHistoryHandler(svc, testLogger())

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/price-history/{ticker}", h.Get).Methods("GET")
	return r
}

func TestPriceHistory_FetchFailureStillReturns200Mock(t *testing.T) {
	router := newPriceHistoryRouter(&stubFetcher{err: errors.New("exchange down")})

	req := httptest.NewRequest("GET", "/api/v1/price-history/BTCUSDT?timeframe=7D", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload models.PriceHistory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	assert.True(t, payload.IsMock)
	assert.Equal(t, "BTCUSDT", payload.Ticker)
	assert.Len(t, payload.History, 20)
}

func TestPriceHistory_DefaultsTimeframeTo24H(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Minute)
	fetcher := &stubFetcher{candles: []models.Candle{
		{Timestamp: now.Add(-15 * time.Minute), Open: 100, High: 110, Low: 95, Close: 105, Volume: 12},
		{Timestamp: now, Open: 105, High: 120, Low: 101, Close: 118, Volume: 9},
	}}
	router := newPriceHistoryRouter(fetcher)

	req := httptest.NewRequest("GET", "/api/v1/price-history/ETHUSDT", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "15m", fetcher.lastInterval)
	assert.Equal(t, 96, fetcher.lastLimit)

	var payload models.PriceHistory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	assert.False(t, payload.IsMock)
	assert.Equal(t, "24H", payload.Timeframe)
	assert.Equal(t, 118.0, payload.CurrentPrice)
	assert.Len(t, payload.History, 2)
}

func TestPriceHistory_EchoesRequestedTimeframe(t *testing.T) {
	now := time.Now().UTC()
	fetcher := &stubFetcher{candles: []models.Candle{
		{Timestamp: now, Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: 3},
	}}
	router := newPriceHistoryRouter(fetcher)

	req := httptest.NewRequest("GET", "/api/v1/price-history/SOLUSDT?timeframe=1Y", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1d", fetcher.lastInterval)
	assert.Equal(t, 365, fetcher.lastLimit)

	var payload models.PriceHistory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "1Y", payload.Timeframe)
}
