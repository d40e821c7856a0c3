package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/models"
)

// restClient is a minimal klines client for a single Binance-compatible
// mirror host, used only as a fallback path.
type restClient struct {
	client  *http.Client
	baseURL string
	logger  *logrus.Entry
}

func newRESTClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *restClient {
	return &restClient{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger.WithField("component", "binance-rest"),
	}
}

// klines fetches kline/candlestick data from the mirror host.
func (r *restClient) klines(ctx context.Context, symbol, interval string, limit int) ([]models.Candle, error) {
	params := url.Values{}
	params.Add("symbol", symbol)
	params.Add("interval", interval)
	if limit > 0 && limit <= 1000 {
		params.Add("limit", strconv.Itoa(limit))
	} else if limit > 1000 {
		params.Add("limit", "1000")
	}

	fullURL := fmt.Sprintf("%s/api/v3/klines?%s", r.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	// Binance encodes each kline as a positional JSON array.
	var rawKlines [][]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&rawKlines); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	candles := make([]models.Candle, 0, len(rawKlines))
	for _, raw := range rawKlines {
		if len(raw) < 6 {
			continue
		}

		openTime, ok := raw[0].(float64)
		if !ok {
			continue
		}

		candle, err := klineToCandle(
			int64(openTime),
			asString(raw[1]),
			asString(raw[2]),
			asString(raw[3]),
			asString(raw[4]),
			asString(raw[5]),
		)
		if err != nil {
			return nil, err
		}
		candles = append(candles, candle)
	}

	r.logger.WithFields(logrus.Fields{
		"symbol": symbol,
		"count":  len(candles),
	}).Debug("Fetched klines from fallback host")

	return candles, nil
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
