package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/config"
	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/models"
)

// NewsAnalyzer fetches recent headlines for a ticker and scores their
// sentiment with a small keyword lexicon.
type NewsAnalyzer struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	maxItems   int
	logger     *logrus.Entry
}

// NewNewsAnalyzer creates a news analyzer backed by the CryptoCompare
// news API.
func NewNewsAnalyzer(cfg *config.NewsConfig, logger *logrus.Logger) *NewsAnalyzer {
	return &NewsAnalyzer{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:  cfg.APIURL,
		apiKey:   cfg.APIKey,
		maxItems: cfg.MaxItems,
		logger:   logger.WithField("component", "news"),
	}
}

type newsAPIResponse struct {
	Data []struct {
		Title       string `json:"title"`
		URL         string `json:"url"`
		PublishedOn int64  `json:"published_on"`
		SourceInfo  struct {
			Name string `json:"name"`
		} `json:"source_info"`
	} `json:"Data"`
}

// GetNewsSentiment fetches headlines tagged with the ticker's base asset
// and aggregates their sentiment.
func (n *NewsAnalyzer) GetNewsSentiment(ctx context.Context, ticker string) (*models.NewsSentiment, error) {
	category := baseAsset(ticker)

	url := fmt.Sprintf("%s/data/v2/news/?lang=EN&categories=%s", n.baseURL, category)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if n.apiKey != "" {
		req.Header.Set("authorization", "Apikey "+n.apiKey)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var apiResp newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	articles := make([]models.NewsArticle, 0, n.maxItems)
	var total float64
	for _, item := range apiResp.Data {
		if len(articles) >= n.maxItems {
			break
		}
		score := scoreHeadline(item.Title)
		total += score
		articles = append(articles, models.NewsArticle{
			Title:       item.Title,
			Source:      item.SourceInfo.Name,
			URL:         item.URL,
			PublishedAt: time.Unix(item.PublishedOn, 0).UTC(),
			Sentiment:   sentimentLabel(score),
		})
	}

	var avg float64
	if len(articles) > 0 {
		avg = total / float64(len(articles))
	}

	result := &models.NewsSentiment{
		Ticker:    ticker,
		Sentiment: sentimentLabel(avg),
		Score:     avg,
		Articles:  articles,
	}

	n.logger.WithFields(logrus.Fields{
		"ticker":   ticker,
		"articles": len(articles),
		"score":    avg,
	}).Debug("News sentiment computed")

	return result, nil
}

// baseAsset strips common quote-currency suffixes from a trading pair.
func baseAsset(ticker string) string {
	base := strings.ToUpper(ticker)
	for _, suffix := range []string{"USDT", "BUSD", "USDC", "BTC", "ETH", "BNB"} {
		if len(base) > len(suffix) && strings.HasSuffix(base, suffix) {
			return strings.TrimSuffix(base, suffix)
		}
	}
	return base
}

var positiveWords = []string{
	"surge", "rally", "gain", "bull", "soar", "record", "adoption",
	"breakout", "upgrade", "approval", "institutional", "growth",
}

var negativeWords = []string{
	"crash", "plunge", "drop", "bear", "hack", "lawsuit", "ban",
	"selloff", "fraud", "liquidation", "fear", "dump",
}

// scoreHeadline returns +1/-1/0 per matched keyword, normalized to [-1, 1].
func scoreHeadline(title string) float64 {
	lower := strings.ToLower(title)
	var score, hits float64
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			score++
			hits++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			score--
			hits++
		}
	}
	if hits == 0 {
		return 0
	}
	return score / hits
}

func sentimentLabel(score float64) string {
	switch {
	case score > 0.2:
		return "positive"
	case score < -0.2:
		return "negative"
	default:
		return "neutral"
	}
}
