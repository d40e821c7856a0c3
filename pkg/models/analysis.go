package models

import "time"

// TechnicalAnalysis is the response of the technical-analysis endpoint:
// indicator values plus a beginner-friendly reading of them.
type TechnicalAnalysis struct {
	Ticker       string  `json:"ticker"`
	Interval     string  `json:"interval"`
	CurrentPrice float64 `json:"current_price"`
	RSI          float64 `json:"rsi"`
	SMA20        float64 `json:"sma_20"`
	SMA50        float64 `json:"sma_50"`
	HighPrice    float64 `json:"high_price"`
	LowPrice     float64 `json:"low_price"`
	Trend        string  `json:"trend"`
	Summary      string  `json:"summary"`
}

// TokenomicsAnalysis is the response of the tokenomics endpoint.
type TokenomicsAnalysis struct {
	CoinID            string  `json:"coin_id"`
	Name              string  `json:"name"`
	Symbol            string  `json:"symbol"`
	CurrentPrice      float64 `json:"current_price"`
	MarketCap         float64 `json:"market_cap"`
	FullyDilutedValue float64 `json:"fully_diluted_value"`
	CirculatingSupply float64 `json:"circulating_supply"`
	TotalSupply       float64 `json:"total_supply"`
	CirculatingRatio  float64 `json:"circulating_ratio"`
	ATH               float64 `json:"ath"`
	ATL               float64 `json:"atl"`

	// Investment projection for the requested amount.
	InvestmentAmount float64 `json:"investment_amount"`
	TokensAcquired   float64 `json:"tokens_acquired"`
	ValueAtATH       float64 `json:"value_at_ath"`
	Summary          string  `json:"summary"`
}

// NewsArticle is one scored headline.
type NewsArticle struct {
	Title       string    `json:"title"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
	Sentiment   string    `json:"sentiment"`
}

// NewsSentiment aggregates recent headlines for a ticker with a naive
// lexicon-based sentiment score in [-1, 1].
type NewsSentiment struct {
	Ticker    string        `json:"ticker"`
	Sentiment string        `json:"sentiment"`
	Score     float64       `json:"score"`
	Articles  []NewsArticle `json:"articles"`
}
