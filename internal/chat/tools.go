package chat

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mujtaba-kazmi2006/nunno-backend/internal/assistant"
)

// toolDefinitions are the analyzer tools exposed to the model. Names are
// echoed back to the client in the tool_calls list.
var toolDefinitions = []assistant.Tool{
	{
		Name:        "get_technical_analysis",
		Description: "Get technical analysis (RSI, moving averages, trend) for a trading pair such as BTCUSDT.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"ticker":   map[string]interface{}{"type": "string", "description": "Trading pair, e.g. BTCUSDT"},
				"interval": map[string]interface{}{"type": "string", "description": "Candle interval, e.g. 15m, 1h, 4h, 1d"},
			},
			"required": []string{"ticker"},
		},
	},
	{
		Name:        "get_tokenomics",
		Description: "Get tokenomics (supply, market cap, investment projection) for a CoinGecko coin id such as bitcoin.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"coin_id":           map[string]interface{}{"type": "string", "description": "CoinGecko coin id, e.g. bitcoin"},
				"investment_amount": map[string]interface{}{"type": "number", "description": "Investment amount in USD"},
			},
			"required": []string{"coin_id"},
		},
	},
	{
		Name:        "get_news_sentiment",
		Description: "Get recent news headlines and their sentiment for a cryptocurrency ticker.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"ticker": map[string]interface{}{"type": "string", "description": "Cryptocurrency ticker, e.g. BTC"},
			},
			"required": []string{"ticker"},
		},
	},
}

type technicalArgs struct {
	Ticker   string `json:"ticker"`
	Interval string `json:"interval"`
}

type tokenomicsArgs struct {
	CoinID           string  `json:"coin_id"`
	InvestmentAmount float64 `json:"investment_amount"`
}

type newsArgs struct {
	Ticker string `json:"ticker"`
}

// runTool executes one tool_use block against the local analyzers.
func (s *Service) runTool(ctx context.Context, use assistant.ContentBlock) (interface{}, error) {
	switch use.Name {
	case "get_technical_analysis":
		if s.technical == nil {
			return nil, fmt.Errorf("technical analyzer unavailable")
		}
		var args technicalArgs
		if err := json.Unmarshal(use.Input, &args); err != nil {
			return nil, fmt.Errorf("invalid tool input: %w", err)
		}
		return s.technical.Analyze(ctx, args.Ticker, args.Interval)

	case "get_tokenomics":
		if s.tokenomics == nil {
			return nil, fmt.Errorf("tokenomics analyzer unavailable")
		}
		var args tokenomicsArgs
		if err := json.Unmarshal(use.Input, &args); err != nil {
			return nil, fmt.Errorf("invalid tool input: %w", err)
		}
		if args.InvestmentAmount <= 0 {
			args.InvestmentAmount = 1000
		}
		return s.tokenomics.Analyze(ctx, args.CoinID, args.InvestmentAmount)

	case "get_news_sentiment":
		if s.news == nil {
			return nil, fmt.Errorf("news analyzer unavailable")
		}
		var args newsArgs
		if err := json.Unmarshal(use.Input, &args); err != nil {
			return nil, fmt.Errorf("invalid tool input: %w", err)
		}
		return s.news.GetNewsSentiment(ctx, args.Ticker)

	default:
		return nil, fmt.Errorf("unknown tool %q", use.Name)
	}
}
