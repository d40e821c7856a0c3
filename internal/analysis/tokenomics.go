package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/models"
)

// TokenomicsAnalyzer turns raw CoinGecko market data into supply and
// valuation metrics with a simple investment projection.
type TokenomicsAnalyzer struct {
	coingecko *CoinGeckoClient
	logger    *logrus.Entry
}

// NewTokenomicsAnalyzer creates a tokenomics analyzer.
func NewTokenomicsAnalyzer(coingecko *CoinGeckoClient, logger *logrus.Logger) *TokenomicsAnalyzer {
	return &TokenomicsAnalyzer{
		coingecko: coingecko,
		logger:    logger.WithField("component", "tokenomics"),
	}
}

// Analyze fetches market data for the coin and derives tokenomics
// metrics plus a projection for the given investment amount.
func (t *TokenomicsAnalyzer) Analyze(ctx context.Context, coinID string, investmentAmount float64) (*models.TokenomicsAnalysis, error) {
	data, err := t.coingecko.GetMarketData(ctx, coinID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch market data: %w", err)
	}

	price := data.MarketData.CurrentPrice["usd"]
	if price <= 0 {
		return nil, fmt.Errorf("no USD price for %s", coinID)
	}

	result := &models.TokenomicsAnalysis{
		CoinID:            coinID,
		Name:              data.Name,
		Symbol:            strings.ToUpper(data.Symbol),
		CurrentPrice:      price,
		MarketCap:         data.MarketData.MarketCap["usd"],
		FullyDilutedValue: data.MarketData.FullyDilutedValue["usd"],
		CirculatingSupply: data.MarketData.CirculatingSupply,
		TotalSupply:       data.MarketData.TotalSupply,
		ATH:               data.MarketData.ATH["usd"],
		ATL:               data.MarketData.ATL["usd"],
		InvestmentAmount:  investmentAmount,
	}

	if result.TotalSupply > 0 {
		result.CirculatingRatio = result.CirculatingSupply / result.TotalSupply
	}

	result.TokensAcquired = investmentAmount / price
	result.ValueAtATH = result.TokensAcquired * result.ATH
	result.Summary = tokenomicsSummary(result)

	t.logger.WithFields(logrus.Fields{
		"coin_id": coinID,
		"price":   price,
	}).Debug("Tokenomics analysis computed")

	return result, nil
}

func tokenomicsSummary(a *models.TokenomicsAnalysis) string {
	dilution := "most of the supply is already circulating"
	if a.CirculatingRatio > 0 && a.CirculatingRatio < 0.7 {
		dilution = "a large share of the supply is not yet circulating, so future unlocks can dilute the price"
	}
	return fmt.Sprintf("%s (%s) trades at $%.2f. $%.0f buys about %.4f tokens; at the all-time high of $%.2f that stake would be worth $%.2f. Note: %s.",
		a.Name, a.Symbol, a.CurrentPrice, a.InvestmentAmount, a.TokensAcquired, a.ATH, a.ValueAtATH, dilution)
}
