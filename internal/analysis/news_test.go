package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreHeadline(t *testing.T) {
	assert.Positive(t, scoreHeadline("Bitcoin surges to a new record in broad rally"))
	assert.Negative(t, scoreHeadline("Exchange hack triggers market crash"))
	assert.Zero(t, scoreHeadline("Quarterly report published on schedule"))
}

func TestSentimentLabel(t *testing.T) {
	assert.Equal(t, "positive", sentimentLabel(0.5))
	assert.Equal(t, "negative", sentimentLabel(-0.5))
	assert.Equal(t, "neutral", sentimentLabel(0.1))
}

func TestBaseAsset(t *testing.T) {
	assert.Equal(t, "BTC", baseAsset("BTCUSDT"))
	assert.Equal(t, "ETH", baseAsset("ethusdc"))
	assert.Equal(t, "BTC", baseAsset("BTC"), "bare asset is left untouched")
}
