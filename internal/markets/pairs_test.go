package markets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradingdesk/internal/models"
)

func TestPairsListByCategory(t *testing.T) {
	p := NewPairs(1)

	majors := p.List(models.PairMajor)
	assert.Len(t, majors, 10)
	for _, pair := range majors {
		assert.Equal(t, models.PairMajor, pair.Category)
	}

	assert.Len(t, p.List(models.PairMinor), 7)
	assert.Len(t, p.List(models.PairExotic), 6)
	assert.Len(t, p.List(""), 23)
}

func TestPairsJitterKeepsSpread(t *testing.T) {
	p := NewPairs(42)

	for _, pair := range p.List("") {
		// The simulated tick moves bid and ask together.
		assert.Greater(t, pair.Ask, pair.Bid, "pair %s", pair.Symbol)
	}
}

func TestPairsFind(t *testing.T) {
	p := NewPairs(1)

	cable, ok := p.Find("gbp/usd")
	require.True(t, ok)
	assert.Equal(t, "GBP/USD", cable.Symbol)
	assert.Equal(t, "Cable", cable.Nickname)

	_, ok = p.Find("ABC/XYZ")
	assert.False(t, ok)
}

func TestPairSpread(t *testing.T) {
	pair := models.CurrencyPair{Bid: 1.0921, Ask: 1.0923}
	assert.InDelta(t, 0.0002, pair.Spread(), 1e-9)
}

func TestSessionStatsRanges(t *testing.T) {
	p := NewPairs(7)

	for i := 0; i < 50; i++ {
		stats := p.SessionStats()
		assert.GreaterOrEqual(t, stats.Volume, 0.0)
		assert.LessOrEqual(t, stats.Volume, 1000000.0)
		assert.GreaterOrEqual(t, stats.Volatility, 0.0)
		assert.LessOrEqual(t, stats.Volatility, 100.0)
		assert.Contains(t, []string{"bullish", "bearish"}, stats.Sentiment)
		assert.GreaterOrEqual(t, stats.Performance, -5.0)
		assert.LessOrEqual(t, stats.Performance, 5.0)
	}
}
