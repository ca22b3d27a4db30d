package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tradingdesk/internal/models"
)

func closedTrade(pnl float64) models.TradeEntry {
	return models.TradeEntry{Status: models.StatusClosed, PnL: pnl}
}

func TestComputeStats(t *testing.T) {
	trades := []models.TradeEntry{
		closedTrade(100),
		closedTrade(-50),
		closedTrade(0),
	}

	stats := ComputeStats(trades)

	assert.Equal(t, 3, stats.TotalTrades)
	assert.Equal(t, 1, stats.WinningTrades)
	assert.Equal(t, 1, stats.LosingTrades)
	assert.InDelta(t, 100.0/3*1, stats.WinRate, 1e-9)
	assert.Equal(t, 100.0, stats.AverageWin)
	// Losses are reported as a positive magnitude.
	assert.Equal(t, 50.0, stats.AverageLoss)
	assert.Equal(t, 100.0, stats.LargestWin)
	assert.Equal(t, -50.0, stats.LargestLoss)
	assert.Equal(t, 2.0, stats.ProfitFactor)
	assert.Equal(t, stats.ProfitFactor, stats.AverageRR)
	assert.Equal(t, 50.0, stats.TotalPnL)
}

func TestComputeStatsIgnoresOpenAndCancelled(t *testing.T) {
	trades := []models.TradeEntry{
		{Status: models.StatusOpen, PnL: 9999},
		{Status: models.StatusCancelled, PnL: -9999},
		closedTrade(10),
	}

	stats := ComputeStats(trades)

	assert.Equal(t, 1, stats.TotalTrades)
	assert.Equal(t, 10.0, stats.TotalPnL)
}

func TestComputeStatsEmpty(t *testing.T) {
	assert.Equal(t, models.TradeStats{}, ComputeStats(nil))
	assert.Equal(t, models.TradeStats{}, ComputeStats([]models.TradeEntry{}))
}

func TestComputeStatsAllWins(t *testing.T) {
	stats := ComputeStats([]models.TradeEntry{closedTrade(10), closedTrade(30)})

	assert.Equal(t, 100.0, stats.WinRate)
	assert.Equal(t, 20.0, stats.AverageWin)
	assert.Zero(t, stats.AverageLoss)
	// No losses means the factor stays zero instead of dividing by zero.
	assert.Zero(t, stats.ProfitFactor)
}

func TestComputeStatsIdempotent(t *testing.T) {
	trades := []models.TradeEntry{closedTrade(120), closedTrade(-80), closedTrade(40)}

	first := ComputeStats(trades)
	second := ComputeStats(trades)

	assert.Equal(t, first, second)
}
