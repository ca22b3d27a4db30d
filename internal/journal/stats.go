package journal

import "tradingdesk/internal/models"

// ComputeStats aggregates a trade set into journal statistics. It is a pure
// function: only closed trades contribute, zero-PnL trades count toward the
// totals but neither the win nor the loss bucket, and every ratio is guarded
// so an empty input yields all zeros rather than a division artifact.
//
// ProfitFactor is average win over average loss rather than the textbook
// gross-profit over gross-loss. AverageRR shares the same formula. Both are
// kept as the product defined them.
func ComputeStats(trades []models.TradeEntry) models.TradeStats {
	var (
		closed      int
		wins        int
		losses      int
		winSum      float64
		lossSum     float64
		largestWin  float64
		largestLoss float64
		totalPnL    float64
		totalPct    float64
	)

	for _, t := range trades {
		if t.Status != models.StatusClosed {
			continue
		}
		closed++
		totalPnL += t.PnL
		totalPct += t.PnLPercent

		switch {
		case t.PnL > 0:
			wins++
			winSum += t.PnL
			if t.PnL > largestWin {
				largestWin = t.PnL
			}
		case t.PnL < 0:
			losses++
			lossSum += t.PnL
			if t.PnL < largestLoss {
				largestLoss = t.PnL
			}
		}
	}

	var avgWin, avgLoss float64
	if wins > 0 {
		avgWin = winSum / float64(wins)
	}
	if losses > 0 {
		avgLoss = -lossSum / float64(losses) // reported as a positive magnitude
	}

	var winRate float64
	if closed > 0 {
		winRate = float64(wins) / float64(closed) * 100
	}

	var profitFactor float64
	if avgLoss > 0 {
		profitFactor = avgWin / avgLoss
	}

	return models.TradeStats{
		TotalTrades:     closed,
		WinningTrades:   wins,
		LosingTrades:    losses,
		WinRate:         winRate,
		AverageWin:      avgWin,
		AverageLoss:     avgLoss,
		LargestWin:      largestWin,
		LargestLoss:     largestLoss,
		ProfitFactor:    profitFactor,
		TotalPnL:        totalPnL,
		TotalPnLPercent: totalPct,
		AverageRR:       profitFactor,
	}
}
