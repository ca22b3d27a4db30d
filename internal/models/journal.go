package models

import "time"

// TradeDirection is the side of a journaled trade.
type TradeDirection string

const (
	DirectionLong  TradeDirection = "long"
	DirectionShort TradeDirection = "short"
)

// TradeStatus is the lifecycle state of a journaled trade.
// Open trades may move to closed or cancelled; both are terminal.
type TradeStatus string

const (
	StatusOpen      TradeStatus = "open"
	StatusClosed    TradeStatus = "closed"
	StatusCancelled TradeStatus = "cancelled"
)

// TradeSetup tags the strategy style a trade was taken under.
type TradeSetup string

const (
	SetupTrendFollowing TradeSetup = "trend-following"
	SetupReversal       TradeSetup = "reversal"
	SetupBreakout       TradeSetup = "breakout"
	SetupRange          TradeSetup = "range"
	SetupScalp          TradeSetup = "scalp"
	SetupSwing          TradeSetup = "swing"
	SetupPosition       TradeSetup = "position"
)

// EmotionalState records how the trader felt entering a trade.
type EmotionalState string

const (
	EmotionConfident  EmotionalState = "confident"
	EmotionNeutral    EmotionalState = "neutral"
	EmotionAnxious    EmotionalState = "anxious"
	EmotionFomo       EmotionalState = "fomo"
	EmotionFrustrated EmotionalState = "frustrated"
	EmotionCalm       EmotionalState = "calm"
)

// TradeEntry is one record in the trading journal.
type TradeEntry struct {
	ID             string         `json:"id"`
	Symbol         string         `json:"symbol"`
	Direction      TradeDirection `json:"direction"`
	Status         TradeStatus    `json:"status"`
	EntryPrice     float64        `json:"entryPrice"`
	ExitPrice      float64        `json:"exitPrice,omitempty"`
	StopLoss       float64        `json:"stopLoss"`
	TakeProfit     float64        `json:"takeProfit"`
	Size           float64        `json:"size"`
	PnL            float64        `json:"pnl,omitempty"`
	PnLPercent     float64        `json:"pnlPercent,omitempty"`
	Commission     float64        `json:"commission"`
	Slippage       float64        `json:"slippage"`
	Strategy       string         `json:"strategy"`
	Setup          TradeSetup     `json:"setup"`
	Timeframe      string         `json:"timeframe"`
	EntryTime      time.Time      `json:"entryTime"`
	ExitTime       *time.Time     `json:"exitTime,omitempty"`
	EmotionalState EmotionalState `json:"emotionalState"`
	PreTradeNotes  string         `json:"preTradeNotes"`
	PostTradeNotes string         `json:"postTradeNotes"`
	Tags           []string       `json:"tags"`
	Rating         int            `json:"rating"`
	Mistakes       []string       `json:"mistakes"`
	Lessons        []string       `json:"lessons"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// TradeStats is the aggregation over a filtered set of journal trades.
// Only closed trades contribute; see journal.ComputeStats.
type TradeStats struct {
	TotalTrades     int     `json:"totalTrades" yaml:"total_trades"`
	WinningTrades   int     `json:"winningTrades" yaml:"winning_trades"`
	LosingTrades    int     `json:"losingTrades" yaml:"losing_trades"`
	WinRate         float64 `json:"winRate" yaml:"win_rate"`
	AverageWin      float64 `json:"averageWin" yaml:"average_win"`
	AverageLoss     float64 `json:"averageLoss" yaml:"average_loss"`
	LargestWin      float64 `json:"largestWin" yaml:"largest_win"`
	LargestLoss     float64 `json:"largestLoss" yaml:"largest_loss"`
	ProfitFactor    float64 `json:"profitFactor" yaml:"profit_factor"`
	TotalPnL        float64 `json:"totalPnl" yaml:"total_pnl"`
	TotalPnLPercent float64 `json:"totalPnlPercent" yaml:"total_pnl_percent"`
	AverageRR       float64 `json:"averageRR" yaml:"average_rr"`
}

// JournalFilters selects a subset of the journal. Empty dimensions match
// everything; dimensions combine with AND, values within one with OR.
type JournalFilters struct {
	DateFrom        *time.Time       `json:"dateFrom,omitempty"`
	DateTo          *time.Time       `json:"dateTo,omitempty"`
	Symbols         []string         `json:"symbols,omitempty"`
	Setups          []TradeSetup     `json:"setups,omitempty"`
	Status          []TradeStatus    `json:"status,omitempty"`
	PnLMin          *float64         `json:"pnlMin,omitempty"`
	PnLMax          *float64         `json:"pnlMax,omitempty"`
	EmotionalStates []EmotionalState `json:"emotionalStates,omitempty"`
	Tags            []string         `json:"tags,omitempty"`
}
