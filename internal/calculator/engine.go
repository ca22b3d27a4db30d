// Package calculator computes risk-based position sizes across markets.
//
// ComputeSize and ValidateInputs are independent pure functions over a
// CalculatorState: validation reports problems, computation degrades to
// zero results instead of failing. Degenerate arithmetic (zero price
// difference, unresolved instrument) is guarded explicitly so neither NaN
// nor Inf leaks out of the sizing path.
package calculator

import (
	"math"
	"strings"

	"tradingdesk/internal/catalog"
	"tradingdesk/internal/models"
)

// StandardLot is the forex position-size unit, in base-currency units.
const StandardLot = 100000

// PipSize returns the price increment of one pip for a forex symbol:
// 0.01 for JPY-quoted pairs, 0.0001 otherwise.
func PipSize(symbol string) float64 {
	if strings.Contains(symbol, "JPY") {
		return 0.01
	}
	return 0.0001
}

// ComputeSize derives the position size and its costs from the calculator
// state and the resolved instrument. A nil instrument (unresolved symbol)
// yields the all-zero result; that is the documented degenerate case, not
// an error.
//
// RiskRewardRatio is the one deliberately unguarded field: with a non-nil
// instrument and zero risk amount it can be Inf or NaN, and display layers
// must guard it themselves.
func ComputeSize(state models.CalculatorState, instrument *models.Instrument) models.PositionSizeResult {
	if instrument == nil {
		return models.PositionSizeResult{}
	}

	balance := state.Balance()
	riskAmount := balance * (state.RiskPercentage / 100)
	priceDiff := math.Abs(state.EntryPrice - state.StopLossPrice)

	var size, pipValue float64

	switch state.MarketType {
	case models.MarketForex:
		pipSize := PipSize(state.Instrument)
		pips := priceDiff / pipSize
		if pips > 0 {
			pipValue = riskAmount / pips
			size = (pipValue * pipSize * StandardLot) / state.Leverage
		}

	case models.MarketStocks, models.MarketCrypto:
		if priceDiff > 0 {
			size = riskAmount / priceDiff
		}

	case models.MarketFutures:
		if instrument.ContractSize > 0 && priceDiff > 0 {
			size = (riskAmount / priceDiff) / instrument.ContractSize
		}

	case models.MarketOptions:
		if instrument.Multiplier > 0 && priceDiff > 0 {
			size = (riskAmount / priceDiff) / instrument.Multiplier
		}
	}

	multiplier := instrument.Multiplier
	if multiplier == 0 {
		multiplier = 1
	}
	margin := (size * state.EntryPrice * multiplier) / state.Leverage

	var potentialProfit float64
	for _, level := range state.TakeProfitLevels {
		levelDiff := math.Abs(level.Price - state.EntryPrice)
		potentialProfit += size * levelDiff * (level.Percentage / 100)
	}

	commission := size * state.Commission

	return models.PositionSizeResult{
		Size:            size,
		RiskAmount:      riskAmount,
		PipValue:        pipValue,
		Margin:          margin,
		PotentialProfit: potentialProfit,
		RiskRewardRatio: potentialProfit / riskAmount,
		Commission:      commission,
		TotalCost:       margin + commission,
	}
}

// ValidateInputs checks the calculator state against the given catalog.
// It never blocks computation; the caller decides whether an invalid state
// is worth computing anyway.
func ValidateInputs(state models.CalculatorState, cat *catalog.Catalog) models.ValidationResult {
	if state.Instrument == "" {
		return models.ValidationResult{IsValid: false, Message: "Please select an instrument"}
	}

	if _, ok := cat.Find(state.Instrument, state.MarketType); !ok {
		return models.ValidationResult{IsValid: false, Message: "Invalid instrument"}
	}

	if state.RiskPercentage <= 0 || state.RiskPercentage > 100 {
		return models.ValidationResult{IsValid: false, Message: "Risk percentage must be between 0 and 100"}
	}

	if state.StopLoss <= 0 {
		return models.ValidationResult{IsValid: false, Message: "Stop loss must be greater than 0"}
	}

	if state.EntryPrice <= 0 {
		return models.ValidationResult{IsValid: false, Message: "Entry price must be greater than 0"}
	}

	return models.ValidationResult{IsValid: true}
}

// BreakEvenPrice returns the price the trade must reach before it stops
// losing money to costs: the entry shifted by the configured spread in pip
// terms plus the per-unit commission.
func BreakEvenPrice(state models.CalculatorState) float64 {
	return state.EntryPrice + state.Spread*PipSize(state.Instrument) + state.Commission
}

// DefaultState returns the calculator session's starting state.
func DefaultState() models.CalculatorState {
	return models.CalculatorState{
		MarketType:       models.MarketForex,
		AccountCurrency:  models.CurrencyUSD,
		AccountBalance:   10000,
		CustomBalance:    nil,
		RiskPercentage:   1,
		StopLoss:         50,
		StopLossUnit:     models.UnitPips,
		EntryPrice:       0,
		StopLossPrice:    0,
		TakeProfitLevels: []models.TakeProfitLevel{{Price: 0, Percentage: 100}},
		Leverage:         100,
		Instrument:       "",
		Commission:       0,
		Spread:           1,
		Slippage:         0.5,
	}
}
