package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradingdesk/internal/catalog"
	"tradingdesk/internal/models"
)

func forexState(symbol string, entry, stop float64) models.CalculatorState {
	state := DefaultState()
	state.Instrument = symbol
	state.EntryPrice = entry
	state.StopLossPrice = stop
	return state
}

func mustFind(t *testing.T, cat *catalog.Catalog, symbol string, mt models.MarketType) *models.Instrument {
	t.Helper()
	inst, ok := cat.Find(symbol, mt)
	require.True(t, ok, "instrument %s not in catalog", symbol)
	return &inst
}

func TestComputeSizeForex(t *testing.T) {
	cat := catalog.NewDefault()
	state := forexState("EUR/USD", 1.1000, 1.0950)
	inst := mustFind(t, cat, "EUR/USD", models.MarketForex)

	result := ComputeSize(state, inst)

	// 1% of 10000 at 50 pips distance.
	assert.InDelta(t, 100.0, result.RiskAmount, 1e-9)
	assert.InDelta(t, 2.0, result.PipValue, 1e-9)
	assert.InDelta(t, (2.0*0.0001*StandardLot)/100, result.Size, 1e-9)
	assert.Greater(t, result.Size, 0.0)
}

func TestComputeSizeJPYPair(t *testing.T) {
	cat := catalog.NewDefault()
	state := forexState("USD/JPY", 150.00, 149.50)
	inst := mustFind(t, cat, "USD/JPY", models.MarketForex)

	result := ComputeSize(state, inst)

	// 0.50 price distance at pip size 0.01 is 50 pips.
	assert.InDelta(t, 2.0, result.PipValue, 1e-9)
	assert.Greater(t, result.Size, 0.0)
}

func TestComputeSizeStocks(t *testing.T) {
	cat := catalog.NewDefault()
	state := DefaultState()
	state.MarketType = models.MarketStocks
	state.Instrument = "AAPL"
	state.EntryPrice = 180
	state.StopLossPrice = 175
	inst := mustFind(t, cat, "AAPL", models.MarketStocks)

	result := ComputeSize(state, inst)

	// 100 risked over a 5 point stop.
	assert.InDelta(t, 20.0, result.Size, 1e-9)
}

func TestComputeSizeFuturesDividesByContractSize(t *testing.T) {
	cat := catalog.NewDefault()
	state := DefaultState()
	state.MarketType = models.MarketFutures
	state.Instrument = "ES"
	state.EntryPrice = 5000
	state.StopLossPrice = 4990
	inst := mustFind(t, cat, "ES", models.MarketFutures)
	require.Equal(t, 50.0, inst.ContractSize)

	result := ComputeSize(state, inst)

	assert.InDelta(t, (100.0/10.0)/50.0, result.Size, 1e-9)
}

func TestComputeSizeOptionsDividesByMultiplier(t *testing.T) {
	cat := catalog.NewDefault()
	state := DefaultState()
	state.MarketType = models.MarketOptions
	state.Instrument = "SPY"
	state.EntryPrice = 450
	state.StopLossPrice = 445
	inst := mustFind(t, cat, "SPY", models.MarketOptions)
	require.Equal(t, 100.0, inst.Multiplier)

	result := ComputeSize(state, inst)

	assert.InDelta(t, (100.0/5.0)/100.0, result.Size, 1e-9)
}

func TestComputeSizeNilInstrument(t *testing.T) {
	state := forexState("EUR/USD", 1.1000, 1.0950)

	result := ComputeSize(state, nil)

	assert.Equal(t, models.PositionSizeResult{}, result)
}

func TestComputeSizeZeroPriceDiff(t *testing.T) {
	cat := catalog.NewDefault()
	state := forexState("EUR/USD", 1.1000, 1.1000)
	inst := mustFind(t, cat, "EUR/USD", models.MarketForex)

	result := ComputeSize(state, inst)

	assert.Zero(t, result.Size)
	assert.Zero(t, result.PipValue)
	assert.Zero(t, result.Margin)
	// Risk amount is still the configured fraction of the balance.
	assert.InDelta(t, 100.0, result.RiskAmount, 1e-9)
}

func TestComputeSizeCustomBalanceOverride(t *testing.T) {
	cat := catalog.NewDefault()
	state := forexState("EUR/USD", 1.1000, 1.0950)
	custom := 50000.0
	state.CustomBalance = &custom
	inst := mustFind(t, cat, "EUR/USD", models.MarketForex)

	result := ComputeSize(state, inst)

	assert.InDelta(t, 500.0, result.RiskAmount, 1e-9)
}

func TestComputeSizeTakeProfitLevels(t *testing.T) {
	cat := catalog.NewDefault()
	state := forexState("EUR/USD", 1.1000, 1.0950)
	state.TakeProfitLevels = []models.TakeProfitLevel{
		{Price: 1.1100, Percentage: 50},
		{Price: 1.1200, Percentage: 50},
	}
	inst := mustFind(t, cat, "EUR/USD", models.MarketForex)

	result := ComputeSize(state, inst)

	want := result.Size*0.01*0.5 + result.Size*0.02*0.5
	assert.InDelta(t, want, result.PotentialProfit, 1e-9)
	assert.InDelta(t, want/result.RiskAmount, result.RiskRewardRatio, 1e-9)
}

func TestComputeSizeRiskRewardUnguarded(t *testing.T) {
	cat := catalog.NewDefault()
	state := forexState("EUR/USD", 1.1000, 1.0950)
	state.RiskPercentage = 0
	state.TakeProfitLevels = nil
	inst := mustFind(t, cat, "EUR/USD", models.MarketForex)

	result := ComputeSize(state, inst)

	// Zero profit over zero risk: the ratio field carries NaN and the
	// display layer guards it.
	assert.True(t, math.IsNaN(result.RiskRewardRatio))
}

func TestPipSize(t *testing.T) {
	assert.Equal(t, 0.0001, PipSize("EUR/USD"))
	assert.Equal(t, 0.01, PipSize("USD/JPY"))
	assert.Equal(t, 0.01, PipSize("EUR/JPY"))
}

func TestBreakEvenPrice(t *testing.T) {
	state := forexState("EUR/USD", 1.1000, 1.0950)
	state.Spread = 2

	assert.InDelta(t, 1.1002, BreakEvenPrice(state), 1e-9)

	// JPY pairs shift by the larger pip size.
	state.Instrument = "USD/JPY"
	state.EntryPrice = 150.00
	assert.InDelta(t, 150.02, BreakEvenPrice(state), 1e-9)

	// Per-unit commission moves the break-even further out.
	state.Commission = 0.01
	assert.InDelta(t, 150.03, BreakEvenPrice(state), 1e-9)
}

func TestValidateInputs(t *testing.T) {
	cat := catalog.NewDefault()

	tests := []struct {
		name    string
		mutate  func(*models.CalculatorState)
		message string
	}{
		{
			name:    "missing instrument",
			mutate:  func(s *models.CalculatorState) { s.Instrument = "" },
			message: "Please select an instrument",
		},
		{
			name:    "unknown instrument",
			mutate:  func(s *models.CalculatorState) { s.Instrument = "XXX/YYY" },
			message: "Invalid instrument",
		},
		{
			name:    "risk too high",
			mutate:  func(s *models.CalculatorState) { s.RiskPercentage = 150 },
			message: "Risk percentage must be between 0 and 100",
		},
		{
			name:    "zero risk",
			mutate:  func(s *models.CalculatorState) { s.RiskPercentage = 0 },
			message: "Risk percentage must be between 0 and 100",
		},
		{
			name:    "zero stop loss",
			mutate:  func(s *models.CalculatorState) { s.StopLoss = 0 },
			message: "Stop loss must be greater than 0",
		},
		{
			name:    "zero entry",
			mutate:  func(s *models.CalculatorState) { s.EntryPrice = 0 },
			message: "Entry price must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := forexState("EUR/USD", 1.1000, 1.0950)
			tt.mutate(&state)

			v := ValidateInputs(state, cat)
			assert.False(t, v.IsValid)
			assert.Equal(t, tt.message, v.Message)
		})
	}

	t.Run("valid state", func(t *testing.T) {
		state := forexState("EUR/USD", 1.1000, 1.0950)
		v := ValidateInputs(state, cat)
		assert.True(t, v.IsValid)
		assert.Empty(t, v.Message)
	})
}
