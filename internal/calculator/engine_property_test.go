package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"tradingdesk/internal/catalog"
	"tradingdesk/internal/models"
)

// Property: for any balance and risk percentage, the risk amount is exactly
// balance * risk / 100, independent of everything else in the state.
func TestProperty_RiskAmountIsBalanceFraction(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	cat := catalog.NewDefault()
	inst, _ := cat.Find("EUR/USD", models.MarketForex)

	properties.Property("risk amount equals balance * risk / 100", prop.ForAll(
		func(balance, risk, entry, stop float64) bool {
			state := DefaultState()
			state.Instrument = "EUR/USD"
			state.AccountBalance = balance
			state.RiskPercentage = risk
			state.EntryPrice = entry
			state.StopLossPrice = stop

			result := ComputeSize(state, &inst)
			want := balance * risk / 100
			return math.Abs(result.RiskAmount-want) < 1e-6
		},
		gen.Float64Range(100, 1e7),
		gen.Float64Range(0.01, 100),
		gen.Float64Range(0.5, 2.0),
		gen.Float64Range(0.5, 2.0),
	))

	properties.TestingRun(t)
}

// Property: every result field except RiskRewardRatio is finite for any
// state with positive prices, including a zero stop distance.
func TestProperty_GuardedFieldsNeverNaN(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	cat := catalog.NewDefault()

	finite := func(v float64) bool {
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	}

	properties.Property("guarded fields stay finite", prop.ForAll(
		func(symbolIdx int, balance, risk, entry, stop float64) bool {
			instruments := cat.List(models.MarketForex)
			inst := instruments[symbolIdx%len(instruments)]

			state := DefaultState()
			state.Instrument = inst.Symbol
			state.AccountBalance = balance
			state.RiskPercentage = risk
			state.EntryPrice = entry
			state.StopLossPrice = stop
			state.TakeProfitLevels = []models.TakeProfitLevel{{Price: entry * 1.01, Percentage: 100}}

			result := ComputeSize(state, &inst)
			return finite(result.Size) &&
				finite(result.RiskAmount) &&
				finite(result.PipValue) &&
				finite(result.Margin) &&
				finite(result.PotentialProfit) &&
				finite(result.Commission) &&
				finite(result.TotalCost)
		},
		gen.IntRange(0, 100),
		gen.Float64Range(0, 1e6),
		gen.Float64Range(0, 100),
		gen.Float64Range(0, 200),
		gen.Float64Range(0, 200),
	))

	properties.TestingRun(t)
}

// Property: a valid forex setup with a real stop distance always yields a
// strictly positive size, and the size scales linearly with risk.
func TestProperty_ForexSizePositiveAndLinearInRisk(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	cat := catalog.NewDefault()
	inst, _ := cat.Find("EUR/USD", models.MarketForex)

	properties.Property("size positive and linear in risk", prop.ForAll(
		func(balance, risk, entry, dist float64) bool {
			state := DefaultState()
			state.Instrument = "EUR/USD"
			state.AccountBalance = balance
			state.RiskPercentage = risk
			state.EntryPrice = entry
			state.StopLossPrice = entry - dist

			single := ComputeSize(state, &inst)

			state.RiskPercentage = risk * 2
			double := ComputeSize(state, &inst)

			return single.Size > 0 &&
				math.Abs(double.Size-2*single.Size) < 1e-6*math.Max(1, single.Size)
		},
		gen.Float64Range(1000, 1e6),
		gen.Float64Range(0.1, 5),
		gen.Float64Range(1.0, 1.5),
		gen.Float64Range(0.001, 0.05),
	))

	properties.TestingRun(t)
}
