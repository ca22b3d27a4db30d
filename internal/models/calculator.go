package models

// Currency is an account denomination currency.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyCHF Currency = "CHF"
	CurrencyAUD Currency = "AUD"
	CurrencyCAD Currency = "CAD"
	CurrencyNZD Currency = "NZD"
)

// StopLossUnit is the unit a stop-loss distance is expressed in.
type StopLossUnit string

const (
	UnitPips    StopLossUnit = "pips"
	UnitPoints  StopLossUnit = "points"
	UnitDollars StopLossUnit = "dollars"
	UnitPercent StopLossUnit = "percent"
)

// TakeProfitLevel is one partial-exit target. Percentage is the share of the
// position closed at this level; levels are not required to sum to 100.
type TakeProfitLevel struct {
	Price      float64 `json:"price"`
	Percentage float64 `json:"percentage"`
}

// CalculatorState is the full input set of one position-size calculation.
// It is owned by a single calculator session and never persisted directly;
// saving a Template snapshots a subset of it.
type CalculatorState struct {
	MarketType       MarketType        `json:"marketType"`
	AccountCurrency  Currency          `json:"accountCurrency"`
	AccountBalance   float64           `json:"accountBalance"`
	CustomBalance    *float64          `json:"customBalance"`
	RiskPercentage   float64           `json:"riskPercentage"`
	StopLoss         float64           `json:"stopLoss"`
	StopLossUnit     StopLossUnit      `json:"stopLossUnit"`
	EntryPrice       float64           `json:"entryPrice"`
	StopLossPrice    float64           `json:"stopLossPrice"`
	TakeProfitLevels []TakeProfitLevel `json:"takeProfitLevels"`
	Leverage         float64           `json:"leverage"`
	Instrument       string            `json:"instrument"`
	Commission       float64           `json:"commission"`
	Spread           float64           `json:"spread"`
	Slippage         float64           `json:"slippage"`
}

// Balance returns the effective account balance: the custom override when
// set, otherwise the configured account balance.
func (s CalculatorState) Balance() float64 {
	if s.CustomBalance != nil {
		return *s.CustomBalance
	}
	return s.AccountBalance
}

// PositionSizeResult is derived from a CalculatorState and a resolved
// instrument. It is recomputed on every state change and never stored.
//
// RiskRewardRatio is intentionally unguarded: it may be Inf or NaN when
// RiskAmount is zero, and display layers are responsible for guarding it.
type PositionSizeResult struct {
	Size            float64 `json:"size"`
	RiskAmount      float64 `json:"riskAmount"`
	PipValue        float64 `json:"pipValue,omitempty"`
	Margin          float64 `json:"margin"`
	PotentialProfit float64 `json:"potentialProfit"`
	RiskRewardRatio float64 `json:"riskRewardRatio"`
	Commission      float64 `json:"commission"`
	TotalCost       float64 `json:"totalCost"`
}

// Template is a saved partial calculator setup.
type Template struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	MarketType MarketType       `json:"marketType"`
	Settings   TemplateSettings `json:"settings"`
}

// TemplateSettings is the subset of CalculatorState a template snapshots.
// Pointer fields distinguish "not captured" from a captured zero.
type TemplateSettings struct {
	MarketType       *MarketType       `json:"marketType,omitempty"`
	AccountCurrency  *Currency         `json:"accountCurrency,omitempty"`
	RiskPercentage   *float64          `json:"riskPercentage,omitempty"`
	StopLoss         *float64          `json:"stopLoss,omitempty"`
	StopLossUnit     *StopLossUnit     `json:"stopLossUnit,omitempty"`
	TakeProfitLevels []TakeProfitLevel `json:"takeProfitLevels,omitempty"`
	Leverage         *float64          `json:"leverage,omitempty"`
	Instrument       *string           `json:"instrument,omitempty"`
	Commission       *float64          `json:"commission,omitempty"`
	Spread           *float64          `json:"spread,omitempty"`
	Slippage         *float64          `json:"slippage,omitempty"`
}

// ValidationResult reports whether calculator inputs are usable.
// Validation never blocks computation; callers decide what to do with it.
type ValidationResult struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message,omitempty"`
}
