package models

// MarketType identifies which market an instrument trades in.
type MarketType string

const (
	MarketForex   MarketType = "forex"
	MarketStocks  MarketType = "stocks"
	MarketCrypto  MarketType = "crypto"
	MarketFutures MarketType = "futures"
	MarketOptions MarketType = "options"
)

// MarketTypes lists all supported markets in display order.
var MarketTypes = []MarketType{MarketForex, MarketStocks, MarketCrypto, MarketFutures, MarketOptions}

// Valid reports whether mt is a known market type.
func (mt MarketType) Valid() bool {
	switch mt {
	case MarketForex, MarketStocks, MarketCrypto, MarketFutures, MarketOptions:
		return true
	}
	return false
}

// Instrument is immutable reference data for a tradable symbol.
// Sizing-relevant metadata (PipValue, ContractSize, Multiplier) is only
// populated for the markets it applies to; zero means "not defined".
type Instrument struct {
	Symbol       string     `json:"symbol"`
	Name         string     `json:"name"`
	Type         MarketType `json:"type"`
	MinSize      float64    `json:"minSize"`
	MaxSize      float64    `json:"maxSize"`
	PipValue     float64    `json:"pipValue,omitempty"`
	ContractSize float64    `json:"contractSize,omitempty"`
	TickSize     float64    `json:"tickSize,omitempty"`
	Multiplier   float64    `json:"multiplier,omitempty"`
}
