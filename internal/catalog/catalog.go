// Package catalog provides the static registry of tradable instruments the
// position-size calculator resolves symbols against.
package catalog

import (
	"strings"

	"tradingdesk/internal/models"
)

// Catalog is an immutable symbol registry keyed by market type.
type Catalog struct {
	byMarket map[models.MarketType][]models.Instrument
}

// NewDefault returns a catalog seeded with the built-in instrument set.
func NewDefault() *Catalog {
	return New(defaultInstruments)
}

// New builds a catalog from the given per-market instrument lists.
func New(instruments map[models.MarketType][]models.Instrument) *Catalog {
	byMarket := make(map[models.MarketType][]models.Instrument, len(instruments))
	for mt, list := range instruments {
		cp := make([]models.Instrument, len(list))
		copy(cp, list)
		byMarket[mt] = cp
	}
	return &Catalog{byMarket: byMarket}
}

// List returns the instruments for a market in catalog order.
func (c *Catalog) List(marketType models.MarketType) []models.Instrument {
	list := c.byMarket[marketType]
	out := make([]models.Instrument, len(list))
	copy(out, list)
	return out
}

// Find looks up an instrument by exact symbol within a market. An unknown
// symbol returns ok=false; unresolved instruments are a normal state for
// callers, not an error.
func (c *Catalog) Find(symbol string, marketType models.MarketType) (models.Instrument, bool) {
	for _, inst := range c.byMarket[marketType] {
		if inst.Symbol == symbol {
			return inst, true
		}
	}
	return models.Instrument{}, false
}

// Search returns instruments in a market whose symbol or name contains the
// query, case-insensitively, in catalog order.
func (c *Catalog) Search(marketType models.MarketType, query string) []models.Instrument {
	term := strings.ToLower(query)
	var out []models.Instrument
	for _, inst := range c.byMarket[marketType] {
		if strings.Contains(strings.ToLower(inst.Symbol), term) ||
			strings.Contains(strings.ToLower(inst.Name), term) {
			out = append(out, inst)
		}
	}
	return out
}
