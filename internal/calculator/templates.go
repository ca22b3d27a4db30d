package calculator

import (
	"encoding/json"

	"tradingdesk/internal/models"
	"tradingdesk/internal/store"
	"tradingdesk/pkg/id"
)

// TemplateStore persists saved calculator setups. The full template list is
// rewritten to the key-value store on every mutation; a missing or
// unparsable stored value loads as an empty list.
type TemplateStore struct {
	kv        store.KeyValue
	templates []models.Template
}

// NewTemplateStore loads the template list from kv.
func NewTemplateStore(kv store.KeyValue) *TemplateStore {
	s := &TemplateStore{kv: kv}
	if raw, ok := kv.Get(store.KeyCalcTemplates); ok {
		if err := json.Unmarshal([]byte(raw), &s.templates); err != nil {
			s.templates = nil
		}
	}
	return s
}

// List returns all saved templates in save order.
func (s *TemplateStore) List() []models.Template {
	out := make([]models.Template, len(s.templates))
	copy(out, s.templates)
	return out
}

// Find returns the template with the given id.
func (s *TemplateStore) Find(templateID string) (models.Template, bool) {
	for _, t := range s.templates {
		if t.ID == templateID {
			return t, true
		}
	}
	return models.Template{}, false
}

// Save snapshots the given state under a name and persists it. The returned
// template carries its assigned id.
func (s *TemplateStore) Save(name string, state models.CalculatorState) (models.Template, error) {
	tpl := models.Template{
		ID:         id.New(),
		Name:       name,
		MarketType: state.MarketType,
		Settings:   SnapshotSettings(state),
	}
	s.templates = append(s.templates, tpl)
	if err := s.persist(); err != nil {
		return models.Template{}, err
	}
	return tpl, nil
}

// Remove deletes a template by id. Unknown ids are a silent no-op.
func (s *TemplateStore) Remove(templateID string) error {
	for i, t := range s.templates {
		if t.ID == templateID {
			s.templates = append(s.templates[:i], s.templates[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

func (s *TemplateStore) persist() error {
	data, err := json.Marshal(s.templates)
	if err != nil {
		return err
	}
	return s.kv.Set(store.KeyCalcTemplates, string(data))
}

// SnapshotSettings captures the template-relevant fields of a state.
func SnapshotSettings(state models.CalculatorState) models.TemplateSettings {
	levels := make([]models.TakeProfitLevel, len(state.TakeProfitLevels))
	copy(levels, state.TakeProfitLevels)

	mt := state.MarketType
	cur := state.AccountCurrency
	risk := state.RiskPercentage
	stop := state.StopLoss
	unit := state.StopLossUnit
	lev := state.Leverage
	inst := state.Instrument
	comm := state.Commission
	spread := state.Spread
	slip := state.Slippage

	return models.TemplateSettings{
		MarketType:       &mt,
		AccountCurrency:  &cur,
		RiskPercentage:   &risk,
		StopLoss:         &stop,
		StopLossUnit:     &unit,
		TakeProfitLevels: levels,
		Leverage:         &lev,
		Instrument:       &inst,
		Commission:       &comm,
		Spread:           &spread,
		Slippage:         &slip,
	}
}

// ApplyTemplate merges a template's captured settings over base and returns
// the new state. Fields the template did not capture keep their base values;
// base is not mutated.
func ApplyTemplate(base models.CalculatorState, tpl models.Template) models.CalculatorState {
	out := base
	set := tpl.Settings

	if set.MarketType != nil {
		out.MarketType = *set.MarketType
	}
	if set.AccountCurrency != nil {
		out.AccountCurrency = *set.AccountCurrency
	}
	if set.RiskPercentage != nil {
		out.RiskPercentage = *set.RiskPercentage
	}
	if set.StopLoss != nil {
		out.StopLoss = *set.StopLoss
	}
	if set.StopLossUnit != nil {
		out.StopLossUnit = *set.StopLossUnit
	}
	if set.TakeProfitLevels != nil {
		levels := make([]models.TakeProfitLevel, len(set.TakeProfitLevels))
		copy(levels, set.TakeProfitLevels)
		out.TakeProfitLevels = levels
	}
	if set.Leverage != nil {
		out.Leverage = *set.Leverage
	}
	if set.Instrument != nil {
		out.Instrument = *set.Instrument
	}
	if set.Commission != nil {
		out.Commission = *set.Commission
	}
	if set.Spread != nil {
		out.Spread = *set.Spread
	}
	if set.Slippage != nil {
		out.Slippage = *set.Slippage
	}

	return out
}
