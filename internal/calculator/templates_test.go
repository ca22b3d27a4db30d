package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradingdesk/internal/models"
	"tradingdesk/internal/store"
)

func TestTemplateSaveAndReload(t *testing.T) {
	kv := store.NewMemoryKV()
	s := NewTemplateStore(kv)

	state := DefaultState()
	state.Instrument = "EUR/USD"
	state.RiskPercentage = 0.5
	state.Leverage = 50

	saved, err := s.Save("scalp", state)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "scalp", saved.Name)
	assert.Equal(t, models.MarketForex, saved.MarketType)

	// A fresh store over the same kv sees the saved template.
	reloaded := NewTemplateStore(kv)
	got, ok := reloaded.Find(saved.ID)
	require.True(t, ok)
	assert.Equal(t, saved.Name, got.Name)
	require.NotNil(t, got.Settings.RiskPercentage)
	assert.Equal(t, 0.5, *got.Settings.RiskPercentage)
	require.NotNil(t, got.Settings.Leverage)
	assert.Equal(t, 50.0, *got.Settings.Leverage)
}

func TestTemplateRemove(t *testing.T) {
	s := NewTemplateStore(store.NewMemoryKV())

	saved, err := s.Save("tmp", DefaultState())
	require.NoError(t, err)

	require.NoError(t, s.Remove(saved.ID))
	_, ok := s.Find(saved.ID)
	assert.False(t, ok)

	// Removing an unknown id is a silent no-op.
	assert.NoError(t, s.Remove("missing"))
}

func TestTemplateStoreMalformedData(t *testing.T) {
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Set(store.KeyCalcTemplates, "{not json"))

	s := NewTemplateStore(kv)
	assert.Empty(t, s.List())
}

func TestApplyTemplateMergesWithoutMutatingBase(t *testing.T) {
	base := DefaultState()
	base.Instrument = "GBP/USD"
	base.EntryPrice = 1.2650

	risk := 2.0
	lev := 30.0
	tpl := models.Template{
		ID:   "t1",
		Name: "partial",
		Settings: models.TemplateSettings{
			RiskPercentage: &risk,
			Leverage:       &lev,
		},
	}

	out := ApplyTemplate(base, tpl)

	assert.Equal(t, 2.0, out.RiskPercentage)
	assert.Equal(t, 30.0, out.Leverage)
	// Uncaptured fields keep the base values.
	assert.Equal(t, "GBP/USD", out.Instrument)
	assert.Equal(t, 1.2650, out.EntryPrice)
	// The base itself is untouched.
	assert.Equal(t, 1.0, base.RiskPercentage)
	assert.Equal(t, 100.0, base.Leverage)
}

func TestSnapshotRoundTrip(t *testing.T) {
	state := DefaultState()
	state.Instrument = "USD/JPY"
	state.RiskPercentage = 1.5
	state.TakeProfitLevels = []models.TakeProfitLevel{
		{Price: 151.0, Percentage: 60},
		{Price: 152.0, Percentage: 40},
	}

	tpl := models.Template{Settings: SnapshotSettings(state)}
	out := ApplyTemplate(DefaultState(), tpl)

	assert.Equal(t, state.Instrument, out.Instrument)
	assert.Equal(t, state.RiskPercentage, out.RiskPercentage)
	assert.Equal(t, state.TakeProfitLevels, out.TakeProfitLevels)
}
