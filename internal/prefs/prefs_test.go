package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradingdesk/internal/models"
	"tradingdesk/internal/store"
)

func TestDefaults(t *testing.T) {
	s := NewStore(store.NewMemoryKV())

	p := s.Get()
	assert.Equal(t, models.SessionUS, p.DefaultSession)
	assert.Equal(t, []models.MarketSession{models.SessionUS, models.SessionCrypto}, p.FavoriteMarkets)
	assert.Equal(t, "system", p.Theme)
	require.Len(t, p.Watchlists, 1)
	assert.Equal(t, []string{"AAPL", "MSFT", "GOOGL"}, p.Watchlists[0].Instruments)
}

func TestSettersPersist(t *testing.T) {
	kv := store.NewMemoryKV()
	s := NewStore(kv)

	require.NoError(t, s.SetDefaultSession(models.SessionEurope))
	require.NoError(t, s.SetTheme("dark"))

	reloaded := NewStore(kv)
	assert.Equal(t, models.SessionEurope, reloaded.Get().DefaultSession)
	assert.Equal(t, "dark", reloaded.Get().Theme)

	// The default session is mirrored under its own key.
	raw, ok := kv.Get(store.KeyDefaultSession)
	require.True(t, ok)
	assert.Equal(t, "europe", raw)
}

func TestToggleFavoriteMarket(t *testing.T) {
	s := NewStore(store.NewMemoryKV())

	// us is a default favorite; toggling removes it.
	require.NoError(t, s.ToggleFavoriteMarket(models.SessionUS))
	assert.NotContains(t, s.Get().FavoriteMarkets, models.SessionUS)

	// Toggling again adds it back.
	require.NoError(t, s.ToggleFavoriteMarket(models.SessionUS))
	assert.Contains(t, s.Get().FavoriteMarkets, models.SessionUS)
}

func TestWatchlistLifecycle(t *testing.T) {
	s := NewStore(store.NewMemoryKV())

	w, err := s.AddWatchlist("forex majors")
	require.NoError(t, err)
	assert.NotEmpty(t, w.ID)
	assert.Empty(t, w.Instruments)

	require.NoError(t, s.UpdateWatchlist(w.ID, []string{"EUR/USD", "GBP/USD"}))
	for _, got := range s.Get().Watchlists {
		if got.ID == w.ID {
			assert.Equal(t, []string{"EUR/USD", "GBP/USD"}, got.Instruments)
		}
	}

	require.NoError(t, s.RemoveWatchlist(w.ID))
	for _, got := range s.Get().Watchlists {
		assert.NotEqual(t, w.ID, got.ID)
	}

	// Unknown ids are silent no-ops.
	assert.NoError(t, s.UpdateWatchlist("missing", nil))
	assert.NoError(t, s.RemoveWatchlist("missing"))
}

func TestMalformedStoredPrefsFallBackToDefaults(t *testing.T) {
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Set(store.KeyUserPreferences, "not json"))

	s := NewStore(kv)
	assert.Equal(t, Defaults(), s.Get())
}
