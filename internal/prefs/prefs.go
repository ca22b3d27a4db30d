// Package prefs persists the user preference blob: default session, favorite
// markets, watchlists, quick-stats layout, and theme.
package prefs

import (
	"encoding/json"

	"tradingdesk/internal/models"
	"tradingdesk/internal/store"
	"tradingdesk/pkg/id"
)

// Store owns the preference blob. Like the other desk stores, every mutation
// writes the whole blob back; a missing or unparsable stored value falls
// back to defaults.
type Store struct {
	kv    store.KeyValue
	prefs models.UserPreferences
}

// Defaults returns the out-of-the-box preferences.
func Defaults() models.UserPreferences {
	return models.UserPreferences{
		DefaultSession:  models.SessionUS,
		FavoriteMarkets: []models.MarketSession{models.SessionUS, models.SessionCrypto},
		Watchlists: []models.Watchlist{
			{ID: "default", Name: "Default Watchlist", Instruments: []string{"AAPL", "MSFT", "GOOGL"}},
		},
		QuickStats: models.QuickStatsPrefs{
			Enabled: []string{"volume", "volatility", "sentiment", "performance"},
			Order:   []string{"volume", "volatility", "sentiment", "performance"},
		},
		Theme: "system",
	}
}

// NewStore loads preferences from kv, falling back to Defaults. The default
// session also lives under its own key; when present it wins over the blob.
func NewStore(kv store.KeyValue) *Store {
	s := &Store{kv: kv, prefs: Defaults()}
	if raw, ok := kv.Get(store.KeyUserPreferences); ok {
		var loaded models.UserPreferences
		if err := json.Unmarshal([]byte(raw), &loaded); err == nil {
			s.prefs = loaded
		}
	}
	if raw, ok := kv.Get(store.KeyDefaultSession); ok && raw != "" {
		s.prefs.DefaultSession = models.MarketSession(raw)
	}
	return s
}

// Get returns the current preferences.
func (s *Store) Get() models.UserPreferences {
	return s.prefs
}

// SetDefaultSession sets the session shown on the dashboard by default.
func (s *Store) SetDefaultSession(session models.MarketSession) error {
	s.prefs.DefaultSession = session
	if err := s.kv.Set(store.KeyDefaultSession, string(session)); err != nil {
		return err
	}
	return s.persist()
}

// SetTheme sets the UI theme preference.
func (s *Store) SetTheme(theme string) error {
	s.prefs.Theme = theme
	return s.persist()
}

// ToggleFavoriteMarket adds the market to the favorites, or removes it when
// already present.
func (s *Store) ToggleFavoriteMarket(market models.MarketSession) error {
	for i, m := range s.prefs.FavoriteMarkets {
		if m == market {
			s.prefs.FavoriteMarkets = append(s.prefs.FavoriteMarkets[:i], s.prefs.FavoriteMarkets[i+1:]...)
			return s.persist()
		}
	}
	s.prefs.FavoriteMarkets = append(s.prefs.FavoriteMarkets, market)
	return s.persist()
}

// AddWatchlist creates a new empty watchlist and returns it.
func (s *Store) AddWatchlist(name string) (models.Watchlist, error) {
	w := models.Watchlist{ID: id.New(), Name: name, Instruments: []string{}}
	s.prefs.Watchlists = append(s.prefs.Watchlists, w)
	if err := s.persist(); err != nil {
		return models.Watchlist{}, err
	}
	return w, nil
}

// UpdateWatchlist replaces a watchlist's instrument set. Unknown ids are a
// silent no-op.
func (s *Store) UpdateWatchlist(watchlistID string, instruments []string) error {
	for i := range s.prefs.Watchlists {
		if s.prefs.Watchlists[i].ID == watchlistID {
			s.prefs.Watchlists[i].Instruments = append([]string(nil), instruments...)
			return s.persist()
		}
	}
	return nil
}

// RemoveWatchlist deletes a watchlist by id. Unknown ids are a silent no-op.
func (s *Store) RemoveWatchlist(watchlistID string) error {
	for i := range s.prefs.Watchlists {
		if s.prefs.Watchlists[i].ID == watchlistID {
			s.prefs.Watchlists = append(s.prefs.Watchlists[:i], s.prefs.Watchlists[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// SetQuickStats updates which quick stats show and in what order.
func (s *Store) SetQuickStats(enabled, order []string) error {
	s.prefs.QuickStats = models.QuickStatsPrefs{
		Enabled: append([]string(nil), enabled...),
		Order:   append([]string(nil), order...),
	}
	return s.persist()
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.prefs)
	if err != nil {
		return err
	}
	return s.kv.Set(store.KeyUserPreferences, string(data))
}
