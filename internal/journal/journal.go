// Package journal provides the trade journal: a persisted collection of
// trade records with filtered views and aggregate statistics.
package journal

import (
	"encoding/json"
	"time"

	"tradingdesk/internal/models"
	"tradingdesk/internal/store"
	"tradingdesk/pkg/id"
)

// Store owns the journal's trade collection. Every mutation synchronously
// rewrites the whole collection to the key-value store; loading tolerates a
// missing or malformed stored value by starting empty.
type Store struct {
	kv     store.KeyValue
	trades []models.TradeEntry
}

// NewStore loads the journal from kv.
func NewStore(kv store.KeyValue) *Store {
	s := &Store{kv: kv}
	if raw, ok := kv.Get(store.KeyTradeJournal); ok {
		if err := json.Unmarshal([]byte(raw), &s.trades); err != nil {
			s.trades = nil
		}
	}
	return s
}

// Add records a new trade. The entry's ID, CreatedAt and UpdatedAt are
// assigned here; any values the caller put in those fields are ignored.
func (s *Store) Add(entry models.TradeEntry) (models.TradeEntry, error) {
	now := time.Now().UTC()
	entry.ID = id.New()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	if entry.Status == "" {
		entry.Status = models.StatusOpen
	}

	s.trades = append(s.trades, entry)
	if err := s.persist(); err != nil {
		return models.TradeEntry{}, err
	}
	return entry, nil
}

// TradeUpdate names the fields Update may change. Nil pointers (and nil
// slices) leave the current value untouched. Status is deliberately absent:
// lifecycle transitions go through CloseTrade and CancelTrade.
type TradeUpdate struct {
	StopLoss       *float64
	TakeProfit     *float64
	Strategy       *string
	Setup          *models.TradeSetup
	Timeframe      *string
	EmotionalState *models.EmotionalState
	PreTradeNotes  *string
	PostTradeNotes *string
	Tags           []string
	Rating         *int
	Mistakes       []string
	Lessons        []string
}

// Update applies the named field changes to a trade and persists. An unknown
// id is a silent no-op.
func (s *Store) Update(tradeID string, upd TradeUpdate) error {
	i := s.indexOf(tradeID)
	if i < 0 {
		return nil
	}

	t := &s.trades[i]
	if upd.StopLoss != nil {
		t.StopLoss = *upd.StopLoss
	}
	if upd.TakeProfit != nil {
		t.TakeProfit = *upd.TakeProfit
	}
	if upd.Strategy != nil {
		t.Strategy = *upd.Strategy
	}
	if upd.Setup != nil {
		t.Setup = *upd.Setup
	}
	if upd.Timeframe != nil {
		t.Timeframe = *upd.Timeframe
	}
	if upd.EmotionalState != nil {
		t.EmotionalState = *upd.EmotionalState
	}
	if upd.PreTradeNotes != nil {
		t.PreTradeNotes = *upd.PreTradeNotes
	}
	if upd.PostTradeNotes != nil {
		t.PostTradeNotes = *upd.PostTradeNotes
	}
	if upd.Tags != nil {
		t.Tags = append([]string(nil), upd.Tags...)
	}
	if upd.Rating != nil {
		t.Rating = *upd.Rating
	}
	if upd.Mistakes != nil {
		t.Mistakes = append([]string(nil), upd.Mistakes...)
	}
	if upd.Lessons != nil {
		t.Lessons = append([]string(nil), upd.Lessons...)
	}
	t.UpdatedAt = time.Now().UTC()

	return s.persist()
}

// CloseTrade moves an open trade to closed, recording the exit and deriving
// realized PnL. Missing ids and trades already in a terminal state are a
// silent no-op (ok=false).
func (s *Store) CloseTrade(tradeID string, exitPrice float64, exitTime time.Time) (models.TradeEntry, bool, error) {
	i := s.indexOf(tradeID)
	if i < 0 || s.trades[i].Status != models.StatusOpen {
		return models.TradeEntry{}, false, nil
	}

	t := &s.trades[i]
	t.Status = models.StatusClosed
	t.ExitPrice = exitPrice
	t.ExitTime = &exitTime
	t.PnL = realizedPnL(*t, exitPrice)
	if invested := t.EntryPrice * t.Size; invested != 0 {
		t.PnLPercent = (t.PnL / invested) * 100
	}
	t.UpdatedAt = time.Now().UTC()

	if err := s.persist(); err != nil {
		return models.TradeEntry{}, false, err
	}
	return *t, true, nil
}

// CancelTrade moves an open trade to cancelled. No PnL is recorded.
// Missing ids and terminal trades are a silent no-op (ok=false).
func (s *Store) CancelTrade(tradeID string) (models.TradeEntry, bool, error) {
	i := s.indexOf(tradeID)
	if i < 0 || s.trades[i].Status != models.StatusOpen {
		return models.TradeEntry{}, false, nil
	}

	t := &s.trades[i]
	t.Status = models.StatusCancelled
	t.UpdatedAt = time.Now().UTC()

	if err := s.persist(); err != nil {
		return models.TradeEntry{}, false, err
	}
	return *t, true, nil
}

// Remove deletes a trade record in any state. Unknown ids are a silent no-op.
func (s *Store) Remove(tradeID string) error {
	i := s.indexOf(tradeID)
	if i < 0 {
		return nil
	}
	s.trades = append(s.trades[:i], s.trades[i+1:]...)
	return s.persist()
}

// Get returns a trade by id.
func (s *Store) Get(tradeID string) (models.TradeEntry, bool) {
	i := s.indexOf(tradeID)
	if i < 0 {
		return models.TradeEntry{}, false
	}
	return s.trades[i], true
}

// All returns every trade in insertion order.
func (s *Store) All() []models.TradeEntry {
	out := make([]models.TradeEntry, len(s.trades))
	copy(out, s.trades)
	return out
}

// ApplyFilters returns the trades matching all set filter dimensions.
// Within a multi-value dimension any match suffices.
func (s *Store) ApplyFilters(f models.JournalFilters) []models.TradeEntry {
	var out []models.TradeEntry
	for _, t := range s.trades {
		if matches(t, f) {
			out = append(out, t)
		}
	}
	return out
}

func matches(t models.TradeEntry, f models.JournalFilters) bool {
	if f.DateFrom != nil && t.EntryTime.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && t.EntryTime.After(*f.DateTo) {
		return false
	}
	if len(f.Symbols) > 0 && !containsString(f.Symbols, t.Symbol) {
		return false
	}
	if len(f.Setups) > 0 && !containsSetup(f.Setups, t.Setup) {
		return false
	}
	if len(f.Status) > 0 && !containsStatus(f.Status, t.Status) {
		return false
	}
	if len(f.EmotionalStates) > 0 && !containsEmotion(f.EmotionalStates, t.EmotionalState) {
		return false
	}
	if len(f.Tags) > 0 && !anyTagMatch(f.Tags, t.Tags) {
		return false
	}
	if f.PnLMin != nil && t.PnL < *f.PnLMin {
		return false
	}
	if f.PnLMax != nil && t.PnL > *f.PnLMax {
		return false
	}
	return true
}

func containsString(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsSetup(list []models.TradeSetup, v models.TradeSetup) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsStatus(list []models.TradeStatus, v models.TradeStatus) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsEmotion(list []models.EmotionalState, v models.EmotionalState) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func anyTagMatch(want, have []string) bool {
	for _, w := range want {
		if containsString(have, w) {
			return true
		}
	}
	return false
}

// realizedPnL computes gross PnL for the exit price net of the trade's
// recorded commission.
func realizedPnL(t models.TradeEntry, exitPrice float64) float64 {
	move := exitPrice - t.EntryPrice
	if t.Direction == models.DirectionShort {
		move = t.EntryPrice - exitPrice
	}
	return move*t.Size - t.Commission
}

func (s *Store) indexOf(tradeID string) int {
	for i, t := range s.trades {
		if t.ID == tradeID {
			return i
		}
	}
	return -1
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.trades)
	if err != nil {
		return err
	}
	return s.kv.Set(store.KeyTradeJournal, string(data))
}
