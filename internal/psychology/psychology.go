// Package psychology tracks trading mindset entries and correlates them with
// journal outcomes.
package psychology

import (
	"encoding/json"
	"time"

	"tradingdesk/internal/models"
	"tradingdesk/internal/store"
	"tradingdesk/pkg/id"
)

// Store owns the psychology entry collection, persisted in full on every
// mutation under its fixed key.
type Store struct {
	kv      store.KeyValue
	entries []models.PsychologyEntry
}

// NewStore loads the tracker from kv.
func NewStore(kv store.KeyValue) *Store {
	s := &Store{kv: kv}
	if raw, ok := kv.Get(store.KeyPsychologyEntries); ok {
		if err := json.Unmarshal([]byte(raw), &s.entries); err != nil {
			s.entries = nil
		}
	}
	return s
}

// Add records a new entry; its ID and Timestamp are assigned here.
func (s *Store) Add(entry models.PsychologyEntry) (models.PsychologyEntry, error) {
	entry.ID = id.New()
	entry.Timestamp = time.Now().UTC()
	s.entries = append(s.entries, entry)
	if err := s.persist(); err != nil {
		return models.PsychologyEntry{}, err
	}
	return entry, nil
}

// Remove deletes an entry by id. Unknown ids are a silent no-op.
func (s *Store) Remove(entryID string) error {
	for i, e := range s.entries {
		if e.ID == entryID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// All returns every entry in insertion order.
func (s *Store) All() []models.PsychologyEntry {
	out := make([]models.PsychologyEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// ByMood returns the entries tagged with the given mood.
func (s *Store) ByMood(mood models.Mood) []models.PsychologyEntry {
	var out []models.PsychologyEntry
	for _, e := range s.entries {
		if e.Mood == mood {
			out = append(out, e)
		}
	}
	return out
}

// MoodPatterns aggregates journal outcomes per mood. Each entry that links
// to a closed journal trade contributes that trade's PnL to its mood bucket;
// entries with no linked trade still count toward the bucket's entry total
// but carry no outcome.
func (s *Store) MoodPatterns(trades []models.TradeEntry) []models.MoodPattern {
	byID := make(map[string]models.TradeEntry, len(trades))
	for _, t := range trades {
		byID[t.ID] = t
	}

	type bucket struct {
		entries int
		closed  int
		wins    int
		pnlSum  float64
	}
	buckets := make(map[models.Mood]*bucket)
	var order []models.Mood

	for _, e := range s.entries {
		b, ok := buckets[e.Mood]
		if !ok {
			b = &bucket{}
			buckets[e.Mood] = b
			order = append(order, e.Mood)
		}
		b.entries++

		t, linked := byID[e.TradeID]
		if !linked || t.Status != models.StatusClosed {
			continue
		}
		b.closed++
		b.pnlSum += t.PnL
		if t.PnL > 0 {
			b.wins++
		}
	}

	out := make([]models.MoodPattern, 0, len(order))
	for _, mood := range order {
		b := buckets[mood]
		p := models.MoodPattern{Mood: mood, TotalTrades: b.entries}
		if b.closed > 0 {
			p.WinRate = float64(b.wins) / float64(b.closed) * 100
			p.AverageProfit = b.pnlSum / float64(b.closed)
		}
		out = append(out, p)
	}
	return out
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return err
	}
	return s.kv.Set(store.KeyPsychologyEntries, string(data))
}
