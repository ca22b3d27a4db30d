// Package store provides the key-value persistence layer the desk stores
// write through. Collections are serialized as JSON strings under fixed keys.
package store

import "sync"

// Well-known keys. Each collection owns exactly one key and rewrites it in
// full on every mutation.
const (
	KeyTradeJournal      = "tradeJournal"
	KeyCalcTemplates     = "calculatorTemplates"
	KeyUserPreferences   = "userPreferences"
	KeyPsychologyEntries = "psychologyEntries"
	KeyStrategies        = "strategies"
	KeyStrategyIdeas     = "strategyIdeas"
	KeyDefaultSession    = "defaultSession"
)

// KeyValue is the persistence contract the stores depend on. Absence is
// reported via the bool, never as an error; callers treat a missing or
// unparsable value as an empty collection.
type KeyValue interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// MemoryKV is an in-process KeyValue used in tests and as a fallback when no
// database path is configured.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
