package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// LogStore holds all log entries in memory for the UI. It is thread-safe.
type LogStore struct {
	mu      sync.RWMutex
	entries []LogEntry
}

func newLogStore() *LogStore {
	return &LogStore{
		entries: make([]LogEntry, 0, 256),
	}
}

// Add appends a new entry to the store.
func (s *LogStore) Add(entry LogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

// GetAll returns a copy of all log entries.
func (s *LogStore) GetAll() []LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entriesCopy := make([]LogEntry, len(s.entries))
	copy(entriesCopy, s.entries)
	return entriesCopy
}

// Len returns the number of stored entries.
func (s *LogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Counts returns the number of warning and error entries.
func (s *LogStore) Counts() (warnings, errors int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, entry := range s.entries {
		switch entry.Level {
		case LevelWarn:
			warnings++
		case LevelError:
			errors++
		}
	}
	return
}

// storeHook copies every entry that passes the logger's level into the store.
type storeHook struct {
	store *LogStore
}

func (h storeHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h storeHook) Fire(e *logrus.Entry) error {
	h.store.Add(LogEntry{
		Timestamp: e.Time,
		Level:     levelFromLogrus(e.Level),
		Message:   e.Message,
	})
	return nil
}
