package history

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Entry records one topic id being used at a point in time.
type Entry struct {
	TopicID string    `json:"topic_id"`
	UsedAt  time.Time `json:"used_at"`
}

// Ledger is the append-only record of used topic ids. Duplicate ids are
// expected; recency filtering works by window, not uniqueness.
type Ledger struct {
	Entries []Entry `json:"entries"`
}

// Append adds one usage entry. Entries are never removed or rewritten.
func (l *Ledger) Append(topicID string, usedAt time.Time) {
	l.Entries = append(l.Entries, Entry{TopicID: topicID, UsedAt: usedAt.UTC()})
}

// UsedWithin reports whether topicID appears in the ledger at or after cutoff.
func (l *Ledger) UsedWithin(topicID string, cutoff time.Time) bool {
	for _, e := range l.Entries {
		if e.TopicID == topicID && !e.UsedAt.Before(cutoff) {
			return true
		}
	}
	return false
}

// Store persists the ledger as a JSON file. A single run loads it once at
// start and saves it once at the end; concurrent runs against the same
// file are not supported (the job is deployed as a single scheduled
// process, never concurrently with itself).
type Store struct {
	path   string
	logger *log.Logger
}

func NewStore(path string, logger *log.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load reads the ledger file. A missing or empty file yields an empty
// ledger; malformed content is logged and likewise degrades to an empty
// ledger rather than failing the run.
func (s *Store) Load() *Ledger {
	b, err := os.ReadFile(s.path)
	if err != nil || len(b) == 0 {
		return &Ledger{}
	}
	var l Ledger
	if err := json.Unmarshal(b, &l); err != nil {
		s.logger.Printf("[HISTORY] ledger %s is malformed, starting fresh: %v", s.path, err)
		return &Ledger{}
	}
	return &l
}

// Save writes the ledger, creating any missing parent directory.
func (s *Store) Save(l *Ledger) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}
	b, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}
