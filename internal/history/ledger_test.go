package history

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func discard() *log.Logger { return log.New(io.Discard, "", 0) }

func TestStoreLoad_MissingFileYieldsEmptyLedger(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope", "history.json"), discard())
	l := s.Load()
	if len(l.Entries) != 0 {
		t.Fatalf("expected empty ledger, got %d entries", len(l.Entries))
	}
}

func TestStoreLoad_MalformedFileYieldsEmptyLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewStore(path, discard()).Load()
	if len(l.Entries) != 0 {
		t.Fatalf("expected empty ledger, got %d entries", len(l.Entries))
	}
}

func TestStoreSave_CreatesParentDirAndRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "history.json")
	s := NewStore(path, discard())

	l := &Ledger{}
	l.Append("async-streams", time.Date(2026, 8, 19, 12, 0, 0, 0, time.UTC))
	l.Append("async-streams", time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))
	if err := s.Save(l); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got := s.Load()
	if len(got.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got.Entries))
	}
	if got.Entries[0].TopicID != "async-streams" {
		t.Fatalf("unexpected topic id %q", got.Entries[0].TopicID)
	}
}

func TestLedgerUsedWithin(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	l := &Ledger{}
	l.Append("old-topic", now.AddDate(0, 0, -40))
	l.Append("recent-topic", now.AddDate(0, 0, -10))

	cutoff := now.AddDate(0, 0, -30)
	if l.UsedWithin("old-topic", cutoff) {
		t.Fatal("old entry should be outside the window")
	}
	if !l.UsedWithin("recent-topic", cutoff) {
		t.Fatal("recent entry should be inside the window")
	}
	if l.UsedWithin("never-used", cutoff) {
		t.Fatal("unknown id should not match")
	}
}
