package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hkhosravani/sleepbetter/internal/models"
)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sleepbetter.json")
	s := NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return s
}

func testEntry(date string, hours float64) models.Entry {
	now := time.Now().UTC()
	return models.Entry{
		ID:        uuid.NewString(),
		Date:      date,
		Hours:     hours,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestJSONStoreInitTwice(t *testing.T) {
	s := newTestStore(t)

	if err := NewJSONStore(s.GetConfigPath()).Init(); err == nil {
		t.Error("expected error initializing over existing storage")
	}
}

func TestJSONStoreLoadMissing(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := s.Load(); err == nil {
		t.Error("expected error loading uninitialized storage")
	}
}

func TestJSONStoreUpsertEntry(t *testing.T) {
	s := newTestStore(t)

	first := testEntry("2025-01-01", 6.5)
	if err := s.UpsertEntry(first); err != nil {
		t.Fatalf("UpsertEntry: %v", err)
	}

	got, err := s.GetEntry("2025-01-01")
	if err != nil {
		t.Fatalf("GetEntry: %v", err)
	}
	if got.Hours != 6.5 {
		t.Errorf("Hours = %v, want 6.5", got.Hours)
	}

	// Re-logging the same date replaces hours but keeps identity.
	second := testEntry("2025-01-01", 8.0)
	if err := s.UpsertEntry(second); err != nil {
		t.Fatalf("UpsertEntry (replace): %v", err)
	}

	got, err = s.GetEntry("2025-01-01")
	if err != nil {
		t.Fatalf("GetEntry after replace: %v", err)
	}
	if got.Hours != 8.0 {
		t.Errorf("Hours = %v, want 8.0", got.Hours)
	}
	if got.ID != first.ID {
		t.Errorf("replace changed entry ID from %s to %s", first.ID, got.ID)
	}
	if !got.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("replace changed CreatedAt from %v to %v", first.CreatedAt, got.CreatedAt)
	}

	all, err := s.GetAllEntries()
	if err != nil {
		t.Fatalf("GetAllEntries: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 entry after upsert, got %d", len(all))
	}
}

func TestJSONStoreGetEntryMissing(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.GetEntry("2025-01-01"); err == nil {
		t.Error("expected error for missing entry")
	}
}

func TestJSONStoreGetAllEntriesSorted(t *testing.T) {
	s := newTestStore(t)

	for _, d := range []string{"2025-01-03", "2025-01-01", "2025-01-02"} {
		if err := s.UpsertEntry(testEntry(d, 7)); err != nil {
			t.Fatalf("UpsertEntry %s: %v", d, err)
		}
	}

	all, err := s.GetAllEntries()
	if err != nil {
		t.Fatalf("GetAllEntries: %v", err)
	}
	want := []string{"2025-01-01", "2025-01-02", "2025-01-03"}
	if len(all) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(all))
	}
	for i, e := range all {
		if e.Date != want[i] {
			t.Errorf("entries[%d].Date = %s, want %s", i, e.Date, want[i])
		}
	}
}

func TestJSONStoreGetEntriesSince(t *testing.T) {
	s := newTestStore(t)

	for _, d := range []string{"2025-01-01", "2025-01-05", "2025-01-10"} {
		if err := s.UpsertEntry(testEntry(d, 7)); err != nil {
			t.Fatalf("UpsertEntry %s: %v", d, err)
		}
	}

	since, err := s.GetEntriesSince("2025-01-05")
	if err != nil {
		t.Fatalf("GetEntriesSince: %v", err)
	}
	if len(since) != 2 {
		t.Fatalf("expected 2 entries since 2025-01-05, got %d", len(since))
	}
	if since[0].Date != "2025-01-05" || since[1].Date != "2025-01-10" {
		t.Errorf("unexpected entries: %v, %v", since[0].Date, since[1].Date)
	}
}

func TestJSONStoreProfilePersists(t *testing.T) {
	s := newTestStore(t)

	profile := models.Profile{Name: "Hediyeh", Age: 30, Target: 7.5, WakeTime: 6.5}
	if err := s.SaveProfile(profile); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if err := s.UpsertEntry(testEntry("2025-01-01", 7)); err != nil {
		t.Fatalf("UpsertEntry: %v", err)
	}

	// Reopen from disk.
	reopened := NewJSONStore(s.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	got, err := reopened.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.Name != "Hediyeh" || got.Target != 7.5 || got.WakeTime != 6.5 {
		t.Errorf("profile did not survive reload: %+v", got)
	}

	all, err := reopened.GetAllEntries()
	if err != nil {
		t.Fatalf("GetAllEntries: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 entry after reload, got %d", len(all))
	}
}
