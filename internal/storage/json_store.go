package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/hkhosravani/sleepbetter/internal/models"
)

type Store struct {
	Version int                     `json:"version"`
	Profile models.Profile          `json:"profile"`
	Entries map[string]models.Entry `json:"entries"` // date -> entry
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Entries: make(map[string]models.Entry),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'sleepbetter init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Entries == nil {
		s.store.Entries = make(map[string]models.Entry)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save writes to a temp file in the same directory and renames it over the
// target, so a crash mid-write never leaves a truncated store.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetProfile() (models.Profile, error) {
	if s.store == nil {
		return models.Profile{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Profile, nil
}

func (s *JSONStore) SaveProfile(profile models.Profile) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Profile = profile
	return s.save()
}

// UpsertEntry inserts or replaces the entry for its date. On replace the
// original ID and CreatedAt are preserved.
func (s *JSONStore) UpsertEntry(entry models.Entry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if existing, ok := s.store.Entries[entry.Date]; ok {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
		entry.UpdatedAt = time.Now().UTC()
	}

	s.store.Entries[entry.Date] = entry
	return s.save()
}

func (s *JSONStore) GetEntry(date string) (models.Entry, error) {
	if s.store == nil {
		return models.Entry{}, fmt.Errorf("storage not loaded")
	}

	entry, ok := s.store.Entries[date]
	if !ok {
		return models.Entry{}, fmt.Errorf("no entry found for date: %s", date)
	}

	return entry, nil
}

func (s *JSONStore) GetAllEntries() ([]models.Entry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	entries := make([]models.Entry, 0, len(s.store.Entries))
	for _, entry := range s.store.Entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})

	return entries, nil
}

func (s *JSONStore) GetEntriesSince(date string) ([]models.Entry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var entries []models.Entry
	for _, entry := range s.store.Entries {
		if entry.Date >= date {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})

	return entries, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
