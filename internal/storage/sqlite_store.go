package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hkhosravani/sleepbetter/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS profile (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	name TEXT NOT NULL DEFAULT '',
	age INTEGER NOT NULL DEFAULT 0,
	birthdate TEXT NOT NULL DEFAULT '',
	target REAL NOT NULL DEFAULT 0,
	wake_time REAL NOT NULL DEFAULT 0,
	notes TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS entries (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL UNIQUE,
	hours REAL NOT NULL,
	bedtime REAL,
	waketime REAL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'sleepbetter init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema statements are idempotent, so an older store gains any
	// missing tables on load.
	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to verify schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetProfile() (models.Profile, error) {
	row := s.db.QueryRow(`
		SELECT name, age, birthdate, target, wake_time, notes
		FROM profile WHERE id = 1`)

	var p models.Profile
	err := row.Scan(&p.Name, &p.Age, &p.Birthdate, &p.Target, &p.WakeTime, &p.Notes)
	if err == sql.ErrNoRows {
		return models.Profile{}, nil
	}
	if err != nil {
		return models.Profile{}, err
	}

	return p, nil
}

func (s *SQLiteStore) SaveProfile(profile models.Profile) error {
	_, err := s.db.Exec(`
		INSERT INTO profile (id, name, age, birthdate, target, wake_time, notes)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			birthdate = excluded.birthdate,
			target = excluded.target,
			wake_time = excluded.wake_time,
			notes = excluded.notes`,
		profile.Name, profile.Age, profile.Birthdate, profile.Target, profile.WakeTime, profile.Notes)
	return err
}

// UpsertEntry inserts or replaces the entry for its date. On conflict the
// existing row keeps its id and created_at.
func (s *SQLiteStore) UpsertEntry(entry models.Entry) error {
	var bedtime, waketime sql.NullFloat64
	if entry.Bedtime != nil {
		bedtime = sql.NullFloat64{Float64: *entry.Bedtime, Valid: true}
	}
	if entry.Waketime != nil {
		waketime = sql.NullFloat64{Float64: *entry.Waketime, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO entries (id, date, hours, bedtime, waketime, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			hours = excluded.hours,
			bedtime = excluded.bedtime,
			waketime = excluded.waketime,
			updated_at = excluded.updated_at`,
		entry.ID, entry.Date, entry.Hours, bedtime, waketime,
		entry.CreatedAt.UTC().Format(time.RFC3339), entry.UpdatedAt.UTC().Format(time.RFC3339))
	return err
}

func (s *SQLiteStore) GetEntry(date string) (models.Entry, error) {
	row := s.db.QueryRow(`
		SELECT id, date, hours, bedtime, waketime, created_at, updated_at
		FROM entries WHERE date = ?`, date)

	entry, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return models.Entry{}, fmt.Errorf("no entry found for date: %s", date)
	}
	return entry, err
}

func (s *SQLiteStore) GetAllEntries() ([]models.Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, date, hours, bedtime, waketime, created_at, updated_at
		FROM entries ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (s *SQLiteStore) GetEntriesSince(date string) ([]models.Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, date, hours, bedtime, waketime, created_at, updated_at
		FROM entries WHERE date >= ? ORDER BY date`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func scanEntry(scan func(dest ...any) error) (models.Entry, error) {
	var e models.Entry
	var bedtime, waketime sql.NullFloat64
	var createdAt, updatedAt string

	if err := scan(&e.ID, &e.Date, &e.Hours, &bedtime, &waketime, &createdAt, &updatedAt); err != nil {
		return models.Entry{}, err
	}

	if bedtime.Valid {
		e.Bedtime = &bedtime.Float64
	}
	if waketime.Valid {
		e.Waketime = &waketime.Float64
	}

	var err error
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to parse created_at for entry %s: %w", e.Date, err)
	}
	e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to parse updated_at for entry %s: %w", e.Date, err)
	}

	return e, nil
}

func collectEntries(rows *sql.Rows) ([]models.Entry, error) {
	var entries []models.Entry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
