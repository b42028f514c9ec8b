package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/hkhosravani/sleepbetter/internal/models"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS profile (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	name TEXT NOT NULL DEFAULT '',
	age INTEGER NOT NULL DEFAULT 0,
	birthdate TEXT NOT NULL DEFAULT '',
	target DOUBLE PRECISION NOT NULL DEFAULT 0,
	wake_time DOUBLE PRECISION NOT NULL DEFAULT 0,
	notes TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS entries (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL UNIQUE,
	hours DOUBLE PRECISION NOT NULL,
	bedtime DOUBLE PRECISION,
	waketime DOUBLE PRECISION,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date);
`

type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password inline, either as userinfo in a URL or as a
// password= pair in DSN form. Credentials belong in .pgpass or the
// environment, not in config files.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		parsed, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		_, isSet := parsed.User.Password()
		return isSet
	}

	for _, pair := range strings.Fields(connStr) {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) == 2 && strings.ToLower(strings.TrimSpace(parts[0])) == "password" {
			return true
		}
	}

	return false
}

func (s *PostgresStore) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Test connection
	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to verify schema: %w", err)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) GetProfile() (models.Profile, error) {
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

func (s *PostgresStore) SaveProfile(profile models.Profile) error {
	_, err := s.db.Exec(`
		INSERT INTO profile (id, name, age, birthdate, target, wake_time, notes)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			age = EXCLUDED.age,
			birthdate = EXCLUDED.birthdate,
			target = EXCLUDED.target,
			wake_time = EXCLUDED.wake_time,
			notes = EXCLUDED.notes`,
		profile.Name, profile.Age, profile.Birthdate, profile.Target, profile.WakeTime, profile.Notes)
	return err
}

func (s *PostgresStore) UpsertEntry(entry models.Entry) error {
	var bedtime, waketime sql.NullFloat64
	if entry.Bedtime != nil {
		bedtime = sql.NullFloat64{Float64: *entry.Bedtime, Valid: true}
	}
	if entry.Waketime != nil {
		waketime = sql.NullFloat64{Float64: *entry.Waketime, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO entries (id, date, hours, bedtime, waketime, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (date) DO UPDATE SET
			hours = EXCLUDED.hours,
			bedtime = EXCLUDED.bedtime,
			waketime = EXCLUDED.waketime,
			updated_at = EXCLUDED.updated_at`,
		entry.ID, entry.Date, entry.Hours, bedtime, waketime,
		entry.CreatedAt.UTC().Format(time.RFC3339), entry.UpdatedAt.UTC().Format(time.RFC3339))
	return err
}

func (s *PostgresStore) GetEntry(date string) (models.Entry, error) {
	row := s.db.QueryRow(`
		SELECT id, date, hours, bedtime, waketime, created_at, updated_at
		FROM entries WHERE date = $1`, date)

	entry, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return models.Entry{}, fmt.Errorf("no entry found for date: %s", date)
	}
	return entry, err
}

func (s *PostgresStore) GetAllEntries() ([]models.Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, date, hours, bedtime, waketime, created_at, updated_at
		FROM entries ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (s *PostgresStore) GetEntriesSince(date string) ([]models.Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, date, hours, bedtime, waketime, created_at, updated_at
		FROM entries WHERE date >= $1 ORDER BY date`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}
