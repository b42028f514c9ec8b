package storage

import "github.com/hkhosravani/sleepbetter/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Profile
	GetProfile() (models.Profile, error)
	SaveProfile(models.Profile) error

	// Entries
	UpsertEntry(models.Entry) error
	GetEntry(date string) (models.Entry, error)
	GetAllEntries() ([]models.Entry, error)
	GetEntriesSince(date string) ([]models.Entry, error)

	// Utils
	GetConfigPath() string
}
