package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hkhosravani/sleepbetter/internal/ledger"
	"github.com/hkhosravani/sleepbetter/internal/models"
	"github.com/hkhosravani/sleepbetter/internal/storage"
)

type SessionState int

const (
	StateStatus SessionState = iota
	StateRecommend
	StatePlan
	StateHistory

	numStates
)

// Model is the interactive dashboard: a snapshot of the store rendered
// across four tabs. Refresh reloads the snapshot from disk.
type Model struct {
	store    storage.Provider
	ledger   *ledger.Ledger
	entries  []models.Entry
	loadErr  error
	keys     KeyMap
	help     help.Model
	state    SessionState
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider) Model {
	m := Model{
		store: store,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		state: StateStatus,
	}
	m.refresh()
	return m
}

// refresh reloads the profile and entries from the store.
func (m *Model) refresh() {
	profile, err := m.store.GetProfile()
	if err != nil {
		m.loadErr = err
		return
	}
	entries, err := m.store.GetAllEntries()
	if err != nil {
		m.loadErr = err
		return
	}
	m.ledger = ledger.New(ledger.ConfigFromProfile(profile))
	m.entries = entries
	m.loadErr = nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

// now is split out so views share a single notion of the current day.
func (m Model) now() time.Time {
	return time.Now()
}
