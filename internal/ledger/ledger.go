// Package ledger implements the sleep-debt core: deficit accounting,
// bedtime derivation, rule-based recommendations, and recovery planning.
// All operations are pure computations over in-memory entries; persistence
// and presentation live elsewhere.
package ledger

import (
	"sort"

	"github.com/hkhosravani/sleepbetter/internal/constants"
	"github.com/hkhosravani/sleepbetter/internal/models"
)

// Config carries the tunables every ledger operation depends on. It is
// passed explicitly so tests can vary target and wake time without global
// state.
type Config struct {
	Target             float64 // minimum recommended hours/night
	Optimal            float64 // optimal hours/night, drives weekend targets
	WakeTime           float64 // decimal hours since midnight
	MaxNightlyRecovery float64 // cap on extra sleep per night
	OnsetBufferMin     float64 // assumed minutes to fall asleep
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Target:             constants.DefaultTargetSleep,
		Optimal:            constants.DefaultOptimalSleep,
		WakeTime:           constants.DefaultWakeTime,
		MaxNightlyRecovery: constants.MaxRecoveryPerNight,
		OnsetBufferMin:     constants.OnsetBufferMinutes,
	}
}

// ConfigFromProfile overlays a persisted profile onto the defaults.
func ConfigFromProfile(p models.Profile) Config {
	cfg := DefaultConfig()
	if p.Target > 0 {
		cfg.Target = p.Target
	}
	if p.WakeTime > 0 {
		cfg.WakeTime = p.WakeTime
	}
	return cfg
}

// Ledger computes derived views over sleep entries.
type Ledger struct {
	cfg Config
}

func New(cfg Config) *Ledger {
	return &Ledger{cfg: cfg}
}

func (l *Ledger) Config() Config {
	return l.cfg
}

// DebtPoint is one step of the progressive-debt series.
type DebtPoint struct {
	Date           string  `json:"date"`
	Hours          float64 `json:"hours"`
	DailyDeficit   float64 `json:"daily_deficit"`
	CumulativeDebt float64 `json:"cumulative_debt"`
}

// SortByDate returns a copy of entries sorted by date ascending. Dates are
// YYYY-MM-DD strings, so lexicographic order is chronological order.
func SortByDate(entries []models.Entry) []models.Entry {
	sorted := make([]models.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}

// Recent returns the last n entries in date order (fewer if the ledger is
// smaller).
func Recent(entries []models.Entry, n int) []models.Entry {
	sorted := SortByDate(entries)
	if len(sorted) <= n {
		return sorted
	}
	return sorted[len(sorted)-n:]
}

// TotalDeficit sums (target - hours) over all entries. Positive means debt,
// negative or zero means surplus. Order is irrelevant.
func (l *Ledger) TotalDeficit(entries []models.Entry) float64 {
	var total float64
	for _, e := range entries {
		total += l.cfg.Target - e.Hours
	}
	return total
}

// ProgressiveDebt produces the running prefix-sum of daily deficits in date
// order, one point per entry.
func (l *Ledger) ProgressiveDebt(entries []models.Entry) []DebtPoint {
	sorted := SortByDate(entries)
	points := make([]DebtPoint, 0, len(sorted))

	var cumulative float64
	for _, e := range sorted {
		deficit := l.cfg.Target - e.Hours
		cumulative += deficit
		points = append(points, DebtPoint{
			Date:           e.Date,
			Hours:          e.Hours,
			DailyDeficit:   deficit,
			CumulativeDebt: cumulative,
		})
	}

	return points
}

// Stats summarizes a set of entries.
type Stats struct {
	Nights       int
	TotalHours   float64
	AverageHours float64
	Debt         float64
}

// Summarize computes basic statistics. A zero-entry input yields zero values
// rather than a division fault.
func (l *Ledger) Summarize(entries []models.Entry) Stats {
	s := Stats{Nights: len(entries)}
	if s.Nights == 0 {
		return s
	}
	for _, e := range entries {
		s.TotalHours += e.Hours
	}
	s.AverageHours = s.TotalHours / float64(s.Nights)
	s.Debt = l.TotalDeficit(entries)
	return s
}

// TimingAverages returns the mean bedtime and waketime over entries carrying
// both clocks. ok is false when no entry does.
func TimingAverages(entries []models.Entry) (avgBed, avgWake float64, ok bool) {
	var bedSum, wakeSum float64
	var count int
	for _, e := range entries {
		if e.HasTimes() {
			bedSum += *e.Bedtime
			wakeSum += *e.Waketime
			count++
		}
	}
	if count == 0 {
		return 0, 0, false
	}
	return bedSum / float64(count), wakeSum / float64(count), true
}
