package models

import (
	"fmt"
	"math"
	"time"
)

// Entry represents one night's sleep record. Date is the unique key within
// the ledger; writing a second entry for the same date replaces the first.
type Entry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`  // YYYY-MM-DD format
	Hours     float64   `json:"hours"` // decimal hours slept
	Bedtime   *float64  `json:"bedtime,omitempty"`  // decimal hours since midnight, [0,24)
	Waketime  *float64  `json:"waketime,omitempty"` // decimal hours since midnight, [0,24)
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// entryClockTolerance is the slack allowed between stated hours and the
// bedtime/waketime span before an entry is rejected as inconsistent.
const entryClockTolerance = 1.0 / 60

// Validate checks structural invariants. When bedtime and waketime are both
// present, hours must agree with (waketime - bedtime) mod 24 to within one
// minute.
func (e Entry) Validate() error {
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", e.Date, err)
	}
	if e.Hours < 0 {
		return fmt.Errorf("hours must be non-negative, got %.2f", e.Hours)
	}
	if e.Bedtime != nil && (*e.Bedtime < 0 || *e.Bedtime >= 24) {
		return fmt.Errorf("bedtime %.2f out of range [0,24)", *e.Bedtime)
	}
	if e.Waketime != nil && (*e.Waketime < 0 || *e.Waketime >= 24) {
		return fmt.Errorf("waketime %.2f out of range [0,24)", *e.Waketime)
	}
	if e.Bedtime != nil && e.Waketime != nil {
		span := *e.Waketime - *e.Bedtime
		if span < 0 {
			span += 24
		}
		if math.Abs(span-e.Hours) > entryClockTolerance {
			return fmt.Errorf("hours %.2f disagree with bedtime/waketime span %.2f", e.Hours, span)
		}
	}
	return nil
}

// HasTimes reports whether both bedtime and waketime are recorded.
func (e Entry) HasTimes() bool {
	return e.Bedtime != nil && e.Waketime != nil
}
