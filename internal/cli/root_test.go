package cli

import (
	"math"
	"testing"

	"github.com/hkhosravani/sleepbetter/internal/ledger"
)

func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func TestCompleteClocks(t *testing.T) {
	cfg := ledger.DefaultConfig()

	// Bedtime alone: wake time is derived forward, not left at the default,
	// so the assembled entry passes validation.
	bed := 23.0
	bedtime, waketime := completeClocks(cfg, 7.5, &bed, nil)
	if !approx(*waketime, 6.5) {
		t.Errorf("waketime = %v, want 6.5 derived from bedtime", *waketime)
	}
	if _, err := NewEntry("2025-03-10", 7.5, bedtime, waketime); err != nil {
		t.Errorf("entry from lone bedtime failed validation: %v", err)
	}

	// Bedtime alone spanning midnight.
	bed = 22.0
	_, waketime = completeClocks(cfg, 9.0, &bed, nil)
	if !approx(*waketime, 7.0) {
		t.Errorf("waketime = %v, want 7.0 with overnight wrap", *waketime)
	}

	// Wake time alone: bedtime counted back.
	wake := 7.0
	bedtime, waketime = completeClocks(cfg, 8.0, nil, &wake)
	if !approx(*bedtime, 23.0) {
		t.Errorf("bedtime = %v, want 23.0 counted back from wake", *bedtime)
	}
	if _, err := NewEntry("2025-03-10", 8.0, bedtime, waketime); err != nil {
		t.Errorf("entry from lone waketime failed validation: %v", err)
	}

	// Neither: configured wake time is assumed.
	bedtime, waketime = completeClocks(cfg, 7.0, nil, nil)
	if !approx(*waketime, cfg.WakeTime) {
		t.Errorf("waketime = %v, want configured %v", *waketime, cfg.WakeTime)
	}
	if !approx(*bedtime, 23.5) {
		t.Errorf("bedtime = %v, want 23.5", *bedtime)
	}

	// Both given: returned untouched.
	bed, wake = 22.5, 6.25
	bedtime, waketime = completeClocks(cfg, 7.75, &bed, &wake)
	if !approx(*bedtime, 22.5) || !approx(*waketime, 6.25) {
		t.Errorf("explicit clocks changed: (%v, %v)", *bedtime, *waketime)
	}
}

func TestIsFileStore(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/home/user/.config/sleepbetter/sleepbetter.db", true},
		{"sleepbetter.json", true},
		{"postgres://user@localhost:5432/sleepbetter", false},
		{"postgresql://user@localhost:5432/sleepbetter", false},
	}
	for _, tt := range tests {
		if got := isFileStore(tt.path); got != tt.want {
			t.Errorf("isFileStore(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
