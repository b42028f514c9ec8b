package ledger

import "testing"

func TestRecommendedBedtime(t *testing.T) {
	// 6.75 - 7.0 - 0.25 = -0.5 -> wraps to 23.5 (23:30)
	if got := RecommendedBedtime(7.0, 6.75, 15); !approx(got, 23.5) {
		t.Errorf("RecommendedBedtime(7.0, 6.75, 15) = %v, want 23.5", got)
	}
}

func TestRecommendedBedtimeNoWrap(t *testing.T) {
	// 10.0 - 7.0 - 0.25 = 2.75 (02:45, already in range)
	if got := RecommendedBedtime(7.0, 10.0, 15); !approx(got, 2.75) {
		t.Errorf("RecommendedBedtime(7.0, 10.0, 15) = %v, want 2.75", got)
	}
}

func TestRecommendedBedtimeRange(t *testing.T) {
	for _, target := range []float64{0, 5, 7.5, 9, 12, 23, 30} {
		for _, wake := range []float64{0, 5.5, 6.75, 12, 23.75} {
			got := RecommendedBedtime(target, wake, 15)
			if got < 0 || got >= 24 {
				t.Errorf("RecommendedBedtime(%v, %v, 15) = %v, outside [0,24)", target, wake, got)
			}
			// Idempotent under re-application with the same inputs.
			if again := RecommendedBedtime(target, wake, 15); again != got {
				t.Errorf("RecommendedBedtime not deterministic for (%v, %v)", target, wake)
			}
		}
	}
}

func TestNightlyRecovery(t *testing.T) {
	l := New(Config{Target: 7.0, MaxNightlyRecovery: 1.5})

	// Debt of 3.5 spread over a week = 0.5 extra.
	extra, target := l.NightlyRecovery(3.5)
	if !approx(extra, 0.5) || !approx(target, 7.5) {
		t.Errorf("NightlyRecovery(3.5) = (%v, %v), want (0.5, 7.5)", extra, target)
	}

	// Large debt hits the cap.
	extra, target = l.NightlyRecovery(100)
	if !approx(extra, 1.5) || !approx(target, 8.5) {
		t.Errorf("NightlyRecovery(100) = (%v, %v), want (1.5, 8.5)", extra, target)
	}

	// At or below zero debt recommends nothing extra.
	extra, target = l.NightlyRecovery(0)
	if !approx(extra, 0) || !approx(target, 7.0) {
		t.Errorf("NightlyRecovery(0) = (%v, %v), want (0, 7.0)", extra, target)
	}
	extra, _ = l.NightlyRecovery(-2)
	if !approx(extra, 0) {
		t.Errorf("NightlyRecovery(-2) extra = %v, want 0", extra)
	}
}
