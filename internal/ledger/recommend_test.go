package ledger

import (
	"testing"

	"github.com/hkhosravani/sleepbetter/internal/constants"
	"github.com/hkhosravani/sleepbetter/internal/models"
)

func categories(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Category
	}
	return out
}

func hasCategory(recs []Recommendation, category string) bool {
	for _, r := range recs {
		if r.Category == category {
			return true
		}
	}
	return false
}

func TestRecommendationsEmptyLedger(t *testing.T) {
	l := New(DefaultConfig())

	recs := l.Recommendations(nil, 0)
	want := []string{"Sleep Hygiene", "Caffeine"}
	got := categories(recs)
	if len(got) != len(want) {
		t.Fatalf("expected only hygiene recommendations, got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	for _, r := range recs {
		if r.Priority != constants.PriorityLow {
			t.Errorf("hygiene rec %q priority = %s, want LOW", r.Category, r.Priority)
		}
	}
}

func TestRecommendationsWithDebt(t *testing.T) {
	l := New(DefaultConfig())

	recs := l.Recommendations(nil, 3.5)
	if !hasCategory(recs, "Sleep Duration") || !hasCategory(recs, "Bedtime") {
		t.Fatalf("debt should produce duration and bedtime recommendations, got %v", categories(recs))
	}

	// 3.5h debt clamps to a 7 day recovery: 0.5 extra, 7.5 target, 23:00 bed.
	if recs[0].Action != "Tonight: Aim for 7:30 hours of sleep" {
		t.Errorf("duration action = %q", recs[0].Action)
	}
	if recs[1].Action != "Go to bed by 23:00" {
		t.Errorf("bedtime action = %q", recs[1].Action)
	}
}

func TestRecommendationsHighDebt(t *testing.T) {
	l := New(DefaultConfig())

	recs := l.Recommendations(nil, 12)
	if !hasCategory(recs, "Recovery Protocol") || !hasCategory(recs, "Exercise") {
		t.Fatalf("high debt should trigger recovery protocol, got %v", categories(recs))
	}

	// 12h debt: recoveryDays = 12, extra = 1.0.
	if recs[0].Action != "Tonight: Aim for 8:00 hours of sleep" {
		t.Errorf("duration action = %q", recs[0].Action)
	}
}

func TestRecommendationsInconsistentBedtime(t *testing.T) {
	l := New(DefaultConfig())

	entries := []models.Entry{
		timedEntry("2025-01-01", 7, 22.0, 6.0),
		timedEntry("2025-01-02", 7, 23.5, 6.0),
		timedEntry("2025-01-03", 7, 0.75, 6.0),
	}

	recs := l.Recommendations(entries, 0)
	if !hasCategory(recs, "Consistency") {
		t.Errorf("bedtime spread over 2h should trigger consistency, got %v", categories(recs))
	}
}

func TestRecommendationsLateBedtime(t *testing.T) {
	l := New(DefaultConfig())

	entries := []models.Entry{
		timedEntry("2025-01-01", 6, 1.5, 7.5),
		timedEntry("2025-01-02", 6, 2.0, 8.0),
	}

	recs := l.Recommendations(entries, 0)
	if !hasCategory(recs, "Circadian Rhythm") {
		t.Errorf("average post-midnight bedtime should trigger circadian advice, got %v", categories(recs))
	}
}

func TestRecommendationsStableOrder(t *testing.T) {
	l := New(DefaultConfig())

	entries := []models.Entry{
		timedEntry("2025-01-01", 5, 1.0, 6.0),
		timedEntry("2025-01-02", 5, 3.5, 8.5),
		timedEntry("2025-01-03", 5, 2.0, 7.0),
	}

	first := categories(l.Recommendations(entries, 12))
	for i := 0; i < 5; i++ {
		if again := categories(l.Recommendations(entries, 12)); len(again) != len(first) {
			t.Fatalf("recommendation count changed between runs: %v vs %v", first, again)
		} else {
			for j := range first {
				if again[j] != first[j] {
					t.Fatalf("recommendation order changed: %v vs %v", first, again)
				}
			}
		}
	}

	want := []string{
		"Sleep Duration", "Bedtime", "Consistency", "Circadian Rhythm",
		"Recovery Protocol", "Exercise", "Sleep Hygiene", "Caffeine",
	}
	if len(first) != len(want) {
		t.Fatalf("all rules should fire, got %v", first)
	}
	for i := range want {
		if first[i] != want[i] {
			t.Errorf("category[%d] = %s, want %s", i, first[i], want[i])
		}
	}
}
