package ledger

import (
	"testing"
	"time"

	"github.com/hkhosravani/sleepbetter/internal/models"
)

var missingNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func TestMissingDays(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.Entry
		want    []string
	}{
		{
			name:    "empty ledger",
			entries: nil,
			want:    nil,
		},
		{
			name:    "last entry yesterday",
			entries: []models.Entry{entry("2025-03-09", 7)},
			want:    nil,
		},
		{
			name:    "last entry today",
			entries: []models.Entry{entry("2025-03-10", 7)},
			want:    nil,
		},
		{
			name:    "three day gap",
			entries: []models.Entry{entry("2025-03-07", 7)},
			want:    []string{"2025-03-08", "2025-03-09"},
		},
		{
			name: "gap skips recorded days",
			entries: []models.Entry{
				entry("2025-03-05", 7),
				entry("2025-03-07", 6),
			},
			want: []string{"2025-03-06", "2025-03-08", "2025-03-09"},
		},
		{
			name:    "month boundary",
			entries: []models.Entry{entry("2025-02-27", 7)},
			want: []string{
				"2025-02-28", "2025-03-01", "2025-03-02", "2025-03-03",
				"2025-03-04", "2025-03-05", "2025-03-06", "2025-03-07",
				"2025-03-08", "2025-03-09",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MissingDays(tt.entries, missingNow)
			if len(got) != len(tt.want) {
				t.Fatalf("MissingDays = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("missing[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}
