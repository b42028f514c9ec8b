package ledger

import (
	"time"

	"github.com/hkhosravani/sleepbetter/internal/constants"
	"github.com/hkhosravani/sleepbetter/internal/models"
)

// MissingDays lists dates between the latest entry and yesterday (inclusive)
// with no record, ascending. Today is never reported since that night has
// not concluded. An empty ledger, or a latest entry dated yesterday or
// later, yields nothing.
func MissingDays(entries []models.Entry, now time.Time) []string {
	if len(entries) == 0 {
		return nil
	}

	sorted := SortByDate(entries)
	lastStr := sorted[len(sorted)-1].Date
	yesterdayStr := now.AddDate(0, 0, -1).Format(constants.DateFormat)
	if lastStr >= yesterdayStr {
		return nil
	}

	last, err := time.Parse(constants.DateFormat, lastStr)
	if err != nil {
		return nil
	}
	yesterday, err := time.Parse(constants.DateFormat, yesterdayStr)
	if err != nil {
		return nil
	}

	recorded := make(map[string]bool, len(sorted))
	for _, e := range sorted {
		recorded[e.Date] = true
	}

	var missing []string
	for current := last.AddDate(0, 0, 1); !current.After(yesterday); current = current.AddDate(0, 0, 1) {
		if date := current.Format(constants.DateFormat); !recorded[date] {
			missing = append(missing, date)
		}
	}

	return missing
}
