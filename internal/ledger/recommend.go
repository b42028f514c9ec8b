package ledger

import (
	"fmt"
	"math"

	"github.com/hkhosravani/sleepbetter/internal/constants"
	"github.com/hkhosravani/sleepbetter/internal/models"
	"github.com/hkhosravani/sleepbetter/internal/utils"
)

// Recommendation is one actionable piece of sleep advice.
type Recommendation struct {
	Priority constants.Priority `json:"priority"`
	Category string             `json:"category"`
	Action   string             `json:"action"`
	Detail   string             `json:"detail"`
}

// Recommendations evaluates the rule set over the most recent entries and
// the current debt. Every rule whose condition holds fires; output order is
// stable (rules in evaluation order, sub-recommendations in emission order).
func (l *Ledger) Recommendations(entries []models.Entry, debt float64) []Recommendation {
	var recs []Recommendation

	recent := Recent(entries, constants.RecentWindowNights)

	var timed []models.Entry
	for _, e := range recent {
		if e.Bedtime != nil {
			timed = append(timed, e)
		}
	}

	// Rule 1: active debt. Recover over 1-2 weeks, never all at once.
	if debt > 0 {
		recoveryDays := int(math.Round(debt))
		if recoveryDays < 7 {
			recoveryDays = 7
		} else if recoveryDays > 14 {
			recoveryDays = 14
		}
		extra := debt / float64(recoveryDays)
		if extra > l.cfg.MaxNightlyRecovery {
			extra = l.cfg.MaxNightlyRecovery
		}
		targetTonight := l.cfg.Target + extra
		idealBedtime := l.RecommendedBedtime(targetTonight)

		recs = append(recs, Recommendation{
			Priority: constants.PriorityHigh,
			Category: "Sleep Duration",
			Action:   fmt.Sprintf("Tonight: Aim for %s hours of sleep", utils.FormatHours(targetTonight)),
			Detail:   fmt.Sprintf("You need %s extra to start recovering your %s debt", utils.FormatHours(extra), utils.FormatHours(debt)),
		})
		recs = append(recs, Recommendation{
			Priority: constants.PriorityHigh,
			Category: "Bedtime",
			Action:   fmt.Sprintf("Go to bed by %s", utils.FormatClock(idealBedtime)),
			Detail: fmt.Sprintf("For %s wake with %s sleep (includes %dmin to fall asleep)",
				utils.FormatClock(l.cfg.WakeTime), utils.FormatHours(targetTonight), int(l.cfg.OnsetBufferMin)),
		})
	}

	// Rule 2: bedtime variance over the recent window.
	if len(timed) >= 3 {
		minBed, maxBed := *timed[0].Bedtime, *timed[0].Bedtime
		for _, e := range timed[1:] {
			if *e.Bedtime < minBed {
				minBed = *e.Bedtime
			}
			if *e.Bedtime > maxBed {
				maxBed = *e.Bedtime
			}
		}
		if variance := maxBed - minBed; variance > 2 {
			recs = append(recs, Recommendation{
				Priority: constants.PriorityMedium,
				Category: "Consistency",
				Action:   "Stabilize your bedtime",
				Detail:   fmt.Sprintf("Your bedtime varies by %s hours. Aim for same time +/- 30min", utils.FormatHours(variance)),
			})
		}
	}

	// Rule 3: average bedtime after midnight. Bedtimes are hours since
	// midnight, so (0.5, 12) means strictly after 00:30 and before noon.
	if len(timed) > 0 {
		var sum float64
		for _, e := range timed {
			sum += *e.Bedtime
		}
		avgBedtime := sum / float64(len(timed))
		if avgBedtime > 0.5 && avgBedtime < 12 {
			recs = append(recs, Recommendation{
				Priority: constants.PriorityHigh,
				Category: "Circadian Rhythm",
				Action:   "Move bedtime earlier",
				Detail:   fmt.Sprintf("Average bedtime %s is too late. Shift 15-30min earlier each night", utils.FormatClock(avgBedtime)),
			})
		}
	}

	// Rule 4: significant debt.
	if debt > constants.HighDebtThreshold {
		recs = append(recs, Recommendation{
			Priority: constants.PriorityHigh,
			Category: "Recovery Protocol",
			Action:   "Prioritize weekend recovery",
			Detail:   "Sleep 9+ hours Sat/Sun. Naps OK but before 3pm and under 30min",
		})
		recs = append(recs, Recommendation{
			Priority: constants.PriorityMedium,
			Category: "Exercise",
			Action:   "Reduce training intensity",
			Detail:   "With significant debt, intense exercise increases injury/syncope risk. Light activity only.",
		})
	}

	// Rule 5: general hygiene, always appended.
	recs = append(recs, Recommendation{
		Priority: constants.PriorityLow,
		Category: "Sleep Hygiene",
		Action:   "No screens 1 hour before bed",
		Detail:   "Blue light suppresses melatonin. Use night mode or blue-blocking glasses if needed.",
	})
	recs = append(recs, Recommendation{
		Priority: constants.PriorityLow,
		Category: "Caffeine",
		Action:   "No caffeine after 2:00 PM",
		Detail:   "Caffeine half-life is 5-6 hours. Late caffeine fragments sleep architecture.",
	})

	return recs
}
