package ledger

import (
	"math"
	"time"

	"github.com/hkhosravani/sleepbetter/internal/constants"
)

// DayTarget is one night of the recovery schedule.
type DayTarget struct {
	Date      string
	Weekday   time.Weekday
	Target    float64 // hours to sleep this night
	Recovery  float64 // hours of debt credited by this night
	Bedtime   float64 // decimal hours since midnight
	Remaining float64 // debt left after this night
	Recovered float64 // cumulative debt paid down through this night
}

// IsWeekend reports whether the day falls on Saturday or Sunday.
func (d DayTarget) IsWeekend() bool {
	return d.Weekday == time.Saturday || d.Weekday == time.Sunday
}

// WeekTarget aggregates seven consecutive nights of the same schedule.
type WeekTarget struct {
	Week      int
	Target    float64 // constant nightly target for the week
	Bedtime   float64
	Remaining float64 // debt left at the end of the week
}

// RecoveryPlan is the bounded pay-down schedule for a given debt. The weekly
// and daily views are both derived from one day-granularity schedule, so
// they always agree.
type RecoveryPlan struct {
	Debt          float64
	Weeks         int
	DailyTarget   float64 // weekday nightly target
	DailyRecovery float64 // weekday nightly recovery, capped
	Bedtime       float64 // bedtime for DailyTarget
	EstimatedDays int     // full recovery at DailyRecovery pace
	WeekTargets   []WeekTarget
	DayTargets    []DayTarget // first 14 days of the schedule
}

// Empty reports whether there was no debt to plan for.
func (p RecoveryPlan) Empty() bool {
	return len(p.DayTargets) == 0
}

// DayPolicy returns the nightly target and recovery credit for a calendar
// day. Weekends get a fixed boost toward optimal sleep regardless of the
// debt-derived pace; weekdays use the plan's daily values.
func (l *Ledger) DayPolicy(date time.Time, dailyTarget, dailyRecovery float64) (target, recovery float64) {
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		target = math.Min(l.cfg.Optimal+1, 9.0)
		return target, target - l.cfg.Target
	}
	return dailyTarget, dailyRecovery
}

// BuildRecoveryPlan spreads the debt over the requested number of weeks with
// nightly recovery capped at MaxNightlyRecovery. Zero or negative debt
// short-circuits to an empty plan.
func (l *Ledger) BuildRecoveryPlan(debt float64, weeks int, now time.Time) RecoveryPlan {
	if weeks <= 0 {
		weeks = constants.DefaultPlanWeeks
	}
	plan := RecoveryPlan{Debt: debt, Weeks: weeks}
	if debt <= 0 {
		return plan
	}

	days := weeks * 7
	plan.DailyRecovery = debt / float64(days)
	if plan.DailyRecovery > l.cfg.MaxNightlyRecovery {
		plan.DailyRecovery = l.cfg.MaxNightlyRecovery
	}
	plan.DailyTarget = l.cfg.Target + plan.DailyRecovery
	plan.Bedtime = l.RecommendedBedtime(plan.DailyTarget)
	if plan.DailyRecovery > 0 {
		plan.EstimatedDays = int(debt / plan.DailyRecovery)
	}

	// One schedule drives both views.
	schedule := make([]DayTarget, 0, days)
	remaining := debt
	for day := 0; day < days; day++ {
		date := now.AddDate(0, 0, day)
		target, recovery := l.DayPolicy(date, plan.DailyTarget, plan.DailyRecovery)
		remaining = math.Max(0, remaining-recovery)
		schedule = append(schedule, DayTarget{
			Date:      date.Format(constants.DateFormat),
			Weekday:   date.Weekday(),
			Target:    target,
			Recovery:  recovery,
			Bedtime:   l.RecommendedBedtime(target),
			Remaining: remaining,
			Recovered: debt - remaining,
		})
	}

	for week := 1; week <= weeks; week++ {
		plan.WeekTargets = append(plan.WeekTargets, WeekTarget{
			Week:      week,
			Target:    plan.DailyTarget,
			Bedtime:   plan.Bedtime,
			Remaining: schedule[week*7-1].Remaining,
		})
	}

	dayView := 14
	if days < dayView {
		dayView = days
	}
	plan.DayTargets = schedule[:dayView]

	return plan
}
