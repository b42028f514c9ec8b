package ledger

import (
	"testing"
	"time"
)

// Monday, so the first five nights of a plan are weekdays.
var planStart = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

func TestBuildRecoveryPlanNoDebt(t *testing.T) {
	l := New(DefaultConfig())

	for _, debt := range []float64{0, -1.5} {
		plan := l.BuildRecoveryPlan(debt, 3, planStart)
		if !plan.Empty() {
			t.Errorf("debt %v should yield an empty plan", debt)
		}
		if len(plan.WeekTargets) != 0 {
			t.Errorf("debt %v should have no week targets", debt)
		}
	}
}

func TestBuildRecoveryPlanPace(t *testing.T) {
	l := New(DefaultConfig())

	// 10.5h over 3 weeks = 0.5/night.
	plan := l.BuildRecoveryPlan(10.5, 3, planStart)
	if !approx(plan.DailyRecovery, 0.5) {
		t.Errorf("DailyRecovery = %v, want 0.5", plan.DailyRecovery)
	}
	if !approx(plan.DailyTarget, 7.5) {
		t.Errorf("DailyTarget = %v, want 7.5", plan.DailyTarget)
	}
	if plan.EstimatedDays != 21 {
		t.Errorf("EstimatedDays = %d, want 21", plan.EstimatedDays)
	}
	if !approx(plan.Bedtime, 23.0) {
		t.Errorf("Bedtime = %v, want 23.0", plan.Bedtime)
	}
}

func TestBuildRecoveryPlanCap(t *testing.T) {
	l := New(DefaultConfig())

	// 60h over 1 week would need 8.57/night; the cap clamps it.
	plan := l.BuildRecoveryPlan(60, 1, planStart)
	if !approx(plan.DailyRecovery, 1.5) {
		t.Errorf("DailyRecovery = %v, want cap 1.5", plan.DailyRecovery)
	}
	if !approx(plan.DailyTarget, 8.5) {
		t.Errorf("DailyTarget = %v, want 8.5", plan.DailyTarget)
	}
	if plan.EstimatedDays != 40 {
		t.Errorf("EstimatedDays = %d, want 40", plan.EstimatedDays)
	}
}

func TestBuildRecoveryPlanWeekendPolicy(t *testing.T) {
	l := New(DefaultConfig())

	plan := l.BuildRecoveryPlan(10.5, 3, planStart)
	if len(plan.DayTargets) != 14 {
		t.Fatalf("expected 14 day targets, got %d", len(plan.DayTargets))
	}

	for _, d := range plan.DayTargets {
		if d.IsWeekend() {
			if !approx(d.Target, 9.0) {
				t.Errorf("%s (%s) target = %v, want weekend 9.0", d.Date, d.Weekday, d.Target)
			}
			if !approx(d.Recovery, 2.0) {
				t.Errorf("%s recovery = %v, want 2.0", d.Date, d.Recovery)
			}
		} else {
			if !approx(d.Target, plan.DailyTarget) {
				t.Errorf("%s (%s) target = %v, want weekday %v", d.Date, d.Weekday, d.Target, plan.DailyTarget)
			}
			// Debt-derived nightly recovery never exceeds the cap.
			if d.Recovery > l.cfg.MaxNightlyRecovery+epsilon {
				t.Errorf("%s recovery %v exceeds cap", d.Date, d.Recovery)
			}
		}
	}
}

func TestBuildRecoveryPlanViewsAgree(t *testing.T) {
	l := New(DefaultConfig())

	plan := l.BuildRecoveryPlan(10.5, 2, planStart)
	if len(plan.WeekTargets) != 2 {
		t.Fatalf("expected 2 week targets, got %d", len(plan.WeekTargets))
	}

	// Week 1 ends on day 7; the daily view covers the same nights.
	if !approx(plan.WeekTargets[0].Remaining, plan.DayTargets[6].Remaining) {
		t.Errorf("week 1 remaining %v != day 7 remaining %v",
			plan.WeekTargets[0].Remaining, plan.DayTargets[6].Remaining)
	}
	if !approx(plan.WeekTargets[1].Remaining, plan.DayTargets[13].Remaining) {
		t.Errorf("week 2 remaining %v != day 14 remaining %v",
			plan.WeekTargets[1].Remaining, plan.DayTargets[13].Remaining)
	}
}

func TestBuildRecoveryPlanRemainingMonotone(t *testing.T) {
	l := New(DefaultConfig())

	plan := l.BuildRecoveryPlan(4.0, 3, planStart)
	prev := plan.Debt
	for _, d := range plan.DayTargets {
		if d.Remaining > prev+epsilon {
			t.Errorf("%s remaining %v increased from %v", d.Date, d.Remaining, prev)
		}
		if d.Remaining < 0 {
			t.Errorf("%s remaining %v went negative", d.Date, d.Remaining)
		}
		if !approx(d.Recovered, plan.Debt-d.Remaining) {
			t.Errorf("%s recovered %v inconsistent with remaining %v", d.Date, d.Recovered, d.Remaining)
		}
		prev = d.Remaining
	}
}

func TestBuildRecoveryPlanDefaultWeeks(t *testing.T) {
	l := New(DefaultConfig())

	plan := l.BuildRecoveryPlan(6, 0, planStart)
	if plan.Weeks != 3 {
		t.Errorf("Weeks = %d, want default 3", plan.Weeks)
	}
	if len(plan.WeekTargets) != 3 {
		t.Errorf("expected 3 week targets, got %d", len(plan.WeekTargets))
	}
}

func TestDayPolicy(t *testing.T) {
	l := New(DefaultConfig())

	saturday := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)
	target, recovery := l.DayPolicy(saturday, 7.5, 0.5)
	if !approx(target, 9.0) || !approx(recovery, 2.0) {
		t.Errorf("Saturday policy = (%v, %v), want (9.0, 2.0)", target, recovery)
	}

	tuesday := time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)
	target, recovery = l.DayPolicy(tuesday, 7.5, 0.5)
	if !approx(target, 7.5) || !approx(recovery, 0.5) {
		t.Errorf("Tuesday policy = (%v, %v), want (7.5, 0.5)", target, recovery)
	}

	// The weekend boost stays at optimal+1 capped at 9.
	low := New(Config{Target: 7, Optimal: 7.5, WakeTime: 6.75, MaxNightlyRecovery: 1.5, OnsetBufferMin: 15})
	target, _ = low.DayPolicy(saturday, 7.5, 0.5)
	if !approx(target, 8.5) {
		t.Errorf("Saturday with optimal 7.5 = %v, want 8.5", target)
	}
}
