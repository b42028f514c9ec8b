package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hkhosravani/sleepbetter/internal/constants"
	"github.com/hkhosravani/sleepbetter/internal/ledger"
	"github.com/hkhosravani/sleepbetter/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch {
	case m.loadErr != nil:
		content = docStyle.Render(badStyle.Render("Failed to load store: " + m.loadErr.Error()))
	case m.state == StateStatus:
		content = docStyle.Render(m.viewStatus())
	case m.state == StateRecommend:
		content = docStyle.Render(m.viewRecommend())
	case m.state == StatePlan:
		content = docStyle.Render(m.viewPlan())
	case m.state == StateHistory:
		content = docStyle.Render(m.viewHistory())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Status", "Recommendations", "Plan", "History"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if len(m.entries) == 0 {
		return warnStyle.Render("No sleep data recorded yet. Run 'sleepbetter log' to get started.")
	}

	cfg := m.ledger.Config()
	stats := m.ledger.Summarize(m.entries)
	recent := ledger.Recent(m.entries, constants.RecentWindowNights)
	recentStats := m.ledger.Summarize(recent)

	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("Overall (%d nights)", stats.Nights)) + "\n")
	b.WriteString(fmt.Sprintf("  Average sleep:    %s hours/night\n", hoursStyle(stats.AverageHours).Render(utils.FormatHours(stats.AverageHours))))
	b.WriteString(fmt.Sprintf("  Target sleep:     %s hours/night\n", utils.FormatHours(cfg.Target)))
	b.WriteString(fmt.Sprintf("  Total sleep debt: %s hours\n", debtStyle(stats.Debt).Render(utils.FormatHours(abs(stats.Debt)))))

	b.WriteString("\n" + headingStyle.Render("Last 7 Nights") + "\n")
	b.WriteString(fmt.Sprintf("  Average:   %s hours/night\n", hoursStyle(recentStats.AverageHours).Render(utils.FormatHours(recentStats.AverageHours))))
	b.WriteString(fmt.Sprintf("  Week debt: %s hours\n", debtStyle(recentStats.Debt).Render(utils.FormatHours(abs(recentStats.Debt)))))

	if avgBed, avgWake, ok := ledger.TimingAverages(recent); ok {
		b.WriteString("\n" + headingStyle.Render("Sleep Timing (avg)") + "\n")
		b.WriteString(fmt.Sprintf("  Typical bedtime: %s\n", bedStyle.Render(utils.FormatClock(avgBed))))
		b.WriteString(fmt.Sprintf("  Typical wake:    %s\n", wakeStyle.Render(utils.FormatClock(avgWake))))
	}

	if missing := ledger.MissingDays(m.entries, m.now()); len(missing) > 0 {
		b.WriteString("\n" + warnStyle.Render(fmt.Sprintf("%d day(s) missing. Run 'sleepbetter catchup'.", len(missing))) + "\n")
	}

	if stats.Debt > constants.HighDebtThreshold {
		b.WriteString("\n" + badStyle.Bold(true).Render("WARNING: Significant sleep debt detected!") + "\n")
	}

	return b.String()
}

func (m Model) viewRecommend() string {
	if len(m.entries) == 0 {
		return warnStyle.Render("No sleep data. Add some entries first.")
	}

	debt := m.ledger.TotalDeficit(m.entries)
	recs := m.ledger.Recommendations(m.entries, debt)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Sleep debt: %s hours\n\n", debtStyle(debt).Render(utils.FormatHours(abs(debt)))))

	for _, priority := range []constants.Priority{constants.PriorityHigh, constants.PriorityMedium, constants.PriorityLow} {
		style := goodStyle
		switch priority {
		case constants.PriorityHigh:
			style = badStyle
		case constants.PriorityMedium:
			style = warnStyle
		}
		for _, rec := range recs {
			if rec.Priority != priority {
				continue
			}
			b.WriteString(style.Render(fmt.Sprintf("[%s]", priority)) + " " + rec.Action + "\n")
			b.WriteString("  " + dimStyle.Render(rec.Detail) + "\n")
		}
	}

	if debt > 0 {
		extra, targetTonight := m.ledger.NightlyRecovery(debt)
		b.WriteString("\n" + headingStyle.Render("Tonight") + "\n")
		b.WriteString(fmt.Sprintf("  Target:  %s hours (+%s)\n",
			goodStyle.Render(utils.FormatHours(targetTonight)), utils.FormatHours(extra)))
		b.WriteString(fmt.Sprintf("  Bedtime: %s\n", bedStyle.Render(utils.FormatClock(m.ledger.RecommendedBedtime(targetTonight)))))
	}

	return b.String()
}

func (m Model) viewPlan() string {
	debt := m.ledger.TotalDeficit(m.entries)
	if debt <= 0 {
		return goodStyle.Render("No sleep debt to recover! Keep it up.")
	}

	plan := m.ledger.BuildRecoveryPlan(debt, constants.DefaultPlanWeeks, m.now())

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Debt %s hours, recovering +%s/night over %d weeks\n\n",
		badStyle.Render(utils.FormatHours(plan.Debt)), utils.FormatHours(plan.DailyRecovery), plan.Weeks))

	b.WriteString(dimStyle.Render(fmt.Sprintf("%-12s %-4s %8s %8s %10s", "Date", "Day", "Bedtime", "Target", "Remaining")) + "\n")
	for _, d := range plan.DayTargets {
		mark := " "
		if d.IsWeekend() {
			mark = "*"
		}
		b.WriteString(fmt.Sprintf("%-12s %-4s %s %s %s%s\n",
			d.Date,
			d.Weekday.String()[:3],
			bedStyle.Render(fmt.Sprintf("%8s", utils.FormatClock(d.Bedtime))),
			goodStyle.Render(fmt.Sprintf("%8s", utils.FormatHours(d.Target))),
			debtStyle(d.Remaining).Render(fmt.Sprintf("%10s", utils.FormatHours(d.Remaining))),
			mark))
	}
	b.WriteString("\n" + dimStyle.Render("* weekend recovery boost"))

	return b.String()
}

func (m Model) viewHistory() string {
	if len(m.entries) == 0 {
		return warnStyle.Render("No sleep data recorded yet.")
	}

	points := m.ledger.ProgressiveDebt(m.entries)
	if len(points) > 14 {
		points = points[len(points)-14:]
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("%-12s %6s  %s", "Date", "Sleep", "Debt")) + "\n")
	for _, p := range points {
		b.WriteString(fmt.Sprintf("%-12s %s  %s %s\n",
			p.Date,
			hoursStyle(p.Hours).Render(fmt.Sprintf("%6s", utils.FormatHours(p.Hours))),
			hoursBar(p.Hours),
			debtStyle(p.CumulativeDebt).Render(utils.FormatHours(abs(p.CumulativeDebt)))))
	}

	return b.String()
}

// hoursBar renders one block per half hour slept.
func hoursBar(hours float64) string {
	blocks := int(hours * 2)
	if blocks > 24 {
		blocks = 24
	}
	return hoursStyle(hours).Render(strings.Repeat("█", blocks)) + strings.Repeat(" ", 24-blocks)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
