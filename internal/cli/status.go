package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/hkhosravani/sleepbetter/internal/constants"
	"github.com/hkhosravani/sleepbetter/internal/ledger"
	"github.com/hkhosravani/sleepbetter/internal/utils"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println(yellowStyle.Render("No sleep data recorded yet."))
		fmt.Println("Use: sleepbetter log <date> <hours:minutes>")
		return nil
	}

	l, err := ctx.Ledger()
	if err != nil {
		return err
	}
	cfg := l.Config()

	stats := l.Summarize(entries)
	recent := ledger.Recent(entries, constants.RecentWindowNights)
	recentStats := l.Summarize(recent)

	printBanner("SLEEP STATUS REPORT")

	fmt.Println(boldStyle.Render(fmt.Sprintf("Overall Statistics (%d nights):", stats.Nights)))
	fmt.Printf("  Average sleep:     %s hours/night\n", sleepStyle(stats.AverageHours).Render(utils.FormatHours(stats.AverageHours)))
	fmt.Printf("  Target sleep:      %s hours/night\n", utils.FormatHours(cfg.Target))
	fmt.Printf("  Total sleep debt:  %s hours\n", formatDebt(stats.Debt))

	fmt.Printf("\n%s\n", boldStyle.Render("Last 7 Nights:"))
	fmt.Printf("  Average:           %s hours/night\n", sleepStyle(recentStats.AverageHours).Render(utils.FormatHours(recentStats.AverageHours)))
	fmt.Printf("  Week debt:         %s hours\n", formatDebt(recentStats.Debt))

	if avgBed, avgWake, ok := ledger.TimingAverages(recent); ok {
		fmt.Printf("\n%s\n", boldStyle.Render("Sleep Timing (avg):"))
		fmt.Printf("  Typical bedtime:   %s\n", magentaStyle.Render(utils.FormatClock(avgBed)))
		fmt.Printf("  Typical wake:      %s\n", blueStyle.Render(utils.FormatClock(avgWake)))
	}

	// Missing-days nudge
	if missing := ledger.MissingDays(entries, time.Now()); len(missing) > 0 {
		fmt.Printf("\n%s\n", yellowStyle.Render(fmt.Sprintf("%d day(s) missing sleep records. Run 'sleepbetter catchup' to fill them in.", len(missing))))
	}

	fmt.Printf("\n%s\n", boldStyle.Render("Recent Sleep Log:"))
	points := l.ProgressiveDebt(entries)
	if len(points) > 10 {
		points = points[len(points)-10:]
	}
	byDate := make(map[string]int, len(entries))
	for i, e := range entries {
		byDate[e.Date] = i
	}

	hasTimes := false
	for _, p := range points {
		if entries[byDate[p.Date]].HasTimes() {
			hasTimes = true
			break
		}
	}

	if hasTimes {
		fmt.Println("  " + dimStyle.Render(fmt.Sprintf("%-12s %6s %6s %6s %8s %10s", "Date", "Bed", "Wake", "Sleep", "Deficit", "Cum.Debt")))
		fmt.Println("  " + strings.Repeat("-", 52))
	} else {
		fmt.Println("  " + dimStyle.Render(fmt.Sprintf("%-12s %8s %10s %10s", "Date", "Sleep", "Deficit", "Cum.Debt")))
		fmt.Println("  " + strings.Repeat("-", 42))
	}

	for _, p := range points {
		entry := entries[byDate[p.Date]]

		cumRaw := p.CumulativeDebt
		if cumRaw < 0 {
			cumRaw = -cumRaw
		}

		deficitRaw := "-" + utils.FormatHours(p.DailyDeficit)
		deficitSty := redStyle
		if p.DailyDeficit <= 0 {
			deficitRaw = "+" + utils.FormatHours(-p.DailyDeficit)
			deficitSty = greenStyle
		}

		if hasTimes {
			bed, wake := "-", "-"
			if entry.HasTimes() {
				bed = utils.FormatClock(*entry.Bedtime)
				wake = utils.FormatClock(*entry.Waketime)
			}
			fmt.Printf("  %-12s %s %s %s %s %s\n",
				p.Date,
				magentaStyle.Render(fmt.Sprintf("%6s", bed)),
				blueStyle.Render(fmt.Sprintf("%6s", wake)),
				sleepStyle(p.Hours).Render(fmt.Sprintf("%6s", utils.FormatHours(p.Hours))),
				deficitSty.Render(fmt.Sprintf("%8s", deficitRaw)),
				debtStyle(p.CumulativeDebt).Render(fmt.Sprintf("%10s", utils.FormatHours(cumRaw))))
		} else {
			fmt.Printf("  %-12s %s %s %s\n",
				p.Date,
				sleepStyle(p.Hours).Render(fmt.Sprintf("%8s", utils.FormatHours(p.Hours))),
				deficitSty.Render(fmt.Sprintf("%10s", deficitRaw)),
				debtStyle(p.CumulativeDebt).Render(fmt.Sprintf("%10s", utils.FormatHours(cumRaw))))
		}
	}

	if stats.Debt > constants.HighDebtThreshold {
		fmt.Printf("\n%s\n", redStyle.Bold(true).Render("WARNING: Significant sleep debt detected!"))
		fmt.Println(redStyle.Render("Consider prioritizing sleep recovery to prevent health events."))
	}
	fmt.Println()

	return nil
}
