package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/hkhosravani/sleepbetter/internal/constants"
	"github.com/hkhosravani/sleepbetter/internal/models"
	"github.com/hkhosravani/sleepbetter/internal/utils"
)

type HistoryCmd struct {
	Days int `short:"d" help:"How many days back to analyze." default:"30"`
}

func (c *HistoryCmd) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("days must be positive")
	}
	return nil
}

func (c *HistoryCmd) Run(ctx *Context) error {
	since := time.Now().AddDate(0, 0, -c.Days).Format(constants.DateFormat)
	entries, err := ctx.Store.GetEntriesSince(since)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println(yellowStyle.Render(fmt.Sprintf("No sleep data in the last %d days.", c.Days)))
		return nil
	}

	l, err := ctx.Ledger()
	if err != nil {
		return err
	}
	cfg := l.Config()
	stats := l.Summarize(entries)

	printBanner(fmt.Sprintf("SLEEP ANALYSIS: LAST %d DAYS", c.Days))

	fmt.Println(boldStyle.Render(fmt.Sprintf("Summary (%d nights):", stats.Nights)))
	fmt.Printf("  Average sleep:     %s hrs/night\n", sleepStyle(stats.AverageHours).Render(utils.FormatHours(stats.AverageHours)))
	fmt.Printf("  Total sleep debt:  %s hours\n", formatDebt(stats.Debt))
	fmt.Printf("  Target:            %s hrs/night\n", utils.FormatHours(cfg.Target))

	var good, short, severe int
	best, worst := entries[0], entries[0]
	for _, e := range entries {
		switch {
		case e.Hours >= constants.DefaultTargetSleep:
			good++
		case e.Hours >= constants.ShortSleepHours:
			short++
		default:
			severe++
		}
		if e.Hours > best.Hours {
			best = e
		}
		if e.Hours < worst.Hours {
			worst = e
		}
	}

	n := len(entries)
	fmt.Printf("\n%s\n", boldStyle.Render("Sleep Quality Breakdown:"))
	fmt.Printf("  %s    %d nights (%d%%)\n", greenStyle.Render("Good (7+ hrs):"), good, 100*good/n)
	fmt.Printf("  %s  %d nights (%d%%)\n", yellowStyle.Render("Short (6-7 hrs):"), short, 100*short/n)
	fmt.Printf("  %s  %d nights (%d%%)\n", redStyle.Render("Severe (<6 hrs):"), severe, 100*severe/n)

	fmt.Printf("\n%s\n", boldStyle.Render("Extremes:"))
	fmt.Printf("  Best night:  %s\n", greenStyle.Render(fmt.Sprintf("%s - %s hrs", best.Date, utils.FormatHours(best.Hours))))
	fmt.Printf("  Worst night: %s\n", redStyle.Render(fmt.Sprintf("%s - %s hrs", worst.Date, utils.FormatHours(worst.Hours))))

	printDayOfWeekAverages(entries)

	// Trend needs two full weeks to compare.
	if n >= 14 {
		firstAvg := averageHours(entries[:7])
		lastAvg := averageHours(entries[n-7:])
		change := lastAvg - firstAvg

		fmt.Printf("\n%s\n", boldStyle.Render("Trend Analysis:"))
		fmt.Printf("  First 7 nights avg: %s\n", sleepStyle(firstAvg).Render(utils.FormatHours(firstAvg)))
		fmt.Printf("  Last 7 nights avg:  %s\n", sleepStyle(lastAvg).Render(utils.FormatHours(lastAvg)))
		switch {
		case change > 0.25:
			fmt.Printf("  Trend: %s\n", greenStyle.Render("Improving (+"+utils.FormatHours(change)+")"))
		case change < -0.25:
			fmt.Printf("  Trend: %s\n", redStyle.Render("Declining (-"+utils.FormatHours(-change)+")"))
		default:
			fmt.Printf("  Trend: %s\n", yellowStyle.Render("Stable"))
		}
	}

	if n > 1 {
		fmt.Printf("\n%s\n", boldStyle.Render("Debt Progression:"))
		progressive := l.ProgressiveDebt(entries)
		for _, idx := range []int{0, len(progressive) / 2, len(progressive) - 1} {
			p := progressive[idx]
			style := greenStyle
			if p.CumulativeDebt > constants.ElevatedDebtHours {
				style = redStyle
			} else if p.CumulativeDebt > 0 {
				style = yellowStyle
			}
			cum := p.CumulativeDebt
			if cum < 0 {
				cum = -cum
			}
			fmt.Printf("  %s: %s\n", p.Date, style.Render(utils.FormatHours(cum)+" debt"))
		}
	}
	fmt.Println()

	return nil
}

func averageHours(entries []models.Entry) float64 {
	var sum float64
	for _, e := range entries {
		sum += e.Hours
	}
	return sum / float64(len(entries))
}

// printDayOfWeekAverages renders per-weekday averages with a proportional bar.
func printDayOfWeekAverages(entries []models.Entry) {
	sums := make([]float64, 7)
	counts := make([]int, 7)
	for _, e := range entries {
		day, err := time.Parse(constants.DateFormat, e.Date)
		if err != nil {
			continue
		}
		wd := int(day.Weekday())
		sums[wd] += e.Hours
		counts[wd]++
	}

	fmt.Printf("\n%s\n", boldStyle.Render("Day of Week Averages:"))
	for _, wd := range []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	} {
		name := wd.String()[:3]
		if counts[wd] == 0 {
			fmt.Printf("  %s: %s\n", name, dimStyle.Render("no data"))
			continue
		}
		avg := sums[wd] / float64(counts[wd])
		bar := strings.Repeat("█", int(avg*3))
		fmt.Printf("  %s: %s  %s\n",
			name, sleepStyle(avg).Render(fmt.Sprintf("%5s", utils.FormatHours(avg))), sleepStyle(avg).Render(bar))
	}
}
