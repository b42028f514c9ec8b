package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hkhosravani/sleepbetter/internal/utils"
)

type PlanCmd struct {
	Weeks int `short:"w" help:"Recovery period in weeks." default:"3"`
}

func (c *PlanCmd) Validate() error {
	if c.Weeks < 1 || c.Weeks > 12 {
		return fmt.Errorf("weeks must be between 1 and 12")
	}
	return nil
}

func (c *PlanCmd) Run(ctx *Context) error {
	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}

	l, err := ctx.Ledger()
	if err != nil {
		return err
	}
	cfg := l.Config()
	debt := l.TotalDeficit(entries)

	printBanner("SLEEP RECOVERY PLAN")

	if debt <= 0 {
		fmt.Println(greenStyle.Render(fmt.Sprintf("No sleep debt to recover! Keep maintaining %s+ hours/night.", utils.FormatHours(cfg.Target))))
		fmt.Println()
		return nil
	}

	plan := l.BuildRecoveryPlan(debt, c.Weeks, time.Now())

	fmt.Println(boldStyle.Render("Current Status:"))
	fmt.Printf("  Sleep debt:        %s hours\n", redStyle.Render(utils.FormatHours(plan.Debt)))
	fmt.Printf("  Wake time:         %s (your schedule)\n", blueStyle.Render(utils.FormatClock(cfg.WakeTime)))
	fmt.Printf("  Recovery period:   %d weeks\n", plan.Weeks)

	fmt.Printf("\n%s\n", boldStyle.Render("Recovery Strategy:"))
	fmt.Printf("  Daily target:      %s hours/night\n", greenStyle.Render(utils.FormatHours(plan.DailyTarget)))
	fmt.Printf("  Recommended bed:   %s\n", magentaStyle.Render(utils.FormatClock(plan.Bedtime)))
	fmt.Printf("  Extra sleep/night: +%s hours\n", utils.FormatHours(plan.DailyRecovery))
	fmt.Printf("  Est. full recovery: %d days\n", plan.EstimatedDays)

	fmt.Printf("\n%s\n", boldStyle.Render("Weekly Targets:"))
	fmt.Println("  " + dimStyle.Render(fmt.Sprintf("%-8s %10s %10s %12s", "Week", "Bedtime", "Target", "Debt Left")))
	fmt.Println("  " + strings.Repeat("-", 42))

	for _, w := range plan.WeekTargets {
		fmt.Printf("  Week %-3d %s %s %s\n",
			w.Week,
			magentaStyle.Render(fmt.Sprintf("%10s", utils.FormatClock(w.Bedtime))),
			greenStyle.Render(fmt.Sprintf("%10s", utils.FormatHours(w.Target))),
			remainingStyle(w.Remaining, plan.Debt).Render(fmt.Sprintf("%12s", utils.FormatHours(w.Remaining))))
	}

	fmt.Printf("\n%s\n", boldStyle.Render(fmt.Sprintf("Next %d Days:", len(plan.DayTargets))))
	fmt.Println("  " + dimStyle.Render(fmt.Sprintf("%-12s %-6s %10s %8s %12s", "Date", "Day", "Bedtime", "Target", "Recovery")))
	fmt.Println("  " + strings.Repeat("-", 52))

	for _, d := range plan.DayTargets {
		doneStyle := yellowStyle
		if d.Recovered >= plan.Debt {
			doneStyle = greenStyle
		}
		weekendMark := " "
		if d.IsWeekend() {
			weekendMark = cyanStyle.Render("*")
		}
		fmt.Printf("  %-12s %-6s %s %s %s%s\n",
			d.Date,
			d.Weekday.String()[:3],
			magentaStyle.Render(fmt.Sprintf("%10s", utils.FormatClock(d.Bedtime))),
			greenStyle.Render(fmt.Sprintf("%8s", utils.FormatHours(d.Target))),
			doneStyle.Render(fmt.Sprintf("%10s done", utils.FormatHours(d.Recovered))),
			weekendMark)
	}

	fmt.Printf("\n  %s\n\n", cyanStyle.Render("* Weekend - extra recovery opportunity"))

	return nil
}

// remainingStyle grades residual debt against the starting debt: green when
// cleared, yellow once under half, red otherwise.
func remainingStyle(remaining, debt float64) lipgloss.Style {
	switch {
	case remaining <= 0:
		return greenStyle
	case remaining < debt/2:
		return yellowStyle
	default:
		return redStyle
	}
}
