package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/hkhosravani/sleepbetter/internal/constants"
	"github.com/hkhosravani/sleepbetter/internal/utils"
)

type RecommendCmd struct{}

func (c *RecommendCmd) Run(ctx *Context) error {
	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println(yellowStyle.Render("No sleep data. Add some entries first."))
		return nil
	}

	l, err := ctx.Ledger()
	if err != nil {
		return err
	}
	cfg := l.Config()
	debt := l.TotalDeficit(entries)

	printBanner("PERSONALIZED SLEEP RECOMMENDATIONS")

	fmt.Println(boldStyle.Render("Current Status:"))
	fmt.Printf("  Sleep debt: %s hours\n", formatDebt(debt))
	fmt.Printf("  Wake time: %s (configured)\n\n", blueStyle.Render(utils.FormatClock(cfg.WakeTime)))

	recs := l.Recommendations(entries, debt)

	// Group by priority, highest first.
	for _, priority := range []constants.Priority{constants.PriorityHigh, constants.PriorityMedium, constants.PriorityLow} {
		style := priorityStyle(priority)
		printed := false
		for _, rec := range recs {
			if rec.Priority != priority {
				continue
			}
			if !printed {
				fmt.Println(style.Bold(true).Render(fmt.Sprintf("[%s PRIORITY]", priority)))
				printed = true
			}
			fmt.Printf("  %s %s\n", style.Render(">"), boldStyle.Render(rec.Action))
			fmt.Printf("    %s\n", dimStyle.Render(rec.Detail))
		}
		if printed {
			fmt.Println()
		}
	}

	if debt > 0 {
		extra, targetTonight := l.NightlyRecovery(debt)
		idealBedtime := l.RecommendedBedtime(targetTonight)

		printRule()
		fmt.Println(boldStyle.Foreground(lipgloss.Color("2")).Render("  TONIGHT'S PLAN"))
		printRule()
		fmt.Println()
		fmt.Printf("  %s  %s hours\n", boldStyle.Render("Target sleep:"), greenStyle.Render(utils.FormatHours(targetTonight)))
		fmt.Printf("  %s       %s\n", boldStyle.Render("Bedtime:"), magentaStyle.Render(utils.FormatClock(idealBedtime)))
		fmt.Printf("  %s     %s\n", boldStyle.Render("Wake time:"), blueStyle.Render(utils.FormatClock(cfg.WakeTime)))
		fmt.Printf("  %s  %s hours beyond minimum\n", boldStyle.Render("Extra needed:"), utils.FormatHours(extra))

		if extra > 0 {
			daysToRecover := int(debt / extra)
			fmt.Printf("\n  %s\n", dimStyle.Render(fmt.Sprintf("Following this plan: debt cleared in ~%d days", daysToRecover)))
		}
	}
	fmt.Println()

	return nil
}

func priorityStyle(p constants.Priority) lipgloss.Style {
	switch p {
	case constants.PriorityHigh:
		return redStyle
	case constants.PriorityMedium:
		return yellowStyle
	default:
		return greenStyle
	}
}
