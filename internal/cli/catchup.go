package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/hkhosravani/sleepbetter/internal/constants"
	"github.com/hkhosravani/sleepbetter/internal/ledger"
	"github.com/hkhosravani/sleepbetter/internal/utils"
)

// CatchupCmd prompts for each day between the last record and yesterday that
// has no entry. Blank answers skip a day.
type CatchupCmd struct{}

func (c *CatchupCmd) Run(ctx *Context) error {
	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}

	missing := ledger.MissingDays(entries, time.Now())
	if len(missing) == 0 {
		fmt.Printf("\n%s\n", greenStyle.Render("All caught up! No missing days."))
		return nil
	}

	fmt.Printf("\n%s\n", yellowStyle.Bold(true).Render("Missing Sleep Data"))
	fmt.Println(dimStyle.Render(fmt.Sprintf("You have %d day(s) without sleep records.", len(missing))))
	fmt.Println(dimStyle.Render("Enter sleep duration for each, or leave blank to skip."))
	fmt.Println()

	l, err := ctx.Ledger()
	if err != nil {
		return err
	}
	cfg := l.Config()

	changed := false
	for _, date := range missing {
		day, err := time.Parse(constants.DateFormat, date)
		if err != nil {
			return err
		}

		var input string
		prompt := huh.NewInput().
			Title(day.Format("Monday, Jan 02")).
			Description("Hours slept (h:mm), blank to skip").
			Value(&input).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return nil
				}
				_, err := utils.ParseDuration(s)
				return err
			})
		if err := huh.NewForm(huh.NewGroup(prompt)).Run(); err != nil {
			return err
		}

		if strings.TrimSpace(input) == "" {
			fmt.Printf("    %s\n", dimStyle.Render("Skipped"))
			continue
		}

		hours, err := utils.ParseDuration(input)
		if err != nil {
			fmt.Printf("    %s\n", redStyle.Render("Invalid format, skipped"))
			continue
		}

		waketime := cfg.WakeTime
		bedtime := DeriveBedtime(waketime, hours)
		entry, err := NewEntry(date, hours, &bedtime, &waketime)
		if err != nil {
			return err
		}
		if err := ctx.Store.UpsertEntry(entry); err != nil {
			return err
		}
		changed = true

		deficit := cfg.Target - hours
		deficitStr := greenStyle.Render("+" + utils.FormatHours(-deficit))
		if deficit > 0 {
			deficitStr = redStyle.Render("-" + utils.FormatHours(deficit))
		}
		fmt.Printf("    %s %s hrs (%s)\n",
			greenStyle.Render("Added:"), sleepStyle(hours).Render(utils.FormatHours(hours)), deficitStr)
	}

	if changed {
		all, err := ctx.Store.GetAllEntries()
		if err != nil {
			return err
		}
		debt := l.TotalDeficit(all)
		fmt.Printf("\n%s Total sleep debt: %s hours\n", greenStyle.Render("Data saved."), formatDebt(debt))
	}

	return nil
}
