package cli

import (
	"fmt"
	"time"

	"github.com/hkhosravani/sleepbetter/internal/utils"
)

type LogCmd struct {
	Date     string `arg:"" help:"Date to log: YYYY-MM-DD, MM-DD, today, or yesterday."`
	Duration string `arg:"" help:"Sleep duration as h:mm or decimal hours (e.g. 7:30 or 7.5)."`
	Bedtime  string `short:"b" help:"Bedtime as HH:MM (default: derived from wake time)."`
	Waketime string `short:"w" help:"Wake time as HH:MM (default: profile wake time)."`
}

func (c *LogCmd) Run(ctx *Context) error {
	date, err := utils.ResolveDate(c.Date, time.Now())
	if err != nil {
		return err
	}
	hours, err := utils.ParseDuration(c.Duration)
	if err != nil {
		return err
	}

	l, err := ctx.Ledger()
	if err != nil {
		return err
	}
	cfg := l.Config()

	var bedtimePtr, waketimePtr *float64
	if c.Waketime != "" {
		v, err := utils.ParseClock(c.Waketime)
		if err != nil {
			return err
		}
		waketimePtr = &v
	}
	if c.Bedtime != "" {
		v, err := utils.ParseClock(c.Bedtime)
		if err != nil {
			return err
		}
		bedtimePtr = &v
	}
	bedtimePtr, waketimePtr = completeClocks(cfg, hours, bedtimePtr, waketimePtr)
	bedtime, waketime := *bedtimePtr, *waketimePtr

	_, existsErr := ctx.Store.GetEntry(date)
	action := "Added"
	if existsErr == nil {
		action = "Updated"
	}

	entry, err := NewEntry(date, hours, bedtimePtr, waketimePtr)
	if err != nil {
		return err
	}
	if err := ctx.Store.UpsertEntry(entry); err != nil {
		return err
	}

	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}
	debt := l.TotalDeficit(entries)

	fmt.Printf("\n%s %s - %s hours\n",
		greenStyle.Render(action+":"), date, sleepStyle(hours).Render(utils.FormatHours(hours)))
	fmt.Printf("  Est. bedtime: %s -> wake %s\n",
		magentaStyle.Render(utils.FormatClock(bedtime)), blueStyle.Render(utils.FormatClock(waketime)))

	deficit := cfg.Target - hours
	if deficit > 0 {
		fmt.Printf("  Daily deficit: %s\n", redStyle.Render("-"+utils.FormatHours(deficit)))
	} else {
		fmt.Printf("  Daily surplus: %s\n", greenStyle.Render("+"+utils.FormatHours(-deficit)))
	}
	fmt.Printf("  Total sleep debt: %s hours\n", formatDebt(debt))

	fmt.Printf("\n%s\n", boldStyle.Render("Tonight's Recommendation:"))
	if debt > 0 {
		extra, targetTonight := l.NightlyRecovery(debt)
		idealBedtime := l.RecommendedBedtime(targetTonight)
		fmt.Printf("  Target: %s hours (+%s recovery)\n",
			greenStyle.Render(utils.FormatHours(targetTonight)), utils.FormatHours(extra))
		fmt.Printf("  Bedtime: %s for %s wake\n",
			magentaStyle.Render(utils.FormatClock(idealBedtime)), utils.FormatClock(cfg.WakeTime))
	} else {
		fmt.Printf("  %s\n", greenStyle.Render(fmt.Sprintf("Maintain %s+ hours. Great job!", utils.FormatHours(cfg.Target))))
	}
	fmt.Println()

	return nil
}
