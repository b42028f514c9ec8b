package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/hkhosravani/sleepbetter/internal/utils"
)

// AddCmd records a full entry. With an hours argument it runs straight
// through; without one it walks through an interactive form, deriving the
// duration from bedtime and wake time when both are given.
type AddCmd struct {
	Hours    string `arg:"" optional:"" help:"Sleep duration as h:mm or decimal hours."`
	Date     string `short:"d" help:"Date: YYYY-MM-DD, MM-DD, today, or yesterday." default:"today"`
	Bedtime  string `short:"b" help:"Bedtime as HH:MM."`
	Waketime string `short:"w" help:"Wake time as HH:MM."`
}

func (c *AddCmd) Run(ctx *Context) error {
	dateInput := c.Date
	bedtimeInput := c.Bedtime
	waketimeInput := c.Waketime
	hoursInput := c.Hours

	if strings.TrimSpace(hoursInput) == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Date").
					Description("YYYY-MM-DD, MM-DD, today, or yesterday").
					Value(&dateInput).
					Validate(func(s string) error {
						_, err := utils.ResolveDate(s, time.Now())
						return err
					}),
				huh.NewInput().
					Title("Bedtime (HH:MM)").
					Description("Leave blank to derive from wake time").
					Value(&bedtimeInput).
					Validate(validateOptionalClock),
				huh.NewInput().
					Title("Wake time (HH:MM)").
					Description("Leave blank for your configured wake time").
					Value(&waketimeInput).
					Validate(validateOptionalClock),
				huh.NewInput().
					Title("Hours slept (h:mm)").
					Description("Leave blank to calculate from bedtime and wake time").
					Value(&hoursInput).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return nil
						}
						_, err := utils.ParseDuration(s)
						return err
					}),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	date, err := utils.ResolveDate(dateInput, time.Now())
	if err != nil {
		return err
	}

	l, err := ctx.Ledger()
	if err != nil {
		return err
	}
	cfg := l.Config()

	var bedtimePtr, waketimePtr *float64
	if strings.TrimSpace(bedtimeInput) != "" {
		v, err := utils.ParseClock(bedtimeInput)
		if err != nil {
			return err
		}
		bedtimePtr = &v
	}
	if strings.TrimSpace(waketimeInput) != "" {
		v, err := utils.ParseClock(waketimeInput)
		if err != nil {
			return err
		}
		waketimePtr = &v
	}

	var hours float64
	switch {
	case strings.TrimSpace(hoursInput) != "":
		if hours, err = utils.ParseDuration(hoursInput); err != nil {
			return err
		}
	case bedtimePtr != nil && waketimePtr != nil:
		hours = *waketimePtr - *bedtimePtr
		if hours < 0 {
			hours += 24
		}
		fmt.Printf("Calculated sleep: %s hours\n", greenStyle.Render(utils.FormatHours(hours)))
	default:
		return fmt.Errorf("provide hours slept, or both bedtime and wake time")
	}

	// Fill in the missing clock so every entry carries timing data.
	bedtimePtr, waketimePtr = completeClocks(cfg, hours, bedtimePtr, waketimePtr)

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
		greenStyle.Render(action+" sleep entry:"), date, sleepStyle(hours).Render(utils.FormatHours(hours)))
	deficit := cfg.Target - hours
	if deficit > 0 {
		fmt.Println(yellowStyle.Render(fmt.Sprintf("Deficit: %s hours below target", utils.FormatHours(deficit))))
	} else {
		fmt.Println(greenStyle.Render(fmt.Sprintf("Surplus: %s hours above target", utils.FormatHours(-deficit))))
	}
	fmt.Printf("Total sleep debt: %s hours\n\n", formatDebt(debt))

	return nil
}

func validateOptionalClock(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := utils.ParseClock(s)
	return err
}
