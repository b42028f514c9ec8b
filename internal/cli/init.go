package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hkhosravani/sleepbetter/internal/constants"
	"github.com/hkhosravani/sleepbetter/internal/models"
)

type InitCmd struct {
	Sample bool `help:"Seed the store with 30 days of demonstration data."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized sleepbetter storage at: %s\n", ctx.Store.GetConfigPath())

	if !c.Sample {
		return nil
	}

	profile := models.Profile{
		Age:      35,
		Target:   constants.DefaultTargetSleep,
		WakeTime: constants.DefaultWakeTime,
		Notes:    "Sample user data",
	}
	if err := ctx.Store.SaveProfile(profile); err != nil {
		return err
	}

	entries, err := sampleEntries(time.Now())
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := ctx.Store.UpsertEntry(entry); err != nil {
			return err
		}
	}

	l, err := ctx.Ledger()
	if err != nil {
		return err
	}
	all, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}
	debt := l.TotalDeficit(all)

	fmt.Println(greenStyle.Render(fmt.Sprintf("Initialized with %d days of sample data", len(entries))))
	fmt.Printf("Total sleep debt: %s hours\n", formatDebt(debt))
	fmt.Printf("\nRun '%s' to see full report\n", cyanStyle.Render("sleepbetter status"))
	fmt.Printf("Run '%s' for personalized advice\n", cyanStyle.Render("sleepbetter recommend"))
	return nil
}

// sampleEntries generates 30 nights of seeded demonstration data: mostly
// normal nights, a tail of poor ones, and the occasional long recovery night.
func sampleEntries(now time.Time) ([]models.Entry, error) {
	const numDays = 30
	rng := rand.New(rand.NewSource(42))
	start := now.AddDate(0, 0, -numDays)

	entries := make([]models.Entry, 0, numDays)
	for i := 0; i < numDays; i++ {
		date := start.AddDate(0, 0, i).Format(constants.DateFormat)

		var hours, bedtime float64
		switch roll := rng.Float64(); {
		case roll < 0.15:
			// Poor night with a late bedtime
			hours = 5.0 + rng.Float64()
			bedtime = 0.5 + rng.Float64()*1.5
		case roll < 0.25:
			// Long night with an early bedtime
			hours = 8.0 + rng.Float64()*0.5
			bedtime = 22.5 + rng.Float64()*0.5
		default:
			// Normal variation around target
			hours = 6.5 + rng.Float64()*1.3
			bedtime = 23.0 + rng.Float64()*1.5
			if bedtime >= 24 {
				bedtime -= 24
			}
		}

		waketime := bedtime + hours
		if waketime >= 24 {
			waketime -= 24
		}

		entry, err := NewEntry(date, hours, &bedtime, &waketime)
		if err != nil {
			return nil, fmt.Errorf("generating sample entry for %s: %w", date, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
