package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/hkhosravani/sleepbetter/internal/constants"
	"github.com/hkhosravani/sleepbetter/internal/models"
	"github.com/hkhosravani/sleepbetter/internal/utils"
)

type CalendarCmd struct {
	Weeks int `short:"w" help:"How many weeks back to show." default:"4"`
}

func (c *CalendarCmd) Validate() error {
	if c.Weeks < 1 || c.Weeks > 26 {
		return fmt.Errorf("weeks must be between 1 and 26")
	}
	return nil
}

func (c *CalendarCmd) Run(ctx *Context) error {
	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}

	byDate := make(map[string]models.Entry, len(entries))
	for _, e := range entries {
		byDate[e.Date] = e
	}

	printBanner("SLEEP CALENDAR")

	fmt.Println("  " + dimStyle.Render(fmt.Sprintf("%-10s %6s %6s %6s %6s %6s %6s %6s",
		"Week of", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun")))
	fmt.Println("  " + strings.Repeat("-", 60))

	// Walk backwards week by week, each row starting on Monday.
	now := time.Now()
	monday := now.AddDate(0, 0, -mondayOffset(now.Weekday()))
	for week := c.Weeks - 1; week >= 0; week-- {
		start := monday.AddDate(0, 0, -7*week)

		row := fmt.Sprintf("  %-10s", start.Format("Jan 02"))
		for day := 0; day < 7; day++ {
			date := start.AddDate(0, 0, day)
			if date.After(now) {
				row += fmt.Sprintf(" %6s", "")
				continue
			}
			if entry, ok := byDate[date.Format(constants.DateFormat)]; ok {
				row += " " + sleepStyle(entry.Hours).Render(fmt.Sprintf("%6s", utils.FormatHours(entry.Hours)))
			} else {
				row += " " + dimStyle.Render(fmt.Sprintf("%6s", "--"))
			}
		}
		fmt.Println(row)
	}

	fmt.Printf("\n  %s %s %s\n\n",
		greenStyle.Render("7:00+ good"),
		yellowStyle.Render("6:00+ short"),
		redStyle.Render("below 6:00 poor"))

	return nil
}

// mondayOffset is the number of days since the most recent Monday.
func mondayOffset(wd time.Weekday) int {
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}
