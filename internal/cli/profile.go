package cli

import (
	"fmt"
	"time"

	"github.com/hkhosravani/sleepbetter/internal/constants"
	"github.com/hkhosravani/sleepbetter/internal/utils"
)

type ProfileCmd struct {
	List bool `help:"List the current profile."`

	Name      *string `help:"Your name."`
	Age       *int    `help:"Your age in years."`
	Birthdate *string `help:"Birthdate as YYYY-MM-DD."`
	Target    *string `help:"Nightly sleep target as h:mm or decimal hours."`
	WakeTime  *string `help:"Usual wake time as HH:MM."`
	Notes     *string `help:"Free-form notes."`
}

func (c *ProfileCmd) Validate() error {
	if c.Age != nil && (*c.Age < 0 || *c.Age > 130) {
		return fmt.Errorf("age must be between 0 and 130")
	}
	if c.Birthdate != nil {
		if _, err := time.Parse(constants.DateFormat, *c.Birthdate); err != nil {
			return fmt.Errorf("invalid birthdate (expected YYYY-MM-DD): %w", err)
		}
	}
	return nil
}

func (c *ProfileCmd) Run(ctx *Context) error {
	profile, err := ctx.Store.GetProfile()
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	if c.List {
		target := profile.Target
		if target <= 0 {
			target = constants.DefaultTargetSleep
		}
		wake := profile.WakeTime
		if wake <= 0 {
			wake = constants.DefaultWakeTime
		}

		fmt.Println("Current Profile:")
		fmt.Printf("  Name:       %s\n", orUnset(profile.Name))
		if profile.Age > 0 {
			fmt.Printf("  Age:        %d\n", profile.Age)
			low, high := profile.RecommendedRange()
			fmt.Printf("  Recommended: %s-%s hours/night for your age\n", utils.FormatHours(low), utils.FormatHours(high))
		} else {
			fmt.Printf("  Age:        %s\n", orUnset(""))
		}
		fmt.Printf("  Birthdate:  %s\n", orUnset(profile.Birthdate))
		fmt.Printf("  Target:     %s hours/night\n", utils.FormatHours(target))
		fmt.Printf("  Wake time:  %s\n", utils.FormatClock(wake))
		fmt.Printf("  Notes:      %s\n", orUnset(profile.Notes))
		return nil
	}

	updated := false
	if c.Name != nil {
		profile.Name = *c.Name
		updated = true
	}
	if c.Age != nil {
		profile.Age = *c.Age
		updated = true
	}
	if c.Birthdate != nil {
		profile.Birthdate = *c.Birthdate
		updated = true
	}
	if c.Target != nil {
		target, err := utils.ParseDuration(*c.Target)
		if err != nil {
			return err
		}
		if target <= 0 || target >= 24 {
			return fmt.Errorf("target must be between 0 and 24 hours")
		}
		profile.Target = target
		updated = true
	}
	if c.WakeTime != nil {
		wake, err := utils.ParseClock(*c.WakeTime)
		if err != nil {
			return err
		}
		profile.WakeTime = wake
		updated = true
	}
	if c.Notes != nil {
		profile.Notes = *c.Notes
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveProfile(profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		fmt.Println("Profile updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view the profile or flags to update it.")
	}

	return nil
}

func orUnset(s string) string {
	if s == "" {
		return dimStyle.Render("(not set)")
	}
	return s
}
