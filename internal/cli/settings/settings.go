package settings

import (
	"fmt"

	"github.com/jcallahan/wellnest/internal/cli"
	"github.com/jcallahan/wellnest/internal/constants"
	"github.com/jcallahan/wellnest/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	HydrationEnabled     *bool   `help:"Enable or disable hydration reminders."`
	HydrationIntervalMin *int    `help:"Minutes between hydration reminders."`
	SnoozeDurationMin    *int    `help:"Minutes a snoozed reminder is deferred."`
	Timezone             *string `help:"IANA timezone name, or 'Local'."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Hydration Enabled:  %v\n", settings.HydrationEnabled)
		fmt.Printf("  Hydration Interval: %s\n", utils.FormatInterval(settings.HydrationIntervalMin))
		fmt.Printf("  Snooze Duration:    %s\n", utils.FormatInterval(settings.SnoozeDurationMin))
		fmt.Printf("  Timezone:           %s\n", settings.Timezone)
		return nil
	}

	updated := false
	rescheduleNeeded := false

	if c.HydrationIntervalMin != nil {
		if *c.HydrationIntervalMin < constants.MinHydrationIntervalMin {
			return fmt.Errorf("hydration interval must be at least %d minutes", constants.MinHydrationIntervalMin)
		}
		settings.HydrationIntervalMin = *c.HydrationIntervalMin
		updated = true
		rescheduleNeeded = true
	}
	if c.SnoozeDurationMin != nil {
		if *c.SnoozeDurationMin < 1 {
			return fmt.Errorf("snooze duration must be at least 1 minute")
		}
		settings.SnoozeDurationMin = *c.SnoozeDurationMin
		updated = true
	}
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone: %s", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.HydrationEnabled != nil {
		settings.HydrationEnabled = *c.HydrationEnabled
		updated = true
		rescheduleNeeded = true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	// Rebuild the reminder schedule so the change takes effect immediately
	if rescheduleNeeded {
		if settings.HydrationEnabled {
			if err := ctx.Reminder.SetInterval(settings.HydrationIntervalMin); err != nil {
				return err
			}
		} else if err := ctx.Reminder.SetEnabled(false); err != nil {
			return err
		}
	}

	fmt.Println("Settings updated successfully.")
	return nil
}
