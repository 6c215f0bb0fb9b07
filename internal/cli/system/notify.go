package system

import (
	"fmt"

	"github.com/jcallahan/wellnest/internal/cli"
)

// NotifyCmd delivers a due hydration reminder once and exits. It exists for
// external schedulers (cron, systemd timers) that invoke it on their own
// cadence instead of running 'wellnest remind run'.
type NotifyCmd struct {
	DryRun bool `help:"Print the notification to stdout instead of sending it."`
	Test   bool `help:"Send a test reminder regardless of the enabled flag."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.Test {
		if c.DryRun {
			fmt.Println("[DryRun] Would send a test reminder.")
			return nil
		}
		return ctx.Reminder.SendTest()
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if !settings.HydrationEnabled {
		if c.DryRun {
			fmt.Println("Hydration reminders are disabled in settings.")
		}
		return nil
	}

	if c.DryRun {
		fmt.Println("[DryRun] Would send a hydration reminder.")
		fmt.Println(ctx.Reminder.NextReminderText())
		return nil
	}

	if err := ctx.Reminder.Deliver(); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}
