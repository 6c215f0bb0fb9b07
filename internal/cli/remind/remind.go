package remind

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jcallahan/wellnest/internal/alarm"
	"github.com/jcallahan/wellnest/internal/cli"
	"github.com/jcallahan/wellnest/internal/constants"
	"github.com/jcallahan/wellnest/internal/logger"
	"github.com/jcallahan/wellnest/internal/notifier"
	"github.com/jcallahan/wellnest/internal/reminder"
	"github.com/jcallahan/wellnest/internal/utils"
)

type RemindCmd struct {
	Status   RemindStatusCmd   `cmd:"" help:"Show the reminder schedule." default:"1"`
	Enable   RemindEnableCmd   `cmd:"" help:"Enable hydration reminders."`
	Disable  RemindDisableCmd  `cmd:"" help:"Disable hydration reminders."`
	Interval RemindIntervalCmd `cmd:"" help:"Set the reminder interval in minutes."`
	Snooze   RemindSnoozeCmd   `cmd:"" help:"Snooze: schedule one extra reminder shortly."`
	Test     RemindTestCmd     `cmd:"" help:"Send a test reminder immediately."`
	Run      RemindRunCmd      `cmd:"" help:"Run the reminder loop in the foreground."`
}

type RemindStatusCmd struct{}

func (c *RemindStatusCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	if !settings.HydrationEnabled {
		fmt.Println("Hydration reminders: disabled")
		return nil
	}

	fmt.Println("Hydration reminders: enabled")
	fmt.Printf("Interval: %s\n", utils.FormatInterval(settings.HydrationIntervalMin))
	fmt.Printf("Snooze duration: %s\n", utils.FormatInterval(settings.SnoozeDurationMin))
	fmt.Println(ctx.Reminder.NextReminderText())
	return nil
}

type RemindEnableCmd struct{}

func (c *RemindEnableCmd) Run(ctx *cli.Context) error {
	if err := ctx.Reminder.SetEnabled(true); err != nil {
		return err
	}
	fmt.Println("Hydration reminders enabled.")
	fmt.Println(ctx.Reminder.NextReminderText())
	fmt.Println("Run 'wellnest remind run' to deliver reminders in the foreground.")
	return nil
}

type RemindDisableCmd struct{}

func (c *RemindDisableCmd) Run(ctx *cli.Context) error {
	if err := ctx.Reminder.SetEnabled(false); err != nil {
		return err
	}
	fmt.Println("Hydration reminders disabled.")
	return nil
}

type RemindIntervalCmd struct {
	Minutes int `arg:"" help:"Minutes between reminders."`
}

func (c *RemindIntervalCmd) Run(ctx *cli.Context) error {
	if c.Minutes < constants.MinHydrationIntervalMin {
		return fmt.Errorf("interval must be at least %d minutes", constants.MinHydrationIntervalMin)
	}

	if err := ctx.Reminder.SetInterval(c.Minutes); err != nil {
		return err
	}

	fmt.Printf("Reminder interval set to %s.\n", utils.FormatInterval(c.Minutes))
	return nil
}

type RemindSnoozeCmd struct{}

func (c *RemindSnoozeCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	if err := ctx.Reminder.Snooze(); err != nil {
		return err
	}

	fmt.Printf("Snoozed. An extra reminder will arrive in %s.\n", utils.FormatInterval(settings.SnoozeDurationMin))
	return nil
}

type RemindTestCmd struct{}

func (c *RemindTestCmd) Run(ctx *cli.Context) error {
	if err := ctx.Reminder.SendTest(); err != nil {
		return fmt.Errorf("failed to send test reminder: %w", err)
	}
	fmt.Println("Test reminder sent.")
	return nil
}

// RemindRunCmd drives the schedule with in-process timers until interrupted.
// Reminders fire through the tray-app notifier.
type RemindRunCmd struct{}

func (c *RemindRunCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if !settings.HydrationEnabled {
		return fmt.Errorf("hydration reminders are disabled, run 'wellnest remind enable' first")
	}

	events := make(chan reminder.Event, 8)
	svc := alarm.NewService(func(id string) {
		events <- reminder.Fired{AlarmID: id}
	})
	defer svc.Stop()

	sched := reminder.NewScheduler(ctx.Store, svc, notifier.New())
	if err := sched.SetEnabled(true); err != nil {
		return err
	}

	fmt.Printf("Reminder loop running (every %s). Press Ctrl+C to stop.\n",
		utils.FormatInterval(settings.HydrationIntervalMin))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case ev := <-events:
			if err := sched.HandleEvent(ev); err != nil {
				logger.Warn("Failed to handle reminder event", "error", err)
			}
		case <-sig:
			fmt.Println("\nStopping reminder loop.")
			return nil
		}
	}
}
