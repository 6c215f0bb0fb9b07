package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jcallahan/wellnest/internal/alarm"
	"github.com/jcallahan/wellnest/internal/cli"
	"github.com/jcallahan/wellnest/internal/cli/backups"
	"github.com/jcallahan/wellnest/internal/cli/habits"
	"github.com/jcallahan/wellnest/internal/cli/moods"
	"github.com/jcallahan/wellnest/internal/cli/profile"
	"github.com/jcallahan/wellnest/internal/cli/remind"
	"github.com/jcallahan/wellnest/internal/cli/settings"
	"github.com/jcallahan/wellnest/internal/cli/system"
	apperrors "github.com/jcallahan/wellnest/internal/errors"
	"github.com/jcallahan/wellnest/internal/logger"
	"github.com/jcallahan/wellnest/internal/notifier"
	"github.com/jcallahan/wellnest/internal/reminder"
	"github.com/jcallahan/wellnest/internal/storage"
	"github.com/jcallahan/wellnest/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .json suffix selects the JSON backend, anything else SQLite." type:"path" default:"~/.config/wellnest/wellnest.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd       `cmd:"" help:"Initialize wellnest storage."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Habit    habits.HabitCmd      `cmd:"" help:"Manage habits and habit tracking."`
	Mood     moods.MoodCmd        `cmd:"" help:"Manage the mood journal."`
	Remind   remind.RemindCmd     `cmd:"" help:"Manage hydration reminders."`
	Profile  profile.ProfileCmd   `cmd:"" help:"Manage the health profile and daily metrics."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the notifier secret in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored notifier secret (masked)."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Delete the notifier secret from the OS keyring."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check OS keyring availability." default:"1"`
	} `cmd:"" help:"Manage the notifier secret in the OS keyring."`
	Notify system.NotifyCmd `cmd:"" hidden:"" help:"Deliver a due reminder (used by external schedulers)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("wellnest"),
		kong.Description("Personal wellness companion: habits, moods, hydration reminders, and health tracking"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.3.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Select the storage backend from the file extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = sqlite.NewStore(CLI.Config)
	}

	// The reminder scheduler drives in-process timers; alarms fired by them
	// are routed back through the state machine.
	var sched *reminder.Scheduler
	svc := alarm.NewService(func(id string) {
		if sched != nil {
			if err := sched.HandleEvent(reminder.Fired{AlarmID: id}); err != nil {
				logger.Warn("Failed to handle reminder event", "error", err)
			}
		}
	})
	sched = reminder.NewScheduler(store, svc, notifier.New())

	appCtx := &cli.Context{
		Store:    store,
		Reminder: sched,
	}

	// Load the store before running the command (init handles its own loading)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
