package system

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/jcallahan/wellnest/internal/backup"
	"github.com/jcallahan/wellnest/internal/cli"
	"github.com/jcallahan/wellnest/internal/constants"
	"github.com/jcallahan/wellnest/internal/keyring"
	"github.com/jcallahan/wellnest/internal/migration"
	"github.com/jcallahan/wellnest/internal/notifier"
	"github.com/jcallahan/wellnest/internal/storage/sqlite"
	"github.com/jcallahan/wellnest/internal/utils"
	"github.com/jcallahan/wellnest/migrations"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: Storage reachable
	if err := checkStorageReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storeReachable = true
	}

	// Check 2: Schema version valid (only if storage is reachable)
	if storeReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (storage not reachable)\n")
	}

	// Check 3: Migrations complete (only if storage is reachable)
	if storeReachable {
		if err := checkMigrationsComplete(ctx); err != nil {
			fmt.Printf("❌ Migrations complete: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Migrations complete: OK\n")
		}
	} else {
		fmt.Printf("⊘ Migrations complete: SKIPPED (storage not reachable)\n")
	}

	// Check 4: Backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 5: Settings sanity (only if storage is reachable)
	if storeReachable {
		if err := checkSettings(ctx); err != nil {
			fmt.Printf("❌ Settings: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Settings: OK\n")
		}
	} else {
		fmt.Printf("⊘ Settings: SKIPPED (storage not reachable)\n")
	}

	// Check 6: Clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 7: Habit integrity (only if storage is reachable)
	if storeReachable {
		if err := checkHabitIntegrity(ctx); err != nil {
			fmt.Printf("❌ Habit integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Habit integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Habit integrity: SKIPPED (storage not reachable)\n")
	}

	// Check 8: Day formats (only if storage is reachable)
	if storeReachable {
		if err := checkDayFormats(ctx); err != nil {
			fmt.Printf("❌ Day formats: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Day formats: OK\n")
		}
	} else {
		fmt.Printf("⊘ Day formats: SKIPPED (storage not reachable)\n")
	}

	// Check 9: Keyring availability (warning only)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   keyring unavailable - notifier secrets fall back to the lockfile\n")
	}

	// Check 10: Tray notifier (warning only)
	if err := checkNotifier(); err != nil {
		fmt.Printf("⚠ Tray notifier: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Tray notifier: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	// For SQLite, also try a simple query
	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func newSQLiteRunner(store *sqlite.Store) (*migration.Runner, error) {
	db := store.GetDB()
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(db, subFS), nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		// JSON store doesn't have a schema version
		return nil
	}

	runner, err := newSQLiteRunner(sqliteStore)
	if err != nil {
		return err
	}

	currentVersion, err := runner.CurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	latestVersion, err := runner.LatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if currentVersion > latestVersion {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", currentVersion, latestVersion)
	}

	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		// JSON store doesn't have migrations
		return nil
	}

	runner, err := newSQLiteRunner(sqliteStore)
	if err != nil {
		return err
	}

	currentVersion, err := runner.CurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	latestVersion, err := runner.LatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if currentVersion < latestVersion {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", currentVersion, latestVersion)
	}

	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'wellnest backup create'")
	}

	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if settings.HydrationIntervalMin < constants.MinHydrationIntervalMin {
		return fmt.Errorf("hydration interval %d is below the minimum of %d minutes", settings.HydrationIntervalMin, constants.MinHydrationIntervalMin)
	}
	if settings.SnoozeDurationMin < 1 {
		return fmt.Errorf("snooze duration %d is below the minimum of 1 minute", settings.SnoozeDurationMin)
	}
	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("invalid timezone: %s", settings.Timezone)
	}

	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	return nil
}

func checkHabitIntegrity(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(true)
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}

	// Duplicate IDs
	seen := make(map[string]bool)
	for _, h := range habits {
		if seen[h.ID] {
			return fmt.Errorf("duplicate habit ID found: %s", h.ID)
		}
		seen[h.ID] = true
	}

	// Duplicate titles among active habits
	titles := make(map[string]bool)
	for _, h := range habits {
		if !h.Active {
			continue
		}
		if titles[h.Title] {
			return fmt.Errorf("duplicate active habit title found: %q", h.Title)
		}
		titles[h.Title] = true
	}

	// Orphaned completion days (only meaningful on SQLite)
	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}

		var orphanedCount int
		err := db.QueryRow(`
			SELECT COUNT(*)
			FROM habit_days hd
			LEFT JOIN habits h ON hd.habit_id = h.id
			WHERE h.id IS NULL
		`).Scan(&orphanedCount)
		if err != nil {
			return fmt.Errorf("failed to check orphaned habit days: %w", err)
		}
		if orphanedCount > 0 {
			return fmt.Errorf("found %d orphaned habit days (referencing non-existent habits)", orphanedCount)
		}
	}

	return nil
}

func checkDayFormats(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		// JSON store: validate through the models
		habits, err := ctx.Store.GetAllHabits(true)
		if err != nil {
			return fmt.Errorf("failed to get habits: %w", err)
		}
		for _, h := range habits {
			for _, day := range h.CompletedDays.Days() {
				if !utils.ValidDay(day) {
					return fmt.Errorf("habit %q has invalid day %q", h.Title, day)
				}
			}
		}
		return nil
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	var invalidCount int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM habit_days
		WHERE day NOT GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
	`).Scan(&invalidCount)
	if err != nil {
		return fmt.Errorf("failed to check habit day formats: %w", err)
	}
	if invalidCount > 0 {
		return fmt.Errorf("found %d habit days with invalid date format", invalidCount)
	}

	err = db.QueryRow(`
		SELECT COUNT(*)
		FROM health_logs
		WHERE day NOT GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
	`).Scan(&invalidCount)
	if err != nil {
		return fmt.Errorf("failed to check health log day formats: %w", err)
	}
	if invalidCount > 0 {
		return fmt.Errorf("found %d health logs with invalid date format", invalidCount)
	}

	return nil
}

func checkNotifier() error {
	n := notifier.New()
	if err := n.Ping(); err != nil {
		return fmt.Errorf("tray app not reachable: %v (notifications will be logged only)", err)
	}
	return nil
}
