package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jcallahan/wellnest/internal/cli"
	"github.com/jcallahan/wellnest/internal/storage"
	"github.com/jcallahan/wellnest/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing storage before initialization."`
	Source string `help:"Source storage path to migrate data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if c.Source != "" {
			absDbPath, err := filepath.Abs(dbPath)
			if err == nil {
				dbPath = absDbPath
			}
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized wellnest storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Migrating data from: %s\n", c.Source)
		if err := c.migrateData(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

// migrateData copies everything from another storage file, in either backend
// format, into the freshly initialized store.
func (c *InitCmd) migrateData(ctx *cli.Context, sourcePath string) error {
	var sourceStore storage.Provider
	if strings.HasSuffix(sourcePath, ".json") {
		sourceStore = storage.NewJSONStore(sourcePath)
	} else {
		sourceStore = sqlite.NewStore(sourcePath)
	}

	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source storage: %w", err)
	}
	defer sourceStore.Close()

	fmt.Println("  Migrating settings...")
	settings, err := sourceStore.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	fmt.Println("  Migrating habits...")
	habits, err := sourceStore.GetAllHabits(true)
	if err != nil {
		return fmt.Errorf("failed to get habits from source: %w", err)
	}
	for _, habit := range habits {
		if err := ctx.Store.AddHabit(habit); err != nil {
			return fmt.Errorf("failed to add habit %s: %w", habit.ID, err)
		}
	}
	fmt.Printf("    Migrated %d habits\n", len(habits))

	fmt.Println("  Migrating mood entries...")
	moods, err := sourceStore.GetMoodEntries()
	if err != nil {
		return fmt.Errorf("failed to get mood entries from source: %w", err)
	}
	// Insert oldest first so newest-first ordering is preserved
	for i := len(moods) - 1; i >= 0; i-- {
		if err := ctx.Store.AddMoodEntry(moods[i]); err != nil {
			return fmt.Errorf("failed to add mood entry %s: %w", moods[i].ID, err)
		}
	}
	fmt.Printf("    Migrated %d mood entries\n", len(moods))

	fmt.Println("  Migrating health profile...")
	profile, err := sourceStore.GetHealthProfile()
	if err != nil {
		return fmt.Errorf("failed to get health profile from source: %w", err)
	}
	if err := ctx.Store.SaveHealthProfile(profile); err != nil {
		return fmt.Errorf("failed to save health profile to destination: %w", err)
	}

	fmt.Println("  Migrating health logs...")
	logs, err := sourceStore.GetHealthLogs("0000-01-01", "9999-12-31")
	if err != nil {
		return fmt.Errorf("failed to get health logs from source: %w", err)
	}
	for _, log := range logs {
		if err := ctx.Store.SaveHealthLog(log); err != nil {
			return fmt.Errorf("failed to save health log for %s: %w", log.Day, err)
		}
	}
	fmt.Printf("    Migrated %d health logs\n", len(logs))

	return nil
}
