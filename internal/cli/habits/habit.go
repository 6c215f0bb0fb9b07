package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/jcallahan/wellnest/internal/cli"
	"github.com/jcallahan/wellnest/internal/constants"
	"github.com/jcallahan/wellnest/internal/models"
	"github.com/jcallahan/wellnest/internal/utils"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Edit    HabitEditCmd    `cmd:"" help:"Edit a habit's title or description."`
	Mark    HabitMarkCmd    `cmd:"" help:"Toggle a habit's completion for a day."`
	Today   HabitTodayCmd   `cmd:"" help:"Show today's habit status."`
	Streak  HabitStreakCmd  `cmd:"" help:"Show a habit's current streak."`
	Log     HabitLogCmd     `cmd:"" help:"Show habit log (ASCII history)."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit (soft delete)."`
	Restore HabitRestoreCmd `cmd:"" help:"Restore a deleted habit."`
}

// todayFor resolves today's calendar day in the configured timezone, falling
// back to the system timezone when settings are unreadable.
func todayFor(ctx *cli.Context) string {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return utils.Today()
	}
	day, err := utils.TodayInTimezone(settings.Timezone)
	if err != nil {
		return utils.Today()
	}
	return day
}

type HabitAddCmd struct {
	Title       string `arg:"" help:"Habit title."`
	Description string `help:"Optional description." default:""`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	// Check if habit with same title already exists
	if _, err := ctx.Store.GetHabitByTitle(c.Title); err == nil {
		return fmt.Errorf("habit with title %q already exists", c.Title)
	}

	habit := models.NewHabit(c.Title, c.Description)
	if err := habit.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", habit.Title)
	return nil
}

type HabitListCmd struct {
	Deleted bool `help:"Include deleted habits."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(c.Deleted)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		status := ""
		if !habit.Active {
			status = " [DELETED]"
		}
		streak := habit.Streak()
		if streak > 0 {
			status += fmt.Sprintf(" (streak: %d)", streak)
		}
		fmt.Printf("%s%s\n", habit.Title, status)
	}

	return nil
}

type HabitEditCmd struct {
	Title       string `arg:"" help:"Habit title to edit."`
	NewTitle    string `help:"New title." default:""`
	Description string `help:"New description." default:""`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByTitle(c.Title)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Title)
	}

	if c.NewTitle == "" && c.Description == "" {
		return fmt.Errorf("nothing to change, pass --new-title and/or --description")
	}

	if c.NewTitle != "" {
		habit.Title = strings.TrimSpace(c.NewTitle)
	}
	if c.Description != "" {
		habit.Description = c.Description
	}

	if err := habit.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Title)
	return nil
}

type HabitMarkCmd struct {
	Title string `arg:"" help:"Habit title."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitMarkCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByTitle(c.Title)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Title)
	}

	day := c.Date
	if day == "" {
		day = todayFor(ctx)
	} else if !utils.ValidDay(day) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}

	// Toggle
	if habit.IsCompleted(day) {
		habit.UnmarkCompleted(day)
		if err := ctx.Store.UpdateHabit(habit); err != nil {
			return err
		}
		fmt.Printf("Unmarked habit %q for %s\n", habit.Title, day)
		return nil
	}

	habit.MarkCompleted(day)
	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Marked habit %q for %s\n", habit.Title, day)
	return nil
}

type HabitTodayCmd struct{}

func (c *HabitTodayCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := todayFor(ctx)
	fmt.Printf("Habits for %s:\n\n", today)

	for _, habit := range habits {
		status := "[ ]"
		if habit.IsCompleted(today) {
			status = "[x]"
		}
		fmt.Printf("%s %s\n", status, habit.Title)
	}

	completed, total := models.CompletionStats(habits, today)
	fmt.Printf("\nCompleted: %d/%d (%d%%)\n", completed, total, models.CompletionPercentage(habits, today))
	return nil
}

type HabitStreakCmd struct {
	Title string `arg:"" help:"Habit title."`
}

func (c *HabitStreakCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByTitle(c.Title)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Title)
	}

	streak := habit.Streak()
	switch streak {
	case 0:
		fmt.Printf("%s: no active streak. Complete it today to start one!\n", habit.Title)
	case 1:
		fmt.Printf("%s: 1 day streak 🔥\n", habit.Title)
	default:
		fmt.Printf("%s: %d day streak 🔥\n", habit.Title, streak)
	}
	return nil
}

type HabitLogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for specific habit only."`
}

func (c *HabitLogCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	var selectedHabits []models.Habit
	if c.Habit != "" {
		for _, h := range habits {
			if h.Title == c.Habit {
				selectedHabits = []models.Habit{h}
				break
			}
		}
		if len(selectedHabits) == 0 {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
	} else {
		selectedHabits = habits
	}

	endDay := time.Now()
	startDay := endDay.AddDate(0, 0, -(c.Days - 1))

	fmt.Printf("Habit log (last %d days):\n\n", c.Days)

	// Header with dates
	maxNameLen := 20
	fmt.Print("Habit               ")
	for i := 0; i < c.Days; i++ {
		day := startDay.AddDate(0, 0, i)
		fmt.Printf(" %5s", day.Format("01/02"))
	}
	fmt.Println()

	fmt.Print(strings.Repeat("-", maxNameLen))
	for i := 0; i < c.Days; i++ {
		fmt.Print("------")
	}
	fmt.Println()

	for _, habit := range selectedHabits {
		name := habit.Title
		if len(name) > maxNameLen {
			name = name[:maxNameLen-3] + "..."
		} else {
			name = name + strings.Repeat(" ", maxNameLen-len(name))
		}
		fmt.Print(name)

		for i := 0; i < c.Days; i++ {
			day := startDay.AddDate(0, 0, i).Format(constants.DateFormat)
			if habit.IsCompleted(day) {
				fmt.Print("  x   ")
			} else {
				fmt.Print("  .   ")
			}
		}
		fmt.Println()
	}

	return nil
}

type HabitDeleteCmd struct {
	Title string `arg:"" help:"Habit title to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByTitle(c.Title)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Title)
	}

	if err := ctx.Store.DeactivateHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Title)
	fmt.Println("(This is a soft delete. Use 'wellnest habit restore' to undo)")
	return nil
}

type HabitRestoreCmd struct {
	Title string `arg:"" help:"Habit title to restore."`
}

func (c *HabitRestoreCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(true)
	if err != nil {
		return err
	}

	var habit *models.Habit
	for i := range habits {
		if habits[i].Title == c.Title && !habits[i].Active {
			habit = &habits[i]
			break
		}
	}

	if habit == nil {
		return fmt.Errorf("deleted habit %q not found", c.Title)
	}

	if err := ctx.Store.RestoreHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Restored habit: %s\n", habit.Title)
	return nil
}
