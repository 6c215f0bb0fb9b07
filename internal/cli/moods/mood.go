package moods

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/jcallahan/wellnest/internal/cli"
	"github.com/jcallahan/wellnest/internal/models"
)

type MoodCmd struct {
	Add    MoodAddCmd    `cmd:"" help:"Record how you're feeling."`
	List   MoodListCmd   `cmd:"" help:"Show the mood journal, newest first."`
	Delete MoodDeleteCmd `cmd:"" help:"Delete a mood entry by id."`
	Share  MoodShareCmd  `cmd:"" help:"Print the share text for a mood entry."`
}

type MoodAddCmd struct {
	Emoji string `help:"Mood emoji (skips the selection prompt)." default:""`
	Note  string `help:"Optional note." default:""`
}

func (c *MoodAddCmd) Run(ctx *cli.Context) error {
	emoji := c.Emoji

	if emoji == "" {
		options := make([]huh.Option[string], 0, len(models.MoodOptions))
		for _, opt := range models.MoodOptions {
			options = append(options, huh.NewOption(fmt.Sprintf("%s  %s", opt.Emoji, opt.Name), opt.Emoji))
		}

		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling?").
				Options(options...).
				Value(&emoji),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	entry := models.NewMoodEntry(emoji, c.Note)
	if err := entry.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddMoodEntry(entry); err != nil {
		return err
	}

	fmt.Printf("Recorded mood: %s %s\n", entry.Emoji, entry.MoodName)
	return nil
}

type MoodListCmd struct {
	Limit int `help:"Maximum number of entries to show (0 for all)." default:"20"`
}

func (c *MoodListCmd) Run(ctx *cli.Context) error {
	entries, err := ctx.Store.GetMoodEntries()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No mood entries yet. Record one with 'wellnest mood add'.")
		return nil
	}

	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}

	for _, entry := range entries {
		line := fmt.Sprintf("%s  %s %s (%s)", entry.FormattedDate(), entry.Emoji, entry.MoodName, entry.FormattedTime())
		if entry.Note != "" {
			line += fmt.Sprintf(" - %s", entry.Note)
		}
		fmt.Printf("%s\n  id: %s\n", line, entry.ID)
	}

	return nil
}

type MoodDeleteCmd struct {
	ID string `arg:"" help:"Mood entry id."`
}

func (c *MoodDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteMoodEntry(c.ID); err != nil {
		return err
	}
	fmt.Println("Deleted mood entry.")
	return nil
}

type MoodShareCmd struct {
	ID string `arg:"" help:"Mood entry id."`
}

func (c *MoodShareCmd) Run(ctx *cli.Context) error {
	entries, err := ctx.Store.GetMoodEntries()
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.ID == c.ID {
			fmt.Println(entry.ShareText())
			return nil
		}
	}

	return fmt.Errorf("mood entry not found: %s", c.ID)
}
