package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MoodOption pairs an emoji glyph with its human-readable mood name.
type MoodOption struct {
	Emoji string
	Name  string
}

// MoodOptions is the fixed table of selectable moods.
var MoodOptions = []MoodOption{
	{"😄", "Very Happy"},
	{"😊", "Happy"},
	{"😐", "Neutral"},
	{"😔", "Sad"},
	{"😢", "Very Sad"},
	{"😴", "Tired"},
	{"😤", "Frustrated"},
	{"🤗", "Grateful"},
	{"😰", "Anxious"},
	{"💪", "Energetic"},
}

// MoodName returns the mood name for an emoji, or "Unknown" for an emoji
// outside the fixed table.
func MoodName(emoji string) string {
	for _, opt := range MoodOptions {
		if opt.Emoji == emoji {
			return opt.Name
		}
	}
	return "Unknown"
}

// MoodEntry is a single mood journal record. Entries are immutable after
// creation; the journal only supports add and delete.
type MoodEntry struct {
	ID        string    `json:"id"`
	Emoji     string    `json:"emoji"`
	MoodName  string    `json:"mood_name"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMoodEntry creates a mood entry for the given emoji, resolving the mood
// name from the fixed table.
func NewMoodEntry(emoji, note string) MoodEntry {
	return MoodEntry{
		ID:        uuid.New().String(),
		Emoji:     emoji,
		MoodName:  MoodName(emoji),
		Note:      strings.TrimSpace(note),
		CreatedAt: time.Now(),
	}
}

func (e *MoodEntry) Validate() error {
	if e.Emoji == "" {
		return fmt.Errorf("mood emoji cannot be empty")
	}
	return nil
}

// FormattedDate returns the entry date for display (e.g. "Jan 02, 2006").
func (e *MoodEntry) FormattedDate() string {
	return e.CreatedAt.Format("Jan 02, 2006")
}

// FormattedTime returns the entry clock time for display.
func (e *MoodEntry) FormattedTime() string {
	return e.CreatedAt.Format("15:04")
}

// ShareText renders the entry as a shareable text block.
func (e *MoodEntry) ShareText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "My mood on %s: %s %s", e.FormattedDate(), e.Emoji, e.MoodName)
	if e.Note != "" {
		fmt.Fprintf(&b, "\n\nNote: %s", e.Note)
	}
	fmt.Fprintf(&b, "\n\nLogged at %s", e.FormattedTime())
	b.WriteString("\n\n#PersonalWellness #MoodTracking")
	return b.String()
}
