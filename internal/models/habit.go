package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jcallahan/wellnest/internal/constants"
	"github.com/jcallahan/wellnest/internal/utils"
)

// DateSet is a set of calendar-day strings (YYYY-MM-DD). It serializes to a
// sorted JSON array and deduplicates on load, so the stored representation is
// stable regardless of insertion order.
type DateSet map[string]struct{}

func NewDateSet(days ...string) DateSet {
	s := make(DateSet, len(days))
	for _, d := range days {
		s[d] = struct{}{}
	}
	return s
}

// Add inserts a day into the set. Adding a day that is already present is a
// no-op.
func (s DateSet) Add(day string) {
	s[day] = struct{}{}
}

// Remove deletes a day from the set. Removing an absent day is a no-op.
func (s DateSet) Remove(day string) {
	delete(s, day)
}

func (s DateSet) Contains(day string) bool {
	_, ok := s[day]
	return ok
}

func (s DateSet) Len() int {
	return len(s)
}

// Days returns the members of the set sorted ascending.
func (s DateSet) Days() []string {
	days := make([]string, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	sort.Strings(days)
	return days
}

func (s DateSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Days())
}

func (s *DateSet) UnmarshalJSON(data []byte) error {
	var days []string
	if err := json.Unmarshal(data, &days); err != nil {
		return err
	}
	*s = NewDateSet(days...)
	return nil
}

// Habit represents a recurring practice to track. Completion is recorded per
// calendar day; the Active flag is a soft-delete marker.
type Habit struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Active        bool      `json:"active"`
	CompletedDays DateSet   `json:"completed_days"`
}

// NewHabit creates an active habit with a fresh identifier and an empty
// completion set.
func NewHabit(title, description string) Habit {
	return Habit{
		ID:            uuid.New().String(),
		Title:         strings.TrimSpace(title),
		Description:   strings.TrimSpace(description),
		CreatedAt:     time.Now(),
		Active:        true,
		CompletedDays: NewDateSet(),
	}
}

func (h *Habit) Validate() error {
	if strings.TrimSpace(h.Title) == "" {
		return fmt.Errorf("habit title cannot be empty")
	}
	return nil
}

// MarkCompleted records a completion for the given day. Idempotent. The
// caller is responsible for persisting the habit afterwards.
func (h *Habit) MarkCompleted(day string) {
	if h.CompletedDays == nil {
		h.CompletedDays = NewDateSet()
	}
	h.CompletedDays.Add(day)
}

// MarkCompletedToday records a completion for today's local calendar day.
func (h *Habit) MarkCompletedToday() {
	h.MarkCompleted(utils.Today())
}

// UnmarkCompleted removes the completion for the given day. Idempotent if
// the day is absent.
func (h *Habit) UnmarkCompleted(day string) {
	h.CompletedDays.Remove(day)
}

func (h *Habit) UnmarkCompletedToday() {
	h.UnmarkCompleted(utils.Today())
}

func (h *Habit) IsCompleted(day string) bool {
	return h.CompletedDays.Contains(day)
}

func (h *Habit) IsCompletedToday() bool {
	return h.IsCompleted(utils.Today())
}

// StreakFrom counts consecutive completed calendar days walking backward from
// the given day, stopping at the first gap. If the starting day itself is not
// completed the streak is 0.
//
// Days are compared as canonical YYYY-MM-DD strings, so the result depends on
// the device-local calendar date at the moment each completion was recorded.
// Streaks are not robust to clock changes or timezone travel; that is a
// documented limitation, not a bug.
func (h *Habit) StreakFrom(day string) int {
	t, err := utils.ParseDay(day)
	if err != nil {
		return 0
	}

	streak := 0
	for h.CompletedDays.Contains(t.Format(constants.DateFormat)) {
		streak++
		t = t.AddDate(0, 0, -1)
	}
	return streak
}

// Streak counts the habit's current streak ending today.
func (h *Habit) Streak() int {
	return h.StreakFrom(utils.Today())
}

// CompletionStats returns (completed, total) for the given day over active
// habits only. It is recomputed from scratch on every call so it always
// reflects the habit list passed in.
func CompletionStats(habits []Habit, day string) (completed, total int) {
	for _, h := range habits {
		if !h.Active {
			continue
		}
		total++
		if h.IsCompleted(day) {
			completed++
		}
	}
	return completed, total
}

// CompletionPercentage returns the share of active habits completed on the
// given day, floored to an integer percentage. Zero active habits yields 0.
func CompletionPercentage(habits []Habit, day string) int {
	completed, total := CompletionStats(habits, day)
	if total == 0 {
		return 0
	}
	return (completed * 100) / total
}
