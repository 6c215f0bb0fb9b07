package storage

import "github.com/jcallahan/wellnest/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByTitle(title string) (models.Habit, error)
	GetAllHabits(includeInactive bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	// DeactivateHabit performs the soft delete: the habit stays in storage
	// with its completion history, readers filter on the Active flag.
	DeactivateHabit(id string) error
	RestoreHabit(id string) error

	// Mood entries (newest first)
	AddMoodEntry(models.MoodEntry) error
	GetMoodEntries() ([]models.MoodEntry, error)
	DeleteMoodEntry(id string) error

	// Health profile
	GetHealthProfile() (models.HealthProfile, error)
	SaveHealthProfile(models.HealthProfile) error

	// Daily health logs
	SaveHealthLog(models.DailyHealthLog) error
	GetHealthLog(day string) (models.DailyHealthLog, error)
	GetHealthLogs(startDay, endDay string) ([]models.DailyHealthLog, error)

	// Utils
	GetConfigPath() string
}
