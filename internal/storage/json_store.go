package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jcallahan/wellnest/internal/logger"
	"github.com/jcallahan/wellnest/internal/models"
)

type document struct {
	Version    int                              `json:"version"`
	Settings   models.Settings                  `json:"settings"`
	Habits     map[string]models.Habit          `json:"habits"`
	Moods      []models.MoodEntry               `json:"moods"`
	Profile    models.HealthProfile             `json:"profile"`
	HealthLogs map[string]models.DailyHealthLog `json:"health_logs"` // day -> log
}

type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func emptyDocument() *document {
	return &document{
		Version:    1,
		Settings:   models.DefaultSettings(),
		Habits:     make(map[string]models.Habit),
		Moods:      []models.MoodEntry{},
		HealthLogs: make(map[string]models.DailyHealthLog),
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = emptyDocument()

	// Seed starter habits on first initialization
	if !s.doc.Settings.FirstLaunchDone {
		for _, h := range models.DefaultHabits() {
			s.doc.Habits[h.ID] = h
		}
		s.doc.Settings.FirstLaunchDone = true
	}

	return s.save()
}

// Load reads the store from disk. A missing file and malformed JSON are both
// treated as "empty/default", never as fatal errors: the document is rebuilt
// from defaults and will be written back on the next save.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.doc = emptyDocument()
			return nil
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		logger.Warn("Discarding malformed storage file", "path", s.path, "error", err)
		s.doc = emptyDocument()
		return nil
	}
	s.doc = doc

	// Ensure maps are initialized and defaults are filled in
	if s.doc.Habits == nil {
		s.doc.Habits = make(map[string]models.Habit)
	}
	if s.doc.HealthLogs == nil {
		s.doc.HealthLogs = make(map[string]models.DailyHealthLog)
	}
	models.ApplyDefaultSettings(&s.doc.Settings)

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.doc == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.doc.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Settings = settings
	return s.save()
}

func (s *JSONStore) AddHabit(habit models.Habit) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.doc.Habits[habit.ID] = habit
	return s.save()
}

func (s *JSONStore) GetHabit(id string) (models.Habit, error) {
	if s.doc == nil {
		return models.Habit{}, fmt.Errorf("storage not loaded")
	}

	habit, ok := s.doc.Habits[id]
	if !ok {
		return models.Habit{}, fmt.Errorf("habit not found: %s", id)
	}

	return habit, nil
}

func (s *JSONStore) GetHabitByTitle(title string) (models.Habit, error) {
	if s.doc == nil {
		return models.Habit{}, fmt.Errorf("storage not loaded")
	}

	for _, habit := range s.doc.Habits {
		if habit.Title == title && habit.Active {
			return habit, nil
		}
	}

	return models.Habit{}, fmt.Errorf("habit not found: %s", title)
}

func (s *JSONStore) GetAllHabits(includeInactive bool) ([]models.Habit, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	habits := make([]models.Habit, 0, len(s.doc.Habits))
	for _, habit := range s.doc.Habits {
		if !includeInactive && !habit.Active {
			continue
		}
		habits = append(habits, habit)
	}

	sort.Slice(habits, func(i, j int) bool {
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})

	return habits, nil
}

func (s *JSONStore) UpdateHabit(habit models.Habit) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.doc.Habits[habit.ID]; !ok {
		return fmt.Errorf("habit not found: %s", habit.ID)
	}

	s.doc.Habits[habit.ID] = habit
	return s.save()
}

func (s *JSONStore) DeactivateHabit(id string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	habit, ok := s.doc.Habits[id]
	if !ok {
		return fmt.Errorf("habit not found: %s", id)
	}
	if !habit.Active {
		return fmt.Errorf("habit already deleted: %s", id)
	}

	habit.Active = false
	s.doc.Habits[id] = habit
	return s.save()
}

func (s *JSONStore) RestoreHabit(id string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	habit, ok := s.doc.Habits[id]
	if !ok {
		return fmt.Errorf("habit not found: %s", id)
	}
	if habit.Active {
		return fmt.Errorf("cannot restore a habit that is not deleted: %s", id)
	}

	habit.Active = true
	s.doc.Habits[id] = habit
	return s.save()
}

func (s *JSONStore) AddMoodEntry(entry models.MoodEntry) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	// Newest first
	s.doc.Moods = append([]models.MoodEntry{entry}, s.doc.Moods...)
	return s.save()
}

func (s *JSONStore) GetMoodEntries() ([]models.MoodEntry, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	entries := make([]models.MoodEntry, len(s.doc.Moods))
	copy(entries, s.doc.Moods)

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries, nil
}

func (s *JSONStore) DeleteMoodEntry(id string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i, entry := range s.doc.Moods {
		if entry.ID == id {
			s.doc.Moods = append(s.doc.Moods[:i], s.doc.Moods[i+1:]...)
			return s.save()
		}
	}

	return fmt.Errorf("mood entry not found: %s", id)
}

func (s *JSONStore) GetHealthProfile() (models.HealthProfile, error) {
	if s.doc == nil {
		return models.HealthProfile{}, fmt.Errorf("storage not loaded")
	}
	return s.doc.Profile, nil
}

func (s *JSONStore) SaveHealthProfile(profile models.HealthProfile) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Profile = profile
	return s.save()
}

func (s *JSONStore) SaveHealthLog(log models.DailyHealthLog) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.doc.HealthLogs[log.Day] = log
	return s.save()
}

func (s *JSONStore) GetHealthLog(day string) (models.DailyHealthLog, error) {
	if s.doc == nil {
		return models.DailyHealthLog{}, fmt.Errorf("storage not loaded")
	}

	log, ok := s.doc.HealthLogs[day]
	if !ok {
		return models.DailyHealthLog{}, fmt.Errorf("no health log for day: %s", day)
	}

	return log, nil
}

func (s *JSONStore) GetHealthLogs(startDay, endDay string) ([]models.DailyHealthLog, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var logs []models.DailyHealthLog
	for day, log := range s.doc.HealthLogs {
		if day >= startDay && day <= endDay {
			logs = append(logs, log)
		}
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Day < logs[j].Day
	})

	return logs, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
