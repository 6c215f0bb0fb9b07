package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jcallahan/wellnest/internal/models"
	"github.com/jcallahan/wellnest/internal/reminder"
	"github.com/jcallahan/wellnest/internal/storage"
	"github.com/jcallahan/wellnest/internal/tui/components/habitlist"
	"github.com/jcallahan/wellnest/internal/tui/components/moodlog"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateHabits
	StateMoods
	StateProfile
	StateAddHabit
	StateAddMood
	StateConfirmDelete
	StateConfirmRestore
	StateConfirmMoodDelete
)

type HabitFormModel struct {
	Title       string
	Description string
}

type MoodFormModel struct {
	Emoji string
	Note  string
}

type Model struct {
	store    storage.Provider
	reminder *reminder.Scheduler

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	habitList habitlist.Model
	moodLog   moodlog.Model
	progress  progress.Model

	form      *huh.Form
	habitForm *HabitFormModel
	moodForm  *MoodFormModel

	habitToDeleteID  string
	habitToRestoreID string
	moodToDeleteID   string

	habits  []models.Habit
	moods   []models.MoodEntry
	profile models.HealthProfile

	formError string
	quitting  bool
	width     int
	height    int
}

func NewModel(store storage.Provider, sched *reminder.Scheduler) Model {
	habits, err := store.GetAllHabits(true)
	if err != nil {
		habits = []models.Habit{}
	}
	moods, err := store.GetMoodEntries()
	if err != nil {
		moods = []models.MoodEntry{}
	}
	profile, _ := store.GetHealthProfile()

	m := Model{
		store:     store,
		reminder:  sched,
		state:     StateToday,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: habitlist.New(habits, 0, 0),
		moodLog:   moodlog.New(moods, 0, 0),
		progress:  progress.New(progress.WithDefaultGradient()),
		habits:    habits,
		moods:     moods,
		profile:   profile,
	}

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateHabits:
		keys = append(keys, m.keys.Add, m.keys.Toggle, m.keys.Delete)
	case StateMoods:
		keys = append(keys, m.keys.Add, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateHabits:
		actions = []key.Binding{m.keys.Add, m.keys.Toggle, m.keys.Delete, m.keys.Restore}
	case StateMoods:
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshHabits reloads the habit list from storage, including soft-deleted
// habits so they can be restored from the list.
func (m *Model) refreshHabits() {
	habits, err := m.store.GetAllHabits(true)
	if err != nil {
		return
	}
	m.habits = habits
	m.habitList.SetHabits(habits)
}

func (m *Model) refreshMoods() {
	moods, err := m.store.GetMoodEntries()
	if err != nil {
		return
	}
	m.moods = moods
	m.moodLog.SetEntries(moods)
}
