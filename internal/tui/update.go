package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jcallahan/wellnest/internal/models"
	"github.com/jcallahan/wellnest/internal/tui/components/habitlist"
	"github.com/jcallahan/wellnest/internal/tui/components/moodlog"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Add Habit State
	if m.state == StateAddHabit {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateHabits
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			habit := models.NewHabit(m.habitForm.Title, m.habitForm.Description)
			if err := habit.Validate(); err != nil {
				m.formError = err.Error()
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			if err := m.store.AddHabit(habit); err != nil {
				m.formError = fmt.Sprintf("Failed to add habit: %v", err)
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			m.formError = ""
			m.refreshHabits()
			m.state = StateHabits
		case huh.StateAborted:
			m.state = StateHabits
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Add Mood State
	if m.state == StateAddMood {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateMoods
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			entry := models.NewMoodEntry(m.moodForm.Emoji, m.moodForm.Note)
			if err := m.store.AddMoodEntry(entry); err != nil {
				m.formError = fmt.Sprintf("Failed to log mood: %v", err)
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			m.formError = ""
			m.refreshMoods()
			m.state = StateMoods
		case huh.StateAborted:
			m.state = StateMoods
		}
		return m, tea.Batch(cmds...)
	}

	// Handle confirmation states
	if m.state == StateConfirmDelete || m.state == StateConfirmRestore || m.state == StateConfirmMoodDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				m.applyConfirmedAction()
				m.state = m.previousState
			case "n", "N", "esc", "q":
				m.habitToDeleteID = ""
				m.habitToRestoreID = ""
				m.moodToDeleteID = ""
				m.state = m.previousState
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.habitList.SetSize(msg.Width-4, msg.Height-6)
		m.moodLog.SetSize(msg.Width-4, msg.Height-6)
		m.progress.Width = msg.Width - 12
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "?":
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case "tab":
			m.state = nextMainState(m.state)
			return m, nil
		case "shift+tab":
			m.state = prevMainState(m.state)
			return m, nil
		}

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		m.toggleHabit(msg.ID)
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.habitToDeleteID = msg.ID
		m.previousState = m.state
		m.state = StateConfirmDelete
		return m, nil

	case habitlist.RestoreHabitMsg:
		m.habitToRestoreID = msg.ID
		m.previousState = m.state
		m.state = StateConfirmRestore
		return m, nil

	case moodlog.AddMoodMsg:
		m.moodForm = &MoodFormModel{}
		m.form = newMoodForm(m.moodForm)
		m.state = StateAddMood
		return m, m.form.Init()

	case moodlog.DeleteMoodMsg:
		m.moodToDeleteID = msg.ID
		m.previousState = m.state
		m.state = StateConfirmMoodDelete
		return m, nil
	}

	// Delegate to the active component
	var cmd tea.Cmd
	switch m.state {
	case StateHabits:
		m.habitList, cmd = m.habitList.Update(msg)
		cmds = append(cmds, cmd)
	case StateMoods:
		m.moodLog, cmd = m.moodLog.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func nextMainState(s SessionState) SessionState {
	switch s {
	case StateToday:
		return StateHabits
	case StateHabits:
		return StateMoods
	case StateMoods:
		return StateProfile
	case StateProfile:
		return StateToday
	}
	return s
}

func prevMainState(s SessionState) SessionState {
	switch s {
	case StateToday:
		return StateProfile
	case StateHabits:
		return StateToday
	case StateMoods:
		return StateHabits
	case StateProfile:
		return StateMoods
	}
	return s
}

func (m *Model) toggleHabit(id string) {
	habit, err := m.store.GetHabit(id)
	if err != nil {
		return
	}
	if habit.IsCompletedToday() {
		habit.UnmarkCompletedToday()
	} else {
		habit.MarkCompletedToday()
	}
	if err := m.store.UpdateHabit(habit); err != nil {
		return
	}
	m.refreshHabits()
}

func (m *Model) applyConfirmedAction() {
	switch {
	case m.habitToDeleteID != "":
		if err := m.store.DeactivateHabit(m.habitToDeleteID); err == nil {
			m.refreshHabits()
		}
		m.habitToDeleteID = ""
	case m.habitToRestoreID != "":
		if err := m.store.RestoreHabit(m.habitToRestoreID); err == nil {
			m.refreshHabits()
		}
		m.habitToRestoreID = ""
	case m.moodToDeleteID != "":
		if err := m.store.DeleteMoodEntry(m.moodToDeleteID); err == nil {
			m.refreshMoods()
		}
		m.moodToDeleteID = ""
	}
}

func newHabitForm(f *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit title").
				Value(&f.Title),
			huh.NewInput().
				Title("Description (optional)").
				Value(&f.Description),
		),
	)
}

func newMoodForm(f *MoodFormModel) *huh.Form {
	options := make([]huh.Option[string], len(models.MoodOptions))
	for i, opt := range models.MoodOptions {
		options[i] = huh.NewOption(fmt.Sprintf("%s %s", opt.Emoji, opt.Name), opt.Emoji)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling?").
				Options(options...).
				Value(&f.Emoji),
			huh.NewInput().
				Title("Note (optional)").
				Value(&f.Note),
		),
	)
}
