package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jcallahan/wellnest/internal/models"
	"github.com/jcallahan/wellnest/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateHabits:
		content = docStyle.Render(m.habitList.View())
	case StateMoods:
		content = docStyle.Render(m.moodLog.View())
	case StateProfile:
		content = m.viewProfile()
	case StateAddHabit, StateAddMood:
		content = m.viewForm()
	case StateConfirmDelete:
		content = m.viewConfirm(dangerStyle.Render("Delete this habit? It can be restored later."))
	case StateConfirmRestore:
		content = m.viewConfirm(warningStyle.Render("Restore this habit?"))
	case StateConfirmMoodDelete:
		content = m.viewConfirm(dangerStyle.Render("Delete this mood entry? This cannot be undone."))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Today", "Habits", "Moods", "Profile"}
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	var b strings.Builder

	today := utils.Today()
	completed, total := models.CompletionStats(m.habits, today)
	percentage := models.CompletionPercentage(m.habits, today)

	b.WriteString(fmt.Sprintf("Today's habits (%d/%d, %d%%)\n\n", completed, total, percentage))
	b.WriteString(m.progress.ViewAs(float64(percentage) / 100.0))
	b.WriteString("\n\n")

	for _, h := range m.habits {
		if !h.Active {
			continue
		}
		box := "[ ]"
		if h.IsCompleted(today) {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, h.Title)
		if streak := h.Streak(); streak > 1 {
			line += subtleStyle.Render(fmt.Sprintf("  %d day streak 🔥", streak))
		}
		b.WriteString(line + "\n")
	}

	if len(m.moods) > 0 {
		latest := m.moods[0]
		b.WriteString(fmt.Sprintf("\nLatest mood: %s %s (%s)\n", latest.Emoji, latest.MoodName, latest.FormattedDate()))
	}

	b.WriteString("\n" + subtleStyle.Render(m.reminder.NextReminderText()) + "\n")

	return docStyle.Render(b.String())
}

func (m Model) viewProfile() string {
	var b strings.Builder
	p := m.profile

	b.WriteString(fmt.Sprintf("Health profile (%d%% complete)\n\n", p.CompletionPercentage()))

	if p.FullName != "" {
		b.WriteString(fmt.Sprintf("Name: %s\n", p.FullName))
	}
	if bmi := p.BMI(); bmi > 0 {
		b.WriteString(fmt.Sprintf("BMI: %.1f (%s)\n", bmi, p.BMICategory()))
	}
	if p.BloodPressureSystolic > 0 && p.BloodPressureDiastolic > 0 {
		b.WriteString(fmt.Sprintf("Blood pressure: %d/%d (%s)\n", p.BloodPressureSystolic, p.BloodPressureDiastolic, p.BloodPressureCategory()))
	}
	if p.HeartRate > 0 {
		b.WriteString(fmt.Sprintf("Heart rate: %d bpm (%s)\n", p.HeartRate, p.HeartRateStatus()))
	}

	b.WriteString(fmt.Sprintf("\nDaily water goal: %.1f L", p.DailyWaterGoal()))
	if p.WaterIntakeL > 0 {
		b.WriteString(fmt.Sprintf(" (%d%% reached)", p.WaterIntakePercentage()))
	}
	b.WriteString("\n")

	b.WriteString("\n" + subtleStyle.Render("Use 'wellnest profile set' to update your profile.") + "\n")

	return docStyle.Render(b.String())
}

func (m Model) viewForm() string {
	content := m.form.View()
	if m.formError != "" {
		content = dangerStyle.Render(m.formError) + "\n\n" + content
	}
	return docStyle.Render(content)
}

func (m Model) viewConfirm(prompt string) string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			prompt,
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
