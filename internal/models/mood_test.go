package models

import (
	"strings"
	"testing"
)

func TestMoodName(t *testing.T) {
	tests := []struct {
		emoji string
		want  string
	}{
		{"😄", "Very Happy"},
		{"😢", "Very Sad"},
		{"💪", "Energetic"},
		{"🙃", "Unknown"},
		{"", "Unknown"},
	}

	for _, tt := range tests {
		if got := MoodName(tt.emoji); got != tt.want {
			t.Errorf("MoodName(%q) = %q, want %q", tt.emoji, got, tt.want)
		}
	}
}

func TestNewMoodEntry(t *testing.T) {
	e := NewMoodEntry("😊", "  good day  ")

	if e.ID == "" {
		t.Error("NewMoodEntry should assign an ID")
	}
	if e.MoodName != "Happy" {
		t.Errorf("MoodName = %q, want %q", e.MoodName, "Happy")
	}
	if e.Note != "good day" {
		t.Errorf("Note = %q, want trimmed %q", e.Note, "good day")
	}
	if e.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestMoodEntry_Validate(t *testing.T) {
	valid := NewMoodEntry("😊", "")
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() on valid entry = %v", err)
	}

	invalid := MoodEntry{ID: "x"}
	if err := invalid.Validate(); err == nil {
		t.Error("Validate() should fail on empty emoji")
	}
}

func TestMoodEntry_ShareText(t *testing.T) {
	e := NewMoodEntry("🤗", "thankful for tea")
	text := e.ShareText()

	for _, want := range []string{"🤗", "Grateful", "thankful for tea", "#MoodTracking"} {
		if !strings.Contains(text, want) {
			t.Errorf("ShareText missing %q:\n%s", want, text)
		}
	}

	noNote := NewMoodEntry("😐", "")
	if strings.Contains(noNote.ShareText(), "Note:") {
		t.Error("ShareText should omit the note section when the note is empty")
	}
}
