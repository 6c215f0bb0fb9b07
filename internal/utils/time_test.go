package utils

import (
	"testing"
	"time"
)

func TestDayString(t *testing.T) {
	instant := time.Date(2026, 8, 15, 23, 59, 0, 0, time.UTC)
	if got := DayString(instant); got != "2026-08-15" {
		t.Errorf("DayString = %q, want %q", got, "2026-08-15")
	}
}

func TestValidDay(t *testing.T) {
	tests := []struct {
		day  string
		want bool
	}{
		{"2026-08-15", true},
		{"2026-02-29", false}, // not a leap year
		{"2024-02-29", true},
		{"2026/08/15", false},
		{"15-08-2026", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidDay(tt.day); got != tt.want {
			t.Errorf("ValidDay(%q) = %v, want %v", tt.day, got, tt.want)
		}
	}
}

func TestPrevDay(t *testing.T) {
	tests := []struct {
		day  string
		want string
	}{
		{"2026-08-15", "2026-08-14"},
		{"2026-08-01", "2026-07-31"},
		{"2026-01-01", "2025-12-31"},
		{"2024-03-01", "2024-02-29"},
	}

	for _, tt := range tests {
		got, err := PrevDay(tt.day)
		if err != nil {
			t.Errorf("PrevDay(%q) error: %v", tt.day, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PrevDay(%q) = %q, want %q", tt.day, got, tt.want)
		}
	}

	if _, err := PrevDay("garbage"); err == nil {
		t.Error("PrevDay on invalid input should error")
	}
}

func TestValidateTimezone(t *testing.T) {
	tests := []struct {
		tz   string
		want bool
	}{
		{"", true},
		{"Local", true},
		{"UTC", true},
		{"America/New_York", true},
		{"Not/A_Zone", false},
	}

	for _, tt := range tests {
		if got := ValidateTimezone(tt.tz); got != tt.want {
			t.Errorf("ValidateTimezone(%q) = %v, want %v", tt.tz, got, tt.want)
		}
	}
}

func TestFormatInterval(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{15, "15 minutes"},
		{45, "45 minutes"},
		{60, "1 hour"},
		{120, "2 hours"},
		{150, "2 hours and 30 minutes"},
		{61, "1 hours and 1 minutes"},
	}

	for _, tt := range tests {
		if got := FormatInterval(tt.minutes); got != tt.want {
			t.Errorf("FormatInterval(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
