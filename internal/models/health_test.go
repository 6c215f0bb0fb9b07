package models

import (
	"math"
	"testing"
)

func TestHealthProfile_BMI(t *testing.T) {
	tests := []struct {
		name     string
		height   float64
		weight   float64
		want     float64
		category string
	}{
		{"normal", 175, 70, 22.86, "Normal"},
		{"underweight", 180, 55, 16.98, "Underweight"},
		{"overweight", 170, 80, 27.68, "Overweight"},
		{"obese", 160, 90, 35.16, "Obese"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := HealthProfile{HeightCm: tt.height, WeightKg: tt.weight}
			got := p.BMI()
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("BMI() = %.2f, want %.2f", got, tt.want)
			}
			if cat := p.BMICategory(); cat != tt.category {
				t.Errorf("BMICategory() = %q, want %q", cat, tt.category)
			}
		})
	}

	missing := HealthProfile{HeightCm: 175}
	if missing.BMI() != 0 {
		t.Error("BMI with missing weight should be 0")
	}
}

func TestHealthProfile_BloodPressureCategory(t *testing.T) {
	tests := []struct {
		systolic  int
		diastolic int
		want      string
	}{
		{110, 70, "Normal"},
		{125, 75, "Elevated"},
		{135, 85, "High Stage 1"},
		{150, 95, "High Stage 2"},
	}

	for _, tt := range tests {
		p := HealthProfile{BloodPressureSystolic: tt.systolic, BloodPressureDiastolic: tt.diastolic}
		if got := p.BloodPressureCategory(); got != tt.want {
			t.Errorf("BloodPressureCategory(%d/%d) = %q, want %q", tt.systolic, tt.diastolic, got, tt.want)
		}
	}
}

func TestHealthProfile_BloodSugarStatus(t *testing.T) {
	tests := []struct {
		sugar float64
		want  string
	}{
		{60, "Low"},
		{85, "Normal"},
		{110, "Pre-diabetic"},
		{140, "High"},
	}

	for _, tt := range tests {
		p := HealthProfile{BloodSugar: tt.sugar}
		if got := p.BloodSugarStatus(); got != tt.want {
			t.Errorf("BloodSugarStatus(%.0f) = %q, want %q", tt.sugar, got, tt.want)
		}
	}
}

func TestHealthProfile_DailyWaterGoal(t *testing.T) {
	p := HealthProfile{WeightKg: 70}
	want := 70 * 0.033
	if got := p.DailyWaterGoal(); math.Abs(got-want) > 0.001 {
		t.Errorf("DailyWaterGoal() = %.3f, want %.3f", got, want)
	}

	unknown := HealthProfile{}
	if got := unknown.DailyWaterGoal(); got != 2.0 {
		t.Errorf("DailyWaterGoal() with unknown weight = %.1f, want 2.0", got)
	}
}

func TestHealthProfile_WaterIntakePercentage(t *testing.T) {
	p := HealthProfile{WeightKg: 70, WaterIntakeL: 1.2} // goal is 2.31 L
	if got := p.WaterIntakePercentage(); got != 51 {
		t.Errorf("WaterIntakePercentage() = %d, want 51", got)
	}

	over := HealthProfile{WeightKg: 70, WaterIntakeL: 10}
	if got := over.WaterIntakePercentage(); got != 100 {
		t.Errorf("WaterIntakePercentage() should clamp to 100, got %d", got)
	}

	none := HealthProfile{WeightKg: 70}
	if got := none.WaterIntakePercentage(); got != 0 {
		t.Errorf("WaterIntakePercentage() with no intake = %d, want 0", got)
	}
}

func TestHealthProfile_EstimatedCaloriesBurned(t *testing.T) {
	p := HealthProfile{DailySteps: 10000}
	if got := p.EstimatedCaloriesBurned(); got != 400 {
		t.Errorf("EstimatedCaloriesBurned() = %d, want 400", got)
	}
}

func TestHealthProfile_Completion(t *testing.T) {
	empty := HealthProfile{}
	if empty.IsComplete() {
		t.Error("empty profile should not be complete")
	}
	if pct := empty.CompletionPercentage(); pct != 0 {
		t.Errorf("empty profile CompletionPercentage = %d, want 0", pct)
	}

	p := HealthProfile{
		FullName:   "Jamie",
		Age:        30,
		HeightCm:   170,
		WeightKg:   65,
		BloodGroup: "O+",
	}
	if !p.IsComplete() {
		t.Error("profile with essential fields should be complete")
	}
	// 5 of 15 tracked fields filled
	if pct := p.CompletionPercentage(); pct != 33 {
		t.Errorf("CompletionPercentage = %d, want 33", pct)
	}
}

func TestNewDailyHealthLog(t *testing.T) {
	log := NewDailyHealthLog("2026-08-15")
	if log.ID == "" {
		t.Error("NewDailyHealthLog should assign an ID")
	}
	if log.Day != "2026-08-15" {
		t.Errorf("Day = %q, want %q", log.Day, "2026-08-15")
	}
	if log.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}
