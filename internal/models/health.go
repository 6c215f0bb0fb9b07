package models

import (
	"time"

	"github.com/google/uuid"
)

// HealthProfile holds the user's locally persisted health metrics. All
// classification methods are pure threshold lookups over the stored fields.
type HealthProfile struct {
	// Personal information
	FullName   string `json:"full_name,omitempty"`
	Age        int    `json:"age,omitempty"`
	Gender     string `json:"gender,omitempty"`
	BloodGroup string `json:"blood_group,omitempty"`

	// Physical metrics
	HeightCm       float64 `json:"height_cm,omitempty"`
	WeightKg       float64 `json:"weight_kg,omitempty"`
	TargetWeightKg float64 `json:"target_weight_kg,omitempty"`

	// Health vitals
	BloodPressureSystolic  int     `json:"blood_pressure_systolic,omitempty"`
	BloodPressureDiastolic int     `json:"blood_pressure_diastolic,omitempty"`
	BloodSugar             float64 `json:"blood_sugar,omitempty"` // mg/dL, fasting
	HeartRate              int     `json:"heart_rate,omitempty"`  // bpm
	BodyTemperature        float64 `json:"body_temperature,omitempty"`

	// Activity metrics
	DailySteps      int     `json:"daily_steps,omitempty"`
	WaterIntakeL    float64 `json:"water_intake_l,omitempty"`
	SleepHours      float64 `json:"sleep_hours,omitempty"`
	ExerciseMinutes int     `json:"exercise_minutes,omitempty"`

	// Medical information
	Allergies         string `json:"allergies,omitempty"`
	Medications       string `json:"medications,omitempty"`
	MedicalConditions string `json:"medical_conditions,omitempty"`
	EmergencyContact  string `json:"emergency_contact,omitempty"`
	EmergencyPhone    string `json:"emergency_phone,omitempty"`

	LastUpdated time.Time `json:"last_updated"`
}

// BMI returns the body mass index (kg/m²), or 0 when height or weight is
// missing.
func (p *HealthProfile) BMI() float64 {
	if p.HeightCm <= 0 || p.WeightKg <= 0 {
		return 0
	}
	heightM := p.HeightCm / 100.0
	return p.WeightKg / (heightM * heightM)
}

// BMICategory classifies the BMI.
func (p *HealthProfile) BMICategory() string {
	bmi := p.BMI()
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}

// BloodPressureCategory classifies the stored blood pressure reading.
func (p *HealthProfile) BloodPressureCategory() string {
	switch {
	case p.BloodPressureSystolic < 120 && p.BloodPressureDiastolic < 80:
		return "Normal"
	case p.BloodPressureSystolic < 130 && p.BloodPressureDiastolic < 80:
		return "Elevated"
	case p.BloodPressureSystolic < 140 || p.BloodPressureDiastolic < 90:
		return "High Stage 1"
	default:
		return "High Stage 2"
	}
}

// BloodSugarStatus classifies the fasting blood sugar reading (mg/dL).
func (p *HealthProfile) BloodSugarStatus() string {
	switch {
	case p.BloodSugar < 70:
		return "Low"
	case p.BloodSugar <= 100:
		return "Normal"
	case p.BloodSugar <= 125:
		return "Pre-diabetic"
	default:
		return "High"
	}
}

// HeartRateStatus classifies the resting heart rate (bpm).
func (p *HealthProfile) HeartRateStatus() string {
	switch {
	case p.HeartRate < 60:
		return "Low (Bradycardia)"
	case p.HeartRate <= 100:
		return "Normal"
	default:
		return "High (Tachycardia)"
	}
}

// DailyWaterGoal returns the recommended daily water intake in liters
// (33 ml per kg of body weight, 2 L when weight is unknown).
func (p *HealthProfile) DailyWaterGoal() float64 {
	if p.WeightKg <= 0 {
		return 2.0
	}
	return p.WeightKg * 0.033
}

// WaterIntakePercentage returns today's intake as a percentage of the goal,
// clamped to 0-100.
func (p *HealthProfile) WaterIntakePercentage() int {
	goal := p.DailyWaterGoal()
	if goal <= 0 {
		return 0
	}
	pct := int((p.WaterIntakeL / goal) * 100)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// EstimatedCaloriesBurned estimates calories burned from steps
// (0.04 kcal per step).
func (p *HealthProfile) EstimatedCaloriesBurned() int {
	return int(float64(p.DailySteps) * 0.04)
}

// IsComplete reports whether the essential profile fields are filled in.
func (p *HealthProfile) IsComplete() bool {
	return p.FullName != "" &&
		p.Age > 0 &&
		p.HeightCm > 0 &&
		p.WeightKg > 0 &&
		p.BloodGroup != ""
}

// CompletionPercentage returns how much of the profile is filled in, over the
// 15 tracked fields.
func (p *HealthProfile) CompletionPercentage() int {
	completed := 0
	const total = 15

	if p.FullName != "" {
		completed++
	}
	if p.Age > 0 {
		completed++
	}
	if p.Gender != "" {
		completed++
	}
	if p.BloodGroup != "" {
		completed++
	}
	if p.HeightCm > 0 {
		completed++
	}
	if p.WeightKg > 0 {
		completed++
	}
	if p.BloodPressureSystolic > 0 {
		completed++
	}
	if p.BloodPressureDiastolic > 0 {
		completed++
	}
	if p.BloodSugar > 0 {
		completed++
	}
	if p.HeartRate > 0 {
		completed++
	}
	if p.DailySteps > 0 {
		completed++
	}
	if p.WaterIntakeL > 0 {
		completed++
	}
	if p.SleepHours > 0 {
		completed++
	}
	if p.EmergencyContact != "" {
		completed++
	}
	if p.EmergencyPhone != "" {
		completed++
	}

	return (completed * 100) / total
}

// DailyHealthLog is a per-day snapshot of the user's health metrics, keyed by
// calendar day.
type DailyHealthLog struct {
	ID                     string    `json:"id"`
	Day                    string    `json:"day"` // YYYY-MM-DD
	WeightKg               float64   `json:"weight_kg,omitempty"`
	BloodPressureSystolic  int       `json:"blood_pressure_systolic,omitempty"`
	BloodPressureDiastolic int       `json:"blood_pressure_diastolic,omitempty"`
	BloodSugar             float64   `json:"blood_sugar,omitempty"`
	HeartRate              int       `json:"heart_rate,omitempty"`
	DailySteps             int       `json:"daily_steps,omitempty"`
	WaterIntakeL           float64   `json:"water_intake_l,omitempty"`
	SleepHours             float64   `json:"sleep_hours,omitempty"`
	ExerciseMinutes        int       `json:"exercise_minutes,omitempty"`
	Notes                  string    `json:"notes,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
}

// NewDailyHealthLog creates a log entry for the given day.
func NewDailyHealthLog(day string) DailyHealthLog {
	return DailyHealthLog{
		ID:        uuid.New().String(),
		Day:       day,
		CreatedAt: time.Now(),
	}
}
