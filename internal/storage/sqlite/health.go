package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jcallahan/wellnest/internal/models"
)

func (s *Store) GetHealthProfile() (models.HealthProfile, error) {
	row := s.db.QueryRow(`
		SELECT full_name, age, gender, blood_group,
			height_cm, weight_kg, target_weight_kg,
			blood_pressure_systolic, blood_pressure_diastolic, blood_sugar, heart_rate, body_temperature,
			daily_steps, water_intake_l, sleep_hours, exercise_minutes,
			allergies, medications, medical_conditions, emergency_contact, emergency_phone,
			last_updated
		FROM health_profile WHERE id = 1`)

	var p models.HealthProfile
	var lastUpdated string

	err := row.Scan(&p.FullName, &p.Age, &p.Gender, &p.BloodGroup,
		&p.HeightCm, &p.WeightKg, &p.TargetWeightKg,
		&p.BloodPressureSystolic, &p.BloodPressureDiastolic, &p.BloodSugar, &p.HeartRate, &p.BodyTemperature,
		&p.DailySteps, &p.WaterIntakeL, &p.SleepHours, &p.ExerciseMinutes,
		&p.Allergies, &p.Medications, &p.MedicalConditions, &p.EmergencyContact, &p.EmergencyPhone,
		&lastUpdated)
	if err != nil {
		if err == sql.ErrNoRows {
			// No profile saved yet, start from an empty one
			return models.HealthProfile{}, nil
		}
		return models.HealthProfile{}, err
	}

	if lastUpdated != "" {
		p.LastUpdated, err = time.Parse(time.RFC3339, lastUpdated)
		if err != nil {
			return models.HealthProfile{}, fmt.Errorf("failed to parse last_updated: %w", err)
		}
	}

	return p, nil
}

func (s *Store) SaveHealthProfile(profile models.HealthProfile) error {
	_, err := s.db.Exec(`
		INSERT INTO health_profile (id, full_name, age, gender, blood_group,
			height_cm, weight_kg, target_weight_kg,
			blood_pressure_systolic, blood_pressure_diastolic, blood_sugar, heart_rate, body_temperature,
			daily_steps, water_intake_l, sleep_hours, exercise_minutes,
			allergies, medications, medical_conditions, emergency_contact, emergency_phone,
			last_updated)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			full_name = excluded.full_name,
			age = excluded.age,
			gender = excluded.gender,
			blood_group = excluded.blood_group,
			height_cm = excluded.height_cm,
			weight_kg = excluded.weight_kg,
			target_weight_kg = excluded.target_weight_kg,
			blood_pressure_systolic = excluded.blood_pressure_systolic,
			blood_pressure_diastolic = excluded.blood_pressure_diastolic,
			blood_sugar = excluded.blood_sugar,
			heart_rate = excluded.heart_rate,
			body_temperature = excluded.body_temperature,
			daily_steps = excluded.daily_steps,
			water_intake_l = excluded.water_intake_l,
			sleep_hours = excluded.sleep_hours,
			exercise_minutes = excluded.exercise_minutes,
			allergies = excluded.allergies,
			medications = excluded.medications,
			medical_conditions = excluded.medical_conditions,
			emergency_contact = excluded.emergency_contact,
			emergency_phone = excluded.emergency_phone,
			last_updated = excluded.last_updated`,
		profile.FullName, profile.Age, profile.Gender, profile.BloodGroup,
		profile.HeightCm, profile.WeightKg, profile.TargetWeightKg,
		profile.BloodPressureSystolic, profile.BloodPressureDiastolic, profile.BloodSugar, profile.HeartRate, profile.BodyTemperature,
		profile.DailySteps, profile.WaterIntakeL, profile.SleepHours, profile.ExerciseMinutes,
		profile.Allergies, profile.Medications, profile.MedicalConditions, profile.EmergencyContact, profile.EmergencyPhone,
		profile.LastUpdated.Format(time.RFC3339))

	return err
}

func (s *Store) SaveHealthLog(log models.DailyHealthLog) error {
	_, err := s.db.Exec(`
		INSERT INTO health_logs (id, day, weight_kg,
			blood_pressure_systolic, blood_pressure_diastolic, blood_sugar, heart_rate,
			daily_steps, water_intake_l, sleep_hours, exercise_minutes, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			weight_kg = excluded.weight_kg,
			blood_pressure_systolic = excluded.blood_pressure_systolic,
			blood_pressure_diastolic = excluded.blood_pressure_diastolic,
			blood_sugar = excluded.blood_sugar,
			heart_rate = excluded.heart_rate,
			daily_steps = excluded.daily_steps,
			water_intake_l = excluded.water_intake_l,
			sleep_hours = excluded.sleep_hours,
			exercise_minutes = excluded.exercise_minutes,
			notes = excluded.notes`,
		log.ID, log.Day, log.WeightKg,
		log.BloodPressureSystolic, log.BloodPressureDiastolic, log.BloodSugar, log.HeartRate,
		log.DailySteps, log.WaterIntakeL, log.SleepHours, log.ExerciseMinutes, log.Notes,
		log.CreatedAt.Format(time.RFC3339))

	return err
}

func (s *Store) GetHealthLog(day string) (models.DailyHealthLog, error) {
	row := s.db.QueryRow(`
		SELECT id, day, weight_kg,
			blood_pressure_systolic, blood_pressure_diastolic, blood_sugar, heart_rate,
			daily_steps, water_intake_l, sleep_hours, exercise_minutes, notes, created_at
		FROM health_logs WHERE day = ?`, day)

	log, err := scanHealthLog(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.DailyHealthLog{}, fmt.Errorf("no health log for day: %s", day)
		}
		return models.DailyHealthLog{}, err
	}

	return log, nil
}

func (s *Store) GetHealthLogs(startDay, endDay string) ([]models.DailyHealthLog, error) {
	rows, err := s.db.Query(`
		SELECT id, day, weight_kg,
			blood_pressure_systolic, blood_pressure_diastolic, blood_sugar, heart_rate,
			daily_steps, water_intake_l, sleep_hours, exercise_minutes, notes, created_at
		FROM health_logs WHERE day >= ? AND day <= ? ORDER BY day`, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.DailyHealthLog
	for rows.Next() {
		log, err := scanHealthLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}

func scanHealthLog(row rowScanner) (models.DailyHealthLog, error) {
	var l models.DailyHealthLog
	var createdAt string

	err := row.Scan(&l.ID, &l.Day, &l.WeightKg,
		&l.BloodPressureSystolic, &l.BloodPressureDiastolic, &l.BloodSugar, &l.HeartRate,
		&l.DailySteps, &l.WaterIntakeL, &l.SleepHours, &l.ExerciseMinutes, &l.Notes, &createdAt)
	if err != nil {
		return models.DailyHealthLog{}, err
	}

	l.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.DailyHealthLog{}, fmt.Errorf("failed to parse created_at for log %s: %w", l.Day, err)
	}

	return l, nil
}
