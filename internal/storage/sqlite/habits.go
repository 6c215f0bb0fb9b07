package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jcallahan/wellnest/internal/models"
)

func (s *Store) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, title, description, created_at, active
		FROM habits WHERE id = ?`, id)

	habit, err := scanHabit(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Habit{}, fmt.Errorf("habit not found: %s", id)
		}
		return models.Habit{}, err
	}

	if err := s.loadHabitDays(&habit); err != nil {
		return models.Habit{}, err
	}

	return habit, nil
}

func (s *Store) GetHabitByTitle(title string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, title, description, created_at, active
		FROM habits WHERE title = ? AND active = 1`, title)

	habit, err := scanHabit(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Habit{}, fmt.Errorf("habit not found: %s", title)
		}
		return models.Habit{}, err
	}

	if err := s.loadHabitDays(&habit); err != nil {
		return models.Habit{}, err
	}

	return habit, nil
}

func (s *Store) GetAllHabits(includeInactive bool) ([]models.Habit, error) {
	query := "SELECT id, title, description, created_at, active FROM habits"
	if !includeInactive {
		query += " WHERE active = 1"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, habit)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range habits {
		if err := s.loadHabitDays(&habits[i]); err != nil {
			return nil, err
		}
	}

	return habits, nil
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	active := 0
	if habit.Active {
		active = 1
	}

	_, err = tx.Exec(`
		INSERT INTO habits (id, title, description, created_at, active)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			active = excluded.active`,
		habit.ID, habit.Title, habit.Description, habit.CreatedAt.Format(time.RFC3339), active)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	// Rewrite the completion set wholesale, it is small and keeps the row set
	// in sync with the model without diffing.
	if _, err := tx.Exec("DELETE FROM habit_days WHERE habit_id = ?", habit.ID); err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, day := range habit.CompletedDays.Days() {
		if _, err := tx.Exec("INSERT INTO habit_days (habit_id, day) VALUES (?, ?)", habit.ID, day); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) DeactivateHabit(id string) error {
	result, err := s.db.Exec("UPDATE habits SET active = 0 WHERE id = ? AND active = 1", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit not found or already deleted: %s", id)
	}

	return nil
}

func (s *Store) RestoreHabit(id string) error {
	result, err := s.db.Exec("UPDATE habits SET active = 1 WHERE id = ? AND active = 0", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit not found or not deleted: %s", id)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var createdAt string
	var active int

	if err := row.Scan(&h.ID, &h.Title, &h.Description, &createdAt, &active); err != nil {
		return models.Habit{}, err
	}

	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	h.CreatedAt = t
	h.Active = active != 0
	h.CompletedDays = models.NewDateSet()

	return h, nil
}

func (s *Store) loadHabitDays(habit *models.Habit) error {
	rows, err := s.db.Query("SELECT day FROM habit_days WHERE habit_id = ?", habit.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return err
		}
		habit.CompletedDays.Add(day)
	}

	return rows.Err()
}
