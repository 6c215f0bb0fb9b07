package sqlite

import (
	"fmt"
	"time"

	"github.com/jcallahan/wellnest/internal/models"
)

func (s *Store) AddMoodEntry(entry models.MoodEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO mood_entries (id, emoji, mood_name, note, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		entry.ID, entry.Emoji, entry.MoodName, entry.Note, entry.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetMoodEntries() ([]models.MoodEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, emoji, mood_name, note, created_at
		FROM mood_entries ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.MoodEntry
	for rows.Next() {
		var e models.MoodEntry
		var createdAt string

		if err := rows.Scan(&e.ID, &e.Emoji, &e.MoodName, &e.Note, &createdAt); err != nil {
			return nil, err
		}

		e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for entry %s: %w", e.ID, err)
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (s *Store) DeleteMoodEntry(id string) error {
	result, err := s.db.Exec("DELETE FROM mood_entries WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("mood entry not found: %s", id)
	}

	return nil
}
