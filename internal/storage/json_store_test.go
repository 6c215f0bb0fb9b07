package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jcallahan/wellnest/internal/models"
)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "wellnest.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	return store
}

func TestJSONStore_LoadMissingFileDefaults(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.HydrationIntervalMin == 0 || settings.Timezone == "" {
		t.Errorf("missing file should yield default settings, got %+v", settings)
	}

	habits, err := store.GetAllHabits(true)
	if err != nil {
		t.Fatalf("GetAllHabits failed: %v", err)
	}
	if len(habits) != 0 {
		t.Errorf("missing file should yield no habits, got %d", len(habits))
	}
}

func TestJSONStore_LoadMalformedFileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wellnest.json")
	if err := os.WriteFile(path, []byte("{not valid json"), 0600); err != nil {
		t.Fatalf("failed to write malformed file: %v", err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("malformed storage must load as defaults, got error: %v", err)
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.HydrationIntervalMin == 0 {
		t.Error("malformed file should yield default settings")
	}
}

func TestJSONStore_InitSeedsStarterHabits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wellnest.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	habits, err := store.GetAllHabits(false)
	if err != nil {
		t.Fatalf("GetAllHabits failed: %v", err)
	}
	if len(habits) != len(models.DefaultHabits()) {
		t.Errorf("expected %d starter habits, got %d", len(models.DefaultHabits()), len(habits))
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if !settings.FirstLaunchDone {
		t.Error("first-launch flag should be set after seeding")
	}

	// Double initialization is rejected
	if err := store.Init(); err == nil {
		t.Error("Init on an existing file should fail")
	}
}

func TestJSONStore_HabitRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wellnest.json")
	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	habit := models.NewHabit("Meditate", "ten minutes")
	habit.MarkCompleted("2026-08-14")
	habit.MarkCompleted("2026-08-15")

	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	// Re-open from disk
	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	got, err := reopened.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if got.Title != "Meditate" || got.Description != "ten minutes" {
		t.Errorf("reloaded habit = %+v", got)
	}
	if !got.IsCompleted("2026-08-14") || !got.IsCompleted("2026-08-15") {
		t.Error("completion days should survive the round trip")
	}

	byTitle, err := reopened.GetHabitByTitle("Meditate")
	if err != nil {
		t.Fatalf("GetHabitByTitle failed: %v", err)
	}
	if byTitle.ID != habit.ID {
		t.Errorf("GetHabitByTitle returned %s, want %s", byTitle.ID, habit.ID)
	}
}

func TestJSONStore_SoftDeleteAndRestore(t *testing.T) {
	store := newTestStore(t)

	habit := models.NewHabit("Read", "")
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	if err := store.DeactivateHabit(habit.ID); err != nil {
		t.Fatalf("DeactivateHabit failed: %v", err)
	}

	active, err := store.GetAllHabits(false)
	if err != nil {
		t.Fatalf("GetAllHabits failed: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("deactivated habit still listed as active")
	}

	all, err := store.GetAllHabits(true)
	if err != nil {
		t.Fatalf("GetAllHabits failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("deactivated habit should remain in storage, got %d habits", len(all))
	}

	// Completion history survives the soft delete
	if all[0].CompletedDays == nil {
		t.Error("completion set lost on deactivate")
	}

	if err := store.DeactivateHabit(habit.ID); err == nil {
		t.Error("double deactivate should fail")
	}

	if err := store.RestoreHabit(habit.ID); err != nil {
		t.Fatalf("RestoreHabit failed: %v", err)
	}
	restored, err := store.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if !restored.Active {
		t.Error("habit should be active after restore")
	}

	if err := store.RestoreHabit(habit.ID); err == nil {
		t.Error("restoring an active habit should fail")
	}
}

func TestJSONStore_MoodEntriesNewestFirst(t *testing.T) {
	store := newTestStore(t)

	older := models.NewMoodEntry("😐", "meh")
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := models.NewMoodEntry("😄", "great")

	if err := store.AddMoodEntry(older); err != nil {
		t.Fatalf("AddMoodEntry failed: %v", err)
	}
	if err := store.AddMoodEntry(newer); err != nil {
		t.Fatalf("AddMoodEntry failed: %v", err)
	}

	entries, err := store.GetMoodEntries()
	if err != nil {
		t.Fatalf("GetMoodEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != newer.ID {
		t.Error("entries should be ordered newest first")
	}

	if err := store.DeleteMoodEntry(older.ID); err != nil {
		t.Fatalf("DeleteMoodEntry failed: %v", err)
	}
	entries, _ = store.GetMoodEntries()
	if len(entries) != 1 || entries[0].ID != newer.ID {
		t.Errorf("unexpected entries after delete: %+v", entries)
	}

	if err := store.DeleteMoodEntry("missing"); err == nil {
		t.Error("deleting a missing entry should fail")
	}
}

func TestJSONStore_HealthLogsRange(t *testing.T) {
	store := newTestStore(t)

	for _, day := range []string{"2026-08-10", "2026-08-12", "2026-08-20"} {
		log := models.NewDailyHealthLog(day)
		log.DailySteps = 5000
		if err := store.SaveHealthLog(log); err != nil {
			t.Fatalf("SaveHealthLog failed: %v", err)
		}
	}

	logs, err := store.GetHealthLogs("2026-08-10", "2026-08-15")
	if err != nil {
		t.Fatalf("GetHealthLogs failed: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs in range, got %d", len(logs))
	}
	if logs[0].Day != "2026-08-10" || logs[1].Day != "2026-08-12" {
		t.Errorf("logs not sorted by day: %v, %v", logs[0].Day, logs[1].Day)
	}

	// Saving the same day again overwrites
	updated := models.NewDailyHealthLog("2026-08-10")
	updated.DailySteps = 9000
	if err := store.SaveHealthLog(updated); err != nil {
		t.Fatalf("SaveHealthLog failed: %v", err)
	}
	got, err := store.GetHealthLog("2026-08-10")
	if err != nil {
		t.Fatalf("GetHealthLog failed: %v", err)
	}
	if got.DailySteps != 9000 {
		t.Errorf("DailySteps = %d, want 9000", got.DailySteps)
	}

	if _, err := store.GetHealthLog("2026-01-01"); err == nil {
		t.Error("GetHealthLog on a missing day should fail")
	}
}

func TestJSONStore_HealthProfileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wellnest.json")
	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	profile := models.HealthProfile{
		FullName:    "Jamie",
		Age:         30,
		HeightCm:    170,
		WeightKg:    65,
		LastUpdated: time.Now(),
	}
	if err := store.SaveHealthProfile(profile); err != nil {
		t.Fatalf("SaveHealthProfile failed: %v", err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	got, err := reopened.GetHealthProfile()
	if err != nil {
		t.Fatalf("GetHealthProfile failed: %v", err)
	}
	if got.FullName != "Jamie" || got.Age != 30 {
		t.Errorf("reloaded profile = %+v", got)
	}
}

func TestJSONStore_OperationsBeforeLoad(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "wellnest.json"))

	if _, err := store.GetSettings(); err == nil {
		t.Error("GetSettings before Load should fail")
	}
	if err := store.AddHabit(models.NewHabit("x", "")); err == nil {
		t.Error("AddHabit before Load should fail")
	}
}
