package models

// DefaultHabits returns the starter habits seeded on first launch.
func DefaultHabits() []Habit {
	return []Habit{
		NewHabit("Drink 8 glasses of water", "Stay hydrated throughout the day"),
		NewHabit("Take 10,000 steps", "Walk for better health"),
		NewHabit("Meditate for 10 minutes", "Practice mindfulness daily"),
		NewHabit("Read for 30 minutes", "Expand knowledge and relax"),
		NewHabit("Get 8 hours of sleep", "Ensure proper rest"),
	}
}
