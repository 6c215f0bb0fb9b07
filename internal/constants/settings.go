package constants

const (
	// Hydration Reminder Settings
	SettingHydrationEnabled     = "hydration_enabled"
	SettingHydrationIntervalMin = "hydration_interval_min"
	SettingSnoozeDurationMin    = "snooze_duration_min"

	// General Settings
	SettingTimezone    = "timezone"
	SettingFirstLaunch = "first_launch_done"

	// Default Settings Values
	DefaultHydrationEnabled     = true
	DefaultHydrationIntervalMin = 120
	DefaultSnoozeDurationMin    = 15
	DefaultTimezone             = "Local" // Use system local timezone by default

	// MinHydrationIntervalMin is the smallest interval the reminder scheduler
	// accepts; shorter values are rejected at the CLI boundary.
	MinHydrationIntervalMin = 15
)
