package models

// Settings represents application-wide settings
type Settings struct {
	HydrationEnabled     bool   `json:"hydration_enabled"`      // whether hydration reminders are enabled
	HydrationIntervalMin int    `json:"hydration_interval_min"` // minutes between hydration reminders
	SnoozeDurationMin    int    `json:"snooze_duration_min"`    // minutes a snoozed reminder is deferred
	Timezone             string `json:"timezone"`               // IANA timezone name, or "Local" for the system timezone
	FirstLaunchDone      bool   `json:"first_launch_done"`      // whether first-launch seeding has run
}
