package models

import (
	"fmt"

	"github.com/jcallahan/wellnest/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingHydrationEnabled:
			settings.HydrationEnabled = value == "true"
		case constants.SettingHydrationIntervalMin:
			if _, err := fmt.Sscanf(value, "%d", &settings.HydrationIntervalMin); err != nil {
				return Settings{}, fmt.Errorf("parsing hydration_interval_min: %w", err)
			}
		case constants.SettingSnoozeDurationMin:
			if _, err := fmt.Sscanf(value, "%d", &settings.SnoozeDurationMin); err != nil {
				return Settings{}, fmt.Errorf("parsing snooze_duration_min: %w", err)
			}
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingFirstLaunch:
			settings.FirstLaunchDone = value == "true"
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingHydrationEnabled:     fmt.Sprintf("%v", settings.HydrationEnabled),
		constants.SettingHydrationIntervalMin: fmt.Sprintf("%d", settings.HydrationIntervalMin),
		constants.SettingSnoozeDurationMin:    fmt.Sprintf("%d", settings.SnoozeDurationMin),
		constants.SettingTimezone:             settings.Timezone,
		constants.SettingFirstLaunch:          fmt.Sprintf("%v", settings.FirstLaunchDone),
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.HydrationIntervalMin == 0 {
		settings.HydrationIntervalMin = constants.DefaultHydrationIntervalMin
	}
	if settings.SnoozeDurationMin == 0 {
		settings.SnoozeDurationMin = constants.DefaultSnoozeDurationMin
	}
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
}

// DefaultSettings returns the settings a freshly initialized store starts
// with.
func DefaultSettings() Settings {
	return Settings{
		HydrationEnabled:     constants.DefaultHydrationEnabled,
		HydrationIntervalMin: constants.DefaultHydrationIntervalMin,
		SnoozeDurationMin:    constants.DefaultSnoozeDurationMin,
		Timezone:             constants.DefaultTimezone,
	}
}
