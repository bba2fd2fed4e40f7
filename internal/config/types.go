// Package config resolves, parses, validates, and defaults claxon configuration.
package config

// Config is the fully materialized runtime configuration used by claxon.
type Config struct {
	Enabled           bool            `json:"enabled" mapstructure:"enabled"`
	Volume            float64         `json:"volume" mapstructure:"volume"`
	Categories        map[string]bool `json:"categories" mapstructure:"categories"`
	Notify            map[string]bool `json:"notify" mapstructure:"notify"`
	DebounceMS        int             `json:"debounce_ms" mapstructure:"debounce_ms"`
	SpamThreshold     int             `json:"spam_threshold" mapstructure:"spam_threshold"`
	SpamWindowSeconds int             `json:"spam_window_seconds" mapstructure:"spam_window_seconds"`
	ReadyDelayMS      int             `json:"ready_delay_ms" mapstructure:"ready_delay_ms"`
	PlayerCmd         string          `json:"player_cmd" mapstructure:"player_cmd"`
	Trainer           TrainerConfig   `json:"trainer" mapstructure:"trainer"`

	// PlayerArgv is PlayerCmd parsed to argv form at load time.
	PlayerArgv []string `json:"-" mapstructure:"-"`
}

// TrainerConfig controls the daily exercise reminder subsystem.
type TrainerConfig struct {
	Enabled                 bool           `json:"enabled" mapstructure:"enabled"`
	Exercises               map[string]int `json:"exercises" mapstructure:"exercises"`
	ReminderIntervalSeconds int            `json:"reminder_interval_seconds" mapstructure:"reminder_interval_seconds"`
}

// Warning is a non-fatal parse/validation message.
type Warning struct {
	Message string
}

// CategoryEnabled reports whether a category may react. Only an explicit
// false entry disables; absence means enabled.
func (c Config) CategoryEnabled(cat string) bool {
	enabled, ok := c.Categories[cat]
	if !ok {
		return true
	}
	return enabled
}

// NotifyEnabled reports whether a category requests a desktop notification.
// Unlike Categories, absence means no notification.
func (c Config) NotifyEnabled(cat string) bool {
	return c.Notify[cat]
}
