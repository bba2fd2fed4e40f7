package config

// Default returns the canonical runtime configuration used when no file is present.
func Default() Config {
	player := "pw-play --media-role Notification"

	return Config{
		Enabled:    true,
		Volume:     0.8,
		Categories: map[string]bool{},
		Notify: map[string]bool{
			"permission.ask": true,
			"session.error":  true,
			"session.idle":   true,
			"task.complete":  true,
		},
		DebounceMS:        1500,
		SpamThreshold:     5,
		SpamWindowSeconds: 30,
		ReadyDelayMS:      1200,
		PlayerCmd:         player,
		PlayerArgv:        mustParseArgv(player),
		Trainer: TrainerConfig{
			Enabled:                 false,
			Exercises:               map[string]int{},
			ReminderIntervalSeconds: 3600,
		},
	}
}
