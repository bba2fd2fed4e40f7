package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Loaded captures the resolved config path, parsed values, and non-fatal warnings.
type Loaded struct {
	Path     string
	Config   Config
	Warnings []Warning
	Exists   bool
}

// Load resolves, reads, and parses the runtime configuration. A missing or
// malformed file degrades to defaults with a warning; Load fails only when the
// path itself cannot be resolved.
func Load(explicitPath string) (Loaded, error) {
	resolvedPath, err := ResolvePath(explicitPath)
	if err != nil {
		return Loaded{}, err
	}

	cfg := Default()

	if _, err := os.Stat(resolvedPath); err != nil {
		return Loaded{
			Path:   resolvedPath,
			Config: cfg,
			Warnings: []Warning{{
				Message: fmt.Sprintf("config file %q not found; using defaults", resolvedPath),
			}},
		}, nil
	}

	v := viper.New()
	v.SetConfigFile(resolvedPath)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return Loaded{
			Path:   resolvedPath,
			Config: cfg,
			Warnings: []Warning{{
				Message: fmt.Sprintf("config file %q unreadable (%v); using defaults", resolvedPath, err),
			}},
		}, nil
	}

	// Unmarshal over a pre-populated default, so absent keys keep defaults.
	if err := v.Unmarshal(&cfg); err != nil {
		return Loaded{
			Path:   resolvedPath,
			Config: Default(),
			Warnings: []Warning{{
				Message: fmt.Sprintf("config file %q malformed (%v); using defaults", resolvedPath, err),
			}},
		}, nil
	}

	loaded := Loaded{Path: resolvedPath, Config: cfg, Exists: true}
	loaded.Config, loaded.Warnings = sanitize(loaded.Config)
	return loaded, nil
}

// sanitize repairs out-of-range values rather than failing the invocation.
func sanitize(cfg Config) (Config, []Warning) {
	var warnings []Warning
	base := Default()

	if cfg.Volume < 0 || cfg.Volume > 1 {
		warnings = append(warnings, Warning{Message: fmt.Sprintf("volume %v out of range [0,1]; using %v", cfg.Volume, base.Volume)})
		cfg.Volume = base.Volume
	}
	if cfg.DebounceMS < 0 {
		warnings = append(warnings, Warning{Message: "debounce_ms is negative; using default"})
		cfg.DebounceMS = base.DebounceMS
	}
	if cfg.SpamThreshold < 1 {
		warnings = append(warnings, Warning{Message: "spam_threshold below 1; using default"})
		cfg.SpamThreshold = base.SpamThreshold
	}
	if cfg.SpamWindowSeconds < 1 {
		warnings = append(warnings, Warning{Message: "spam_window_seconds below 1; using default"})
		cfg.SpamWindowSeconds = base.SpamWindowSeconds
	}
	if cfg.Trainer.ReminderIntervalSeconds < 1 {
		warnings = append(warnings, Warning{Message: "trainer.reminder_interval_seconds below 1; using default"})
		cfg.Trainer.ReminderIntervalSeconds = base.Trainer.ReminderIntervalSeconds
	}
	for name, goal := range cfg.Trainer.Exercises {
		if goal < 0 {
			warnings = append(warnings, Warning{Message: fmt.Sprintf("trainer goal for %q is negative; using 0", name)})
			cfg.Trainer.Exercises[name] = 0
		}
	}
	if cfg.Categories == nil {
		cfg.Categories = map[string]bool{}
	}
	if cfg.Notify == nil {
		cfg.Notify = map[string]bool{}
	}
	if cfg.Trainer.Exercises == nil {
		cfg.Trainer.Exercises = map[string]int{}
	}

	argv, err := parseArgv(cfg.PlayerCmd)
	if err != nil || len(argv) == 0 {
		if err != nil {
			warnings = append(warnings, Warning{Message: fmt.Sprintf("player_cmd invalid (%v); using default", err)})
		}
		cfg.PlayerCmd = base.PlayerCmd
		argv = base.PlayerArgv
	}
	cfg.PlayerArgv = argv

	return cfg, warnings
}
