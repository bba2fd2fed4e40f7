package effects

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// activeWindow contains the fields needed for focus classification.
type activeWindow struct {
	Class        string `json:"class"`
	InitialClass string `json:"initialClass"`
}

// terminalClasses are window classes treated as "the terminal is focused".
var terminalClasses = map[string]struct{}{
	"alacritty":              {},
	"kitty":                  {},
	"foot":                   {},
	"org.wezfurlong.wezterm": {},
	"com.mitchellh.ghostty":  {},
	"konsole":                {},
	"gnome-terminal":         {},
	"xterm":                  {},
}

// queryActiveWindow fetches the active-window contract from hyprctl.
func queryActiveWindow() (activeWindow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 400*time.Millisecond)
	defer cancel()

	output, err := exec.CommandContext(ctx, "hyprctl", "-j", "activewindow").Output()
	if err != nil {
		return activeWindow{}, fmt.Errorf("hyprctl activewindow: %w", err)
	}

	var window activeWindow
	if err := json.Unmarshal(output, &window); err != nil {
		return activeWindow{}, fmt.Errorf("decode hyprctl activewindow json: %w", err)
	}
	window.Class = strings.TrimSpace(window.Class)
	window.InitialClass = strings.TrimSpace(window.InitialClass)
	return window, nil
}

func isTerminalClass(class string) bool {
	_, ok := terminalClasses[strings.ToLower(class)]
	return ok
}
