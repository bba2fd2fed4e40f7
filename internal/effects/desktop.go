package effects

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Desktop is the production sink. Playback and notification subprocesses are
// started and left to outlive the invocation; nothing is awaited.
type Desktop struct {
	PlayerArgv []string
	AppName    string
	PausePath  string
	Logger     *slog.Logger
}

// NewDesktop builds the production sink from the configured player command.
func NewDesktop(playerArgv []string, pausePath string, logger *slog.Logger) *Desktop {
	return &Desktop{
		PlayerArgv: playerArgv,
		AppName:    "claxon",
		PausePath:  pausePath,
		Logger:     logger,
	}
}

// Play launches the player subprocess for one sound file. A missing file or
// unavailable player falls back to a synthesized chime; every failure path is
// swallowed after a debug log.
func (d *Desktop) Play(filePath string, volume float64) {
	if _, err := os.Stat(filePath); err != nil {
		d.log("sound file missing, using synth fallback", err)
		d.chime(volume)
		return
	}

	argv := expandPlayerArgv(d.PlayerArgv, filePath, volume)
	if len(argv) == 0 {
		return
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		d.log("player start failed, using synth fallback", err)
		d.chime(volume)
		return
	}
	go func() { _ = cmd.Wait() }()
}

// chime renders the synth fallback without blocking the invocation.
func (d *Desktop) chime(volume float64) {
	go func() {
		if err := playFallbackChime(volume); err != nil {
			d.log("synth fallback failed", err)
		}
	}()
}

// Notify dispatches a freedesktop notification without waiting on delivery.
func (d *Desktop) Notify(n Notification) {
	cmd := notifyCommand(d.AppName, n)
	if err := cmd.Start(); err != nil {
		d.log("desktop notify start failed", err)
		return
	}
	go func() { _ = cmd.Wait() }()
}

// SetTitle writes an OSC 0 title sequence to the controlling terminal.
func (d *Desktop) SetTitle(text string) {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		d.log("open tty for title failed", err)
		return
	}
	defer func() { _ = tty.Close() }()

	if _, err := fmt.Fprintf(tty, "\x1b]0;%s\x07", sanitizeTitle(text)); err != nil {
		d.log("write tab title failed", err)
	}
}

// TerminalFocused reports whether the focused window looks like a terminal.
// Query failures report unfocused, so notifications still reach the user.
func (d *Desktop) TerminalFocused() bool {
	window, err := queryActiveWindow()
	if err != nil {
		d.log("focus query failed", err)
		return false
	}
	return isTerminalClass(window.Class) || isTerminalClass(window.InitialClass)
}

// Paused reports whether the pause flag file exists.
func (d *Desktop) Paused() bool {
	_, err := os.Stat(d.PausePath)
	return err == nil
}

// Pause creates the pause flag file the sink queries.
func Pause(pausePath string) error {
	if err := os.MkdirAll(filepath.Dir(pausePath), 0o700); err != nil {
		return fmt.Errorf("create pause dir: %w", err)
	}
	if err := os.WriteFile(pausePath, nil, 0o600); err != nil {
		return fmt.Errorf("write pause flag: %w", err)
	}
	return nil
}

// Resume removes the pause flag file. Already-absent is fine.
func Resume(pausePath string) error {
	if err := os.Remove(pausePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove pause flag: %w", err)
	}
	return nil
}

// PausePath resolves the pause flag location next to the state file.
func PausePath() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); xdg != "" {
		return filepath.Join(xdg, "claxon", "paused"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve pause path: %w", err)
	}
	return filepath.Join(home, ".local", "state", "claxon", "paused"), nil
}

// expandPlayerArgv substitutes %f (file) and %v (volume) tokens. When no %f
// token appears, the file path is appended as the final argument.
func expandPlayerArgv(argv []string, filePath string, volume float64) []string {
	if len(argv) == 0 {
		return nil
	}

	vol := strconv.FormatFloat(volume, 'f', -1, 64)
	expanded := make([]string, 0, len(argv)+1)
	sawFile := false
	for _, token := range argv {
		if strings.Contains(token, "%f") {
			sawFile = true
		}
		token = strings.ReplaceAll(token, "%f", filePath)
		token = strings.ReplaceAll(token, "%v", vol)
		expanded = append(expanded, token)
	}
	if !sawFile {
		expanded = append(expanded, filePath)
	}
	return expanded
}

// sanitizeTitle strips control characters that could break the escape sequence.
func sanitizeTitle(text string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, text)
}

func (d *Desktop) log(message string, err error) {
	if d.Logger == nil || err == nil {
		return
	}
	d.Logger.Debug(message, "error", err.Error())
}
