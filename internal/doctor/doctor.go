// Package doctor runs runtime readiness diagnostics for config, packs, player
// tooling, and the state directory.
package doctor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rbright/claxon/internal/config"
	"github.com/rbright/claxon/internal/pack"
	"github.com/rbright/claxon/internal/state"
)

// Check is one doctor assertion result.
type Check struct {
	Name    string
	Pass    bool
	Message string
}

// Report is the full doctor output contract.
type Report struct {
	Checks []Check
}

// OK returns true when all checks pass.
func (r Report) OK() bool {
	for _, check := range r.Checks {
		if !check.Pass {
			return false
		}
	}
	return true
}

// String renders the report as user-facing text output.
func (r Report) String() string {
	var b strings.Builder
	for _, check := range r.Checks {
		status := "OK"
		if !check.Pass {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("[%s] %s: %s\n", status, check.Name, check.Message))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Run executes environment/config/runtime checks for a loaded config.
func Run(cfg config.Loaded, store state.Store) Report {
	checks := []Check{}

	if cfg.Exists {
		checks = append(checks, Check{Name: "config", Pass: true, Message: fmt.Sprintf("loaded %q", cfg.Path)})
	} else {
		checks = append(checks, Check{Name: "config", Pass: true, Message: fmt.Sprintf("%q not found, defaults in effect", cfg.Path)})
	}

	checks = append(checks, checkCommand(cfg.Config.PlayerArgv, "player_cmd"))
	checks = append(checks, checkBinary("busctl", "desktop notifications require busctl"))
	checks = append(checks, checkBinary("hyprctl", "focus detection requires hyprctl"))
	checks = append(checks, checkPacks(store))
	checks = append(checks, checkStateDir(store))

	return Report{Checks: checks}
}

// checkPacks verifies the packs root exists and the active pack has sounds.
func checkPacks(store state.Store) Check {
	root, err := pack.Dir()
	if err != nil {
		return Check{Name: "packs", Pass: false, Message: err.Error()}
	}

	names := pack.List(root)
	if len(names) == 0 {
		return Check{Name: "packs", Pass: false, Message: fmt.Sprintf("no packs installed under %q", root)}
	}

	active := store.Load().ActivePack
	if active == "" {
		return Check{Name: "packs", Pass: false, Message: "no active pack set (claxon pack use <name>)"}
	}

	manifest := pack.Load(filepath.Join(root, active))
	if len(manifest) == 0 {
		return Check{Name: "packs", Pass: false, Message: fmt.Sprintf("active pack %q has no usable manifest", active)}
	}

	return Check{Name: "packs", Pass: true, Message: fmt.Sprintf("active pack %q, %d installed", active, len(names))}
}

// checkStateDir verifies the state file location is writable.
func checkStateDir(store state.Store) Check {
	dir := filepath.Dir(store.Path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return Check{Name: "state", Pass: false, Message: err.Error()}
	}

	probe, err := os.CreateTemp(dir, "doctor-*")
	if err != nil {
		return Check{Name: "state", Pass: false, Message: fmt.Sprintf("state dir %q not writable: %v", dir, err)}
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)

	return Check{Name: "state", Pass: true, Message: fmt.Sprintf("state file at %q", store.Path)}
}

// checkCommand validates that argv contains a runnable command.
func checkCommand(argv []string, name string) Check {
	if len(argv) == 0 {
		return Check{Name: name, Pass: false, Message: "command is empty"}
	}
	return checkBinaryNamed(argv[0], name)
}

// checkBinary validates binary presence on PATH.
func checkBinary(binary, failMsg string) Check {
	if _, err := exec.LookPath(binary); err != nil {
		return Check{Name: binary, Pass: false, Message: failMsg}
	}
	return Check{Name: binary, Pass: true, Message: "found on PATH"}
}

func checkBinaryNamed(binary, name string) Check {
	if _, err := exec.LookPath(binary); err != nil {
		return Check{Name: name, Pass: false, Message: fmt.Sprintf("%q not found on PATH", binary)}
	}
	return Check{Name: name, Pass: true, Message: fmt.Sprintf("%q found on PATH", binary)}
}
