// Package system wraps the external helper processes the launcher shells out
// to, so the rest of the tool can be tested with fakes instead of real OS calls.
package system

import (
	"os/exec"
	"strings"
)

// Environment abstracts executable lookup, process scanning and app spawning.
type Environment interface {
	// ResolveExecutable reports whether name can be found on the lookup path.
	ResolveExecutable(name string) bool

	// FindRunningProcess reports whether any running process has substr
	// somewhere in its full command line.
	FindRunningProcess(substr string) bool

	// SpawnDetached starts the application identified by ref as an
	// independent process and returns without waiting for it.
	SpawnDetached(ref string) error
}

// defaultLaunchCommand is the desktop-entry launch helper.
const defaultLaunchCommand = "gtk-launch"

// ExecEnvironment is the real Environment backed by helper binaries.
type ExecEnvironment struct {
	// LaunchCommand overrides the spawn helper. Empty means gtk-launch.
	LaunchCommand string
}

// New returns an Environment that invokes the real helper processes.
func New() *ExecEnvironment {
	return &ExecEnvironment{}
}

// ResolveExecutable checks the lookup path, treating any error as "not found".
func (e *ExecEnvironment) ResolveExecutable(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	_, err := exec.LookPath(name)
	return err == nil
}

// FindRunningProcess scans running processes with pgrep -f. A non-empty
// result means at least one command line contains substr. Probe failures
// (pgrep missing, no matches, permission problems) all read as "not running".
func (e *ExecEnvironment) FindRunningProcess(substr string) bool {
	if strings.TrimSpace(substr) == "" {
		return false
	}
	out, err := exec.Command("pgrep", "-f", substr).Output()
	if err != nil {
		return false
	}
	return len(strings.TrimSpace(string(out))) > 0
}

// SpawnDetached launches ref through the desktop launch helper and releases
// the child so it outlives this process.
func (e *ExecEnvironment) SpawnDetached(ref string) error {
	launcher := e.LaunchCommand
	if launcher == "" {
		launcher = defaultLaunchCommand
	}
	cmd := exec.Command(launcher, ref)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
