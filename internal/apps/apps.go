// Package apps classifies application identifiers and checks whether they are
// installed on the host.
//
// An identifier is one of two kinds, decided structurally: a name ending in
// ".desktop" refers to a desktop-entry file, anything else to an executable
// resolvable on the lookup path.
package apps

import (
	"os"
	"path/filepath"
	"strings"

	"clovis/internal/system"
)

// DesktopSuffix marks desktop-entry identifiers.
const DesktopSuffix = ".desktop"

// IsDesktopEntry reports whether ref names a desktop-entry file.
func IsDesktopEntry(ref string) bool {
	return strings.HasSuffix(ref, DesktopSuffix)
}

// ProcessName strips the desktop suffix to get the bare name used when
// matching against running processes.
func ProcessName(ref string) string {
	return strings.TrimSuffix(ref, DesktopSuffix)
}

// DefaultDesktopDirs returns the directories searched for desktop entries, in
// priority order: system-wide, local-system, user-local, then the NixOS
// system and user profile locations.
func DefaultDesktopDirs() []string {
	home, _ := os.UserHomeDir()
	return []string{
		"/usr/share/applications",
		"/usr/local/share/applications",
		filepath.Join(home, ".local", "share", "applications"),
		"/run/current-system/sw/share/applications",
		filepath.Join(home, ".nix-profile", "share", "applications"),
	}
}

// Checker answers whether an application identifier is installed. Results are
// advisory: lookup failures read as "not available" and never as errors.
type Checker struct {
	sys  system.Environment
	dirs []string
}

// NewChecker creates a Checker. A nil dirs uses DefaultDesktopDirs.
func NewChecker(sys system.Environment, dirs []string) *Checker {
	if dirs == nil {
		dirs = DefaultDesktopDirs()
	}
	return &Checker{sys: sys, dirs: dirs}
}

// IsAvailable reports whether ref is installed. Desktop entries are looked up
// by exact file name under the configured directories, first match wins;
// anything else goes through executable resolution. A single call never
// consults both mechanisms.
func (c *Checker) IsAvailable(ref string) bool {
	if IsDesktopEntry(ref) {
		return c.desktopEntryExists(ref)
	}
	return c.sys.ResolveExecutable(ref)
}

func (c *Checker) desktopEntryExists(ref string) bool {
	for _, dir := range c.dirs {
		if _, err := os.Stat(filepath.Join(dir, ref)); err == nil {
			return true
		}
	}
	return false
}

// Probe answers whether an application is currently running.
type Probe struct {
	sys system.Environment
}

// NewProbe creates a Probe backed by sys.
func NewProbe(sys system.Environment) *Probe {
	return &Probe{sys: sys}
}

// IsRunning reports whether any process command line contains ref's bare
// name. The match is deliberately a substring, not exact: installed binaries
// often run under names that only loosely resemble their identifier.
func (p *Probe) IsRunning(ref string) bool {
	return p.sys.FindRunningProcess(ProcessName(ref))
}
