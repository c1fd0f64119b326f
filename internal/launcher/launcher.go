// Package launcher starts every application of an environment as a detached
// process.
package launcher

import (
	"fmt"
	"io"

	"clovis/internal/apps"
	"clovis/internal/config"
	"clovis/internal/system"

	"github.com/charmbracelet/log"
)

// Launcher spawns the apps of an environment, skipping the ones that are
// already running unless forced. Launches are fire-and-forget: nothing waits
// on the spawned processes and a failed spawn never stops the loop.
type Launcher struct {
	sys    system.Environment
	probe  *apps.Probe
	logger *log.Logger
	out    io.Writer
}

// New creates a Launcher writing user-facing notices to out.
func New(sys system.Environment, logger *log.Logger, out io.Writer) *Launcher {
	return &Launcher{
		sys:    sys,
		probe:  apps.NewProbe(sys),
		logger: logger,
		out:    out,
	}
}

// Launch starts the apps of env in sequence order. An unknown environment is
// an error and launches nothing.
func (l *Launcher) Launch(cfg *config.Config, env string, force bool) error {
	refs, ok := cfg.Apps(env)
	if !ok {
		return fmt.Errorf("%w: %q", config.ErrEnvironmentNotFound, env)
	}

	for _, ref := range refs {
		if !force && l.probe.IsRunning(ref) {
			fmt.Fprintf(l.out, "Skipping: %s (already running)\n", ref)
			continue
		}
		fmt.Fprintf(l.out, "Launching: %s\n", ref)
		if err := l.sys.SpawnDetached(ref); err != nil {
			l.logger.Error("failed to launch application", "app", ref, "err", err)
		}
	}

	l.logger.Info("launched environment", "env", env, "force", force)
	return nil
}
