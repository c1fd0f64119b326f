// Package envs implements the mutation and validation logic over the
// environment config.
package envs

import (
	"fmt"
	"slices"

	"clovis/internal/apps"
	"clovis/internal/config"

	"github.com/charmbracelet/log"
)

// Editor applies add/remove actions to a Config. Every operation returns
// whether the config was actually mutated; callers persist iff true.
type Editor struct {
	cfg     *config.Config
	checker *apps.Checker
	logger  *log.Logger
}

// NewEditor creates an Editor over cfg.
func NewEditor(cfg *config.Config, checker *apps.Checker, logger *log.Logger) *Editor {
	return &Editor{cfg: cfg, checker: checker, logger: logger}
}

// Apply dispatches an action string to Add or Remove.
func (e *Editor) Apply(env, action, app string) (bool, error) {
	switch action {
	case "add":
		return e.Add(env, app)
	case "remove":
		return e.Remove(env, app)
	default:
		return false, fmt.Errorf("%w %q: use 'add' or 'remove'", config.ErrInvalidAction, action)
	}
}

// Add appends app to env's sequence. The environment must exist and the app
// must not already be present. The availability warning fires before the
// duplicate check: the user learns the app is missing even when the add is
// rejected.
func (e *Editor) Add(env, app string) (bool, error) {
	if !e.cfg.Has(env) {
		return false, fmt.Errorf("%w: %q", config.ErrEnvironmentNotFound, env)
	}

	e.warnIfUnavailable(app)

	if slices.Contains(e.cfg.Environments[env], app) {
		return false, fmt.Errorf("%w: %q in %q", config.ErrAppAlreadyPresent, app, env)
	}

	e.cfg.Environments[env] = append(e.cfg.Environments[env], app)
	e.logger.Info("added application", "app", app, "env", env)
	return true, nil
}

// Remove deletes app from env's sequence, keeping the relative order of the
// remaining entries.
func (e *Editor) Remove(env, app string) (bool, error) {
	if !e.cfg.Has(env) {
		return false, fmt.Errorf("%w: %q", config.ErrEnvironmentNotFound, env)
	}

	e.warnIfUnavailable(app)

	idx := slices.Index(e.cfg.Environments[env], app)
	if idx < 0 {
		return false, fmt.Errorf("%w: %q in %q", config.ErrAppNotPresent, app, env)
	}

	e.cfg.Environments[env] = slices.Delete(e.cfg.Environments[env], idx, idx+1)
	e.logger.Info("removed application", "app", app, "env", env)
	return true, nil
}

// CreateEnvironment adds an empty environment under name.
func (e *Editor) CreateEnvironment(name string) (bool, error) {
	if e.cfg.Has(name) {
		return false, fmt.Errorf("%w: %q", config.ErrEnvironmentExists, name)
	}
	e.cfg.Environments[name] = []string{}
	e.logger.Info("created environment", "env", name)
	return true, nil
}

// DeleteEnvironment removes name and its app sequence.
func (e *Editor) DeleteEnvironment(name string) (bool, error) {
	if !e.cfg.Has(name) {
		return false, fmt.Errorf("%w: %q", config.ErrEnvironmentNotFound, name)
	}
	delete(e.cfg.Environments, name)
	e.logger.Info("deleted environment", "env", name)
	return true, nil
}

func (e *Editor) warnIfUnavailable(app string) {
	if !e.checker.IsAvailable(app) {
		e.logger.Warnf("application %q is not installed or not in PATH", app)
	}
}
