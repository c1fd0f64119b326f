package envs

import (
	"clovis/internal/apps"
	"clovis/internal/config"

	"github.com/charmbracelet/log"
)

// Finding is one unavailable (environment, application) pair.
type Finding struct {
	Env string
	App string
}

// Validator scans a whole config for applications that are no longer
// installed.
type Validator struct {
	checker *apps.Checker
	logger  *log.Logger
}

// NewValidator creates a Validator.
func NewValidator(checker *apps.Checker, logger *log.Logger) *Validator {
	return &Validator{checker: checker, logger: logger}
}

// Validate checks every (env, app) pair, environments in name order and apps
// in sequence order. It never stops early: the result lists every
// unavailable pair, with one warning logged per finding.
func (v *Validator) Validate(cfg *config.Config) []Finding {
	var findings []Finding
	for _, env := range cfg.Names() {
		refs, _ := cfg.Apps(env)
		for _, app := range refs {
			if v.checker.IsAvailable(app) {
				continue
			}
			v.logger.Warnf("application %q in environment %q is not installed or not in PATH", app, env)
			findings = append(findings, Finding{Env: env, App: app})
		}
	}
	return findings
}
