package envs

import (
	"io"
	"testing"

	"clovis/internal/apps"
	"clovis/internal/config"

	"github.com/charmbracelet/log"
)

func TestValidator_ReportsEveryUnavailablePair(t *testing.T) {
	cfg := config.Empty()
	cfg.Environments["work"] = []string{"firefox", "ghost", "slack"}
	cfg.Environments["play"] = []string{"steam", "phantom"}

	env := &fakeEnv{resolvable: map[string]bool{
		"firefox": true,
		"slack":   true,
		"steam":   true,
	}}
	validator := NewValidator(apps.NewChecker(env, []string{t.TempDir()}), log.New(io.Discard))

	findings := validator.Validate(cfg)
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d: %v", len(findings), findings)
	}

	// Environments are scanned in name order, apps in sequence order.
	if findings[0].Env != "play" || findings[0].App != "phantom" {
		t.Errorf("findings[0] = %+v, want play/phantom", findings[0])
	}
	if findings[1].Env != "work" || findings[1].App != "ghost" {
		t.Errorf("findings[1] = %+v, want work/ghost", findings[1])
	}
}

func TestValidator_AllInstalled(t *testing.T) {
	cfg := config.Empty()
	cfg.Environments["work"] = []string{"firefox"}

	env := &fakeEnv{resolvable: map[string]bool{"firefox": true}}
	validator := NewValidator(apps.NewChecker(env, []string{t.TempDir()}), log.New(io.Discard))

	if findings := validator.Validate(cfg); len(findings) != 0 {
		t.Fatalf("expected no findings, got %v", findings)
	}
}

func TestValidator_EmptyConfig(t *testing.T) {
	validator := NewValidator(apps.NewChecker(&fakeEnv{}, []string{t.TempDir()}), log.New(io.Discard))
	if findings := validator.Validate(config.Empty()); len(findings) != 0 {
		t.Fatalf("expected no findings for empty config, got %v", findings)
	}
}
