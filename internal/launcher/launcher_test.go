package launcher

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"clovis/internal/config"

	"github.com/charmbracelet/log"
)

type fakeEnv struct {
	running  map[string]bool
	spawnErr map[string]error
	spawned  []string
}

func (f *fakeEnv) ResolveExecutable(string) bool { return true }

func (f *fakeEnv) FindRunningProcess(substr string) bool { return f.running[substr] }

func (f *fakeEnv) SpawnDetached(ref string) error {
	f.spawned = append(f.spawned, ref)
	return f.spawnErr[ref]
}

func testConfig() *config.Config {
	cfg := config.Empty()
	cfg.Environments["work"] = []string{"foo", "bar"}
	return cfg
}

func TestLaunch_SkipsRunningApps(t *testing.T) {
	env := &fakeEnv{running: map[string]bool{"foo": true}}
	var out bytes.Buffer
	l := New(env, log.New(io.Discard), &out)

	if err := l.Launch(testConfig(), "work", false); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}

	if len(env.spawned) != 1 || env.spawned[0] != "bar" {
		t.Fatalf("expected only bar spawned, got %v", env.spawned)
	}
	if !strings.Contains(out.String(), "Skipping: foo (already running)") {
		t.Errorf("missing skip notice, output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Launching: bar") {
		t.Errorf("missing launch notice, output:\n%s", out.String())
	}
}

func TestLaunch_ForceLaunchesEverything(t *testing.T) {
	env := &fakeEnv{running: map[string]bool{"foo": true, "bar": true}}
	var out bytes.Buffer
	l := New(env, log.New(io.Discard), &out)

	if err := l.Launch(testConfig(), "work", true); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}

	if len(env.spawned) != 2 {
		t.Fatalf("expected 2 spawns, got %v", env.spawned)
	}
	if strings.Contains(out.String(), "Skipping") {
		t.Errorf("force launch must not skip, output:\n%s", out.String())
	}
}

func TestLaunch_UnknownEnvironment(t *testing.T) {
	env := &fakeEnv{}
	l := New(env, log.New(io.Discard), io.Discard)

	err := l.Launch(testConfig(), "nosuch", false)
	if !errors.Is(err, config.ErrEnvironmentNotFound) {
		t.Fatalf("expected ErrEnvironmentNotFound, got %v", err)
	}
	if len(env.spawned) != 0 {
		t.Errorf("nothing should be spawned, got %v", env.spawned)
	}
}

func TestLaunch_SpawnFailureContinuesLoop(t *testing.T) {
	env := &fakeEnv{spawnErr: map[string]error{"foo": errors.New("no such helper")}}
	l := New(env, log.New(io.Discard), io.Discard)

	if err := l.Launch(testConfig(), "work", false); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if len(env.spawned) != 2 {
		t.Fatalf("expected both apps attempted, got %v", env.spawned)
	}
}

func TestLaunch_DesktopRefProbedByBareName(t *testing.T) {
	cfg := config.Empty()
	cfg.Environments["web"] = []string{"firefox.desktop"}

	env := &fakeEnv{running: map[string]bool{"firefox": true}}
	l := New(env, log.New(io.Discard), io.Discard)

	if err := l.Launch(cfg, "web", false); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if len(env.spawned) != 0 {
		t.Errorf("running desktop app should be skipped, got spawns %v", env.spawned)
	}
}
