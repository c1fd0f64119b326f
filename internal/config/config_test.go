package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFile_ReturnsError(t *testing.T) {
	tmp := t.TempDir()

	_, err := Load(filepath.Join(tmp, "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_CorruptFile_ReturnsError(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")
	if err := os.WriteFile(path, []byte("environments: [not: a: map"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error for corrupt file")
	}
}

func TestSaveLoad_RoundTripPreservesAppOrder(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")

	cfg := Empty()
	cfg.Environments["work"] = []string{"firefox", "slack.desktop", "alacritty"}
	cfg.Environments["play"] = []string{"steam"}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	apps, ok := loaded.Apps("work")
	if !ok {
		t.Fatal("environment work missing after round trip")
	}
	want := []string{"firefox", "slack.desktop", "alacritty"}
	if len(apps) != len(want) {
		t.Fatalf("expected %d apps, got %d", len(want), len(apps))
	}
	for i := range want {
		if apps[i] != want[i] {
			t.Errorf("apps[%d] = %q, want %q", i, apps[i], want[i])
		}
	}

	// Second save of the loaded config must produce identical bytes.
	first, _ := cfg.Bytes()
	second, _ := loaded.Bytes()
	if string(first) != string(second) {
		t.Errorf("serialization not stable:\n%s\nvs\n%s", first, second)
	}
}

func TestSave_CreatesParentDirectories(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "nested", "deep", "config.yaml")

	cfg := Empty()
	cfg.Environments["dev"] = []string{"code"}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")

	cfg := Empty()
	cfg.Environments["dev"] = []string{"code"}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only config.yaml in %s, found %d entries", tmp, len(entries))
	}
}

func TestNames_Sorted(t *testing.T) {
	cfg := Empty()
	cfg.Environments["zulu"] = nil
	cfg.Environments["alpha"] = nil
	cfg.Environments["mike"] = nil

	names := cfg.Names()
	want := []string{"alpha", "mike", "zulu"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestClone_IsIndependent(t *testing.T) {
	cfg := Empty()
	cfg.Environments["work"] = []string{"firefox"}

	clone := cfg.Clone()
	clone.Environments["work"] = append(clone.Environments["work"], "slack")

	if len(cfg.Environments["work"]) != 1 {
		t.Error("mutating clone changed the original")
	}
}
