package diff

import (
	"strings"
	"testing"
)

func TestLines_IdenticalTexts(t *testing.T) {
	if lines := Lines("a\nb\n", "a\nb\n"); lines != nil {
		t.Fatalf("expected nil for identical texts, got %v", lines)
	}
}

func TestLines_AddedLine(t *testing.T) {
	oldText := "environments:\n  work:\n    - firefox\n"
	newText := "environments:\n  work:\n    - firefox\n    - slack\n"

	lines := Lines(oldText, newText)
	added, removed := Stats(lines)
	if added != 1 || removed != 0 {
		t.Fatalf("expected 1 added, 0 removed; got %d/%d", added, removed)
	}

	var found bool
	for _, line := range lines {
		if line.Type == LineAdded && strings.Contains(line.Text, "slack") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an added line mentioning slack, got %v", lines)
	}
}

func TestLines_RemovedLine(t *testing.T) {
	oldText := "a\nb\nc\n"
	newText := "a\nc\n"

	added, removed := Stats(Lines(oldText, newText))
	if added != 0 || removed != 1 {
		t.Fatalf("expected 0 added, 1 removed; got %d/%d", added, removed)
	}
}

func TestRender_UsesUnifiedMarkers(t *testing.T) {
	out := Render([]Line{
		{Type: LineRemoved, Text: "old"},
		{Type: LineAdded, Text: "new"},
		{Type: LineEqual, Text: "same"},
	})

	if !strings.Contains(out, "- old") {
		t.Errorf("missing removal marker in %q", out)
	}
	if !strings.Contains(out, "+ new") {
		t.Errorf("missing addition marker in %q", out)
	}
	if !strings.Contains(out, "  same") {
		t.Errorf("missing context line in %q", out)
	}
}
