// Package diff renders the change an edit makes to the config before it is
// persisted.
package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineType classifies a diff line.
type LineType int

const (
	LineEqual LineType = iota
	LineAdded
	LineRemoved
)

// Line is a single line of the line-based diff.
type Line struct {
	Type LineType
	Text string
}

var (
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	equalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Lines computes a line-based diff between two texts.
func Lines(oldText, newText string) []Line {
	if oldText == newText {
		return nil
	}

	dmp := diffmatchpatch.New()
	chars1, chars2, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var lines []Line
	for _, d := range diffs {
		kind := LineEqual
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			kind = LineAdded
		case diffmatchpatch.DiffDelete:
			kind = LineRemoved
		}
		for _, text := range splitLines(d.Text) {
			lines = append(lines, Line{Type: kind, Text: text})
		}
	}
	return lines
}

// Render formats diff lines with unified-diff markers and colors.
func Render(lines []Line) string {
	var b strings.Builder
	for _, line := range lines {
		switch line.Type {
		case LineAdded:
			b.WriteString(addedStyle.Render("+ " + line.Text))
		case LineRemoved:
			b.WriteString(removedStyle.Render("- " + line.Text))
		default:
			b.WriteString(equalStyle.Render("  " + line.Text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Stats returns added and removed line counts.
func Stats(lines []Line) (added, removed int) {
	for _, line := range lines {
		switch line.Type {
		case LineAdded:
			added++
		case LineRemoved:
			removed++
		}
	}
	return added, removed
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
