package components

import (
	"fmt"
	"strings"

	"clovis/internal/ui"
)

// Item is one environment row in the picker.
type Item struct {
	Name    string
	Apps    int // total apps in the environment
	Missing int // apps that are not installed
	Running int // apps already running
}

// EnvList is a scrollable list of environments.
type EnvList struct {
	Items  []Item
	Cursor int
	Width  int
	Height int
	Title  string
}

// NewEnvList creates an environment list.
func NewEnvList(items []Item) *EnvList {
	return &EnvList{
		Items:  items,
		Cursor: 0,
		Width:  44,
		Height: 15,
		Title:  "Environments",
	}
}

// SetItems updates the list, keeping the cursor in range.
func (l *EnvList) SetItems(items []Item) {
	l.Items = items
	if l.Cursor >= len(items) {
		l.Cursor = max(0, len(items)-1)
	}
}

// MoveUp moves cursor up
func (l *EnvList) MoveUp() {
	if l.Cursor > 0 {
		l.Cursor--
	}
}

// MoveDown moves cursor down
func (l *EnvList) MoveDown() {
	if l.Cursor < len(l.Items)-1 {
		l.Cursor++
	}
}

// GoToFirst moves cursor to the first item
func (l *EnvList) GoToFirst() {
	l.Cursor = 0
}

// GoToLast moves cursor to the last item
func (l *EnvList) GoToLast() {
	if len(l.Items) > 0 {
		l.Cursor = len(l.Items) - 1
	}
}

// Current returns the environment under the cursor.
func (l *EnvList) Current() *Item {
	if len(l.Items) > 0 && l.Cursor < len(l.Items) {
		return &l.Items[l.Cursor]
	}
	return nil
}

// View renders the list.
func (l *EnvList) View() string {
	var b strings.Builder

	title := l.Title
	if len(l.Items) > 0 {
		title = fmt.Sprintf("%s (%d)", l.Title, len(l.Items))
	}
	b.WriteString(ui.PanelTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("─", max(1, l.Width-2))))
	b.WriteString("\n")

	if len(l.Items) == 0 {
		b.WriteString(ui.ItemStyle.Render("No environments configured"))
		return ui.PanelStyle.Width(l.Width).Render(b.String())
	}

	visibleHeight := l.Height - 3
	if visibleHeight < 1 {
		visibleHeight = 10
	}
	startIdx := 0
	if l.Cursor >= visibleHeight {
		startIdx = l.Cursor - visibleHeight + 1
	}
	endIdx := min(startIdx+visibleHeight, len(l.Items))

	if startIdx > 0 {
		b.WriteString(ui.MutedStyle.Render("  ↑ more"))
		b.WriteString("\n")
	}

	for i := startIdx; i < endIdx; i++ {
		b.WriteString(l.renderItem(l.Items[i], i == l.Cursor))
		if i < endIdx-1 {
			b.WriteString("\n")
		}
	}

	if endIdx < len(l.Items) {
		b.WriteString("\n")
		b.WriteString(ui.MutedStyle.Render("  ↓ more"))
	}

	return ui.PanelStyle.Width(l.Width).Render(b.String())
}

func (l *EnvList) renderItem(item Item, selected bool) string {
	cursor := "  "
	if selected {
		cursor = ui.CursorStyle.Render("❯ ")
	}

	label := fmt.Sprintf("%s  %s", item.Name, ui.MutedStyle.Render(fmt.Sprintf("%d apps", item.Apps)))
	var badges []string
	if item.Running > 0 {
		badges = append(badges, ui.SuccessStyle.Render(fmt.Sprintf("%d running", item.Running)))
	}
	if item.Missing > 0 {
		badges = append(badges, ui.WarningStyle.Render(fmt.Sprintf("%d missing", item.Missing)))
	}
	if len(badges) > 0 {
		label = fmt.Sprintf("%s  [%s]", label, strings.Join(badges, " "))
	}

	if selected {
		return cursor + ui.SelectedItemStyle.Render(label)
	}
	return cursor + ui.ItemStyle.Render(label)
}
