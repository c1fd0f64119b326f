// Package picker implements the interactive environment picker shown when
// clovis runs without a subcommand.
package picker

import (
	"clovis/internal/ui"
	"clovis/internal/ui/components"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// LaunchRequest is what the user chose in the picker.
type LaunchRequest struct {
	Env   string
	Force bool
}

// RefreshFunc rebuilds the environment items, re-probing availability and
// running state.
type RefreshFunc func() []components.Item

// Model is the bubbletea model for the environment picker.
type Model struct {
	list    *components.EnvList
	keys    ui.KeyMap
	help    help.Model
	refresh RefreshFunc
	force   bool
	choice  *LaunchRequest
}

// New creates the picker over the given environment items.
func New(items []components.Item, refresh RefreshFunc) *Model {
	return &Model{
		list:    components.NewEnvList(items),
		keys:    ui.DefaultKeyMap(),
		help:    help.New(),
		refresh: refresh,
	}
}

// Choice returns the selected launch request, or nil if the picker was quit.
func (m *Model) Choice() *LaunchRequest {
	return m.choice
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.Width = min(msg.Width-2, 64)
		m.list.Height = msg.Height - 6
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.list.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.list.MoveDown()
		case key.Matches(msg, m.keys.Home):
			m.list.GoToFirst()
		case key.Matches(msg, m.keys.End):
			m.list.GoToLast()
		case key.Matches(msg, m.keys.Force):
			m.force = !m.force
		case key.Matches(msg, m.keys.Refresh):
			if m.refresh != nil {
				m.list.SetItems(m.refresh())
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Enter):
			if item := m.list.Current(); item != nil {
				m.choice = &LaunchRequest{Env: item.Name, Force: m.force}
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	header := ui.HeaderStyle.Render("clovis — environment launcher")

	status := "force: off"
	if m.force {
		status = ui.WarningStyle.Render("force: on")
	}

	return ui.AppStyle.Render(
		header + "\n" +
			m.list.View() + "\n" +
			ui.StatusBarStyle.Render(status) + "\n" +
			m.help.View(m.keys),
	)
}
