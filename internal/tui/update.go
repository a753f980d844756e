package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fasco-shop/storefront/internal/page"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		m.images.SetSize(m.contentWidth(), imageListLines)
		m.help.Width = m.contentWidth()
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(x)
		return m, cmd

	case pageUpdateMsg:
		m.apply(page.Update(x).State)
		return m, m.listenForUpdates()

	case stoppedMsg:
		return m, nil

	case spinner.TickMsg:
		// The spinner stops for good once the deal has ended.
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(x)
		return m, cmd
	}

	return m, nil
}

// handleKey processes key bindings and returns updated model and command.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.driver.Prev()
		m.apply(m.driver.State())
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.driver.Next()
		m.apply(m.driver.State())
		return m, nil
	}

	return m, nil
}

func (m Model) contentWidth() int {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}
	if w > contentMaxWide {
		w = contentMaxWide
	}
	return w
}
