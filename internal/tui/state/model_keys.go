package state

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tether-travel/tether/internal/domain"
)

type menuEntry struct {
	label  string
	screen screen
	domain domain.Domain
}

var menuEntries = []menuEntry{
	{"Search flights", screenForm, domain.Flights},
	{"Plan an itinerary", screenForm, domain.Itinerary},
	{"Check the weather", screenForm, domain.Weather},
	{"Last flight results", screenResults, domain.Flights},
	{"Last itinerary results", screenResults, domain.Itinerary},
	{"Saved flights", screenSaved, domain.Flights},
	{"Saved activities", screenSaved, domain.Itinerary},
}

// handleKeyMsg processes keyboard input for the TUI.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+d":
		m.notifier.Dismiss()
		m.toast = nil
		return m, nil
	}

	switch m.ui.screen {
	case screenMenu:
		return m.handleMenuKey(msg)
	case screenForm:
		return m.handleFormKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.ui.menuCursor = max(m.ui.menuCursor-1, 0)
	case "down", "j":
		m.ui.menuCursor = min(m.ui.menuCursor+1, len(menuEntries)-1)
	case "enter":
		return m, m.open(menuEntries[m.ui.menuCursor])
	}
	return m, nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.ui.Show(screenMenu, "")
		return m, nil
	case "tab", "down":
		return m, m.form.move(1)
	case "shift+tab", "up":
		return m, m.form.move(-1)
	case "enter":
		return m, m.submit()
	}
	return m, m.form.update(msg)
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.listLen()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.ui.Show(screenMenu, "")
		return m, nil
	case "up", "k":
		m.ui.MoveCursor(-1, n)
	case "down", "j":
		m.ui.MoveCursor(1, n)
	case "s":
		if m.ui.screen == screenResults {
			return m, m.saveSelected()
		}
	case "x":
		if m.ui.screen == screenSaved {
			return m, m.removeSelected()
		}
	case "r":
		if m.ui.screen == screenSaved {
			return m, m.loadSaved()
		}
	}
	m.refreshList()
	return m, nil
}

// open switches to the screen of entry.
func (m *Model) open(entry menuEntry) tea.Cmd {
	m.ui.Show(entry.screen, entry.domain)
	switch entry.screen {
	case screenForm:
		m.form = newForm(entry.domain)
		return nil
	case screenSaved:
		return m.loadSaved()
	default:
		m.refreshList()
		return nil
	}
}
