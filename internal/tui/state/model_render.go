package state

import (
	"fmt"
	"strings"

	"github.com/tether-travel/tether/internal/domain"
	"github.com/tether-travel/tether/internal/tui/render"
)

// View renders the TUI.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(render.Header(render.HeaderState{Title: m.title(), Principal: m.principal, Width: m.ui.width}))
	s.WriteString("\n\n")
	s.WriteString(m.body())
	s.WriteString("\n\n")
	s.WriteString(render.Toast(m.toast))
	s.WriteString("\n")
	s.WriteString(render.Footer(render.FooterState{Hints: m.hints(), Width: m.ui.width}))

	return s.String()
}

func (m *Model) title() string {
	switch m.ui.screen {
	case screenForm:
		return "tether · " + formTitle(m.form.domain)
	case screenResults:
		return fmt.Sprintf("tether · %s results", m.ui.domain)
	case screenWeather:
		return "tether · weather"
	case screenSaved:
		return fmt.Sprintf("tether · saved %s", m.ui.domain)
	default:
		return "tether"
	}
}

func formTitle(d domain.Domain) string {
	switch d {
	case domain.Flights:
		return "search flights"
	case domain.Itinerary:
		return "plan an itinerary"
	default:
		return "check the weather"
	}
}

func (m *Model) body() string {
	switch m.ui.screen {
	case screenForm:
		return m.formView()
	case screenResults, screenSaved:
		if m.ui.screen == screenSaved && m.loadingSaved {
			return m.spinner.View() + " Loading saved " + string(m.ui.domain) + "…"
		}
		if m.listLen() == 0 {
			return render.Empty(m.emptyText())
		}
		return render.ColumnHeader(m.ui.domain) + "\n" + m.ui.viewport.View()
	case screenWeather:
		return render.Weather(m.weather)
	default:
		labels := make([]string, len(menuEntries))
		for i, e := range menuEntries {
			labels[i] = e.label
		}
		return render.Menu(labels, m.ui.menuCursor)
	}
}

func (m *Model) emptyText() string {
	if m.ui.screen == screenSaved {
		if m.principal == nil {
			return "Sign in to see saved items."
		}
		return "Nothing saved yet."
	}
	return "No results yet. Run a search first."
}

func (m *Model) formView() string {
	var b strings.Builder
	for i, f := range m.form.fields {
		pointer := "  "
		if i == m.form.focus {
			pointer = "› "
		}
		fmt.Fprintf(&b, "%s%-11s %s\n", pointer, f.label, f.input.View())
		if i == m.form.focus {
			if s := render.Suggestions(m.form.suggestions(m.airports)); s != "" {
				b.WriteString(s)
				b.WriteString("\n")
			}
		}
	}
	if m.searching {
		b.WriteString("\n" + m.spinner.View() + " Searching…")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) hints() []string {
	switch m.ui.screen {
	case screenForm:
		submit := "enter: search"
		if m.searching {
			submit = "searching…"
		}
		return []string{"tab: next field", submit, "esc: back", "ctrl+d: dismiss"}
	case screenResults:
		return []string{"j/k: move", "s: save", "esc: back", "q: quit"}
	case screenSaved:
		return []string{"j/k: move", "x: remove", "r: reload", "esc: back", "q: quit"}
	case screenWeather:
		return []string{"esc: back", "q: quit"}
	default:
		return []string{"j/k: move", "enter: open", "q: quit"}
	}
}

// refreshList re-renders the rows of the current list into the viewport.
func (m *Model) refreshList() {
	if m.ui.screen != screenResults && m.ui.screen != screenSaved {
		return
	}
	items := m.listItems()
	m.ui.ClampCursor(len(items))
	rows := make([]string, len(items))
	for i, item := range items {
		pending := false
		if id, err := domain.ItemID(m.ui.domain, item); err == nil {
			pending = m.saver.Pending(m.ui.domain, id)
		}
		rows[i] = render.Row(m.ui.domain, render.RowState{
			Item:     item,
			Selected: i == m.ui.cursor,
			Pending:  pending,
			Spinner:  m.spinner.View(),
			Width:    m.ui.width,
		})
	}
	m.ui.viewport.SetContent(strings.Join(rows, "\n"))
	m.ui.EnsureCursorVisible()
}
