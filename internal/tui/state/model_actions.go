package state

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tether-travel/tether/internal/domain"
)

// submit runs the form's search unless one is already in flight, in which
// case the trigger is inert.
func (m *Model) submit() tea.Cmd {
	f := m.flows[m.form.domain]
	if m.searching || !f.CanSubmit() {
		return nil
	}
	q := m.form.query(m.airports)
	m.searching = true
	ctx, p := m.ctx, m.principal
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		out, err := f.Submit(ctx, p, q)
		return searchDoneMsg{Domain: f.Domain(), Outcome: out, Err: err}
	})
}

func (m *Model) saveSelected() tea.Cmd {
	d := m.ui.domain
	rc := m.caches.For(d)
	if rc == nil {
		return nil
	}
	item, ok := rc.At(m.ui.cursor)
	if !ok {
		return nil
	}
	if id, err := domain.ItemID(d, item); err == nil && m.saver.Pending(d, id) {
		return nil
	}
	m.ops++
	ctx, p, saver := m.ctx, m.principal, m.saver
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return saveDoneMsg{Domain: d, OK: saver.Save(ctx, p, d, item)}
	})
}

func (m *Model) removeSelected() tea.Cmd {
	if m.ui.cursor >= len(m.savedItems) {
		return nil
	}
	d := m.ui.domain
	id, _ := domain.ItemID(d, m.savedItems[m.ui.cursor])
	if id != "" && m.saver.Pending(d, id) {
		return nil
	}
	m.ops++
	ctx, p, saver := m.ctx, m.principal, m.saver
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return removeDoneMsg{Domain: d, ID: id, OK: saver.Remove(ctx, p, d, id)}
	})
}

func (m *Model) loadSaved() tea.Cmd {
	d := m.ui.domain
	m.loadingSaved = true
	m.savedFor = d
	m.savedItems = nil
	ctx, p, saved := m.ctx, m.principal, m.saved
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		items, err := saved.Load(ctx, p, d)
		return savedLoadedMsg{Domain: d, Items: items, Err: err}
	})
}

// listItems returns the rows of the current list screen.
func (m *Model) listItems() []domain.SearchResult {
	switch m.ui.screen {
	case screenResults:
		if rc := m.caches.For(m.ui.domain); rc != nil {
			return rc.Current()
		}
	case screenSaved:
		return m.savedItems
	}
	return nil
}

func (m *Model) listLen() int {
	return len(m.listItems())
}
