package state

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tether-travel/tether/internal/domain"
)

type screen int

const (
	screenMenu screen = iota
	screenForm
	screenResults
	screenWeather
	screenSaved
)

// UIState holds what is on screen: the current view, its domain and the
// list cursor.
type UIState struct {
	viewport viewport.Model
	width    int
	height   int

	screen     screen
	domain     domain.Domain
	cursor     int
	menuCursor int
}

// NewUIState creates a UIState showing the menu.
func NewUIState() *UIState {
	return &UIState{
		viewport: viewport.New(defaultViewportWidth, defaultViewportHeight-chromeLines),
		width:    defaultViewportWidth,
		height:   defaultViewportHeight,
	}
}

// SetSize records the terminal size and resizes the list viewport.
func (u *UIState) SetSize(width, height int) {
	if width <= 0 {
		width = defaultViewportWidth
	}
	if height <= 0 {
		height = defaultViewportHeight
	}
	u.width = width
	u.height = height
	u.viewport.Width = width
	u.viewport.Height = max(height-chromeLines, 1)
}

// Show switches to s for d and resets the cursor.
func (u *UIState) Show(s screen, d domain.Domain) {
	u.screen = s
	u.domain = d
	u.cursor = 0
	u.viewport.SetYOffset(0)
}

// MoveCursor moves the list cursor by delta within [0, n).
func (u *UIState) MoveCursor(delta, n int) {
	if n <= 0 {
		u.cursor = 0
		return
	}
	u.cursor = min(max(u.cursor+delta, 0), n-1)
}

// ClampCursor keeps the cursor inside a list of n rows.
func (u *UIState) ClampCursor(n int) {
	u.MoveCursor(0, n)
}

// EnsureCursorVisible scrolls the viewport so the cursor row is shown.
func (u *UIState) EnsureCursorVisible() {
	top := u.viewport.YOffset
	if u.cursor < top {
		u.viewport.SetYOffset(u.cursor)
		return
	}
	if bottom := top + u.viewport.Height; u.cursor >= bottom {
		u.viewport.SetYOffset(u.cursor - u.viewport.Height + 1)
	}
}
