package notify

import (
	"github.com/tether-travel/tether/internal/colors"
	"github.com/tether-travel/tether/internal/domain"
)

// ColorOutput is the console surface a ConsoleDisplay prints to.
type ColorOutput interface {
	Error(msgs ...string)
	Success(msgs ...string)
}

// ColorsOutput adapts the colors package to ColorOutput.
type ColorsOutput struct{}

var _ ColorOutput = (*ColorsOutput)(nil)

func (o *ColorsOutput) Error(msgs ...string) {
	colors.Error(msgs...)
}

func (o *ColorsOutput) Success(msgs ...string) {
	colors.Success(msgs...)
}

// ConsoleDisplay prints notifications once. Printed lines cannot be taken
// back, so Clear does nothing.
type ConsoleDisplay struct {
	out ColorOutput
}

var _ Display = (*ConsoleDisplay)(nil)

// NewConsoleDisplay creates a display over out, or over the colors package
// when out is nil.
func NewConsoleDisplay(out ColorOutput) *ConsoleDisplay {
	if out == nil {
		out = &ColorsOutput{}
	}
	return &ConsoleDisplay{out: out}
}

func (d *ConsoleDisplay) Render(n domain.Notification) {
	switch n.Kind {
	case domain.KindError:
		d.out.Error(n.Text)
	default:
		d.out.Success(n.Text)
	}
}

func (d *ConsoleDisplay) Clear(domain.Notification) {}

// DisplayFunc adapts a pair of functions to Display. Either may be nil.
type DisplayFunc struct {
	OnRender func(domain.Notification)
	OnClear  func(domain.Notification)
}

func (f DisplayFunc) Render(n domain.Notification) {
	if f.OnRender != nil {
		f.OnRender(n)
	}
}

func (f DisplayFunc) Clear(n domain.Notification) {
	if f.OnClear != nil {
		f.OnClear(n)
	}
}
