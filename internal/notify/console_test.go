package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tether-travel/tether/internal/domain"
)

type mockColorOutput struct {
	errors    []string
	successes []string
}

func (m *mockColorOutput) Error(msgs ...string)   { m.errors = append(m.errors, msgs...) }
func (m *mockColorOutput) Success(msgs ...string) { m.successes = append(m.successes, msgs...) }

func TestConsoleDisplayRoutesByKind(t *testing.T) {
	out := &mockColorOutput{}
	d := NewConsoleDisplay(out)

	d.Render(domain.Notification{Text: "Error saving flight.", Kind: domain.KindError})
	d.Render(domain.Notification{Text: "Flight saved successfully!", Kind: domain.KindSuccess})
	d.Clear(domain.Notification{Text: "ignored"})

	assert.Equal(t, []string{"Error saving flight."}, out.errors)
	assert.Equal(t, []string{"Flight saved successfully!"}, out.successes)
}

func TestNewConsoleDisplayDefaultsToColors(t *testing.T) {
	d := NewConsoleDisplay(nil)
	_, ok := d.out.(*ColorsOutput)
	assert.True(t, ok)
}

func TestDisplayFuncToleratesNil(t *testing.T) {
	var rendered int
	d := DisplayFunc{OnRender: func(domain.Notification) { rendered++ }}
	d.Render(domain.Notification{})
	d.Clear(domain.Notification{})
	assert.Equal(t, 1, rendered)
}
