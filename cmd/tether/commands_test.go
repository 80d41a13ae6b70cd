package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tether-travel/tether/cmd"
	"github.com/tether-travel/tether/internal/colors"
	"github.com/tether-travel/tether/internal/domain"
)

func TestResultsPrintsCachedResults(t *testing.T) {
	client := newFakeClient()
	client.results[domain.Flights] = results(testFlight)

	out, err := execute(t, NewResultsCmd(client), "flights", "--format", "compact")
	require.NoError(t, err)
	assert.Equal(t, "1. LHR → JFK  412.50\n", out)
}

func TestResultsEmptyAndWeather(t *testing.T) {
	client := newFakeClient()
	out, err := execute(t, NewResultsCmd(client), "itinerary")
	require.NoError(t, err)
	assert.Contains(t, out, "No itinerary results yet")

	_, err = execute(t, NewResultsCmd(client), "weather")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not kept")
}

func TestSaveParsesIndex(t *testing.T) {
	client := newFakeClient()
	_, err := execute(t, NewSaveCmd(client), "flights", "2")
	require.NoError(t, err)
	assert.Equal(t, []int{2}, client.saves)

	for _, bad := range []string{"0", "-1", "two"} {
		_, err = execute(t, NewSaveCmd(client), "flights", bad)
		require.Error(t, err, bad)
	}
	assert.Len(t, client.saves, 1)
}

func TestSaveFailureIsReported(t *testing.T) {
	client := newFakeClient()
	client.opErr = reported(errors.New("save flights 1"))
	_, err := execute(t, NewSaveCmd(client), "flights", "1")
	require.ErrorIs(t, err, cmd.ErrReported)
}

func TestRemove(t *testing.T) {
	client := newFakeClient()
	_, err := execute(t, NewRemoveCmd(client), "itinerary", " 42 ")
	require.NoError(t, err)
	assert.Equal(t, []string{"itinerary/42"}, client.removed)

	_, err = execute(t, NewRemoveCmd(client), "hotels", "1")
	require.Error(t, err)
}

func TestSavedSingleDomain(t *testing.T) {
	client := newFakeClient()
	client.saved[domain.Itinerary] = results(testActivity)

	out, err := execute(t, NewSavedCmd(client), "itinerary", "--format", "json")
	require.NoError(t, err)
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "Louvre", decoded[0]["activity_name"])
}

func TestSavedAll(t *testing.T) {
	client := newFakeClient()
	client.saved[domain.Flights] = results(testFlight)

	out, err := execute(t, NewSavedCmd(client), "all", "--template", "{{id}}")
	require.NoError(t, err)
	assert.Equal(t, "Saved flights:\nF-1\nSaved itinerary:\n", out)
}

func TestSavedEmptyList(t *testing.T) {
	client := newFakeClient()
	out, err := execute(t, NewSavedCmd(client), "flights")
	require.NoError(t, err)
	assert.Equal(t, "Nothing saved yet.\n", out)
}

func TestSavedFailure(t *testing.T) {
	client := newFakeClient()
	client.loadErr = reported(errors.New("retrieve"))
	_, err := execute(t, NewSavedCmd(client), "flights")
	require.ErrorIs(t, err, cmd.ErrReported)
}

func TestAirports(t *testing.T) {
	client := newFakeClient()
	out, err := execute(t, NewAirportsCmd(client), "nowhere")
	require.NoError(t, err)
	assert.Equal(t, "No airports match \"nowhere\".\n", out)

	client.options = []domain.AirportOption{{AirportCode: "CDG", FullLabel: "CDG (Paris, France)"}}
	out, err = execute(t, NewAirportsCmd(client), "par")
	require.NoError(t, err)
	assert.Equal(t, "CDG (Paris, France)\n", out)
}

func TestWhoami(t *testing.T) {
	client := newFakeClient()
	out, err := execute(t, NewWhoamiCmd(client))
	require.NoError(t, err)
	assert.Equal(t, "not signed in\n", out)

	client.principal = &domain.Principal{UserID: "u1", UserDetails: "ada@example.com"}
	out, err = execute(t, NewWhoamiCmd(client))
	require.NoError(t, err)
	assert.Contains(t, out, "user id:   u1")
	assert.Contains(t, out, "details:   ada@example.com")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, NewVersionCmd(newFakeClient()))
	require.NoError(t, err)
	assert.Equal(t, "tether version 1.2.3+abc\n", out)
}

func TestTUI(t *testing.T) {
	client := &fakeTUI{}
	_, err := execute(t, NewTUICmd(client))
	require.NoError(t, err)
	assert.True(t, client.created)

	client.runErr = errors.New("no tty")
	_, err = execute(t, NewTUICmd(client))
	require.ErrorIs(t, err, cmd.ErrReported)
}

func TestRunExitCodes(t *testing.T) {
	closed := 0
	closeFn := func() error { closed++; return nil }

	assert.Equal(t, 0, run(func() error { return nil }, closeFn))
	assert.Equal(t, 1, run(func() error { return reported(errors.New("x")) }, closeFn))
	assert.Equal(t, 1, run(func() error { return errors.New("boom") }, closeFn))
	assert.Equal(t, 3, closed)
}

func TestPlannerCloseBeforeBuild(t *testing.T) {
	require.NoError(t, (&planner{}).Close())
}

func TestTableHeaderColorOnlyOnTerminal(t *testing.T) {
	client := newFakeClient()
	client.results[domain.Flights] = results(testFlight)

	out, err := execute(t, NewResultsCmd(client), "flights")
	require.NoError(t, err)
	assert.NotContains(t, out, "\033[")
	assert.Contains(t, out, "ROUTE")

	orig := isTerminal
	defer func() { isTerminal = orig }()
	isTerminal = func(io.Writer) bool { return true }

	out, err = execute(t, NewResultsCmd(client), "flights")
	require.NoError(t, err)
	assert.Contains(t, out, "\033[0;34m")
}

func TestRunLogsStartupAndFailureInDebug(t *testing.T) {
	var errOut bytes.Buffer
	colors.SetOutput(&bytes.Buffer{}, &errOut)
	defer colors.SetOutput(nil, nil)
	colors.SetDebug(true)
	defer colors.SetDebug(false)

	code := run(func() error { return errors.New("boom") }, func() error { return nil })
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), `"op":"run"`)
	assert.Contains(t, errOut.String(), `"status":"started"`)
	assert.Contains(t, errOut.String(), `"status":"failed"`)
	assert.Contains(t, errOut.String(), "boom")
}
