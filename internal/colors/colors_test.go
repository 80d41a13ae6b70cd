package colors

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T, fn func()) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	defer SetOutput(nil, nil)
	fn()
	return out.String(), errOut.String()
}

func TestConsoleStreams(t *testing.T) {
	SetDebug(true)
	defer SetDebug(false)

	tests := []struct {
		name     string
		print    func(...string)
		toStderr bool
		prefix   string
		color    string
	}{
		{"error", Error, true, "Error:", Red},
		{"warning", Warning, true, "Warning:", Yellow},
		{"debug", Debug, true, "Debug:", Cyan},
		{"success", Success, false, checkmark, Green},
		{"info", Info, false, "", Blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := captureOutput(t, func() { tt.print("flight", "saved") })
			got, other := out, errOut
			if tt.toStderr {
				got, other = errOut, out
			}
			require.Empty(t, other)
			require.Contains(t, got, "flight saved")
			require.Contains(t, got, tt.prefix)
			require.Contains(t, got, tt.color)
		})
	}
}

func TestDebugDisabled(t *testing.T) {
	SetDebug(false)
	out, errOut := captureOutput(t, func() { Debug("hidden") })
	require.Empty(t, out)
	require.Empty(t, errOut)
}

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) record(level, msg string) { r.lines = append(r.lines, level+":"+msg) }

func (r *recordingLogger) Debug(msg string, args ...any) { r.record("debug", msg) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.record("info", msg) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.record("warn", msg) }
func (r *recordingLogger) Error(msg string, args ...any) { r.record("error", msg) }

func TestConsoleOutputIsMirroredToLogger(t *testing.T) {
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)

	captureOutput(t, func() {
		Error("boom")
		Warning("careful")
		Success("done")
		Info("fyi")
	})

	require.Equal(t, []string{"error:boom", "warn:careful", "info:done", "info:fyi"}, rec.lines)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("closed") }

func TestWriteFailureFallsBackWithoutRecursion(t *testing.T) {
	var errOut bytes.Buffer
	SetOutput(failingWriter{}, &errOut)
	defer SetOutput(nil, nil)

	require.NotPanics(t, func() { Info("lost") })
	require.Contains(t, errOut.String(), fmt.Sprintf("failed to print info message: %s", "closed"))
}
