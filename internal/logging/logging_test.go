package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
	"github.com/tether-travel/tether/internal/config"
	"github.com/tether-travel/tether/internal/domain"
)

func setupTest(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("HOME", tmp)
	t.Setenv("TETHER_DOTENV_PATH", filepath.Join(tmp, "missing.env"))
	config.Load()
	return tmp
}

func readLastLine(t *testing.T) string {
	t.Helper()
	logDir := filepath.Join(config.Get("state_dir", ""), "logs")
	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	data, err := os.ReadFile(filepath.Join(logDir, entries[0].Name()))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	return lines[len(lines)-1]
}

func TestConfigFromGlobal(t *testing.T) {
	setupTest(t)
	t.Setenv("TETHER_LOGGING_ENABLED", "true")
	t.Setenv("TETHER_LOGGING_LEVEL", "debug")
	t.Setenv("TETHER_LOGGING_MAX_FILES", "5")
	config.Load()

	cfg := FromGlobalConfig()
	require.True(t, cfg.Enabled)
	require.Equal(t, "debug", cfg.Level)
	require.Equal(t, 5, cfg.MaxFiles)
	require.Equal(t, filepath.Base(os.Args[0]), cfg.Command)
	require.Equal(t, os.Getpid(), cfg.PID)
}

func TestLogLevelMapping(t *testing.T) {
	setupTest(t)

	t.Setenv("TETHER_DEBUG", "true")
	t.Setenv("TETHER_LOGGING_LEVEL", "info")
	config.Load()
	require.Equal(t, "debug", FromGlobalConfig().Level)

	// debug wins over quiet
	t.Setenv("TETHER_QUIET", "true")
	config.Load()
	require.Equal(t, "debug", FromGlobalConfig().Level)

	t.Setenv("TETHER_DEBUG", "")
	config.Load()
	require.Equal(t, "error", FromGlobalConfig().Level)

	t.Setenv("TETHER_QUIET", "")
	t.Setenv("TETHER_LOGGING_LEVEL", "warn")
	config.Load()
	require.Equal(t, "warn", FromGlobalConfig().Level)
}

func TestLogDir(t *testing.T) {
	tmp := setupTest(t)

	stateDir := config.Get("state_dir", "")
	require.True(t, strings.HasPrefix(stateDir, tmp), "state_dir %s not in temp dir %s", stateDir, tmp)

	logDir, err := LogDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(stateDir, "logs"), logDir)
	info, err := os.Stat(logDir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
	require.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestInitDisabled(t *testing.T) {
	logger, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	require.IsType(t, noopLogger{}, logger)
	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")
	require.NoError(t, logger.Shutdown())
}

func TestInitEnabledCreatesFile(t *testing.T) {
	setupTest(t)
	t.Setenv("TETHER_LOGGING_ENABLED", "true")
	config.Load()

	cfg := FromGlobalConfig()
	cfg.Command = "search"
	logger, err := Init(cfg)
	require.NoError(t, err)
	defer logger.Shutdown()

	logDir := filepath.Join(config.Get("state_dir", ""), "logs")
	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	fname := entries[0].Name()
	require.True(t, strings.HasPrefix(fname, "tether_"))
	require.Contains(t, fname, fmt.Sprintf("_PID%d_", os.Getpid()))
	require.True(t, strings.HasSuffix(fname, "_search.log"))
	info, err := os.Stat(filepath.Join(logDir, fname))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoggingWritesJSON(t *testing.T) {
	setupTest(t)
	t.Setenv("TETHER_LOGGING_ENABLED", "true")
	config.Load()

	logger, err := Init(FromGlobalConfig())
	require.NoError(t, err)
	logger.Info("search finished", "domain", "flights", "results", 3)
	require.NoError(t, logger.Shutdown())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(readLastLine(t)), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "search finished", entry["msg"])
	require.Equal(t, float64(os.Getpid()), entry["pid"])
	require.Equal(t, "flights", entry["domain"])
	require.Equal(t, float64(3), entry["results"])
}

func TestRedaction(t *testing.T) {
	setupTest(t)
	t.Setenv("TETHER_LOGGING_ENABLED", "true")
	config.Load()

	logger, err := Init(FromGlobalConfig())
	require.NoError(t, err)
	logger.Info("request", "subscription_key", "abc", "session_cookie", "xyz", "user_id", "u1")
	require.NoError(t, logger.Shutdown())

	last := readLastLine(t)
	require.Contains(t, last, `"subscription_key":"[REDACTED]"`)
	require.Contains(t, last, `"session_cookie":"[REDACTED]"`)
	require.Contains(t, last, `"user_id":"u1"`)
}

func TestRedactionEdgeCases(t *testing.T) {
	r := newRedactor()

	require.Equal(t, []any{"PASSWORD", "[REDACTED]"}, r.redact([]any{"PASSWORD", "secret"}))
	require.Equal(t, []any{"api-token", "[REDACTED]"}, r.redact([]any{"api-token", "xyz"}))
	require.Equal(t, []any{"Ocp-Apim-Subscription-Key", "[REDACTED]"}, r.redact([]any{"Ocp-Apim-Subscription-Key", "k"}))

	require.Equal(t, []any{"apitoken", "xyz"}, r.redact([]any{"apitoken", "xyz"}))
	require.Equal(t, []any{"secretary", "value"}, r.redact([]any{"secretary", "value"}))

	input := []any{"password", "hidden", "name", "john", "age", 30}
	require.Equal(t, []any{"password", "[REDACTED]", "name", "john", "age", 30}, r.redact(input))
	require.Equal(t, "hidden", input[1])

	require.Equal(t, []any{"password", "[REDACTED]", "extra"}, r.redact([]any{"password", "hidden", "extra"}))
	require.Empty(t, r.redact([]any{}))
}

func TestRotation(t *testing.T) {
	setupTest(t)
	t.Setenv("TETHER_LOGGING_ENABLED", "true")
	t.Setenv("TETHER_LOGGING_MAX_FILES", "2")
	config.Load()

	logDir, err := LogDir()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		path := filepath.Join(logDir, fmt.Sprintf("tether_20250101_12000%d_PID999_test.log", i))
		require.NoError(t, os.WriteFile(path, nil, 0600))
		old := time.Now().Add(-time.Duration(i+1) * time.Hour)
		require.NoError(t, os.Chtimes(path, old, old))
	}
	require.NoError(t, os.WriteFile(filepath.Join(logDir, "unrelated.log"), nil, 0600))

	logger, err := Init(FromGlobalConfig())
	require.NoError(t, err)
	require.NoError(t, logger.Shutdown())

	_, err = os.Stat(filepath.Join(logDir, "tether_20250101_120002_PID999_test.log"))
	require.True(t, os.IsNotExist(err), "oldest log file should be rotated away")
	_, err = os.Stat(filepath.Join(logDir, "tether_20250101_120000_PID999_test.log"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(logDir, "unrelated.log"))
	require.NoError(t, err)
}

func TestGlobalLogger(t *testing.T) {
	setupTest(t)
	t.Setenv("TETHER_LOGGING_ENABLED", "true")
	config.Load()

	require.NoError(t, InitGlobal())
	defer ShutdownGlobal()

	Debug("global debug")
	Warn("global warning", "count", 1)
	require.NotPanics(t, func() { With("component", "test").Debug("child") })
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "debug")

	child := logger.With("request_id", "abc")
	child.Info("with context")
	logger.Info("without context")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], `"request_id":"abc"`)
	require.NotContains(t, lines[1], "request_id")
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Info("dropped")
	logger.Warn("kept")

	require.NotContains(t, buf.String(), "dropped")
	require.Contains(t, buf.String(), "kept")
}

func TestWithKeepsFieldOrder(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "info").With("op", "search").With("domain", "flights", "dangling").Info("done")

	line := buf.String()
	require.Less(t, strings.Index(line, `"op"`), strings.Index(line, `"domain"`))
	require.NotContains(t, line, "dangling")
}

func TestForOpAndForRequest(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info")

	ForRequest(l, "save", domain.Itinerary, "req-7").Info("saved")
	ForOp(l, "search", "").Info("no domain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Equal(t, "save", first[FieldOp])
	require.Equal(t, "itinerary", first[FieldDomain])
	require.Equal(t, "req-7", first[FieldRequestID])
	require.Contains(t, lines[1], `"op":"search"`)
	require.NotContains(t, lines[1], FieldDomain)
}

func TestRedactionOfURLQueries(t *testing.T) {
	r := newRedactor()

	out := r.redact([]any{"url", "https://gw.example.com/api/submitData?subscription-key=abc&page=2"})
	require.NotContains(t, out[1], "abc")
	require.Contains(t, out[1], "page=2")

	plain := "https://gw.example.com/api/submitData?page=2"
	require.Equal(t, plain, r.redact([]any{"url", plain})[1])
	require.Equal(t, "a?b", r.redact([]any{"note", "a?b"})[1])
}

func TestLogFilePath(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	path := logFilePath("/logs", Config{Command: "tether search  flights", PID: 42}, at)
	require.Equal(t, filepath.Join("/logs", "tether_20250601_123000_PID42_tether_search_flights.log"), path)
}

func TestPruneLeavesRoomForTheNewFile(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 4; i++ {
		path := filepath.Join(dir, fmt.Sprintf("tether_%d.log", i))
		require.NoError(t, os.WriteFile(path, nil, 0600))
		at := time.Now().Add(-time.Duration(4-i) * time.Hour)
		require.NoError(t, os.Chtimes(path, at, at))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "tether_dir.log"), 0700))

	require.NoError(t, prune(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.ElementsMatch(t, []string{"tether_2.log", "tether_3.log", "tether_dir.log"}, names)
	require.NoError(t, prune(dir, 0))
}

func TestLevelParsing(t *testing.T) {
	require.Equal(t, clog.DebugLevel, parseLevel("debug"))
	require.Equal(t, clog.InfoLevel, parseLevel("info"))
	require.Equal(t, clog.WarnLevel, parseLevel("warn"))
	require.Equal(t, clog.WarnLevel, parseLevel("warning"))
	require.Equal(t, clog.ErrorLevel, parseLevel("error"))
	require.Equal(t, clog.InfoLevel, parseLevel("unknown"))
}
