package logging

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/tether-travel/tether/internal/config"
)

const (
	logFilePrefix = "tether_"
	logFileExt    = ".log"
)

// LogDir returns {state_dir}/logs, or {tmp}/tether/logs when the state
// directory cannot be written.
func LogDir() (string, error) {
	if stateDir := config.Get("state_dir", ""); stateDir != "" {
		dir := filepath.Join(stateDir, "logs")
		if writable(dir) {
			return dir, nil
		}
	}
	dir := filepath.Join(os.TempDir(), "tether", "logs")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

func writable(dir string) bool {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return false
	}
	f, err := os.CreateTemp(dir, ".write_test")
	if err != nil {
		return false
	}
	f.Close()
	os.Remove(f.Name())
	return true
}

// logFilePath names a log file tether_<time>_PID<pid>_<command>.log. The
// command path has its spaces replaced so "tether search flights" stays one
// token.
func logFilePath(dir string, cfg Config, now time.Time) string {
	command := strings.Join(strings.Fields(cfg.Command), "_")
	name := fmt.Sprintf("%s%s_PID%d_%s%s", logFilePrefix, now.Format("20060102_150405"), cfg.PID, command, logFileExt)
	return filepath.Join(dir, name)
}

// prune deletes the oldest tether log files in dir so that, once the caller
// opens its own file, at most keep remain. Other files are left alone.
func prune(dir string, keep int) error {
	if keep <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	type logFile struct {
		name    string
		modTime time.Time
	}
	var files []logFile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, logFilePrefix) || !strings.HasSuffix(name, logFileExt) {
			continue
		}
		f := logFile{name: name}
		if info, err := e.Info(); err == nil {
			f.modTime = info.ModTime()
		}
		files = append(files, f)
	}
	excess := len(files) - (keep - 1)
	if excess <= 0 {
		return nil
	}
	slices.SortFunc(files, func(a, b logFile) int {
		if c := a.modTime.Compare(b.modTime); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})
	for _, f := range files[:excess] {
		os.Remove(filepath.Join(dir, f.name))
	}
	return nil
}
