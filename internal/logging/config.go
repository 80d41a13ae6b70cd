package logging

import (
	"os"
	"path/filepath"

	"github.com/tether-travel/tether/internal/config"
)

// Config selects whether and how the planner writes its log file.
type Config struct {
	Enabled bool
	Level   string
	// MaxFiles bounds how many log files survive in the log directory.
	MaxFiles int
	// Command names the subcommand and ends up in the file name.
	Command string
	PID     int
}

// DefaultConfig is logging switched off at info level.
func DefaultConfig() Config {
	return Config{
		Level:    "info",
		MaxFiles: 10,
		Command:  filepath.Base(os.Args[0]),
		PID:      os.Getpid(),
	}
}

// FromGlobalConfig reads the logging_* keys. The debug flag forces the debug
// level and quiet forces error; debug wins when both are set.
func FromGlobalConfig() Config {
	cfg := DefaultConfig()
	cfg.Enabled = config.GetBool("logging_enabled", false)
	cfg.Level = config.Get("logging_level", cfg.Level)
	cfg.MaxFiles = config.GetInt("logging_max_files", cfg.MaxFiles)
	if config.GetBool("debug", false) {
		cfg.Level = "debug"
	} else if config.GetBool("quiet", false) {
		cfg.Level = "error"
	}
	return cfg
}
