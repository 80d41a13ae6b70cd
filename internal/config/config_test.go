package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// isolate points every directory the loader touches at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv("TETHER_DOTENV_PATH", filepath.Join(tmp, "missing.env"))
	return tmp
}

func TestLoadAndGet(t *testing.T) {
	isolate(t)
	Load()

	require.Equal(t, "default", Get("missing", "default"))
}

func TestDefaults(t *testing.T) {
	tmp := isolate(t)
	t.Setenv("TETHER_CONFIG_PATH", filepath.Join(tmp, "does-not-exist.toml"))
	Load()

	defaults := map[string]string{
		"gateway_url":          "http://localhost:8000",
		"search_path":          "/api/submitData",
		"save_path":            "/api/saveData",
		"retrieve_path":        "/api/retrieveData",
		"remove_path":          "/api/removeData",
		"request_timeout":      "30s",
		"notification_timeout": "3s",
		"auth_poll_interval":   "3s",
		"store_backend":        "sqlite",
		"logging_enabled":      "false",
		"logging_level":        "info",
		"logging_max_files":    "10",
	}
	for key, expected := range defaults {
		require.Equal(t, expected, Get(key, ""), "default value mismatch for %s", key)
	}
	require.Equal(t, "http://localhost:8000/.auth/me", Get("auth_url", ""))
	require.Equal(t, 3*time.Second, GetDuration("notification_timeout", 0))
}

func TestXdgDirectoryDefaults(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("TETHER_DOTENV_PATH", filepath.Join(tmpHome, "missing.env"))

	Load()

	require.Equal(t, filepath.Join(tmpHome, ".config", "tether"), Get("config_dir", ""))
	require.Equal(t, filepath.Join(tmpHome, ".local", "state", "tether"), Get("state_dir", ""))
}

func TestConfigLoadingPrecedence(t *testing.T) {
	tmp := isolate(t)

	configFile := filepath.Join(tmp, "config.toml")
	content := `
gateway_url = "https://gateway.example.com"
store_backend = "redis"
request_timeout = "10s"
redis_db = 2
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	t.Setenv("TETHER_CONFIG_PATH", configFile)
	t.Setenv("TETHER_STORE_BACKEND", "memory")

	Load()

	require.Equal(t, "memory", Get("store_backend", ""), "environment should override config file")
	require.Equal(t, "https://gateway.example.com", Get("gateway_url", ""))
	require.Equal(t, 10*time.Second, GetDuration("request_timeout", 0))
	require.Equal(t, 2, GetInt("redis_db", 0))
	require.Equal(t, "https://gateway.example.com/.auth/me", Get("auth_url", ""))
}

func TestDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	tmp := isolate(t)

	dotenv := filepath.Join(tmp, "test.env")
	require.NoError(t, os.WriteFile(dotenv, []byte("TETHER_SUBSCRIPTION_KEY=from-dotenv\nTETHER_USER_ID=from-dotenv\n"), 0644))
	t.Setenv("TETHER_DOTENV_PATH", dotenv)
	t.Setenv("TETHER_USER_ID", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("TETHER_SUBSCRIPTION_KEY") })

	Load()

	require.Equal(t, "from-dotenv", Get("subscription_key", ""))
	require.Equal(t, "from-env", Get("user_id", ""))
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("TETHER_STORE_BACKEND", "postgres")
	t.Setenv("TETHER_REQUEST_TIMEOUT", "soon")
	t.Setenv("TETHER_NOTIFICATION_TIMEOUT", "-1s")
	t.Setenv("TETHER_GATEWAY_URL", "not a url")
	t.Setenv("TETHER_LOGGING_MAX_FILES", "0")

	Load()

	require.Equal(t, "sqlite", Get("store_backend", ""))
	require.Equal(t, "30s", Get("request_timeout", ""))
	require.Equal(t, "3s", Get("notification_timeout", ""))
	require.Equal(t, "http://localhost:8000", Get("gateway_url", ""))
	require.Equal(t, "10", Get("logging_max_files", ""))
}

func TestBooleanNormalization(t *testing.T) {
	isolate(t)

	testCases := []struct {
		input    string
		expected string
	}{
		{"1", "true"},
		{"yes", "true"},
		{"ON", "true"},
		{"0", "false"},
		{"no", "false"},
		{"OFF", "false"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			t.Setenv("TETHER_DEBUG", tc.input)
			Load()
			require.Equal(t, tc.expected, Get("debug", ""))
		})
	}
}

func TestPathValidatorAddsLeadingSlash(t *testing.T) {
	isolate(t)
	t.Setenv("TETHER_SEARCH_PATH", "api/search")

	Load()

	require.Equal(t, "/api/search", Get("search_path", ""))
}

func TestSampleConfigCreated(t *testing.T) {
	tmp := isolate(t)
	Load()

	data, err := os.ReadFile(filepath.Join(tmp, "config", "tether", "config.toml"))
	require.NoError(t, err)
	require.Contains(t, string(data), "# tether configuration")
	require.Contains(t, string(data), "store_backend")
}

func TestSetOverridesLoadedValue(t *testing.T) {
	isolate(t)
	Load()

	Set("store_backend", "memory")
	require.Equal(t, "memory", Get("store_backend", ""))
}

func TestRegisterValidatorPanicsOnDuplicate(t *testing.T) {
	require.Panics(t, func() {
		RegisterValidator("store_backend", BoolValidator())
	})
}
