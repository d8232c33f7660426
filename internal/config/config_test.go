package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/issuetracker/internal/models"
)

// isolateEnv points the config lookup at a temp dir and clears overrides
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{EnvPort, EnvDatabaseURL, EnvAPIBase, EnvLogLevel, EnvCORSOrigins, EnvThemeFile} {
		t.Setenv(key, "")
	}
	return dir
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, ":4000", cfg.Server.Addr())
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultAPIBase, cfg.Client.APIBase)
	assert.Equal(t, DefaultClientTimeout, cfg.Client.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Database.DSN)
	assert.Equal(t, DefaultKeyMappings(), cfg.KeyMappings)
	assert.Equal(t, DefaultTheme(), cfg.Theme)
}

func TestLoad_YAMLFromConfigHome(t *testing.T) {
	dir := isolateEnv(t)

	content := `server:
  port: 8080
  shutdown_timeout: 3s
database:
  dsn: /tmp/issues.db
client:
  api_base: http://example.test/api/
key_mappings:
  quit: x
  submit_form: ctrl+d
theme:
  preset: monochrome
  open_fg: "#0000FF"
`
	configDir := filepath.Join(dir, "issuetracker")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/tmp/issues.db", cfg.Database.DSN)
	assert.Equal(t, "http://example.test/api", cfg.Client.APIBase, "trailing slash is trimmed")

	// Custom mappings applied, the rest defaulted
	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "ctrl+d", cfg.KeyMappings.SubmitForm)
	assert.Equal(t, "tab", cfg.KeyMappings.NextField)

	// Preset fills the gaps around custom colours
	assert.Equal(t, "monochrome", cfg.Theme.Preset)
	assert.Equal(t, "#0000FF", cfg.Theme.OpenFg)
	assert.Equal(t, MonochromeTheme().ClosedFg, cfg.Theme.ClosedFg)
}

func TestLoad_TOMLByExtension(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "issuetracker.toml")
	content := `[server]
port = 9090
cors_origins = ["http://localhost:3000"]

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	isolateEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8080\n"), 0o644))

	t.Setenv(EnvPort, "5005")
	t.Setenv(EnvDatabaseURL, "file:issues.db")
	t.Setenv(EnvAPIBase, "http://api.test/api")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvCORSOrigins, "http://a.test, http://b.test,")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5005, cfg.Server.Port)
	assert.Equal(t, "file:issues.db", cfg.Database.DSN)
	assert.Equal(t, "http://api.test/api", cfg.Client.APIBase)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSOrigins)
}

func TestLoad_InvalidPort(t *testing.T) {
	tests := []string{"abc", "0", "70000"}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			isolateEnv(t)
			t.Setenv(EnvPort, raw)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_ThemeFile(t *testing.T) {
	isolateEnv(t)

	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte("theme:\n  accent: \"#FF00FF\"\n"), 0o644))
	t.Setenv(EnvThemeFile, themePath)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "#FF00FF", cfg.Theme.Accent)
	assert.Equal(t, DefaultTheme().OpenFg, cfg.Theme.OpenFg)
}

func TestConfig_WriteRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 7777
	cfg.KeyMappings.Quit = "ctrl+q"

	var buf bytes.Buffer
	require.NoError(t, cfg.Write(&buf))

	var loaded Config
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &loaded))

	assert.Equal(t, 7777, loaded.Server.Port)
	assert.Equal(t, "ctrl+q", loaded.KeyMappings.Quit)
	assert.Equal(t, cfg.Server.ShutdownTimeout, loaded.Server.ShutdownTimeout)
}

func TestTheme_StatusColors(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		status models.Status
		fg     string
	}{
		{models.StatusOpen, theme.OpenFg},
		{models.StatusInProgress, theme.InProgressFg},
		{models.StatusClosed, theme.ClosedFg},
		{models.Status("unknown"), theme.OpenFg},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			fg, _ := theme.StatusColors(tt.status)
			assert.Equal(t, tt.fg, fg)
		})
	}
}

func TestGetPreset(t *testing.T) {
	assert.Equal(t, "default", GetPreset("").Preset)
	assert.Equal(t, "default", GetPreset("nonexistent").Preset)
	assert.Equal(t, "monochrome", GetPreset("monochrome").Preset)
}

func TestTheme_ApplyDefaultsDropsInvalidColours(t *testing.T) {
	theme := Theme{
		Accent:   "#FF00FF",
		OpenFg:   "red; background:url(x)",
		OpenBg:   "navy",
		ClosedFg: "</style><script>",
		ClosedBg: "42",
		Title:    "#12345",
	}
	theme.ApplyDefaults()

	def := DefaultTheme()
	assert.Equal(t, "#FF00FF", theme.Accent)
	assert.Equal(t, def.OpenFg, theme.OpenFg)
	assert.Equal(t, "navy", theme.OpenBg)
	assert.Equal(t, def.ClosedFg, theme.ClosedFg)
	assert.Equal(t, "42", theme.ClosedBg)
	assert.Equal(t, def.Title, theme.Title)
}

func TestValidColor(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#fff", true},
		{"#2563EB", true},
		{"255", true},
		{"green", true},
		{"256", false},
		{"#12", false},
		{"", false},
		{"red;x", false},
		{"expression(alert(1))", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidColor(tt.in))
		})
	}
}

func TestLoad_InvalidThemeColourFallsBack(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme:\n  in_progress_fg: \"yellow;}body{display:none\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme().InProgressFg, cfg.Theme.InProgressFg)
}
