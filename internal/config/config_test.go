package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CHRONO_CONFIG_PATH", "")
	t.Setenv("CHRONO_DATA_DIR", "/tmp/chrono-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/chrono-test", cfg.DataDir)
	assert.Equal(t, filepath.Join("/tmp/chrono-test", "chronoassist.db"), cfg.DB.Path)
	assert.Equal(t, "python3", cfg.Scripts.Command)
	assert.Equal(t, 300, cfg.Scripts.TimeoutSecond)
	assert.Contains(t, cfg.Scripts.ScrapePath, "scrape_timesheets.py")
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_dir: /srv/chrono
db:
  path: /srv/chrono/custom.db
scripts:
  command: python
  scrape_path: /opt/scrape.py
  timeout_seconds: 60
`), 0o644))
	t.Setenv("CHRONO_CONFIG_PATH", path)
	t.Setenv("CHRONO_DATA_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/chrono", cfg.DataDir)
	assert.Equal(t, "/srv/chrono/custom.db", cfg.DB.Path)
	assert.Equal(t, "python", cfg.Scripts.Command)
	assert.Equal(t, "/opt/scrape.py", cfg.Scripts.ScrapePath)
	assert.Equal(t, 60, cfg.Scripts.TimeoutSecond)
	assert.Equal(t, filepath.Join("/srv/chrono", "scripts", "submit_timesheets.py"), cfg.Scripts.SubmitPath,
		"unset paths derive from the file's data_dir")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scripts:\n  command: python\n"), 0o644))
	t.Setenv("CHRONO_CONFIG_PATH", path)
	t.Setenv("CHRONO_SCRIPT_COMMAND", "python3.12")
	t.Setenv("CHRONO_SCRIPT_TIMEOUT_SECONDS", "30")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "python3.12", cfg.Scripts.Command)
	assert.Equal(t, 30, cfg.Scripts.TimeoutSecond)
}

func TestLoad_BadTimeout(t *testing.T) {
	t.Setenv("CHRONO_SCRIPT_TIMEOUT_SECONDS", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHRONO_SCRIPT_TIMEOUT_SECONDS")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CHRONO_CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	require.Error(t, err)
}
