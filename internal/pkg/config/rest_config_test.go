//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigYAML = `port: "8080"
database:
  type: sqlite
  dsn: ":memory:"
logger:
  log_level: info
  log_type: console
uploads:
  dir: uploads
`

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestInitializeRestConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, validConfigYAML)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, ":memory:", cfg.Database.DSN)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.Equal(t, "uploads", cfg.Uploads.Dir)
}

func TestInitializeRestConfig_MissingFile(t *testing.T) {
	_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestInitializeRestConfig_InvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing port",
			yaml: `database:
  type: sqlite
  dsn: ":memory:"
logger:
  log_level: info
  log_type: console
uploads:
  dir: uploads
`,
		},
		{
			name: "unsupported database type",
			yaml: `port: "8080"
database:
  type: mysql
  dsn: "root@/dashboard"
logger:
  log_level: info
  log_type: console
uploads:
  dir: uploads
`,
		},
		{
			name: "missing uploads dir",
			yaml: `port: "8080"
database:
  type: sqlite
  dsn: ":memory:"
logger:
  log_level: info
  log_type: console
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.yaml)

			_, err := InitializeRestConfig(path)
			assert.Error(t, err)
		})
	}
}
