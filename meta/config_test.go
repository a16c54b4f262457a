package meta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		config, err := LoadConfig("")
		require.NoError(t, err)
		require.Equal(t, Config{}, config)
	})

	t.Run("reads yaml fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		raw := "log_level: debug\npretty_logs: true\nseed: 42\nmetrics_dir: out\n"
		require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

		config, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, Config{
			LogLevel:   "debug",
			PrettyLogs: true,
			Seed:       42,
			MetricsDir: "out",
		}, config)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_level: [oops"), 0644))

		_, err := LoadConfig(path)
		require.Error(t, err)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
