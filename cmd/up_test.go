package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUpTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "up"}
	cmd.Flags().StringVarP(&modelDirectory, "model-dir", "m", "/mnt/models", "")
	cmd.Flags().StringVarP(&bindHost, "host", "H", "0.0.0.0", "")
	cmd.Flags().IntVarP(&bindPort, "port", "p", 5000, "")
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestLoadIgnitionConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "server.hcl"), []byte(`
server {
  modelDirectory = "/from/file"
  bindHost = "127.0.0.1"
  bindPort = 6000
}
`), 0o644))
	t.Setenv("MODELPROBE_BIND_PORT", "7000")

	previous := configDir
	configDir = dir
	defer func() { configDir = previous }()

	cfg, err := loadIgnitionConfig(newUpTestCommand(t, "--model-dir", "/from/flag"))
	require.NoError(t, err)

	assert.Equal(t, "/from/flag", cfg.Server.ModelDirectory)
	assert.Equal(t, "127.0.0.1", cfg.Server.BindHost)
	assert.Equal(t, 7000, cfg.Server.BindPort)
}

func TestLoadIgnitionConfigDefaults(t *testing.T) {
	previous := configDir
	configDir = filepath.Join(t.TempDir(), "missing")
	defer func() { configDir = previous }()

	cfg, err := loadIgnitionConfig(newUpTestCommand(t))
	require.NoError(t, err)

	assert.Equal(t, "/mnt/models", cfg.Server.ModelDirectory)
	assert.Equal(t, "0.0.0.0:5000", cfg.Server.ListenAddress())
}

func TestLoadIgnitionConfigRejectsInvalidPort(t *testing.T) {
	previous := configDir
	configDir = filepath.Join(t.TempDir(), "missing")
	defer func() { configDir = previous }()

	_, err := loadIgnitionConfig(newUpTestCommand(t, "--port", "70000"))
	assert.Error(t, err)
}
