package cmd

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mittwald/modelprobe/pkg/cli"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusResponse(absentMessage string, code int, body string) *cli.StatusResponse {
	rec := httptest.NewRecorder()
	rec.WriteHeader(code)
	_, _ = rec.WriteString(body)
	return cli.NewStatusResponse(absentMessage)(rec.Result(), nil)
}

func TestRenderStatus(t *testing.T) {
	found := renderStatus("http://127.0.0.1:5000", statusResponse(cli.DefaultAbsentMessage, http.StatusOK, "Model files found: model1.bin, model2.bin"))
	assert.Contains(t, found, "model path found")
	assert.Contains(t, found, "model1.bin")
	assert.Contains(t, found, "model2.bin")

	empty := renderStatus("http://127.0.0.1:5000", statusResponse(cli.DefaultAbsentMessage, http.StatusOK, "Model files found: "))
	assert.Contains(t, empty, "<empty>")

	absent := renderStatus("http://127.0.0.1:5000", statusResponse(cli.DefaultAbsentMessage, http.StatusOK, "Model path does not exist."))
	assert.Contains(t, absent, "model path does not exist")

	failed := renderStatus("http://127.0.0.1:5000", &cli.StatusResponse{Error: errors.New("connection refused")})
	assert.Contains(t, failed, "connection refused")
}

func TestRenderStatusCustomFoundTemplate(t *testing.T) {
	resp := statusResponse(cli.DefaultAbsentMessage, http.StatusOK, "2 files: a.bin|b.bin")

	out := renderStatus("http://127.0.0.1:5000", resp)

	assert.True(t, resp.PathExists())
	assert.Contains(t, out, "model path found")
	assert.Contains(t, out, "2 files: a.bin|b.bin")
	assert.NotContains(t, out, "does not exist")
}

func TestConfiguredAbsentMessageFollowsConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "server.hcl"), []byte(`
server {
  modelDirectory = "/srv/models"
  foundTemplate = "{{ len .Entries }} files"
  absentTemplate = "{{ .Path }} is missing"
}
`), 0o644))

	previous := configDir
	configDir = dir
	defer func() { configDir = previous }()

	message, err := configuredAbsentMessage(&cobra.Command{Use: "check"})

	require.NoError(t, err)
	assert.Equal(t, "/srv/models is missing", message)
}

func TestConfiguredAbsentMessageDefaults(t *testing.T) {
	previous := configDir
	configDir = filepath.Join(t.TempDir(), "missing")
	defer func() { configDir = previous }()

	message, err := configuredAbsentMessage(&cobra.Command{Use: "check"})

	require.NoError(t, err)
	assert.Equal(t, cli.DefaultAbsentMessage, message)
}
