package status

import (
	"testing"

	"github.com/mittwald/modelprobe/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTemplates(t *testing.T) {
	r, err := NewRenderer(config.DefaultFoundTemplate, config.DefaultAbsentTemplate)
	require.NoError(t, err)

	cases := []struct {
		name     string
		entries  []string
		expected string
	}{
		{"nil", nil, "Model files found: "},
		{"empty", []string{}, "Model files found: "},
		{"one", []string{"model1.bin"}, "Model files found: model1.bin"},
		{"several", []string{"c", "a", "b"}, "Model files found: c, a, b"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := r.Found("/mnt/models", c.entries)
			require.NoError(t, err)
			assert.Equal(t, c.expected, out)
		})
	}

	out, err := r.Absent("/mnt/models")
	require.NoError(t, err)
	assert.Equal(t, "Model path does not exist.", out)
}

func TestRendererExposesPath(t *testing.T) {
	r, err := NewRenderer("{{ .Path }}: {{ join \",\" .Entries }}", "{{ .Path }} is missing")
	require.NoError(t, err)

	out, err := r.Absent("/srv/models")
	require.NoError(t, err)
	assert.Equal(t, "/srv/models is missing", out)
}

func TestRendererExecutionError(t *testing.T) {
	r, err := NewRenderer(`{{ fail "boom" }}`, config.DefaultAbsentTemplate)
	require.NoError(t, err)

	_, err = r.Found("/mnt/models", nil)
	assert.Error(t, err)
}
