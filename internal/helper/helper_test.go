package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEnv(t *testing.T) {
	t.Setenv("MODELPROBE_HELPER_TEST", "/mnt/models")

	assert.Equal(t, "/mnt/models", ResolveEnv("ENV:MODELPROBE_HELPER_TEST"))
	assert.Equal(t, "", ResolveEnv("ENV:MODELPROBE_HELPER_UNSET"))
	assert.Equal(t, "/srv/models", ResolveEnv("/srv/models"))
}

func TestSetDefaultStringIfEmpty(t *testing.T) {
	assert.Equal(t, "fallback", SetDefaultStringIfEmpty("", "fallback", "field", "test"))
	assert.Equal(t, "value", SetDefaultStringIfEmpty("value", "fallback", "field", "test"))
}
