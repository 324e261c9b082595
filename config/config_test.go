package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvKey(t *testing.T) {
	assert.Equal(t, "CODEPACK_FORMAT", GetEnvKey("format"))
	assert.Equal(t, "CODEPACK_MAX_BYTES", GetEnvKey("max_bytes"))
}

func TestSetAndGetConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CODEPACK_FORMAT", "")

	assert.Equal(t, "plain", GetConfigWithDefault("format", "plain"))

	SetConfig("format", "markdown")
	assert.Equal(t, "markdown", GetConfig("format"))
	assert.Equal(t, "markdown", GetConfig("CODEPACK_FORMAT"))

	require.NoError(t, SaveConfig())
	require.NoError(t, LoadConfig())
	assert.Equal(t, "markdown", GetConfig("format"))
}
