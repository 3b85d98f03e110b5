package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeTemp(t, `
X-AI-ENDPOINT="https://api.x.ai/v1/chat/completions"
  X-AI-KEY = "xai-secret"
X-AI-IMAGE-ENDPOINT="https://api.x.ai/v1/images/generations"
this line has no separator and is ignored
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.x.ai/v1/chat/completions", cfg.Endpoint)
	assert.Equal(t, "xai-secret", cfg.Key)
	assert.Equal(t, "https://api.x.ai/v1/images/generations", cfg.ImageEndpoint)
}

func TestLoadFileUnquoted(t *testing.T) {
	// Quotes are optional: only one enclosing layer is stripped.
	path := writeTemp(t, "X-AI-ENDPOINT=https://api.x.ai/v1/chat/completions\nX-AI-KEY=plain\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.x.ai/v1/chat/completions", cfg.Endpoint)
	assert.Equal(t, "plain", cfg.Key)
}

func TestLoadFileMissingKey(t *testing.T) {
	path := writeTemp(t, "X-AI-ENDPOINT=\"https://api.x.ai\"\n")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing "+KeyAPIKey)
}

func TestLoadFileMissingEndpoint(t *testing.T) {
	path := writeTemp(t, "X-AI-KEY=\"xai-secret\"\n")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing "+KeyEndpoint)
}

func TestLoadFileImageEndpointOptional(t *testing.T) {
	path := writeTemp(t, "X-AI-ENDPOINT=\"e\"\nX-AI-KEY=\"k\"\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.ImageEndpoint)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestParseLine(t *testing.T) {
	k, v, ok := parseLine(` X-AI-KEY = "value with = inside" `)
	require.True(t, ok)
	assert.Equal(t, "X-AI-KEY", k)
	assert.Equal(t, "value with = inside", v)

	_, _, ok = parseLine("no separator here")
	assert.False(t, ok)
}

func TestEncodeRoundTrip(t *testing.T) {
	want := Config{
		Endpoint:      "https://api.x.ai/v1/chat/completions",
		Key:           "xai-secret",
		ImageEndpoint: "https://api.x.ai/v1/images/generations",
	}

	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, Encode(want), 0o644))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEncodeRoundTripEmptyImageEndpoint(t *testing.T) {
	want := Config{Endpoint: "e", Key: "k"}

	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, Encode(want), 0o644))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
