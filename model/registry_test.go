package model

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetKnown(t *testing.T) {
	reg := NewRegistry()

	cfg := reg.Get("claude-sonnet-4")
	assert.Equal(t, 200000, cfg.MaxInputTokens)
	assert.Equal(t, 64000, cfg.MaxOutputTokens)
}

func TestRegistry_GetUnknownFallsBack(t *testing.T) {
	reg := NewRegistry()

	cfg := reg.Get("no-such-model")
	assert.Equal(t, reg.Get(DefaultModelID), cfg)
	assert.Equal(t, 100000, cfg.MaxInputTokens)
}

func TestRegistry_Set(t *testing.T) {
	reg := NewRegistry()
	reg.Set("custom", Config{MaxInputTokens: 16000, MaxOutputTokens: 4000})

	cfg := reg.Get("custom")
	assert.Equal(t, 16000, cfg.MaxInputTokens)
}

func TestRegistry_ModelsSorted(t *testing.T) {
	reg := NewRegistry()
	ids := reg.Models()

	require.NotEmpty(t, ids)
	assert.Contains(t, ids, DefaultModelID)
	for i := 1; i < len(ids); i++ {
		assert.True(t, ids[i-1] < ids[i], "ids not sorted: %q before %q", ids[i-1], ids[i])
	}
}

func TestRegistry_LoadFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.toml")
	data := `
[models."chat-large"]
max_input_tokens = 16000
max_output_tokens = 4000

[models."claude-sonnet-4"]
max_input_tokens = 150000
max_output_tokens = 32000
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	reg := NewRegistry()
	require.NoError(t, reg.LoadFile(path))

	assert.Equal(t, 16000, reg.Get("chat-large").MaxInputTokens)
	// File entries override built-ins.
	assert.Equal(t, 150000, reg.Get("claude-sonnet-4").MaxInputTokens)
	// Built-ins not named in the file survive.
	assert.Equal(t, 128000, reg.Get("gpt-4o").MaxInputTokens)
}

func TestRegistry_LoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.yaml")
	data := `
models:
  chat-large:
    max_input_tokens: 16000
    max_output_tokens: 4000
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	reg := NewRegistry()
	require.NoError(t, reg.LoadFile(path))
	assert.Equal(t, 16000, reg.Get("chat-large").MaxInputTokens)
}

func TestRegistry_LoadFileUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.ini")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	reg := NewRegistry()
	err := reg.LoadFile(path)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRegistry_LoadFileMissing(t *testing.T) {
	reg := NewRegistry()
	err := reg.LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestWatch_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "models.toml")
	write := func(maxInput int) {
		data := `
[models."chat-large"]
max_input_tokens = ` + strconv.Itoa(maxInput) + `
max_output_tokens = 4000
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	}
	write(16000)

	reg := NewRegistry()
	w, err := Watch(reg, path, nil)
	require.NoError(t, err)
	defer w.Close()

	require.Equal(t, 16000, reg.Get("chat-large").MaxInputTokens)

	write(32000)
	require.Eventually(t, func() bool {
		return reg.Get("chat-large").MaxInputTokens == 32000
	}, 3*time.Second, 10*time.Millisecond, "registry did not pick up config change")
}

func TestWatch_MissingFile(t *testing.T) {
	reg := NewRegistry()
	_, err := Watch(reg, filepath.Join(t.TempDir(), "missing.toml"), nil)
	require.Error(t, err)
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "max_input_tokens"))
}
