package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidConfig(t *testing.T) {
	yaml := `
meta:
  name: "demo"
  description: "A demo animation"
  vars:
    user: "octocat"
settings:
  width: 640
  height: 360
  loop: true
steps:
  - lines: ["total 0"]
    prompt:
      user: "{{.user}}"
      host: "box"
      path: "~/src"
    command: "ls -la"
    timing:
      start: 1
      per_char: 0.2
      hold: 2
  - prompt:
      user: "{{.user}}"
      host: "box"
    command: "make"
    timing:
      start: 6
      per_char: 0.1
      hold: 1.5
    position:
      prompt_x: 14
`
	cfg, err := Load(strings.NewReader(yaml))
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Meta.Name)
	assert.Equal(t, "octocat", cfg.Meta.Vars["user"])
	assert.Equal(t, 640, cfg.Settings.Width)
	assert.True(t, cfg.Settings.Loop)

	require.Len(t, cfg.Steps, 2)
	assert.Equal(t, []string{"total 0"}, cfg.Steps[0].Lines)
	assert.Equal(t, "ls -la", cfg.Steps[0].Command)
	assert.Equal(t, 0.2, cfg.Steps[0].Timing.PerChar)
	require.NotNil(t, cfg.Steps[1].Position)
	require.NotNil(t, cfg.Steps[1].Position.PromptX)
	assert.Equal(t, 14.0, *cfg.Steps[1].Position.PromptX)
}

func TestLoad_AppliesSettingsDefaults(t *testing.T) {
	yaml := `
meta:
  name: "defaults"
steps:
  - prompt:
      user: "dev"
      host: "box"
`
	cfg, err := Load(strings.NewReader(yaml))
	require.NoError(t, err)

	assert.Equal(t, DefaultWidth, cfg.Settings.Width)
	assert.Equal(t, DefaultHeight, cfg.Settings.Height)
	assert.Equal(t, DefaultFontFamily, cfg.Settings.FontFamily)
	assert.Equal(t, DefaultCharWidth, cfg.Settings.CharWidth)
	assert.True(t, cfg.Settings.EmbedStyles())
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	yaml := `
meta:
  name: "strict"
steps:
  - prompt:
      user: "dev"
      host: "box"
    typo_field: true
`
	_, err := Load(strings.NewReader(yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "typo_field")
}

func TestLoad_EmptyFile(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty config file")
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	yaml := `
meta:
  name: "bad"
steps:
  - prompt:
      user: "dev"
      host: "box"
    timing:
      start: -2
`
	_, err := Load(strings.NewReader(yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), "start must be non-negative")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	yaml := `
meta:
  name: "from-file"
steps:
  - prompt:
      user: "dev"
      host: "box"
    command: "pwd"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Meta.Name)
	assert.Equal(t, "pwd", cfg.Steps[0].Command)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open config file")
}
