package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "../../../shared/mm", cfg.SharedMultimediaPath)
	assert.Equal(t, "../mm/sounds", cfg.SoundsPath)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height)
	assert.True(t, cfg.Window.VSync)
	assert.InDelta(t, 9.81, cfg.Physics.GravityScalar, 1e-6)
	assert.Equal(t, 1, cfg.Physics.StepsPerRender)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 44100, cfg.Audio.SampleRate)
	assert.Equal(t, 100*time.Millisecond, cfg.Audio.Buffer)
	assert.Equal(t, 0, cfg.Module.StartBackground)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	content := `
logLevel: debug
sharedMultimediaPath: /opt/aftr/mm
physics:
  stepsPerRender: 0
audio:
  enabled: false
  buffer: 250ms
module:
  startBackground: 7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/opt/aftr/mm", cfg.SharedMultimediaPath)
	assert.Equal(t, 0, cfg.Physics.StepsPerRender)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 250*time.Millisecond, cfg.Audio.Buffer)
	assert.Equal(t, 7, cfg.Module.StartBackground)

	// untouched keys keep their defaults
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, "../mm/sounds", cfg.SoundsPath)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero width", "window:\n  width: 0\n"},
		{"negative steps", "physics:\n  stepsPerRender: -2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultFile)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
