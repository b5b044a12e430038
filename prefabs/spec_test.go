package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultGameSpec(t *testing.T) {
	spec, err := DefaultGameSpec()
	require.NoError(t, err)

	assert.True(t, spec.Camera.SmoothEnabled)
	assert.InDelta(t, 0.1, spec.Camera.SmoothFactor, 1e-9)
	assert.InDelta(t, 100.0, spec.Player.Health, 1e-9)
	assert.Equal(t, 2, spec.Enemies.MaxAttacking)
	assert.Equal(t, 120, spec.VictoryDelay)
	assert.Contains(t, spec.Enemies.Patterns, "script:zigzag")
	require.Len(t, spec.Levels, 4)

	lvl, ok := spec.Level(4)
	require.True(t, ok)
	assert.Equal(t, "backgrounds/cave.png", lvl.Background)
	require.NotNil(t, lvl.Sky)

	_, ok = spec.Level(5)
	assert.False(t, ok)

	snd, ok := spec.Sound("victory")
	require.True(t, ok)
	assert.Equal(t, "victory_music.wav", snd.File)
}

func TestLoadGameSpecCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera:\n  deadzone: 40\nboss:\n  health: 300\n"), 0o644))

	spec, err := LoadGameSpec(path)
	require.NoError(t, err)

	assert.InDelta(t, 40.0, spec.Camera.Deadzone, 1e-9)
	assert.InDelta(t, 300.0, spec.Boss.Health, 1e-9)
	// Untouched values keep the embedded default.
	assert.InDelta(t, 0.3, spec.Camera.PlayerOffset, 1e-9)
	assert.InDelta(t, 5.0, spec.Player.MoveSpeed, 1e-9)
}

func TestLoadGameSpecCustomPathErrors(t *testing.T) {
	_, err := LoadGameSpec(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("camera: [1, 2"), 0o644))
	_, err = LoadGameSpec(bad)
	require.Error(t, err)
}

func TestOverlayKeepsSpecOnBadData(t *testing.T) {
	spec, err := DefaultGameSpec()
	require.NoError(t, err)
	before := spec.Enemies.Patterns[0]

	assert.False(t, overlay(spec, []byte("enemies: {patterns: [")))
	assert.Equal(t, before, spec.Enemies.Patterns[0])

	assert.True(t, overlay(spec, []byte("victory_delay_frames: 30\n")))
	assert.Equal(t, 30, spec.VictoryDelay)
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: `"#3a553b"`, want: color.NRGBA{R: 0x3a, G: 0x55, B: 0x3b, A: 0xff}},
		{in: `"10203040"`, want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{in: `"#fff"`, wantErr: true},
		{in: `"#zzzzzz"`, wantErr: true},
		{in: `[1, 2]`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tt.in), &c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Color)
		})
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"zigzag", "scripts/zigzag", "prefabs/scripts/zigzag.tengo"} {
		data, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "move :=")
	}
	_, err := LoadScript("nope")
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ChangeSpec, classify("prefabs/game.yaml"))
	assert.Equal(t, ChangeSpec, classify("x.YML"))
	assert.Equal(t, ChangeScript, classify("prefabs/scripts/zigzag.tengo"))
	assert.Equal(t, ChangeKind(0), classify("notes.txt"))
}
