package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/synthwave/pkg/embedded"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlPresets = `
default = "neon"

[presets.neon]
description = "toml preset"

[presets.neon.bloom]
enabled = true
strength = 2.0
threshold = 0.0
radius = 0.5

[presets.neon.animation]
velocity = 0.25
heightDelta = 0.05
initialHeight = 0.0
barHeights = [0.0, 1.0, 2.0, 3.0, 4.0]
barSpacing = 12.0

[presets.neon.sun]
radius = 50.0
centerY = 55.0
z = -100.1
segments = 64
colorBottom = 0xFF00AA
colorTop = 0xFFFF00
`

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"presets.yaml", FormatYAML, false},
		{"dir/Presets.YML", FormatYAML, false},
		{"presets.toml", FormatTOML, false},
		{"presets.json", "", true},
		{"presets", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePresetsYAMLRepositoryFile(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "data", "presets.yaml"))
	require.NoError(t, err)

	set, err := ParsePresets(data, FormatYAML)
	require.NoError(t, err)

	// 仓库中的 yaml 必须与内置预设一致
	builtin := BuiltinPresets()
	assert.Equal(t, builtin.Default, set.Default)
	for _, name := range builtin.Names() {
		got, err := set.Get(name)
		require.NoError(t, err)
		want := builtin.Presets[name]
		assert.Equal(t, want.Bloom, got.Bloom, name)
		assert.Equal(t, want.Sun, got.Sun, name)
		assert.Equal(t, want.Animation.BarHeights, got.Animation.BarHeights, name)
		assert.InDelta(t, want.Animation.BarSpacing, got.Animation.BarSpacing, 1e-9, name)
		assert.InDelta(t, want.Animation.HeightDelta, got.Animation.HeightDelta, 1e-9, name)
		assert.InDelta(t, want.Animation.Velocity, got.Animation.Velocity, 1e-9, name)
	}
}

func TestParsePresetsTOML(t *testing.T) {
	set, err := ParsePresets([]byte(tomlPresets), FormatTOML)
	require.NoError(t, err)

	p, err := set.Get("")
	require.NoError(t, err)
	assert.Equal(t, "neon", p.Name)
	assert.Equal(t, uint32(0xFF00AA), p.Sun.ColorBottom)
	assert.Equal(t, 64, p.Sun.Segments)
	assert.InDelta(t, 0.01, p.Bloom.SmoothWidth, 1e-9, "smoothWidth should fall back to default")

	params := p.AnimationParams()
	assert.InDelta(t, 55.0, params.SunCenterY, 1e-9)
	assert.InDelta(t, 50.0, params.SunRadius, 1e-9)
}

func TestParsePresetsDefaults(t *testing.T) {
	data := []byte(`
presets:
  minimal:
    animation:
      velocity: 0.3
`)
	set, err := ParsePresets(data, FormatYAML)
	require.NoError(t, err)

	// 只有一个预设时 default 自动指向它
	assert.Equal(t, "minimal", set.Default)

	p := set.Presets["minimal"]
	assert.Len(t, p.Animation.BarHeights, BarCount)
	assert.Equal(t, SunRadius, p.Sun.Radius)
	assert.Equal(t, SunSegments, p.Sun.Segments)
	assert.Equal(t, uint32(SunColorTop), p.Sun.ColorTop)
}

func TestParsePresetsErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
	}{
		{"yaml 语法错误", "presets: [", FormatYAML},
		{"空预设", "default: a\npresets:\n  a:\n", FormatYAML},
		{"参数非法", "presets:\n  a:\n    animation:\n      velocity: -1\n", FormatYAML},
		{"toml 未知字段", "default = \"a\"\n[presets.a]\nbogus = 1\n", FormatTOML},
		{"未知格式", "{}", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePresets([]byte(tt.data), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestLoadPresetFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlPresets), 0o644))

	set, err := LoadPresetFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"neon"}, set.Names())

	_, err = LoadPresetFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEmbeddedPresets(t *testing.T) {
	embedded.Init(os.DirFS(filepath.Join("..", "..")))

	set, err := LoadEmbeddedPresets()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{PresetBloom, PresetClassic}, set.Names())
}
