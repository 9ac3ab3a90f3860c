package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinPresetsAreValid(t *testing.T) {
	set := BuiltinPresets()
	require.NoError(t, set.Validate())

	bloom, err := set.Get("")
	require.NoError(t, err)
	assert.Equal(t, PresetBloom, bloom.Name)
	assert.True(t, bloom.Bloom.Enabled)
	assert.InDelta(t, 13.0, bloom.Animation.BarSpacing, 1e-9)

	classic, err := set.Get(PresetClassic)
	require.NoError(t, err)
	assert.False(t, classic.Bloom.Enabled)
	assert.InDelta(t, 0.12, classic.Animation.HeightDelta, 1e-9)
	assert.InDelta(t, 12.0, classic.Animation.BarSpacing, 1e-9)
}

func TestAnimationParamsCopiesSunGeometry(t *testing.T) {
	p := DefaultPreset()
	params := p.AnimationParams()

	assert.Equal(t, p.Animation.Velocity, params.Velocity)
	assert.Equal(t, p.Animation.HeightDelta, params.HeightDelta)
	assert.Equal(t, p.Animation.InitialHeight, params.InitialHeight)
	assert.Equal(t, SunCenterY, params.SunCenterY)
	assert.Equal(t, SunRadius, params.SunRadius)
}

func TestPresetValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Preset)
	}{
		{"速度为零", func(p *Preset) { p.Animation.Velocity = 0 }},
		{"厚度增量为负", func(p *Preset) { p.Animation.HeightDelta = -0.1 }},
		{"重置厚度为负", func(p *Preset) { p.Animation.InitialHeight = -1 }},
		{"遮挡条数量错误", func(p *Preset) { p.Animation.BarHeights = []float64{0, 1} }},
		{"遮挡条初始厚度为负", func(p *Preset) { p.Animation.BarHeights[3] = -2 }},
		{"间距为负", func(p *Preset) { p.Animation.BarSpacing = -1 }},
		{"太阳半径为零", func(p *Preset) { p.Sun.Radius = 0 }},
		{"分段数过少", func(p *Preset) { p.Sun.Segments = 2 }},
		{"颜色越界", func(p *Preset) { p.Sun.ColorTop = 0x1FFFFFF }},
		{"泛光强度为负", func(p *Preset) { p.Bloom.Strength = -1 }},
		{"泛光半径越界", func(p *Preset) { p.Bloom.Radius = 1.5 }},
		{"泛光阈值为负", func(p *Preset) { p.Bloom.Threshold = -0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPreset()
			tt.mutate(p)
			err := p.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPreset), "error should wrap ErrInvalidPreset: %v", err)
		})
	}
}

func TestPresetValidateIgnoresBloomFieldsWhenDisabled(t *testing.T) {
	p := ClassicPreset()
	p.Bloom.Radius = 7
	assert.NoError(t, p.Validate())
}

func TestPresetSetValidateMissingDefault(t *testing.T) {
	set := BuiltinPresets()
	set.Default = "vaporwave"
	err := set.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPreset)

	empty := &PresetSet{}
	assert.ErrorIs(t, empty.Validate(), ErrInvalidPreset)
}

func TestPresetSetNamesAndNext(t *testing.T) {
	set := BuiltinPresets()
	assert.Equal(t, []string{PresetBloom, PresetClassic}, set.Names())
	assert.Equal(t, PresetClassic, set.Next(PresetBloom))
	assert.Equal(t, PresetBloom, set.Next(PresetClassic))
	assert.Equal(t, PresetBloom, set.Next("unknown"))

	_, err := set.Get("unknown")
	assert.Error(t, err)
}

func TestPresetClone(t *testing.T) {
	p := DefaultPreset()
	c := p.Clone()
	c.Animation.BarHeights[0] = 99
	c.Bloom.Strength = 0

	assert.Equal(t, 0.0, p.Animation.BarHeights[0])
	assert.Equal(t, 3.0, p.Bloom.Strength)
}
