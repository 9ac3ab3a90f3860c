package config

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidPreset 预设参数不合法
var ErrInvalidPreset = errors.New("invalid preset")

// 内置预设名称
const (
	// PresetBloom 启用泛光的参考预设
	PresetBloom = "bloom"
	// PresetClassic 不启用泛光的退化预设（直接渲染）
	PresetClassic = "classic"
)

// BloomConfig 泛光后处理参数
type BloomConfig struct {
	// Enabled 是否启用选择性泛光合成；关闭时每帧直接渲染整个场景
	Enabled bool `yaml:"enabled" toml:"enabled"`

	// Strength 泛光强度
	Strength float64 `yaml:"strength" toml:"strength"`

	// Threshold 亮度阈值（低于阈值的像素不参与泛光）
	Threshold float64 `yaml:"threshold" toml:"threshold"`

	// Radius 泛光半径（0~1），在各级 mip 的权重之间插值
	Radius float64 `yaml:"radius" toml:"radius"`

	// SmoothWidth 阈值过渡宽度
	SmoothWidth float64 `yaml:"smoothWidth" toml:"smoothWidth"`
}

// AnimationConfig 条纹遮挡条动画参数
type AnimationConfig struct {
	// Velocity 每帧下移距离
	Velocity float64 `yaml:"velocity" toml:"velocity"`

	// HeightDelta 每帧厚度增量
	HeightDelta float64 `yaml:"heightDelta" toml:"heightDelta"`

	// InitialHeight 遮挡条回到顶部时重置的厚度
	InitialHeight float64 `yaml:"initialHeight" toml:"initialHeight"`

	// BarHeights 场景构建时各遮挡条的初始厚度（长度必须为 BarCount）
	BarHeights []float64 `yaml:"barHeights" toml:"barHeights"`

	// BarSpacing 场景构建时相邻遮挡条的垂直间距
	BarSpacing float64 `yaml:"barSpacing" toml:"barSpacing"`
}

// SunConfig 太阳圆盘参数
type SunConfig struct {
	Radius   float64 `yaml:"radius" toml:"radius"`
	CenterY  float64 `yaml:"centerY" toml:"centerY"`
	Z        float64 `yaml:"z" toml:"z"`
	Segments int     `yaml:"segments" toml:"segments"`

	// ColorBottom / ColorTop 渐变颜色（0xRRGGBB）
	ColorBottom uint32 `yaml:"colorBottom" toml:"colorBottom"`
	ColorTop    uint32 `yaml:"colorTop" toml:"colorTop"`
}

// Preset 一组完整的场景参数
type Preset struct {
	// Name 预设名称（由所在 PresetSet 的键填充）
	Name string `yaml:"-" toml:"-"`

	// Description 预设说明（显示在调试面板）
	Description string `yaml:"description" toml:"description"`

	Bloom     BloomConfig     `yaml:"bloom" toml:"bloom"`
	Animation AnimationConfig `yaml:"animation" toml:"animation"`
	Sun       SunConfig       `yaml:"sun" toml:"sun"`
}

// AnimationParams 条纹动画每帧更新所需的常量
// 场景构建时从预设复制一份，之后不再修改
type AnimationParams struct {
	Velocity      float64
	HeightDelta   float64
	InitialHeight float64
	SunCenterY    float64
	SunRadius     float64
}

// AnimationParams 返回该预设对应的动画常量
func (p *Preset) AnimationParams() AnimationParams {
	return AnimationParams{
		Velocity:      p.Animation.Velocity,
		HeightDelta:   p.Animation.HeightDelta,
		InitialHeight: p.Animation.InitialHeight,
		SunCenterY:    p.Sun.CenterY,
		SunRadius:     p.Sun.Radius,
	}
}

// Clone 返回预设的深拷贝
func (p *Preset) Clone() *Preset {
	c := *p
	c.Animation.BarHeights = append([]float64(nil), p.Animation.BarHeights...)
	return &c
}

// PresetSet 预设集合（对应 data/presets.yaml 的根节点）
type PresetSet struct {
	// Default 未指定预设时使用的预设名称
	Default string `yaml:"default" toml:"default"`

	Presets map[string]*Preset `yaml:"presets" toml:"presets"`
}

// Get 按名称查找预设，名称为空时返回默认预设
func (s *PresetSet) Get(name string) (*Preset, error) {
	if name == "" {
		name = s.Default
	}
	p, ok := s.Presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (available: %v)", name, s.Names())
	}
	return p, nil
}

// Names 返回按字母排序的预设名称列表
func (s *PresetSet) Names() []string {
	names := make([]string, 0, len(s.Presets))
	for name := range s.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Next 返回排序后位于 name 之后的预设名称（循环）
// 用于运行时按键切换预设
func (s *PresetSet) Next(name string) string {
	names := s.Names()
	if len(names) == 0 {
		return name
	}
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// DefaultPreset 返回内置的泛光参考预设
// 与 data/presets.yaml 中的 bloom 预设一致，作为缺省字段的默认值来源
func DefaultPreset() *Preset {
	return &Preset{
		Name:        PresetBloom,
		Description: "selective bloom, slow stripe growth",
		Bloom: BloomConfig{
			Enabled:     true,
			Strength:    3,
			Threshold:   0,
			Radius:      1,
			SmoothWidth: 0.01,
		},
		Animation: AnimationConfig{
			Velocity:      0.2,
			HeightDelta:   0.02,
			InitialHeight: 0,
			BarHeights:    []float64{0, 1.2, 2.4, 3.6, 4.8},
			BarSpacing:    SunRadius/BarCount + 1,
		},
		Sun: SunConfig{
			Radius:      SunRadius,
			CenterY:     SunCenterY,
			Z:           SunZ,
			Segments:    SunSegments,
			ColorBottom: SunColorBottom,
			ColorTop:    SunColorTop,
		},
	}
}

// ClassicPreset 返回内置的无泛光预设
func ClassicPreset() *Preset {
	p := DefaultPreset()
	p.Name = PresetClassic
	p.Description = "plain render, faster stripe growth"
	p.Bloom.Enabled = false
	p.Animation.HeightDelta = 0.12
	p.Animation.BarHeights = []float64{0, 0, 0, 0, 0}
	p.Animation.BarSpacing = SunRadius / BarCount
	return p
}

// BuiltinPresets 返回内置预设集合（嵌入资源不可用时使用）
func BuiltinPresets() *PresetSet {
	return &PresetSet{
		Default: PresetBloom,
		Presets: map[string]*Preset{
			PresetBloom:   DefaultPreset(),
			PresetClassic: ClassicPreset(),
		},
	}
}

// applyPresetDefaults 为缺失的可选字段设置默认值
// 只处理零值不合法的字段（零值合法的字段如 Threshold、InitialHeight 保持原样）
func applyPresetDefaults(p *Preset) {
	def := DefaultPreset()

	if p.Sun.Radius == 0 {
		p.Sun.Radius = def.Sun.Radius
	}
	if p.Sun.Segments == 0 {
		p.Sun.Segments = def.Sun.Segments
	}
	if p.Sun.Z == 0 {
		p.Sun.Z = def.Sun.Z
	}
	if p.Sun.CenterY == 0 {
		p.Sun.CenterY = def.Sun.CenterY
	}
	if p.Sun.ColorBottom == 0 && p.Sun.ColorTop == 0 {
		p.Sun.ColorBottom = def.Sun.ColorBottom
		p.Sun.ColorTop = def.Sun.ColorTop
	}
	if p.Bloom.SmoothWidth == 0 {
		p.Bloom.SmoothWidth = def.Bloom.SmoothWidth
	}
	if len(p.Animation.BarHeights) == 0 {
		p.Animation.BarHeights = make([]float64, BarCount)
	}
}

// Validate 验证预设参数的合法性
func (p *Preset) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w %q: %s", ErrInvalidPreset, p.Name, fmt.Sprintf(format, args...))
	}

	a := p.Animation
	if a.Velocity <= 0 {
		return invalid("animation.velocity must be > 0, got %v", a.Velocity)
	}
	if a.HeightDelta < 0 {
		return invalid("animation.heightDelta must be >= 0, got %v", a.HeightDelta)
	}
	if a.InitialHeight < 0 {
		return invalid("animation.initialHeight must be >= 0, got %v", a.InitialHeight)
	}
	if len(a.BarHeights) != BarCount {
		return invalid("animation.barHeights must have %d entries, got %d", BarCount, len(a.BarHeights))
	}
	for i, h := range a.BarHeights {
		if h < 0 {
			return invalid("animation.barHeights[%d] must be >= 0, got %v", i, h)
		}
	}
	if a.BarSpacing < 0 {
		return invalid("animation.barSpacing must be >= 0, got %v", a.BarSpacing)
	}

	if p.Sun.Radius <= 0 {
		return invalid("sun.radius must be > 0, got %v", p.Sun.Radius)
	}
	if p.Sun.Segments < 3 {
		return invalid("sun.segments must be >= 3, got %d", p.Sun.Segments)
	}
	if p.Sun.ColorBottom > 0xFFFFFF || p.Sun.ColorTop > 0xFFFFFF {
		return invalid("sun colors must be 0xRRGGBB")
	}

	if p.Bloom.Enabled {
		if p.Bloom.Strength < 0 {
			return invalid("bloom.strength must be >= 0, got %v", p.Bloom.Strength)
		}
		if p.Bloom.Radius < 0 || p.Bloom.Radius > 1 {
			return invalid("bloom.radius must be in [0, 1], got %v", p.Bloom.Radius)
		}
		if p.Bloom.Threshold < 0 {
			return invalid("bloom.threshold must be >= 0, got %v", p.Bloom.Threshold)
		}
	}

	return nil
}

// Validate 验证整个预设集合
func (s *PresetSet) Validate() error {
	if len(s.Presets) == 0 {
		return fmt.Errorf("%w: at least one preset is required", ErrInvalidPreset)
	}
	for _, name := range s.Names() {
		if err := s.Presets[name].Validate(); err != nil {
			return err
		}
	}
	if _, ok := s.Presets[s.Default]; !ok {
		return fmt.Errorf("%w: default preset %q not found", ErrInvalidPreset, s.Default)
	}
	return nil
}
