package components

import "image/color"

// MaterialKind 材质着色方式
type MaterialKind int

const (
	// MaterialBasic 不受光照影响的纯色材质
	MaterialBasic MaterialKind = iota
	// MaterialLineBasic 纯色线材质
	MaterialLineBasic
	// MaterialGradient 双色渐变着色器材质：mix(Color, Color2, 0.75*v + 0.25*u)
	MaterialGradient
)

// Material 描述对象的着色方式
//
// 材质以指针形式共享：泛光合成时会临时把非泛光对象的材质
// 替换为同一个黑色材质，绘制结束后再还原为原指针
type Material struct {
	// Name 材质名称（用于日志和调试面板）
	Name string

	Kind MaterialKind

	// Color 主颜色；渐变材质的起始颜色
	Color color.RGBA

	// Color2 渐变材质的结束颜色，其他材质忽略
	Color2 color.RGBA

	// DoubleSide 是否双面可见
	DoubleSide bool
}

// NewBasicMaterial 创建纯色材质
func NewBasicMaterial(name string, c color.RGBA) *Material {
	return &Material{Name: name, Kind: MaterialBasic, Color: c}
}

// NewLineMaterial 创建纯色线材质
func NewLineMaterial(name string, c color.RGBA) *Material {
	return &Material{Name: name, Kind: MaterialLineBasic, Color: c}
}

// NewGradientMaterial 创建双色渐变材质
func NewGradientMaterial(name string, from, to color.RGBA) *Material {
	return &Material{Name: name, Kind: MaterialGradient, Color: from, Color2: to}
}

// ColorFromHex 将 0xRRGGBB 形式的颜色转换为不透明 RGBA
func ColorFromHex(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xff,
	}
}

// MaterialComponent 存储实体当前使用的材质
type MaterialComponent struct {
	Material *Material
}
