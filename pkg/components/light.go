package components

import "image/color"

// AmbientLightComponent 环境光
// 当前场景的材质都不受光照影响，环境光仅作为场景图的一部分保留
type AmbientLightComponent struct {
	Color color.RGBA
}
