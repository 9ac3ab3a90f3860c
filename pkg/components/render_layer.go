package components

// Layer 渲染层编号（0~31）
type Layer uint

const (
	// LayerEntireScene 默认层，所有对象都在此层
	LayerEntireScene Layer = 0
	// LayerBloom 泛光层：只有此层的对象在泛光通道中保持原色
	LayerBloom Layer = 1
)

// LayerMask 渲染层位掩码
type LayerMask uint32

// MaskOf 返回只包含指定层的掩码
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m = m.Enable(l)
	}
	return m
}

// Enable 返回启用了指定层的新掩码
func (m LayerMask) Enable(l Layer) LayerMask {
	return m | 1<<l
}

// Disable 返回关闭了指定层的新掩码
func (m LayerMask) Disable(l Layer) LayerMask {
	return m &^ (1 << l)
}

// Test 判断两个掩码是否有交集
func (m LayerMask) Test(other LayerMask) bool {
	return m&other != 0
}

// Has 判断掩码是否包含指定层
func (m LayerMask) Has(l Layer) bool {
	return m.Test(MaskOf(l))
}

// RenderLayerComponent 显式记录实体所在的渲染层
// 没有此组件的实体视为只在 LayerEntireScene 中（不参与泛光）
type RenderLayerComponent struct {
	Mask LayerMask
}
