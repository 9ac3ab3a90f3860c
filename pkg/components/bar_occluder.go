package components

// BarOccluderComponent 标记太阳上的黑色条纹遮挡条
//
// 动画状态（厚度、垂直位置）不存放在组件中，
// 而是由场景持有的 systems.BarAnimationState 按 Index 管理
type BarOccluderComponent struct {
	// Index 遮挡条序号（0 = 最上方）
	Index int
}
