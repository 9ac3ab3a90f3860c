package components

import "cogentcore.org/core/math32"

// TransformComponent 存储可渲染对象的空间变换
//
// 变换顺序与常见场景图一致：先缩放，再按 X→Y→Z 欧拉角旋转
// （即向量依次绕 Z、Y、X 轴旋转），最后平移
type TransformComponent struct {
	// Position 世界坐标位置
	Position math32.Vector3

	// Scale 各轴缩放因子（1.0 = 原始大小）
	// 条纹遮挡条的 Scale.Y 即其当前厚度
	Scale math32.Vector3

	// Rotation 欧拉角（弧度）
	Rotation math32.Vector3
}

// NewTransform 创建位于指定位置、单位缩放、无旋转的变换
func NewTransform(x, y, z float32) *TransformComponent {
	return &TransformComponent{
		Position: math32.Vec3(x, y, z),
		Scale:    math32.Vec3(1, 1, 1),
	}
}
