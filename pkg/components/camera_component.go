package components

import "cogentcore.org/core/math32"

// CameraComponent 透视相机参数
//
// 相机朝向 -Z，不带旋转；修改 Aspect 等参数后
// 必须调用 CameraSystem.UpdateProjection 重新计算投影矩阵
type CameraComponent struct {
	// Fov 垂直视场角（度）
	Fov float32

	// Aspect 宽高比（宽 / 高）
	Aspect float32

	// Near 近裁剪面距离
	Near float32

	// Far 远裁剪面距离
	Far float32

	// Position 相机世界坐标
	Position math32.Vector3

	// Projection 投影矩阵（由 Fov/Aspect/Near/Far 计算得出）
	Projection math32.Matrix4
}
