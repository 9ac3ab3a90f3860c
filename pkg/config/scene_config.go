package config

// 场景配置常量
// 本文件定义了窗口、相机、太阳和霓虹网格的固定参数（世界坐标单位）

// Window Configuration (窗口配置)
const (
	// DefaultWindowWidth 默认窗口宽度（逻辑像素）
	DefaultWindowWidth = 1280

	// DefaultWindowHeight 默认窗口高度（逻辑像素）
	DefaultWindowHeight = 720

	// WindowTitle 窗口标题
	WindowTitle = "Synthwave Sunset"

	// TicksPerSecond 动画更新频率，每个 tick 推进一帧条纹动画
	TicksPerSecond = 60
)

// Camera Configuration (相机配置)
const (
	CameraFov  = 60.0
	CameraNear = 1.0
	CameraFar  = 250.0

	CameraX = 0.0
	CameraY = 10.0
	CameraZ = 100.0
)

// Sun Configuration (太阳配置)
const (
	// SunRadius 太阳圆盘半径
	SunRadius = 60.0

	// SunCenterY 太阳圆心高度；圆盘底部正好落在地平线 y=0 上
	SunCenterY = 60.0

	// SunZ 太阳深度，比遮挡条略远，保证遮挡条绘制在太阳之前
	SunZ = -100.1

	// SunSegments 圆盘分段数
	SunSegments = 100

	// SunColorBottom 渐变起始颜色（粉色）
	SunColorBottom = 0xFF00AA

	// SunColorTop 渐变结束颜色（黄色）
	SunColorTop = 0xFFFF00
)

// Bar Occluder Configuration (条纹遮挡条配置)
const (
	// BarCount 遮挡条数量
	BarCount = 5

	// BarWidth 遮挡条宽度，覆盖整个太阳直径
	BarWidth = 120.0

	// BarZ 遮挡条深度
	BarZ = -100.0

	// BarColor 遮挡条颜色（纯黑）
	BarColor = 0x000000
)

// Neon Grid Configuration (霓虹网格配置)
const (
	// GridColor 网格线颜色（霓虹粉）
	GridColor = 0xFF00AA

	// GridSpacing 网格线间距
	GridSpacing = 10.0

	// GridHalfWidth 横向网格线的半长度（x ∈ [-500, 500]）
	GridHalfWidth = 500.0

	// GridHalfDepth 纵向网格线的半长度（z ∈ [-100, 100]）
	GridHalfDepth = 100.0

	// GridY 网格平面高度
	GridY = 0.0
)

// Lighting Configuration (光照配置)
const (
	// AmbientLightColor 环境光颜色
	AmbientLightColor = 0x555555
)
