package systems

import "log"

// Resizable 可以调整尺寸的渲染目标（渲染器、后处理合成器）
type Resizable interface {
	SetSize(width, height int)
}

// ResizeSystem 处理窗口尺寸变化
//
// 调整顺序：相机宽高比与投影矩阵 → 所有渲染目标 → 立即渲染一帧
type ResizeSystem struct {
	camera  *CameraSystem
	render  FrameRenderer
	targets []Resizable

	width, height int // 最近一次调整后的逻辑尺寸
}

// NewResizeSystem 创建尺寸调整系统
// render 是尺寸调整后立即执行的一帧渲染（泛光合成或直接渲染）
func NewResizeSystem(camera *CameraSystem, render FrameRenderer, targets ...Resizable) *ResizeSystem {
	return &ResizeSystem{
		camera:  camera,
		render:  render,
		targets: targets,
	}
}

// Resize 把相机和所有渲染目标调整到新尺寸，然后同步渲染一帧
// 非正尺寸（如窗口最小化）被忽略
func (s *ResizeSystem) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		log.Printf("[ResizeSystem] Ignoring resize to %dx%d", width, height)
		return
	}

	s.camera.SetAspect(float64(width) / float64(height))
	for _, t := range s.targets {
		t.SetSize(width, height)
	}
	s.width, s.height = width, height

	log.Printf("[ResizeSystem] Resized to %dx%d", width, height)
	s.render.Render()
}

// Size 返回最近一次调整后的尺寸（尚未调整时为 0, 0）
func (s *ResizeSystem) Size() (int, int) {
	return s.width, s.height
}
