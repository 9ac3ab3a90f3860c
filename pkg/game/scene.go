package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one running scene (one preset of the sunset).
// Each scene owns its own entities, systems and render targets.
type Scene interface {
	// Update advances the scene by one tick.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，用于在窗口尺寸变化时调整场景
//
// 实现此接口的场景在以下时机被调用 Resize()：
//   - 窗口尺寸或全屏状态变化
//   - 切换到该场景之前尺寸已经变化
type Resizable interface {
	// Resize 把场景的相机和渲染目标调整到新的逻辑尺寸，并立即渲染一帧
	Resize(width, height int)
}

// Closer 是一个可选接口，场景被替换时释放其 GPU 资源
type Closer interface {
	Close()
}
