package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/synthwave/pkg/config"
	"github.com/decker502/synthwave/pkg/ecs"
	"github.com/decker502/synthwave/pkg/entities"
	"github.com/decker502/synthwave/pkg/game"
	"github.com/decker502/synthwave/pkg/postprocess"
	"github.com/decker502/synthwave/pkg/systems"
)

var (
	_ game.Scene     = (*SynthwaveScene)(nil)
	_ game.Resizable = (*SynthwaveScene)(nil)
	_ game.Closer    = (*SynthwaveScene)(nil)
)

// lineWidth 网格线宽（逻辑像素）
const lineWidth = 1.0

// SynthwaveScene 落日场景：太阳、遮挡条、网格和可选的选择性泛光
//
// 场景持有遮挡条动画状态；预设或配置变化时创建新场景而不是修改现有场景
type SynthwaveScene struct {
	preset        *config.Preset
	entityManager *ecs.EntityManager
	handles       *entities.SceneHandles
	barState      *systems.BarAnimationState

	// 系统
	barSystem    *systems.BarAnimationSystem
	cameraSystem *systems.CameraSystem
	renderSystem *systems.RenderSystem
	bloomSystem  *systems.SelectiveBloomSystem // 预设关闭泛光时为 nil
	resizeSystem *systems.ResizeSystem

	// 渲染管线
	renderer      *postprocess.Renderer
	bloomComposer *postprocess.Composer
	finalComposer *postprocess.Composer
	frame         systems.FrameRenderer // 每帧执行的渲染（泛光合成或直接渲染）

	showDebug bool
}

// NewSynthwaveScene 根据预设构建场景并按给定逻辑尺寸完成首次渲染
//
// 参数:
//   - preset: 场景预设
//   - shaders: 编译好的着色器；预设关闭泛光时只需要 SunGradient（可为 nil）
//   - pixelRatio: 设备像素比
//   - width, height: 初始逻辑尺寸
func NewSynthwaveScene(preset *config.Preset, shaders *postprocess.Shaders, pixelRatio float64, width, height int) (*SynthwaveScene, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid scene size %dx%d", width, height)
	}
	if shaders == nil {
		shaders = &postprocess.Shaders{}
	}

	em := ecs.NewEntityManager()
	handles, err := entities.BuildScene(em, preset, float64(width)/float64(height))
	if err != nil {
		return nil, err
	}

	s := &SynthwaveScene{
		preset:        preset,
		entityManager: em,
		handles:       handles,
		barState:      systems.NewBarAnimationState(preset.Animation.BarHeights, preset.Animation.BarSpacing, preset.Sun.CenterY),
		barSystem:     systems.NewBarAnimationSystem(em, preset.AnimationParams()),
		cameraSystem:  systems.NewCameraSystem(em, handles.Camera),
	}
	s.renderSystem = systems.NewRenderSystem(em, s.cameraSystem, shaders.SunGradient, float32(lineWidth*pixelRatio))
	s.renderer = postprocess.NewRenderer(s.renderSystem, pixelRatio)

	if preset.Bloom.Enabled {
		if err := s.setupBloom(shaders); err != nil {
			return nil, err
		}
		s.frame = s.bloomSystem
		s.resizeSystem = systems.NewResizeSystem(s.cameraSystem, s.frame, s.renderer, s.bloomComposer, s.finalComposer)
	} else {
		s.frame = s.renderer
		s.resizeSystem = systems.NewResizeSystem(s.cameraSystem, s.frame, s.renderer)
	}

	s.Resize(width, height)
	log.Printf("[SynthwaveScene] Created preset %q (bloom=%v) at %dx%d", preset.Name, preset.Bloom.Enabled, width, height)
	return s, nil
}

// setupBloom 创建泛光合成器（离屏）和最终合成器（输出到主表面）
func (s *SynthwaveScene) setupBloom(shaders *postprocess.Shaders) error {
	if shaders.HighPass == nil || shaders.Blur == nil || shaders.Composite == nil {
		return fmt.Errorf("preset %q: bloom shaders not loaded", s.preset.Name)
	}

	s.bloomComposer = postprocess.NewComposer(s.renderer)
	s.bloomComposer.SetRenderToScreen(false)
	s.bloomComposer.AddPass(postprocess.NewRenderPass(s.renderer))
	s.bloomComposer.AddPass(postprocess.NewBloomPass(shaders, s.preset.Bloom))

	s.finalComposer = postprocess.NewComposer(s.renderer)
	s.finalComposer.AddPass(postprocess.NewRenderPass(s.renderer))
	s.finalComposer.AddPass(postprocess.NewBloomCompositePass(shaders, s.bloomComposer))

	s.bloomSystem = systems.NewSelectiveBloomSystem(s.entityManager, s.bloomComposer, s.finalComposer)
	return nil
}

// Update 推进一帧遮挡条动画并处理 F3 调试面板开关
func (s *SynthwaveScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.showDebug = !s.showDebug
	}
	s.barSystem.Update(s.barState)
}

// Draw 渲染一帧并把主表面绘制到屏幕
func (s *SynthwaveScene) Draw(screen *ebiten.Image) {
	s.frame.Render()

	if surface := s.renderer.Surface(); surface != nil {
		screen.DrawImage(surface, nil)
	}

	if s.showDebug {
		s.drawDebug(screen)
	}
}

// Resize 调整相机、渲染器和合成器尺寸，并立即渲染一帧
func (s *SynthwaveScene) Resize(width, height int) {
	s.resizeSystem.Resize(width, height)
}

// Close 释放所有渲染目标
func (s *SynthwaveScene) Close() {
	if s.bloomComposer != nil {
		s.bloomComposer.Dispose()
	}
	if s.finalComposer != nil {
		s.finalComposer.Dispose()
	}
	s.renderer.Dispose()
	log.Printf("[SynthwaveScene] Closed preset %q", s.preset.Name)
}

// Preset 返回场景使用的预设
func (s *SynthwaveScene) Preset() *config.Preset {
	return s.preset
}

// BarState 返回遮挡条动画状态
func (s *SynthwaveScene) BarState() *systems.BarAnimationState {
	return s.barState
}

// Handles 返回场景对象的实体ID
func (s *SynthwaveScene) Handles() *entities.SceneHandles {
	return s.handles
}

// EntityManager 返回场景的实体管理器
func (s *SynthwaveScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// CameraSystem 返回相机系统
func (s *SynthwaveScene) CameraSystem() *systems.CameraSystem {
	return s.cameraSystem
}

// Renderer 返回场景渲染器
func (s *SynthwaveScene) Renderer() *postprocess.Renderer {
	return s.renderer
}
