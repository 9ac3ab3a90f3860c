// Package app 提供应用的核心包装器
//
// 该包把初始化逻辑从 main 包中提取出来：加载预设、编译着色器、
// 创建场景管理器，并实现 ebiten.Game 接口。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/synthwave/pkg/config"
	"github.com/decker502/synthwave/pkg/game"
	"github.com/decker502/synthwave/pkg/postprocess"
	"github.com/decker502/synthwave/pkg/scenes"
	"github.com/decker502/synthwave/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Preset 启动时使用的预设名称，为空则使用预设集合的默认预设
	Preset string
	// ConfigPath 外部预设文件（.yaml / .toml），为空则使用嵌入的预设
	ConfigPath string
	// Watch 监听 ConfigPath 的变化并自动重新加载
	Watch bool
	// Width / Height 初始窗口逻辑尺寸
	Width  int
	Height int
	// Frames 运行指定帧数后退出，0 表示不限制
	Frames int
}

// App 应用核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	presets      *config.PresetSet
	watcher      *config.PresetWatcher // 未启用 --watch 时为 nil
	pixelRatio   float64
	verbose      bool

	outsideWidth, outsideHeight int // 最近一次 Layout 的外部尺寸
	maxFrames, frames           int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
	windowWidth, windowHeight int
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	presets, err := loadPresets(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	shaders, err := postprocess.LoadShaders()
	if err != nil {
		return nil, fmt.Errorf("着色器加载失败: %w", err)
	}

	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		width, height = config.DefaultWindowWidth, config.DefaultWindowHeight
	}

	a := &App{
		presets:       presets,
		pixelRatio:    devicePixelRatio(),
		verbose:       cfg.Verbose,
		maxFrames:     cfg.Frames,
		outsideWidth:  width,
		outsideHeight: height,
		windowWidth:   width,
		windowHeight:  height,
	}
	log.Printf("[App] Device pixel ratio: %.2f", a.pixelRatio)

	a.sceneManager = game.NewSceneManager()
	a.sceneManager.Resize(width, height)
	a.sceneManager.SetSceneFactory(func(name string, w, h int) (game.Scene, error) {
		preset, err := a.presets.Get(name)
		if err != nil {
			return nil, err
		}
		return scenes.NewSynthwaveScene(preset, shaders, a.pixelRatio, w, h)
	})

	presetName := cfg.Preset
	if presetName == "" {
		presetName = presets.Default
	}
	if err := a.sceneManager.LoadPreset(presetName); err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	if cfg.Watch {
		if cfg.ConfigPath == "" {
			return nil, errors.New("--watch requires --config")
		}
		if a.watcher, err = config.WatchPresetFile(cfg.ConfigPath); err != nil {
			return nil, fmt.Errorf("配置监听失败: %w", err)
		}
	}

	return a, nil
}

// loadPresets 加载外部预设文件，未指定时使用嵌入的预设
func loadPresets(path string) (*config.PresetSet, error) {
	if path == "" {
		presets, err := config.LoadEmbeddedPresets()
		if err != nil {
			return nil, fmt.Errorf("预设加载失败: %w", err)
		}
		return presets, nil
	}

	presets, err := config.LoadPresetFile(path)
	if err != nil {
		return nil, fmt.Errorf("预设文件加载失败: %w", err)
	}
	log.Printf("[App] Loaded %d presets from %s", len(presets.Presets), path)
	return presets, nil
}

// devicePixelRatio 读取当前显示器的设备像素比（启动时读取一次）
func devicePixelRatio() float64 {
	if m := ebiten.Monitor(); m != nil {
		if ratio := m.DeviceScaleFactor(); ratio > 0 {
			return ratio
		}
	}
	return 1
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.maxFrames > 0 && a.frames >= a.maxFrames {
		log.Printf("[App] Reached %d frames, exiting", a.maxFrames)
		return ebiten.Termination
	}
	a.frames++

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.windowWidth, a.windowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.windowWidth, a.windowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// B（移动端轻触）在预设之间切换
	if utils.PresetToggleRequested() {
		a.switchPreset(a.presets.Next(a.sceneManager.CurrentPreset()))
	}

	a.pollPresetChanges()

	// 外部尺寸变化时调整场景（会立即渲染一帧）
	// 窗口最小化时外部尺寸为 0，保持原尺寸
	if w, h := a.sceneManager.Size(); a.outsideWidth > 0 && a.outsideHeight > 0 &&
		(w != a.outsideWidth || h != a.outsideHeight) {
		a.sceneManager.Resize(a.outsideWidth, a.outsideHeight)
	}

	a.sceneManager.Update(1.0 / config.TicksPerSecond)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
}

// switchPreset 用指定预设重建场景，失败时保留当前场景
func (a *App) switchPreset(name string) {
	if err := a.sceneManager.LoadPreset(name); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// pollPresetChanges 非阻塞地检查配置文件是否被重新加载
func (a *App) pollPresetChanges() {
	if a.watcher == nil {
		return
	}

	select {
	case presets := <-a.watcher.Changes():
		a.applyPresets(presets)
	default:
	}
}

// applyPresets 替换预设集合并重建当前场景
// 当前预设在新集合中不存在时切换到新集合的默认预设
func (a *App) applyPresets(presets *config.PresetSet) {
	a.presets = presets

	name := a.sceneManager.CurrentPreset()
	if _, ok := presets.Presets[name]; !ok {
		name = presets.Default
	}
	log.Printf("[App] Presets reloaded, rebuilding scene %q", name)
	a.switchPreset(name)
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 屏幕尺寸与主表面一致，这里只负责填充背景
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 记录外部尺寸，返回设备像素尺寸作为屏幕尺寸
// 实际的尺寸调整在下一次 Update 中进行
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.outsideWidth, a.outsideHeight = outsideWidth, outsideHeight
	return postprocess.DeviceSize(outsideWidth, outsideHeight, a.pixelRatio)
}

// Close 停止配置监听
func (a *App) Close() error {
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
