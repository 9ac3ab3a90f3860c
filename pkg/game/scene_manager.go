package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 根据预设名称和当前逻辑尺寸创建场景，避免循环依赖
type SceneFactory func(presetName string, width, height int) (Scene, error)

// SceneManager 控制当前活动的场景
// 任意时刻只有一个场景的 Update 和 Draw 被调用
type SceneManager struct {
	currentScene Scene
	currentName  string
	sceneFactory SceneFactory

	width, height int // 最近一次的逻辑尺寸
}

// NewSceneManager 创建场景管理器
// 初始没有活动场景；使用 SwitchTo 或 LoadPreset 设置
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换到指定场景，旧场景实现 Closer 时会被释放
func (sm *SceneManager) SwitchTo(scene Scene) {
	if old, ok := sm.currentScene.(Closer); ok && sm.currentScene != scene {
		old.Close()
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentPreset 返回当前场景的预设名称
func (sm *SceneManager) CurrentPreset() string {
	return sm.currentName
}

// Size 返回最近一次的逻辑尺寸
func (sm *SceneManager) Size() (int, int) {
	return sm.width, sm.height
}

// LoadPreset 用指定预设创建新场景并切换过去
// 创建失败时保持当前场景不变
func (sm *SceneManager) LoadPreset(presetName string) error {
	log.Printf("[SceneManager] 加载预设: %s", presetName)

	if sm.sceneFactory == nil {
		return fmt.Errorf("load preset %q: scene factory not set", presetName)
	}

	newScene, err := sm.sceneFactory(presetName, sm.width, sm.height)
	if err != nil {
		return fmt.Errorf("load preset %q: %w", presetName, err)
	}

	sm.SwitchTo(newScene)
	sm.currentName = presetName
	log.Printf("[SceneManager] 成功切换到预设: %s", presetName)
	return nil
}

// Resize 记录新尺寸并通知当前场景
func (sm *SceneManager) Resize(width, height int) {
	sm.width, sm.height = width, height
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
