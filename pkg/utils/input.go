// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// IsAnyKeyJustPressed 检查给定按键中是否有任意一个刚被按下
func IsAnyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// PresetToggleRequested 检查是否请求切换预设
// 桌面端按 B 键；移动端没有键盘，轻触屏幕即切换
func PresetToggleRequested() bool {
	if IsAnyKeyJustPressed(ebiten.KeyB) {
		return true
	}
	if !IsMobile() {
		return false
	}
	tapped, _, _ := IsJustTouchedOrClicked()
	return tapped
}
