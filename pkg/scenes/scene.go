// Package scenes 包含可由 game.SceneManager 驱动的场景实现
package scenes

import (
	"github.com/decker502/synthwave/pkg/game"
)

// SynthwaveScene 同时支持尺寸变化与资源释放
var (
	_ game.Scene     = (*SynthwaveScene)(nil)
	_ game.Resizable = (*SynthwaveScene)(nil)
	_ game.Closer    = (*SynthwaveScene)(nil)
)
