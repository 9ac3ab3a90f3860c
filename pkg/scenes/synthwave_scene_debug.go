package scenes

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/decker502/synthwave/pkg/utils"
)

// drawDebug 绘制调试面板（F3 切换）
// 显示帧率、预设、遮挡条状态
func (s *SynthwaveScene) drawDebug(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, s.debugText(ebiten.ActualFPS(), ebiten.ActualTPS()), 8, 8)
}

// debugText 生成调试面板文本
func (s *SynthwaveScene) debugText(fps, tps float64) string {
	var b strings.Builder

	w, h := s.resizeSystem.Size()
	fmt.Fprintf(&b, "FPS: %.1f  TPS: %.1f\n", fps, tps)
	fmt.Fprintf(&b, "Preset: %s (bloom: %v)\n", s.preset.Name, s.preset.Bloom.Enabled)
	fmt.Fprintf(&b, "Size: %dx%d  ratio %.2f  aspect %.3f\n", w, h, s.renderer.PixelRatio(), s.cameraSystem.Aspect())
	fmt.Fprintf(&b, "Frame: %d  Wraps: %d  Entities: %d\n", s.barState.Frame, s.barState.Wraps, s.entityManager.EntityCount())
	for i, bar := range s.barState.Bars {
		fmt.Fprintf(&b, "Bar %d: y=%7.2f  h=%5.2f\n", i, bar.PositionY, bar.Height)
	}
	b.WriteString(utils.ControlsHint())
	return b.String()
}
