package postprocess

import "github.com/hajimehoshi/ebiten/v2"

// RenderPass 把场景绘制到当前读缓冲
type RenderPass struct {
	renderer *Renderer
}

// NewRenderPass 创建场景绘制 Pass
func NewRenderPass(renderer *Renderer) *RenderPass {
	return &RenderPass{renderer: renderer}
}

// Render 清空 out 并绘制场景，忽略输入
func (p *RenderPass) Render(out, _ *ebiten.Image) {
	p.renderer.RenderTo(out)
}

// SetSize 场景绘制没有内部图像
func (p *RenderPass) SetSize(int, int) {}

// NeedsSwap 结果直接写入读缓冲
func (p *RenderPass) NeedsSwap() bool { return false }
