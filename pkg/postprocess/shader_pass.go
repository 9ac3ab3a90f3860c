package postprocess

import "github.com/hajimehoshi/ebiten/v2"

// ShaderPass 以读缓冲和附加纹理为输入执行全屏着色器
//
// 附加纹理通过函数在每帧渲染时获取，因为它所在的缓冲会在尺寸变化时重建
type ShaderPass struct {
	shader   *ebiten.Shader
	extra    func() *ebiten.Image
	uniforms map[string]any
}

// NewShaderPass 创建全屏着色器 Pass
// extra 可以为 nil；不为 nil 时其结果作为着色器的第二张输入纹理
func NewShaderPass(shader *ebiten.Shader, extra func() *ebiten.Image) *ShaderPass {
	return &ShaderPass{shader: shader, extra: extra}
}

// NewBloomCompositePass 创建最终合成 Pass：基础画面 + 泛光合成器的结果
func NewBloomCompositePass(shaders *Shaders, bloom *Composer) *ShaderPass {
	return NewShaderPass(shaders.Composite, bloom.ReadBuffer)
}

// SetUniform 设置着色器 uniform
func (p *ShaderPass) SetUniform(name string, value any) {
	if p.uniforms == nil {
		p.uniforms = make(map[string]any)
	}
	p.uniforms[name] = value
}

// Render 用着色器把 in（和附加纹理）绘制到 out
func (p *ShaderPass) Render(out, in *ebiten.Image) {
	w, h := size(in)
	op := &ebiten.DrawRectShaderOptions{Blend: ebiten.BlendCopy, Uniforms: p.uniforms}
	op.Images[0] = in
	if p.extra != nil {
		extra := p.extra()
		if extra == nil {
			return
		}
		if ew, eh := size(extra); ew != w || eh != h {
			return
		}
		op.Images[1] = extra
	}
	out.DrawRectShader(w, h, p.shader, op)
}

// SetSize 着色器 Pass 没有内部图像
func (p *ShaderPass) SetSize(int, int) {}

// NeedsSwap 结果写入另一张缓冲
func (p *ShaderPass) NeedsSwap() bool { return true }
