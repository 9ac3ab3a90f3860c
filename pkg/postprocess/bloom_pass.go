package postprocess

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/synthwave/pkg/config"
)

// bloomMips 泛光金字塔层数
const bloomMips = 5

var (
	// bloomKernelRadii 各层高斯模糊半径（同时作为 sigma）
	bloomKernelRadii = [bloomMips]int{3, 5, 7, 9, 11}

	// bloomFactors 各层合成权重
	bloomFactors = [bloomMips]float64{1.0, 0.8, 0.6, 0.4, 0.2}
)

// BloomPass 多层泛光
//
// 半分辨率提取高亮 → 逐层减半并做可分离高斯模糊 → 加权叠加 → 加法混合回读缓冲
type BloomPass struct {
	Strength    float64
	Radius      float64
	Threshold   float64
	SmoothWidth float64

	highPass *ebiten.Shader
	blur     *ebiten.Shader

	half       *ebiten.Image // 半分辨率输入
	bright     *ebiten.Image // 高亮提取结果
	down       [bloomMips]*ebiten.Image
	horizontal [bloomMips]*ebiten.Image
	vertical   [bloomMips]*ebiten.Image
	composite  *ebiten.Image // 各层叠加结果（第 0 层尺寸）

	width, height int
}

// NewBloomPass 创建泛光 Pass
func NewBloomPass(shaders *Shaders, cfg config.BloomConfig) *BloomPass {
	return &BloomPass{
		Strength:    cfg.Strength,
		Radius:      cfg.Radius,
		Threshold:   cfg.Threshold,
		SmoothWidth: cfg.SmoothWidth,
		highPass:    shaders.HighPass,
		blur:        shaders.Blur,
	}
}

// NeedsSwap 泛光直接叠加到读缓冲
func (p *BloomPass) NeedsSwap() bool { return false }

// SetSize 按半分辨率重建金字塔
func (p *BloomPass) SetSize(width, height int) {
	if width == p.width && height == p.height {
		return
	}
	p.width, p.height = width, height

	sizes := mipSizes(width, height)
	p.half = resizeImage(p.half, sizes[0][0], sizes[0][1])
	p.bright = resizeImage(p.bright, sizes[0][0], sizes[0][1])
	p.composite = resizeImage(p.composite, sizes[0][0], sizes[0][1])
	for i, s := range sizes {
		p.down[i] = resizeImage(p.down[i], s[0], s[1])
		p.horizontal[i] = resizeImage(p.horizontal[i], s[0], s[1])
		p.vertical[i] = resizeImage(p.vertical[i], s[0], s[1])
	}
}

// Dispose 释放金字塔图像
func (p *BloomPass) Dispose() {
	images := []*ebiten.Image{p.half, p.bright, p.composite}
	images = append(images, p.down[:]...)
	images = append(images, p.horizontal[:]...)
	images = append(images, p.vertical[:]...)
	for _, img := range images {
		if img != nil {
			img.Deallocate()
		}
	}

	p.half, p.bright, p.composite = nil, nil, nil
	p.down = [bloomMips]*ebiten.Image{}
	p.horizontal = [bloomMips]*ebiten.Image{}
	p.vertical = [bloomMips]*ebiten.Image{}
	p.width, p.height = 0, 0
}

// Render 计算 in 的泛光并加法叠加到 out
func (p *BloomPass) Render(out, in *ebiten.Image) {
	if p.bright == nil {
		return
	}

	// 1. 缩小到半分辨率并提取高亮
	drawScaled(p.half, in, ebiten.BlendCopy, 1)
	hw, hh := size(p.bright)
	hop := &ebiten.DrawRectShaderOptions{Blend: ebiten.BlendCopy}
	hop.Images[0] = p.half
	hop.Uniforms = map[string]any{
		"Threshold":   float32(p.Threshold),
		"SmoothWidth": float32(p.SmoothWidth),
	}
	p.bright.DrawRectShader(hw, hh, p.highPass, hop)

	// 2. 逐层缩小并模糊
	input := p.bright
	for i := range bloomMips {
		drawScaled(p.down[i], input, ebiten.BlendCopy, 1)
		p.blurInto(p.horizontal[i], p.down[i], 1, 0, bloomKernelRadii[i])
		p.blurInto(p.vertical[i], p.horizontal[i], 0, 1, bloomKernelRadii[i])
		input = p.vertical[i]
	}

	// 3. 加权叠加所有层
	p.composite.Clear()
	for i := range bloomMips {
		weight := p.Strength * lerpBloomFactor(bloomFactors[i], p.Radius)
		drawScaled(p.composite, p.vertical[i], ebiten.BlendLighter, float32(weight))
	}

	// 4. 加法混合回输出
	drawScaled(out, p.composite, ebiten.BlendLighter, 1)
}

// blurInto 沿 (dx, dy) 方向做一次高斯模糊
func (p *BloomPass) blurInto(dst, src *ebiten.Image, dx, dy float32, radius int) {
	w, h := size(dst)
	op := &ebiten.DrawRectShaderOptions{Blend: ebiten.BlendCopy}
	op.Images[0] = src
	op.Uniforms = map[string]any{
		"Direction":    []float32{dx, dy},
		"Sigma":        float32(radius),
		"KernelRadius": float32(radius),
	}
	dst.DrawRectShader(w, h, p.blur, op)
}

// lerpBloomFactor 半径越大，外层（低分辨率）权重越高
func lerpBloomFactor(factor, radius float64) float64 {
	mirror := 1.2 - factor
	return factor + (mirror-factor)*radius
}

// mipSizes 返回各层尺寸：第 0 层为半分辨率，之后逐层减半（至少 1 像素）
func mipSizes(width, height int) [bloomMips][2]int {
	var sizes [bloomMips][2]int
	w, h := max(width/2, 1), max(height/2, 1)
	for i := range sizes {
		sizes[i] = [2]int{w, h}
		w, h = max(w/2, 1), max(h/2, 1)
	}
	return sizes
}

// drawScaled 把 src 拉伸绘制到整个 dst
func drawScaled(dst, src *ebiten.Image, blend ebiten.Blend, weight float32) {
	dw, dh := size(dst)
	sw, sh := size(src)

	op := &ebiten.DrawImageOptions{Blend: blend, Filter: ebiten.FilterLinear}
	op.GeoM.Scale(float64(dw)/float64(sw), float64(dh)/float64(sh))
	if weight != 1 {
		op.ColorScale.Scale(weight, weight, weight, weight)
	}
	dst.DrawImage(src, op)
}

func size(img *ebiten.Image) (int, int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}
