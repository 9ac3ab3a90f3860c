package postprocess

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Pass 后处理管线中的一个步骤
type Pass interface {
	// Render 读取 in，把结果写入 out（out 与 in 可能是同一张图像）
	Render(out, in *ebiten.Image)

	// SetSize 调整内部图像尺寸（设备像素）
	SetSize(width, height int)

	// NeedsSwap 为 true 时结果写入另一张缓冲并在之后交换读写缓冲；
	// 为 false 时结果直接写回读缓冲
	NeedsSwap() bool
}

// Composer 按顺序执行 Pass 的后处理合成器
type Composer struct {
	renderer *Renderer
	passes   []Pass

	readBuffer  *ebiten.Image
	writeBuffer *ebiten.Image

	renderToScreen bool
	width, height  int // 设备像素尺寸
}

// NewComposer 创建合成器；默认最后一个 Pass 输出到渲染器主表面
func NewComposer(renderer *Renderer) *Composer {
	return &Composer{
		renderer:       renderer,
		renderToScreen: true,
	}
}

// AddPass 追加一个 Pass，并立即同步当前尺寸
func (c *Composer) AddPass(p Pass) {
	c.passes = append(c.passes, p)
	if c.width > 0 && c.height > 0 {
		p.SetSize(c.width, c.height)
	}
}

// SetRenderToScreen 设置最后一个 Pass 是否输出到主表面
// 为 false 时最终结果留在读缓冲中（见 ReadBuffer）
func (c *Composer) SetRenderToScreen(v bool) {
	c.renderToScreen = v
}

// SetSize 调整读写缓冲和所有 Pass 的尺寸（逻辑像素）
func (c *Composer) SetSize(width, height int) {
	c.width, c.height = DeviceSize(width, height, c.renderer.PixelRatio())

	c.readBuffer = resizeImage(c.readBuffer, c.width, c.height)
	c.writeBuffer = resizeImage(c.writeBuffer, c.width, c.height)
	for _, p := range c.passes {
		p.SetSize(c.width, c.height)
	}
}

// Size 返回设备像素尺寸
func (c *Composer) Size() (int, int) {
	return c.width, c.height
}

// ReadBuffer 返回保存最近一次合成结果的缓冲
func (c *Composer) ReadBuffer() *ebiten.Image {
	return c.readBuffer
}

// Dispose 释放读写缓冲和 Pass 持有的图像
func (c *Composer) Dispose() {
	for _, img := range []*ebiten.Image{c.readBuffer, c.writeBuffer} {
		if img != nil {
			img.Deallocate()
		}
	}
	c.readBuffer, c.writeBuffer = nil, nil
	c.width, c.height = 0, 0

	for _, p := range c.passes {
		if d, ok := p.(interface{ Dispose() }); ok {
			d.Dispose()
		}
	}
}

// Render 依次执行所有 Pass
func (c *Composer) Render() {
	if c.readBuffer == nil {
		return
	}

	for i, p := range c.passes {
		last := i == len(c.passes)-1
		switch {
		case last && c.renderToScreen:
			if screen := c.renderer.Surface(); screen != nil {
				p.Render(screen, c.readBuffer)
			}
		case p.NeedsSwap():
			p.Render(c.writeBuffer, c.readBuffer)
			c.readBuffer, c.writeBuffer = c.writeBuffer, c.readBuffer
		default:
			p.Render(c.readBuffer, c.readBuffer)
		}
	}
}
