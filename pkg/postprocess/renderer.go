// Package postprocess 在 ebiten 之上实现场景渲染器和后处理合成管线
//
// Renderer 持有主绘制表面；Composer 按顺序执行若干 Pass，
// 通过两张离屏图像交替读写，最后一个 Pass 可以直接输出到主表面。
package postprocess

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneDrawer 把场景绘制到目标图像
type SceneDrawer interface {
	DrawScene(dst *ebiten.Image)
}

// Renderer 场景渲染器，持有主绘制表面
//
// 尺寸以逻辑像素设置，内部图像按像素比放大为设备像素
type Renderer struct {
	scene      SceneDrawer
	pixelRatio float64

	surface       *ebiten.Image // 主绘制表面（设备像素）
	width, height int           // 逻辑尺寸
}

// NewRenderer 创建渲染器；pixelRatio 在启动时读取一次，之后不再改变
func NewRenderer(scene SceneDrawer, pixelRatio float64) *Renderer {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	return &Renderer{
		scene:      scene,
		pixelRatio: pixelRatio,
	}
}

// SetSize 调整主表面尺寸（逻辑像素）
// 设备尺寸不变时不重新分配图像
func (r *Renderer) SetSize(width, height int) {
	r.width, r.height = width, height

	dw, dh := DeviceSize(width, height, r.pixelRatio)
	r.surface = resizeImage(r.surface, dw, dh)
	log.Printf("[Renderer] Surface %dx%d (pixel ratio %.2f)", dw, dh, r.pixelRatio)
}

// Size 返回逻辑尺寸
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// PixelRatio 返回设备像素比
func (r *Renderer) PixelRatio() float64 {
	return r.pixelRatio
}

// Surface 返回主绘制表面，尚未设置尺寸时为 nil
func (r *Renderer) Surface() *ebiten.Image {
	return r.surface
}

// Render 清空主表面并绘制场景
func (r *Renderer) Render() {
	if r.surface == nil {
		return
	}
	r.RenderTo(r.surface)
}

// RenderTo 清空 dst 并把场景绘制上去
func (r *Renderer) RenderTo(dst *ebiten.Image) {
	dst.Clear()
	r.scene.DrawScene(dst)
}

// Dispose 释放主表面
func (r *Renderer) Dispose() {
	if r.surface != nil {
		r.surface.Deallocate()
		r.surface = nil
	}
}

// DeviceSize 把逻辑尺寸换算为设备像素尺寸（向下取整，至少为 1）
func DeviceSize(width, height int, pixelRatio float64) (int, int) {
	dw := int(math.Floor(float64(width) * pixelRatio))
	dh := int(math.Floor(float64(height) * pixelRatio))
	return max(dw, 1), max(dh, 1)
}

// resizeImage 返回指定尺寸的图像：尺寸相同时复用 img，否则释放旧图像并新建
func resizeImage(img *ebiten.Image, width, height int) *ebiten.Image {
	if img != nil {
		b := img.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return img
		}
		img.Deallocate()
	}
	return ebiten.NewImage(width, height)
}
