package systems

import (
	"cogentcore.org/core/math32"

	"github.com/decker502/synthwave/pkg/components"
)

// applyTransform 把局部坐标顶点变换到世界坐标
// 顺序：缩放 → 绕 Z、Y、X 轴旋转 → 平移
func applyTransform(t *components.TransformComponent, v math32.Vector3) math32.Vector3 {
	x := v.X * t.Scale.X
	y := v.Y * t.Scale.Y
	z := v.Z * t.Scale.Z

	if t.Rotation.Z != 0 {
		s, c := math32.Sin(t.Rotation.Z), math32.Cos(t.Rotation.Z)
		x, y = x*c-y*s, x*s+y*c
	}
	if t.Rotation.Y != 0 {
		s, c := math32.Sin(t.Rotation.Y), math32.Cos(t.Rotation.Y)
		x, z = x*c+z*s, -x*s+z*c
	}
	if t.Rotation.X != 0 {
		s, c := math32.Sin(t.Rotation.X), math32.Cos(t.Rotation.X)
		y, z = y*c-z*s, y*s+z*c
	}

	return math32.Vec3(x+t.Position.X, y+t.Position.Y, z+t.Position.Z)
}

// toViewSpace 世界坐标 → 相机坐标
// 相机没有旋转，只需减去相机位置；相机坐标系中可见物体的 Z 为负
func toViewSpace(cam *components.CameraComponent, p math32.Vector3) math32.Vector3 {
	return p.Sub(cam.Position)
}

// projectView 把相机坐标投影到目标图像的像素坐标（左上角为原点，Y 向下）
// 点位于相机后方时 ok 为 false
func projectView(cam *components.CameraComponent, v math32.Vector3, width, height float32) (x, y float32, ok bool) {
	clip := math32.Vector4{X: v.X, Y: v.Y, Z: v.Z, W: 1}.MulMatrix4(&cam.Projection)
	if clip.W <= 0 {
		return 0, 0, false
	}

	ndc := clip.PerspDiv()
	x = (ndc.X + 1) / 2 * width
	y = (1 - ndc.Y) / 2 * height
	return x, y, true
}

// clipSegmentDepth 把相机坐标系中的线段裁剪到 [-far, -near] 深度范围内
// 线段完全不可见时 ok 为 false
func clipSegmentDepth(a, b math32.Vector3, near, far float32) (math32.Vector3, math32.Vector3, bool) {
	a, b, ok := clipAgainstZ(a, b, -near, true)
	if !ok {
		return a, b, false
	}
	return clipAgainstZ(a, b, -far, false)
}

// clipAgainstZ 用平面 z = planeZ 裁剪线段
// keepBelow 为 true 时保留 z <= planeZ 的部分，否则保留 z >= planeZ 的部分
func clipAgainstZ(a, b math32.Vector3, planeZ float32, keepBelow bool) (math32.Vector3, math32.Vector3, bool) {
	inside := func(p math32.Vector3) bool {
		if keepBelow {
			return p.Z <= planeZ
		}
		return p.Z >= planeZ
	}

	inA, inB := inside(a), inside(b)
	switch {
	case inA && inB:
		return a, b, true
	case !inA && !inB:
		return a, b, false
	}

	t := (planeZ - a.Z) / (b.Z - a.Z)
	p := math32.Vec3(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t, planeZ)
	if inA {
		return a, p, true
	}
	return p, b, true
}

// isFrontFacing 判断屏幕坐标三角形是否正面朝向相机
// 世界坐标中逆时针的三角形在 Y 向下的屏幕坐标中变为顺时针（叉积为负）
func isFrontFacing(x0, y0, x1, y1, x2, y2 float32) bool {
	cross := (x1-x0)*(y2-y0) - (x2-x0)*(y1-y0)
	return cross < 0
}
