package components

import "cogentcore.org/core/math32"

// Geometry 存储对象局部坐标系下的顶点数据
//
// 网格（Mesh）使用 Indices 组成三角形；
// 线（Line）忽略 Indices，按顶点顺序连成折线
type Geometry struct {
	// Vertices 局部坐标顶点
	Vertices []math32.Vector3

	// UVs 纹理坐标（0~1），与 Vertices 一一对应，可为空
	UVs []math32.Vector2

	// Indices 三角形索引（每 3 个一组）
	Indices []uint16
}

// NewCircleGeometry 创建 XY 平面上的圆盘几何体
// 顶点 0 为圆心，其余为圆周上的 segments+1 个点（首尾重合）
// UV 按 ((x/r+1)/2, (y/r+1)/2) 计算，V 轴向上
func NewCircleGeometry(radius float32, segments int) *Geometry {
	if segments < 3 {
		segments = 3
	}

	g := &Geometry{
		Vertices: make([]math32.Vector3, 0, segments+2),
		UVs:      make([]math32.Vector2, 0, segments+2),
		Indices:  make([]uint16, 0, segments*3),
	}

	g.Vertices = append(g.Vertices, math32.Vec3(0, 0, 0))
	g.UVs = append(g.UVs, math32.Vec2(0.5, 0.5))

	for i := 0; i <= segments; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(segments)
		x := radius * math32.Cos(theta)
		y := radius * math32.Sin(theta)
		g.Vertices = append(g.Vertices, math32.Vec3(x, y, 0))
		g.UVs = append(g.UVs, math32.Vec2((x/radius+1)/2, (y/radius+1)/2))
	}

	for i := 1; i <= segments; i++ {
		g.Indices = append(g.Indices, uint16(i), uint16(i+1), 0)
	}

	return g
}

// NewPlaneGeometry 创建以原点为中心、位于 XY 平面的矩形几何体
func NewPlaneGeometry(width, height float32) *Geometry {
	hw, hh := width/2, height/2
	return &Geometry{
		Vertices: []math32.Vector3{
			math32.Vec3(-hw, hh, 0),
			math32.Vec3(hw, hh, 0),
			math32.Vec3(-hw, -hh, 0),
			math32.Vec3(hw, -hh, 0),
		},
		UVs: []math32.Vector2{
			math32.Vec2(0, 1),
			math32.Vec2(1, 1),
			math32.Vec2(0, 0),
			math32.Vec2(1, 0),
		},
		Indices: []uint16{0, 2, 1, 2, 3, 1},
	}
}

// NewLineGeometry 由点序列创建折线几何体
func NewLineGeometry(points ...math32.Vector3) *Geometry {
	vertices := make([]math32.Vector3, len(points))
	copy(vertices, points)
	return &Geometry{Vertices: vertices}
}
