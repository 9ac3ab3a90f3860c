package systems

import (
	"cmp"
	"image"
	"image/color"
	"slices"

	"cogentcore.org/core/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/synthwave/pkg/components"
	"github.com/decker502/synthwave/pkg/ecs"
)

// RenderSystem 把场景中的网格和线段透视投影到目标图像上
//
// 没有深度缓冲，按物体中心的视空间深度从远到近绘制（画家算法），
// 深度相同时按实体创建顺序绘制。
// 太阳、遮挡条、网格线都是互相平行或分离的平面，画家算法足以得到正确遮挡。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	camera        *CameraSystem

	gradientShader *ebiten.Shader // 渐变材质着色器，为 nil 时退化为纯色
	whiteImage     *ebiten.Image  // 纯色三角形的源图像（1x1 白色子图像）
	lineWidth      float32

	drawList []drawItem       // 绘制列表（复用，避免每帧分配）
	vertices []ebiten.Vertex  // 顶点数组（复用）
	indices  []uint16         // 索引数组（复用）
	screen   []projectedPoint // 顶点投影结果（复用）
}

// drawItem 绘制列表条目
type drawItem struct {
	id    ecs.EntityID
	depth float32 // 物体中心在视空间中的 Z（越小越远）
}

// projectedPoint 投影后的屏幕坐标
type projectedPoint struct {
	x, y    float32
	visible bool
}

// NewRenderSystem 创建渲染系统
// gradientShader 可以为 nil（此时渐变材质使用起始颜色绘制）
func NewRenderSystem(em *ecs.EntityManager, camera *CameraSystem, gradientShader *ebiten.Shader, lineWidth float32) *RenderSystem {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &RenderSystem{
		entityManager:  em,
		camera:         camera,
		gradientShader: gradientShader,
		whiteImage:     white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		lineWidth:      lineWidth,
		drawList:       make([]drawItem, 0, 128),
		vertices:       make([]ebiten.Vertex, 0, 256),
		indices:        make([]uint16, 0, 512),
	}
}

// DrawScene 把场景绘制到 dst（不清屏）
func (s *RenderSystem) DrawScene(dst *ebiten.Image) {
	cam := s.camera.Camera()
	if cam == nil {
		return
	}

	bounds := dst.Bounds()
	width, height := float32(bounds.Dx()), float32(bounds.Dy())

	for _, item := range s.collectDrawList(cam) {
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, item.id)
		mesh, _ := ecs.GetComponent[*components.MeshComponent](s.entityManager, item.id)
		mat, _ := ecs.GetComponent[*components.MaterialComponent](s.entityManager, item.id)
		if mat.Material == nil || mesh.Geometry == nil {
			continue
		}

		switch mesh.Kind {
		case components.MeshKindMesh:
			s.drawMesh(dst, cam, transform, mesh.Geometry, mat.Material, width, height)
		case components.MeshKindLine:
			s.drawLine(dst, cam, transform, mesh.Geometry, mat.Material, width, height)
		}
	}
}

// collectDrawList 收集所有可渲染实体，按视空间深度从远到近排序
func (s *RenderSystem) collectDrawList(cam *components.CameraComponent) []drawItem {
	s.drawList = s.drawList[:0]

	entities := ecs.GetEntitiesWith3[
		*components.TransformComponent,
		*components.MeshComponent,
		*components.MaterialComponent,
	](s.entityManager)

	for _, id := range entities {
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		mesh, _ := ecs.GetComponent[*components.MeshComponent](s.entityManager, id)
		if mesh.Geometry == nil || len(mesh.Geometry.Vertices) == 0 {
			continue
		}
		center := toViewSpace(cam, applyTransform(transform, geometryCenter(mesh.Geometry)))
		s.drawList = append(s.drawList, drawItem{id: id, depth: center.Z})
	}

	slices.SortStableFunc(s.drawList, func(a, b drawItem) int {
		if c := cmp.Compare(a.depth, b.depth); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})
	return s.drawList
}

// geometryCenter 返回局部坐标包围盒中心
func geometryCenter(g *components.Geometry) math32.Vector3 {
	box := math32.B3Empty()
	box.ExpandByPoints(g.Vertices)
	return box.Center()
}

// drawMesh 绘制三角形网格
// 任一顶点位于相机后方的三角形整个丢弃；单面材质剔除背面
func (s *RenderSystem) drawMesh(dst *ebiten.Image, cam *components.CameraComponent, t *components.TransformComponent,
	g *components.Geometry, m *components.Material, width, height float32) {
	// 厚度为 0 的遮挡条不可见
	if t.Scale.X == 0 || t.Scale.Y == 0 {
		return
	}

	s.screen = s.screen[:0]
	for _, v := range g.Vertices {
		x, y, ok := projectView(cam, toViewSpace(cam, applyTransform(t, v)), width, height)
		s.screen = append(s.screen, projectedPoint{x: x, y: y, visible: ok})
	}

	s.indices = s.indices[:0]
	for i := 0; i+2 < len(g.Indices); i += 3 {
		a, b, c := s.screen[g.Indices[i]], s.screen[g.Indices[i+1]], s.screen[g.Indices[i+2]]
		if !a.visible || !b.visible || !c.visible {
			continue
		}
		if !m.DoubleSide && !isFrontFacing(a.x, a.y, b.x, b.y, c.x, c.y) {
			continue
		}
		s.indices = append(s.indices, g.Indices[i], g.Indices[i+1], g.Indices[i+2])
	}
	if len(s.indices) == 0 {
		return
	}

	useShader := m.Kind == components.MaterialGradient && s.gradientShader != nil

	s.vertices = s.vertices[:0]
	for i, p := range s.screen {
		v := ebiten.Vertex{
			DstX:   p.x,
			DstY:   p.y,
			SrcX:   1.5,
			SrcY:   1.5,
			ColorR: float32(m.Color.R) / 0xff,
			ColorG: float32(m.Color.G) / 0xff,
			ColorB: float32(m.Color.B) / 0xff,
			ColorA: float32(m.Color.A) / 0xff,
		}
		if useShader {
			// 着色器直接把 SrcX/SrcY 当作 UV 使用
			v.SrcX, v.SrcY = 0, 0
			v.ColorR, v.ColorG, v.ColorB, v.ColorA = 1, 1, 1, 1
			if i < len(g.UVs) {
				v.SrcX, v.SrcY = g.UVs[i].X, g.UVs[i].Y
			}
		}
		s.vertices = append(s.vertices, v)
	}

	if useShader {
		op := &ebiten.DrawTrianglesShaderOptions{AntiAlias: true}
		op.Uniforms = map[string]any{
			"Color1": colorUniform(m.Color),
			"Color2": colorUniform(m.Color2),
		}
		dst.DrawTrianglesShader(s.vertices, s.indices, s.gradientShader, op)
		return
	}

	dst.DrawTriangles(s.vertices, s.indices, s.whiteImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawLine 把几何体顶点按顺序连成折线绘制，每段先裁剪到近/远平面之间
func (s *RenderSystem) drawLine(dst *ebiten.Image, cam *components.CameraComponent, t *components.TransformComponent,
	g *components.Geometry, m *components.Material, width, height float32) {
	for i := 0; i+1 < len(g.Vertices); i++ {
		a := toViewSpace(cam, applyTransform(t, g.Vertices[i]))
		b := toViewSpace(cam, applyTransform(t, g.Vertices[i+1]))

		a, b, ok := clipSegmentDepth(a, b, cam.Near, cam.Far)
		if !ok {
			continue
		}

		x0, y0, ok0 := projectView(cam, a, width, height)
		x1, y1, ok1 := projectView(cam, b, width, height)
		if !ok0 || !ok1 {
			continue
		}
		vector.StrokeLine(dst, x0, y0, x1, y1, s.lineWidth, m.Color, true)
	}
}

// colorUniform 把颜色转换为着色器 vec3 uniform
func colorUniform(c color.RGBA) []float32 {
	return []float32{float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff}
}
