package entities

import (
	"fmt"
	"log"

	"cogentcore.org/core/math32"

	"github.com/decker502/synthwave/pkg/components"
	"github.com/decker502/synthwave/pkg/config"
	"github.com/decker502/synthwave/pkg/ecs"
)

// SceneHandles 场景构建后各对象的实体ID
type SceneHandles struct {
	Camera    ecs.EntityID
	Light     ecs.EntityID
	Sun       ecs.EntityID
	Bars      [config.BarCount]ecs.EntityID
	GridLines []ecs.EntityID
}

// BuildScene 根据预设创建完整的静态场景
//
// 参数:
//   - em: 实体管理器（应为空）
//   - preset: 场景预设，构建前会先校验
//   - aspect: 视口宽高比
//
// 返回:
//   - *SceneHandles: 各对象的实体ID
//   - error: 预设无效时返回错误，此时不会创建任何实体
func BuildScene(em *ecs.EntityManager, preset *config.Preset, aspect float64) (*SceneHandles, error) {
	if preset == nil {
		return nil, fmt.Errorf("build scene: %w: nil preset", config.ErrInvalidPreset)
	}
	if err := preset.Validate(); err != nil {
		return nil, fmt.Errorf("build scene %q: %w", preset.Name, err)
	}

	h := &SceneHandles{}
	h.Sun = NewSunEntity(em, preset.Sun)

	geometry := components.NewPlaneGeometry(config.BarWidth, 1)
	material := components.NewBasicMaterial("bar", components.ColorFromHex(config.BarColor))
	material.DoubleSide = true
	for i := range h.Bars {
		y := preset.Sun.CenterY - preset.Animation.BarSpacing*float64(i)
		h.Bars[i] = NewBarEntity(em, geometry, material, i, preset.Animation.BarHeights[i], y)
	}

	h.GridLines = NewGridEntities(em)
	h.Light = NewAmbientLightEntity(em, config.AmbientLightColor)
	h.Camera = NewCameraEntity(em, aspect)

	log.Printf("[SceneFactory] Built scene %q: %d entities (%d grid lines)", preset.Name, em.EntityCount(), len(h.GridLines))
	return h, nil
}

// NewSunEntity 创建太阳圆盘（渐变材质）
func NewSunEntity(em *ecs.EntityManager, sun config.SunConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, components.NewTransform(0, float32(sun.CenterY), float32(sun.Z)))
	ecs.AddComponent(em, id, &components.MeshComponent{
		Kind:     components.MeshKindMesh,
		Geometry: components.NewCircleGeometry(float32(sun.Radius), sun.Segments),
	})
	ecs.AddComponent(em, id, &components.MaterialComponent{
		Material: components.NewGradientMaterial("sun",
			components.ColorFromHex(sun.ColorBottom),
			components.ColorFromHex(sun.ColorTop)),
	})
	return id
}

// NewBarEntity 创建一个条纹遮挡条
// 五个遮挡条共享同一几何体和材质，厚度通过 Scale.Y 表示
func NewBarEntity(em *ecs.EntityManager, geometry *components.Geometry, material *components.Material, index int, height, y float64) ecs.EntityID {
	id := em.CreateEntity()

	transform := components.NewTransform(0, float32(y), config.BarZ)
	transform.Scale.Y = float32(height)
	ecs.AddComponent(em, id, transform)
	ecs.AddComponent(em, id, &components.MeshComponent{Kind: components.MeshKindMesh, Geometry: geometry})
	ecs.AddComponent(em, id, &components.MaterialComponent{Material: material})
	ecs.AddComponent(em, id, &components.BarOccluderComponent{Index: index})
	return id
}

// NewGridEntities 创建地面网格线，全部加入泛光层
// 横线：z 从 +GridHalfDepth 到 -GridHalfDepth；纵线：x 从 -GridHalfWidth 到 +GridHalfWidth
func NewGridEntities(em *ecs.EntityManager) []ecs.EntityID {
	material := components.NewLineMaterial("grid", components.ColorFromHex(config.GridColor))
	mask := components.MaskOf(components.LayerEntireScene, components.LayerBloom)

	ids := make([]ecs.EntityID, 0, 128)
	addLine := func(a, b math32.Vector3) {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, components.NewTransform(0, 0, 0))
		ecs.AddComponent(em, id, &components.MeshComponent{
			Kind:     components.MeshKindLine,
			Geometry: components.NewLineGeometry(a, b),
		})
		ecs.AddComponent(em, id, &components.MaterialComponent{Material: material})
		ecs.AddComponent(em, id, &components.RenderLayerComponent{Mask: mask})
		ids = append(ids, id)
	}

	steps := func(half float64) int { return int(2*half/config.GridSpacing) + 1 }

	for i := range steps(config.GridHalfDepth) {
		z := float32(config.GridHalfDepth - config.GridSpacing*float64(i))
		addLine(math32.Vec3(-config.GridHalfWidth, config.GridY, z), math32.Vec3(config.GridHalfWidth, config.GridY, z))
	}
	for i := range steps(config.GridHalfWidth) {
		x := float32(-config.GridHalfWidth + config.GridSpacing*float64(i))
		addLine(math32.Vec3(x, config.GridY, -config.GridHalfDepth), math32.Vec3(x, config.GridY, config.GridHalfDepth))
	}
	return ids
}

// NewAmbientLightEntity 创建环境光（所有材质都不受光照影响，仅作为场景的一部分保留）
func NewAmbientLightEntity(em *ecs.EntityManager, hex uint32) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.AmbientLightComponent{Color: components.ColorFromHex(hex)})
	return id
}

// NewCameraEntity 创建透视相机（投影矩阵由 CameraSystem 计算）
func NewCameraEntity(em *ecs.EntityManager, aspect float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.CameraComponent{
		Fov:      config.CameraFov,
		Aspect:   float32(aspect),
		Near:     config.CameraNear,
		Far:      config.CameraFar,
		Position: math32.Vec3(config.CameraX, config.CameraY, config.CameraZ),
	})
	return id
}
