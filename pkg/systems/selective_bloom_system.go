package systems

import (
	"log"

	"github.com/decker502/synthwave/pkg/components"
	"github.com/decker502/synthwave/pkg/ecs"
)

// FrameRenderer 渲染一帧的对象（后处理合成器或直接渲染器）
type FrameRenderer interface {
	Render()
}

// SelectiveBloomSystem 只让泛光层对象发光的合成系统
//
// 每帧流程：
//  1. 把不在泛光层的网格替换为黑色材质（线段不是网格，保持原样）
//  2. 渲染泛光合成器（离屏）
//  3. 还原被替换的材质
//  4. 渲染最终合成器（基础画面 + 泛光纹理）
//
// 材质替换表在每帧开始和结束时都为空
type SelectiveBloomSystem struct {
	entityManager *ecs.EntityManager
	bloomComposer FrameRenderer
	finalComposer FrameRenderer

	bloomMask    components.LayerMask
	darkMaterial *components.Material
	materials    map[ecs.EntityID]*components.Material // 被替换的原材质
}

// NewSelectiveBloomSystem 创建选择性泛光系统
func NewSelectiveBloomSystem(em *ecs.EntityManager, bloomComposer, finalComposer FrameRenderer) *SelectiveBloomSystem {
	return &SelectiveBloomSystem{
		entityManager: em,
		bloomComposer: bloomComposer,
		finalComposer: finalComposer,
		bloomMask:     components.MaskOf(components.LayerBloom),
		darkMaterial:  components.NewBasicMaterial("dark", components.ColorFromHex(0x000000)),
		materials:     make(map[ecs.EntityID]*components.Material),
	}
}

// Render 执行一帧选择性泛光合成
func (s *SelectiveBloomSystem) Render() {
	s.darkenNonBloomed()
	s.bloomComposer.Render()
	s.restoreMaterials()
	s.finalComposer.Render()
}

// PendingRestores 返回当前替换表中的条目数（帧之间应始终为 0）
func (s *SelectiveBloomSystem) PendingRestores() int {
	return len(s.materials)
}

// DarkMaterial 返回泛光通道中使用的黑色材质
func (s *SelectiveBloomSystem) DarkMaterial() *components.Material {
	return s.darkMaterial
}

// darkenNonBloomed 遍历场景，把非泛光网格的材质换成黑色
func (s *SelectiveBloomSystem) darkenNonBloomed() {
	s.entityManager.Traverse(func(id ecs.EntityID) {
		s.darken(id)
	})
}

func (s *SelectiveBloomSystem) darken(id ecs.EntityID) {
	mesh, ok := ecs.GetComponent[*components.MeshComponent](s.entityManager, id)
	if !ok || mesh.Kind != components.MeshKindMesh {
		return
	}
	if s.isBloomed(id) {
		return
	}
	mat, ok := ecs.GetComponent[*components.MaterialComponent](s.entityManager, id)
	if !ok {
		return
	}

	// 同一帧内重复压暗不能覆盖已保存的原材质
	if _, saved := s.materials[id]; !saved {
		s.materials[id] = mat.Material
	}
	mat.Material = s.darkMaterial
}

// isBloomed 判断实体是否在泛光层（没有层组件视为不在）
func (s *SelectiveBloomSystem) isBloomed(id ecs.EntityID) bool {
	layer, ok := ecs.GetComponent[*components.RenderLayerComponent](s.entityManager, id)
	if !ok {
		return false
	}
	return s.bloomMask.Test(layer.Mask)
}

// restoreMaterials 还原替换表中记录的材质，并清空替换表
func (s *SelectiveBloomSystem) restoreMaterials() {
	s.entityManager.Traverse(func(id ecs.EntityID) {
		s.restore(id)
	})

	// 替换表中残留的条目说明实体在渲染期间被移除
	if len(s.materials) > 0 {
		log.Printf("[SelectiveBloomSystem] Warning: %d saved materials without entity, dropping", len(s.materials))
		clear(s.materials)
	}
}

// restore 只处理替换表中存在的实体，其余实体保持不变
func (s *SelectiveBloomSystem) restore(id ecs.EntityID) {
	original, ok := s.materials[id]
	if !ok {
		return
	}
	if mat, ok := ecs.GetComponent[*components.MaterialComponent](s.entityManager, id); ok {
		mat.Material = original
	}
	delete(s.materials, id)
}
