package systems

import (
	"log"

	"github.com/decker502/synthwave/pkg/components"
	"github.com/decker502/synthwave/pkg/ecs"
)

// CameraSystem 管理透视相机的宽高比和投影矩阵
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID // 相机实体ID
}

// NewCameraSystem 创建相机系统，并立即根据相机参数计算一次投影矩阵
func NewCameraSystem(em *ecs.EntityManager, cameraEntity ecs.EntityID) *CameraSystem {
	cs := &CameraSystem{
		entityManager: em,
		cameraEntity:  cameraEntity,
	}
	if cam := cs.Camera(); cam != nil {
		UpdateProjection(cam)
	}
	return cs
}

// Camera 返回相机组件，相机实体不存在时返回 nil
func (cs *CameraSystem) Camera() *components.CameraComponent {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return nil
	}
	return cam
}

// SetAspect 设置相机宽高比并重新计算投影矩阵
func (cs *CameraSystem) SetAspect(aspect float64) {
	cam := cs.Camera()
	if cam == nil {
		log.Printf("[CameraSystem] Warning: camera entity %d not found", cs.cameraEntity)
		return
	}
	if aspect <= 0 {
		return
	}

	cam.Aspect = float32(aspect)
	UpdateProjection(cam)
}

// Aspect 返回当前宽高比
func (cs *CameraSystem) Aspect() float64 {
	cam := cs.Camera()
	if cam == nil {
		return 0
	}
	return float64(cam.Aspect)
}

// UpdateProjection 根据 Fov/Aspect/Near/Far 重新计算投影矩阵
func UpdateProjection(cam *components.CameraComponent) {
	cam.Projection.SetPerspective(cam.Fov, cam.Aspect, cam.Near, cam.Far)
}
