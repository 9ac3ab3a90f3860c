package systems

import (
	"math"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/synthwave/pkg/components"
	"github.com/decker502/synthwave/pkg/ecs"
)

// newTestCamera 创建与场景相同参数的相机实体
func newTestCamera(em *ecs.EntityManager, aspect float32) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.CameraComponent{
		Fov:      60,
		Aspect:   aspect,
		Near:     1,
		Far:      250,
		Position: math32.Vec3(0, 10, 100),
	})
	return id
}

func TestCameraSystem_ComputesProjectionOnCreate(t *testing.T) {
	em := ecs.NewEntityManager()
	cs := NewCameraSystem(em, newTestCamera(em, 2))

	cam := cs.Camera()
	require.NotNil(t, cam)

	f := 1 / math.Tan(math.Pi/6)
	assert.InDelta(t, f/2, float64(cam.Projection[0]), 1e-4)
	assert.InDelta(t, f, float64(cam.Projection[5]), 1e-4)
}

func TestCameraSystem_SetAspect(t *testing.T) {
	em := ecs.NewEntityManager()
	cs := NewCameraSystem(em, newTestCamera(em, 1920.0/1080.0))
	assert.InDelta(t, 1.778, cs.Aspect(), 1e-3)

	cs.SetAspect(800.0 / 600.0)

	assert.InDelta(t, 1.333, cs.Aspect(), 1e-3)
	f := 1 / math.Tan(math.Pi/6)
	assert.InDelta(t, f/(800.0/600.0), float64(cs.Camera().Projection[0]), 1e-4)
}

func TestCameraSystem_SetAspectIgnoresInvalid(t *testing.T) {
	em := ecs.NewEntityManager()
	cs := NewCameraSystem(em, newTestCamera(em, 1.5))

	cs.SetAspect(0)
	cs.SetAspect(-1)

	assert.InDelta(t, 1.5, cs.Aspect(), 1e-6)
}

func TestCameraSystem_MissingCamera(t *testing.T) {
	em := ecs.NewEntityManager()
	cs := NewCameraSystem(em, 42)

	assert.Nil(t, cs.Camera())
	assert.Zero(t, cs.Aspect())
	cs.SetAspect(1.5) // 不应 panic
}
