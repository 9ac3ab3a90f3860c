package systems

import (
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/synthwave/pkg/components"
	"github.com/decker502/synthwave/pkg/config"
	"github.com/decker502/synthwave/pkg/ecs"
)

// classicParams 无泛光版本的动画常量
func classicParams() config.AnimationParams {
	return config.AnimationParams{
		Velocity:      0.2,
		HeightDelta:   0.12,
		InitialHeight: 0,
		SunCenterY:    60,
		SunRadius:     60,
	}
}

func TestStepBar_ClassicScenario(t *testing.T) {
	params := classicParams()
	bar := BarState{Height: 0, PositionY: 60}

	// 回绕条件 60 - 0.2(k-1) <= -0.06k 在 k = 430 时取等号，
	// 浮点累积误差可能把回绕推迟一帧
	frame := 0
	for frame = 1; frame <= 1000; frame++ {
		if StepBar(&bar, params) {
			break
		}
		require.GreaterOrEqual(t, bar.Height, 0.0)
	}

	require.Contains(t, []int{430, 431}, frame, "回绕帧")
	assert.Equal(t, 0.0, bar.Height)
	assert.InDelta(t, 60-0.2, bar.PositionY, 1e-9)
}

func TestStepBar_BloomPresetFirstWrap(t *testing.T) {
	params := config.DefaultPreset().AnimationParams()
	bar := BarState{Height: 0, PositionY: params.SunCenterY}

	frame := 0
	for frame = 1; frame <= 1000; frame++ {
		if StepBar(&bar, params) {
			break
		}
	}

	// 60 - 0.2(k-1) <= -0.01k  =>  k >= 316.84
	assert.Equal(t, 317, frame)
}

func TestStepBar_WrapResetsBeforeDecrement(t *testing.T) {
	params := classicParams()
	params.InitialHeight = 0

	tests := []struct {
		name string
		bar  BarState
	}{
		{"刚好越过太阳底部", BarState{Height: 10, PositionY: -5.1}},
		{"远低于太阳底部", BarState{Height: 3, PositionY: -200}},
		{"厚度为零", BarState{Height: 0, PositionY: -0.07}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := tt.bar
			wrapped := StepBar(&bar, params)

			require.True(t, wrapped)
			assert.Equal(t, params.InitialHeight, bar.Height)
			assert.Equal(t, params.SunCenterY-params.Velocity, bar.PositionY)
		})
	}
}

func TestStepBar_NoWrapAboveThreshold(t *testing.T) {
	params := classicParams()
	bar := BarState{Height: 2, PositionY: 10}

	wrapped := StepBar(&bar, params)

	assert.False(t, wrapped)
	assert.InDelta(t, 2.12, bar.Height, 1e-12)
	assert.Equal(t, 10-0.2, bar.PositionY)
}

// 性质：任意参数下厚度非负；未回绕的帧恰好下降一个速度步长；回绕帧结束于圆心下方一个步长
func TestStepBar_Properties(t *testing.T) {
	property := func(seed int64, velocityRaw, deltaRaw, initialRaw uint8) bool {
		params := config.AnimationParams{
			Velocity:      0.01 + float64(velocityRaw)/100,
			HeightDelta:   float64(deltaRaw) / 100,
			InitialHeight: float64(initialRaw) / 50,
			SunCenterY:    60,
			SunRadius:     60,
		}
		rng := rand.New(rand.NewSource(seed))
		bar := BarState{
			Height:    rng.Float64() * 5,
			PositionY: 60 - rng.Float64()*60,
		}

		for range 2000 {
			before := bar.PositionY
			if StepBar(&bar, params) {
				if bar.Height != params.InitialHeight || bar.PositionY != params.SunCenterY-params.Velocity {
					return false
				}
			} else if bar.PositionY != before-params.Velocity {
				return false
			}
			if bar.Height < 0 {
				return false
			}
		}
		return true
	}

	if err := quick.Check(property, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}

func TestNewBarAnimationState(t *testing.T) {
	state := NewBarAnimationState([]float64{0, 1.2, 2.4, 3.6, 4.8}, 13, 60)

	for i, bar := range state.Bars {
		assert.InDelta(t, 1.2*float64(i), bar.Height, 1e-12, "bar %d height", i)
		assert.Equal(t, 60-13*float64(i), bar.PositionY, "bar %d position", i)
	}
	assert.Zero(t, state.Frame)
}

func TestNewBarAnimationState_ShortHeights(t *testing.T) {
	state := NewBarAnimationState([]float64{1}, 12, 60)

	assert.Equal(t, 1.0, state.Bars[0].Height)
	for i := 1; i < config.BarCount; i++ {
		assert.Zero(t, state.Bars[i].Height)
	}
}

func TestStepBars_CountsWraps(t *testing.T) {
	params := classicParams()
	state := NewBarAnimationState(nil, 12, 60)
	state.Bars[1].PositionY = -100
	state.Bars[3].PositionY = -100

	wraps := StepBars(state, params)

	assert.Equal(t, 2, wraps)
	assert.Equal(t, uint64(1), state.Frame)
	assert.Equal(t, uint64(2), state.Wraps)
}

func TestBarAnimationSystem_UpdateWritesTransforms(t *testing.T) {
	em := ecs.NewEntityManager()
	ids := make([]ecs.EntityID, config.BarCount)
	for i := range ids {
		ids[i] = em.CreateEntity()
		ecs.AddComponent(em, ids[i], components.NewTransform(0, 0, -100))
		ecs.AddComponent(em, ids[i], &components.BarOccluderComponent{Index: i})
	}
	// 没有遮挡条组件的实体不受影响
	other := em.CreateEntity()
	ecs.AddComponent(em, other, components.NewTransform(0, 5, 0))

	params := classicParams()
	state := NewBarAnimationState(nil, 12, 60)
	system := NewBarAnimationSystem(em, params)

	for range 10 {
		system.Update(state)
	}

	for i, id := range ids {
		transform, ok := ecs.GetComponent[*components.TransformComponent](em, id)
		require.True(t, ok)
		assert.InDelta(t, state.Bars[i].Height, float64(transform.Scale.Y), 1e-5)
		assert.InDelta(t, state.Bars[i].PositionY, float64(transform.Position.Y), 1e-5)
		assert.InDelta(t, 1.2, float64(transform.Scale.Y), 1e-5)
	}

	transform, _ := ecs.GetComponent[*components.TransformComponent](em, other)
	assert.Equal(t, float32(5), transform.Position.Y)
	assert.Equal(t, float32(1), transform.Scale.Y)
	assert.Equal(t, params, system.Params())
}
