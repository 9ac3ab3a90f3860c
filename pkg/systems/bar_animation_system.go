package systems

import (
	"github.com/decker502/synthwave/pkg/components"
	"github.com/decker502/synthwave/pkg/config"
	"github.com/decker502/synthwave/pkg/ecs"
)

// BarState 单个条纹遮挡条的动画状态
type BarState struct {
	// Height 当前厚度（同时作为 Transform.Scale.Y），始终 >= 0
	Height float64

	// PositionY 当前垂直位置（遮挡条中心）
	PositionY float64
}

// BarAnimationState 所有遮挡条的动画状态
// 由运行帧循环的场景持有，每帧以指针传入 BarAnimationSystem.Update
type BarAnimationState struct {
	Bars [config.BarCount]BarState

	// Frame 已推进的帧数
	Frame uint64

	// Wraps 累计回到顶部的次数（调试面板显示）
	Wraps uint64
}

// NewBarAnimationState 根据初始厚度和间距创建动画状态
// 第 i 个遮挡条位于 sunCenterY - spacing*i
func NewBarAnimationState(heights []float64, spacing, sunCenterY float64) *BarAnimationState {
	state := &BarAnimationState{}
	for i := range state.Bars {
		if i < len(heights) {
			state.Bars[i].Height = heights[i]
		}
		state.Bars[i].PositionY = sunCenterY - spacing*float64(i)
	}
	return state
}

// StepBar 推进单个遮挡条一帧，返回本帧是否回到了顶部
//
// 顺序不可调换：
//  1. 厚度增长
//  2. 用增长后的厚度检查底边是否越过太阳底部，越过则厚度清零并回到圆心高度
//  3. 无论是否回绕都下移一个速度步长
func StepBar(bar *BarState, params config.AnimationParams) bool {
	bar.Height += params.HeightDelta

	wrapped := false
	if bar.PositionY <= params.SunCenterY-params.SunRadius-bar.Height/2 {
		bar.Height = params.InitialHeight
		bar.PositionY = params.SunCenterY
		wrapped = true
	}

	bar.PositionY -= params.Velocity
	return wrapped
}

// StepBars 推进所有遮挡条一帧，返回本帧回绕的遮挡条数量
func StepBars(state *BarAnimationState, params config.AnimationParams) int {
	wraps := 0
	for i := range state.Bars {
		if StepBar(&state.Bars[i], params) {
			wraps++
		}
	}
	state.Frame++
	state.Wraps += uint64(wraps)
	return wraps
}

// BarAnimationSystem 把条纹动画状态写入遮挡条实体的变换
type BarAnimationSystem struct {
	entityManager *ecs.EntityManager
	params        config.AnimationParams
}

// NewBarAnimationSystem 创建条纹动画系统
// params 在场景构建时确定，系统生命周期内不再改变
func NewBarAnimationSystem(em *ecs.EntityManager, params config.AnimationParams) *BarAnimationSystem {
	return &BarAnimationSystem{
		entityManager: em,
		params:        params,
	}
}

// Params 返回系统使用的动画常量
func (s *BarAnimationSystem) Params() config.AnimationParams {
	return s.params
}

// Update 推进一帧动画，并同步更新遮挡条的 Scale.Y 与 Position.Y
func (s *BarAnimationSystem) Update(state *BarAnimationState) {
	StepBars(state, s.params)
	s.Sync(state)
}

// Sync 把动画状态写入实体变换（厚度与位置总是一起写入）
func (s *BarAnimationSystem) Sync(state *BarAnimationState) {
	entities := ecs.GetEntitiesWith2[*components.BarOccluderComponent, *components.TransformComponent](s.entityManager)

	for _, id := range entities {
		bar, _ := ecs.GetComponent[*components.BarOccluderComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if bar.Index < 0 || bar.Index >= len(state.Bars) {
			continue
		}

		b := state.Bars[bar.Index]
		transform.Scale.Y = float32(b.Height)
		transform.Position.Y = float32(b.PositionY)
	}
}
