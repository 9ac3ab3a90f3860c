package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/synthwave/pkg/components"
	"github.com/decker502/synthwave/pkg/config"
	"github.com/decker502/synthwave/pkg/ecs"
)

// 无泛光预设只需要渐变着色器，测试中以纯色代替
func newClassicScene(t *testing.T, width, height int) *SynthwaveScene {
	t.Helper()
	s, err := NewSynthwaveScene(config.ClassicPreset(), nil, 1, width, height)
	require.NoError(t, err)
	return s
}

func TestNewSynthwaveScene_Classic(t *testing.T) {
	s := newClassicScene(t, 320, 240)

	assert.Nil(t, s.bloomSystem)
	assert.InDelta(t, 320.0/240.0, s.CameraSystem().Aspect(), 1e-6)

	surface := s.Renderer().Surface()
	require.NotNil(t, surface)
	assert.Equal(t, 320, surface.Bounds().Dx())
	assert.Equal(t, 240, surface.Bounds().Dy())
}

func TestNewSynthwaveScene_Errors(t *testing.T) {
	t.Run("泛光预设缺少着色器", func(t *testing.T) {
		_, err := NewSynthwaveScene(config.DefaultPreset(), nil, 1, 320, 240)
		assert.Error(t, err)
	})

	t.Run("尺寸无效", func(t *testing.T) {
		_, err := NewSynthwaveScene(config.ClassicPreset(), nil, 1, 0, 240)
		assert.Error(t, err)
	})

	t.Run("预设无效", func(t *testing.T) {
		p := config.ClassicPreset()
		p.Animation.Velocity = -1
		_, err := NewSynthwaveScene(p, nil, 1, 320, 240)
		assert.ErrorIs(t, err, config.ErrInvalidPreset)
	})
}

func TestSynthwaveScene_UpdateMovesBars(t *testing.T) {
	s := newClassicScene(t, 320, 240)
	params := s.Preset().AnimationParams()

	for range 10 {
		s.Update(1.0 / 60.0)
	}

	assert.Equal(t, uint64(10), s.BarState().Frame)
	em := s.EntityManager()
	for i, id := range s.Handles().Bars {
		transform, ok := ecs.GetComponent[*components.TransformComponent](em, id)
		require.True(t, ok)

		wantY := params.SunCenterY - s.Preset().Animation.BarSpacing*float64(i) - 10*params.Velocity
		assert.InDelta(t, wantY, transform.Position.Y, 1e-4, "bar %d", i)
		assert.InDelta(t, 10*params.HeightDelta, transform.Scale.Y, 1e-4, "bar %d", i)
	}
}

func TestSynthwaveScene_ResizeAndDraw(t *testing.T) {
	s := newClassicScene(t, 320, 240)

	s.Resize(640, 360)

	assert.InDelta(t, 640.0/360.0, s.CameraSystem().Aspect(), 1e-6)
	assert.Equal(t, 640, s.Renderer().Surface().Bounds().Dx())

	screen := ebiten.NewImage(640, 360)
	s.showDebug = true
	s.Draw(screen) // 不应 panic
}

func TestSynthwaveScene_DebugText(t *testing.T) {
	s := newClassicScene(t, 320, 240)
	s.Update(1.0 / 60.0)

	text := s.debugText(60, 60)

	assert.Contains(t, text, "Preset: classic")
	assert.Contains(t, text, "Size: 320x240")
	assert.Contains(t, text, "Frame: 1")
	assert.Contains(t, text, "Bar 4:")
}

func TestSynthwaveScene_Close(t *testing.T) {
	s := newClassicScene(t, 320, 240)
	s.Close()

	assert.Nil(t, s.Renderer().Surface())
}
