package postprocess

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/synthwave/pkg/embedded"
)

// 着色器源文件（嵌入资源路径）
const (
	HighPassShaderPath    = "data/shaders/highpass.kage"
	BlurShaderPath        = "data/shaders/blur.kage"
	CompositeShaderPath   = "data/shaders/composite.kage"
	SunGradientShaderPath = "data/shaders/sun_gradient.kage"
)

// Shaders 编译后的全部着色器
type Shaders struct {
	HighPass    *ebiten.Shader // 亮度高通
	Blur        *ebiten.Shader // 可分离高斯模糊
	Composite   *ebiten.Shader // 基础画面 + 泛光
	SunGradient *ebiten.Shader // 太阳渐变材质
}

// LoadShaders 从嵌入资源读取并编译所有着色器
func LoadShaders() (*Shaders, error) {
	s := &Shaders{}
	targets := []struct {
		path   string
		shader **ebiten.Shader
	}{
		{HighPassShaderPath, &s.HighPass},
		{BlurShaderPath, &s.Blur},
		{CompositeShaderPath, &s.Composite},
		{SunGradientShaderPath, &s.SunGradient},
	}

	for _, t := range targets {
		shader, err := loadShader(t.path)
		if err != nil {
			return nil, err
		}
		*t.shader = shader
	}

	log.Printf("[Shaders] Compiled %d shaders", len(targets))
	return s, nil
}

func loadShader(path string) (*ebiten.Shader, error) {
	src, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shader %s: %w", path, err)
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader %s: %w", path, err)
	}
	return shader, nil
}
