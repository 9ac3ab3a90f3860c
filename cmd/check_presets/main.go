// cmd/check_presets/main.go
// 预设检查工具：校验预设文件，并模拟遮挡条动画输出每个遮挡条首次回到顶部的帧数
//
// 用法（在项目根目录运行）：
//
//	go run ./cmd/check_presets                       # 检查嵌入的 data/presets.yaml
//	go run ./cmd/check_presets --config=my.toml      # 检查外部预设文件
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/synthwave/pkg/config"
	"github.com/decker502/synthwave/pkg/embedded"
	"github.com/decker502/synthwave/pkg/systems"
)

var (
	configPath = flag.String("config", "", "预设文件路径（为空则检查 data/presets.yaml）")
	maxFrames  = flag.Int("frames", 2000, "最多模拟的帧数")
)

func main() {
	flag.Parse()

	embedded.Init(os.DirFS("."))

	var presets *config.PresetSet
	var err error
	if *configPath == "" {
		presets, err = config.LoadEmbeddedPresets()
	} else {
		presets, err = config.LoadPresetFile(*configPath)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Default preset: %s\n", presets.Default)
	for _, name := range presets.Names() {
		p := presets.Presets[name]
		fmt.Printf("\n[%s] %s\n", name, p.Description)
		fmt.Printf("  bloom: enabled=%v strength=%.2f threshold=%.2f radius=%.2f\n",
			p.Bloom.Enabled, p.Bloom.Strength, p.Bloom.Threshold, p.Bloom.Radius)
		fmt.Printf("  animation: velocity=%.3f heightDelta=%.3f spacing=%.2f\n",
			p.Animation.Velocity, p.Animation.HeightDelta, p.Animation.BarSpacing)

		for i, frame := range firstWrapFrames(p, *maxFrames) {
			if frame < 0 {
				fmt.Printf("  bar %d: no wrap within %d frames\n", i, *maxFrames)
				continue
			}
			fmt.Printf("  bar %d: first wrap at frame %d\n", i, frame)
		}
	}
}

// firstWrapFrames 模拟动画，返回每个遮挡条首次回绕的帧号（从 1 开始，未回绕为 -1）
func firstWrapFrames(p *config.Preset, maxFrames int) [config.BarCount]int {
	var result [config.BarCount]int
	for i := range result {
		result[i] = -1
	}

	params := p.AnimationParams()
	state := systems.NewBarAnimationState(p.Animation.BarHeights, p.Animation.BarSpacing, p.Sun.CenterY)
	for frame := 1; frame <= maxFrames; frame++ {
		for i := range state.Bars {
			if systems.StepBar(&state.Bars[i], params) && result[i] < 0 {
				result[i] = frame
			}
		}
	}
	return result
}
