// 合成波落日：太阳、条纹遮挡条、霓虹网格和选择性泛光
//
// 用法：
//
//	go run . [--preset=bloom|classic] [--config=presets.toml --watch] [--verbose]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/synthwave/pkg/app"
	"github.com/decker502/synthwave/pkg/config"
	"github.com/decker502/synthwave/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "详细日志")
	presetName = flag.String("preset", "", "启动预设（bloom / classic，默认取预设文件的 default）")
	configPath = flag.String("config", "", "外部预设文件（.yaml 或 .toml）")
	watch      = flag.Bool("watch", false, "配置文件变化时自动重新加载（需要 --config）")
	width      = flag.Int("width", config.DefaultWindowWidth, "窗口宽度")
	height     = flag.Int("height", config.DefaultWindowHeight, "窗口高度")
	fullscreen = flag.Bool("fullscreen", false, "全屏启动")
	frames     = flag.Int("frames", 0, "运行指定帧数后退出（0 表示不限制）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Preset:     *presetName,
		ConfigPath: *configPath,
		Watch:      *watch,
		Width:      *width,
		Height:     *height,
		Frames:     *frames,
	})
	if err != nil {
		fatal("初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetFullscreen(*fullscreen)

	if err := ebiten.RunGame(gameApp); err != nil {
		gameApp.Close()
		fatal("运行失败: %v", err)
	}
}

// fatal 输出错误并退出（非 verbose 模式下日志已被丢弃，这里恢复到 stderr）
func fatal(format string, args ...any) {
	log.SetOutput(os.Stderr)
	log.Fatalf(format, args...)
}
