//go:build mobile

package utils

// IsMobile 移动端编译时恒为 true
func IsMobile() bool {
	return true
}

// ControlsHint 返回调试面板底部的操作提示
// 移动端只有触摸：轻触切换预设
func ControlsHint() string {
	return "[tap] preset"
}
