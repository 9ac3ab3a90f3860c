//go:build !mobile

package utils

import (
	"strings"
	"testing"
)

// TestIsMobile_Desktop 测试桌面端编译时 IsMobile() 返回 false
func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv(MobileEmulateEnv, "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}
}

// TestIsMobile_Emulate 测试通过环境变量模拟移动模式
func TestIsMobile_Emulate(t *testing.T) {
	t.Setenv(MobileEmulateEnv, "1")
	if !IsMobile() {
		t.Error("IsMobile() should return true when emulation is enabled")
	}
}

// TestPresetToggleRequested_NoInput 没有输入时不切换
func TestPresetToggleRequested_NoInput(t *testing.T) {
	t.Setenv(MobileEmulateEnv, "1")
	if PresetToggleRequested() {
		t.Error("PresetToggleRequested() should be false without input")
	}
	if IsAnyKeyJustPressed() {
		t.Error("IsAnyKeyJustPressed() with no keys should be false")
	}
}

// TestControlsHint 桌面与模拟移动模式的提示不同
func TestControlsHint(t *testing.T) {
	t.Setenv(MobileEmulateEnv, "")
	desktop := ControlsHint()
	if !strings.Contains(desktop, "[F11]") {
		t.Errorf("desktop hint should mention F11, got %q", desktop)
	}

	t.Setenv(MobileEmulateEnv, "1")
	if hint := ControlsHint(); !strings.Contains(hint, "[tap]") {
		t.Errorf("emulated mobile hint should mention tap, got %q", hint)
	}
}
