//go:build !mobile

// 桌面构建下 mobile 包只保留 Dummy，绑定入口见 mobile.go
package mobile

// Dummy 保证包在不带 mobile 标签时依然可以被引用
func Dummy() {}
