//go:build !mobile

// stub.go - 普通构建时的占位文件
//
// 绑定入口在 mobile.go 和 embed.go，仅在 -tags mobile 时编译。
package mobile

// Dummy 与移动端构建导出相同的符号
func Dummy() {}
