//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 配置文件由 embed.go 从本目录的 data/ 嵌入，构建前需要复制：
//
//	cp -r data mobile/ && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.horde -o build/android/horde.aar -v ./mobile
//	cp -r data mobile/ && ebitenmobile bind -target ios -tags mobile -o build/ios/Horde.xcframework -v ./mobile
package mobile

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/horde/pkg/app"
	"github.com/decker502/horde/pkg/embedded"
)

func init() {
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose: true,
		Seed:    time.Now().UnixNano(),
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	ebiten.SetTPS(gameApp.TickRate())

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
