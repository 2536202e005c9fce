// Package app 提供桌面端和移动端共用的游戏应用包装器
//
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/horde/internal/sfx"
	"github.com/decker502/horde/pkg/config"
	"github.com/decker502/horde/pkg/game"
	"github.com/decker502/horde/pkg/scenes"
	"github.com/decker502/horde/pkg/simulation"
)

// AppName gdata 存档目录名
const AppName = "horde"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 模拟随机种子
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *scenes.SceneManager
	settings     *game.SettingsManager
	board        *sfx.Board
	width        int
	height       int
	tickRate     int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 桌面端调用前应先调用 embedded.Init()；未初始化时使用内置默认配置。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	bundle, err := config.LoadEmbeddedBundle()
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	log.Printf("[App] Config: %s", bundle)

	world, err := simulation.NewWorld(simulation.Options{
		Seed:        cfg.Seed,
		Config:      bundle.Simulation,
		Tiers:       bundle.Tiers,
		Progression: bundle.Progression,
		Verbose:     cfg.Verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("世界创建失败: %w", err)
	}

	// gdata 初始化失败时降级运行：设置和战绩只保存在内存中
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] WARNING: gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}
	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置加载失败: %w", err)
	}
	records := game.NewRecordsManager(gdataManager)

	board := sfx.NewBoard()
	if err := board.Initialize(); err != nil {
		log.Printf("[App] Audio initialization failed, running silent: %v", err)
	}
	board.Attach(world.Events())
	applyAudio(board, settings.GetSettings())

	sceneManager := scenes.NewSceneManager()
	shared := &scenes.Shared{
		World:    world,
		Settings: settings,
		Records:  records,
		Scenes:   sceneManager,
		Input:    scenes.EbitenInput{},
		SettingsChanged: func(s *game.GameSettings) {
			applyAudio(board, s)
		},
	}
	running := scenes.NewRunningScene(shared)
	sceneManager.Register(scenes.SceneMainMenu, scenes.NewMainMenuScene(shared))
	sceneManager.Register(scenes.SceneRunning, running)
	sceneManager.Register(scenes.ScenePaused, scenes.NewPausedScene(shared, running))
	sceneManager.Switch(scenes.SceneMainMenu)

	sim := bundle.Simulation
	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		board:        board,
		width:        int(sim.World.Width * scenes.RenderScale),
		height:       int(sim.World.Height * scenes.RenderScale),
		tickRate:     sim.TickRate,
	}, nil
}

func applyAudio(board *sfx.Board, s *game.GameSettings) {
	board.SetEnabled(s.SoundEnabled)
	board.SetVolume(s.SoundVolume)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次，TPS 与模拟的 tickRate 一致
func (a *App) Update() error {
	// 退出全屏后需要等待几帧才能正确设置窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(1.0 / float64(a.tickRate))
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
	log.Printf("[App] Fullscreen: %v", fullscreen)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧留黑，使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸（世界尺寸乘以 RenderScale）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// WindowSize 窗口初始尺寸
func (a *App) WindowSize() (int, int) {
	return a.width, a.height
}

// TickRate 模拟每秒步数，用于 ebiten.SetTPS
func (a *App) TickRate() int {
	return a.tickRate
}

// Fullscreen 上次退出时是否处于全屏
func (a *App) Fullscreen() bool {
	return a.settings.GetSettings().Fullscreen
}

// Shutdown 保存战绩和设置并关闭音频
func (a *App) Shutdown() {
	if !a.sceneManager.SaveAll() {
		log.Printf("[App] Warning: some scenes failed to save")
	}
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
	a.board.Cleanup()
	log.Printf("[App] Shutdown complete")
}
