package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/simulation"
)

// RenderScale 世界坐标到逻辑屏幕坐标的缩放
const RenderScale = 0.5

const (
	// 鼠标点击的索敌半径与伤害（世界坐标）
	clickRadius = 40
	clickDamage = 50

	// 空格对玩家周围的范围攻击
	sweepRadius = 120
	sweepDamage = 20

	// 玩家死亡后停留在结算画面的时间
	gameOverDelay = 3.0
)

var (
	colorBackground = color.RGBA{R: 24, G: 28, B: 22, A: 255}
	colorPlayer     = color.RGBA{R: 90, G: 170, B: 255, A: 255}
	colorOrb        = color.RGBA{R: 80, G: 230, B: 230, A: 255}
	colorChest      = color.RGBA{R: 220, G: 170, B: 40, A: 255}
	colorBarBack    = color.RGBA{R: 120, G: 20, B: 20, A: 255}
	colorBarFill    = color.RGBA{R: 60, G: 220, B: 60, A: 255}
)

// RunningScene 游戏进行中：读取输入、推进世界、绘制实体和 HUD
type RunningScene struct {
	shared *Shared
	run    run

	gameOverTimer float64
}

// NewRunningScene 创建游戏场景
func NewRunningScene(shared *Shared) *RunningScene {
	return &RunningScene{shared: shared}
}

// OnEnter 从暂停返回时继续，否则开始新的一局
func (s *RunningScene) OnEnter(from SceneID) {
	w := s.shared.World
	if from == ScenePaused && !w.GameOver() {
		w.Resume()
		return
	}
	w.Restart()
	w.StartWave(1)
	s.run = run{}
	s.gameOverTimer = 0
	log.Printf("[RunningScene] New run started")
}

// Update 处理输入并推进一步
func (s *RunningScene) Update(deltaTime float64) {
	w := s.shared.World
	in := s.shared.Input

	if w.GameOver() {
		s.run.finish(s.shared)
		s.gameOverTimer += deltaTime
		if s.gameOverTimer >= gameOverDelay || anyJustPressed(in, ebiten.KeyEnter, ebiten.KeyEscape) {
			s.shared.Scenes.Switch(SceneMainMenu)
		}
		return
	}

	if anyJustPressed(in, ebiten.KeyEscape, ebiten.KeyP) {
		w.Pause()
		s.shared.Scenes.Switch(ScenePaused)
		return
	}

	if dx, dy := moveDirection(in); dx != 0 || dy != 0 {
		w.MovePlayer(dx, dy)
	}
	if in.IsKeyJustPressed(ebiten.KeySpace) {
		px, py := w.PlayerPosition()
		w.DamageInRadius(px, py, sweepRadius, sweepDamage)
	}
	if x, y, ok := in.LeftClick(); ok {
		s.attackAt(float64(x)/RenderScale, float64(y)/RenderScale)
	}

	w.Step()
	if w.GameOver() {
		s.run.finish(s.shared)
	}
}

// attackAt 攻击点击位置最近的僵尸
func (s *RunningScene) attackAt(x, y float64) {
	if id, ok := s.shared.World.NearestAgent(x, y, clickRadius); ok {
		s.shared.World.DamageAgent(id, clickDamage)
	}
}

// SaveOnExit 窗口关闭时记录未结束的一局
func (s *RunningScene) SaveOnExit() bool {
	s.run.finish(s.shared)
	return true
}

// Draw 绘制世界和 HUD
func (s *RunningScene) Draw(screen *ebiten.Image) {
	snap := s.shared.World.Snapshot()
	drawWorld(screen, snap)

	for i, line := range hudLines(snap) {
		drawText(screen, line, 8, 6+float64(i*lineHeight), colorText)
	}
	if s.shared.Settings.GetSettings().ShowFPS {
		drawText(screen, fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
			float64(screen.Bounds().Dx())-130, 6, colorTextDim)
	}

	if snap.GameOver {
		vector.DrawFilledRect(screen, 0, 0, float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()), colorOverlay, false)
		h := float64(screen.Bounds().Dy())
		drawCentered(screen, "GAME OVER", h/2-lineHeight, colorTextAccent)
		drawCentered(screen, fmt.Sprintf("wave %d   score %d", snap.Wave, snap.Player.Score), h/2+4, colorText)
	}
}

// drawWorld 绘制拾取物、僵尸和玩家
func drawWorld(screen *ebiten.Image, snap simulation.Snapshot) {
	screen.Fill(colorBackground)
	const sc = RenderScale

	for _, p := range snap.Pickups {
		x, y := float32(p.X*sc), float32(p.Y*sc)
		switch p.Kind {
		case components.PickupOrb:
			vector.DrawFilledCircle(screen, x, y, 3, colorOrb, true)
		case components.PickupChest:
			vector.DrawFilledRect(screen, x-7, y-5, 14, 10, colorChest, false)
		}
	}

	for _, a := range snap.Agents {
		x, y := float32(a.X*sc), float32(a.Y*sc)
		vector.DrawFilledCircle(screen, x, y, 6, tierColor(a.Tier, a.Alpha), true)

		if a.State == components.ZombieRoaming {
			fx, fy := facing(a.FacingDegrees)
			vector.StrokeLine(screen, x, y, x+fx*9, y+fy*9, 1.5, colorText, true)
		}
		if a.HealthBarVisible && a.MaxHealth > 0 {
			ratio := float32(a.Health) / float32(a.MaxHealth)
			vector.DrawFilledRect(screen, x-8, y-12, 16, 3, colorBarBack, false)
			vector.DrawFilledRect(screen, x-8, y-12, 16*ratio, 3, colorBarFill, false)
		}
	}

	px, py := float32(snap.Player.X*sc), float32(snap.Player.Y*sc)
	vector.DrawFilledCircle(screen, px, py, 7, colorPlayer, true)
}
