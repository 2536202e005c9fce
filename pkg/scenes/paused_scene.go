package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PausedScene 暂停覆盖层，下面仍绘制冻结的世界
type PausedScene struct {
	shared  *Shared
	running *RunningScene
}

// NewPausedScene 创建暂停场景
func NewPausedScene(shared *Shared, running *RunningScene) *PausedScene {
	return &PausedScene{shared: shared, running: running}
}

func (s *PausedScene) Update(deltaTime float64) {
	in := s.shared.Input
	switch {
	case anyJustPressed(in, ebiten.KeyEscape, ebiten.KeyP, ebiten.KeyEnter):
		s.shared.Scenes.Switch(SceneRunning)
	case in.IsKeyJustPressed(ebiten.KeyQ):
		s.running.run.finish(s.shared)
		s.shared.Scenes.Switch(SceneMainMenu)
	}
}

func (s *PausedScene) Draw(screen *ebiten.Image) {
	s.running.Draw(screen)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), colorOverlay, false)
	drawCentered(screen, "PAUSED", float64(h)/2-lineHeight, colorTextAccent)
	drawCentered(screen, "Esc / P / Enter  resume     Q  quit to menu", float64(h)/2+4, colorText)
}
