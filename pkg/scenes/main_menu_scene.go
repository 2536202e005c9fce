package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MainMenuScene 主菜单：显示战绩和设置开关
type MainMenuScene struct {
	shared *Shared
}

// NewMainMenuScene 创建主菜单
func NewMainMenuScene(shared *Shared) *MainMenuScene {
	return &MainMenuScene{shared: shared}
}

// OnEnter 进入菜单时暂停世界，背景保持上一局的最后画面
func (s *MainMenuScene) OnEnter(from SceneID) {
	s.shared.World.Pause()
}

func (s *MainMenuScene) Update(deltaTime float64) {
	in := s.shared.Input
	settings := s.shared.Settings.GetSettings()

	switch {
	case anyJustPressed(in, ebiten.KeyEnter, ebiten.KeySpace):
		s.shared.Scenes.Switch(SceneRunning)
	case in.IsKeyJustPressed(ebiten.KeyM):
		s.shared.Settings.SetSoundEnabled(!settings.SoundEnabled)
		log.Printf("[MainMenuScene] Sound enabled: %v", settings.SoundEnabled)
		s.shared.saveSettings()
	case anyJustPressed(in, ebiten.KeyEqual, ebiten.KeyNumpadAdd):
		s.shared.Settings.SetSoundVolume(settings.SoundVolume + 0.1)
		s.shared.saveSettings()
	case anyJustPressed(in, ebiten.KeyMinus, ebiten.KeyNumpadSubtract):
		s.shared.Settings.SetSoundVolume(settings.SoundVolume - 0.1)
		s.shared.saveSettings()
	case in.IsKeyJustPressed(ebiten.KeyF):
		s.shared.Settings.SetShowFPS(!settings.ShowFPS)
		s.shared.saveSettings()
	}
}

func (s *MainMenuScene) Draw(screen *ebiten.Image) {
	drawWorld(screen, s.shared.World.Snapshot())
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), colorOverlay, false)

	y := h/2 - 4*lineHeight
	drawCentered(screen, "H O R D E", y, colorTextAccent)
	y += 2 * lineHeight
	for _, str := range menuLines(s.shared) {
		drawCentered(screen, str, y, colorText)
		y += lineHeight
	}
	y += lineHeight
	drawCentered(screen, "Enter  start     M  sound     +/-  volume     F  fps     F11  fullscreen", y, colorTextDim)
}

// menuLines 菜单中的战绩和设置
func menuLines(sh *Shared) []string {
	var lines []string
	if sh.Records != nil {
		r := sh.Records.Records()
		lines = append(lines,
			fmt.Sprintf("best wave %d   best score %d", r.BestWave, r.BestScore),
			fmt.Sprintf("games %d   total kills %d", r.GamesPlayed, r.TotalKills),
		)
	}

	settings := sh.Settings.GetSettings()
	sound := "off"
	if settings.SoundEnabled {
		sound = fmt.Sprintf("%.0f%%", settings.SoundVolume*100)
	}
	lines = append(lines, fmt.Sprintf("sound %s", sound))
	return lines
}
