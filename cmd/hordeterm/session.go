package main

import (
	"log"

	"github.com/decker502/horde/internal/tui"
	"github.com/decker502/horde/pkg/game"
	"github.com/decker502/horde/pkg/simulation"
)

// session 终端对局：把按键翻译成世界操作，按固定步推进并重绘
type session struct {
	world    *simulation.World
	renderer *tui.Renderer
	records  *game.RecordsManager // 可为 nil

	attackRadius float64
	attackDamage int
	moveRepeat   int // 一次按键移动的步数，终端按键重复频率远低于帧率

	recorded bool
}

// start 开始新的一局
func (s *session) start() {
	s.world.Restart()
	s.world.StartWave(1)
	s.recorded = false
	s.draw()
}

// handle 处理一个按键，返回 true 表示退出
func (s *session) handle(cmd tui.Command) bool {
	switch cmd.Action {
	case tui.ActionQuit:
		s.record()
		return true
	case tui.ActionRestart:
		s.record()
		s.start()
		return false
	case tui.ActionPause:
		if s.world.GameOver() {
			return false
		}
		if s.world.Paused() {
			s.world.Resume()
		} else {
			s.world.Pause()
		}
	case tui.ActionMove:
		if s.world.Paused() {
			return false
		}
		for i := 0; i < s.moveRepeat; i++ {
			s.world.MovePlayer(cmd.DX, cmd.DY)
		}
	case tui.ActionAttack:
		if s.world.Paused() || s.world.GameOver() {
			return false
		}
		x, y := s.world.PlayerPosition()
		s.world.DamageInRadius(x, y, s.attackRadius, s.attackDamage)
	default:
		return false
	}
	s.draw()
	return false
}

// tick 推进一步并重绘
func (s *session) tick() {
	if s.world.Step() && s.world.GameOver() {
		s.record()
	}
	s.draw()
}

func (s *session) draw() {
	if s.renderer != nil {
		s.renderer.Draw(s.world.Snapshot())
	}
}

// record 记录本局战绩，每局只记录一次
func (s *session) record() {
	if s.recorded || s.records == nil || s.world.Wave() == 0 {
		return
	}
	s.recorded = true
	ps := s.world.Player()
	if s.records.RecordGame(s.world.Wave(), ps.Score, ps.Kills) {
		log.Printf("[Session] New record: wave %d, score %d", s.world.Wave(), ps.Score)
	}
}
