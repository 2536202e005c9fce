package simulation

import (
	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/ecs"
)

// AgentView 僵尸的只读视图，供渲染方使用
type AgentView struct {
	ID               ecs.EntityID
	Tier             string
	X, Y             float64
	Health           int
	MaxHealth        int
	State            components.ZombieState
	Alpha            float64 // 游荡时为 1，淡出时从 1 递减到 0
	HealthBarVisible bool
	FacingDegrees    float64
}

// PickupView 能量球或宝箱
type PickupView struct {
	ID   ecs.EntityID
	Kind components.PickupKind
	X, Y float64
}

// PlayerView 玩家状态
type PlayerView struct {
	X, Y       float64
	Health     int
	MaxHealth  int
	Score      int
	Kills      int
	Level      int
	Experience int
	NextLevel  int // 升到下一级所需经验，满级时为 0
}

// Snapshot 一步结束时的世界状态
type Snapshot struct {
	Steps    int
	Elapsed  float64 // 秒
	Wave     int
	Queued   int // 本波尚未生成的僵尸数
	Alive    int // 包含淡出中的僵尸
	Paused   bool
	GameOver bool

	Width, Height float64

	Agents  []AgentView // 按 id 升序
	Pickups []PickupView
	Player  PlayerView
}

// Snapshot 拷贝当前世界状态，返回值与世界不共享内存
func (w *World) Snapshot() Snapshot {
	em := w.entityManager
	snap := Snapshot{
		Wave:     w.waveSystem.CurrentWave(),
		Queued:   w.waveSystem.QueuedCount(),
		Paused:   w.paused,
		GameOver: w.gameOver,
		Width:    w.config.World.Width,
		Height:   w.config.World.Height,
	}

	for _, id := range ecs.GetEntitiesWith1[*components.TimerComponent](em) {
		timer, _ := ecs.GetComponent[*components.TimerComponent](em, id)
		snap.Steps = timer.Steps
		snap.Elapsed = timer.Elapsed
		break
	}

	for _, id := range ecs.GetEntitiesWith3[*components.ZombieComponent, *components.PositionComponent, *components.HealthComponent](em) {
		if em.IsMarkedForDestruction(id) {
			continue
		}
		zombie, _ := ecs.GetComponent[*components.ZombieComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](em, id)

		view := AgentView{
			ID:            id,
			Tier:          zombie.TierName,
			X:             pos.X,
			Y:             pos.Y,
			Health:        health.CurrentHealth,
			MaxHealth:     health.MaxHealth,
			State:         zombie.State,
			Alpha:         1,
			FacingDegrees: zombie.FacingDegrees,
		}
		if bar, ok := ecs.GetComponent[*components.HealthBarComponent](em, id); ok {
			view.HealthBarVisible = bar.Visible
		}
		if fade, ok := ecs.GetComponent[*components.FadeComponent](em, id); ok {
			view.Alpha = fade.Alpha
		}
		snap.Agents = append(snap.Agents, view)
	}
	snap.Alive = len(snap.Agents)

	for _, id := range ecs.GetEntitiesWith2[*components.PickupComponent, *components.PositionComponent](em) {
		if em.IsMarkedForDestruction(id) {
			continue
		}
		pickup, _ := ecs.GetComponent[*components.PickupComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		snap.Pickups = append(snap.Pickups, PickupView{ID: id, Kind: pickup.Kind, X: pos.X, Y: pos.Y})
	}

	if player, pos, ok := w.findPlayer(); ok {
		snap.Player.X, snap.Player.Y = pos.X, pos.Y
		snap.Player.Health = player.Health
		snap.Player.MaxHealth = player.MaxHealth
	}
	ps := w.player
	snap.Player.Score = ps.Score
	snap.Player.Kills = ps.Kills
	snap.Player.Level = ps.Level
	snap.Player.Experience = ps.Experience
	if next, ok := ps.NextThreshold(); ok {
		snap.Player.NextLevel = next
	}
	return snap
}
