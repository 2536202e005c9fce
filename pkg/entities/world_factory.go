package entities

import (
	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/config"
	"github.com/decker502/horde/pkg/ecs"
)

// NewPlayerEntity 在世界中心创建玩家
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.SimulationConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: cfg.World.Width / 2,
		Y: cfg.World.Height / 2,
	})
	ecs.AddComponent(em, id, &components.PlayerComponent{
		Speed:     cfg.Player.Speed,
		Health:    cfg.Player.MaxHealth,
		MaxHealth: cfg.Player.MaxHealth,
	})
	return id
}

// NewWaveStateEntity 创建波次状态单例
func NewWaveStateEntity(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.WaveStateComponent{})
	return id
}

// NewTimerEntity 创建世界时钟单例
func NewTimerEntity(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TimerComponent{})
	return id
}
