package systems

import (
	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/config"
	"github.com/decker502/horde/pkg/ecs"
	"github.com/decker502/horde/pkg/event"
	"github.com/decker502/horde/pkg/utils"
)

// PickupSystem 玩家拾取能量球和宝箱
type PickupSystem struct {
	entityManager *ecs.EntityManager
	config        *config.SimulationConfig
	events        *event.Dispatcher
}

// NewPickupSystem 创建拾取系统
func NewPickupSystem(em *ecs.EntityManager, cfg *config.SimulationConfig, events *event.Dispatcher) *PickupSystem {
	return &PickupSystem{
		entityManager: em,
		config:        cfg,
		events:        events,
	}
}

// Update 拾取玩家范围内的物品
func (s *PickupSystem) Update(deltaTime float64) {
	_, player, playerPos, ok := findPlayer(s.entityManager)
	if !ok || player.Health <= 0 {
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PickupComponent, *components.PositionComponent](s.entityManager) {
		if s.entityManager.IsMarkedForDestruction(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if utils.Distance(pos.X, pos.Y, playerPos.X, playerPos.Y) >= s.config.Player.PickupRadius {
			continue
		}

		pickup, _ := ecs.GetComponent[*components.PickupComponent](s.entityManager, id)
		switch pickup.Kind {
		case components.PickupOrb:
			s.events.Emit(event.OrbCollected, event.OrbCollectedData{OrbID: id, Experience: pickup.Experience})
		case components.PickupChest:
			s.events.Emit(event.ChestOpened, event.ChestData{ChestID: id, X: pos.X, Y: pos.Y})
		}
		s.entityManager.DestroyEntity(id)
	}
}
