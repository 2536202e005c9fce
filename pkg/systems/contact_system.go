package systems

import (
	"log"

	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/config"
	"github.com/decker502/horde/pkg/ecs"
	"github.com/decker502/horde/pkg/event"
	"github.com/decker502/horde/pkg/utils"
)

// ContactSystem 僵尸接触玩家造成伤害
// 每一步每个接触中的游荡僵尸造成一次 contactDamage
type ContactSystem struct {
	entityManager *ecs.EntityManager
	config        *config.SimulationConfig
	events        *event.Dispatcher
}

// NewContactSystem 创建接触伤害系统
func NewContactSystem(em *ecs.EntityManager, cfg *config.SimulationConfig, events *event.Dispatcher) *ContactSystem {
	return &ContactSystem{
		entityManager: em,
		config:        cfg,
		events:        events,
	}
}

// Update 检测接触并扣除玩家生命值
func (s *ContactSystem) Update(deltaTime float64) {
	_, player, playerPos, ok := findPlayer(s.entityManager)
	if !ok || player.Health <= 0 {
		return
	}

	radius := s.config.Zombie.ContactRadius
	damage := s.config.Zombie.ContactDamage
	if radius <= 0 || damage <= 0 {
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ZombieComponent, *components.PositionComponent](s.entityManager) {
		if _, ok := roamingZombie(s.entityManager, id); !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if utils.Distance(pos.X, pos.Y, playerPos.X, playerPos.Y) >= radius {
			continue
		}

		player.Health -= damage
		if player.Health < 0 {
			player.Health = 0
		}
		s.events.Emit(event.PlayerDamaged, event.PlayerDamagedData{
			Source: id,
			Amount: damage,
			Health: player.Health,
		})

		if player.Health == 0 {
			wave := 0
			if ws, ok := waveState(s.entityManager); ok {
				wave = ws.CurrentWave
			}
			log.Printf("[ContactSystem] Player killed by zombie %d in wave %d", id, wave)
			s.events.Emit(event.PlayerDied, event.PlayerDiedData{Source: id, Wave: wave})
			return
		}
	}
}
