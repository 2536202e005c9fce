package systems

import (
	"math/rand"

	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/config"
	"github.com/decker502/horde/pkg/ecs"
	"github.com/decker502/horde/pkg/entities"
	"github.com/decker502/horde/pkg/event"
)

// ZombieGroanSystem 僵尸呻吟
// 每个游荡僵尸独立倒计时，到期时发出 AgentGroaned 并重新随机下一次间隔。
// 播放声音由订阅方负责。
type ZombieGroanSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	config        *config.SimulationConfig
	events        *event.Dispatcher
}

// NewZombieGroanSystem 创建呻吟系统
func NewZombieGroanSystem(em *ecs.EntityManager, rng *rand.Rand, cfg *config.SimulationConfig, events *event.Dispatcher) *ZombieGroanSystem {
	return &ZombieGroanSystem{
		entityManager: em,
		rng:           rng,
		config:        cfg,
		events:        events,
	}
}

// Update 更新呻吟倒计时
func (s *ZombieGroanSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.GroanComponent](s.entityManager) {
		if _, ok := roamingZombie(s.entityManager, id); !ok {
			continue
		}
		groan, _ := ecs.GetComponent[*components.GroanComponent](s.entityManager, id)

		groan.Countdown -= deltaTime
		if groan.Countdown > 0 {
			continue
		}

		s.events.Emit(event.AgentGroaned, event.AgentGroanedData{ID: id})
		groan.Countdown = entities.RandomGroanInterval(s.rng, s.config)
	}
}
