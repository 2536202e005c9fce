package systems

import (
	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/ecs"
	"github.com/decker502/horde/pkg/event"
)

// ZombieFadeSystem 淡出计时
// 淡出期间位置和生命值冻结，只更新透明度；结束后发出 AgentDied 并标记删除。
type ZombieFadeSystem struct {
	entityManager *ecs.EntityManager
	events        *event.Dispatcher
}

// NewZombieFadeSystem 创建淡出系统
func NewZombieFadeSystem(em *ecs.EntityManager, events *event.Dispatcher) *ZombieFadeSystem {
	return &ZombieFadeSystem{
		entityManager: em,
		events:        events,
	}
}

// Update 推进所有淡出中的僵尸
func (s *ZombieFadeSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.FadeComponent, *components.ZombieComponent](s.entityManager) {
		if s.entityManager.IsMarkedForDestruction(id) {
			continue
		}
		fade, _ := ecs.GetComponent[*components.FadeComponent](s.entityManager, id)

		fade.Elapsed += deltaTime
		if fade.Elapsed < fade.Duration {
			fade.Alpha = 1 - fade.Elapsed/fade.Duration
			continue
		}

		fade.Alpha = 0
		zombie, _ := ecs.GetComponent[*components.ZombieComponent](s.entityManager, id)
		data := event.AgentDiedData{ID: id, Tier: zombie.TierName}
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
			data.X, data.Y = pos.X, pos.Y
		}
		s.events.Emit(event.AgentDied, data)
		s.entityManager.DestroyEntity(id)
	}
}
