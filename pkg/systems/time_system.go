package systems

import (
	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/ecs"
)

// TimeSystem 推进世界时钟
// 必须在每步的第一个系统中调用
type TimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewTimeSystem 创建时钟系统
func NewTimeSystem(em *ecs.EntityManager) *TimeSystem {
	return &TimeSystem{entityManager: em}
}

// Update 累加经过的时间和步数
func (s *TimeSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.TimerComponent](s.entityManager) {
		timer, ok := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)
		if !ok {
			continue
		}
		timer.Elapsed += deltaTime
		timer.Steps++
	}
}
