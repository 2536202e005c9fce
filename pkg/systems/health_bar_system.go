package systems

import (
	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/ecs"
)

// HealthBarSystem 受伤血条计时
// 血条在受伤时由 ZombieDamageSystem 打开，显示时间用完后隐藏
type HealthBarSystem struct {
	entityManager *ecs.EntityManager
}

// NewHealthBarSystem 创建血条系统
func NewHealthBarSystem(em *ecs.EntityManager) *HealthBarSystem {
	return &HealthBarSystem{entityManager: em}
}

// Update 倒计时可见的血条
func (s *HealthBarSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.HealthBarComponent](s.entityManager) {
		if _, ok := roamingZombie(s.entityManager, id); !ok {
			continue
		}
		bar, _ := ecs.GetComponent[*components.HealthBarComponent](s.entityManager, id)
		if !bar.Visible {
			continue
		}

		bar.Remaining -= deltaTime
		if bar.Remaining <= 0 {
			bar.Remaining = 0
			bar.Visible = false
		}
	}
}
