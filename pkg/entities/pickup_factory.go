package entities

import (
	"fmt"

	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/config"
	"github.com/decker502/horde/pkg/ecs"
)

// NewOrbEntity 在击杀位置创建能量球
// 能量球存在 orb.lifetimeMs 后自动消失
func NewOrbEntity(em *ecs.EntityManager, cfg *config.SimulationConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("config cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.PickupComponent{
		Kind:       components.PickupOrb,
		Experience: cfg.Orb.Experience,
	})
	ecs.AddComponent(em, id, &components.LifetimeComponent{
		MaxLifetime: config.Ms(cfg.Orb.LifetimeMs),
	})

	return id, nil
}

// NewChestEntity 创建宝箱
// 宝箱没有生命周期，直到被拾取或被下一波的宝箱替换
func NewChestEntity(em *ecs.EntityManager, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.PickupComponent{Kind: components.PickupChest})

	return id, nil
}
