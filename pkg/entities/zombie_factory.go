package entities

import (
	"fmt"
	"math/rand"

	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/config"
	"github.com/decker502/horde/pkg/ecs"
)

// NewZombieEntity 创建一个游荡状态的僵尸
//
// 参数:
//   - em: 实体管理器
//   - rng: 模拟随机源，用于错开寻路时刻和呻吟时刻
//   - cfg: 模拟配置
//   - tier: 僵尸等级属性
//   - x, y: 生成位置（世界坐标）
//
// 初始路径为空，寻路倒计时在 [0, 间隔] 内均匀随机，
// 避免同一批生成的僵尸在同一帧集中寻路。
func NewZombieEntity(em *ecs.EntityManager, rng *rand.Rand, cfg *config.SimulationConfig, tier config.TierStats, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if rng == nil || cfg == nil {
		return 0, fmt.Errorf("rng and config cannot be nil")
	}
	if tier.Name == "" {
		return 0, fmt.Errorf("tier stats are empty")
	}

	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.ZombieComponent{
		TierName: tier.Name,
		State:    components.ZombieRoaming,
		Speed:    tier.Speed,
	})
	ecs.AddComponent(em, id, &components.HealthComponent{
		CurrentHealth:  tier.MaxHealth,
		MaxHealth:      tier.MaxHealth,
		LastDamageTime: -1,
	})

	interval := config.Ms(cfg.Zombie.PathIntervalMs)
	ecs.AddComponent(em, id, &components.PathComponent{
		RecomputeTimer:    rng.Float64() * interval,
		RecomputeInterval: interval,
	})
	ecs.AddComponent(em, id, &components.SteeringComponent{
		AvoidanceRadius:   cfg.Zombie.AvoidanceRadius,
		AvoidanceStrength: cfg.Zombie.AvoidanceStrength,
	})
	ecs.AddComponent(em, id, &components.HealthBarComponent{})
	ecs.AddComponent(em, id, &components.GroanComponent{
		Countdown: RandomGroanInterval(rng, cfg),
	})

	return id, nil
}

// RandomGroanInterval 在 [groanMin, groanMax] 内随机下一次呻吟间隔（秒）
func RandomGroanInterval(rng *rand.Rand, cfg *config.SimulationConfig) float64 {
	lo, hi := cfg.Zombie.GroanMinMs, cfg.Zombie.GroanMaxMs
	if hi <= lo {
		return config.Ms(lo)
	}
	return config.Ms(lo + rng.Intn(hi-lo+1))
}
