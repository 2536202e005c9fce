package systems

import (
	"log"

	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/config"
	"github.com/decker502/horde/pkg/ecs"
	"github.com/decker502/horde/pkg/entities"
	"github.com/decker502/horde/pkg/event"
)

// ZombieDamageSystem 处理外部对僵尸造成的伤害
//
// 伤害来自核心之外（武器、投射物），因此本系统没有 Update，
// 只提供 TakeDamage 供调用方在步与步之间或步内调用。
type ZombieDamageSystem struct {
	entityManager *ecs.EntityManager
	config        *config.SimulationConfig
	tiers         *config.TierCatalogue
	events        *event.Dispatcher
}

// NewZombieDamageSystem 创建伤害系统
func NewZombieDamageSystem(em *ecs.EntityManager, cfg *config.SimulationConfig, tiers *config.TierCatalogue, events *event.Dispatcher) *ZombieDamageSystem {
	return &ZombieDamageSystem{
		entityManager: em,
		config:        cfg,
		tiers:         tiers,
		events:        events,
	}
}

// TakeDamage 对游荡僵尸造成伤害
//
// 生命值被限制在 [0, MaxHealth]。生命值降到 0 时僵尸进入淡出状态，
// 同时发出击杀奖励并在原地掉落能量球。
// 目标不存在或已在淡出中时不做任何处理并返回 false。
func (s *ZombieDamageSystem) TakeDamage(id ecs.EntityID, amount int) bool {
	zombie, ok := roamingZombie(s.entityManager, id)
	if !ok || s.entityManager.IsMarkedForDestruction(id) {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	if !ok {
		return false
	}

	health.CurrentHealth -= amount
	if health.CurrentHealth < 0 {
		health.CurrentHealth = 0
	}
	if health.CurrentHealth > health.MaxHealth {
		health.CurrentHealth = health.MaxHealth
	}
	health.LastDamageTime = simTime(s.entityManager)

	if bar, ok := ecs.GetComponent[*components.HealthBarComponent](s.entityManager, id); ok {
		bar.Visible = true
		bar.Remaining = config.Ms(s.config.Zombie.HealthBarVisibleMs)
	}

	data := event.AgentDamagedData{
		ID:        id,
		Amount:    amount,
		Health:    health.CurrentHealth,
		MaxHealth: health.MaxHealth,
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
		data.X, data.Y = pos.X, pos.Y
	}
	s.events.Emit(event.AgentDamaged, data)

	if health.CurrentHealth <= 0 {
		s.startFading(id, zombie)
	}
	return true
}

// startFading 切换到淡出状态并结算击杀
func (s *ZombieDamageSystem) startFading(id ecs.EntityID, zombie *components.ZombieComponent) {
	zombie.State = components.ZombieFading
	ecs.AddComponent(s.entityManager, id, &components.FadeComponent{
		Duration: config.Ms(s.config.Zombie.FadeDurationMs),
		Alpha:    1,
	})

	if bar, ok := ecs.GetComponent[*components.HealthBarComponent](s.entityManager, id); ok {
		bar.Visible = false
		bar.Remaining = 0
	}

	stats := s.tiers.Lookup(zombie.TierName)
	s.events.Emit(event.ExperienceGained, event.ExperienceGainedData{
		Source: id,
		Tier:   zombie.TierName,
		Score:  stats.Score,
		Blood:  stats.Blood,
	})

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	orbID, err := entities.NewOrbEntity(s.entityManager, s.config, pos.X, pos.Y)
	if err != nil {
		log.Printf("[ZombieDamageSystem] WARNING: failed to drop orb for zombie %d: %v", id, err)
		return
	}
	s.events.Emit(event.OrbDropped, event.OrbDroppedData{OrbID: orbID, X: pos.X, Y: pos.Y})
}
