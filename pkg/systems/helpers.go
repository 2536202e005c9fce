package systems

import (
	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/ecs"
)

// simTime 返回世界时钟的当前时间（秒）
// 没有时钟实体时返回 0
func simTime(em *ecs.EntityManager) float64 {
	for _, id := range ecs.GetEntitiesWith1[*components.TimerComponent](em) {
		if timer, ok := ecs.GetComponent[*components.TimerComponent](em, id); ok {
			return timer.Elapsed
		}
	}
	return 0
}

// findPlayer 返回玩家实体及其位置
func findPlayer(em *ecs.EntityManager) (ecs.EntityID, *components.PlayerComponent, *components.PositionComponent, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](em) {
		player, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		return id, player, pos, true
	}
	return 0, nil, nil, false
}

// roamingZombie 返回处于游荡状态的僵尸组件
func roamingZombie(em *ecs.EntityManager, id ecs.EntityID) (*components.ZombieComponent, bool) {
	zombie, ok := ecs.GetComponent[*components.ZombieComponent](em, id)
	if !ok || zombie.State != components.ZombieRoaming {
		return nil, false
	}
	return zombie, true
}

// CountAliveZombies 统计存活僵尸数量（包含淡出中的僵尸）
func CountAliveZombies(em *ecs.EntityManager) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.ZombieComponent](em) {
		if !em.IsMarkedForDestruction(id) {
			n++
		}
	}
	return n
}
