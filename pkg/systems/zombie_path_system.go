package systems

import (
	"context"
	"log"

	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/ecs"
	"github.com/decker502/horde/pkg/pathfinding"
	"github.com/decker502/horde/pkg/utils"
)

// ZombiePathSystem 定时为僵尸重新寻路
//
// 每个游荡僵尸有独立的倒计时，到期时以 (自身格子, 玩家格子) 发起寻路。
// 同一步内到期的请求交给 Planner 批量计算，全部完成后统一写回，
// 因此本步的移动只会看到完整替换后的路径。
type ZombiePathSystem struct {
	entityManager *ecs.EntityManager
	grid          utils.Grid
	planner       *pathfinding.Planner

	// requests 复用的请求缓冲
	requests []pathfinding.Request

	verbose bool
}

// NewZombiePathSystem 创建寻路系统
func NewZombiePathSystem(em *ecs.EntityManager, grid utils.Grid, planner *pathfinding.Planner) *ZombiePathSystem {
	return &ZombiePathSystem{
		entityManager: em,
		grid:          grid,
		planner:       planner,
	}
}

// SetVerbose 设置是否输出每次批量寻路的日志
func (s *ZombiePathSystem) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// Update 推进寻路倒计时并执行到期的寻路
func (s *ZombiePathSystem) Update(deltaTime float64) {
	if err := s.UpdateContext(context.Background(), deltaTime); err != nil {
		log.Printf("[ZombiePathSystem] ERROR: %v", err)
	}
}

// UpdateContext 与 Update 相同，ctx 取消时放弃本批结果并返回错误，到期的僵尸下一步重新寻路
func (s *ZombiePathSystem) UpdateContext(ctx context.Context, deltaTime float64) error {
	_, _, playerPos, hasPlayer := findPlayer(s.entityManager)
	if !hasPlayer {
		return nil
	}
	goal := s.grid.Clamp(s.grid.ToGrid(playerPos.X, playerPos.Y))

	s.requests = s.requests[:0]
	for _, id := range ecs.GetEntitiesWith2[*components.PathComponent, *components.PositionComponent](s.entityManager) {
		if _, ok := roamingZombie(s.entityManager, id); !ok {
			continue
		}
		path, _ := ecs.GetComponent[*components.PathComponent](s.entityManager, id)

		path.RecomputeTimer -= deltaTime
		if path.RecomputeTimer > 0 {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		s.requests = append(s.requests, pathfinding.Request{
			Key:   uint64(id),
			Start: s.grid.Clamp(s.grid.ToGrid(pos.X, pos.Y)),
			Goal:  goal,
		})
	}

	if len(s.requests) == 0 {
		return nil
	}

	// 批次被取消时倒计时保持到期，下一步重试
	results, err := s.planner.PlanAll(ctx, s.requests)
	if err != nil {
		return err
	}

	for _, res := range results {
		path, ok := ecs.GetComponent[*components.PathComponent](s.entityManager, ecs.EntityID(res.Key))
		if !ok {
			continue
		}
		path.Waypoints = res.Path
		path.RecomputeTimer = path.RecomputeInterval
	}

	if s.verbose {
		log.Printf("[ZombiePathSystem] Planned %d paths toward (%d, %d)", len(results), goal.Col, goal.Row)
	}
	return nil
}
