package systems

import (
	"math"

	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/ecs"
	"github.com/decker502/horde/pkg/utils"
)

// ZombieSteeringSystem 僵尸移动
//
// 每个游荡僵尸按顺序执行：
//  1. 沿路径向队首航点移动一个速度步长，足够接近时弹出航点
//  2. 根据步首快照计算群体避让位移
//  3. 限制在世界范围内
//  4. 更新朝向（下一个航点，没有路径时朝向玩家）
//
// 速度单位是每个固定步的像素数，与 deltaTime 无关。
type ZombieSteeringSystem struct {
	entityManager *ecs.EntityManager
	grid          utils.Grid
}

// NewZombieSteeringSystem 创建移动系统
func NewZombieSteeringSystem(em *ecs.EntityManager, grid utils.Grid) *ZombieSteeringSystem {
	return &ZombieSteeringSystem{
		entityManager: em,
		grid:          grid,
	}
}

// Update 移动所有游荡僵尸
func (s *ZombieSteeringSystem) Update(deltaTime float64) {
	snapshot := CaptureAvoidanceSnapshot(s.entityManager)
	_, _, playerPos, hasPlayer := findPlayer(s.entityManager)

	for _, id := range ecs.GetEntitiesWith2[*components.ZombieComponent, *components.PositionComponent](s.entityManager) {
		zombie, ok := roamingZombie(s.entityManager, id)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		path, _ := ecs.GetComponent[*components.PathComponent](s.entityManager, id)

		s.followPath(zombie, pos, path)

		if steering, ok := ecs.GetComponent[*components.SteeringComponent](s.entityManager, id); ok {
			if ax, ay, ok := snapshot.Repulsion(id, pos.X, pos.Y, steering.AvoidanceRadius); ok {
				pos.X += ax * zombie.Speed * steering.AvoidanceStrength
				pos.Y += ay * zombie.Speed * steering.AvoidanceStrength
			}
		}

		pos.X, pos.Y = s.grid.ClampWorld(pos.X, pos.Y)

		if path != nil && len(path.Waypoints) > 0 {
			tx, ty := s.grid.ToWorld(path.Waypoints[0])
			s.face(zombie, pos, tx, ty)
		} else if hasPlayer {
			s.face(zombie, pos, playerPos.X, playerPos.Y)
		}
	}
}

// followPath 向队首航点移动一步
func (s *ZombieSteeringSystem) followPath(zombie *components.ZombieComponent, pos *components.PositionComponent, path *components.PathComponent) {
	if path == nil || len(path.Waypoints) == 0 {
		return
	}

	tx, ty := s.grid.ToWorld(path.Waypoints[0])
	if nx, ny, ok := utils.Normalize(tx-pos.X, ty-pos.Y); ok {
		pos.X += nx * zombie.Speed
		pos.Y += ny * zombie.Speed
	}

	if math.Abs(pos.X-tx) < zombie.Speed && math.Abs(pos.Y-ty) < zombie.Speed {
		path.Waypoints = path.Waypoints[1:]
	}
}

func (s *ZombieSteeringSystem) face(zombie *components.ZombieComponent, pos *components.PositionComponent, tx, ty float64) {
	if angle, ok := utils.AngleDegrees(tx-pos.X, ty-pos.Y); ok {
		zombie.FacingDegrees = angle
	}
}
