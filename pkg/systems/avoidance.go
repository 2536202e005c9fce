package systems

import (
	"math"

	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/ecs"
	"github.com/decker502/horde/pkg/utils"
)

type snapshotEntry struct {
	id   ecs.EntityID
	x, y float64
}

type bucketKey struct {
	bx, by int
}

// AvoidanceSnapshot 一步开始时所有游荡僵尸的位置
//
// 避让只读取快照，不读取本步中已经移动过的位置，
// 结果与僵尸的遍历顺序无关。快照按半径分桶，查询只检查相邻的 3x3 个桶。
type AvoidanceSnapshot struct {
	bucketSize float64
	buckets    map[bucketKey][]snapshotEntry
	count      int
}

// CaptureAvoidanceSnapshot 记录所有游荡僵尸的当前位置
// 淡出中的僵尸不参与避让
func CaptureAvoidanceSnapshot(em *ecs.EntityManager) *AvoidanceSnapshot {
	ids := ecs.GetEntitiesWith3[*components.ZombieComponent, *components.PositionComponent, *components.SteeringComponent](em)

	// 桶尺寸取最大避让半径，保证半径内的邻居都落在相邻桶中
	bucketSize := 1.0
	for _, id := range ids {
		steering, _ := ecs.GetComponent[*components.SteeringComponent](em, id)
		bucketSize = math.Max(bucketSize, steering.AvoidanceRadius)
	}

	snap := &AvoidanceSnapshot{
		bucketSize: bucketSize,
		buckets:    make(map[bucketKey][]snapshotEntry),
	}
	for _, id := range ids {
		if _, ok := roamingZombie(em, id); !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		key := snap.keyFor(pos.X, pos.Y)
		snap.buckets[key] = append(snap.buckets[key], snapshotEntry{id: id, x: pos.X, y: pos.Y})
		snap.count++
	}
	return snap
}

// Len 返回快照中的僵尸数量
func (s *AvoidanceSnapshot) Len() int {
	return s.count
}

func (s *AvoidanceSnapshot) keyFor(x, y float64) bucketKey {
	return bucketKey{
		bx: int(math.Floor(x / s.bucketSize)),
		by: int(math.Floor(y / s.bucketSize)),
	}
}

// Repulsion 计算 self 在 (x, y) 处受到的排斥方向
//
// 对每个距离在 (0, radius) 内的其他僵尸累加指向远离它的单位向量，
// 返回累加结果的单位向量。没有邻居或合力为零时返回 false。
// 距离恰好为 0 的重合僵尸不产生排斥。
func (s *AvoidanceSnapshot) Repulsion(self ecs.EntityID, x, y, radius float64) (float64, float64, bool) {
	if radius <= 0 || s.count == 0 {
		return 0, 0, false
	}

	var sumX, sumY float64
	center := s.keyFor(x, y)
	for bx := center.bx - 1; bx <= center.bx+1; bx++ {
		for by := center.by - 1; by <= center.by+1; by++ {
			for _, other := range s.buckets[bucketKey{bx: bx, by: by}] {
				if other.id == self {
					continue
				}
				dx, dy := x-other.x, y-other.y
				dist := utils.Length(dx, dy)
				if dist <= 0 || dist >= radius {
					continue
				}
				sumX += dx / dist
				sumY += dy / dist
			}
		}
	}

	return utils.Normalize(sumX, sumY)
}
