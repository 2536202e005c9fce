package components

import "github.com/decker502/horde/pkg/utils"

// PathComponent 僵尸当前的寻路结果
//
// Waypoints 不含起点、包含终点，重新寻路时整体替换，
// 移动时只会弹出队首。
type PathComponent struct {
	Waypoints         []utils.GridCoord
	RecomputeTimer    float64 // 距下次重新寻路的剩余时间（秒）
	RecomputeInterval float64 // 重新寻路间隔（秒）
}
