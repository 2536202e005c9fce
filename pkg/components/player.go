package components

// PlayerComponent 玩家标记、移动参数与生命值
// 经验、分数等成长数据由 game.PlayerState 维护
type PlayerComponent struct {
	Speed     float64 // 每步移动距离
	Health    int
	MaxHealth int
}
