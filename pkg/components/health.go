package components

// HealthComponent 存储实体的生命值信息
// 用于僵尸等可被攻击的实体
type HealthComponent struct {
	CurrentHealth  int     // 当前生命值，始终在 [0, MaxHealth] 内
	MaxHealth      int     // 最大生命值
	LastDamageTime float64 // 最近一次受伤的模拟时间（秒），从未受伤为 -1
}
