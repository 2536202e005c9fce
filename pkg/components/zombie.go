package components

// ZombieState 僵尸状态
type ZombieState int

const (
	// ZombieRoaming 游荡：寻路、移动、避让、呻吟、可受伤
	ZombieRoaming ZombieState = iota
	// ZombieFading 淡出：冻结位置与生命值，透明度递减，结束后移除
	ZombieFading
)

// String 返回状态名
func (s ZombieState) String() string {
	switch s {
	case ZombieRoaming:
		return "roaming"
	case ZombieFading:
		return "fading"
	default:
		return "unknown"
	}
}

// ZombieComponent 僵尸核心数据
type ZombieComponent struct {
	TierName      string      // 等级键（a, b, c ...），属性从等级表查询
	State         ZombieState // 当前状态
	Speed         float64     // 每步移动距离
	FacingDegrees float64     // 朝向角度（atan2(-dy, dx)，度）
}
