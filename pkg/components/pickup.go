package components

// PickupKind 可拾取物类型
type PickupKind int

const (
	// PickupOrb 能量球：拾取获得经验
	PickupOrb PickupKind = iota
	// PickupChest 宝箱：每波最多一个，拾取后由外部解锁武器
	PickupChest
)

// PickupComponent 玩家靠近即可拾取的实体
type PickupComponent struct {
	Kind       PickupKind
	Experience int // 能量球提供的经验
}
