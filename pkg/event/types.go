package event

import "github.com/decker502/horde/pkg/ecs"

// 核心事件
const (
	AgentSpawned Type = "agent_spawned"
	AgentDamaged Type = "agent_damaged"
	AgentDied    Type = "agent_died"
	AgentGroaned Type = "agent_groaned"
	WaveStarted  Type = "wave_started"
	WaveCleared  Type = "wave_cleared"
)

// 进度与拾取事件
const (
	ExperienceGained Type = "experience_gained"
	OrbDropped       Type = "orb_dropped"
	OrbCollected     Type = "orb_collected"
	ChestSpawned     Type = "chest_spawned"
	ChestOpened      Type = "chest_opened"
	PlayerDamaged    Type = "player_damaged"
	PlayerDied       Type = "player_died"
	LevelUp          Type = "level_up"
)

// AgentSpawnedData 僵尸生成
type AgentSpawnedData struct {
	ID   ecs.EntityID
	Tier string
	X, Y float64
}

// AgentDamagedData 僵尸受到伤害
type AgentDamagedData struct {
	ID        ecs.EntityID
	Amount    int
	Health    int // 扣血后的生命值
	MaxHealth int
	X, Y      float64 // 受伤时的位置，供伤害数字和闪烁使用
}

// AgentDiedData 僵尸淡出结束并被移除
type AgentDiedData struct {
	ID   ecs.EntityID
	Tier string
	X, Y float64
}

// AgentGroanedData 僵尸发出呻吟
type AgentGroanedData struct {
	ID ecs.EntityID
}

// WaveData 波次开始/清空
type WaveData struct {
	Wave int
}

// ExperienceGainedData 击杀奖励
type ExperienceGainedData struct {
	Source ecs.EntityID
	Tier   string
	Score  int
	Blood  int
}

// OrbDroppedData 能量球掉落
type OrbDroppedData struct {
	OrbID ecs.EntityID
	X, Y  float64
}

// OrbCollectedData 能量球被拾取
type OrbCollectedData struct {
	OrbID      ecs.EntityID
	Experience int
}

// ChestData 宝箱生成/打开
type ChestData struct {
	ChestID ecs.EntityID
	X, Y    float64
}

// PlayerDamagedData 玩家受到接触伤害
type PlayerDamagedData struct {
	Source ecs.EntityID
	Amount int
	Health int
}

// PlayerDiedData 玩家死亡
type PlayerDiedData struct {
	Source ecs.EntityID // 造成致命伤害的僵尸
	Wave   int
}

// LevelUpData 玩家升级
type LevelUpData struct {
	Level int
}
