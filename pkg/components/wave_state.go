package components

// SpawnQueueEntry 待生成队列中的一项
type SpawnQueueEntry struct {
	TierName  string
	Remaining int // 剩余待生成数量，> 0
}

// WaveStateComponent 波次状态
// 存放在单例实体上，由 WaveSpawnSystem 读写
type WaveStateComponent struct {
	// CurrentWave 当前波次，0 表示尚未开始
	CurrentWave int

	// DelayRemaining 距离本波首次生成的剩余时间（秒）
	// 大于 0 时不生成
	DelayRemaining float64

	// SpawnQueue 待生成队列，每项数量不超过存活上限
	SpawnQueue []SpawnQueueEntry

	// SpawnTimer 距离下一次可生成的时间（秒）
	SpawnTimer float64

	// Active 是否已开始波次
	Active bool
}
