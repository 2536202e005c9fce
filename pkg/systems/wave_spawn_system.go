package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/config"
	"github.com/decker502/horde/pkg/ecs"
	"github.com/decker502/horde/pkg/entities"
	"github.com/decker502/horde/pkg/event"
)

// WaveSpawnSystem 波次调度与僵尸生成
//
// 职责：
//   - StartWave 计算本波的生成队列并设置开场延迟
//   - Update 在延迟结束后按固定间隔逐个生成僵尸，存活数不超过上限
//   - 队列为空且场上没有僵尸时清空本波并立即开始下一波
//
// 架构说明：
//   - 状态存放在 WaveStateComponent 单例上
//   - 在每步的删除边界之后运行，存活数不包含本步已移除的僵尸
//   - 存活数包含淡出中的僵尸
type WaveSpawnSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	config        *config.SimulationConfig
	tiers         *config.TierCatalogue
	events        *event.Dispatcher

	// stalled 本波是否已因生成失败而停滞（只记录一次日志）
	stalled bool

	verbose bool
}

// NewWaveSpawnSystem 创建波次生成系统
// 若实体管理器中没有波次状态单例则创建一个
func NewWaveSpawnSystem(em *ecs.EntityManager, rng *rand.Rand, cfg *config.SimulationConfig, tiers *config.TierCatalogue, events *event.Dispatcher) *WaveSpawnSystem {
	s := &WaveSpawnSystem{
		entityManager: em,
		rng:           rng,
		config:        cfg,
		tiers:         tiers,
		events:        events,
	}
	s.ensureState()
	return s
}

// SetVerbose 设置是否输出每次生成的日志
func (s *WaveSpawnSystem) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// waveState 返回波次状态单例
func waveState(em *ecs.EntityManager) (*components.WaveStateComponent, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.WaveStateComponent](em) {
		if ws, ok := ecs.GetComponent[*components.WaveStateComponent](em, id); ok {
			return ws, true
		}
	}
	return nil, false
}

func (s *WaveSpawnSystem) ensureState() *components.WaveStateComponent {
	if ws, ok := waveState(s.entityManager); ok {
		return ws
	}
	id := entities.NewWaveStateEntity(s.entityManager)
	ws, _ := ecs.GetComponent[*components.WaveStateComponent](s.entityManager, id)
	return ws
}

// State 返回当前波次状态（只读使用）
func (s *WaveSpawnSystem) State() components.WaveStateComponent {
	ws := s.ensureState()
	out := *ws
	out.SpawnQueue = append([]components.SpawnQueueEntry(nil), ws.SpawnQueue...)
	return out
}

// CurrentWave 返回当前波次
func (s *WaveSpawnSystem) CurrentWave() int {
	return s.ensureState().CurrentWave
}

// QueuedCount 返回本波剩余待生成数量
func (s *WaveSpawnSystem) QueuedCount() int {
	return queuedCount(s.ensureState().SpawnQueue)
}

func queuedCount(queue []components.SpawnQueueEntry) int {
	n := 0
	for _, e := range queue {
		n += e.Remaining
	}
	return n
}

// BuildSpawnQueue 计算第 wave 波的生成队列
//
// 总预算 budgetPerWave*wave 平均分给前 min(maxTypes, wave) 个等级（余数舍弃），
// 打乱顺序后把每个等级拆成不超过 maxAlive 的若干项。
// maxAlive <= 0 时不拆分。
func BuildSpawnQueue(rng *rand.Rand, wave, budgetPerWave, maxTypes, maxAlive int) []components.SpawnQueueEntry {
	tierCount := min(maxTypes, wave)
	if tierCount <= 0 {
		return nil
	}
	perTier := budgetPerWave * wave / tierCount
	if perTier <= 0 {
		return nil
	}

	keys := make([]string, tierCount)
	for i := range keys {
		keys[i] = config.TierKeyForIndex(i)
	}
	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

	var queue []components.SpawnQueueEntry
	for _, key := range keys {
		if maxAlive <= 0 {
			queue = append(queue, components.SpawnQueueEntry{TierName: key, Remaining: perTier})
			continue
		}
		for remaining := perTier; remaining > 0; {
			n := min(remaining, maxAlive)
			queue = append(queue, components.SpawnQueueEntry{TierName: key, Remaining: n})
			remaining -= n
		}
	}
	return queue
}

// StartWave 开始第 n 波
func (s *WaveSpawnSystem) StartWave(n int) {
	if n < 1 {
		log.Printf("[WaveSpawnSystem] WARNING: invalid wave %d, starting wave 1", n)
		n = 1
	}

	ws := s.ensureState()
	ws.CurrentWave = n
	ws.Active = true
	ws.DelayRemaining = config.Ms(s.config.Spawn.WaveDelayMs)
	ws.SpawnTimer = 0
	ws.SpawnQueue = BuildSpawnQueue(s.rng, n, s.config.Spawn.BudgetPerWave, s.config.Spawn.MaxTierTypes, s.config.Spawn.MaxAlive)
	s.stalled = false

	log.Printf("[WaveSpawnSystem] Starting wave %d: %d zombies in %d entries, delay %.1fs",
		n, queuedCount(ws.SpawnQueue), len(ws.SpawnQueue), ws.DelayRemaining)
	s.events.Emit(event.WaveStarted, event.WaveData{Wave: n})

	if from := s.config.Spawn.ChestFromWave; from > 0 && n >= from {
		s.spawnChest()
	}
}

// spawnChest 在世界中心生成宝箱，替换上一波未拾取的宝箱
func (s *WaveSpawnSystem) spawnChest() {
	for _, id := range ecs.GetEntitiesWith1[*components.PickupComponent](s.entityManager) {
		pickup, _ := ecs.GetComponent[*components.PickupComponent](s.entityManager, id)
		if pickup.Kind == components.PickupChest {
			s.entityManager.DestroyEntity(id)
		}
	}

	x, y := s.config.World.Width/2, s.config.World.Height/2
	id, err := entities.NewChestEntity(s.entityManager, x, y)
	if err != nil {
		log.Printf("[WaveSpawnSystem] WARNING: failed to spawn chest: %v", err)
		return
	}
	s.events.Emit(event.ChestSpawned, event.ChestData{ChestID: id, X: x, Y: y})
}

// Reset 回到第 0 波，清空队列并停止生成
func (s *WaveSpawnSystem) Reset() {
	ws := s.ensureState()
	*ws = components.WaveStateComponent{}
	s.stalled = false
}

// Update 推进开场延迟和生成间隔
func (s *WaveSpawnSystem) Update(deltaTime float64) {
	ws, ok := waveState(s.entityManager)
	if !ok || !ws.Active {
		return
	}

	if ws.DelayRemaining > 0 {
		ws.DelayRemaining -= deltaTime
		if ws.DelayRemaining > 0 {
			return
		}
		ws.DelayRemaining = 0
	}

	ws.SpawnTimer = max(ws.SpawnTimer-deltaTime, 0)
	if ws.SpawnTimer > 0 {
		return
	}

	alive := CountAliveZombies(s.entityManager)

	if len(ws.SpawnQueue) > 0 {
		if alive >= s.config.Spawn.MaxAlive {
			return
		}
		s.spawnFromQueue(ws)
		return
	}

	if alive == 0 {
		cleared := ws.CurrentWave
		log.Printf("[WaveSpawnSystem] Wave %d cleared", cleared)
		s.events.Emit(event.WaveCleared, event.WaveData{Wave: cleared})
		s.StartWave(cleared + 1)
	}
}

// spawnFromQueue 从随机一项中生成一个僵尸
func (s *WaveSpawnSystem) spawnFromQueue(ws *components.WaveStateComponent) {
	i := s.rng.Intn(len(ws.SpawnQueue))
	entry := &ws.SpawnQueue[i]

	x, y := s.randomEdgePosition()
	stats := s.tiers.Lookup(entry.TierName)
	id, err := entities.NewZombieEntity(s.entityManager, s.rng, s.config, stats, x, y)
	if err != nil {
		if !s.stalled {
			log.Printf("[WaveSpawnSystem] ERROR: cannot spawn tier %q, spawner stalled: %v", entry.TierName, err)
			s.stalled = true
		}
		return
	}

	// 保留队列中的等级键，未知键的属性已回退到最弱等级
	if zombie, ok := ecs.GetComponent[*components.ZombieComponent](s.entityManager, id); ok {
		zombie.TierName = entry.TierName
	}

	entry.Remaining--
	tier := entry.TierName
	if entry.Remaining <= 0 {
		ws.SpawnQueue = append(ws.SpawnQueue[:i], ws.SpawnQueue[i+1:]...)
	}
	ws.SpawnTimer = config.Ms(s.config.Spawn.IntervalMs)

	if s.verbose {
		log.Printf("[WaveSpawnSystem] Spawned %s zombie %d at (%.0f, %.0f), %d queued",
			tier, id, x, y, queuedCount(ws.SpawnQueue))
	}
	s.events.Emit(event.AgentSpawned, event.AgentSpawnedData{ID: id, Tier: tier, X: x, Y: y})
}

// randomEdgePosition 在世界四条边之一随机选择生成点
//
//	上: x ∈ [margin, W], y = margin
//	下: x ∈ [margin, W], y = H
//	左: x = 0, y ∈ [margin, H]
//	右: x = W, y ∈ [margin, H]
func (s *WaveSpawnSystem) randomEdgePosition() (float64, float64) {
	w := int(s.config.World.Width)
	h := int(s.config.World.Height)
	margin := s.config.Spawn.EdgeMargin

	switch s.rng.Intn(4) {
	case 0:
		return float64(s.randRange(margin, w)), float64(margin)
	case 1:
		return float64(s.randRange(margin, w)), float64(h)
	case 2:
		return 0, float64(s.randRange(margin, h))
	default:
		return float64(w), float64(s.randRange(margin, h))
	}
}

// randRange 返回 [lo, hi] 内的随机整数，hi < lo 时返回 hi
func (s *WaveSpawnSystem) randRange(lo, hi int) int {
	if hi < lo {
		return hi
	}
	return lo + s.rng.Intn(hi-lo+1)
}
