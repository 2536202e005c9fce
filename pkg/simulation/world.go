// Package simulation 组装模拟核心：实体管理器、各系统、波次状态与玩家进度
//
// World 是唯一的模拟上下文，不使用任何全局变量。
// 所有方法都必须在同一个 goroutine 中调用；只有寻路在 Step 内部并行执行。
package simulation

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/config"
	"github.com/decker502/horde/pkg/ecs"
	"github.com/decker502/horde/pkg/entities"
	"github.com/decker502/horde/pkg/event"
	"github.com/decker502/horde/pkg/game"
	"github.com/decker502/horde/pkg/pathfinding"
	"github.com/decker502/horde/pkg/systems"
	"github.com/decker502/horde/pkg/utils"
)

// Options 创建 World 的参数，nil 字段使用默认值
type Options struct {
	Seed        int64
	Config      *config.SimulationConfig
	Tiers       *config.TierCatalogue
	Progression *config.ProgressionConfig

	// Context 用于取消寻路批次，nil 时使用 context.Background()
	Context context.Context

	// Verbose 打开逐次生成、寻路等高频日志
	Verbose bool
}

// World 模拟世界
type World struct {
	ctx    context.Context
	config *config.SimulationConfig
	tiers  *config.TierCatalogue
	grid   utils.Grid
	rng    *rand.Rand

	entityManager *ecs.EntityManager
	events        *event.Dispatcher
	player        *game.PlayerState

	timeSystem      *systems.TimeSystem
	healthBarSystem *systems.HealthBarSystem
	pathSystem      *systems.ZombiePathSystem
	steeringSystem  *systems.ZombieSteeringSystem
	groanSystem     *systems.ZombieGroanSystem
	damageSystem    *systems.ZombieDamageSystem
	fadeSystem      *systems.ZombieFadeSystem
	contactSystem   *systems.ContactSystem
	pickupSystem    *systems.PickupSystem
	lifetimeSystem  *systems.LifetimeSystem
	waveSystem      *systems.WaveSpawnSystem

	paused   bool
	gameOver bool
}

// NewWorld 创建世界，并生成玩家、时钟与波次状态单例
// 世界创建后处于第 0 波，调用 StartWave(1) 开始游戏。
func NewWorld(opts Options) (*World, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultSimulationConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	tiers := opts.Tiers
	if tiers == nil {
		tiers = config.DefaultTierCatalogue()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	em := ecs.NewEntityManager()
	events := event.NewDispatcher()
	grid := utils.NewGrid(cfg.World.Width, cfg.World.Height, cfg.World.GridResolution, cfg.World.CellSize)
	planner := pathfinding.NewPlanner(grid.Cols, grid.Rows, cfg.Pathfinding.Workers, cfg.Pathfinding.ParallelThreshold)
	rng := rand.New(rand.NewSource(opts.Seed))

	w := &World{
		ctx:           ctx,
		config:        cfg,
		tiers:         tiers,
		grid:          grid,
		rng:           rng,
		entityManager: em,
		events:        events,
		player:        game.NewPlayerState(opts.Progression, events),

		timeSystem:      systems.NewTimeSystem(em),
		healthBarSystem: systems.NewHealthBarSystem(em),
		pathSystem:      systems.NewZombiePathSystem(em, grid, planner),
		steeringSystem:  systems.NewZombieSteeringSystem(em, grid),
		groanSystem:     systems.NewZombieGroanSystem(em, rng, cfg, events),
		damageSystem:    systems.NewZombieDamageSystem(em, cfg, tiers, events),
		fadeSystem:      systems.NewZombieFadeSystem(em, events),
		contactSystem:   systems.NewContactSystem(em, cfg, events),
		pickupSystem:    systems.NewPickupSystem(em, cfg, events),
		lifetimeSystem:  systems.NewLifetimeSystem(em),
	}
	w.createSingletons()
	w.waveSystem = systems.NewWaveSpawnSystem(em, rng, cfg, tiers, events)
	w.pathSystem.SetVerbose(opts.Verbose)
	w.waveSystem.SetVerbose(opts.Verbose)

	events.Subscribe(event.PlayerDied, event.ListenerFunc(func(event.Event) {
		w.gameOver = true
	}))

	log.Printf("[World] Created: %.0fx%.0f world, %dx%d grid (cell %d), %d tiers, %d path workers, seed %d",
		cfg.World.Width, cfg.World.Height, grid.Cols, grid.Rows, grid.CellSize,
		tiers.Len(), planner.Workers(), opts.Seed)
	return w, nil
}

// createSingletons 创建玩家、时钟和波次状态实体
func (w *World) createSingletons() {
	entities.NewPlayerEntity(w.entityManager, w.config)
	entities.NewTimerEntity(w.entityManager)
	entities.NewWaveStateEntity(w.entityManager)
}

// Step 推进一个固定步长
//
// 顺序：时钟 → 血条 → 寻路（并行批次，全部完成后写回）→ 移动与避让 → 呻吟 →
// 淡出 → 接触伤害 → 拾取 → 物品寿命 → 删除边界 → 波次生成。
// 暂停或游戏结束时不推进，返回 false。
func (w *World) Step() bool {
	if w.paused || w.gameOver {
		return false
	}
	dt := w.config.StepSeconds()

	w.timeSystem.Update(dt)
	w.healthBarSystem.Update(dt)
	if err := w.pathSystem.UpdateContext(w.ctx, dt); err != nil {
		log.Printf("[World] WARNING: path batch aborted: %v", err)
	}
	w.steeringSystem.Update(dt)
	w.groanSystem.Update(dt)
	w.fadeSystem.Update(dt)
	w.contactSystem.Update(dt)
	w.pickupSystem.Update(dt)
	w.lifetimeSystem.Update(dt)

	w.entityManager.RemoveMarkedEntities()

	w.waveSystem.Update(dt)
	return true
}

// StartWave 开始第 n 波（n < 1 时按第 1 波处理）
func (w *World) StartWave(n int) {
	w.waveSystem.StartWave(n)
}

// DamageAgent 对游荡中的僵尸造成伤害
// 未知实体、非僵尸或淡出中的僵尸返回 false
func (w *World) DamageAgent(id ecs.EntityID, amount int) bool {
	return w.damageSystem.TakeDamage(id, amount)
}

// DamageInRadius 对 (x, y) 半径 radius 内所有游荡中的僵尸造成伤害
// 返回受到伤害的僵尸数，按 id 升序处理
func (w *World) DamageInRadius(x, y, radius float64, amount int) int {
	if radius <= 0 || amount <= 0 {
		return 0
	}
	hit := 0
	for _, id := range ecs.GetEntitiesWith2[*components.ZombieComponent, *components.PositionComponent](w.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](w.entityManager, id)
		if utils.Distance(pos.X, pos.Y, x, y) > radius {
			continue
		}
		if w.damageSystem.TakeDamage(id, amount) {
			hit++
		}
	}
	return hit
}

// NearestAgent 返回距离 (x, y) 不超过 radius 的最近游荡僵尸
func (w *World) NearestAgent(x, y, radius float64) (ecs.EntityID, bool) {
	var best ecs.EntityID
	bestDist := 0.0
	found := false
	for _, id := range ecs.GetEntitiesWith2[*components.ZombieComponent, *components.PositionComponent](w.entityManager) {
		zombie, _ := ecs.GetComponent[*components.ZombieComponent](w.entityManager, id)
		if zombie.State != components.ZombieRoaming {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](w.entityManager, id)
		if d := utils.Distance(pos.X, pos.Y, x, y); d <= radius && (!found || d < bestDist) {
			best, bestDist, found = id, d, true
		}
	}
	return best, found
}

// SetPlayerPosition 设置玩家位置（限制在世界范围内）
func (w *World) SetPlayerPosition(x, y float64) {
	pos, ok := w.playerPosition()
	if !ok {
		return
	}
	pos.X, pos.Y = w.grid.ClampWorld(x, y)
}

// PlayerPosition 玩家当前位置
func (w *World) PlayerPosition() (x, y float64) {
	if pos, ok := w.playerPosition(); ok {
		return pos.X, pos.Y
	}
	return 0, 0
}

// MovePlayer 沿 (dx, dy) 方向移动玩家一步，步长为玩家速度
// 方向向量为零或玩家已死亡时不移动
func (w *World) MovePlayer(dx, dy float64) {
	player, pos, ok := w.findPlayer()
	if !ok || player.Health <= 0 {
		return
	}
	nx, ny, ok := utils.Normalize(dx, dy)
	if !ok {
		return
	}
	pos.X, pos.Y = w.grid.ClampWorld(pos.X+nx*player.Speed, pos.Y+ny*player.Speed)
}

// Restart 立即移除所有实体（不经过淡出），回到第 0 波并重置玩家
// 调用方随后应调用 StartWave(1)
func (w *World) Restart() {
	removed := w.entityManager.EntityCount()
	w.entityManager.Clear()
	w.createSingletons()
	w.waveSystem.Reset()
	w.player.Reset()
	w.gameOver = false
	w.paused = false
	log.Printf("[World] Restarted (%d entities removed)", removed)
}

// Pause 暂停推进
func (w *World) Pause() { w.paused = true }

// Resume 恢复推进
func (w *World) Resume() { w.paused = false }

// Paused 是否暂停
func (w *World) Paused() bool { return w.paused }

// GameOver 玩家是否已死亡
func (w *World) GameOver() bool { return w.gameOver }

// Events 返回事件分发器，外部协作方通过它订阅事件
func (w *World) Events() *event.Dispatcher { return w.events }

// Player 返回玩家的局内进度
func (w *World) Player() *game.PlayerState { return w.player }

// Config 返回模拟配置（只读使用）
func (w *World) Config() *config.SimulationConfig { return w.config }

// Grid 返回寻路网格
func (w *World) Grid() utils.Grid { return w.grid }

// Wave 返回当前波次
func (w *World) Wave() int { return w.waveSystem.CurrentWave() }

// Steps 已执行的步数
func (w *World) Steps() int {
	for _, id := range ecs.GetEntitiesWith1[*components.TimerComponent](w.entityManager) {
		timer, _ := ecs.GetComponent[*components.TimerComponent](w.entityManager, id)
		return timer.Steps
	}
	return 0
}

// AliveCount 返回场上僵尸数（包含淡出中的）
func (w *World) AliveCount() int { return systems.CountAliveZombies(w.entityManager) }

// Agents 返回场上所有僵尸实体，按 id 升序
func (w *World) Agents() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.ZombieComponent](w.entityManager)
}

func (w *World) findPlayer() (*components.PlayerComponent, *components.PositionComponent, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](w.entityManager) {
		player, _ := ecs.GetComponent[*components.PlayerComponent](w.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](w.entityManager, id)
		return player, pos, true
	}
	return nil, nil, false
}

func (w *World) playerPosition() (*components.PositionComponent, bool) {
	_, pos, ok := w.findPlayer()
	return pos, ok
}
