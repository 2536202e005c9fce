package config

import (
	"fmt"
	"os"
	"time"

	"github.com/decker502/horde/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// SimulationConfigPath 内置模拟配置在嵌入文件系统中的路径
const SimulationConfigPath = "data/simulation.yaml"

// SimulationConfig 模拟世界的全部可调参数
// 时间类参数在 YAML 中以毫秒表示，系统内部使用 Duration 辅助方法换算为秒
type SimulationConfig struct {
	TickRate    int               `yaml:"tickRate"` // 每秒固定步数
	World       WorldConfig       `yaml:"world"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Zombie      ZombieConfig      `yaml:"zombie"`
	Player      PlayerConfig      `yaml:"player"`
	Orb         OrbConfig         `yaml:"orb"`
	Pathfinding PathfindingConfig `yaml:"pathfinding"`
}

// WorldConfig 世界尺寸与网格
type WorldConfig struct {
	Width          float64 `yaml:"width"`          // 世界宽度（像素）
	Height         float64 `yaml:"height"`         // 世界高度（像素）
	GridResolution int     `yaml:"gridResolution"` // 计算网格行列数时使用的除数
	CellSize       int     `yaml:"cellSize"`       // 世界坐标换算到网格坐标时使用的除数
}

// SpawnConfig 波次与生成参数
type SpawnConfig struct {
	IntervalMs    int `yaml:"intervalMs"`    // 两次生成之间的最小间隔
	MaxAlive      int `yaml:"maxAlive"`      // 同时存活僵尸上限
	WaveDelayMs   int `yaml:"waveDelayMs"`   // 波次开始到首次生成的延迟
	BudgetPerWave int `yaml:"budgetPerWave"` // 第 n 波总预算 = n * budgetPerWave
	MaxTierTypes  int `yaml:"maxTierTypes"`  // 单波最多参与的僵尸种类数
	EdgeMargin    int `yaml:"edgeMargin"`    // 边缘生成点离角落的最小距离
	ChestFromWave int `yaml:"chestFromWave"` // 从第几波开始在波次开始时生成宝箱
}

// ZombieConfig 僵尸行为参数
type ZombieConfig struct {
	AvoidanceRadius    float64 `yaml:"avoidanceRadius"`
	AvoidanceStrength  float64 `yaml:"avoidanceStrength"`
	FadeDurationMs     int     `yaml:"fadeDurationMs"`
	HealthBarVisibleMs int     `yaml:"healthBarVisibleMs"`
	PathIntervalMs     int     `yaml:"pathIntervalMs"`
	GroanMinMs         int     `yaml:"groanMinMs"`
	GroanMaxMs         int     `yaml:"groanMaxMs"`
	ContactRadius      float64 `yaml:"contactRadius"` // 与玩家的接触距离
	ContactDamage      int     `yaml:"contactDamage"` // 接触时每步对玩家造成的伤害
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	Speed        float64 `yaml:"speed"`
	MaxHealth    int     `yaml:"maxHealth"`
	PickupRadius float64 `yaml:"pickupRadius"`
}

// OrbConfig 能量球参数
type OrbConfig struct {
	LifetimeMs int `yaml:"lifetimeMs"`
	Experience int `yaml:"experience"`
}

// PathfindingConfig 批量寻路参数
type PathfindingConfig struct {
	Workers           int `yaml:"workers"`           // 0 表示使用 GOMAXPROCS
	ParallelThreshold int `yaml:"parallelThreshold"` // 单帧请求数达到该值才并行
}

// DefaultSimulationConfig 返回与 data/simulation.yaml 一致的默认配置
func DefaultSimulationConfig() *SimulationConfig {
	return &SimulationConfig{
		TickRate: 60,
		World: WorldConfig{
			Width:          2020,
			Height:         1180,
			GridResolution: 16,
			CellSize:       32,
		},
		Spawn: SpawnConfig{
			IntervalMs:    450,
			MaxAlive:      100,
			WaveDelayMs:   10000,
			BudgetPerWave: 25,
			MaxTierTypes:  26,
			EdgeMargin:    50,
			ChestFromWave: 2,
		},
		Zombie: ZombieConfig{
			AvoidanceRadius:    5,
			AvoidanceStrength:  0.6,
			FadeDurationMs:     150,
			HealthBarVisibleMs: 120,
			PathIntervalMs:     1500,
			GroanMinMs:         1000,
			GroanMaxMs:         30000,
			ContactRadius:      24,
			ContactDamage:      25,
		},
		Player: PlayerConfig{
			Speed:        0.7,
			MaxHealth:    7500,
			PickupRadius: 32,
		},
		Orb: OrbConfig{
			LifetimeMs: 10000 * 1000,
			Experience: 1,
		},
		Pathfinding: PathfindingConfig{
			Workers:           0,
			ParallelThreshold: 32,
		},
	}
}

// Ms 把毫秒换算为秒
func Ms(ms int) float64 {
	return float64(ms) / 1000.0
}

// StepDuration 单个固定步的时长
func (c *SimulationConfig) StepDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// StepSeconds 单个固定步的时长（秒）
func (c *SimulationConfig) StepSeconds() float64 {
	return c.StepDuration().Seconds()
}

// ParseSimulationConfig 从 YAML 字节解析模拟配置
// 未出现在 YAML 中的字段保持默认值
func ParseSimulationConfig(data []byte) (*SimulationConfig, error) {
	cfg := DefaultSimulationConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	return cfg, nil
}

// LoadSimulationConfig 从磁盘加载模拟配置
func LoadSimulationConfig(path string) (*SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read simulation config file %s: %w", path, err)
	}

	cfg, err := ParseSimulationConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadEmbeddedSimulationConfig 从嵌入资源加载模拟配置
func LoadEmbeddedSimulationConfig() (*SimulationConfig, error) {
	data, err := embedded.ReadFile(SimulationConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded simulation config: %w", err)
	}
	return ParseSimulationConfig(data)
}

// Validate 验证配置的合法性
//
// MaxAlive 允许为 0（生成器停滞但不会出错），负数视为非法。
func (c *SimulationConfig) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tickRate must be positive, got %d", c.TickRate)
	}

	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %.0fx%.0f", c.World.Width, c.World.Height)
	}
	if c.World.GridResolution <= 0 {
		return fmt.Errorf("world.gridResolution must be positive, got %d", c.World.GridResolution)
	}
	if c.World.CellSize <= 0 {
		return fmt.Errorf("world.cellSize must be positive, got %d", c.World.CellSize)
	}

	if c.Spawn.IntervalMs < 0 {
		return fmt.Errorf("spawn.intervalMs cannot be negative, got %d", c.Spawn.IntervalMs)
	}
	if c.Spawn.MaxAlive < 0 {
		return fmt.Errorf("spawn.maxAlive cannot be negative, got %d", c.Spawn.MaxAlive)
	}
	if c.Spawn.WaveDelayMs < 0 {
		return fmt.Errorf("spawn.waveDelayMs cannot be negative, got %d", c.Spawn.WaveDelayMs)
	}
	if c.Spawn.BudgetPerWave < 0 {
		return fmt.Errorf("spawn.budgetPerWave cannot be negative, got %d", c.Spawn.BudgetPerWave)
	}
	if c.Spawn.MaxTierTypes < 1 || c.Spawn.MaxTierTypes > 26 {
		return fmt.Errorf("spawn.maxTierTypes must be between 1 and 26, got %d", c.Spawn.MaxTierTypes)
	}

	if c.Zombie.AvoidanceRadius < 0 || c.Zombie.AvoidanceStrength < 0 {
		return fmt.Errorf("zombie avoidance parameters cannot be negative")
	}
	if c.Zombie.FadeDurationMs < 0 || c.Zombie.HealthBarVisibleMs < 0 || c.Zombie.PathIntervalMs < 0 {
		return fmt.Errorf("zombie timer durations cannot be negative")
	}
	if c.Zombie.GroanMinMs < 0 || c.Zombie.GroanMaxMs < c.Zombie.GroanMinMs {
		return fmt.Errorf("zombie groan range [%d, %d] is invalid", c.Zombie.GroanMinMs, c.Zombie.GroanMaxMs)
	}

	if c.Player.MaxHealth <= 0 {
		return fmt.Errorf("player.maxHealth must be positive, got %d", c.Player.MaxHealth)
	}
	if c.Player.Speed < 0 {
		return fmt.Errorf("player.speed cannot be negative, got %f", c.Player.Speed)
	}

	if c.Orb.LifetimeMs <= 0 {
		return fmt.Errorf("orb.lifetimeMs must be positive, got %d", c.Orb.LifetimeMs)
	}

	if c.Pathfinding.Workers < 0 {
		return fmt.Errorf("pathfinding.workers cannot be negative, got %d", c.Pathfinding.Workers)
	}

	return nil
}
