package config

import (
	"fmt"
	"os"

	"github.com/decker502/horde/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// TierCataloguePath 内置僵尸等级表在嵌入文件系统中的路径
const TierCataloguePath = "data/zombie_tiers.yaml"

// TierStats 单个僵尸等级的属性
type TierStats struct {
	Name      string  `yaml:"name"`      // 等级键，按顺序为 a, b, c ...
	MaxHealth int     `yaml:"maxHealth"` // 最大血量
	Speed     float64 `yaml:"speed"`     // 每步移动距离
	Score     int     `yaml:"score"`     // 击杀得分
	Blood     int     `yaml:"blood"`     // 击杀获得的经验
}

// TierCatalogue 有序的僵尸等级表
// 血量和速度随等级单调递增
type TierCatalogue struct {
	Tiers []TierStats `yaml:"tiers"`

	index map[string]int
}

// TierKeyForIndex 返回第 i 个等级的键（'a' + i）
func TierKeyForIndex(i int) string {
	return string(rune('a' + i))
}

// DefaultTierCatalogue 返回与 data/zombie_tiers.yaml 一致的 a..k 等级表
func DefaultTierCatalogue() *TierCatalogue {
	health := []int{50, 66, 99, 133, 166, 199, 233, 266, 299, 333, 444}

	tiers := make([]TierStats, len(health))
	for i, hp := range health {
		tiers[i] = TierStats{
			Name:      TierKeyForIndex(i),
			MaxHealth: hp,
			Speed:     1.0 + float64(i)/10.0,
			Score:     5 * (i + 1),
			Blood:     i + 1,
		}
	}

	return NewTierCatalogue(tiers)
}

// NewTierCatalogue 用给定的等级列表创建等级表
func NewTierCatalogue(tiers []TierStats) *TierCatalogue {
	c := &TierCatalogue{Tiers: tiers}
	c.reindex()
	return c
}

func (c *TierCatalogue) reindex() {
	c.index = make(map[string]int, len(c.Tiers))
	for i, t := range c.Tiers {
		if _, dup := c.index[t.Name]; !dup {
			c.index[t.Name] = i
		}
	}
}

// Len 返回等级数量
func (c *TierCatalogue) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Tiers)
}

// Get 按名称查找等级
func (c *TierCatalogue) Get(name string) (TierStats, bool) {
	if c == nil {
		return TierStats{}, false
	}
	if c.index == nil {
		c.reindex()
	}
	i, ok := c.index[name]
	if !ok {
		return TierStats{}, false
	}
	return c.Tiers[i], true
}

// Lookup 按名称查找等级，未知名称回退到最弱等级（索引 0）
// 等级表为空时返回零值
func (c *TierCatalogue) Lookup(name string) TierStats {
	if stats, ok := c.Get(name); ok {
		return stats
	}
	if c.Len() == 0 {
		return TierStats{}
	}
	return c.Tiers[0]
}

// ParseTierCatalogue 从 YAML 字节解析等级表
func ParseTierCatalogue(data []byte) (*TierCatalogue, error) {
	var c TierCatalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse zombie tiers YAML: %w", err)
	}

	if err := validateTierCatalogue(&c); err != nil {
		return nil, fmt.Errorf("invalid zombie tiers: %w", err)
	}

	c.reindex()
	return &c, nil
}

// LoadTierCatalogue 从磁盘加载等级表
func LoadTierCatalogue(path string) (*TierCatalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read zombie tiers file %s: %w", path, err)
	}

	c, err := ParseTierCatalogue(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadEmbeddedTierCatalogue 从嵌入资源加载等级表
func LoadEmbeddedTierCatalogue() (*TierCatalogue, error) {
	data, err := embedded.ReadFile(TierCataloguePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded zombie tiers: %w", err)
	}
	return ParseTierCatalogue(data)
}

// validateTierCatalogue 验证等级表的完整性和单调性
func validateTierCatalogue(c *TierCatalogue) error {
	if len(c.Tiers) == 0 {
		return fmt.Errorf("at least one tier is required")
	}

	seen := make(map[string]struct{}, len(c.Tiers))
	for i, t := range c.Tiers {
		if t.Name == "" {
			return fmt.Errorf("tier %d: name cannot be empty", i)
		}
		if _, dup := seen[t.Name]; dup {
			return fmt.Errorf("tier %s: duplicate name", t.Name)
		}
		seen[t.Name] = struct{}{}

		if t.MaxHealth <= 0 {
			return fmt.Errorf("tier %s: maxHealth must be positive, got %d", t.Name, t.MaxHealth)
		}
		if t.Speed <= 0 {
			return fmt.Errorf("tier %s: speed must be positive, got %f", t.Name, t.Speed)
		}
		if t.Score < 0 || t.Blood < 0 {
			return fmt.Errorf("tier %s: score and blood cannot be negative", t.Name)
		}

		if i == 0 {
			continue
		}
		prev := c.Tiers[i-1]
		if t.MaxHealth <= prev.MaxHealth {
			return fmt.Errorf("tier %s: maxHealth %d must exceed tier %s (%d)", t.Name, t.MaxHealth, prev.Name, prev.MaxHealth)
		}
		if t.Speed <= prev.Speed {
			return fmt.Errorf("tier %s: speed %.2f must exceed tier %s (%.2f)", t.Name, t.Speed, prev.Name, prev.Speed)
		}
	}

	return nil
}
