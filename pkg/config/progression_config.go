package config

import (
	"fmt"
	"os"

	"github.com/decker502/horde/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ProgressionConfigPath 内置升级表在嵌入文件系统中的路径
const ProgressionConfigPath = "data/progression.yaml"

// ProgressionConfig 玩家升级所需经验表
//
// LevelThresholds[i] 是从第 i 级升到第 i+1 级所需的经验（第 1 级对应索引 0，值为 0）。
type ProgressionConfig struct {
	LevelThresholds []int `yaml:"levelThresholds"`
}

// DefaultProgressionConfig 返回 1..30 级的默认经验表
func DefaultProgressionConfig() *ProgressionConfig {
	return &ProgressionConfig{
		LevelThresholds: []int{
			0, 90, 180, 280, 390, 515, 655, 810, 980, 1170,
			1380, 1615, 1875, 2155, 2465, 2805, 3175, 3580, 4020, 4500,
			5025, 5600, 6225, 6905, 7645, 8450, 9325, 10275, 11305, 12425,
		},
	}
}

// MaxLevel 返回最高等级
func (p *ProgressionConfig) MaxLevel() int {
	return len(p.LevelThresholds)
}

// Threshold 返回升到 level 级所需的经验
// level 超出范围时返回 false
func (p *ProgressionConfig) Threshold(level int) (int, bool) {
	if level < 1 || level > len(p.LevelThresholds) {
		return 0, false
	}
	return p.LevelThresholds[level-1], true
}

// ParseProgressionConfig 从 YAML 字节解析升级表
func ParseProgressionConfig(data []byte) (*ProgressionConfig, error) {
	var p ProgressionConfig
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse progression YAML: %w", err)
	}

	if err := validateProgression(&p); err != nil {
		return nil, fmt.Errorf("invalid progression config: %w", err)
	}

	return &p, nil
}

// LoadProgressionConfig 从磁盘加载升级表
func LoadProgressionConfig(path string) (*ProgressionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read progression file %s: %w", path, err)
	}

	p, err := ParseProgressionConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// LoadEmbeddedProgressionConfig 从嵌入资源加载升级表
func LoadEmbeddedProgressionConfig() (*ProgressionConfig, error) {
	data, err := embedded.ReadFile(ProgressionConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded progression config: %w", err)
	}
	return ParseProgressionConfig(data)
}

func validateProgression(p *ProgressionConfig) error {
	if len(p.LevelThresholds) == 0 {
		return fmt.Errorf("levelThresholds cannot be empty")
	}
	if p.LevelThresholds[0] != 0 {
		return fmt.Errorf("level 1 threshold must be 0, got %d", p.LevelThresholds[0])
	}
	for i := 1; i < len(p.LevelThresholds); i++ {
		if p.LevelThresholds[i] <= p.LevelThresholds[i-1] {
			return fmt.Errorf("level %d threshold %d must exceed level %d (%d)",
				i+1, p.LevelThresholds[i], i, p.LevelThresholds[i-1])
		}
	}
	return nil
}
