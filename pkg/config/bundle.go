package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/decker502/horde/pkg/embedded"
)

// Bundle 一次运行所需的全部配置
type Bundle struct {
	Simulation  *SimulationConfig
	Tiers       *TierCatalogue
	Progression *ProgressionConfig
}

// DefaultBundle 返回内置默认配置
func DefaultBundle() *Bundle {
	return &Bundle{
		Simulation:  DefaultSimulationConfig(),
		Tiers:       DefaultTierCatalogue(),
		Progression: DefaultProgressionConfig(),
	}
}

// LoadBundle 从目录加载三个配置文件
//
// 文件名与 data/ 下相同；缺失的文件使用默认值，解析或校验失败返回错误。
func LoadBundle(dir string) (*Bundle, error) {
	b := DefaultBundle()

	if err := loadIfExists(dir, SimulationConfigPath, func(path string) error {
		cfg, err := LoadSimulationConfig(path)
		if err == nil {
			b.Simulation = cfg
		}
		return err
	}); err != nil {
		return nil, err
	}
	if err := loadIfExists(dir, TierCataloguePath, func(path string) error {
		cfg, err := LoadTierCatalogue(path)
		if err == nil {
			b.Tiers = cfg
		}
		return err
	}); err != nil {
		return nil, err
	}
	if err := loadIfExists(dir, ProgressionConfigPath, func(path string) error {
		cfg, err := LoadProgressionConfig(path)
		if err == nil {
			b.Progression = cfg
		}
		return err
	}); err != nil {
		return nil, err
	}
	return b, nil
}

func loadIfExists(dir, embeddedPath string, load func(path string) error) error {
	path := filepath.Join(dir, filepath.Base(embeddedPath))
	err := load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Config] %s not found, using defaults", path)
		return nil
	}
	return err
}

// LoadEmbeddedBundle 从嵌入资源加载配置
// embedded 未初始化时（例如移动端绑定）使用默认值
func LoadEmbeddedBundle() (*Bundle, error) {
	if !embedded.IsInitialized() {
		log.Printf("[Config] Embedded data not initialized, using defaults")
		return DefaultBundle(), nil
	}

	sim, err := LoadEmbeddedSimulationConfig()
	if err != nil {
		return nil, err
	}
	tiers, err := LoadEmbeddedTierCatalogue()
	if err != nil {
		return nil, err
	}
	prog, err := LoadEmbeddedProgressionConfig()
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] Loaded embedded config: %d tiers, %d levels", tiers.Len(), prog.MaxLevel())
	return &Bundle{Simulation: sim, Tiers: tiers, Progression: prog}, nil
}

// String 概要信息，用于启动日志
func (b *Bundle) String() string {
	s := b.Simulation
	return fmt.Sprintf("world %.0fx%.0f, cap %d, %d tiers, %d levels",
		s.World.Width, s.World.Height, s.Spawn.MaxAlive, b.Tiers.Len(), b.Progression.MaxLevel())
}
