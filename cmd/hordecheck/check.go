package main

import (
	"fmt"
	"path/filepath"

	"github.com/decker502/horde/pkg/config"
	"github.com/decker502/horde/pkg/utils"
)

type level int

const (
	levelOK level = iota
	levelWarning
	levelError
)

type result struct {
	Level   level
	Message string
}

func (r result) String() string {
	switch r.Level {
	case levelError:
		return "❌ " + r.Message
	case levelWarning:
		return "⚠️  " + r.Message
	default:
		return "✅ " + r.Message
	}
}

func ok(format string, args ...any) result {
	return result{Level: levelOK, Message: fmt.Sprintf(format, args...)}
}

func warn(format string, args ...any) result {
	return result{Level: levelWarning, Message: fmt.Sprintf(format, args...)}
}

func fail(format string, args ...any) result {
	return result{Level: levelError, Message: fmt.Sprintf(format, args...)}
}

// check 校验 dir 下的三个配置文件
// 单个文件失败时跳过依赖它的一致性检查
func check(dir string) []result {
	var results []result
	path := func(name string) string {
		return filepath.Join(dir, filepath.Base(name))
	}

	sim, err := config.LoadSimulationConfig(path(config.SimulationConfigPath))
	if err != nil {
		results = append(results, fail("%v", err))
	} else {
		results = append(results, ok("%s: world %.0fx%.0f, tick %d/s, cap %d",
			filepath.Base(config.SimulationConfigPath), sim.World.Width, sim.World.Height, sim.TickRate, sim.Spawn.MaxAlive))
	}

	tiers, err := config.LoadTierCatalogue(path(config.TierCataloguePath))
	if err != nil {
		results = append(results, fail("%v", err))
	} else {
		results = append(results, ok("%s: %d tiers", filepath.Base(config.TierCataloguePath), tiers.Len()))
	}

	prog, err := config.LoadProgressionConfig(path(config.ProgressionConfigPath))
	if err != nil {
		results = append(results, fail("%v", err))
	} else {
		results = append(results, ok("%s: %d levels", filepath.Base(config.ProgressionConfigPath), prog.MaxLevel()))
	}

	if sim != nil && tiers != nil && sim.Spawn.MaxTierTypes > tiers.Len() {
		results = append(results, warn("spawn.maxTierTypes=%d exceeds %d tiers, waves above %d reuse tier %q stats",
			sim.Spawn.MaxTierTypes, tiers.Len(), tiers.Len(), config.TierKeyForIndex(0)))
	}
	if sim != nil && sim.World.GridResolution != sim.World.CellSize {
		grid := utils.NewGrid(sim.World.Width, sim.World.Height, sim.World.GridResolution, sim.World.CellSize)
		results = append(results, warn("world.gridResolution=%d differs from world.cellSize=%d, agents only use the top-left %dx%d of the %dx%d grid",
			sim.World.GridResolution, sim.World.CellSize,
			int(sim.World.Width)/sim.World.CellSize, int(sim.World.Height)/sim.World.CellSize, grid.Cols, grid.Rows))
	}
	return results
}
