package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/decker502/horde/pkg/config"
	"github.com/decker502/horde/pkg/simulation"
)

type options struct {
	Waves    int
	Seed     int64
	Radius   float64
	Damage   int
	MaxSteps int
	Verbose  bool
}

type result struct {
	Waves    []simulation.WaveStats
	Steps    int
	GameOver bool
	Final    simulation.Snapshot
}

// run 运行到完成 opts.Waves 波、玩家死亡或达到步数上限
func run(bundle *config.Bundle, opts options) (result, error) {
	w, err := simulation.NewWorld(simulation.Options{
		Seed:        opts.Seed,
		Config:      bundle.Simulation,
		Tiers:       bundle.Tiers,
		Progression: bundle.Progression,
		Verbose:     opts.Verbose,
	})
	if err != nil {
		return result{}, fmt.Errorf("failed to create world: %w", err)
	}
	stats := simulation.NewStatsRecorder(w)

	w.StartWave(1)
	steps := 0
	for ; steps < opts.MaxSteps && stats.Cleared() < opts.Waves && !w.GameOver(); steps++ {
		x, y := w.PlayerPosition()
		w.DamageInRadius(x, y, opts.Radius, opts.Damage)
		w.Step()
		stats.Observe()
	}

	waves := stats.Waves()
	if len(waves) > opts.Waves {
		waves = waves[:opts.Waves]
	}
	return result{
		Waves:    waves,
		Steps:    steps,
		GameOver: w.GameOver(),
		Final:    w.Snapshot(),
	}, nil
}

// report 输出每波统计表
func report(out io.Writer, bundle *config.Bundle, r result) {
	stepSeconds := bundle.Simulation.StepSeconds()

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "wave\tspawned\tkilled\tpeak\tdamage\torbs\tsteps\tseconds\t")
	for _, ws := range r.Waves {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%.1f\t\n",
			ws.Wave, ws.Spawned, ws.Killed, ws.PeakAlive, ws.DamageTaken, ws.OrbsCollected,
			ws.Steps(), float64(ws.Steps())*stepSeconds)
	}
	tw.Flush()

	p := r.Final.Player
	fmt.Fprintf(out, "\nsteps %d (%.1fs)  score %d  kills %d  level %d  health %d/%d\n",
		r.Steps, float64(r.Steps)*stepSeconds, p.Score, p.Kills, p.Level, p.Health, p.MaxHealth)
	if r.GameOver {
		fmt.Fprintf(out, "player died in wave %d\n", r.Final.Wave)
	}
}
