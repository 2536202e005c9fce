package simulation

import (
	"testing"

	"github.com/decker502/horde/pkg/config"
	"github.com/decker502/horde/pkg/event"
)

func TestStatsRecorder(t *testing.T) {
	w, _ := newTestWorld(t, func(cfg *config.SimulationConfig) {
		cfg.Spawn.BudgetPerWave = 2
		cfg.Spawn.IntervalMs = 0
	})
	stats := NewStatsRecorder(w)

	w.StartWave(1)
	for i := 0; i < 600 && stats.Cleared() < 2; i++ {
		// 每步清理场上所有僵尸
		for _, id := range w.Agents() {
			w.DamageAgent(id, 10000)
		}
		w.Step()
		stats.Observe()
	}

	waves := stats.Waves()
	if len(waves) < 3 {
		t.Fatalf("expected at least 3 waves started, got %d", len(waves))
	}
	tests := []struct {
		name    string
		index   int
		wave    int
		spawned int
	}{
		{"第 1 波", 0, 1, 2},
		{"第 2 波", 1, 2, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := waves[tt.index]
			if ws.Wave != tt.wave {
				t.Errorf("Wave: got %d, want %d", ws.Wave, tt.wave)
			}
			if ws.Spawned != tt.spawned || ws.Killed != tt.spawned {
				t.Errorf("spawned/killed: got %d/%d, want %d/%d", ws.Spawned, ws.Killed, tt.spawned, tt.spawned)
			}
			if ws.Steps() <= 0 {
				t.Errorf("Steps: got %d, want > 0", ws.Steps())
			}
			if ws.PeakAlive < 1 {
				t.Errorf("PeakAlive: got %d, want >= 1", ws.PeakAlive)
			}
			if ws.DamageTaken != 0 {
				t.Errorf("DamageTaken: got %d, want 0", ws.DamageTaken)
			}
		})
	}

	// 下一波的开始步等于上一波的结束步
	if waves[1].StartStep != waves[0].EndStep {
		t.Errorf("wave 2 start %d != wave 1 end %d", waves[1].StartStep, waves[0].EndStep)
	}
	if last := waves[len(waves)-1]; last.EndStep != -1 || last.Steps() != 0 {
		t.Errorf("running wave should be open: %+v", last)
	}

	stats.Reset()
	if len(stats.Waves()) != 0 || stats.Cleared() != 0 {
		t.Error("Reset should clear stats")
	}
}

func TestDamageInRadius(t *testing.T) {
	w, rec := newTestWorld(t, func(cfg *config.SimulationConfig) {
		cfg.Spawn.IntervalMs = 0
		cfg.Spawn.BudgetPerWave = 4
	})
	w.StartWave(1)
	stepUntil(t, w, 20, func() bool { return w.AliveCount() == 4 })

	agents := w.Snapshot().Agents
	target := agents[0]

	if n := w.DamageInRadius(target.X, target.Y, 0, 10); n != 0 {
		t.Errorf("zero radius should hit nothing, hit %d", n)
	}
	if n := w.DamageInRadius(target.X, target.Y, 1e6, 0); n != 0 {
		t.Errorf("zero damage should hit nothing, hit %d", n)
	}

	if n := w.DamageInRadius(target.X, target.Y, 1e6, 10); n != 4 {
		t.Errorf("huge radius: hit %d, want 4", n)
	}
	if got := rec.Count(event.AgentDamaged); got != 4 {
		t.Errorf("AgentDamaged count: got %d, want 4", got)
	}

	id, ok := w.NearestAgent(target.X, target.Y, 0.5)
	if !ok || id != target.ID {
		t.Errorf("NearestAgent: got (%d, %v), want (%d, true)", id, ok, target.ID)
	}

	// 击杀后淡出中的僵尸不再是目标
	w.DamageAgent(target.ID, 10000)
	if id, ok := w.NearestAgent(target.X, target.Y, 0.5); ok && id == target.ID {
		t.Error("fading agent should not be returned")
	}
	if n := w.DamageInRadius(target.X, target.Y, 1e6, 10); n != 3 {
		t.Errorf("fading agent should be skipped: hit %d, want 3", n)
	}
}
