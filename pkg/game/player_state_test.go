package game

import (
	"testing"

	"github.com/decker502/horde/pkg/config"
	"github.com/decker502/horde/pkg/event"
)

func newTestPlayerState(t *testing.T) (*PlayerState, *event.Dispatcher, *event.Recorder) {
	t.Helper()
	d := event.NewDispatcher()
	rec := &event.Recorder{}
	d.Subscribe(event.LevelUp, rec)
	return NewPlayerState(config.DefaultProgressionConfig(), d), d, rec
}

func TestNewPlayerState(t *testing.T) {
	ps, _, _ := newTestPlayerState(t)
	if ps.Level != 1 || ps.Experience != 0 || ps.Score != 0 || ps.Kills != 0 {
		t.Errorf("初始状态错误: %+v", ps)
	}
	if ps.XPMultiplier != 1.0 {
		t.Errorf("XPMultiplier: got %v, want 1.0", ps.XPMultiplier)
	}

	// nil 升级表回退到默认值
	fallback := NewPlayerState(nil, nil)
	if next, ok := fallback.NextThreshold(); !ok || next != 90 {
		t.Errorf("NextThreshold: got (%d, %v), want (90, true)", next, ok)
	}
}

func TestPlayerStateKillEvents(t *testing.T) {
	ps, d, _ := newTestPlayerState(t)

	d.Emit(event.ExperienceGained, event.ExperienceGainedData{Tier: "a", Score: 5, Blood: 1})
	d.Emit(event.ExperienceGained, event.ExperienceGainedData{Tier: "c", Score: 15, Blood: 3})

	if ps.Score != 20 {
		t.Errorf("Score: got %d, want 20", ps.Score)
	}
	if ps.Kills != 2 {
		t.Errorf("Kills: got %d, want 2", ps.Kills)
	}
	if ps.Experience != 24 {
		t.Errorf("Experience: got %d, want 24 (score+blood)", ps.Experience)
	}

	d.Emit(event.OrbCollected, event.OrbCollectedData{Experience: 1})
	if ps.Experience != 25 {
		t.Errorf("Experience after orb: got %d, want 25", ps.Experience)
	}
	if ps.Kills != 2 {
		t.Errorf("能量球不应计入击杀: got %d", ps.Kills)
	}
}

func TestPlayerStateLevelUp(t *testing.T) {
	tests := []struct {
		name      string
		amount    int
		wantLevel int
		wantXP    int
		wantUps   int
	}{
		{"不足阈值", 89, 1, 89, 0},
		{"恰好达到第2级", 90, 2, 0, 1},
		{"超出部分保留", 100, 2, 10, 1},
		{"一次连升两级", 90 + 180, 3, 0, 2},
		{"零经验无效", 0, 1, 0, 0},
		{"负经验无效", -5, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, _, rec := newTestPlayerState(t)
			ups := ps.AddExperience(tt.amount)
			if ups != tt.wantUps {
				t.Errorf("升级次数: got %d, want %d", ups, tt.wantUps)
			}
			if ps.Level != tt.wantLevel {
				t.Errorf("Level: got %d, want %d", ps.Level, tt.wantLevel)
			}
			if ps.Experience != tt.wantXP {
				t.Errorf("Experience: got %d, want %d", ps.Experience, tt.wantXP)
			}
			if rec.Count(event.LevelUp) != tt.wantUps {
				t.Errorf("LevelUp 事件数: got %d, want %d", rec.Count(event.LevelUp), tt.wantUps)
			}
			if tt.wantUps > 0 {
				last := rec.Events[len(rec.Events)-1].Data.(event.LevelUpData)
				if last.Level != tt.wantLevel {
					t.Errorf("LevelUp.Level: got %d, want %d", last.Level, tt.wantLevel)
				}
			}
		})
	}
}

func TestPlayerStateMaxLevel(t *testing.T) {
	prog := &config.ProgressionConfig{LevelThresholds: []int{0, 10, 20}}
	ps := NewPlayerState(prog, nil)

	ps.AddExperience(1000)
	if ps.Level != 3 {
		t.Errorf("Level: got %d, want 3 (最高级)", ps.Level)
	}
	if ps.Experience != 970 {
		t.Errorf("Experience: got %d, want 970", ps.Experience)
	}
	if _, ok := ps.NextThreshold(); ok {
		t.Error("满级后 NextThreshold 应返回 false")
	}
}

func TestPlayerStateMultiplier(t *testing.T) {
	ps := NewPlayerState(nil, nil)
	ps.XPMultiplier = 1.5
	ps.AddExperience(20)
	if ps.Experience != 30 {
		t.Errorf("Experience: got %d, want 30", ps.Experience)
	}
}

func TestPlayerStateResetAndClose(t *testing.T) {
	ps, d, _ := newTestPlayerState(t)
	d.Emit(event.ExperienceGained, event.ExperienceGainedData{Score: 50, Blood: 50})
	ps.XPMultiplier = 2

	ps.Reset()
	if ps.Level != 1 || ps.Experience != 0 || ps.Score != 0 || ps.Kills != 0 || ps.XPMultiplier != 1 {
		t.Errorf("Reset 后状态错误: %+v", ps)
	}

	// Reset 不取消订阅
	d.Emit(event.ExperienceGained, event.ExperienceGainedData{Score: 5, Blood: 1})
	if ps.Kills != 1 {
		t.Errorf("Reset 后仍应接收事件: Kills=%d", ps.Kills)
	}

	ps.Close()
	d.Emit(event.ExperienceGained, event.ExperienceGainedData{Score: 5, Blood: 1})
	if ps.Kills != 1 {
		t.Errorf("Close 后不应再接收事件: Kills=%d", ps.Kills)
	}
}
