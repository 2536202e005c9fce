package simulation

import (
	"github.com/decker502/horde/pkg/event"
)

// WaveStats 一波的统计
type WaveStats struct {
	Wave          int
	StartStep     int
	EndStep       int // 未结束时为 -1
	Spawned       int
	Killed        int // AgentDied 次数
	PeakAlive     int
	DamageTaken   int // 玩家受到的接触伤害
	OrbsCollected int
}

// Steps 本波持续的步数，未结束时返回 0
func (s WaveStats) Steps() int {
	if s.EndStep < 0 {
		return 0
	}
	return s.EndStep - s.StartStep
}

// StatsRecorder 按波次汇总事件
//
// 通过 World.Events().SubscribeAll 挂接；每步结束后调用 Observe 记录存活峰值。
type StatsRecorder struct {
	world *World
	waves []WaveStats
}

// NewStatsRecorder 创建并订阅世界事件
func NewStatsRecorder(w *World) *StatsRecorder {
	r := &StatsRecorder{world: w}
	w.Events().SubscribeAll(r)
	return r
}

// OnEvent 实现 event.Listener
func (r *StatsRecorder) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		data, _ := e.Data.(event.WaveData)
		r.waves = append(r.waves, WaveStats{Wave: data.Wave, StartStep: r.step(), EndStep: -1})
		return
	}

	cur := r.current()
	if cur == nil {
		return
	}
	switch e.Type {
	case event.AgentSpawned:
		cur.Spawned++
	case event.AgentDied:
		cur.Killed++
	case event.PlayerDamaged:
		data, _ := e.Data.(event.PlayerDamagedData)
		cur.DamageTaken += data.Amount
	case event.OrbCollected:
		cur.OrbsCollected++
	case event.WaveCleared:
		cur.EndStep = r.step()
	}
}

// Observe 记录当前存活数，每步调用一次
func (r *StatsRecorder) Observe() {
	if cur := r.current(); cur != nil {
		cur.PeakAlive = max(cur.PeakAlive, r.world.AliveCount())
	}
}

// Waves 返回所有波次统计的副本
func (r *StatsRecorder) Waves() []WaveStats {
	return append([]WaveStats(nil), r.waves...)
}

// Cleared 已结束的波数
func (r *StatsRecorder) Cleared() int {
	n := 0
	for _, w := range r.waves {
		if w.EndStep >= 0 {
			n++
		}
	}
	return n
}

// Reset 清空统计（重新开局时调用）
func (r *StatsRecorder) Reset() {
	r.waves = nil
}

func (r *StatsRecorder) current() *WaveStats {
	if len(r.waves) == 0 {
		return nil
	}
	return &r.waves[len(r.waves)-1]
}

func (r *StatsRecorder) step() int {
	return r.world.Steps()
}
