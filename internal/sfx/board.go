// Package sfx 用程序合成的音效响应模拟事件
//
// Board 订阅 event.Dispatcher，把僵尸呻吟、死亡、波次变化等事件映射为短音效。
// 音频设备不可用时 Board 仍然可用，只是不出声。
package sfx

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/decker502/horde/pkg/event"
)

const sampleRate = beep.SampleRate(48000)

// 同一种音效的最短间隔，避免几十只僵尸同时呻吟时叠成噪音
var cooldowns = [soundTypeCount]time.Duration{
	SoundGroan: 250 * time.Millisecond,
	SoundHit:   40 * time.Millisecond,
	SoundHurt:  120 * time.Millisecond,
}

// Board 音效板
type Board struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool

	enabled bool
	volume  float64

	now    func() time.Time
	last   [soundTypeCount]time.Time
	played [soundTypeCount]int
}

// NewBoard 创建音效板，默认开启、音量 0.8
func NewBoard() *Board {
	return &Board{
		mixer:   &beep.Mixer{},
		enabled: true,
		volume:  0.8,
		now:     time.Now,
	}
}

// Initialize 打开音频设备，重复调用为空操作
func (b *Board) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	log.Printf("[SFX] Speaker initialized at %d Hz", sampleRate)
	return nil
}

// Cleanup 停止所有正在播放的音效
func (b *Board) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.initialized = false
}

// Attach 订阅分发器上的所有事件
func (b *Board) Attach(d *event.Dispatcher) event.Subscription {
	return d.SubscribeAll(b)
}

// SetEnabled 开关音效
func (b *Board) SetEnabled(enabled bool) {
	b.mu.Lock()
	b.enabled = enabled
	b.mu.Unlock()
}

// SetVolume 设置线性音量，限制在 0.0 ~ 1.0
func (b *Board) SetVolume(volume float64) {
	b.mu.Lock()
	b.volume = min(max(volume, 0), 1)
	b.mu.Unlock()
}

// OnEvent 实现 event.Listener
func (b *Board) OnEvent(e event.Event) {
	if t, ok := SoundFor(e.Type); ok {
		b.Play(t)
	}
}

// SoundFor 返回事件对应的音效
func SoundFor(t event.Type) (SoundType, bool) {
	switch t {
	case event.AgentGroaned:
		return SoundGroan, true
	case event.AgentDamaged:
		return SoundHit, true
	case event.AgentDied:
		return SoundDeath, true
	case event.WaveStarted:
		return SoundWaveStart, true
	case event.WaveCleared:
		return SoundWaveClear, true
	case event.OrbCollected:
		return SoundPickup, true
	case event.ChestOpened:
		return SoundChest, true
	case event.PlayerDamaged:
		return SoundHurt, true
	case event.LevelUp:
		return SoundLevelUp, true
	case event.PlayerDied:
		return SoundGameOver, true
	}
	return 0, false
}

// Play 播放音效
// 关闭、静音或处于冷却中时返回 false；未初始化设备时只记录不发声
func (b *Board) Play(t SoundType) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if t < 0 || t >= soundTypeCount || !b.enabled || b.volume <= 0 {
		return false
	}
	now := b.now()
	if cd := cooldowns[t]; cd > 0 && !b.last[t].IsZero() && now.Sub(b.last[t]) < cd {
		return false
	}
	b.last[t] = now
	b.played[t]++

	if !b.initialized {
		return true
	}
	s := NewSound(t, sampleRate, b.volume)
	speaker.Lock()
	b.mixer.Add(s)
	speaker.Unlock()
	return true
}

// Played 返回某种音效被接受播放的次数
func (b *Board) Played(t SoundType) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if t < 0 || t >= soundTypeCount {
		return 0
	}
	return b.played[t]
}
