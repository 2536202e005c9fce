package sfx

import (
	"time"

	"github.com/gopxl/beep"
)

// SoundType 音效种类
type SoundType int

const (
	SoundGroan SoundType = iota
	SoundHit
	SoundDeath
	SoundWaveStart
	SoundWaveClear
	SoundPickup
	SoundChest
	SoundHurt
	SoundLevelUp
	SoundGameOver

	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	"groan", "hit", "death", "wave_start", "wave_clear",
	"pickup", "chest", "hurt", "level_up", "game_over",
}

// String 返回音效名
func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// NewSound 生成指定音效的流，vol 为线性音量
// 未知种类返回 nil
func NewSound(t SoundType, rate beep.SampleRate, vol float64) beep.Streamer {
	var s beep.Streamer
	switch t {
	case SoundGroan:
		// 低沉下滑的锯齿波
		d := 600 * time.Millisecond
		s = beep.Mix(
			newVolume(NewEnvelope(NewSweep(110, 70, d, WaveSaw, rate), d, 80*time.Millisecond, 300*time.Millisecond, rate), 0.25),
			newVolume(NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 40*time.Millisecond, 400*time.Millisecond, rate), 0.05),
		)
	case SoundHit:
		d := 60 * time.Millisecond
		s = newVolume(NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 2*time.Millisecond, 50*time.Millisecond, rate), 0.3)
	case SoundDeath:
		d := 350 * time.Millisecond
		s = newVolume(NewEnvelope(NewSweep(220, 55, d, WaveSquare, rate), d, 5*time.Millisecond, 250*time.Millisecond, rate), 0.2)
	case SoundWaveStart:
		s = chime(rate, 0.3, 330, 440, 660)
	case SoundWaveClear:
		s = chime(rate, 0.3, 660, 880)
	case SoundPickup:
		d := 80 * time.Millisecond
		s = newVolume(NewEnvelope(NewSweep(880, 1320, d, WaveSine, rate), d, 5*time.Millisecond, 40*time.Millisecond, rate), 0.25)
	case SoundChest:
		s = chime(rate, 0.3, 523.25, 659.25, 783.99, 1046.5)
	case SoundHurt:
		d := 90 * time.Millisecond
		s = newVolume(NewEnvelope(NewOscillator(90, d, WaveSquare, rate), d, 5*time.Millisecond, 60*time.Millisecond, rate), 0.2)
	case SoundLevelUp:
		s = chime(rate, 0.35, 523.25, 783.99, 1046.5)
	case SoundGameOver:
		d := 1200 * time.Millisecond
		s = newVolume(NewEnvelope(NewSweep(330, 40, d, WaveSaw, rate), d, 20*time.Millisecond, 800*time.Millisecond, rate), 0.3)
	default:
		return nil
	}
	return newVolume(s, vol)
}

// chime 依次播放的短音符
func chime(rate beep.SampleRate, gain float64, freqs ...float64) beep.Streamer {
	const note = 110 * time.Millisecond
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, NewEnvelope(NewOscillator(f, note, WaveSine, rate), note, 5*time.Millisecond, 70*time.Millisecond, rate))
	}
	return newVolume(beep.Seq(notes...), gain)
}
