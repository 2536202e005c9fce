package game

import (
	"log"

	"github.com/decker502/horde/pkg/config"
	"github.com/decker502/horde/pkg/event"
)

// PlayerState 玩家的局内进度：得分、击杀数、经验与等级
//
// 通过订阅 ExperienceGained / OrbCollected 事件累计经验，
// 升级时经同一个分发器发出 LevelUp。
// 所有字段只在模拟 goroutine 内修改。
type PlayerState struct {
	Score        int
	Kills        int
	Experience   int     // 当前等级内的经验（升级时扣除阈值）
	Level        int     // 从 1 开始
	XPMultiplier float64 // 经验倍率，默认 1.0

	progression *config.ProgressionConfig
	events      *event.Dispatcher
	subs        []event.Subscription
}

// NewPlayerState 创建玩家进度并订阅事件
// progression 为 nil 时使用默认升级表；events 为 nil 时只能手动调用 AddExperience。
func NewPlayerState(progression *config.ProgressionConfig, events *event.Dispatcher) *PlayerState {
	if progression == nil {
		progression = config.DefaultProgressionConfig()
	}
	ps := &PlayerState{
		progression: progression,
		events:      events,
	}
	ps.Reset()

	ps.subs = append(ps.subs,
		events.Subscribe(event.ExperienceGained, ps),
		events.Subscribe(event.OrbCollected, ps),
	)
	return ps
}

// OnEvent 实现 event.Listener
func (ps *PlayerState) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.ExperienceGainedData:
		ps.Score += data.Score
		ps.Kills++
		ps.AddExperience(data.Score + data.Blood)
	case event.OrbCollectedData:
		ps.AddExperience(data.Experience)
	}
}

// AddExperience 增加经验并处理连续升级
// 返回本次升了几级
func (ps *PlayerState) AddExperience(amount int) int {
	if amount <= 0 {
		return 0
	}
	mult := ps.XPMultiplier
	if mult <= 0 {
		mult = 1
	}
	ps.Experience += int(float64(amount) * mult)

	gained := 0
	for {
		next, ok := ps.progression.Threshold(ps.Level + 1)
		if !ok || ps.Experience < next {
			break
		}
		ps.Level++
		ps.Experience -= next
		gained++
		log.Printf("[PlayerState] Level up: %d", ps.Level)
		ps.events.Emit(event.LevelUp, event.LevelUpData{Level: ps.Level})
	}
	return gained
}

// NextThreshold 返回升到下一级所需经验，已满级时返回 false
func (ps *PlayerState) NextThreshold() (int, bool) {
	return ps.progression.Threshold(ps.Level + 1)
}

// Reset 恢复到新开局的状态（订阅保持不变）
func (ps *PlayerState) Reset() {
	ps.Score = 0
	ps.Kills = 0
	ps.Experience = 0
	ps.Level = 1
	ps.XPMultiplier = 1.0
}

// Close 取消事件订阅
func (ps *PlayerState) Close() {
	for _, s := range ps.subs {
		ps.events.Unsubscribe(s)
	}
	ps.subs = nil
}
