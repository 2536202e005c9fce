package components

// GroanComponent 呻吟倒计时
type GroanComponent struct {
	Countdown float64 // 距下次呻吟的时间（秒）
}
