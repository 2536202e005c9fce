package components

// FadeComponent 死亡淡出
// 只在僵尸进入 ZombieFading 状态后添加
type FadeComponent struct {
	Elapsed  float64 // 已淡出时间（秒）
	Duration float64 // 淡出总时长（秒）
	Alpha    float64 // 当前不透明度，1 → 0
}
