package components

// TimerComponent 世界时钟
// 单例实体，记录模拟已运行时间
type TimerComponent struct {
	Elapsed float64 // 秒
	Steps   int     // 已执行的固定步数
}
