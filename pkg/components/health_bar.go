package components

// HealthBarComponent 受伤后短暂显示的血条
type HealthBarComponent struct {
	Visible   bool
	Remaining float64 // 剩余显示时间（秒）
}
