package components

// SteeringComponent 群体避让参数
type SteeringComponent struct {
	AvoidanceRadius   float64 // 小于该距离的其他僵尸会产生排斥
	AvoidanceStrength float64 // 排斥位移 = 速度 * 强度
}
