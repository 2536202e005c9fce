package components

// PositionComponent 实体在世界中的位置（像素，原点在左上角）
type PositionComponent struct {
	X, Y float64
}
