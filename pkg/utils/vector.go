package utils

import "math"

// Length 返回向量 (dx, dy) 的长度
func Length(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}

// Distance 返回两点间的欧氏距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Normalize 返回单位向量；零向量原样返回 (0, 0, false)
func Normalize(dx, dy float64) (float64, float64, bool) {
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0, 0, false
	}
	return dx / l, dy / l, true
}

// Clamp 将 v 限制在 [lo, hi] 内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AngleDegrees 计算朝向角度（度）
// 屏幕坐标 Y 轴向下，所以取 -dy：正右为 0°，正上为 90°
// 零向量返回 (0, false)，调用方应保持原朝向
func AngleDegrees(dx, dy float64) (float64, bool) {
	if dx == 0 && dy == 0 {
		return 0, false
	}
	// 0-dy 避免 dy 为 0 时得到 -0，正左应为 180° 而不是 -180°
	return math.Atan2(0-dy, dx) * 180 / math.Pi, true
}
