package scenes

import (
	"image/color"
	"math"
)

// tierSpan 颜色渐变覆盖的等级数，之后的等级使用最深的颜色
const tierSpan = 11

// tierColor 按等级从绿到红渐变，alpha 取 0..1
func tierColor(tier string, alpha float64) color.NRGBA {
	idx := 0
	if tier != "" {
		idx = int(tier[0] - 'a')
	}
	t := min(max(float64(idx)/float64(tierSpan-1), 0), 1)
	return color.NRGBA{
		R: uint8(80 + 170*t),
		G: uint8(200 - 160*t),
		B: 60,
		A: uint8(255 * min(max(alpha, 0), 1)),
	}
}

// facing 朝向角转换为屏幕坐标系下的单位向量
// 角度按数学约定（y 轴向上），屏幕 y 轴向下
func facing(degrees float64) (float32, float32) {
	rad := degrees * math.Pi / 180
	return float32(math.Cos(rad)), float32(-math.Sin(rad))
}
