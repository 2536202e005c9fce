package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input 场景读取输入的接口，测试中替换为假实现
type Input interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
	// LeftClick 本帧是否按下鼠标左键，返回逻辑屏幕坐标
	LeftClick() (x, y int, ok bool)
}

// EbitenInput 从 ebiten 读取输入
type EbitenInput struct{}

func (EbitenInput) IsKeyPressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }
func (EbitenInput) IsKeyJustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

func (EbitenInput) LeftClick() (int, int, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y := ebiten.CursorPosition()
	return x, y, true
}

// anyJustPressed 任一按键本帧按下
func anyJustPressed(in Input, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if in.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// anyPressed 任一按键处于按下状态
func anyPressed(in Input, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if in.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// moveDirection 由 WASD 和方向键合成移动方向，未按键时为 (0, 0)
func moveDirection(in Input) (dx, dy float64) {
	if anyPressed(in, ebiten.KeyA, ebiten.KeyArrowLeft) {
		dx--
	}
	if anyPressed(in, ebiten.KeyD, ebiten.KeyArrowRight) {
		dx++
	}
	if anyPressed(in, ebiten.KeyW, ebiten.KeyArrowUp) {
		dy--
	}
	if anyPressed(in, ebiten.KeyS, ebiten.KeyArrowDown) {
		dy++
	}
	return dx, dy
}
