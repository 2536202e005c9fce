package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/horde/pkg/simulation"
)

// hudFace 内置位图字体，不依赖外部字体文件
var hudFace = text.NewGoXFace(basicfont.Face7x13)

// lineHeight 文本行高（像素）
const lineHeight = 16

var (
	colorText       = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	colorTextDim    = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	colorTextAccent = color.RGBA{R: 255, G: 210, B: 80, A: 255}
	colorOverlay    = color.RGBA{A: 160}
)

// drawText 在 (x, y) 左上角绘制一行文本
func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}

// drawCentered 水平居中绘制一行文本
func drawCentered(screen *ebiten.Image, s string, y float64, clr color.Color) {
	w, _ := text.Measure(s, hudFace, lineHeight)
	x := (float64(screen.Bounds().Dx()) - w) / 2
	drawText(screen, s, x, y, clr)
}

// hudLines 游戏中左上角的状态文本
func hudLines(snap simulation.Snapshot) []string {
	p := snap.Player
	next := "max"
	if p.NextLevel > 0 {
		next = fmt.Sprintf("%d/%d", p.Experience, p.NextLevel)
	}
	return []string{
		fmt.Sprintf("Wave %d   Alive %d   Queue %d", snap.Wave, snap.Alive, snap.Queued),
		fmt.Sprintf("HP %d/%d", p.Health, p.MaxHealth),
		fmt.Sprintf("Score %d   Kills %d", p.Score, p.Kills),
		fmt.Sprintf("Level %d   XP %s", p.Level, next),
	}
}
