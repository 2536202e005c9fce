// Package tui 在终端中绘制世界快照
//
// 第一行为状态栏，最后一行为按键提示，中间区域按比例缩放整个世界。
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/simulation"
)

const (
	glyphPlayer = '@'
	glyphOrb    = '*'
	glyphChest  = '$'
	glyphFading = '%'
)

// HelpLine 底部按键提示
const HelpLine = "WASD/方向键 移动  空格 攻击  p 暂停  r 重新开始  q 退出"

var (
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkGreen)
	styleHelp    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleOrb     = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleChest   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleFading  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true).Reverse(true)
	styleDefault = tcell.StyleDefault
)

// Renderer 终端渲染器
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer 创建渲染器，screen 需已调用 Init
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// FieldSize 返回世界区域的字符尺寸（去掉状态栏和提示行）
func (r *Renderer) FieldSize() (int, int) {
	w, h := r.screen.Size()
	return w, max(h-2, 0)
}

// CellFor 把世界坐标映射到世界区域内的字符坐标（不含状态栏偏移）
func CellFor(x, y, worldW, worldH float64, fieldW, fieldH int) (int, int) {
	if fieldW <= 0 || fieldH <= 0 || worldW <= 0 || worldH <= 0 {
		return 0, 0
	}
	cx := int(x / worldW * float64(fieldW))
	cy := int(y / worldH * float64(fieldH))
	return min(max(cx, 0), fieldW-1), min(max(cy, 0), fieldH-1)
}

// Draw 绘制一帧并刷新屏幕
func (r *Renderer) Draw(snap simulation.Snapshot) {
	r.screen.Clear()
	w, h := r.screen.Size()
	fieldW, fieldH := r.FieldSize()

	put := func(x, y float64, ch rune, style tcell.Style) {
		cx, cy := CellFor(x, y, snap.Width, snap.Height, fieldW, fieldH)
		r.screen.SetContent(cx, cy+1, ch, nil, style)
	}

	if fieldH > 0 {
		for _, p := range snap.Pickups {
			switch p.Kind {
			case components.PickupOrb:
				put(p.X, p.Y, glyphOrb, styleOrb)
			case components.PickupChest:
				put(p.X, p.Y, glyphChest, styleChest)
			}
		}
		for _, a := range snap.Agents {
			if a.State == components.ZombieFading {
				put(a.X, a.Y, glyphFading, styleFading)
				continue
			}
			put(a.X, a.Y, tierGlyph(a.Tier), tierStyle(a.Tier))
		}
		put(snap.Player.X, snap.Player.Y, glyphPlayer, stylePlayer)
	}

	r.fillLine(0, w, StatusLine(snap), styleHUD)
	if h > 1 {
		r.fillLine(h-1, w, HelpLine, styleHelp)
	}

	switch {
	case snap.GameOver:
		r.banner(w, h, " GAME OVER  r 重新开始 ")
	case snap.Paused:
		r.banner(w, h, " PAUSED ")
	}

	r.screen.Show()
}

// StatusLine 状态栏文本
func StatusLine(snap simulation.Snapshot) string {
	p := snap.Player
	xp := fmt.Sprintf("%d", p.Experience)
	if p.NextLevel > 0 {
		xp = fmt.Sprintf("%d/%d", p.Experience, p.NextLevel)
	}
	return fmt.Sprintf("Wave %d  Alive %d  Queue %d  HP %d/%d  Score %d  Kills %d  Lv %d (%s)",
		snap.Wave, snap.Alive, snap.Queued, p.Health, p.MaxHealth, p.Score, p.Kills, p.Level, xp)
}

func (r *Renderer) fillLine(y, width int, s string, style tcell.Style) {
	x := 0
	for _, ch := range s {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	for ; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

func (r *Renderer) banner(w, h int, s string) {
	x := max((w-runewidth.StringWidth(s))/2, 0)
	y := h / 2
	for _, ch := range s {
		if x >= w {
			return
		}
		r.screen.SetContent(x, y, ch, nil, styleBanner)
		x += runewidth.RuneWidth(ch)
	}
}

// tierGlyph 等级键的首字母作为字符
func tierGlyph(tier string) rune {
	if tier == "" {
		return '?'
	}
	return rune(tier[0])
}

// tierStyle 低等级偏绿，高等级偏红
func tierStyle(tier string) tcell.Style {
	idx := 0
	if tier != "" && tier[0] >= 'a' && tier[0] <= 'z' {
		idx = int(tier[0] - 'a')
	}
	t := min(float64(idx)/10, 1)
	red := int32(80 + 175*t)
	green := int32(220 - 170*t)
	return styleDefault.Foreground(tcell.NewRGBColor(red, green, 60))
}
