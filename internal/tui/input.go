package tui

import "github.com/gdamore/tcell/v2"

// Action 按键对应的操作
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionAttack
	ActionPause
	ActionRestart
	ActionQuit
)

// Command 解析后的按键
// DX/DY 仅在 ActionMove 时有效
type Command struct {
	Action Action
	DX, DY float64
}

// ParseKey 把终端按键映射为操作
func ParseKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return Command{Action: ActionMove, DY: -1}
	case tcell.KeyDown:
		return Command{Action: ActionMove, DY: 1}
	case tcell.KeyLeft:
		return Command{Action: ActionMove, DX: -1}
	case tcell.KeyRight:
		return Command{Action: ActionMove, DX: 1}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Action: ActionQuit}
	case tcell.KeyEnter:
		return Command{Action: ActionPause}
	case tcell.KeyRune:
	default:
		return Command{}
	}

	switch ev.Rune() {
	case 'w', 'W':
		return Command{Action: ActionMove, DY: -1}
	case 's', 'S':
		return Command{Action: ActionMove, DY: 1}
	case 'a', 'A':
		return Command{Action: ActionMove, DX: -1}
	case 'd', 'D':
		return Command{Action: ActionMove, DX: 1}
	case ' ':
		return Command{Action: ActionAttack}
	case 'p', 'P':
		return Command{Action: ActionPause}
	case 'r', 'R':
		return Command{Action: ActionRestart}
	case 'q', 'Q':
		return Command{Action: ActionQuit}
	}
	return Command{}
}
