package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneID 场景标识，对应桌面端的三种游戏状态
type SceneID string

const (
	SceneMainMenu SceneID = "main_menu"
	SceneRunning  SceneID = "running"
	ScenePaused   SceneID = "paused"
)

// Scene represents a game scene (main menu, running world, pause overlay).
type Scene interface {
	// Update updates the scene logic. deltaTime is in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Enterable 可选接口，场景被切换为当前场景时调用 OnEnter
type Enterable interface {
	OnEnter(from SceneID)
}

// Saveable 可选接口，窗口关闭时调用 SaveOnExit 保存战绩等数据
//
// 返回 false 表示保存失败（程序仍会正常退出）
type Saveable interface {
	SaveOnExit() bool
}
