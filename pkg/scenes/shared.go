package scenes

import (
	"log"

	"github.com/decker502/horde/pkg/game"
	"github.com/decker502/horde/pkg/simulation"
)

// Shared 三个场景共用的对象
type Shared struct {
	World    *simulation.World
	Settings *game.SettingsManager
	Records  *game.RecordsManager
	Scenes   *SceneManager
	Input    Input

	// SettingsChanged 设置修改后调用，用于同步音量等；可为 nil
	SettingsChanged func(s *game.GameSettings)
}

// saveSettings 通知并保存设置
func (sh *Shared) saveSettings() {
	if sh.SettingsChanged != nil {
		sh.SettingsChanged(sh.Settings.GetSettings())
	}
	if err := sh.Settings.Save(); err != nil {
		log.Printf("[Scenes] Warning: failed to save settings: %v", err)
	}
}

// run 一局的记录状态，保证每局只写一次战绩
type run struct {
	recorded bool
}

// finish 记录本局战绩；没有开始过波次或已记录时忽略
func (r *run) finish(sh *Shared) {
	if r.recorded || sh.Records == nil || sh.World.Wave() == 0 {
		return
	}
	r.recorded = true
	ps := sh.World.Player()
	if sh.Records.RecordGame(sh.World.Wave(), ps.Score, ps.Kills) {
		log.Printf("[Scenes] New record: wave %d, score %d", sh.World.Wave(), ps.Score)
	}
}
