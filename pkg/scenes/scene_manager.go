package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 管理当前活动场景
// 同一时刻只调用一个场景的 Update 和 Draw。
type SceneManager struct {
	scenes       map[SceneID]Scene
	currentScene Scene
	currentID    SceneID
}

// NewSceneManager creates a manager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		scenes: make(map[SceneID]Scene),
	}
}

// Register 注册具名场景，重复注册会覆盖
func (sm *SceneManager) Register(id SceneID, scene Scene) {
	sm.scenes[id] = scene
}

// SwitchTo 直接切换到给定场景（不经过注册表）
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	sm.currentID = ""
}

// Switch 切换到已注册的场景
// 未注册的 id 记录错误并保持当前场景，返回 false
func (sm *SceneManager) Switch(id SceneID) bool {
	scene, ok := sm.scenes[id]
	if !ok || scene == nil {
		log.Printf("[SceneManager] 错误: 场景未注册: %s", id)
		return false
	}

	from := sm.currentID
	sm.currentScene = scene
	sm.currentID = id
	if e, ok := scene.(Enterable); ok {
		e.OnEnter(from)
	}
	log.Printf("[SceneManager] 切换场景: %s -> %s", from, id)
	return true
}

// GetCurrentScene 返回当前场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentID 返回当前场景的标识，通过 SwitchTo 切换时为空
func (sm *SceneManager) CurrentID() SceneID {
	return sm.currentID
}

// SaveAll 对所有实现 Saveable 的已注册场景调用 SaveOnExit
func (sm *SceneManager) SaveAll() bool {
	ok := true
	seen := make(map[Scene]bool)
	for _, scene := range sm.scenes {
		if seen[scene] {
			continue
		}
		seen[scene] = true
		if s, isSaveable := scene.(Saveable); isSaveable && !s.SaveOnExit() {
			ok = false
		}
	}
	return ok
}

// Update updates the currently active scene, if any.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene, if any.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
