package scenes

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/config"
	"github.com/decker502/horde/pkg/game"
	"github.com/decker502/horde/pkg/simulation"
)

// fakeInput 测试用输入，just 在每次 Update 后由测试清空
type fakeInput struct {
	held  map[ebiten.Key]bool
	just  map[ebiten.Key]bool
	click *[2]int
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (f *fakeInput) IsKeyPressed(key ebiten.Key) bool     { return f.held[key] }
func (f *fakeInput) IsKeyJustPressed(key ebiten.Key) bool { return f.just[key] }

func (f *fakeInput) LeftClick() (int, int, bool) {
	if f.click == nil {
		return 0, 0, false
	}
	return f.click[0], f.click[1], true
}

func (f *fakeInput) reset() {
	f.just = map[ebiten.Key]bool{}
	f.click = nil
}

type testApp struct {
	shared  *Shared
	input   *fakeInput
	running *RunningScene
	changed int
}

// tap 模拟一帧按键
func (a *testApp) tap(key ebiten.Key) {
	a.input.just[key] = true
	a.shared.Scenes.Update(1.0 / 60)
	a.input.reset()
}

func (a *testApp) update(n int) {
	for i := 0; i < n; i++ {
		a.shared.Scenes.Update(1.0 / 60)
	}
}

func (a *testApp) current() SceneID { return a.shared.Scenes.CurrentID() }

func newTestApp(t *testing.T, mutate func(cfg *config.SimulationConfig)) *testApp {
	t.Helper()
	cfg := config.DefaultSimulationConfig()
	cfg.Spawn.WaveDelayMs = 0
	if mutate != nil {
		mutate(cfg)
	}
	world, err := simulation.NewWorld(simulation.Options{Seed: 11, Config: cfg})
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	settings, _ := game.NewSettingsManager(nil)

	a := &testApp{input: newFakeInput()}
	a.shared = &Shared{
		World:    world,
		Settings: settings,
		Records:  game.NewRecordsManager(nil),
		Scenes:   NewSceneManager(),
		Input:    a.input,
		SettingsChanged: func(*game.GameSettings) {
			a.changed++
		},
	}
	a.running = NewRunningScene(a.shared)
	a.shared.Scenes.Register(SceneMainMenu, NewMainMenuScene(a.shared))
	a.shared.Scenes.Register(SceneRunning, a.running)
	a.shared.Scenes.Register(ScenePaused, NewPausedScene(a.shared, a.running))
	a.shared.Scenes.Switch(SceneMainMenu)
	return a
}

// firstAgent 推进直到出现僵尸
func firstAgent(t *testing.T, a *testApp) simulation.AgentView {
	t.Helper()
	for i := 0; i < 100; i++ {
		if snap := a.shared.World.Snapshot(); len(snap.Agents) > 0 {
			return snap.Agents[0]
		}
		a.update(1)
	}
	t.Fatal("no agent spawned")
	return simulation.AgentView{}
}

func TestMenuStartsRun(t *testing.T) {
	a := newTestApp(t, nil)
	if !a.shared.World.Paused() {
		t.Error("菜单中世界应暂停")
	}

	a.tap(ebiten.KeyEnter)
	if a.current() != SceneRunning {
		t.Fatalf("scene: got %q, want running", a.current())
	}
	w := a.shared.World
	if w.Wave() != 1 || w.Paused() {
		t.Errorf("new run: wave=%d paused=%v", w.Wave(), w.Paused())
	}
	if w.Steps() != 0 {
		t.Errorf("切换所在帧不推进, got %d steps", w.Steps())
	}
}

func TestPauseAndResume(t *testing.T) {
	a := newTestApp(t, nil)
	a.tap(ebiten.KeyEnter)
	a.update(10)
	steps := a.shared.World.Steps()

	a.tap(ebiten.KeyEscape)
	if a.current() != ScenePaused || !a.shared.World.Paused() {
		t.Fatalf("scene=%q paused=%v", a.current(), a.shared.World.Paused())
	}
	a.update(5)
	if a.shared.World.Steps() != steps {
		t.Errorf("暂停时不应推进: %d -> %d", steps, a.shared.World.Steps())
	}

	a.tap(ebiten.KeyP)
	if a.current() != SceneRunning || a.shared.World.Paused() {
		t.Fatalf("scene=%q paused=%v", a.current(), a.shared.World.Paused())
	}
	a.update(1)
	if got := a.shared.World.Steps(); got != steps+1 {
		t.Errorf("恢复后应继续同一局: steps got %d, want %d", got, steps+1)
	}
}

func TestQuitToMenuRecordsOnce(t *testing.T) {
	a := newTestApp(t, nil)
	a.tap(ebiten.KeyEnter)
	a.update(3)
	a.tap(ebiten.KeyEscape)
	a.tap(ebiten.KeyQ)

	if a.current() != SceneMainMenu {
		t.Fatalf("scene: got %q, want main menu", a.current())
	}
	if got := a.shared.Records.Records().GamesPlayed; got != 1 {
		t.Errorf("GamesPlayed: got %d, want 1", got)
	}

	// 退出程序时已记录的一局不再重复
	a.shared.Scenes.SaveAll()
	if got := a.shared.Records.Records().GamesPlayed; got != 1 {
		t.Errorf("GamesPlayed after SaveAll: got %d, want 1", got)
	}

	a.tap(ebiten.KeyEnter)
	if a.shared.World.Steps() != 0 || a.shared.World.Wave() != 1 {
		t.Errorf("新的一局: steps=%d wave=%d", a.shared.World.Steps(), a.shared.World.Wave())
	}
	a.shared.Scenes.SaveAll()
	if got := a.shared.Records.Records().GamesPlayed; got != 2 {
		t.Errorf("GamesPlayed: got %d, want 2", got)
	}
}

func TestRunningMovement(t *testing.T) {
	a := newTestApp(t, nil)
	a.tap(ebiten.KeyEnter)
	a.shared.World.SetPlayerPosition(500, 500)

	tests := []struct {
		name   string
		keys   []ebiten.Key
		dx, dy float64
	}{
		{"D 向右", []ebiten.Key{ebiten.KeyD}, 0.7, 0},
		{"方向键向上", []ebiten.Key{ebiten.KeyArrowUp}, 0, -0.7},
		{"左右抵消", []ebiten.Key{ebiten.KeyA, ebiten.KeyD}, 0, 0},
		{"对角线", []ebiten.Key{ebiten.KeyS, ebiten.KeyD}, 0.7 / math.Sqrt2, 0.7 / math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0 := a.shared.World.PlayerPosition()
			for _, k := range tt.keys {
				a.input.held[k] = true
			}
			a.update(1)
			a.input.held = map[ebiten.Key]bool{}

			x, y := a.shared.World.PlayerPosition()
			if math.Abs(x-x0-tt.dx) > 1e-9 || math.Abs(y-y0-tt.dy) > 1e-9 {
				t.Errorf("moved (%v, %v), want (%v, %v)", x-x0, y-y0, tt.dx, tt.dy)
			}
		})
	}
}

func TestRunningClickAttack(t *testing.T) {
	a := newTestApp(t, nil)
	a.tap(ebiten.KeyEnter)
	agent := firstAgent(t, a)

	a.input.click = &[2]int{int(agent.X * RenderScale), int(agent.Y * RenderScale)}
	a.update(1)
	a.input.reset()

	for _, v := range a.shared.World.Snapshot().Agents {
		if v.ID == agent.ID && v.State != components.ZombieFading {
			t.Errorf("点击命中的 a 级僵尸应被击杀, state=%v health=%d", v.State, v.Health)
		}
	}
	if got := a.shared.World.Player().Kills; got != 1 {
		t.Errorf("Kills: got %d, want 1", got)
	}
}

func TestRunningSweepAttack(t *testing.T) {
	a := newTestApp(t, nil)
	a.tap(ebiten.KeyEnter)
	agent := firstAgent(t, a)
	a.shared.World.SetPlayerPosition(agent.X, agent.Y)

	a.tap(ebiten.KeySpace)
	for _, v := range a.shared.World.Snapshot().Agents {
		if v.ID == agent.ID && v.Health != agent.MaxHealth-sweepDamage {
			t.Errorf("health: got %d, want %d", v.Health, agent.MaxHealth-sweepDamage)
		}
	}
}

func TestGameOverReturnsToMenu(t *testing.T) {
	a := newTestApp(t, func(cfg *config.SimulationConfig) {
		cfg.Player.MaxHealth = 1
	})
	a.tap(ebiten.KeyEnter)
	agent := firstAgent(t, a)
	a.shared.World.SetPlayerPosition(agent.X, agent.Y)

	for i := 0; i < 10 && !a.shared.World.GameOver(); i++ {
		a.update(1)
	}
	if !a.shared.World.GameOver() {
		t.Fatal("player should be dead")
	}
	if got := a.shared.Records.Records().GamesPlayed; got != 1 {
		t.Errorf("GamesPlayed: got %d, want 1", got)
	}

	a.update(int(gameOverDelay*60) - 1)
	if a.current() != SceneRunning {
		t.Fatalf("结算画面应停留 %.0f 秒", gameOverDelay)
	}
	a.update(2)
	if a.current() != SceneMainMenu {
		t.Errorf("scene: got %q, want main menu", a.current())
	}
	if got := a.shared.Records.Records().GamesPlayed; got != 1 {
		t.Errorf("GamesPlayed: got %d, want 1", got)
	}
}

func TestMenuSettings(t *testing.T) {
	a := newTestApp(t, nil)
	s := a.shared.Settings.GetSettings()

	a.tap(ebiten.KeyM)
	if s.SoundEnabled {
		t.Error("M 应关闭音效")
	}
	a.tap(ebiten.KeyF)
	if !s.ShowFPS {
		t.Error("F 应显示帧率")
	}
	a.tap(ebiten.KeyMinus)
	if math.Abs(s.SoundVolume-0.7) > 1e-9 {
		t.Errorf("volume: got %v, want 0.7", s.SoundVolume)
	}
	for i := 0; i < 5; i++ {
		a.tap(ebiten.KeyEqual)
	}
	if s.SoundVolume != 1 {
		t.Errorf("音量上限为 1, got %v", s.SoundVolume)
	}
	if a.changed != 8 {
		t.Errorf("SettingsChanged calls: got %d, want 8", a.changed)
	}
	if a.current() != SceneMainMenu {
		t.Errorf("设置按键不应离开菜单, got %q", a.current())
	}
}

func TestMenuLines(t *testing.T) {
	a := newTestApp(t, nil)
	a.shared.Records.RecordGame(4, 120, 30)

	lines := menuLines(a.shared)
	want := []string{
		"best wave 4   best score 120",
		"games 1   total kills 30",
		"sound 80%",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines: got %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestHUDLines(t *testing.T) {
	snap := simulation.Snapshot{Wave: 2, Alive: 5, Queued: 10}
	snap.Player = simulation.PlayerView{Health: 90, MaxHealth: 100, Score: 15, Kills: 3, Level: 2, Experience: 4, NextLevel: 180}
	lines := hudLines(snap)
	if lines[0] != "Wave 2   Alive 5   Queue 10" || lines[3] != "Level 2   XP 4/180" {
		t.Errorf("hud: %q", lines)
	}

	snap.Player.NextLevel = 0
	if got := hudLines(snap)[3]; got != "Level 2   XP max" {
		t.Errorf("满级: got %q", got)
	}
}

func TestTierColor(t *testing.T) {
	tests := []struct {
		name  string
		tier  string
		alpha float64
		wantR uint8
		wantA uint8
	}{
		{"a 级", "a", 1, 80, 255},
		{"k 级最深", "k", 1, 250, 255},
		{"超出范围按最深", "z", 1, 250, 255},
		{"淡出一半", "a", 0.5, 80, 127},
		{"空等级", "", 1, 80, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tierColor(tt.tier, tt.alpha)
			if c.R != tt.wantR || c.A != tt.wantA {
				t.Errorf("got R=%d A=%d, want R=%d A=%d", c.R, c.A, tt.wantR, tt.wantA)
			}
		})
	}
}

func TestFacing(t *testing.T) {
	x, y := facing(90)
	if math.Abs(float64(x)) > 1e-6 || math.Abs(float64(y)+1) > 1e-6 {
		t.Errorf("90 度应朝屏幕上方, got (%v, %v)", x, y)
	}
	x, y = facing(0)
	if math.Abs(float64(x)-1) > 1e-6 || math.Abs(float64(y)) > 1e-6 {
		t.Errorf("0 度应朝右, got (%v, %v)", x, y)
	}
}
