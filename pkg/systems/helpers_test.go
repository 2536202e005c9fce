package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/config"
	"github.com/decker502/horde/pkg/ecs"
	"github.com/decker502/horde/pkg/entities"
	"github.com/decker502/horde/pkg/event"
	"github.com/decker502/horde/pkg/utils"
)

// testDt 固定步长
const testDt = 1.0 / 60.0

// testWorld 系统测试共用的最小世界
type testWorld struct {
	em     *ecs.EntityManager
	cfg    *config.SimulationConfig
	tiers  *config.TierCatalogue
	grid   utils.Grid
	events *event.Dispatcher
	rec    *event.Recorder
	rng    *rand.Rand
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()

	cfg := config.DefaultSimulationConfig()
	w := &testWorld{
		em:     ecs.NewEntityManager(),
		cfg:    cfg,
		tiers:  config.DefaultTierCatalogue(),
		grid:   utils.NewGrid(cfg.World.Width, cfg.World.Height, cfg.World.GridResolution, cfg.World.CellSize),
		events: event.NewDispatcher(),
		rec:    &event.Recorder{},
		rng:    rand.New(rand.NewSource(1)),
	}
	w.events.SubscribeAll(w.rec)
	entities.NewTimerEntity(w.em)
	return w
}

func (w *testWorld) addZombie(t *testing.T, tier string, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewZombieEntity(w.em, w.rng, w.cfg, w.tiers.Lookup(tier), x, y)
	if err != nil {
		t.Fatalf("NewZombieEntity failed: %v", err)
	}
	return id
}

func (w *testWorld) addPlayer(x, y float64) ecs.EntityID {
	id := entities.NewPlayerEntity(w.em, w.cfg)
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	pos.X, pos.Y = x, y
	return id
}

func (w *testWorld) position(id ecs.EntityID) *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	return pos
}

func (w *testWorld) zombie(id ecs.EntityID) *components.ZombieComponent {
	z, _ := ecs.GetComponent[*components.ZombieComponent](w.em, id)
	return z
}

func (w *testWorld) health(id ecs.EntityID) *components.HealthComponent {
	h, _ := ecs.GetComponent[*components.HealthComponent](w.em, id)
	return h
}

// kill 把僵尸直接打入淡出状态
func (w *testWorld) kill(t *testing.T, id ecs.EntityID) {
	t.Helper()
	ds := NewZombieDamageSystem(w.em, w.cfg, w.tiers, w.events)
	if !ds.TakeDamage(id, 1_000_000) {
		t.Fatalf("TakeDamage(%d) returned false", id)
	}
}
