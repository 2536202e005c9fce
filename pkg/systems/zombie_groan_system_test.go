package systems

import (
	"testing"

	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/ecs"
	"github.com/decker502/horde/pkg/event"
)

func TestZombieGroan(t *testing.T) {
	w := newTestWorld(t)
	id := w.addZombie(t, "a", 100, 100)
	system := NewZombieGroanSystem(w.em, w.rng, w.cfg, w.events)
	groan, _ := ecs.GetComponent[*components.GroanComponent](w.em, id)

	t.Run("倒计时未到不呻吟", func(t *testing.T) {
		groan.Countdown = 1
		system.Update(testDt)
		if w.rec.Count(event.AgentGroaned) != 0 {
			t.Error("unexpected groan")
		}
	})

	t.Run("到期呻吟并重新随机", func(t *testing.T) {
		groan.Countdown = testDt / 2
		system.Update(testDt)

		groans := w.rec.Filter(event.AgentGroaned)
		if len(groans) != 1 || groans[0].Data.(event.AgentGroanedData).ID != id {
			t.Fatalf("expected one groan from %d, got %+v", id, groans)
		}
		if groan.Countdown < 1 || groan.Countdown > 30 {
			t.Errorf("expected new countdown in [1, 30], got %f", groan.Countdown)
		}
	})

	t.Run("淡出中不呻吟", func(t *testing.T) {
		w.kill(t, id)
		w.rec.Reset()
		groan.Countdown = 0
		system.Update(testDt)
		if w.rec.Count(event.AgentGroaned) != 0 {
			t.Error("fading zombie should not groan")
		}
	})
}
