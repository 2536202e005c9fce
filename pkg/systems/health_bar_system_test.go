package systems

import (
	"testing"

	"github.com/decker502/horde/pkg/components"
	"github.com/decker502/horde/pkg/ecs"
)

func TestHealthBarHidesAfterVisibleDuration(t *testing.T) {
	w := newTestWorld(t)
	id := w.addZombie(t, "a", 100, 100)
	damage := NewZombieDamageSystem(w.em, w.cfg, w.tiers, w.events)
	bars := NewHealthBarSystem(w.em)

	damage.TakeDamage(id, 1)
	bar, _ := ecs.GetComponent[*components.HealthBarComponent](w.em, id)
	if !bar.Visible {
		t.Fatal("health bar should be visible after damage")
	}

	// 120ms 约等于 7.2 步
	for i := 0; i < 7; i++ {
		bars.Update(testDt)
	}
	if !bar.Visible {
		t.Error("health bar should still be visible after 7 steps")
	}

	bars.Update(testDt)
	if bar.Visible {
		t.Error("health bar should be hidden after 8 steps")
	}

	t.Run("再次受伤重新显示", func(t *testing.T) {
		damage.TakeDamage(id, 1)
		if !bar.Visible || bar.Remaining != 0.12 {
			t.Errorf("expected bar visible with 0.12s remaining, got %+v", bar)
		}
	})
}
