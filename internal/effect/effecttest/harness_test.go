package effecttest

import (
	"testing"
	"time"

	"github.com/phrazzld/memory-cards/internal/effect"
	"github.com/stretchr/testify/assert"
)

func TestHarnessOrdering(t *testing.T) {
	t.Parallel()

	var seen []string
	h := New(func(action any) []effect.Effect {
		name := action.(string)
		seen = append(seen, name)
		if name == "start" {
			return []effect.Effect{
				effect.Delay{ID: "late", After: 2 * time.Second, Action: "late"},
				effect.Delay{ID: "tie-first", After: time.Second, Action: "tie-first"},
				effect.Delay{ID: "tie-second", After: time.Second, Action: "tie-second"},
				effect.Repeat{ID: "tick", Every: time.Second, Action: "tick"},
			}
		}
		return nil
	})

	h.Send("start")
	h.Advance(2 * time.Second)

	assert.Equal(t, []string{
		"start",
		"tie-first", "tie-second", "tick",
		"late", "tick",
	}, seen)
	assert.Equal(t, []effect.ID{"tick"}, h.Pending())
	assert.Equal(t, 2*time.Second, h.Now())
}

func TestHarnessCancelAndEmit(t *testing.T) {
	t.Parallel()

	fired := false
	h := New(func(action any) []effect.Effect {
		if action == "fire" {
			fired = true
		}
		return nil
	})

	h.Apply([]effect.Effect{
		effect.Delay{ID: "x", After: time.Second, Action: "fire"},
		effect.CancelIDs("x"),
		effect.Emit{Type: "done"},
	})
	h.Advance(time.Minute)

	assert.False(t, fired)
	assert.False(t, h.IsPending("x"))
	assert.Equal(t, []effect.Emit{{Type: "done"}}, h.Emitted())
}
