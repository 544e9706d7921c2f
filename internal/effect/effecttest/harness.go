// Package effecttest provides a virtual-time host for reducers that return
// effect values, so that delayed and periodic transitions can be tested
// without real clocks or goroutines.
package effecttest

import (
	"sort"
	"time"

	"github.com/phrazzld/memory-cards/internal/effect"
)

// Harness feeds actions to a reducer and runs the effects it returns on a
// virtual clock. Due effects fire in due-time order; ties fire in arming order.
type Harness struct {
	reduce  func(action any) []effect.Effect
	now     time.Duration
	seq     uint64
	pending map[effect.ID]*entry
	emitted []effect.Emit
}

type entry struct {
	due    time.Duration
	seq    uint64
	every  time.Duration
	action any
}

// New creates a harness around reduce.
func New(reduce func(action any) []effect.Effect) *Harness {
	return &Harness{
		reduce:  reduce,
		pending: make(map[effect.ID]*entry),
	}
}

// Send dispatches action immediately and applies the resulting effects.
func (h *Harness) Send(action any) {
	h.Apply(h.reduce(action))
}

// Apply schedules, cancels or records the given effects.
func (h *Harness) Apply(effects []effect.Effect) {
	for _, e := range effects {
		switch v := e.(type) {
		case effect.Delay:
			h.seq++
			h.pending[v.ID] = &entry{due: h.now + v.After, seq: h.seq, action: v.Action}
		case effect.Repeat:
			h.seq++
			h.pending[v.ID] = &entry{due: h.now + v.Every, seq: h.seq, every: v.Every, action: v.Action}
		case effect.Cancel:
			for _, id := range v.IDs {
				delete(h.pending, id)
			}
		case effect.Emit:
			h.emitted = append(h.emitted, v)
		}
	}
}

// Advance moves the virtual clock forward by d, firing everything that
// becomes due on the way.
func (h *Harness) Advance(d time.Duration) {
	target := h.now + d
	for {
		id, next := h.nextDue(target)
		if next == nil {
			break
		}
		h.now = next.due
		if next.every > 0 {
			h.seq++
			next.due += next.every
			next.seq = h.seq
		} else {
			delete(h.pending, id)
		}
		h.Send(next.action)
	}
	h.now = target
}

func (h *Harness) nextDue(limit time.Duration) (effect.ID, *entry) {
	var (
		bestID effect.ID
		best   *entry
	)
	for id, e := range h.pending {
		if e.due > limit {
			continue
		}
		if best == nil || e.due < best.due || (e.due == best.due && e.seq < best.seq) {
			bestID, best = id, e
		}
	}
	return bestID, best
}

// Now returns the virtual time elapsed since the harness was created.
func (h *Harness) Now() time.Duration {
	return h.now
}

// Pending returns the ids with pending work, sorted.
func (h *Harness) Pending() []effect.ID {
	ids := make([]effect.ID, 0, len(h.pending))
	for id := range h.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// IsPending reports whether id has pending work.
func (h *Harness) IsPending(id effect.ID) bool {
	_, ok := h.pending[id]
	return ok
}

// Emitted returns every Emit effect seen so far, in order.
func (h *Harness) Emitted() []effect.Emit {
	return h.emitted
}
