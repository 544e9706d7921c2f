package effect

import "time"

// ID identifies a class of scheduled work. At most one instance per ID is pending.
type ID string

// Effect is a side effect requested by a reducer. Effects are plain data.
type Effect interface {
	isEffect()
}

// Delay delivers Action back to the reducer after the given delay.
type Delay struct {
	ID     ID
	After  time.Duration
	Action any
}

// Repeat delivers Action every period until cancelled.
type Repeat struct {
	ID     ID
	Every  time.Duration
	Action any
}

// Cancel stops pending or periodic work immediately.
type Cancel struct {
	IDs []ID
}

// Emit publishes an outbound notification.
type Emit struct {
	Type    string
	Payload any
}

func (Delay) isEffect()  {}
func (Repeat) isEffect() {}
func (Cancel) isEffect() {}
func (Emit) isEffect()   {}

// CancelIDs is shorthand for a Cancel effect.
func CancelIDs(ids ...ID) Cancel {
	return Cancel{IDs: ids}
}

// Map rewrites the actions carried by Delay and Repeat effects, leaving the
// other effects untouched. It is used by a parent reducer to lift the
// actions of a child reducer into its own action type.
func Map(effects []Effect, wrap func(action any) any) []Effect {
	if len(effects) == 0 {
		return effects
	}
	out := make([]Effect, 0, len(effects))
	for _, e := range effects {
		switch v := e.(type) {
		case Delay:
			v.Action = wrap(v.Action)
			out = append(out, v)
		case Repeat:
			v.Action = wrap(v.Action)
			out = append(out, v)
		default:
			out = append(out, e)
		}
	}
	return out
}
