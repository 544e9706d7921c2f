package domain

// Pair is an ordered pair of tracker entries.
type Pair[T comparable] struct {
	First  T `json:"first"`
	Second T `json:"second"`
}

// PairMatch holds at most two candidates, first then second, and decides
// whether they match using the injected predicate.
type PairMatch[T comparable] struct {
	first    *T
	second   *T
	matching func(a, b T) bool
}

// NewPairMatch creates an empty tracker that uses matching to compare candidates.
func NewPairMatch[T comparable](matching func(a, b T) bool) PairMatch[T] {
	if matching == nil {
		panic("matching cannot be nil")
	}
	return PairMatch[T]{matching: matching}
}

// Add fills the first empty slot. It is a no-op when both slots are held.
func (p *PairMatch[T]) Add(candidate T) {
	switch {
	case p.first == nil:
		p.first = &candidate
	case p.second == nil:
		p.second = &candidate
	}
}

// Clear empties both slots.
func (p *PairMatch[T]) Clear() {
	p.first = nil
	p.second = nil
}

// Len returns how many slots are held.
func (p PairMatch[T]) Len() int {
	n := 0
	if p.first != nil {
		n++
	}
	if p.second != nil {
		n++
	}
	return n
}

// First returns the first candidate, if any.
func (p PairMatch[T]) First() (T, bool) {
	if p.first == nil {
		var zero T
		return zero, false
	}
	return *p.first, true
}

// CurrentPair returns both candidates when both slots are held.
func (p PairMatch[T]) CurrentPair() (Pair[T], bool) {
	if p.first == nil || p.second == nil {
		return Pair[T]{}, false
	}
	return Pair[T]{First: *p.first, Second: *p.second}, true
}

// PairMatch returns both candidates only when they are held and match.
func (p PairMatch[T]) PairMatch() (Pair[T], bool) {
	pair, ok := p.CurrentPair()
	if !ok || !p.matching(pair.First, pair.Second) {
		return Pair[T]{}, false
	}
	return pair, true
}

// Clone returns an independent copy of the tracker.
func (p PairMatch[T]) Clone() PairMatch[T] {
	out := PairMatch[T]{matching: p.matching}
	if p.first != nil {
		v := *p.first
		out.first = &v
	}
	if p.second != nil {
		v := *p.second
		out.second = &v
	}
	return out
}
