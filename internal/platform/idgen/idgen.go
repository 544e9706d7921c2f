// Package idgen provides the unique id sources used when dealing cards and
// starting sessions.
package idgen

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique identifiers
type Generator interface {
	NewID() uuid.UUID
}

// GeneratorFunc adapts a function to the Generator interface
type GeneratorFunc func() uuid.UUID

// NewID implements Generator
func (f GeneratorFunc) NewID() uuid.UUID {
	return f()
}

// Random returns a generator of random (version 4) UUIDs
func Random() Generator {
	return GeneratorFunc(uuid.New)
}

// Incrementing returns a deterministic generator yielding Nth(0), Nth(1), ...
// It is safe for concurrent use.
func Incrementing() Generator {
	var next atomic.Uint64
	return GeneratorFunc(func() uuid.UUID {
		return Nth(next.Add(1) - 1)
	})
}

// Nth returns the n-th id of an incrementing sequence,
// 00000000-0000-0000-0000-00000000000n.
func Nth(n uint64) uuid.UUID {
	var id uuid.UUID
	binary.BigEndian.PutUint64(id[8:], n)
	return id
}
