// Package session hosts running games. Each game is driven by a Runner that
// serializes every input, scheduled continuation and timer tick through a
// single inbox goroutine, so game state is never mutated concurrently. The
// Registry keeps the runners of a process, enforces a capacity limit and
// reaps games that have been idle for too long.
package session
