// Package board implements a single board session: the deal of one level,
// card flips, pair resolution, level completion, the elapsed-time clock and
// the summary shown when every card is paired.
//
// The package is a pure reducer. Reduce mutates a State in response to an
// Action and returns the effects (delays, periodic ticks, cancellations and
// notifications) the host must run. Delayed actions come back through Reduce
// when they fire. Internal actions carry the session id of the deal that
// scheduled them and are ignored once that deal has been replaced.
package board
