// Package effect describes the side effects a game reducer asks its host to
// perform (delayed actions, periodic actions, cancellations and outbound
// notifications) and provides the Scheduler that runs delayed and periodic
// work against an injectable clock.
//
// Every scheduled piece of work is keyed by an ID. Arming an ID that is
// already pending replaces the pending instance, and a fire belonging to a
// replaced or cancelled instance is dropped.
package effect
