// Package events provides types and interfaces for the notifications a game
// publishes while it is played.
//
// Games emit events without knowing which handlers will process them, which
// keeps the session runtime independent of logging, metrics or any other
// consumer.
//
// The primary components are:
// - GameEvent: a notification about one hosted game
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
// - Bus: EventEmitter that delivers events to subscribers filtered by type and game
package events
