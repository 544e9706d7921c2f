// Package api exposes hosted games over HTTP. It decodes and validates
// requests, translates them into game actions dispatched to a game's
// runner, and renders the resulting views as JSON.
package api
