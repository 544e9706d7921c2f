// Package game sequences a whole game: option selection, one board session
// per level, the level summary, and the way back to the options screen.
//
// Like the board, the flow is a reducer. It owns at most one board.State and
// forwards board actions to it, lifting the board's effects into its own
// action space.
package game
