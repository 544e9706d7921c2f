// Package domain contains the core entities and value objects of the memory card
// game: cards, levels, game options, the pairing tracker and level summaries.
// It is independent of scheduling, transport and any delivery mechanism.
package domain
