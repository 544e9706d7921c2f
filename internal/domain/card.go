package domain

import (
	"github.com/google/uuid"
)

// CardID identifies a single card for the lifetime of a deal.
type CardID = uuid.UUID

// Face is the symbol printed on a card; two cards match when their faces are equal.
type Face string

// Card represents one physical card on the board.
// A paired card is always flipped; flipped-but-unpaired is a transient state.
type Card struct {
	ID        CardID `json:"id"`
	Face      Face   `json:"face"`
	IsFlipped bool   `json:"is_flipped"`
	IsPaired  bool   `json:"is_paired"`
}

// NewCard creates a hidden, unpaired card with the given id and face.
func NewCard(id CardID, face Face) Card {
	return Card{ID: id, Face: face}
}

// Flip turns the card face up.
func (c *Card) Flip() {
	c.IsFlipped = true
}

// Hide turns the card face down unless it has already been paired.
func (c *Card) Hide() {
	if c.IsPaired {
		return
	}
	c.IsFlipped = false
}

// Pair marks the card as permanently matched. Pairing is terminal.
func (c *Card) Pair() {
	c.IsFlipped = true
	c.IsPaired = true
}

// Selectable reports whether a tap on the card may flip it.
func (c Card) Selectable() bool {
	return !c.IsFlipped && !c.IsPaired
}

// FlippedCard is what the pairing tracker remembers about a selected card:
// its id and face, never the card itself.
type FlippedCard struct {
	ID   CardID `json:"id"`
	Face Face   `json:"face"`
}

// Flipped returns the tracker entry for the card.
func (c Card) Flipped() FlippedCard {
	return FlippedCard{ID: c.ID, Face: c.Face}
}

// SameFace is the board's matching rule: equal faces on two different cards.
func SameFace(a, b FlippedCard) bool {
	return a.Face == b.Face && a.ID != b.ID
}
