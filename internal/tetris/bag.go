package tetris

import "math/rand"

// Bag is the undrawn remainder of the current 7-piece permutation. It is a
// value: Draw returns the successor bag instead of mutating the receiver.
// A piece type never appears twice in the remainder.
type Bag struct {
	pieces []PieceType
}

// NewBag returns an empty bag; the first Draw triggers a refill.
func NewBag() Bag {
	return Bag{}
}

// Draw returns the next piece type and the bag that remains. When the bag
// is empty it is first refilled with a Fisher-Yates shuffle of exactly the
// seven canonical types.
func (b Bag) Draw(rng *rand.Rand) (PieceType, Bag) {
	queue := b.pieces
	if len(queue) == 0 {
		queue = []PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}
		rng.Shuffle(len(queue), func(i, j int) {
			queue[i], queue[j] = queue[j], queue[i]
		})
	}
	return queue[0], Bag{pieces: queue[1:]}
}

// Len returns the number of undrawn pieces, always 0..7.
func (b Bag) Len() int {
	return len(b.pieces)
}

// Remaining returns a copy of the undrawn piece types in draw order.
func (b Bag) Remaining() []PieceType {
	return append([]PieceType(nil), b.pieces...)
}
