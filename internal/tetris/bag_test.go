package tetris

import (
	"math/rand"
	"testing"
)

func drawN(t *testing.T, b Bag, rng *rand.Rand, n int) ([]PieceType, Bag) {
	t.Helper()
	drawn := make([]PieceType, 0, n)
	for i := 0; i < n; i++ {
		var pt PieceType
		pt, b = b.Draw(rng)
		drawn = append(drawn, pt)
	}
	return drawn, b
}

func TestBagSevenDrawsArePermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	bag := NewBag()

	for generation := 0; generation < 3; generation++ {
		var drawn []PieceType
		drawn, bag = drawN(t, bag, rng, NumPieceTypes)

		seen := make(map[PieceType]bool)
		for _, pt := range drawn {
			if pt == PieceNone {
				t.Fatalf("generation %d drew PieceNone", generation)
			}
			if seen[pt] {
				t.Fatalf("generation %d drew %s twice: %v", generation, pt, drawn)
			}
			seen[pt] = true
		}
		if len(seen) != NumPieceTypes {
			t.Fatalf("generation %d drew %d distinct types, want %d", generation, len(seen), NumPieceTypes)
		}
	}
}

func TestBagLengthStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	bag := NewBag()
	for i := 0; i < 30; i++ {
		if n := bag.Len(); n < 0 || n > NumPieceTypes {
			t.Fatalf("bag length %d out of range after %d draws", n, i)
		}
		_, bag = bag.Draw(rng)
	}
}

func TestBagRemainderHasNoRepeats(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	bag := NewBag()
	_, bag = bag.Draw(rng) // trigger a refill, leave 6 undrawn

	remaining := bag.Remaining()
	if len(remaining) != 6 {
		t.Fatalf("Remaining() has %d entries, want 6", len(remaining))
	}
	seen := make(map[PieceType]bool)
	for _, pt := range remaining {
		if seen[pt] {
			t.Fatalf("type %s appears twice in the undrawn remainder", pt)
		}
		seen[pt] = true
	}
}

func TestBagDeterministicWithSameSeed(t *testing.T) {
	first, _ := drawN(t, NewBag(), rand.New(rand.NewSource(12345)), 21)
	second, _ := drawN(t, NewBag(), rand.New(rand.NewSource(12345)), 21)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("draw %d differs for identical seeds: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestBagDrawDoesNotMutateReceiver(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	_, bag := NewBag().Draw(rng)

	before := bag.Remaining()
	bag.Draw(rng)
	after := bag.Remaining()

	if len(before) != len(after) {
		t.Fatalf("Draw mutated the receiver: %v -> %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("Draw mutated the receiver at %d: %v -> %v", i, before, after)
		}
	}
}
