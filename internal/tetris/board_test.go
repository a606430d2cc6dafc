package tetris

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

var backends = []struct {
	name    string
	backend Backend
}{
	{"dense", BackendDense},
	{"bitmask", BackendBitmask},
}

// buildBoard fills a board from strings: '.' is empty, '1'..'7' a color.
func buildBoard(t *testing.T, backend Backend, rows []string) Board {
	t.Helper()
	b := NewBoardSize(backend, len(rows[0]), len(rows))
	dot := Shape{{1}}
	for y, row := range rows {
		for x, ch := range row {
			if ch == '.' {
				continue
			}
			var err error
			b, err = b.Place(dot, x, y, Cell(ch-'0'))
			if err != nil {
				t.Fatalf("building board at (%d,%d): %v", x, y, err)
			}
		}
	}
	return b
}

// fillCells marks individual cells on a board.
func fillCells(t *testing.T, b Board, c Cell, pts ...Point) Board {
	t.Helper()
	dot := Shape{{1}}
	for _, p := range pts {
		var err error
		b, err = b.Place(dot, p.X, p.Y, c)
		if err != nil {
			t.Fatalf("filling cell (%d,%d): %v", p.X, p.Y, err)
		}
	}
	return b
}

func TestIsValidBounds(t *testing.T) {
	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			b := NewBoardSize(be.backend, BoardWidth, BoardHeight)
			tShape := ShapeOf(PieceT, 0)

			if !b.IsValid(tShape, 0, 0) {
				t.Error("T at (0,0) on an empty board should be valid")
			}
			if b.IsValid(tShape, -1, 0) {
				t.Error("T at (-1,0) reaches past the left wall")
			}
			if b.IsValid(tShape, 8, 0) {
				t.Error("T at (8,0) reaches past the right wall")
			}
			if b.IsValid(tShape, 3, -1) {
				t.Error("T at (3,-1) reaches above row 0")
			}
			if !b.IsValid(tShape, 3, 18) {
				t.Error("T at (3,18) rests exactly on the floor and should be valid")
			}
			if b.IsValid(tShape, 3, 19) {
				t.Error("T at (3,19) reaches below the floor")
			}
		})
	}
}

func TestIsValidIgnoresEmptyPadding(t *testing.T) {
	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			b := NewBoardSize(be.backend, BoardWidth, BoardHeight)
			iShape := ShapeOf(PieceI, 0) // filled cells only on matrix row 1

			// The all-zero top row may hang above the board.
			if !b.IsValid(iShape, 3, -1) {
				t.Error("I padding above row 0 should not invalidate the position")
			}

			// Padding may also overlap filled board cells.
			b = fillCells(t, b, PieceO.Color(), Point{3, 10})
			if !b.IsValid(iShape, 3, 10) {
				t.Error("empty shape cells over a filled board cell should be valid")
			}
			if b.IsValid(iShape, 3, 9) {
				t.Error("filled shape cell over a filled board cell should be invalid")
			}
		})
	}
}

func TestPlaceSetsColorsAndKeepsOriginal(t *testing.T) {
	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			b := NewBoardSize(be.backend, BoardWidth, BoardHeight)
			placed, err := b.Place(ShapeOf(PieceT, 0), 4, 10, PieceT.Color())
			if err != nil {
				t.Fatalf("Place failed: %v", err)
			}
			for _, p := range []Point{{5, 10}, {4, 11}, {5, 11}, {6, 11}} {
				if placed.Cell(p.X, p.Y) != PieceT.Color() {
					t.Errorf("cell (%d,%d) = %d, want %d", p.X, p.Y, placed.Cell(p.X, p.Y), PieceT.Color())
				}
				if b.Cell(p.X, p.Y) != 0 {
					t.Errorf("original board mutated at (%d,%d)", p.X, p.Y)
				}
			}
		})
	}
}

func TestPlaceHorizontalOverflowIsError(t *testing.T) {
	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			b := NewBoardSize(be.backend, BoardWidth, BoardHeight)
			if _, err := b.Place(ShapeOf(PieceT, 0), 8, 10, PieceT.Color()); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("Place past the right wall: err = %v, want ErrOutOfBounds", err)
			}
			if _, err := b.Place(ShapeOf(PieceT, 0), -1, 10, PieceT.Color()); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("Place past the left wall: err = %v, want ErrOutOfBounds", err)
			}
		})
	}
}

func TestPlaceSkipsVerticalOverflow(t *testing.T) {
	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			b := NewBoardSize(be.backend, BoardWidth, BoardHeight)
			// Vertical I with its top two cells above row 0.
			placed, err := b.Place(ShapeOf(PieceI, 1), 3, -2, PieceI.Color())
			if err != nil {
				t.Fatalf("Place failed: %v", err)
			}
			if placed.Cell(5, 0) != PieceI.Color() || placed.Cell(5, 1) != PieceI.Color() {
				t.Error("in-range cells of a partially off-board piece should be placed")
			}
		})
	}
}

func TestClearCompletedSingleRow(t *testing.T) {
	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			rows := []string{
				"....",
				"1..2",
				"3333",
			}
			b := buildBoard(t, be.backend, rows)
			next, count, cleared := b.ClearCompleted()

			if count != 1 || !reflect.DeepEqual(cleared, []int{2}) {
				t.Fatalf("ClearCompleted = %d %v, want 1 [2]", count, cleared)
			}
			if next.Width() != 4 || next.Height() != 3 {
				t.Errorf("dimensions changed to %dx%d", next.Width(), next.Height())
			}
			// The partial row gravitates to the bottom.
			if next.Cell(0, 2) != 1 || next.Cell(3, 2) != 2 {
				t.Error("row above the clear did not shift down")
			}
			for x := 0; x < 4; x++ {
				if next.Cell(x, 0) != 0 || next.Cell(x, 1) != 0 {
					t.Errorf("vacated top rows not empty at x=%d", x)
				}
			}
		})
	}
}

func TestClearCompletedKeepsRelativeOrder(t *testing.T) {
	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			rows := []string{
				"1...",
				"2222",
				".3..",
				"4444",
			}
			b := buildBoard(t, be.backend, rows)
			next, count, cleared := b.ClearCompleted()

			if count != 2 || !reflect.DeepEqual(cleared, []int{1, 3}) {
				t.Fatalf("ClearCompleted = %d %v, want 2 [1 3]", count, cleared)
			}
			// Survivors keep their order, shifted down by the clears below.
			if next.Cell(0, 2) != 1 {
				t.Error("top survivor should land on row 2")
			}
			if next.Cell(1, 3) != 3 {
				t.Error("lower survivor should land on row 3")
			}
		})
	}
}

func TestClearCompletedNoClearReturnsFreshCopy(t *testing.T) {
	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			b := buildBoard(t, be.backend, []string{
				"1..2",
				"....",
			})
			next, count, cleared := b.ClearCompleted()
			if count != 0 || len(cleared) != 0 {
				t.Fatalf("ClearCompleted = %d %v, want 0 []", count, cleared)
			}
			if next == b {
				t.Error("ClearCompleted must not alias the input board")
			}
			if !boardsEqual(next, b) {
				t.Error("no-op clear must return a value-equal board")
			}
		})
	}
}

// TestBackendEquivalence drives both backends through the same randomized
// sequence of operations and requires identical observable results.
func TestBackendEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dense := NewBoardSize(BackendDense, BoardWidth, BoardHeight)
	bits := NewBoardSize(BackendBitmask, BoardWidth, BoardHeight)

	for step := 0; step < 500; step++ {
		pt := allTypes[rng.Intn(len(allTypes))]
		shape := ShapeOf(pt, rng.Intn(4))
		x := rng.Intn(BoardWidth+4) - 2
		y := rng.Intn(BoardHeight+4) - 2

		okDense := dense.IsValid(shape, x, y)
		okBits := bits.IsValid(shape, x, y)
		if okDense != okBits {
			t.Fatalf("step %d: IsValid(%s, %d, %d) dense=%v bitmask=%v", step, pt, x, y, okDense, okBits)
		}
		if !okDense {
			continue
		}

		var errDense, errBits error
		dense, errDense = dense.Place(shape, x, y, pt.Color())
		bits, errBits = bits.Place(shape, x, y, pt.Color())
		if (errDense == nil) != (errBits == nil) {
			t.Fatalf("step %d: Place errors diverge: dense=%v bitmask=%v", step, errDense, errBits)
		}

		var nDense, nBits int
		var rowsDense, rowsBits []int
		dense, nDense, rowsDense = dense.ClearCompleted()
		bits, nBits, rowsBits = bits.ClearCompleted()
		if nDense != nBits || !reflect.DeepEqual(rowsDense, rowsBits) {
			t.Fatalf("step %d: ClearCompleted diverges: dense=%d %v bitmask=%d %v",
				step, nDense, rowsDense, nBits, rowsBits)
		}
		if !boardsEqual(dense, bits) {
			t.Fatalf("step %d: boards diverged after placing %s at (%d,%d)", step, pt, x, y)
		}
	}
}
