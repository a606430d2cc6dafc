package tetris

import "fmt"

// Cell is a single board cell value: 0 empty, 1..7 a piece color index.
type Cell uint8

// Default playfield dimensions.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Point is a board coordinate. X grows rightward, Y grows downward;
// row 0 is the top of the playfield.
type Point struct {
	X, Y int
}

// Backend selects the board representation. Both backends are required to
// produce value-identical results for every operation; the choice is a
// construction-time decision, never a behavioral one.
type Backend uint8

const (
	// BackendDense stores the grid as one Cell per position.
	BackendDense Backend = iota
	// BackendBitmask packs occupancy into one bit per cell per row.
	BackendBitmask
)

// String returns the backend name used in configuration files.
func (b Backend) String() string {
	if b == BackendBitmask {
		return "bitmask"
	}
	return "dense"
}

// Board is an immutable fixed-size playfield. Mutating operations return a
// new board and never touch the receiver, so callers may freely retain old
// values.
type Board interface {
	// Width returns the number of columns.
	Width() int
	// Height returns the number of rows.
	Height() int
	// Cell returns the value at (x, y), or 0 when out of bounds.
	Cell(x, y int) Cell

	// IsValid reports whether every filled cell of the shape anchored at
	// (x, y) lands on an in-bounds empty board cell. Empty shape cells are
	// never checked, so a shape's zero padding may overlap anything.
	IsValid(s Shape, x, y int) bool

	// Place returns a new board with the shape's filled cells set to c.
	// Cells outside the vertical range are silently skipped (callers must
	// validate first); a filled cell outside the horizontal range is a
	// hard ErrOutOfBounds, since that would silently drop color data.
	Place(s Shape, x, y int, c Cell) (Board, error)

	// ClearCompleted removes every fully filled row, shifts the rows above
	// down, and refills the top with empty rows. It returns the new board,
	// the number of rows cleared and their original indices in top-down
	// order. The returned board is always a fresh copy, even when nothing
	// cleared.
	ClearCompleted() (Board, int, []int)
}

// NewBoard constructs a default-size board with the given backend.
func NewBoard(backend Backend) Board {
	return NewBoardSize(backend, BoardWidth, BoardHeight)
}

// NewBoardSize constructs a w by h board with the given backend.
func NewBoardSize(backend Backend, w, h int) Board {
	if backend == BackendBitmask {
		return NewBitmaskBoard(w, h)
	}
	return NewDenseBoard(w, h)
}

// placeError builds the hard error for a horizontal overflow in Place.
func placeError(x int) error {
	return fmt.Errorf("place column %d: %w", x, ErrOutOfBounds)
}

// collisionCause explains why IsValid rejected a placement: a filled cell
// outside the board is ErrOutOfBounds, an overlap with the stack is
// ErrBoardCollision. Returns nil for a valid placement.
func collisionCause(b Board, s Shape, x, y int) error {
	for dy, row := range s {
		for dx, v := range row {
			if v == 0 {
				continue
			}
			bx, by := x+dx, y+dy
			if bx < 0 || bx >= b.Width() || by < 0 || by >= b.Height() {
				return ErrOutOfBounds
			}
			if b.Cell(bx, by) != 0 {
				return ErrBoardCollision
			}
		}
	}
	return nil
}

// boardsEqual reports value equality across backends.
func boardsEqual(a, b Board) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.Cell(x, y) != b.Cell(x, y) {
				return false
			}
		}
	}
	return true
}
