package tetris

// denseBoard stores the playfield as one Cell per position.
type denseBoard struct {
	w, h  int
	cells [][]Cell
}

// NewDenseBoard creates an empty w by h dense-grid board.
func NewDenseBoard(w, h int) Board {
	b := &denseBoard{w: w, h: h, cells: make([][]Cell, h)}
	for y := range b.cells {
		b.cells[y] = make([]Cell, w)
	}
	return b
}

func (b *denseBoard) Width() int  { return b.w }
func (b *denseBoard) Height() int { return b.h }

func (b *denseBoard) Cell(x, y int) Cell {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return 0
	}
	return b.cells[y][x]
}

func (b *denseBoard) IsValid(s Shape, x, y int) bool {
	for dy, row := range s {
		for dx, v := range row {
			if v == 0 {
				continue
			}
			bx, by := x+dx, y+dy
			if bx < 0 || bx >= b.w || by < 0 || by >= b.h {
				return false
			}
			if b.cells[by][bx] != 0 {
				return false
			}
		}
	}
	return true
}

func (b *denseBoard) Place(s Shape, x, y int, c Cell) (Board, error) {
	next := b.clone()
	for dy, row := range s {
		for dx, v := range row {
			if v == 0 {
				continue
			}
			bx := x + dx
			if bx < 0 || bx >= b.w {
				return nil, placeError(bx)
			}
			by := y + dy
			if by < 0 || by >= b.h {
				continue
			}
			next.cells[by][bx] = c
		}
	}
	return next, nil
}

func (b *denseBoard) ClearCompleted() (Board, int, []int) {
	var cleared []int
	kept := make([][]Cell, 0, b.h)
	for y, row := range b.cells {
		if rowComplete(row) {
			cleared = append(cleared, y)
			continue
		}
		kept = append(kept, append([]Cell(nil), row...))
	}

	next := &denseBoard{w: b.w, h: b.h, cells: make([][]Cell, b.h)}
	shift := len(cleared)
	for y := 0; y < shift; y++ {
		next.cells[y] = make([]Cell, b.w)
	}
	copy(next.cells[shift:], kept)
	return next, len(cleared), cleared
}

func (b *denseBoard) clone() *denseBoard {
	next := &denseBoard{w: b.w, h: b.h, cells: make([][]Cell, b.h)}
	for y, row := range b.cells {
		next.cells[y] = append([]Cell(nil), row...)
	}
	return next
}

func rowComplete(row []Cell) bool {
	for _, c := range row {
		if c == 0 {
			return false
		}
	}
	return true
}
