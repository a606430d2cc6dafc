package tetris

// bitmaskBoard packs row occupancy into one bit per cell, with colors kept
// in parallel rows so lookups stay value-identical with the dense backend.
// Validity and completed-row checks run on the masks alone.
type bitmaskBoard struct {
	w, h   int
	full   uint16
	mask   []uint16
	colors [][]Cell
}

// NewBitmaskBoard creates an empty w by h bitmask board. Widths above 16
// do not fit a row mask and are a programming error.
func NewBitmaskBoard(w, h int) Board {
	if w > 16 {
		panic("tetris: bitmask board supports widths up to 16")
	}
	b := &bitmaskBoard{
		w:      w,
		h:      h,
		full:   uint16(1)<<uint(w) - 1,
		mask:   make([]uint16, h),
		colors: make([][]Cell, h),
	}
	for y := range b.colors {
		b.colors[y] = make([]Cell, w)
	}
	return b
}

func (b *bitmaskBoard) Width() int  { return b.w }
func (b *bitmaskBoard) Height() int { return b.h }

func (b *bitmaskBoard) Cell(x, y int) Cell {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return 0
	}
	return b.colors[y][x]
}

func (b *bitmaskBoard) IsValid(s Shape, x, y int) bool {
	for dy, row := range s {
		var bits uint16
		for dx, v := range row {
			if v == 0 {
				continue
			}
			bx := x + dx
			if bx < 0 || bx >= b.w {
				return false
			}
			bits |= 1 << uint(bx)
		}
		if bits == 0 {
			continue
		}
		by := y + dy
		if by < 0 || by >= b.h {
			return false
		}
		if b.mask[by]&bits != 0 {
			return false
		}
	}
	return true
}

func (b *bitmaskBoard) Place(s Shape, x, y int, c Cell) (Board, error) {
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
			next.mask[by] |= 1 << uint(bx)
			next.colors[by][bx] = c
		}
	}
	return next, nil
}

func (b *bitmaskBoard) ClearCompleted() (Board, int, []int) {
	var cleared []int
	next := &bitmaskBoard{
		w:      b.w,
		h:      b.h,
		full:   b.full,
		mask:   make([]uint16, b.h),
		colors: make([][]Cell, b.h),
	}
	// Copy surviving rows bottom-up, then refill the vacated top.
	write := b.h - 1
	for y := b.h - 1; y >= 0; y-- {
		if b.mask[y] == b.full {
			cleared = append(cleared, y)
			continue
		}
		next.mask[write] = b.mask[y]
		next.colors[write] = append([]Cell(nil), b.colors[y]...)
		write--
	}
	for y := write; y >= 0; y-- {
		next.colors[y] = make([]Cell, b.w)
	}
	// Indices in top-down order.
	for i, j := 0, len(cleared)-1; i < j; i, j = i+1, j-1 {
		cleared[i], cleared[j] = cleared[j], cleared[i]
	}
	return next, len(cleared), cleared
}

func (b *bitmaskBoard) clone() *bitmaskBoard {
	next := &bitmaskBoard{
		w:      b.w,
		h:      b.h,
		full:   b.full,
		mask:   append([]uint16(nil), b.mask...),
		colors: make([][]Cell, b.h),
	}
	for y, row := range b.colors {
		next.colors[y] = append([]Cell(nil), row...)
	}
	return next
}
