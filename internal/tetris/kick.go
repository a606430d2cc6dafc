package tetris

// Offset is a wall kick displacement in board coordinates: positive DX
// kicks right, positive DY kicks down.
type Offset struct {
	DX, DY int
}

type transition struct {
	from, to int
}

// SRS wall kick tables, expressed in this package's top-down Y axis (the
// published tables use Y-up, so their vertical components are negated
// here). Offset order is a hard contract: the first offset that validates
// wins, and reordering would change which placement a rotation settles in.
var jlstzKicks = map[transition][]Offset{
	{0, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{1, 0}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{1, 2}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{2, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{2, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{3, 2}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{3, 0}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{0, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
}

var iKicks = map[transition][]Offset{
	{0, 1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{1, 0}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{1, 2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{2, 1}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{2, 3}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{3, 2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{3, 0}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{0, 3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
}

// 180-degree kicks. The guideline SRS has no 180 rotation; these follow
// the common community extension tables.
var jlstz180Kicks = map[transition][]Offset{
	{0, 2}: {{0, 0}, {0, -1}, {1, -1}, {-1, -1}, {1, 0}, {-1, 0}},
	{1, 3}: {{0, 0}, {1, 0}, {1, -2}, {1, -1}, {0, -2}, {0, -1}},
	{2, 0}: {{0, 0}, {0, 1}, {-1, 1}, {1, 1}, {-1, 0}, {1, 0}},
	{3, 1}: {{0, 0}, {-1, 0}, {-1, -2}, {-1, -1}, {0, -2}, {0, -1}},
}

var i180Kicks = map[transition][]Offset{
	{0, 2}: {{0, 0}, {0, -1}, {1, -1}, {-1, -1}, {1, 0}, {-1, 0}},
	{1, 3}: {{0, 0}, {1, 0}, {1, -2}, {1, -1}, {0, -2}, {0, -1}},
	{2, 0}: {{0, 0}, {0, 1}, {-1, 1}, {1, 1}, {-1, 0}, {1, 0}},
	{3, 1}: {{0, 0}, {-1, 0}, {-1, -2}, {-1, -1}, {0, -2}, {0, -1}},
}

// KickOffsets returns the ordered wall kick offsets for rotating the given
// piece type from one rotation state to another. The list always starts
// with (0,0); the O piece never kicks.
func KickOffsets(t PieceType, from, to int) []Offset {
	if t == PieceO {
		return []Offset{{0, 0}}
	}
	step := transition{from, to}
	var table map[transition][]Offset
	switch {
	case (to-from+4)%4 == 2 && t == PieceI:
		table = i180Kicks
	case (to-from+4)%4 == 2:
		table = jlstz180Kicks
	case t == PieceI:
		table = iKicks
	default:
		table = jlstzKicks
	}
	return append([]Offset(nil), table[step]...)
}

// OffsetAttempt records one kick candidate and whether it was probed
// before the rotation resolved.
type OffsetAttempt struct {
	Offset Offset
	Tested bool
}

// RotationResult describes a kick-resolved rotation: the piece anchor and
// rotation state after the accepted offset, the offset itself, and every
// candidate offset for diagnostics.
type RotationResult struct {
	X, Y     int
	Rotation int
	Offset   Offset
	Attempts []OffsetAttempt
}

// UsedKick reports whether the accepted offset was non-zero.
func (r RotationResult) UsedKick() bool {
	return r.Offset != Offset{}
}

// TryRotate resolves a rotation of p into the rotated shape at rotation
// state to, probing each kick offset in table order against the board.
// The first offset that validates wins. After exhausting all offsets it
// returns ErrInvalidRotation with every attempt flagged tested.
func TryRotate(b Board, p Piece, rotated Shape, to int) (RotationResult, error) {
	offsets := KickOffsets(p.Type, p.Rotation, to)
	attempts := make([]OffsetAttempt, len(offsets))
	for i, off := range offsets {
		attempts[i] = OffsetAttempt{Offset: off}
	}
	for i, off := range offsets {
		attempts[i].Tested = true
		if b.IsValid(rotated, p.X+off.DX, p.Y+off.DY) {
			return RotationResult{
				X:        p.X + off.DX,
				Y:        p.Y + off.DY,
				Rotation: to,
				Offset:   off,
				Attempts: attempts,
			}, nil
		}
	}
	return RotationResult{Attempts: attempts}, ErrInvalidRotation
}
