package tetris

// Spin classifies a just-completed T rotation.
type Spin uint8

const (
	SpinNone Spin = iota
	SpinMini
	SpinNormal
)

// String returns the presentation name of the classification.
func (s Spin) String() string {
	switch s {
	case SpinMini:
		return "mini"
	case SpinNormal:
		return "normal"
	default:
		return "none"
	}
}

// SpinResult carries the full spin classification. Scoring consumes Spin;
// presentation layers also read the corner count and kick flag.
type SpinResult struct {
	Spin          Spin
	FilledCorners int
	UsedWallKick  bool
}

// cornerOffsets are the diagonal neighbors of the T piece's pivot,
// relative to the bounding-box anchor (pivot sits at anchor+(1,1)).
var cornerOffsets = [4]Offset{{0, 0}, {2, 0}, {0, 2}, {2, 2}}

// frontCornerOffsets are the two corners on the side the T stem points
// toward, per rotation state: up, right, down, left.
var frontCornerOffsets = [4][2]Offset{
	{{0, 0}, {2, 0}},
	{{2, 0}, {2, 2}},
	{{0, 2}, {2, 2}},
	{{0, 0}, {0, 2}},
}

// DetectSpin applies the 3-corner rule to a T piece that just finished a
// successful rotation. Corners outside the board count as filled. Fewer
// than three filled corners is no spin; otherwise the rotation is a full
// spin only when both front corners are filled and a non-zero kick offset
// was used, and a mini spin in every other case. Non-T pieces never spin.
func DetectSpin(b Board, p Piece, usedKick bool) SpinResult {
	if p.Type != PieceT {
		return SpinResult{}
	}
	res := SpinResult{UsedWallKick: usedKick}
	for _, off := range cornerOffsets {
		if cornerFilled(b, p.X+off.DX, p.Y+off.DY) {
			res.FilledCorners++
		}
	}
	if res.FilledCorners < 3 {
		return res
	}
	front := 0
	for _, off := range frontCornerOffsets[p.Rotation] {
		if cornerFilled(b, p.X+off.DX, p.Y+off.DY) {
			front++
		}
	}
	if front == 2 && usedKick {
		res.Spin = SpinNormal
	} else {
		res.Spin = SpinMini
	}
	return res
}

func cornerFilled(b Board, x, y int) bool {
	if x < 0 || x >= b.Width() || y < 0 || y >= b.Height() {
		return true
	}
	return b.Cell(x, y) != 0
}
