// Package tetris implements the rules engine of a guideline-style falling
// block game: board geometry, SRS rotation with wall kicks, T-Spin
// detection, the 7-bag piece randomizer, scoring, and the state machine
// tying them together. The package performs no I/O and never logs; every
// transition consumes one state value and returns a new one, so callers can
// keep old states around and replay from them.
package tetris

// PieceType identifies one of the seven tetromino kinds.
// The zero value PieceNone marks an empty hold slot.
type PieceType uint8

const (
	PieceNone PieceType = iota
	PieceI
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// NumPieceTypes is the number of distinct tetromino kinds.
const NumPieceTypes = 7

// String returns the conventional one-letter name of the piece.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "?"
	}
}

// Color returns the stable cell color index for the piece type (1..7).
func (t PieceType) Color() Cell {
	return Cell(t)
}

// Shape is a square 0/1 matrix describing one rotation state of a piece.
// Shapes returned by the catalog are shared; callers must not modify them.
type Shape [][]uint8

// Size returns the side length of the shape's bounding box.
func (s Shape) Size() int {
	return len(s)
}

// spawn-state shapes. I lives in a 4x4 box, O in a rotation-invariant 2x2,
// the rest in 3x3, matching SRS bounding boxes.
var baseShapes = map[PieceType]Shape{
	PieceI: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	PieceO: {
		{1, 1},
		{1, 1},
	},
	PieceT: {
		{0, 1, 0},
		{1, 1, 1},
		{0, 0, 0},
	},
	PieceS: {
		{0, 1, 1},
		{1, 1, 0},
		{0, 0, 0},
	},
	PieceZ: {
		{1, 1, 0},
		{0, 1, 1},
		{0, 0, 0},
	},
	PieceJ: {
		{1, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	},
	PieceL: {
		{0, 0, 1},
		{1, 1, 1},
		{0, 0, 0},
	},
}

// rotateCW rotates a shape 90 degrees clockwise: transpose, then reverse
// the column order. Returns a new matrix.
func rotateCW(s Shape) Shape {
	n := s.Size()
	out := make(Shape, n)
	for y := 0; y < n; y++ {
		out[y] = make([]uint8, n)
		for x := 0; x < n; x++ {
			out[y][x] = s[n-1-x][y]
		}
	}
	return out
}

// rotate180 rotates a shape 180 degrees, defined as two clockwise turns.
func rotate180(s Shape) Shape {
	return rotateCW(rotateCW(s))
}

// shapeTable holds the four rotation states for every piece type,
// precomputed by repeated clockwise rotation of the spawn shape.
var shapeTable = buildShapeTable()

func buildShapeTable() map[PieceType][4]Shape {
	table := make(map[PieceType][4]Shape, NumPieceTypes)
	for t, base := range baseShapes {
		var states [4]Shape
		states[0] = base
		for r := 1; r < 4; r++ {
			states[r] = rotateCW(states[r-1])
		}
		table[t] = states
	}
	return table
}

// ShapeOf returns the shape matrix for a piece type at rotation state 0-3.
// The returned shape is shared and must not be modified.
func ShapeOf(t PieceType, rotation int) Shape {
	return shapeTable[t][((rotation%4)+4)%4]
}

// Piece is the active falling piece: its kind, the top-left anchor of its
// bounding box in board coordinates, the rotation state 0-3 and the shape
// matrix for that rotation.
type Piece struct {
	Type     PieceType
	X, Y     int
	Rotation int
	Shape    Shape
}

// NewPiece creates a piece at its spawn position for the given board width:
// horizontally centered, anchored at the top row, rotation state 0.
func NewPiece(t PieceType, boardWidth int) Piece {
	shape := ShapeOf(t, 0)
	return Piece{
		Type:  t,
		X:     (boardWidth - shape.Size()) / 2,
		Y:     0,
		Shape: shape,
	}
}

// Cells returns the board coordinates of the piece's filled cells.
func (p Piece) Cells() []Point {
	cells := make([]Point, 0, 4)
	for dy, row := range p.Shape {
		for dx, v := range row {
			if v != 0 {
				cells = append(cells, Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return cells
}
