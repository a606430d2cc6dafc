package tetris

import (
	"reflect"
	"testing"
)

var allTypes = []PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, pt := range allTypes {
		t.Run(pt.String(), func(t *testing.T) {
			s := ShapeOf(pt, 0)
			rotated := s
			for i := 0; i < 4; i++ {
				rotated = rotateCW(rotated)
			}
			if !reflect.DeepEqual(rotated, s) {
				t.Errorf("four CW rotations of %s changed the shape:\n%v\nwant\n%v", pt, rotated, s)
			}
		})
	}
}

func TestRotate180EqualsTwoClockwise(t *testing.T) {
	for _, pt := range allTypes {
		s := ShapeOf(pt, 0)
		twice := rotateCW(rotateCW(s))
		if !reflect.DeepEqual(rotate180(s), twice) {
			t.Errorf("%s: rotate180 differs from two CW rotations", pt)
		}
	}
}

func TestCatalogMatchesSuccessiveRotations(t *testing.T) {
	for _, pt := range allTypes {
		expected := ShapeOf(pt, 0)
		for r := 1; r < 4; r++ {
			expected = rotateCW(expected)
			if !reflect.DeepEqual(ShapeOf(pt, r), expected) {
				t.Errorf("%s rotation %d: catalog shape differs from derived shape", pt, r)
			}
		}
	}
}

func TestORotationIsNoOp(t *testing.T) {
	base := ShapeOf(PieceO, 0)
	for r := 1; r < 4; r++ {
		if !reflect.DeepEqual(ShapeOf(PieceO, r), base) {
			t.Errorf("O rotation %d differs from rotation 0", r)
		}
	}
}

func TestColorsAreStableAndDistinct(t *testing.T) {
	seen := make(map[Cell]PieceType)
	for _, pt := range allTypes {
		c := pt.Color()
		if c < 1 || c > 7 {
			t.Errorf("%s color %d out of range 1..7", pt, c)
		}
		if prev, ok := seen[c]; ok {
			t.Errorf("%s and %s share color %d", pt, prev, c)
		}
		seen[c] = pt
	}
}

func TestSpawnAnchors(t *testing.T) {
	tests := []struct {
		piece PieceType
		wantX int
	}{
		{PieceI, 3},
		{PieceO, 4},
		{PieceT, 3},
		{PieceS, 3},
		{PieceZ, 3},
		{PieceJ, 3},
		{PieceL, 3},
	}
	for _, tt := range tests {
		p := NewPiece(tt.piece, BoardWidth)
		if p.X != tt.wantX || p.Y != 0 || p.Rotation != 0 {
			t.Errorf("NewPiece(%s) = (%d,%d) rot %d, want (%d,0) rot 0",
				tt.piece, p.X, p.Y, p.Rotation, tt.wantX)
		}
	}
}

func TestPieceCells(t *testing.T) {
	p := Piece{Type: PieceT, X: 4, Y: 10, Shape: ShapeOf(PieceT, 0)}
	want := []Point{{5, 10}, {4, 11}, {5, 11}, {6, 11}}
	if got := p.Cells(); !reflect.DeepEqual(got, want) {
		t.Errorf("Cells() = %v, want %v", got, want)
	}
}

func TestEveryShapeHasFourCells(t *testing.T) {
	for _, pt := range allTypes {
		for r := 0; r < 4; r++ {
			count := 0
			for _, row := range ShapeOf(pt, r) {
				for _, v := range row {
					if v != 0 {
						count++
					}
				}
			}
			if count != 4 {
				t.Errorf("%s rotation %d has %d filled cells, want 4", pt, r, count)
			}
		}
	}
}
