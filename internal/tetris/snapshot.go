package tetris

// Snapshot captures the observable game state as plain values, useful for
// determinism tests and replay comparisons.
type Snapshot struct {
	Rows    [][]Cell
	Current *Piece
	Next    PieceType
	Held    PieceType
	CanHold bool
	Score   int
	Lines   int
	Level   int
	Over    bool
	Paused  bool
	BagLen  int
}

// Snapshot flattens the game into comparable values. The board is copied
// row by row; the active piece is copied so mutations cannot leak back.
func (g Game) Snapshot() Snapshot {
	rows := make([][]Cell, g.Board.Height())
	for y := range rows {
		rows[y] = make([]Cell, g.Board.Width())
		for x := range rows[y] {
			rows[y][x] = g.Board.Cell(x, y)
		}
	}
	snap := Snapshot{
		Rows:    rows,
		Next:    g.Next,
		Held:    g.Held,
		CanHold: g.CanHold,
		Score:   g.Score,
		Lines:   g.Lines,
		Level:   g.Level,
		Over:    g.Over,
		Paused:  g.Paused,
		BagLen:  g.Bag.Len(),
	}
	if g.Current != nil {
		piece := *g.Current
		snap.Current = &piece
	}
	return snap
}
