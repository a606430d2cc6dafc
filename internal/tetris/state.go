package tetris

import (
	"fmt"
	"math/rand"
	"time"
)

// Clock supplies timestamps for lock metadata. It is presentation-only:
// no rule decision ever reads it.
type Clock func() time.Time

// LockResult is the metadata of the most recent lock, kept on the state
// for presentation layers (clear flashes, spin callouts). The engine
// itself never reads it back.
type LockResult struct {
	ClearedRows []int
	Spin        SpinResult
	Cells       []Point
	LockedAt    time.Time
}

// Options configures a new game. The zero value plays a default 10x20
// dense board seeded from the wall clock.
type Options struct {
	Backend       Backend
	Width, Height int
	// Seed seeds the bag shuffle; 0 means seed from the current time.
	Seed int64
	// Rand overrides Seed with an explicit randomness source.
	Rand *rand.Rand
	// Clock stamps lock metadata; defaults to time.Now.
	Clock Clock
}

// Game is the complete state of one game. It is an immutable aggregate:
// every transition returns a new value, and a failed transition returns
// the receiver unchanged alongside a tagged error. Exported fields are
// read-only to consumers.
type Game struct {
	Board    Board
	Current  *Piece
	Next     PieceType
	Held     PieceType // PieceNone while the hold slot is empty
	CanHold  bool
	Score    int
	Lines    int
	Level    int
	Over     bool
	Paused   bool
	Bag      Bag
	Ghost    *Point
	LastLock *LockResult

	// pendingSpin is the classification of the rotation that most
	// recently succeeded, consumed by the next lock. Any later successful
	// displacement voids it.
	pendingSpin *SpinResult

	rng   *rand.Rand
	clock Clock
}

// New creates a game: fresh board, two pieces drawn from a fresh bag, the
// first one spawned as the active piece.
func New(opts Options) Game {
	w, h := opts.Width, opts.Height
	if w == 0 {
		w = BoardWidth
	}
	if h == 0 {
		h = BoardHeight
	}
	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	g := Game{
		Board:   NewBoardSize(opts.Backend, w, h),
		Level:   1,
		CanHold: true,
		Bag:     NewBag(),
		rng:     rng,
		clock:   clock,
	}
	var first PieceType
	first, g.Bag = g.Bag.Draw(rng)
	g.Next, g.Bag = g.Bag.Draw(rng)
	piece := NewPiece(first, w)
	g.Current = &piece
	g.Ghost = g.dropTarget()
	return g
}

// active guards the playable transitions.
func (g Game) active() (*Piece, error) {
	if g.Over || g.Paused {
		return nil, ErrInvalidState
	}
	if g.Current == nil {
		return nil, ErrInvalidPiece
	}
	return g.Current, nil
}

// Move translates the active piece by (dx, dy). A blocked move with any
// downward component locks the piece instead (gravity push into the
// stack); a blocked purely horizontal move fails without mutation.
func (g Game) Move(dx, dy int) (Game, error) {
	p, err := g.active()
	if err != nil {
		return g, err
	}
	if g.Board.IsValid(p.Shape, p.X+dx, p.Y+dy) {
		moved := *p
		moved.X += dx
		moved.Y += dy
		g.Current = &moved
		g.pendingSpin = nil
		g.Ghost = g.dropTarget()
		return g, nil
	}
	if dy > 0 {
		return g.lock()
	}
	return g, fmt.Errorf("%w: %w", ErrInvalidPosition, collisionCause(g.Board, p.Shape, p.X+dx, p.Y+dy))
}

// SoftDrop pushes the active piece one row down, locking when blocked.
func (g Game) SoftDrop() (Game, error) {
	return g.Move(0, 1)
}

// Rotate turns the active piece steps quarter-turns clockwise: 1 for a
// single turn, 2 for a 180. Wall kick offsets are tried in table order; on
// success the spin classification is recorded for the next lock, on
// failure the state is unchanged.
func (g Game) Rotate(steps int) (Game, error) {
	p, err := g.active()
	if err != nil {
		return g, err
	}
	if steps != 1 && steps != 2 {
		return g, fmt.Errorf("rotate by %d steps: %w", steps, ErrInvalidRotation)
	}
	to := (p.Rotation + steps) % 4
	rotated := ShapeOf(p.Type, to)
	res, err := TryRotate(g.Board, *p, rotated, to)
	if err != nil {
		return g, err
	}
	next := Piece{Type: p.Type, X: res.X, Y: res.Y, Rotation: to, Shape: rotated}
	g.Current = &next
	spin := DetectSpin(g.Board, next, res.UsedKick())
	g.pendingSpin = &spin
	g.Ghost = g.dropTarget()
	return g, nil
}

// HardDrop projects the active piece straight down and locks it at the
// landing position.
func (g Game) HardDrop() (Game, error) {
	p, err := g.active()
	if err != nil {
		return g, err
	}
	y := p.Y
	for g.Board.IsValid(p.Shape, p.X, y+1) {
		y++
	}
	if y != p.Y {
		dropped := *p
		dropped.Y = y
		g.Current = &dropped
		// The piece fell after the last rotation, so no spin applies.
		g.pendingSpin = nil
	}
	return g.lock()
}

// GhostPosition returns the projected landing anchor of the active piece,
// or nil when the piece already rests there (nothing to preview).
func (g Game) GhostPosition() *Point {
	if g.Ghost == nil {
		return nil
	}
	ghost := *g.Ghost
	return &ghost
}

// Hold stashes the active piece type. The first hold stores the current
// type and spawns the queued next piece; later holds swap the held and
// current types, respawning at the spawn position. Either path disables
// holding again until the next lock.
func (g Game) Hold() (Game, error) {
	p, err := g.active()
	if err != nil {
		return g, err
	}
	if !g.CanHold {
		return g, ErrHoldNotAllowed
	}
	if g.Held == PieceNone {
		g.Held = p.Type
		spawn := NewPiece(g.Next, g.Board.Width())
		g.Current = &spawn
		g.Next, g.Bag = g.Bag.Draw(g.rng)
	} else {
		held := g.Held
		g.Held = p.Type
		spawn := NewPiece(held, g.Board.Width())
		g.Current = &spawn
	}
	g.CanHold = false
	g.pendingSpin = nil
	g.Ghost = g.dropTarget()
	return g, nil
}

// Pause freezes every transition except Resume.
func (g Game) Pause() (Game, error) {
	if g.Over {
		return g, ErrInvalidState
	}
	g.Paused = true
	return g, nil
}

// Resume lifts a pause.
func (g Game) Resume() (Game, error) {
	if g.Over {
		return g, ErrInvalidState
	}
	g.Paused = false
	return g, nil
}

// lock stamps the active piece onto the board, clears completed rows,
// scores the clear with the pending spin classification, then spawns the
// next piece. A blocked spawn ends the game with no active piece.
func (g Game) lock() (Game, error) {
	p := g.Current
	placed, err := g.Board.Place(p.Shape, p.X, p.Y, p.Type.Color())
	if err != nil {
		return g, err
	}
	board, cleared, rows := placed.ClearCompleted()

	var spin SpinResult
	if g.pendingSpin != nil {
		spin = *g.pendingSpin
	}
	points, err := ScoreFor(cleared, g.Level, spin.Spin)
	if err != nil {
		return g, err
	}

	g.Board = board
	g.Score += points
	g.Lines += cleared
	g.Level = LevelForLines(g.Lines)
	g.LastLock = &LockResult{
		ClearedRows: rows,
		Spin:        spin,
		Cells:       p.Cells(),
		LockedAt:    g.clock(),
	}
	g.pendingSpin = nil
	g.CanHold = true

	spawn := NewPiece(g.Next, g.Board.Width())
	g.Next, g.Bag = g.Bag.Draw(g.rng)
	if !g.Board.IsValid(spawn.Shape, spawn.X, spawn.Y) {
		g.Current = nil
		g.Ghost = nil
		g.Over = true
		return g, nil
	}
	g.Current = &spawn
	g.Ghost = g.dropTarget()
	return g, nil
}

// dropTarget computes the hard-drop landing anchor of the active piece,
// nil when the piece is already resting on the stack.
func (g Game) dropTarget() *Point {
	p := g.Current
	if p == nil {
		return nil
	}
	y := p.Y
	for g.Board.IsValid(p.Shape, p.X, y+1) {
		y++
	}
	if y == p.Y {
		return nil
	}
	return &Point{X: p.X, Y: y}
}
