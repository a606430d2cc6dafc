package tetris

import "errors"

// Failure kinds surfaced by the engine. All of them are recoverable: the
// operation returns the unchanged state alongside the error and never
// panics for a predictable rule violation.
var (
	// ErrInvalidState is returned when an operation is attempted while the
	// game is paused or over.
	ErrInvalidState = errors.New("tetris: operation not allowed in current state")

	// ErrInvalidPosition is returned when a move is rejected by the board.
	ErrInvalidPosition = errors.New("tetris: position rejected by board")

	// ErrBoardCollision is returned when a placement overlaps filled cells.
	ErrBoardCollision = errors.New("tetris: piece collides with filled cells")

	// ErrOutOfBounds is returned when a placement reaches outside the
	// horizontal board bounds.
	ErrOutOfBounds = errors.New("tetris: position outside board bounds")

	// ErrInvalidRotation is returned when every wall kick offset for a
	// rotation has been tried and rejected.
	ErrInvalidRotation = errors.New("tetris: no wall kick offset fits")

	// ErrHoldNotAllowed is returned for a second hold before the next lock.
	ErrHoldNotAllowed = errors.New("tetris: hold already used since last lock")

	// ErrInvalidPiece is returned when an operation needs an active piece
	// and none exists.
	ErrInvalidPiece = errors.New("tetris: no active piece")
)
