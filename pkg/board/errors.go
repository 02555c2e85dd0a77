package board

import "errors"

// Sentinel errors returned by a rule layer composing the legality predicates into a
// move. The core predicates themselves return bool; these exist so callers building a
// Play operation can report which predicate rejected a move.
var (
	ErrPointNotEmpty = errors.New("board: point is not empty")
	ErrKo            = errors.New("board: move recaptures the ko point")
	ErrSuperko       = errors.New("board: move repeats a prior position")
	ErrSuicide       = errors.New("board: move is suicide")
	ErrFillEye       = errors.New("board: move fills a one-point eye")
)
