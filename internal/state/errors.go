package state

import "github.com/pkg/errors"

// Error taxonomy of the engine. Errors returned by the package wrap one of these,
// so callers should test them with errors.Is.
var (
	// ErrIllegalClick is returned by the selection state machine when a click has no effect.
	// It is not meant to be shown to the user as an error.
	ErrIllegalClick = errors.New("illegal click")

	// ErrIllegalMove is returned when a fully formed move fails one of its preconditions:
	// ownership, turn, occupancy or path legality.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver is returned when a move other than Undo is submitted after the game has a winner.
	ErrGameOver = errors.Wrap(ErrIllegalMove, "game is over")

	// ErrUnknownField is returned when a field id is not part of the topology.
	ErrUnknownField = errors.New("unknown field")

	// ErrUnknownPiece is returned when a piece id is not part of the registry.
	ErrUnknownPiece = errors.New("unknown piece")

	// ErrUndoOutOfOrder is returned when the moves of an Undo are not the suffix of the history.
	ErrUndoOutOfOrder = errors.New("undo out of order")
)

// illegalMovef wraps ErrIllegalMove with a formatted reason.
func illegalMovef(format string, args ...any) error {
	return errors.Wrapf(ErrIllegalMove, format, args...)
}

// illegalClickf wraps ErrIllegalClick with a formatted reason.
func illegalClickf(format string, args ...any) error {
	return errors.Wrapf(ErrIllegalClick, format, args...)
}
