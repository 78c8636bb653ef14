package state

import (
	"github.com/pkg/errors"
)

// applyUndo restores the board from before the first undone move. The moves must match, by
// their encoding, the last moves of the history.
func (b *Board) applyUndo(m Undo) (*Board, error) {
	n := len(m.Moves)
	if n == 0 {
		return nil, errors.Wrapf(ErrUndoOutOfOrder, "no moves to undo")
	}
	if n > len(b.history) {
		return nil, errors.Wrapf(ErrUndoOutOfOrder, "can't undo %d moves, history only has %d", n, len(b.history))
	}
	first := len(b.history) - n
	for ii, undone := range m.Moves {
		if undone == nil {
			return nil, errors.Wrapf(ErrUndoOutOfOrder, "undo move #%d is nil", ii)
		}
		if entry := b.history[first+ii]; !MovesEqual(entry.move, undone) {
			return nil, errors.Wrapf(ErrUndoOutOfOrder, "undo move #%d is %s, but history has %s", ii, undone, entry.move)
		}
	}
	return b.history[first].before.clone(), nil
}

// UndoLastTurn returns the Undo that reverses the moves of the latest turn of the history:
// the last move, plus the blocker placements or picks it is part of.
// It returns false if the history is empty or only holds the InitGame: undoing the start of
// the match requires an explicit Undo.
func (b *Board) UndoLastTurn() (Undo, bool) {
	if len(b.history) == 0 {
		return Undo{}, false
	}
	if _, isInit := b.history[len(b.history)-1].move.(InitGame); isInit {
		return Undo{}, false
	}
	first := len(b.history) - 1
	for first > 0 {
		switch b.history[first].move.(type) {
		case SetBlack, SetGrey, SelectGrey:
			first--
			continue
		}
		break
	}
	return UndoLast(b.History(), len(b.history)-first), true
}
