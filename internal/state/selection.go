package state

import (
	"fmt"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// SelectionKind enumerates the exclusive selection states of a board.
type SelectionKind uint8

const (
	// Idle means nothing is selected.
	Idle SelectionKind = iota

	// PlayerPieceArmed means the current player selected one of their pieces to move.
	PlayerPieceArmed

	// BlackArmed means a black blocker was captured, and the current player must place it.
	BlackArmed

	// GrayArmed means the current player holds a gray blocker, and must place it.
	GrayArmed

	// ChoosingGray means the current player must place a gray blocker, but the supply is empty:
	// they must first pick one from the board.
	ChoosingGray
)

var selectionKindNames = [...]string{"Idle", "PlayerPieceArmed", "BlackArmed", "GrayArmed", "ChoosingGray"}

func (k SelectionKind) String() string {
	if int(k) < len(selectionKindNames) {
		return selectionKindNames[k]
	}
	return fmt.Sprintf("SelectionKind(%d)", k)
}

// Selection sub-state of the board. Piece and From are only set for the armed kinds:
//
//   - PlayerPieceArmed: the armed piece and the field it is on.
//   - BlackArmed: the captured black blocker and the field it was captured on.
//   - GrayArmed: the held gray blocker and the field it was picked up from, or NoField if it
//     came from the supply.
type Selection struct {
	Kind  SelectionKind
	Piece PieceID
	From  FieldID
}

func (s Selection) String() string {
	switch s.Kind {
	case Idle, ChoosingGray:
		return s.Kind.String()
	default:
		return fmt.Sprintf("%s(%s@%s)", s.Kind, s.Piece, s.From)
	}
}

// IsPlacing returns whether the selection is one of the blocker placement phases, during
// which player pieces can't move.
func (s Selection) IsPlacing() bool {
	return s.Kind == BlackArmed || s.Kind == GrayArmed || s.Kind == ChoosingGray
}

// withSelection returns a copy of the board with only the selection changed.
func (b *Board) withSelection(sel Selection) *Board {
	newB := b.clone()
	newB.selection = sel
	newB.buildDerived()
	return newB
}

// checkActor verifies that a click by actor can be considered at all.
func (b *Board) checkActor(actor PlayerID) error {
	switch {
	case !b.IsStarted():
		return illegalClickf("match not started")
	case b.IsFinished():
		return illegalClickf("match is over, %s won", b.winner)
	case actor != b.CurrentPlayer():
		return illegalClickf("it's %s's turn, not %s's", b.CurrentPlayer(), actor)
	}
	return nil
}

// ClickPiece feeds a "click on piece" intent from actor to the selection state machine.
//
// It returns either a new board with only the selection changed (move == nil), or the move the
// click emitted along with the board after applying it. Inert clicks return the receiver and an
// error wrapping ErrIllegalClick (or ErrUnknownPiece). The receiver is never modified.
func (b *Board) ClickPiece(actor PlayerID, piece PieceID) (next *Board, move Move, err error) {
	next, move, err = b.clickPiece(actor, piece)
	if err != nil {
		klog.V(2).Infof("click on piece %s by %s ignored: %v", piece, actor, err)
		return b, nil, err
	}
	return
}

func (b *Board) clickPiece(actor PlayerID, piece PieceID) (*Board, Move, error) {
	if err := b.checkActor(actor); err != nil {
		return nil, nil, err
	}
	p, err := b.registry.Piece(piece)
	if err != nil {
		return nil, nil, err
	}
	field, onBoard := b.positions[piece]
	if !onBoard {
		return nil, nil, illegalClickf("piece %s is not on the board", piece)
	}

	sel := b.selection
	switch sel.Kind {
	case Idle:
		if p.Kind != KindPlayer || p.Player != actor {
			return nil, nil, illegalClickf("%s can't select piece %s", actor, piece)
		}
		return b.withSelection(Selection{Kind: PlayerPieceArmed, Piece: piece, From: field}), nil, nil

	case PlayerPieceArmed:
		if piece == sel.Piece {
			return b.withSelection(Selection{Kind: Idle}), nil, nil
		}
		if field == sel.From {
			return nil, nil, illegalClickf("piece %s is on the same field as %s", piece, sel.Piece)
		}
		if !b.CanMove(sel.From, field) {
			return nil, nil, illegalClickf("no path from %s to %s", sel.From, field)
		}
		var m Move
		switch {
		case p.IsBlocker():
			m = MovePlayer{Piece: sel.Piece, From: sel.From, To: field}
		case p.Player == actor:
			m = SwapOwnPiece{Piece: sel.Piece, Other: piece, From: sel.From, To: field}
		default:
			m = SwapHostilePieces{Piece: sel.Piece, Other: piece, From: sel.From, To: field}
		}
		return b.emit(m)

	case ChoosingGray:
		if p.Kind != KindGrayBlocker {
			return nil, nil, illegalClickf("a gray blocker must be chosen, not %s", piece)
		}
		return b.emit(SelectGrey{Piece: piece, From: field})

	default:
		return nil, nil, illegalClickf("a %s must be placed on an empty field", sel.Piece)
	}
}

// ClickField feeds a "click on field" intent from actor to the selection state machine.
// It returns the same as ClickPiece.
//
// A click on a field holding exactly one piece, while a player piece is armed, is handled as
// a click on that piece. Placing a held blocker on an occupied field returns an error wrapping
// ErrIllegalMove, and the selection is kept.
func (b *Board) ClickField(actor PlayerID, field FieldID) (next *Board, move Move, err error) {
	next, move, err = b.clickField(actor, field)
	if err != nil {
		klog.V(2).Infof("click on field %s by %s ignored: %v", field, actor, err)
		return b, nil, err
	}
	return
}

func (b *Board) clickField(actor PlayerID, field FieldID) (*Board, Move, error) {
	if err := b.checkActor(actor); err != nil {
		return nil, nil, err
	}
	if _, err := b.topology.Field(field); err != nil {
		return nil, nil, err
	}
	occupants := b.occupants[field]
	sel := b.selection
	switch sel.Kind {
	case PlayerPieceArmed:
		if field == sel.From {
			return nil, nil, illegalClickf("piece %s is already on %s", sel.Piece, field)
		}
		switch len(occupants) {
		case 0:
			if !b.CanMove(sel.From, field) {
				return nil, nil, illegalClickf("no path from %s to %s", sel.From, field)
			}
			return b.emit(MovePlayer{Piece: sel.Piece, From: sel.From, To: field})
		case 1:
			return b.clickPiece(actor, occupants[0])
		default:
			return nil, nil, illegalClickf("field %s holds %d pieces, click on one of them", field, len(occupants))
		}

	case BlackArmed, GrayArmed:
		if len(occupants) > 0 {
			return nil, nil, illegalMovef("%s can't be placed on %s, it is not empty", sel.Piece, field)
		}
		if sel.Kind == BlackArmed {
			return b.emit(SetBlack{Piece: sel.Piece, From: sel.From, To: field})
		}
		return b.emit(SetGrey{Piece: sel.Piece, From: sel.From, To: field})

	case ChoosingGray:
		if len(occupants) == 1 {
			return b.clickPiece(actor, occupants[0])
		}
		return nil, nil, illegalClickf("field %s holds no gray blocker to choose", field)

	default:
		return nil, nil, illegalClickf("select a piece before clicking on field %s", field)
	}
}

// emit applies a move generated by a click.
func (b *Board) emit(m Move) (*Board, Move, error) {
	next, err := b.Apply(m)
	if err != nil {
		return nil, nil, errors.WithMessagef(err, "click generated move %s", m)
	}
	return next, m, nil
}

// CanClickPiece returns whether ClickPiece would have any effect.
func (b *Board) CanClickPiece(actor PlayerID, piece PieceID) bool {
	_, _, err := b.clickPiece(actor, piece)
	return err == nil
}

// CanClickField returns whether ClickField would have any effect.
func (b *Board) CanClickField(actor PlayerID, field FieldID) bool {
	_, _, err := b.clickField(actor, field)
	return err == nil
}
