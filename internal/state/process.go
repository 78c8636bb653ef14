package state

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Apply validates and applies the move, returning the new board.
//
// If the move fails any of its preconditions, the receiver is returned unchanged along with an
// error wrapping one of ErrIllegalMove, ErrGameOver, ErrUnknownField, ErrUnknownPiece or
// ErrUndoOutOfOrder. The receiver is never modified.
func (b *Board) Apply(m Move) (*Board, error) {
	var (
		newB *Board
		err  error
	)
	if m == nil {
		err = illegalMovef("nil move")
	} else if _, isUndo := m.(Undo); !isUndo && b.IsFinished() {
		err = errors.Wrapf(ErrGameOver, "%s won", b.winner)
	} else {
		switch m := m.(type) {
		case InitGame:
			newB, err = b.applyInitGame(m)
		case MovePlayer:
			newB, err = b.applyMovePlayer(m)
		case SwapOwnPiece:
			newB, err = b.applySwap(m.Piece, m.Other, m.From, m.To, false)
		case SwapHostilePieces:
			newB, err = b.applySwap(m.Piece, m.Other, m.From, m.To, true)
		case SelectGrey:
			newB, err = b.applySelectGrey(m)
		case SetGrey:
			newB, err = b.applySetGrey(m)
		case SetBlack:
			newB, err = b.applySetBlack(m)
		case Undo:
			newB, err = b.applyUndo(m)
		default:
			exceptions.Panicf("Board.Apply: unhandled move type %T", m)
		}
	}
	if err != nil {
		err = errors.WithMessagef(err, "move %v rejected", m)
		klog.V(2).Infof("%v", err)
		return b, err
	}
	if _, isUndo := m.(Undo); !isUndo {
		newB.history = append(newB.history, historyEntry{move: m, before: b.replicatedState()})
	}
	newB.buildDerived()
	klog.V(1).Infof("turn %d: applied %s; next player %s, selection %s", b.turn, m, newB.CurrentPlayer(), newB.selection)
	return newB, nil
}

// Replay applies the moves in order to a new board with the given rules.
func Replay(rules Rules, moves []Move) (*Board, error) {
	b := NewBoard(rules)
	for ii, m := range moves {
		var err error
		b, err = b.Apply(m)
		if err != nil {
			return nil, errors.WithMessagef(err, "replaying move #%d", ii)
		}
	}
	return b, nil
}

func (b *Board) applyInitGame(m InitGame) (*Board, error) {
	if b.IsStarted() {
		return nil, illegalMovef("match already started")
	}
	registry, err := NewRegistry(b.topology, m.Players)
	if err != nil {
		return nil, err
	}
	newB := b.clone()
	newB.players = append([]Player(nil), m.Players...)
	newB.registry = registry
	newB.positions = make(map[PieceID]FieldID)
	for _, p := range registry.Pieces() {
		if p.Home != NoField {
			newB.positions[p.ID] = p.Home
		}
	}
	newB.selection = Selection{Kind: Idle}
	newB.turn = 0
	newB.winner = NoPlayer
	newB.pendingGray = false
	return newB, nil
}

// checkCanMovePiece verifies that the current player can move their piece from the given field.
func (b *Board) checkCanMovePiece(id PieceID, from FieldID) (*Piece, error) {
	if !b.IsStarted() {
		return nil, illegalMovef("match not started")
	}
	if b.selection.IsPlacing() {
		return nil, illegalMovef("%s must be resolved first", b.selection)
	}
	p, err := b.registry.Piece(id)
	if err != nil {
		return nil, err
	}
	if p.Kind != KindPlayer {
		return nil, illegalMovef("%s is not a player piece", id)
	}
	if p.Player != b.CurrentPlayer() {
		return nil, illegalMovef("%s doesn't belong to current player %s", id, b.CurrentPlayer())
	}
	if _, err = b.topology.Field(from); err != nil {
		return nil, err
	}
	if current, onBoard := b.positions[id]; !onBoard || current != from {
		return nil, illegalMovef("%s is not on %s", id, from)
	}
	return p, nil
}

// replicatedState returns b without a local player piece selection. Arming a player piece
// emits no move, so peers only agree on the selection after it is reset to Idle. Blocker
// placement selections follow from the moves and are kept.
func (b *Board) replicatedState() *Board {
	if b.selection.Kind != PlayerPieceArmed {
		return b
	}
	return b.withSelection(Selection{Kind: Idle})
}

// checkPath verifies that a player piece can travel from -> to.
func (b *Board) checkPath(from, to FieldID) error {
	if _, err := b.topology.Field(to); err != nil {
		return err
	}
	if from == to {
		return illegalMovef("source and destination are the same field %s", from)
	}
	if !b.CanMove(from, to) {
		return illegalMovef("no free path from %s to %s", from, to)
	}
	return nil
}

func (b *Board) applyMovePlayer(m MovePlayer) (*Board, error) {
	p, err := b.checkCanMovePiece(m.Piece, m.From)
	if err != nil {
		return nil, err
	}
	if err = b.checkPath(m.From, m.To); err != nil {
		return nil, err
	}
	var captured *Piece
	for _, id := range b.occupants[m.To] {
		other, _ := b.registry.Piece(id)
		if !other.IsBlocker() {
			return nil, illegalMovef("%s holds player piece %s, only swaps can move there", m.To, id)
		}
		captured = other
	}

	newB := b.clone()
	newB.positions[p.ID] = m.To
	if captured != nil {
		// Gray blockers return to the supply, black blockers are held to be placed again.
		delete(newB.positions, captured.ID)
	}
	newB.checkGoal(p, m.To)
	if captured != nil && captured.Kind == KindBlackBlocker {
		newB.selection = Selection{Kind: BlackArmed, Piece: captured.ID, From: m.To}
		return newB, nil
	}
	newB.armGrayOrCompleteTurn()
	return newB, nil
}

func (b *Board) applySwap(id, otherID PieceID, from, to FieldID, hostile bool) (*Board, error) {
	p, err := b.checkCanMovePiece(id, from)
	if err != nil {
		return nil, err
	}
	if err = b.checkPath(from, to); err != nil {
		return nil, err
	}
	other, err := b.registry.Piece(otherID)
	if err != nil {
		return nil, err
	}
	if other.Kind != KindPlayer {
		return nil, illegalMovef("%s is not a player piece, it can't be swapped", otherID)
	}
	if current, onBoard := b.positions[otherID]; !onBoard || current != to {
		return nil, illegalMovef("%s is not on %s", otherID, to)
	}
	if hostile {
		if other.Player == p.Player {
			return nil, illegalMovef("%s is owned by %s, it's not a hostile swap", otherID, p.Player)
		}
		if !b.rules.HostileSwaps {
			return nil, illegalMovef("hostile swaps are disabled")
		}
	} else if other.Player != p.Player {
		return nil, illegalMovef("%s is not owned by %s", otherID, p.Player)
	}

	newB := b.clone()
	newB.positions[p.ID] = to
	newB.positions[other.ID] = from
	newB.checkGoal(p, to)
	newB.armGrayOrCompleteTurn()
	return newB, nil
}

// checkGoal takes the player piece p out of the board if field is the Goal of its color, in which
// case a gray blocker must be placed before the turn completes.
func (b *Board) checkGoal(p *Piece, field FieldID) {
	if field != b.topology.Goal(p.Color) {
		return
	}
	delete(b.positions, p.ID)
	b.pendingGray = true
	klog.V(1).Infof("%s reached its goal: %d of %d pieces for %s", p.ID, b.GoalsReached(p.Player), b.rules.GoalsToWin, p.Player)
}

// armGrayOrCompleteTurn sets the selection after a blocker placement or move.
func (b *Board) armGrayOrCompleteTurn() {
	if !b.pendingGray {
		b.completeTurn()
		return
	}
	if supply := b.Supply(); len(supply) > 0 {
		b.selection = Selection{Kind: GrayArmed, Piece: supply[0], From: NoField}
	} else {
		b.selection = Selection{Kind: ChoosingGray}
	}
}

// completeTurn checks for a winner and passes the turn to the next player.
func (b *Board) completeTurn() {
	mover := b.CurrentPlayer()
	b.selection = Selection{Kind: Idle}
	b.pendingGray = false
	if b.GoalsReached(mover) >= b.rules.GoalsToWin {
		b.winner = mover
		klog.V(1).Infof("%s won the match", mover)
	}
	b.turn++
}

func (b *Board) applySelectGrey(m SelectGrey) (*Board, error) {
	if b.selection.Kind != ChoosingGray {
		return nil, illegalMovef("no gray blocker to be chosen, selection is %s", b.selection)
	}
	p, err := b.registry.Piece(m.Piece)
	if err != nil {
		return nil, err
	}
	if p.Kind != KindGrayBlocker {
		return nil, illegalMovef("%s is not a gray blocker", m.Piece)
	}
	if current, onBoard := b.positions[m.Piece]; !onBoard || current != m.From {
		return nil, illegalMovef("%s is not on %s", m.Piece, m.From)
	}
	newB := b.clone()
	delete(newB.positions, m.Piece)
	newB.selection = Selection{Kind: GrayArmed, Piece: m.Piece, From: m.From}
	return newB, nil
}

// checkPlacement verifies the placement of the held blocker.
func (b *Board) checkPlacement(kind SelectionKind, id PieceID, from, to FieldID) error {
	sel := b.selection
	if sel.Kind != kind {
		return illegalMovef("selection is %s, expected %s", sel, kind)
	}
	if sel.Piece != id || sel.From != from {
		return illegalMovef("%s from %q is not the held blocker %s", id, from, sel)
	}
	if _, err := b.topology.Field(to); err != nil {
		return err
	}
	if !b.IsEmpty(to) {
		return illegalMovef("%s is not empty", to)
	}
	return nil
}

func (b *Board) applySetGrey(m SetGrey) (*Board, error) {
	if err := b.checkPlacement(GrayArmed, m.Piece, m.From, m.To); err != nil {
		return nil, err
	}
	newB := b.clone()
	newB.positions[m.Piece] = m.To
	newB.completeTurn()
	return newB, nil
}

func (b *Board) applySetBlack(m SetBlack) (*Board, error) {
	if err := b.checkPlacement(BlackArmed, m.Piece, m.From, m.To); err != nil {
		return nil, err
	}
	if len(b.history) == 0 {
		return nil, illegalMovef("no previous move captured %s", m.Piece)
	}
	if to, ok := canSetBlack(b.history[len(b.history)-1].move); !ok || to != m.From {
		return nil, illegalMovef("previous move didn't capture a black blocker on %s", m.From)
	}
	newB := b.clone()
	newB.positions[m.Piece] = m.To
	newB.armGrayOrCompleteTurn()
	return newB, nil
}
