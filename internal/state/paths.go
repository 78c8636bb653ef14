package state

import (
	"github.com/janpfeifer/pentaGo/internal/generics"
)

// CanMove returns whether a piece on from can travel to to: that is, if there is a path of
// adjacent fields from from to to, where all intermediary fields are empty.
//
// Whether to itself can be occupied is left for the caller. It returns false if from == to,
// or if any of the fields doesn't exist.
func (b *Board) CanMove(from, to FieldID) bool {
	if from == to || !b.topology.Has(from) || !b.topology.Has(to) {
		return false
	}
	found := false
	b.walk(from, func(field FieldID) bool {
		found = field == to
		return !found
	})
	return found
}

// Reachable returns all fields a piece on from can travel to: the empty fields connected to
// from through empty fields, plus the first occupied fields found along the way.
// Fields are returned in breadth-first order.
func (b *Board) Reachable(from FieldID) []FieldID {
	if !b.topology.Has(from) {
		return nil
	}
	var reachable []FieldID
	b.walk(from, func(field FieldID) bool {
		reachable = append(reachable, field)
		return true
	})
	return reachable
}

// walk visits in breadth-first order every field reachable from from, not including from.
// Occupied fields are visited, but the search doesn't continue through them.
// It stops when visit returns false.
func (b *Board) walk(from FieldID, visit func(field FieldID) bool) {
	visited := generics.SetWith(from)
	queue := []FieldID{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, neighbour := range b.topology.MustField(current).Neighbours {
			if visited.Has(neighbour) {
				continue
			}
			visited.Insert(neighbour)
			if !visit(neighbour) {
				return
			}
			if b.IsEmpty(neighbour) {
				queue = append(queue, neighbour)
			}
		}
	}
}

// emptyFields returns all fields without pieces, in topology order.
func (b *Board) emptyFields() []FieldID {
	var fields []FieldID
	for _, f := range b.topology.Fields() {
		if b.IsEmpty(f.ID) {
			fields = append(fields, f.ID)
		}
	}
	return fields
}

// LegalMoves enumerates the moves the current player can make, in a deterministic order.
// It returns nil if the match hasn't started or is over.
func (b *Board) LegalMoves() []Move {
	if !b.IsStarted() || b.IsFinished() {
		return nil
	}
	var moves []Move
	sel := b.selection
	switch sel.Kind {
	case BlackArmed:
		for _, to := range b.emptyFields() {
			moves = append(moves, SetBlack{Piece: sel.Piece, From: sel.From, To: to})
		}
	case GrayArmed:
		for _, to := range b.emptyFields() {
			moves = append(moves, SetGrey{Piece: sel.Piece, From: sel.From, To: to})
		}
	case ChoosingGray:
		for _, p := range b.registry.OfKind(KindGrayBlocker) {
			if from, onBoard := b.positions[p.ID]; onBoard {
				moves = append(moves, SelectGrey{Piece: p.ID, From: from})
			}
		}
	default:
		mover := b.CurrentPlayer()
		for _, p := range b.registry.OwnedBy(mover) {
			from, onBoard := b.positions[p.ID]
			if !onBoard {
				continue
			}
			for _, to := range b.Reachable(from) {
				moves = b.appendMovesTo(moves, p, from, to)
			}
		}
	}
	return moves
}

// appendMovesTo appends the moves of the player piece p from from to the reachable field to.
func (b *Board) appendMovesTo(moves []Move, p *Piece, from, to FieldID) []Move {
	occupants := b.occupants[to]
	if len(occupants) == 0 {
		return append(moves, MovePlayer{Piece: p.ID, From: from, To: to})
	}
	for _, id := range occupants {
		other, _ := b.registry.Piece(id)
		switch {
		case other.IsBlocker():
			moves = append(moves, MovePlayer{Piece: p.ID, From: from, To: to})
		case other.Player == p.Player:
			moves = append(moves, SwapOwnPiece{Piece: p.ID, Other: id, From: from, To: to})
		case b.rules.HostileSwaps:
			moves = append(moves, SwapHostilePieces{Piece: p.ID, Other: id, From: from, To: to})
		}
	}
	return moves
}
