package state

import (
	"fmt"
	"strings"

	"github.com/janpfeifer/pentaGo/internal/generics"
)

// MoveKind enumerates the closed set of moves. Every Move implementation returns one of these
// from Kind, and every kind must be handled by Board.Apply and by the wire encoding.
type MoveKind uint8

const (
	MoveInitGame MoveKind = iota
	MoveMovePlayer
	MoveSwapOwnPiece
	MoveSwapHostilePieces
	MoveSelectGrey
	MoveSetGrey
	MoveSetBlack
	MoveUndo
)

//go:generate go tool enumer -type=MoveKind -trimprefix=Move -values -text -json -yaml moves.go

// Move is one atomic game transition. It is pure data: the same sequence of moves applied to
// the same board always yields the same board.
//
// The set of moves is closed: the interface can only be implemented by the types in this package.
type Move interface {
	// Kind of the move.
	Kind() MoveKind

	// Notation is a short human-readable description of the move.
	Notation() string

	isMove()
}

// InitGame establishes the players (in turn order) and the initial placement of the pieces.
type InitGame struct {
	Players []Player
}

// MovePlayer moves a player piece along a legal path to a field without player pieces.
// If the field holds a blocker, the blocker is captured.
type MovePlayer struct {
	Piece    PieceID
	From, To FieldID
}

// SwapOwnPiece exchanges the positions of two pieces of the same player.
type SwapOwnPiece struct {
	Piece, Other PieceID
	From, To     FieldID
}

// SwapHostilePieces exchanges the positions of the mover's piece with an opponent's piece.
type SwapHostilePieces struct {
	Piece, Other PieceID
	From, To     FieldID
}

// SelectGrey picks up a gray blocker from the board, when all gray blockers are already in
// play and one has to be moved.
type SelectGrey struct {
	Piece PieceID
	From  FieldID
}

// SetGrey places the gray blocker being held on an empty field. From is where it was picked
// up, or NoField if it came from the supply.
type SetGrey struct {
	Piece    PieceID
	From, To FieldID
}

// SetBlack places the black blocker captured by the previous move on an empty field.
// From is where it was captured.
type SetBlack struct {
	Piece    PieceID
	From, To FieldID
}

// Undo reverses the given moves, which must be the most recent moves of the history.
type Undo struct {
	Moves []Move
}

// Assert all moves implement Move.
var (
	_ Move = InitGame{}
	_ Move = MovePlayer{}
	_ Move = SwapOwnPiece{}
	_ Move = SwapHostilePieces{}
	_ Move = SelectGrey{}
	_ Move = SetGrey{}
	_ Move = SetBlack{}
	_ Move = Undo{}
)

func (InitGame) Kind() MoveKind          { return MoveInitGame }
func (MovePlayer) Kind() MoveKind        { return MoveMovePlayer }
func (SwapOwnPiece) Kind() MoveKind      { return MoveSwapOwnPiece }
func (SwapHostilePieces) Kind() MoveKind { return MoveSwapHostilePieces }
func (SelectGrey) Kind() MoveKind        { return MoveSelectGrey }
func (SetGrey) Kind() MoveKind           { return MoveSetGrey }
func (SetBlack) Kind() MoveKind          { return MoveSetBlack }
func (Undo) Kind() MoveKind              { return MoveUndo }

func (InitGame) isMove()          {}
func (MovePlayer) isMove()        {}
func (SwapOwnPiece) isMove()      {}
func (SwapHostilePieces) isMove() {}
func (SelectGrey) isMove()        {}
func (SetGrey) isMove()           {}
func (SetBlack) isMove()          {}
func (Undo) isMove()              {}

func (m InitGame) Notation() string {
	ids := generics.SliceMap(m.Players, func(p Player) string { return string(p.ID) })
	return fmt.Sprintf("init [%s]", strings.Join(ids, ", "))
}

func (m MovePlayer) Notation() string {
	return fmt.Sprintf("%s: %s -> %s", m.Piece, m.From, m.To)
}

func (m SwapOwnPiece) Notation() string {
	return fmt.Sprintf("%s <-> %s: %s -> %s", m.Piece, m.Other, m.From, m.To)
}

func (m SwapHostilePieces) Notation() string {
	return fmt.Sprintf("%s <x> %s: %s -> %s", m.Piece, m.Other, m.From, m.To)
}

func (m SelectGrey) Notation() string {
	return fmt.Sprintf("%s: take from %s", m.Piece, m.From)
}

func (m SetGrey) Notation() string {
	from := string(m.From)
	if m.From == NoField {
		from = "supply"
	}
	return fmt.Sprintf("%s: %s -> %s", m.Piece, from, m.To)
}

func (m SetBlack) Notation() string {
	return fmt.Sprintf("%s: %s -> %s", m.Piece, m.From, m.To)
}

func (m Undo) Notation() string {
	notations := generics.SliceMap(m.Moves, Move.Notation)
	return fmt.Sprintf("undo [%s]", strings.Join(notations, "; "))
}

func (m InitGame) String() string          { return m.Notation() }
func (m MovePlayer) String() string        { return m.Notation() }
func (m SwapOwnPiece) String() string      { return m.Notation() }
func (m SwapHostilePieces) String() string { return m.Notation() }
func (m SelectGrey) String() string        { return m.Notation() }
func (m SetGrey) String() string           { return m.Notation() }
func (m SetBlack) String() string          { return m.Notation() }
func (m Undo) String() string              { return m.Notation() }

// canSetBlack returns the target field of the move if it may be followed by a SetBlack, that
// is, if it is a MovePlayer. Whether it actually captured a black blocker depends on the board.
func canSetBlack(m Move) (FieldID, bool) {
	if mp, ok := m.(MovePlayer); ok {
		return mp.To, true
	}
	return NoField, false
}

// UndoLast returns the Undo move that reverses the last n moves of the history.
func UndoLast(history []Move, n int) Undo {
	n = min(n, len(history))
	return Undo{Moves: append([]Move(nil), history[len(history)-n:]...)}
}
