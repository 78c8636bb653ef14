// Package state holds the Pentagame rules engine: the board topology, the pieces, the moves and
// the board state machine that validates and applies them.
//
// A *Board is never modified after it is returned: every accepted move or selection change
// returns a new *Board, so boards can be shared freely among goroutines.
package state

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// historyEntry is one applied move, along with the board before it was applied.
type historyEntry struct {
	move   Move
	before *Board
}

// Board is the state of a match. Create it with NewBoard, and change it only through Apply
// (moves) or ClickPiece/ClickField (selection intents).
type Board struct {
	topology *Topology
	rules    Rules

	// players in turn order, and registry of pieces: both nil before InitGame.
	players  []Player
	registry *Registry

	// positions of the pieces on the board. Absent pieces are off-board.
	positions map[PieceID]FieldID

	selection Selection
	turn      int
	history   []historyEntry
	winner    PlayerID

	// pendingGray is set when the mover still has to place a gray blocker before the turn completes.
	pendingGray bool

	// occupants is derived from positions, and regenerated after each change.
	occupants map[FieldID][]PieceID
}

// NewBoard returns a board before the match starts: the first move must be an InitGame.
func NewBoard(rules Rules) *Board {
	b := &Board{
		topology:  PentaBoard(),
		rules:     rules,
		positions: make(map[PieceID]FieldID),
	}
	b.buildDerived()
	return b
}

// NewCustomBoard starts a match for the given players, and then relocates the pieces listed
// in layout: mapping a piece to NoField takes it off the board.
//
// The resulting board has an empty history, so its moves can't be replayed from a fresh board.
// It's meant for tests and puzzles.
func NewCustomBoard(rules Rules, players []Player, layout map[PieceID]FieldID) (*Board, error) {
	b, err := NewBoard(rules).Apply(InitGame{Players: players})
	if err != nil {
		return nil, err
	}
	b = b.clone()
	b.history = nil
	for id, field := range layout {
		if _, err := b.registry.Piece(id); err != nil {
			return nil, err
		}
		if field == NoField {
			delete(b.positions, id)
			continue
		}
		if _, err := b.topology.Field(field); err != nil {
			return nil, err
		}
		b.positions[id] = field
	}
	b.buildDerived()
	if err := b.CheckInvariants(); err != nil {
		return nil, errors.WithMessage(err, "invalid custom layout")
	}
	return b, nil
}

// clone makes a copy of the board that can be modified to generate the next board.
// History entries are shared, but appending to the clone never changes b.
func (b *Board) clone() *Board {
	newB := &Board{}
	*newB = *b
	newB.positions = maps.Clone(b.positions)
	newB.history = slices.Clip(b.history)
	newB.occupants = nil
	return newB
}

// buildDerived regenerates the occupants of each field. Pieces are listed in registry order.
func (b *Board) buildDerived() {
	b.occupants = make(map[FieldID][]PieceID, len(b.positions))
	if b.registry == nil {
		return
	}
	for _, p := range b.registry.Pieces() {
		if field, found := b.positions[p.ID]; found {
			b.occupants[field] = append(b.occupants[field], p.ID)
		}
	}
}

// Topology of the board.
func (b *Board) Topology() *Topology { return b.topology }

// Rules of the match.
func (b *Board) Rules() Rules { return b.rules }

// Fields returns all fields of the board.
func (b *Board) Fields() []*Field { return b.topology.Fields() }

// IsStarted returns whether InitGame has been applied.
func (b *Board) IsStarted() bool { return b.registry != nil }

// IsFinished returns whether the match has a winner.
func (b *Board) IsFinished() bool { return b.winner != NoPlayer }

// Winner of the match, or NoPlayer.
func (b *Board) Winner() PlayerID { return b.winner }

// Turn counter: it starts at 0 and is incremented every time a turn completes.
func (b *Board) Turn() int { return b.turn }

// Selection sub-state of the board.
func (b *Board) Selection() Selection { return b.selection }

// Players of the match in turn order.
func (b *Board) Players() []Player { return slices.Clone(b.players) }

// CurrentPlayer returns the player to move, or NoPlayer if the match hasn't started.
func (b *Board) CurrentPlayer() PlayerID {
	if len(b.players) == 0 {
		return NoPlayer
	}
	return b.players[b.turn%len(b.players)].ID
}

// Pieces returns all pieces of the match, or nil if it hasn't started.
func (b *Board) Pieces() []*Piece {
	if b.registry == nil {
		return nil
	}
	return b.registry.Pieces()
}

// Piece returns the piece with the given id, or an error wrapping ErrUnknownPiece.
func (b *Board) Piece(id PieceID) (*Piece, error) {
	if b.registry == nil {
		return nil, errors.Wrapf(ErrUnknownPiece, "piece %q: match not started", id)
	}
	return b.registry.Piece(id)
}

// Position returns the field the piece is on, and false if the piece is off-board.
func (b *Board) Position(id PieceID) (FieldID, bool) {
	field, found := b.positions[id]
	return field, found
}

// PiecesAt returns the pieces on the field, in registry order.
func (b *Board) PiecesAt(field FieldID) []PieceID {
	return slices.Clone(b.occupants[field])
}

// IsEmpty returns whether no piece is on the field.
func (b *Board) IsEmpty(field FieldID) bool {
	return len(b.occupants[field]) == 0
}

// History returns the moves applied to the board, oldest first. Undone moves are not included.
func (b *Board) History() []Move {
	moves := make([]Move, len(b.history))
	for ii, entry := range b.history {
		moves[ii] = entry.move
	}
	return moves
}

// GoalsReached returns how many pieces of the player have reached the Goal of their colors.
func (b *Board) GoalsReached(player PlayerID) int {
	if b.registry == nil {
		return 0
	}
	var count int
	for _, p := range b.registry.OwnedBy(player) {
		if _, onBoard := b.positions[p.ID]; !onBoard {
			count++
		}
	}
	return count
}

// Supply returns the gray blockers that are off-board and not being held.
func (b *Board) Supply() []PieceID {
	if b.registry == nil {
		return nil
	}
	var supply []PieceID
	for _, p := range b.registry.OfKind(KindGrayBlocker) {
		if _, onBoard := b.positions[p.ID]; onBoard {
			continue
		}
		if b.selection.Kind == GrayArmed && b.selection.Piece == p.ID {
			continue
		}
		supply = append(supply, p.ID)
	}
	return supply
}

// Equal returns whether both boards have the same match state: players, positions, selection,
// turn, winner and history (compared by the moves' encoding).
func (b *Board) Equal(other *Board) bool {
	if b.rules != other.rules || b.turn != other.turn || b.winner != other.winner ||
		b.pendingGray != other.pendingGray || b.selection != other.selection {
		return false
	}
	if !slices.Equal(b.players, other.players) || !maps.Equal(b.positions, other.positions) {
		return false
	}
	if len(b.history) != len(other.history) {
		return false
	}
	for ii := range b.history {
		if !MovesEqual(b.history[ii].move, other.history[ii].move) {
			return false
		}
	}
	return true
}

// CheckInvariants verifies the occupancy and selection invariants, and returns an error
// describing the first violation found.
func (b *Board) CheckInvariants() error {
	if b.registry == nil {
		if len(b.positions) > 0 {
			return errors.Errorf("board not started but has %d pieces on it", len(b.positions))
		}
		return nil
	}
	for id, field := range b.positions {
		if _, err := b.registry.Piece(id); err != nil {
			return err
		}
		if _, err := b.topology.Field(field); err != nil {
			return err
		}
	}
	for field, pieces := range b.occupants {
		f := b.topology.MustField(field)
		for _, id := range pieces {
			p, _ := b.registry.Piece(id)
			if p.IsBlocker() && len(pieces) > 1 {
				return errors.Errorf("blocker %s shares field %s with %v", id, field, pieces)
			}
		}
		if len(pieces) > 1 && !f.IsCorner() {
			return errors.Errorf("pieces %v stacked on connection field %s", pieces, field)
		}
	}
	for _, p := range b.registry.OfKind(KindBlackBlocker) {
		if _, onBoard := b.positions[p.ID]; onBoard {
			continue
		}
		if b.selection.Kind != BlackArmed || b.selection.Piece != p.ID {
			return errors.Errorf("black blocker %s is off-board but not being placed", p.ID)
		}
	}
	sel := b.selection
	switch sel.Kind {
	case PlayerPieceArmed:
		if field, onBoard := b.positions[sel.Piece]; !onBoard || field != sel.From {
			return errors.Errorf("armed piece %s is not on %s", sel.Piece, sel.From)
		}
	case BlackArmed, GrayArmed:
		if _, onBoard := b.positions[sel.Piece]; onBoard {
			return errors.Errorf("held blocker %s is on the board", sel.Piece)
		}
	}
	return nil
}

// String returns a compact multi-line description of the board.
func (b *Board) String() string {
	var sb strings.Builder
	if !b.IsStarted() {
		return "Board(not started)"
	}
	fmt.Fprintf(&sb, "Turn %d, current player %s, selection %s\n", b.turn, b.CurrentPlayer(), b.selection)
	if b.IsFinished() {
		fmt.Fprintf(&sb, "Winner: %s\n", b.winner)
	}
	for _, f := range b.topology.Fields() {
		if pieces := b.occupants[f.ID]; len(pieces) > 0 {
			fmt.Fprintf(&sb, "  %s: %v\n", f.ID, pieces)
		}
	}
	return sb.String()
}
