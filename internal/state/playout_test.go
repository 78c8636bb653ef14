package state_test

import (
	"testing"

	. "github.com/janpfeifer/pentaGo/internal/state"
	. "github.com/janpfeifer/pentaGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// randomPlayout plays up to maxMoves random legal moves, calling check before each move.
func randomPlayout(t *testing.T, seed uint64, players []PlayerID, maxMoves int, check func(b *Board, m Move)) *Board {
	rng := rand.New(rand.NewSource(seed))
	b := NewGame(t, players...)
	for range maxMoves {
		moves := b.LegalMoves()
		if len(moves) == 0 {
			break
		}
		m := moves[rng.Intn(len(moves))]
		check(b, m)
		var err error
		b, err = b.Apply(m)
		require.NoErrorf(t, err, "legal move %s rejected", m)
		require.NoErrorf(t, b.CheckInvariants(), "after %s", m)
	}
	return b
}

func TestRandomPlayouts(t *testing.T) {
	for seed := range uint64(6) {
		players := Five[:1+seed%5]
		var numChecks int
		final := randomPlayout(t, seed, players, 200, func(b *Board, m Move) {
			numChecks++
			turn := b.Turn()

			// Determinism.
			b1, err := b.Apply(m)
			require.NoError(t, err)
			b2, err := b.Apply(m)
			require.NoError(t, err)
			require.True(t, b1.Equal(b2))
			require.Equal(t, turn, b.Turn(), "receiver must not change")

			// Encoding round-trip.
			data, err := EncodeMove(m)
			require.NoError(t, err)
			decoded, err := DecodeMove(data)
			require.NoError(t, err)
			b3, err := b.Apply(decoded)
			require.NoError(t, err)
			require.True(t, b1.Equal(b3), "decoded move %s", decoded)

			// Undo is a left-inverse.
			undone, err := b1.Apply(Undo{Moves: []Move{m}})
			require.NoError(t, err)
			require.Truef(t, undone.Equal(b), "undo of %s", m)

			// Turns only complete when no blocker has to be placed.
			if b1.Selection().IsPlacing() {
				require.Equal(t, turn, b1.Turn())
			} else if !b1.IsFinished() {
				require.Equal(t, turn+1, b1.Turn())
			}
		})
		require.Greater(t, numChecks, 0)

		// Replaying the history reproduces the final board.
		replayed, err := Replay(final.Rules(), final.History())
		require.NoError(t, err)
		require.True(t, final.Equal(replayed))
	}
}

func TestUndoSuffix(t *testing.T) {
	b := NewGame(t, "alice", "bob")
	m1 := MovePlayer{Piece: "alice/A", From: "A", To: "A-1-B"}
	m2 := MovePlayer{Piece: "bob/B", From: "B", To: "A-6-B"}
	m3 := SwapHostilePieces{Piece: "alice/A", Other: "bob/B", From: "A-1-B", To: "A-6-B"}
	b1 := MustApply(t, b, m1)
	b3 := MustApply(t, b1, m2, m3)
	require.Equal(t, FieldID("A-6-B"), must1(b3.Position("alice/A")))
	require.Equal(t, FieldID("A-1-B"), must1(b3.Position("bob/B")))

	// Out of order.
	_, err := b3.Apply(Undo{Moves: []Move{m2}})
	require.ErrorIs(t, err, ErrUndoOutOfOrder)
	_, err = b3.Apply(Undo{Moves: []Move{m3, m2}})
	require.ErrorIs(t, err, ErrUndoOutOfOrder)
	_, err = b3.Apply(UndoLast(b3.History(), 10))
	require.NoError(t, err, "undoing everything, including InitGame")

	// Undoing the swap restores both pieces.
	b2, err := b3.Apply(Undo{Moves: []Move{m3}})
	require.NoError(t, err)
	require.Equal(t, FieldID("A-1-B"), must1(b2.Position("alice/A")))
	require.Equal(t, FieldID("A-6-B"), must1(b2.Position("bob/B")))
	require.Equal(t, PlayerID("alice"), b2.CurrentPlayer())

	undone, err := b3.Apply(Undo{Moves: []Move{m2, m3}})
	require.NoError(t, err)
	require.True(t, undone.Equal(b1))
	require.Len(t, undone.History(), 2)

	undo, ok := b3.UndoLastTurn()
	require.True(t, ok)
	require.Len(t, undo.Moves, 1)

	// Undoing InitGame returns the board before the match.
	b0, err := b.Apply(UndoLast(b.History(), 1))
	require.NoError(t, err)
	require.False(t, b0.IsStarted())
	require.True(t, b0.Equal(NewBoard(DefaultRules)))
	_, ok = b.UndoLastTurn()
	require.False(t, ok, "InitGame is only undone explicitly")
}

func TestUndoLastTurnWithPlacements(t *testing.T) {
	b := BuildBoard(t, DefaultRules, []PlayerID{"alice", "bob"}, map[PieceID]FieldID{
		"alice/C": "A-3-c",
	})
	b = MustApply(t, b,
		MovePlayer{Piece: "alice/C", From: "A-3-c", To: "c"},
		SetBlack{Piece: "black/c", From: "c", To: "A-1-B"},
		SetGrey{Piece: "gray/1", To: "A-2-B"},
	)
	undo, ok := b.UndoLastTurn()
	require.True(t, ok)
	require.Len(t, undo.Moves, 3)
	undone, err := b.Apply(undo)
	require.NoError(t, err)
	require.Equal(t, FieldID("A-3-c"), must1(undone.Position("alice/C")))
	require.Equal(t, FieldID("c"), must1(undone.Position("black/c")))
	require.Empty(t, undone.History(), "custom boards start with an empty history")
}

func must1[T any](v T, ok bool) T {
	if !ok {
		panic("value not found")
	}
	return v
}

func TestUndoDropsArmedSelection(t *testing.T) {
	b := NewGame(t, "alice", "bob")
	armed, _, err := b.ClickPiece("alice", "alice/A")
	require.NoError(t, err)
	moved, move, err := armed.ClickField("alice", "A-1-B")
	require.NoError(t, err)

	// The armed selection never left this board, so undo restores the unarmed one.
	undone, err := moved.Apply(Undo{Moves: []Move{move}})
	require.NoError(t, err)
	assert.True(t, undone.Equal(b))
	assert.Equal(t, Selection{Kind: Idle}, undone.Selection())

	// A peer that received only the move undoes to the same board.
	remote := MustApply(t, b, move)
	remoteUndone, err := remote.Apply(Undo{Moves: []Move{move}})
	require.NoError(t, err)
	assert.True(t, remoteUndone.Equal(undone))

	// Blocker placement selections are part of the replicated state and are restored.
	b = BuildBoard(t, DefaultRules, []PlayerID{"alice", "bob"}, map[PieceID]FieldID{"alice/C": "A-3-c"})
	captured := MustApply(t, b, MovePlayer{Piece: "alice/C", From: "A-3-c", To: "c"})
	placed := MustApply(t, captured, SetBlack{Piece: "black/c", From: "c", To: "B-1-C"})
	undone, err = placed.Apply(Undo{Moves: []Move{SetBlack{Piece: "black/c", From: "c", To: "B-1-C"}}})
	require.NoError(t, err)
	assert.Equal(t, BlackArmed, undone.Selection().Kind)
	assert.True(t, undone.Equal(captured))
}
