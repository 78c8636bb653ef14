package maxn

import (
	"context"
	"testing"

	"github.com/janpfeifer/pentaGo/internal/ai"
	"github.com/janpfeifer/pentaGo/internal/ai/linear"
	"github.com/janpfeifer/pentaGo/internal/players"
	. "github.com/janpfeifer/pentaGo/internal/state"
	"github.com/janpfeifer/pentaGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndGameMove(t *testing.T) {
	ctx := context.Background()
	b := statetest.BuildBoard(t, Rules{GoalsToWin: 1}, []PlayerID{"alice", "bob"}, map[PieceID]FieldID{
		"alice/C": "A-3-c",
	})
	searcher := New(linear.Default)

	// Reaching the goal captures the black blocker first: placements follow.
	move, _, err := searcher.Search(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, MovePlayer{Piece: "alice/C", From: "A-3-c", To: "c"}, move)
	assert.Greater(t, searcher.Stats().Nodes, 1)
	assert.Greater(t, searcher.Stats().Evals, 1)

	// With enough depth it sees the win through the placements.
	searcher.WithMaxDepth(3)
	b = statetest.MustApply(t, b, move)
	move, score, err := searcher.Search(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, MoveSetBlack, move.Kind())
	assert.Equal(t, ai.WinGameScore, score)
}

func TestSearchErrors(t *testing.T) {
	searcher := New(linear.Default)
	_, _, err := searcher.Search(context.Background(), NewBoard(DefaultRules))
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = searcher.Search(ctx, statetest.NewGame(t, "alice", "bob"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestSearchPlayer(t *testing.T) {
	ctx := context.Background()
	p, err := players.New("test", "alice", "search:max_depth=1,randomness=0.01,seed=3")
	require.NoError(t, err)
	defer p.Finalize()
	_, err = players.New("test", "alice", "search:depth=1")
	require.Error(t, err, "unknown parameter")

	b := statetest.NewGame(t, "alice", "bob")
	move, err := p.Play(ctx, b)
	require.NoError(t, err)
	b = statetest.MustApply(t, b, move)
	_, err = p.Play(ctx, b)
	require.Error(t, err, "not alice's turn")
}

func TestSearchOpponentWithoutMoves(t *testing.T) {
	ctx := context.Background()
	// bob's only piece is boxed in by alice's pieces, and swaps with them are disabled.
	b := statetest.BuildBoard(t, Rules{GoalsToWin: NumColors}, []PlayerID{"alice", "bob"}, map[PieceID]FieldID{
		"alice/A": "A-1-B",
		"alice/B": "A-3-B",
		"bob/A":   "A-2-B",
		"bob/B":   NoField,
		"bob/C":   NoField,
		"bob/D":   NoField,
		"bob/E":   NoField,
	})
	var stuck *Board
	for _, move := range b.LegalMoves() {
		next := statetest.MustApply(t, b, move)
		if next.CurrentPlayer() == "bob" && len(next.LegalMoves()) == 0 {
			stuck = next
			break
		}
	}
	require.NotNil(t, stuck, "some move of alice keeps bob boxed in")

	searcher := New(linear.Default).WithMaxDepth(2)
	move, _, err := searcher.Search(ctx, b)
	require.NoError(t, err)
	require.NotNil(t, move)
	_, err = b.Apply(move)
	require.NoError(t, err)
	assert.Greater(t, searcher.Stats().Evals, 0)

	// Searching for the boxed-in player itself still fails.
	_, _, err = searcher.Search(ctx, stuck)
	require.ErrorContains(t, err, "no legal moves for bob")
}

func TestSearchNoiseIsSeeded(t *testing.T) {
	ctx := context.Background()
	b := statetest.NewGame(t, "alice", "bob", "carol")
	play := func(seed uint64) []Move {
		searcher := New(linear.Default).WithRandomness(0.5, seed)
		var moves []Move
		board := b
		for range 4 {
			move, _, err := searcher.Search(ctx, board)
			require.NoError(t, err)
			moves = append(moves, move)
			board = statetest.MustApply(t, board, move)
		}
		return moves
	}
	assert.Equal(t, play(7), play(7))
}
