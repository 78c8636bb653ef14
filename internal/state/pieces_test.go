package state_test

import (
	"testing"

	. "github.com/janpfeifer/pentaGo/internal/state"
	. "github.com/janpfeifer/pentaGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r, err := NewRegistry(PentaBoard(), Players("alice", "bob"))
	require.NoError(t, err)
	assert.Len(t, r.Pieces(), 2*NumColors+NumColors+NumGrayBlockers)
	assert.Len(t, r.OwnedBy("bob"), NumColors)
	assert.Len(t, r.OfKind(KindBlackBlocker), NumColors)
	assert.Len(t, r.OfKind(KindGrayBlocker), NumGrayBlockers)

	p, err := r.Piece("bob/C")
	require.NoError(t, err)
	assert.Equal(t, KindPlayer, p.Kind)
	assert.Equal(t, ColorC, p.Color)
	assert.Equal(t, PlayerID("bob"), p.Player)
	assert.Equal(t, FieldID("C"), p.Home)
	assert.False(t, p.IsBlocker())

	p, err = r.Piece("black/d")
	require.NoError(t, err)
	assert.Equal(t, KindBlackBlocker, p.Kind)
	assert.Equal(t, FieldID("d"), p.Home)
	assert.True(t, p.IsBlocker())

	p, err = r.Piece(GrayBlockerID(4))
	require.NoError(t, err)
	assert.Equal(t, PieceID("gray/5"), p.ID)
	assert.Equal(t, NoField, p.Home)

	_, err = r.Piece("carol/A")
	require.ErrorIs(t, err, ErrUnknownPiece)
}

func TestRegistryPlayers(t *testing.T) {
	for _, tc := range []struct {
		name    string
		players []Player
	}{
		{"none", nil},
		{"too many", Players("a", "b", "c", "d", "e", "f")},
		{"duplicated", Players("alice", "alice")},
		{"empty id", Players("")},
		{"slash", Players("a/b")},
		{"reserved", Players("gray")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRegistry(PentaBoard(), tc.players)
			require.ErrorIs(t, err, ErrIllegalMove)
		})
	}
	_, err := NewRegistry(PentaBoard(), Players(Five...))
	require.NoError(t, err)
}

func TestParseRules(t *testing.T) {
	rules, err := ParseRules("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRules, rules)

	rules, err = ParseRules("goals=1,hostile_swaps=false")
	require.NoError(t, err)
	assert.Equal(t, Rules{GoalsToWin: 1, HostileSwaps: false}, rules)
	assert.Equal(t, "goals=1,hostile_swaps=false", rules.String())

	_, err = ParseRules("goals=7")
	require.Error(t, err)
	_, err = ParseRules("goals=x")
	require.Error(t, err)
	_, err = ParseRules("speed=3")
	require.ErrorContains(t, err, "speed")
}
