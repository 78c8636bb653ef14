// Package statetest provides helper functions to create tests using the Pentagame state.
package statetest

import (
	"testing"

	. "github.com/janpfeifer/pentaGo/internal/state"
	"github.com/stretchr/testify/require"
)

// Players returns players with the given ids, in turn order.
func Players(ids ...PlayerID) []Player {
	players := make([]Player, len(ids))
	for ii, id := range ids {
		players[ii] = Player{ID: id, Figure: "circle"}
	}
	return players
}

// Five is the list of player ids used by the 5-player tests.
var Five = []PlayerID{"alice", "bob", "carol", "dave", "erin"}

// NewGame returns a started board for the given players with the default rules.
func NewGame(t testing.TB, ids ...PlayerID) *Board {
	b, err := NewBoard(DefaultRules).Apply(InitGame{Players: Players(ids...)})
	require.NoError(t, err)
	return b
}

// BuildBoard returns a started board for the given players, with the pieces in layout relocated.
// Mapping a piece to NoField takes it off the board.
func BuildBoard(t testing.TB, rules Rules, ids []PlayerID, layout map[PieceID]FieldID) *Board {
	b, err := NewCustomBoard(rules, Players(ids...), layout)
	require.NoError(t, err)
	return b
}

// MustApply applies the moves in order, failing the test on the first error.
func MustApply(t testing.TB, b *Board, moves ...Move) *Board {
	for _, m := range moves {
		var err error
		b, err = b.Apply(m)
		require.NoErrorf(t, err, "applying %s", m)
		require.NoError(t, b.CheckInvariants())
	}
	return b
}
