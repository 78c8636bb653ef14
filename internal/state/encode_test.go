package state_test

import (
	"bytes"
	"encoding/gob"
	"testing"

	. "github.com/janpfeifer/pentaGo/internal/state"
	. "github.com/janpfeifer/pentaGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oneOfEachKind has one move of each MoveKind, in MoveKind order.
var oneOfEachKind = []Move{
	InitGame{Players: Players("alice", "bob")},
	MovePlayer{Piece: "alice/A", From: "A", To: "A-1-B"},
	SwapOwnPiece{Piece: "alice/A", Other: "alice/B", From: "A-1-B", To: "A-2-B"},
	SwapHostilePieces{Piece: "alice/A", Other: "bob/B", From: "A-1-B", To: "A-2-B"},
	SelectGrey{Piece: "gray/2", From: "D-2-E"},
	SetGrey{Piece: "gray/1", To: "C-3-a"},
	SetBlack{Piece: "black/c", From: "c", To: "B-1-C"},
	Undo{Moves: []Move{
		MovePlayer{Piece: "alice/A", From: "A", To: "A-1-B"},
		SetBlack{Piece: "black/c", From: "c", To: "B-1-C"},
	}},
}

func TestEncodeAllMoveKinds(t *testing.T) {
	require.Len(t, oneOfEachKind, len(MoveKindValues()))
	for ii, kind := range MoveKindValues() {
		m := oneOfEachKind[ii]
		require.Equal(t, kind, m.Kind())
		assert.NotEmpty(t, m.Notation())
		t.Run(kind.String(), func(t *testing.T) {
			data, err := EncodeMove(m)
			require.NoError(t, err)
			assert.Contains(t, string(data), `"type":"`+kind.String()+`"`)
			decoded, err := DecodeMove(data)
			require.NoError(t, err)
			assert.Equal(t, m, decoded)
			assert.True(t, MovesEqual(m, decoded))
		})
	}
	assert.False(t, MovesEqual(oneOfEachKind[1], oneOfEachKind[2]))
	assert.True(t, MovesEqual(nil, nil))
	assert.False(t, MovesEqual(nil, oneOfEachKind[0]))
}

func TestDecodeMoveErrors(t *testing.T) {
	_, err := DecodeMove([]byte(`{"type":"Teleport"}`))
	require.Error(t, err)
	_, err = DecodeMove([]byte(`not json`))
	require.Error(t, err)
	_, err = DecodeMove([]byte(`{"type":"Undo","moves":[{"type":"Jump"}]}`))
	require.Error(t, err)
	_, err = EncodeMove(nil)
	require.Error(t, err)
}

func TestNotation(t *testing.T) {
	assert.Equal(t, "init [alice, bob]", oneOfEachKind[0].Notation())
	assert.Equal(t, "alice/A: A -> A-1-B", oneOfEachKind[1].Notation())
	assert.Equal(t, "alice/A <-> alice/B: A-1-B -> A-2-B", oneOfEachKind[2].Notation())
	assert.Equal(t, "alice/A <x> bob/B: A-1-B -> A-2-B", oneOfEachKind[3].Notation())
	assert.Equal(t, "gray/2: take from D-2-E", oneOfEachKind[4].Notation())
	assert.Equal(t, "black/c: c -> B-1-C", oneOfEachKind[6].Notation())
	assert.Equal(t, "undo [alice/A: A -> A-1-B; black/c: c -> B-1-C]", oneOfEachKind[7].Notation())
}

func TestSaveAndLoadMatch(t *testing.T) {
	b := NewGame(t, "alice", "bob")
	b = MustApply(t, b,
		MovePlayer{Piece: "alice/A", From: "A", To: "A-1-B"},
		MovePlayer{Piece: "bob/B", From: "B", To: "A-6-B"},
		SwapHostilePieces{Piece: "alice/A", Other: "bob/B", From: "A-1-B", To: "A-6-B"},
	)
	rules := Rules{GoalsToWin: 2, HostileSwaps: true}

	var buf bytes.Buffer
	require.NoError(t, SaveMatch(gob.NewEncoder(&buf), rules, b.History()))
	loadedRules, moves, err := LoadMatch(gob.NewDecoder(&buf))
	require.NoError(t, err)
	assert.Equal(t, rules, loadedRules)
	require.Len(t, moves, len(b.History()))
	for ii, m := range b.History() {
		assert.True(t, MovesEqual(m, moves[ii]), "move #%d", ii)
	}

	replayed, err := Replay(DefaultRules, moves)
	require.NoError(t, err)
	assert.True(t, b.Equal(replayed))
}
