package session

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/janpfeifer/pentaGo/internal/state"
	"github.com/janpfeifer/pentaGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wire returns a Sender that delivers the events, through their JSON encoding, to the replica.
func wire(t *testing.T, to *Replica) Sender {
	return SenderFunc(func(_ context.Context, e Event) error {
		data, err := EncodeEvent(e)
		require.NoError(t, err)
		decoded, err := DecodeEvent(data)
		require.NoError(t, err)
		recorded := to.Reduce(decoded)
		_, rejected := recorded.(IllegalMove)
		require.False(t, rejected, "remote rejected %v", recorded)
		return nil
	})
}

func TestReplicasConverge(t *testing.T) {
	ctx := context.Background()
	var notified int
	r1 := NewReplica(state.DefaultRules, func(b *state.Board, e Event) { notified++ })
	r2 := NewReplica(state.DefaultRules, nil)
	alice := NewClient("alice", r1, wire(t, r2))
	bob := NewClient("bob", r2, wire(t, r1))
	assert.Equal(t, state.PlayerID("alice"), alice.Actor())

	require.NoError(t, alice.Submit(ctx, state.InitGame{Players: statetest.Players("alice", "bob")}))
	assert.True(t, r2.Board().IsStarted())

	// Not bob's turn: inert, nothing is sent.
	move, err := bob.ClickPiece(ctx, "bob/A")
	require.ErrorIs(t, err, state.ErrIllegalClick)
	assert.Nil(t, move)

	// Selection changes are local.
	move, err = alice.ClickPiece(ctx, "alice/A")
	require.NoError(t, err)
	assert.Nil(t, move)
	assert.Equal(t, state.PlayerPieceArmed, r1.Board().Selection().Kind)
	assert.Equal(t, state.Idle, r2.Board().Selection().Kind)

	move, err = alice.ClickField(ctx, "A-1-B")
	require.NoError(t, err)
	assert.Equal(t, state.MovePlayer{Piece: "alice/A", From: "A", To: "A-1-B"}, move)
	require.True(t, r1.Board().Equal(r2.Board()))

	_, err = bob.ClickPiece(ctx, "bob/B")
	require.NoError(t, err)
	_, err = bob.ClickField(ctx, "A-6-B")
	require.NoError(t, err)
	_, err = alice.ClickPiece(ctx, "alice/A")
	require.NoError(t, err)
	move, err = alice.ClickPiece(ctx, "bob/B")
	require.NoError(t, err)
	assert.Equal(t, state.MoveSwapHostilePieces, move.Kind())
	require.True(t, r1.Board().Equal(r2.Board()))
	assert.Equal(t, 4, notified)

	undo, err := bob.UndoLastTurn(ctx)
	require.NoError(t, err)
	assert.Equal(t, []state.Move{move}, undo.Moves)
	require.True(t, r1.Board().Equal(r2.Board()))
	assert.Equal(t, state.PlayerID("alice"), r1.Board().CurrentPlayer())
	assert.Len(t, r1.Log(), 5)
}

func TestUndoAfterArmingConverges(t *testing.T) {
	ctx := context.Background()
	r1 := NewReplica(state.DefaultRules, nil)
	r2 := NewReplica(state.DefaultRules, nil)
	alice := NewClient("alice", r1, wire(t, r2))
	NewClient("bob", r2, wire(t, r1))
	require.NoError(t, alice.Submit(ctx, state.InitGame{Players: statetest.Players("alice", "bob")}))

	_, err := alice.ClickPiece(ctx, "alice/A")
	require.NoError(t, err)
	_, err = alice.ClickField(ctx, "A-1-B")
	require.NoError(t, err)
	require.True(t, r1.Board().Equal(r2.Board()))

	_, err = alice.UndoLastTurn(ctx)
	require.NoError(t, err)
	require.True(t, r1.Board().Equal(r2.Board()))
	assert.Equal(t, state.Idle, r1.Board().Selection().Kind)
	assert.Equal(t, state.PlayerID("alice"), r2.Board().CurrentPlayer())
}

func TestReplicaIllegalMove(t *testing.T) {
	ctx := context.Background()
	r := NewReplica(state.DefaultRules, nil)
	var sent []Event
	c := NewClient("alice", r, SenderFunc(func(_ context.Context, e Event) error {
		sent = append(sent, e)
		return nil
	}))
	require.NoError(t, c.Submit(ctx, state.InitGame{Players: statetest.Players("alice", "bob")}))
	err := c.Submit(ctx, state.MovePlayer{Piece: "bob/A", From: "A", To: "A-1-B"})
	require.ErrorIs(t, err, state.ErrIllegalMove)
	require.Len(t, sent, 1, "rejected moves are not forwarded")

	log := r.Log()
	require.Len(t, log, 2)
	illegal, ok := log[1].(IllegalMove)
	require.True(t, ok)
	assert.Contains(t, illegal.Message, "bob/A")
	assert.Equal(t, 0, r.Board().Turn())

	// Peers' reports are only logged.
	recorded := r.Reduce(IllegalMove{Message: "out of turn"})
	assert.IsType(t, IllegalMove{}, recorded)
	assert.Len(t, r.Log(), 3)

	_, err = NewClient("alice", NewReplica(state.DefaultRules, nil), nil).UndoLastTurn(ctx)
	require.ErrorIs(t, err, state.ErrUndoOutOfOrder)
}

func TestEventEncoding(t *testing.T) {
	for _, e := range []Event{
		GameEvent{Move: state.SetBlack{Piece: "black/c", From: "c", To: "A-1-B"}},
		IllegalMove{Message: "nope", Move: state.SelectGrey{Piece: "gray/1", From: "A-2-B"}},
		IllegalMove{Message: "no move"},
		Undo{Moves: []state.Move{
			state.MovePlayer{Piece: "alice/C", From: "A-3-c", To: "c"},
			state.SetGrey{Piece: "gray/1", To: "A-2-B"},
		}},
	} {
		data, err := EncodeEvent(e)
		require.NoError(t, err)
		decoded, err := DecodeEvent(data)
		require.NoError(t, err)
		assert.Equal(t, e, decoded)
	}
	_, err := DecodeEvent([]byte(`{"type":"PlayerJoin"}`))
	require.Error(t, err)
	_, err = EncodeEvent(nil)
	require.Error(t, err)
}

func TestJournal(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	r := NewReplica(state.DefaultRules, Journal(&buf, "journal-test"))
	c := NewClient("alice", r, nil)
	require.NoError(t, c.Submit(ctx, state.InitGame{Players: statetest.Players("alice", "bob")}))
	_, err := c.ClickPiece(ctx, "alice/A")
	require.NoError(t, err)
	_, err = c.ClickField(ctx, "A-1-B")
	require.NoError(t, err)
	_, err = c.UndoLastTurn(ctx)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"match":"journal-test"`)

	events, err := ReadJournal(&buf)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, r.Log(), events)

	// Replaying the journal into a new replica reaches the same board.
	r2 := NewReplica(state.DefaultRules, nil)
	for _, e := range events {
		r2.Reduce(e)
	}
	assert.True(t, r.Board().Equal(r2.Board()))

	_, err = ReadJournal(strings.NewReader("{not json"))
	require.Error(t, err)
}
