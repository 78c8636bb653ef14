package session

import (
	"context"

	"github.com/janpfeifer/pentaGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Sender forwards events accepted locally to the other peers of the match.
type Sender interface {
	Send(ctx context.Context, e Event) error
}

// SenderFunc adapts a function to a Sender.
type SenderFunc func(ctx context.Context, e Event) error

// Send implements Sender.
func (f SenderFunc) Send(ctx context.Context, e Event) error { return f(ctx, e) }

// Client is the command surface of one actor of a match: clicks go through the board's selection
// state machine, and the moves they emit are applied to the replica right away and then forwarded
// through the Sender, if one is configured.
type Client struct {
	actor   state.PlayerID
	replica *Replica
	sender  Sender
}

// NewClient creates a client for actor. sender may be nil for local matches.
func NewClient(actor state.PlayerID, replica *Replica, sender Sender) *Client {
	return &Client{actor: actor, replica: replica, sender: sender}
}

// Actor returns the player this client acts for.
func (c *Client) Actor() state.PlayerID { return c.actor }

// Board returns the replica's current board.
func (c *Client) Board() *state.Board { return c.replica.Board() }

// ClickPiece sends a click on a piece to the selection state machine. It returns the move
// emitted, if any. Inert clicks return an error wrapping state.ErrIllegalClick.
func (c *Client) ClickPiece(ctx context.Context, piece state.PieceID) (state.Move, error) {
	return c.click(ctx, func(b *state.Board) (*state.Board, state.Move, error) {
		return b.ClickPiece(c.actor, piece)
	})
}

// ClickField sends a click on a field to the selection state machine. See ClickPiece.
func (c *Client) ClickField(ctx context.Context, field state.FieldID) (state.Move, error) {
	return c.click(ctx, func(b *state.Board) (*state.Board, state.Move, error) {
		return b.ClickField(c.actor, field)
	})
}

func (c *Client) click(ctx context.Context, intent func(b *state.Board) (*state.Board, state.Move, error)) (state.Move, error) {
	e, err := c.replica.update(intent)
	if err != nil || e == nil {
		return nil, err
	}
	move := e.(GameEvent).Move
	return move, c.forward(ctx, e)
}

// Submit applies a fully formed move, e.g. one chosen by an automatic player, and forwards it.
func (c *Client) Submit(ctx context.Context, move state.Move) error {
	e := GameEvent{Move: move}
	if illegal, rejected := c.replica.Reduce(e).(IllegalMove); rejected {
		return errors.Wrap(state.ErrIllegalMove, illegal.Message)
	}
	return c.forward(ctx, e)
}

// UndoLastTurn undoes the moves of the latest turn, and forwards the Undo.
func (c *Client) UndoLastTurn(ctx context.Context) (state.Undo, error) {
	undo, ok := c.Board().UndoLastTurn()
	if !ok {
		return undo, errors.Wrap(state.ErrUndoOutOfOrder, "nothing to undo")
	}
	e := Undo{Moves: undo.Moves}
	if illegal, rejected := c.replica.Reduce(e).(IllegalMove); rejected {
		return undo, errors.Wrap(state.ErrUndoOutOfOrder, illegal.Message)
	}
	return undo, c.forward(ctx, e)
}

// Receive reduces an event received from another peer. It is not forwarded.
func (c *Client) Receive(e Event) Event {
	return c.replica.Reduce(e)
}

func (c *Client) forward(ctx context.Context, e Event) error {
	if c.sender == nil {
		return nil
	}
	if err := c.sender.Send(ctx, e); err != nil {
		klog.Errorf("%s failed to forward event: %+v", c.actor, err)
		return errors.WithMessagef(err, "failed to forward event of %s", c.actor)
	}
	return nil
}
