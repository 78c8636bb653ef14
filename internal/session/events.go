// Package session replicates a match among peers: it defines the events exchanged between them,
// a Replica that reduces events in order into a board, and a Client that turns an actor's
// clicks into events.
//
// Transport is left to the caller, through the Sender interface.
package session

import (
	"encoding/json"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/pentaGo/internal/state"
	"github.com/pkg/errors"
)

// Event exchanged between peers of a match. It is one of GameEvent, IllegalMove or Undo.
type Event interface {
	isEvent()
}

// GameEvent carries a move to be applied by every peer.
type GameEvent struct {
	Move state.Move
}

// IllegalMove reports a move that was rejected, along with the reason.
type IllegalMove struct {
	Message string
	Move    state.Move
}

// Undo requests the reversal of the given moves, which must be the latest moves of the match.
type Undo struct {
	Moves []state.Move
}

func (GameEvent) isEvent()   {}
func (IllegalMove) isEvent() {}
func (Undo) isEvent()        {}

// wireEvent is the JSON envelope of events.
type wireEvent struct {
	Type    string            `json:"type"`
	Message string            `json:"message,omitempty"`
	Move    json.RawMessage   `json:"move,omitempty"`
	Moves   []json.RawMessage `json:"moves,omitempty"`
}

const (
	typeGameEvent   = "GameEvent"
	typeIllegalMove = "IllegalMove"
	typeUndo        = "Undo"
)

// EncodeEvent serializes the event to JSON. Moves are encoded with state.EncodeMove.
func EncodeEvent(e Event) ([]byte, error) {
	var (
		w   wireEvent
		err error
	)
	switch e := e.(type) {
	case GameEvent:
		w.Type = typeGameEvent
		w.Move, err = state.EncodeMove(e.Move)
	case IllegalMove:
		w.Type, w.Message = typeIllegalMove, e.Message
		if e.Move != nil {
			w.Move, err = state.EncodeMove(e.Move)
		}
	case Undo:
		w.Type = typeUndo
		w.Moves = make([]json.RawMessage, len(e.Moves))
		for ii, m := range e.Moves {
			if w.Moves[ii], err = state.EncodeMove(m); err != nil {
				break
			}
		}
	case nil:
		return nil, errors.New("can't encode nil event")
	default:
		exceptions.Panicf("EncodeEvent: unhandled event type %T", e)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to encode %s event", w.Type)
	}
	return json.Marshal(w)
}

// DecodeEvent is the inverse of EncodeEvent.
func DecodeEvent(data []byte) (Event, error) {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.Wrapf(err, "failed to decode event from %q", data)
	}
	switch w.Type {
	case typeGameEvent:
		m, err := state.DecodeMove(w.Move)
		if err != nil {
			return nil, errors.WithMessage(err, "in GameEvent")
		}
		return GameEvent{Move: m}, nil
	case typeIllegalMove:
		e := IllegalMove{Message: w.Message}
		if len(w.Move) > 0 {
			var err error
			if e.Move, err = state.DecodeMove(w.Move); err != nil {
				return nil, errors.WithMessage(err, "in IllegalMove")
			}
		}
		return e, nil
	case typeUndo:
		e := Undo{Moves: make([]state.Move, len(w.Moves))}
		for ii, data := range w.Moves {
			var err error
			if e.Moves[ii], err = state.DecodeMove(data); err != nil {
				return nil, errors.WithMessagef(err, "in Undo move #%d", ii)
			}
		}
		return e, nil
	}
	return nil, errors.Errorf("unknown event type %q", w.Type)
}
