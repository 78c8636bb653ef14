package state

import (
	"bytes"
	"encoding/json"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// wireMove is the serialized form of every Move: Type tells which fields are used.
type wireMove struct {
	Type    MoveKind   `json:"type"`
	Players []Player   `json:"players,omitempty"`
	Piece   PieceID    `json:"piece,omitempty"`
	Other   PieceID    `json:"other,omitempty"`
	From    FieldID    `json:"from,omitempty"`
	To      FieldID    `json:"to,omitempty"`
	Moves   []wireMove `json:"moves,omitempty"`
}

func toWire(m Move) wireMove {
	w := wireMove{Type: m.Kind()}
	switch m := m.(type) {
	case InitGame:
		w.Players = m.Players
	case MovePlayer:
		w.Piece, w.From, w.To = m.Piece, m.From, m.To
	case SwapOwnPiece:
		w.Piece, w.Other, w.From, w.To = m.Piece, m.Other, m.From, m.To
	case SwapHostilePieces:
		w.Piece, w.Other, w.From, w.To = m.Piece, m.Other, m.From, m.To
	case SelectGrey:
		w.Piece, w.From = m.Piece, m.From
	case SetGrey:
		w.Piece, w.From, w.To = m.Piece, m.From, m.To
	case SetBlack:
		w.Piece, w.From, w.To = m.Piece, m.From, m.To
	case Undo:
		w.Moves = make([]wireMove, len(m.Moves))
		for ii, undone := range m.Moves {
			w.Moves[ii] = toWire(undone)
		}
	default:
		exceptions.Panicf("toWire: unhandled move type %T", m)
	}
	return w
}

func fromWire(w wireMove) (Move, error) {
	switch w.Type {
	case MoveInitGame:
		return InitGame{Players: w.Players}, nil
	case MoveMovePlayer:
		return MovePlayer{Piece: w.Piece, From: w.From, To: w.To}, nil
	case MoveSwapOwnPiece:
		return SwapOwnPiece{Piece: w.Piece, Other: w.Other, From: w.From, To: w.To}, nil
	case MoveSwapHostilePieces:
		return SwapHostilePieces{Piece: w.Piece, Other: w.Other, From: w.From, To: w.To}, nil
	case MoveSelectGrey:
		return SelectGrey{Piece: w.Piece, From: w.From}, nil
	case MoveSetGrey:
		return SetGrey{Piece: w.Piece, From: w.From, To: w.To}, nil
	case MoveSetBlack:
		return SetBlack{Piece: w.Piece, From: w.From, To: w.To}, nil
	case MoveUndo:
		moves := make([]Move, len(w.Moves))
		for ii, undone := range w.Moves {
			var err error
			moves[ii], err = fromWire(undone)
			if err != nil {
				return nil, errors.WithMessagef(err, "undo move #%d", ii)
			}
		}
		return Undo{Moves: moves}, nil
	}
	return nil, errors.Errorf("unknown move type %s", w.Type)
}

// EncodeMove serializes the move to JSON, with a "type" field naming its kind.
func EncodeMove(m Move) ([]byte, error) {
	if m == nil {
		return nil, errors.New("can't encode nil move")
	}
	data, err := json.Marshal(toWire(m))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode move %s", m)
	}
	return data, nil
}

// DecodeMove is the inverse of EncodeMove.
func DecodeMove(data []byte) (Move, error) {
	var w wireMove
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.Wrapf(err, "failed to decode move from %q", data)
	}
	return fromWire(w)
}

// MovesEqual returns whether the two moves have the same encoding.
func MovesEqual(a, b Move) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	encA, errA := EncodeMove(a)
	encB, errB := EncodeMove(b)
	return errA == nil && errB == nil && bytes.Equal(encA, encB)
}

// Encoder is any type of encoder -- implemented by gob.Encoder, json.Encoder
type Encoder interface {
	// Encode v or return an error.
	Encode(v any) error
}

// Decoder is any type of decoder -- implemented by gob.Decoder, json.Decoder
type Decoder interface {
	// Decode into v or return an error.
	Decode(v any) error
}

// matchFileVersion is saved first in a match file, and bumped when the format changes.
const matchFileVersion = 1

// SaveMatch encodes the rules and moves of a match, typically the History of its final board.
func SaveMatch(enc Encoder, rules Rules, moves []Move) error {
	if err := enc.Encode(matchFileVersion); err != nil {
		return errors.Wrapf(err, "failed to encode match file version")
	}
	if err := enc.Encode(rules); err != nil {
		return errors.Wrapf(err, "failed to encode match's rules")
	}
	wires := make([]wireMove, len(moves))
	for ii, m := range moves {
		wires[ii] = toWire(m)
	}
	if err := enc.Encode(wires); err != nil {
		return errors.Wrapf(err, "failed to encode match's %d moves", len(moves))
	}
	return nil
}

// LoadMatch restores the rules and moves saved with SaveMatch. Use Replay to rebuild the board.
func LoadMatch(dec Decoder) (rules Rules, moves []Move, err error) {
	var version int
	if err = dec.Decode(&version); err != nil {
		err = errors.Wrapf(err, "failed to decode match file version")
		return
	}
	if version != matchFileVersion {
		err = errors.Errorf("unsupported match file version %d, expected %d", version, matchFileVersion)
		return
	}
	if err = dec.Decode(&rules); err != nil {
		err = errors.Wrapf(err, "failed to decode match's rules")
		return
	}
	var wires []wireMove
	if err = dec.Decode(&wires); err != nil {
		err = errors.Wrapf(err, "failed to decode match's moves")
		return
	}
	moves = make([]Move, len(wires))
	for ii, w := range wires {
		moves[ii], err = fromWire(w)
		if err != nil {
			err = errors.WithMessagef(err, "match move #%d", ii)
			return
		}
	}
	klog.V(2).Infof("Loaded match with rules %s and %d moves", rules, len(moves))
	return
}
