package state

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// PieceKind tells player pieces from the shared blockers.
type PieceKind uint8

const (
	KindPlayer PieceKind = iota
	KindBlackBlocker
	KindGrayBlocker
)

//go:generate go tool enumer -type=PieceKind -trimprefix=Kind -values -text -json -yaml pieces.go

// MaxPlayers is limited by the number of pieces that can be stacked on a Start field at the
// beginning of the match: one per player.
const MaxPlayers = NumColors

// NumGrayBlockers in the supply at the start of a match.
const NumGrayBlockers = NumColors

// PlayerID identifies a player. It is chosen by the collaborator creating the match, and it
// must be a valid id (see ValidatePlayerID).
type PlayerID string

// NoPlayer is used when there is no winner yet.
const NoPlayer PlayerID = ""

// Player joining a match. Its position in the InitGame players list (the join index)
// defines the turn order.
type Player struct {
	ID PlayerID `json:"id"`

	// Figure is a visual tag chosen by the player, only carried along for the renderers.
	Figure string `json:"figure,omitempty"`
}

func (p Player) String() string {
	return string(p.ID)
}

// Reserved prefixes of blocker piece ids.
const (
	blackPrefix = "black"
	grayPrefix  = "gray"
)

// ValidatePlayerID returns an error wrapping ErrIllegalMove if id can't be used as a PlayerID.
func ValidatePlayerID(id PlayerID) error {
	switch {
	case id == NoPlayer:
		return illegalMovef("empty player id")
	case strings.ContainsAny(string(id), "/ \t\n"):
		return illegalMovef("player id %q can't contain '/' or spaces", id)
	case id == blackPrefix || id == grayPrefix:
		return illegalMovef("player id %q is reserved", id)
	}
	return nil
}

// PieceID identifies a piece:
//
//   - Player pieces: "<player>/<color>", e.g. "alice/C".
//   - Black blockers: "black/<goal>", e.g. "black/c" starts on the Goal "c".
//   - Gray blockers: "gray/1" ... "gray/5".
type PieceID string

// Piece is one of the game pieces. Pieces are created once at InitGame, and never change.
type Piece struct {
	ID    PieceID
	Kind  PieceKind
	Color PentaColor

	// Player owning the piece, only for KindPlayer.
	Player PlayerID

	// Figure of the owning player, only for KindPlayer.
	Figure string

	// Home is where the piece is placed by InitGame, or NoField for the gray blockers.
	Home FieldID
}

// IsBlocker returns whether the piece is one of the shared blockers.
func (p *Piece) IsBlocker() bool {
	return p.Kind == KindBlackBlocker || p.Kind == KindGrayBlocker
}

func (p *Piece) String() string {
	return string(p.ID)
}

// PlayerPieceID returns the id of the piece of the given color owned by player.
func PlayerPieceID(player PlayerID, c PentaColor) PieceID {
	return PieceID(fmt.Sprintf("%s/%s", player, c))
}

// BlackBlockerID returns the id of the black blocker that starts on the Goal of the given color.
func BlackBlockerID(c PentaColor) PieceID {
	return PieceID(fmt.Sprintf("%s/%s", blackPrefix, GoalID(c)))
}

// GrayBlockerID returns the id of the idx-th gray blocker, starting from 0.
func GrayBlockerID(idx int) PieceID {
	return PieceID(fmt.Sprintf("%s/%d", grayPrefix, idx+1))
}

// Registry is the fixed set of pieces of a match. It is immutable and shared among all boards
// of the same match.
type Registry struct {
	pieces []*Piece
	byID   map[PieceID]*Piece
}

// NewRegistry creates the pieces for the given players: one piece per color for each player
// (placed on the Start of its color), one black blocker per Goal field and the gray blockers
// supply.
func NewRegistry(t *Topology, players []Player) (*Registry, error) {
	if len(players) == 0 || len(players) > MaxPlayers {
		return nil, illegalMovef("number of players must be between 1 and %d, got %d", MaxPlayers, len(players))
	}
	r := &Registry{byID: make(map[PieceID]*Piece)}
	add := func(p *Piece) {
		r.pieces = append(r.pieces, p)
		r.byID[p.ID] = p
	}
	for _, player := range players {
		if err := ValidatePlayerID(player.ID); err != nil {
			return nil, err
		}
		for _, c := range Colors {
			id := PlayerPieceID(player.ID, c)
			if _, found := r.byID[id]; found {
				return nil, illegalMovef("player %q joined twice", player.ID)
			}
			add(&Piece{ID: id, Kind: KindPlayer, Color: c, Player: player.ID, Figure: player.Figure, Home: t.Start(c)})
		}
	}
	for _, c := range Colors {
		add(&Piece{ID: BlackBlockerID(c), Kind: KindBlackBlocker, Color: c, Home: t.Goal(c)})
	}
	for idx := range NumGrayBlockers {
		add(&Piece{ID: GrayBlockerID(idx), Kind: KindGrayBlocker, Color: ColorNone, Home: NoField})
	}
	return r, nil
}

// Pieces returns all pieces: player pieces in join order, then black and gray blockers.
func (r *Registry) Pieces() []*Piece {
	return r.pieces
}

// Piece returns the piece with the given id, or an error wrapping ErrUnknownPiece.
func (r *Registry) Piece(id PieceID) (*Piece, error) {
	p, found := r.byID[id]
	if !found {
		return nil, errors.Wrapf(ErrUnknownPiece, "piece %q", id)
	}
	return p, nil
}

// OfKind returns the pieces of the given kind, in registry order.
func (r *Registry) OfKind(kind PieceKind) []*Piece {
	var pieces []*Piece
	for _, p := range r.pieces {
		if p.Kind == kind {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// OwnedBy returns the pieces of the given player, in color order.
func (r *Registry) OwnedBy(player PlayerID) []*Piece {
	var pieces []*Piece
	for _, p := range r.pieces {
		if p.Kind == KindPlayer && p.Player == player {
			pieces = append(pieces, p)
		}
	}
	return pieces
}
