// Package _default registers the default players that can be included in any
// front-end for pentaGo.
//
// It includes the random player, and links the search player (see package maxn).
package _default

import (
	"context"
	"hash/fnv"

	"github.com/janpfeifer/pentaGo/internal/parameters"
	"github.com/janpfeifer/pentaGo/internal/players"
	_ "github.com/janpfeifer/pentaGo/internal/searchers/maxn"
	"github.com/janpfeifer/pentaGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"
)

func init() {
	players.RegisterModule("random", &RandomModule{})
}

// RandomModule creates Random players.
type RandomModule struct{}

// Assert RandomModule implements players.Module.
var _ players.Module = (*RandomModule)(nil)

// NewPlayer implements players.Module.
//
// Parameters:
//
//   - seed (int): seed for the random number generator. The player id is mixed in, so players of the same match
//     with the same seed don't play the same. Default is 0.
//   - prefer_goal (bool): always take a move that brings a piece to its goal, if there is one.
func (m *RandomModule) NewPlayer(matchName string, player state.PlayerID, params parameters.Params) (players.Player, error) {
	seed, err := parameters.PopParamOr(params, "seed", 0)
	if err != nil {
		return nil, err
	}
	preferGoal, err := parameters.PopParamOr(params, "prefer_goal", false)
	if err != nil {
		return nil, err
	}
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(player))
	r := &Random{
		matchName:  matchName,
		player:     player,
		preferGoal: preferGoal,
		rng:        rand.New(rand.NewSource(uint64(seed) ^ hasher.Sum64())),
	}
	klog.V(1).Infof("match %q: player %s is random(seed=%d, prefer_goal=%v)", matchName, player, seed, preferGoal)
	return r, nil
}

// Random plays uniformly among the legal moves.
type Random struct {
	matchName  string
	player     state.PlayerID
	preferGoal bool
	rng        *rand.Rand
}

// Assert Random implements players.Player.
var _ players.Player = (*Random)(nil)

// Play implements players.Player.
func (r *Random) Play(ctx context.Context, b *state.Board) (state.Move, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if current := b.CurrentPlayer(); current != r.player {
		return nil, errors.Errorf("match %q: random player %s asked to play on %s's turn", r.matchName, r.player, current)
	}
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return nil, errors.Errorf("match %q: no legal moves for %s", r.matchName, r.player)
	}
	if r.preferGoal {
		for _, m := range moves {
			if ReachesGoal(b, m) {
				return m, nil
			}
		}
	}
	return moves[r.rng.Intn(len(moves))], nil
}

// Finalize implements players.Player.
func (r *Random) Finalize() {}

// ReachesGoal returns whether the move takes the mover's piece to the Goal of its color.
func ReachesGoal(b *state.Board, m state.Move) bool {
	var (
		piece state.PieceID
		to    state.FieldID
	)
	switch m := m.(type) {
	case state.MovePlayer:
		piece, to = m.Piece, m.To
	case state.SwapOwnPiece:
		piece, to = m.Piece, m.To
	case state.SwapHostilePieces:
		piece, to = m.Piece, m.To
	default:
		return false
	}
	p, err := b.Piece(piece)
	if err != nil {
		return false
	}
	return to == b.Topology().Goal(p.Color)
}
