package maxn

import (
	"context"
	"hash/fnv"

	"github.com/janpfeifer/pentaGo/internal/ai/linear"
	"github.com/janpfeifer/pentaGo/internal/parameters"
	"github.com/janpfeifer/pentaGo/internal/players"
	. "github.com/janpfeifer/pentaGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

func init() {
	players.RegisterModule("search", &Module{})
}

// Module creates players that search with max^n and score with linear.Default.
type Module struct{}

// Assert Module implements players.Module.
var _ players.Module = (*Module)(nil)

// NewPlayer implements players.Module.
//
// Parameters:
//
//   - max_depth (int): depth of the search, in moves. Default is DefaultMaxDepth.
//   - randomness (float): scale of the gaussian noise added to the leaves' scores. Default is 0.
//   - seed (int): seed for the noise, mixed with the player id. Default is 0.
func (m *Module) NewPlayer(matchName string, player PlayerID, params parameters.Params) (players.Player, error) {
	maxDepth, err := parameters.PopParamOr(params, "max_depth", DefaultMaxDepth)
	if err != nil {
		return nil, err
	}
	randomness, err := parameters.PopParamOr(params, "randomness", 0.0)
	if err != nil {
		return nil, err
	}
	seed, err := parameters.PopParamOr(params, "seed", 0)
	if err != nil {
		return nil, err
	}
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(player))
	searcher := New(linear.Default).
		WithMaxDepth(maxDepth).
		WithRandomness(float32(randomness), uint64(seed)^hasher.Sum64())
	klog.V(1).Infof("match %q: player %s is search(max_depth=%d, randomness=%g, scorer=%s)",
		matchName, player, maxDepth, randomness, linear.Default)
	return &searchPlayer{matchName: matchName, player: player, searcher: searcher}, nil
}

// searchPlayer plays the moves chosen by a Searcher.
type searchPlayer struct {
	matchName string
	player    PlayerID
	searcher  *Searcher
}

// Assert searchPlayer implements players.Player.
var _ players.Player = (*searchPlayer)(nil)

// Play implements players.Player.
func (p *searchPlayer) Play(ctx context.Context, b *Board) (Move, error) {
	if current := b.CurrentPlayer(); current != p.player {
		return nil, errors.Errorf("match %q: search player %s asked to play on %s's turn", p.matchName, p.player, current)
	}
	move, _, err := p.searcher.Search(ctx, b)
	if err != nil {
		return nil, errors.WithMessagef(err, "match %q: search for %s failed", p.matchName, p.player)
	}
	return move, nil
}

// Finalize implements players.Player.
func (p *searchPlayer) Finalize() {
	klog.V(1).Infof("match %q: player %s finished, last search stats %+v", p.matchName, p.player, p.searcher.Stats())
}
