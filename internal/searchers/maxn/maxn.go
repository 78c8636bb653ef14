// Package maxn implements the max^n search for multi-player games: at each node the player
// to move takes the move that maximizes their own score, as estimated by a scorer at the leaves.
//
// Turns in this game may take more than one move (blocker placements), so the player to move
// is taken from each board, not alternated.
package maxn

import (
	"context"
	"math"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/pentaGo/internal/ai"
	"github.com/janpfeifer/pentaGo/internal/searchers"
	. "github.com/janpfeifer/pentaGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"
)

// Searcher implements the searchers.Searcher interface.
type Searcher struct {
	maxDepth   int
	randomness float32
	rng        *rand.Rand
	scorer     ai.ValueScorer
	stats      Stats
}

// Assert that Searcher implements searchers.Searcher.
var _ searchers.Searcher = (*Searcher)(nil)

// Stats stores running stats collected during the search: for benchmarking, monitoring and debugging purposes.
type Stats struct {
	// Nodes "played" during search: the application of a move to a board.
	Nodes int

	// Evals is the number of boards passed to the scorer. Finished matches are not scored.
	Evals int
}

// DefaultMaxDepth for search.
const DefaultMaxDepth = 1

// New returns a max^n searcher using the given scorer.
// There are other optional configurations, see methods Searcher.With...
func New(scorer ai.ValueScorer) *Searcher {
	return &Searcher{
		scorer:   scorer,
		maxDepth: DefaultMaxDepth,
		rng:      rand.New(rand.NewSource(0)),
	}
}

// WithMaxDepth sets the max depth of search, in moves. Blocker placements count as moves.
func (s *Searcher) WithMaxDepth(maxDepth int) *Searcher {
	s.maxDepth = max(maxDepth, 1)
	return s
}

// WithRandomness adds a gaussian noise scaled to randomness to the scores of the leaves.
// Scores vary from -1 to 1, so a value of 1.0 here would be a lot.
//
// Set to 0 to disable randomness -- this is the default.
func (s *Searcher) WithRandomness(randomness float32, seed uint64) *Searcher {
	s.randomness = randomness
	s.rng = rand.New(rand.NewSource(seed ^ uint64(math.Float32bits(randomness))))
	return s
}

// Stats of the latest search.
func (s *Searcher) Stats() Stats { return s.stats }

// Search implements searchers.Searcher.
func (s *Searcher) Search(ctx context.Context, board *Board) (Move, float32, error) {
	if !board.IsStarted() || board.IsFinished() {
		return nil, 0, errors.New("search requires a match in progress")
	}
	start := time.Now()
	s.stats = Stats{}
	move, scores, err := s.recursion(ctx, board, s.maxDepth)
	if err != nil {
		return nil, 0, err
	}
	if move == nil {
		return nil, 0, errors.Errorf("no legal moves for %s", board.CurrentPlayer())
	}
	score := scores[ai.PlayerIndex(board, board.CurrentPlayer())]
	if klog.V(2).Enabled() {
		elapsed := time.Since(start).Seconds()
		klog.Infof("max^n: %s score=%.3f, stats=%+v, nodes/s=%.1f", move, score, s.stats, float64(s.stats.Nodes)/elapsed)
	}
	return move, score, nil
}

// recursion of the max^n search with depthLeft moves to go. It returns the best move for the
// player to move, and the scores of all players following it.
//
// A board where the player to move has no legal moves is scored as a leaf, with a nil move.
func (s *Searcher) recursion(ctx context.Context, board *Board, depthLeft int) (bestMove Move, bestScores []float32, err error) {
	if err = ctx.Err(); err != nil {
		return
	}
	moves := board.LegalMoves()
	if len(moves) == 0 {
		klog.V(3).Infof("max^n: no legal moves for %s, scoring as a leaf", board.CurrentPlayer())
		return nil, s.leafScores(board), nil
	}
	mover := ai.PlayerIndex(board, board.CurrentPlayer())
	for _, move := range moves {
		next, applyErr := board.Apply(move)
		if applyErr != nil {
			exceptions.Panicf("max^n: legal move %s failed: %+v", move, applyErr)
		}
		s.stats.Nodes++

		var scores []float32
		if endScores, isEnd := ai.EndGameScores(next); isEnd {
			scores = endScores
		} else if depthLeft <= 1 {
			scores = s.leafScores(next)
		} else if _, scores, err = s.recursion(ctx, next, depthLeft-1); err != nil {
			return nil, nil, err
		}

		// A winning move can't be improved.
		if next.Winner() == board.CurrentPlayer() {
			return move, scores, nil
		}
		if bestScores == nil || scores[mover] > bestScores[mover] {
			bestMove, bestScores = move, scores
		}
	}
	return
}

// leafScores returns the scorer's scores for board, with noise if randomness is set.
func (s *Searcher) leafScores(board *Board) []float32 {
	scores := s.scorer.Score(board)
	s.stats.Evals++
	if s.randomness > 0 {
		for ii := range scores {
			scores[ii] += float32(s.rng.NormFloat64()) * s.randomness
		}
	}
	return scores
}
