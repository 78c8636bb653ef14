// Package linear implements a pure Go linear scorer: one weight per feature of each player,
// with the players' values compared to get their scores.
package linear

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/janpfeifer/pentaGo/internal/ai"
	. "github.com/janpfeifer/pentaGo/internal/state"
	"github.com/pkg/errors"
)

// Features extracted for each player, in the order of the weights.
const (
	FeatureGoals    = iota // Fraction of the goals needed to win already reached.
	FeatureProgress        // Sum over pieces on the board of 1/(1+distance to their goal).
	FeatureOpenGoal        // Number of pieces with a free path to their goal.
	FeatureStuck           // Number of pieces that can't move at all.
	NumFeatures
)

var featureNames = [NumFeatures]string{"goals", "progress", "open_goal", "stuck"}

// Scorer is a linear model (one weight per feature) over the features of each player.
// It implements ai.ValueScorer.
type Scorer struct {
	weights []float32
}

// Assert Scorer is an ai.ValueScorer.
var _ ai.ValueScorer = (*Scorer)(nil)

// NewWithWeights creates a new Scorer with the given weights, one per feature.
// Ownership of the weights is transferred.
func NewWithWeights(weights ...float32) (*Scorer, error) {
	if len(weights) != NumFeatures {
		return nil, errors.Errorf("linear scorer requires %d weights, got %d", NumFeatures, len(weights))
	}
	return &Scorer{weights: weights}, nil
}

// Default weights, hand-tuned.
var Default = &Scorer{weights: []float32{3, 0.5, 0.4, -0.2}}

func (s *Scorer) String() string {
	parts := make([]string, NumFeatures)
	for ii, w := range s.weights {
		parts[ii] = fmt.Sprintf("%s=%.2f", featureNames[ii], w)
	}
	return fmt.Sprintf("linear(%s)", strings.Join(parts, ","))
}

// Score implements ai.ValueScorer. The score of each player is its value minus the best value
// among the other players, squashed.
func (s *Scorer) Score(board *Board) []float32 {
	if scores, isEnd := ai.EndGameScores(board); isEnd {
		return scores
	}
	players := board.Players()
	values := make([]float32, len(players))
	for ii, p := range players {
		for featureIdx, f := range Features(board, p.ID) {
			values[ii] += f * s.weights[featureIdx]
		}
	}
	scores := make([]float32, len(players))
	for ii := range values {
		if len(values) == 1 {
			scores[ii] = ai.SquashScore(values[ii])
			continue
		}
		best := float32(-math.MaxFloat32)
		for jj, v := range values {
			if jj != ii {
				best = max(best, v)
			}
		}
		scores[ii] = ai.SquashScore(values[ii] - best)
	}
	return scores
}

// Features returns the feature vector of the player on the board.
func Features(board *Board, player PlayerID) []float32 {
	f := make([]float32, NumFeatures)
	f[FeatureGoals] = float32(board.GoalsReached(player)) / float32(board.Rules().GoalsToWin)
	distances := goalDistances()
	t := board.Topology()
	for _, p := range board.Pieces() {
		if p.Player != player {
			continue
		}
		pos, onBoard := board.Position(p.ID)
		if !onBoard {
			continue
		}
		f[FeatureProgress] += 1 / float32(1+distances[t.Goal(p.Color)][pos])
		if board.CanMove(pos, t.Goal(p.Color)) {
			f[FeatureOpenGoal]++
		}
		if len(board.Reachable(pos)) == 0 {
			f[FeatureStuck]++
		}
	}
	return f
}

// goalDistances maps each Goal field to the number of steps from each field to it, ignoring
// the pieces on the board.
var goalDistances = sync.OnceValue(func() map[FieldID]map[FieldID]int {
	t := PentaBoard()
	distances := make(map[FieldID]map[FieldID]int, NumColors)
	for _, c := range Colors {
		goal := t.Goal(c)
		dist := map[FieldID]int{goal: 0}
		queue := []FieldID{goal}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for _, n := range t.MustField(current).Neighbours {
				if _, visited := dist[n]; !visited {
					dist[n] = dist[current] + 1
					queue = append(queue, n)
				}
			}
		}
		distances[goal] = dist
	}
	return distances
})
