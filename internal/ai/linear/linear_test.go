package linear

import (
	"testing"

	"github.com/janpfeifer/pentaGo/internal/ai"
	. "github.com/janpfeifer/pentaGo/internal/state"
	"github.com/janpfeifer/pentaGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatures(t *testing.T) {
	b := statetest.NewGame(t, "alice", "bob")
	fAlice, fBob := Features(b, "alice"), Features(b, "bob")
	assert.Equal(t, fAlice, fBob, "initial position is symmetric")
	assert.Zero(t, fAlice[FeatureGoals])
	assert.Zero(t, fAlice[FeatureStuck])
	assert.Greater(t, fAlice[FeatureProgress], float32(0))
	assert.Equal(t, []float32{0, 0}, Default.Score(b))

	// alice/C next to its goal.
	b = statetest.BuildBoard(t, DefaultRules, []PlayerID{"alice", "bob"}, map[PieceID]FieldID{
		"alice/C": "A-3-c",
	})
	fAlice, fBob = Features(b, "alice"), Features(b, "bob")
	assert.Greater(t, fAlice[FeatureProgress], fBob[FeatureProgress])
	assert.Greater(t, fAlice[FeatureOpenGoal], float32(0))
	scores := Default.Score(b)
	assert.Greater(t, scores[0], float32(0))
	assert.Less(t, scores[1], float32(0))
	assert.Equal(t, 0, ai.PlayerIndex(b, "alice"))
	assert.Equal(t, -1, ai.PlayerIndex(b, "carol"))
}

func TestScoreFinished(t *testing.T) {
	b := statetest.BuildBoard(t, Rules{GoalsToWin: 1}, []PlayerID{"alice", "bob", "carol"}, map[PieceID]FieldID{
		"alice/C": "A-3-c",
	})
	b = statetest.MustApply(t, b,
		MovePlayer{Piece: "alice/C", From: "A-3-c", To: "c"},
		SetBlack{Piece: "black/c", From: "c", To: "c"},
		SetGrey{Piece: "gray/1", To: "A-1-B"},
	)
	require.True(t, b.IsFinished())
	assert.Equal(t, []float32{ai.WinGameScore, -ai.WinGameScore, -ai.WinGameScore}, Default.Score(b))
}

func TestNewWithWeights(t *testing.T) {
	s, err := NewWithWeights(1, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, "linear(goals=1.00,progress=2.00,open_goal=3.00,stuck=4.00)", s.String())
	_, err = NewWithWeights(1)
	require.Error(t, err)

	// A single player is scored by its own value.
	b := statetest.NewGame(t, "alice")
	scores := s.Score(b)
	require.Len(t, scores, 1)
	assert.Greater(t, scores[0], float32(0))
}
