// Package ai (Artificial Intelligence) defines the standard interfaces that board evaluators
// for the game have to implement.
package ai

import (
	"github.com/chewxy/math32"
	. "github.com/janpfeifer/pentaGo/internal/state"
)

// WinGameScore for the winner. For the other players it is -WinGameScore.
// Scores of unfinished matches are squashed to (-WinGameScore, +WinGameScore).
const WinGameScore = float32(1)

// SquashScore converts any score to a value between +WinGameScore and -WinGameScore
// by using then tanh(x) function -- a type of S curve.
func SquashScore(x float32) float32 {
	return math32.Tanh(x) * WinGameScore
}

// ValueScorer returns a score (value) for each player of a board, in turn order.
//
// A value represents how likely the player is to win: +1 represents a sure win, -1 a sure loss.
type ValueScorer interface {
	Score(board *Board) []float32
	String() string
}

// EndGameScores returns the scores of a finished match, and false if the match is not finished.
func EndGameScores(board *Board) ([]float32, bool) {
	if !board.IsFinished() {
		return nil, false
	}
	players := board.Players()
	scores := make([]float32, len(players))
	for ii, p := range players {
		if p.ID == board.Winner() {
			scores[ii] = WinGameScore
		} else {
			scores[ii] = -WinGameScore
		}
	}
	return scores, true
}

// PlayerIndex returns the index of the player in the turn order, or -1 if not playing.
func PlayerIndex(board *Board, player PlayerID) int {
	for ii, p := range board.Players() {
		if p.ID == player {
			return ii
		}
	}
	return -1
}
