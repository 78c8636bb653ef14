// Package searchers defines the interface of the search algorithms used by the automatic players.
package searchers

import (
	"context"

	. "github.com/janpfeifer/pentaGo/internal/state"
)

// Searcher is the interface that any of the search algorithms must adhere to be valid.
type Searcher interface {
	// Search returns the move to take on the given board, along with the expected score
	// for the current player of taking it.
	Search(ctx context.Context, board *Board) (move Move, score float32, err error)
}
