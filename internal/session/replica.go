package session

import (
	"slices"
	"sync"

	"github.com/janpfeifer/pentaGo/internal/state"
	"k8s.io/klog/v2"
)

// Observer is notified after each move accepted by a Replica, with the new board.
// It is called with the Replica lock held, so it must not call back into the Replica.
type Observer func(board *state.Board, event Event)

// Replica holds the board of one peer of a match. Events are reduced one at a time, in the order
// they are received, so two replicas fed the same events converge to the same board.
//
// It is safe for concurrent use.
type Replica struct {
	mu       sync.Mutex
	board    *state.Board
	log      []Event
	observer Observer
}

// NewReplica creates a replica of a match not yet started: the first event should be a GameEvent
// with a state.InitGame. observer may be nil.
func NewReplica(rules state.Rules, observer Observer) *Replica {
	return &Replica{board: state.NewBoard(rules), observer: observer}
}

// Board returns the current board. Boards are immutable, so it can be used without locks.
func (r *Replica) Board() *state.Board {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.board
}

// Log returns the events reduced so far, including the IllegalMove events generated for rejected moves.
func (r *Replica) Log() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.log)
}

// Reduce applies the event to the board, and returns the event that was recorded: either e itself,
// or an IllegalMove if e's move was rejected.
func (r *Replica) Reduce(e Event) Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reduceLocked(e)
}

func (r *Replica) reduceLocked(e Event) Event {
	var move state.Move
	switch e := e.(type) {
	case GameEvent:
		move = e.Move
	case Undo:
		move = state.Undo{Moves: e.Moves}
	case IllegalMove:
		klog.V(1).Infof("peer reported illegal move %v: %s", e.Move, e.Message)
		r.log = append(r.log, e)
		return e
	}
	next, err := r.board.Apply(move)
	if err != nil {
		illegal := IllegalMove{Message: err.Error(), Move: move}
		r.log = append(r.log, illegal)
		return illegal
	}
	r.accept(next, e)
	return e
}

// accept records an accepted event and its resulting board.
func (r *Replica) accept(next *state.Board, e Event) {
	r.board = next
	r.log = append(r.log, e)
	if r.observer != nil {
		r.observer(next, e)
	}
}

// update atomically runs a selection intent on the current board. Selection-only changes
// replace the board without being logged, emitted moves are logged as a GameEvent,
// which is returned.
func (r *Replica) update(intent func(b *state.Board) (*state.Board, state.Move, error)) (Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next, move, err := intent(r.board)
	if err != nil {
		return nil, err
	}
	if move == nil {
		r.board = next
		return nil, nil
	}
	e := GameEvent{Move: move}
	r.accept(next, e)
	return e, nil
}
