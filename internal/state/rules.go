package state

import (
	"fmt"

	"github.com/janpfeifer/pentaGo/internal/parameters"
	"github.com/pkg/errors"
)

// DefaultGoalsToWin is the number of pieces a player has to bring to their goals to win.
const DefaultGoalsToWin = 3

// Rules configures the variations of the game that the engine supports.
type Rules struct {
	// GoalsToWin is the number of pieces a player must bring to the Goal of their colors.
	GoalsToWin int

	// HostileSwaps allows a player to swap positions with another player's piece.
	HostileSwaps bool
}

// DefaultRules are the standard Pentagame rules.
var DefaultRules = Rules{GoalsToWin: DefaultGoalsToWin, HostileSwaps: true}

// ParseRules parses a configuration string of the form "goals=3,hostile_swaps=false" starting
// from DefaultRules. Unknown keys are reported as errors.
func ParseRules(config string) (Rules, error) {
	rules := DefaultRules
	if config == "" {
		return rules, nil
	}
	params := parameters.NewFromConfigString(config)
	var err error
	rules.GoalsToWin, err = parameters.PopParamOr(params, "goals", rules.GoalsToWin)
	if err != nil {
		return rules, err
	}
	rules.HostileSwaps, err = parameters.PopParamOr(params, "hostile_swaps", rules.HostileSwaps)
	if err != nil {
		return rules, err
	}
	if err = parameters.CheckAllUsed(params); err != nil {
		return rules, errors.WithMessage(err, "while parsing rules")
	}
	if rules.GoalsToWin < 1 || rules.GoalsToWin > NumColors {
		return rules, errors.Errorf("goals=%d must be between 1 and %d", rules.GoalsToWin, NumColors)
	}
	return rules, nil
}

func (r Rules) String() string {
	return fmt.Sprintf("goals=%d,hostile_swaps=%v", r.GoalsToWin, r.HostileSwaps)
}
