// Package players provides a factory of automatic players from configuration strings.
// It also allows player providers to register themselves.
package players

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/janpfeifer/pentaGo/internal/generics"
	"github.com/janpfeifer/pentaGo/internal/parameters"
	"github.com/janpfeifer/pentaGo/internal/state"
	"github.com/pkg/errors"
)

// Player is anything that is able to play the game.
type Player interface {
	// Play returns the move chosen for the board. It is only called when it is the player's
	// turn, and the move must be one of the board's LegalMoves.
	Play(ctx context.Context, board *state.Board) (state.Move, error)

	// Finalize is called at the end of a match.
	Finalize()
}

// Module must implement NewPlayer called at the start of a match.
// matchName is used for logging and debugging.
// The module must pop the params it uses: any params left are reported as errors.
type Module interface {
	NewPlayer(matchName string, player state.PlayerID, params parameters.Params) (Player, error)
}

var (
	muModules sync.Mutex

	// Registered external modules.
	keywordToModules = make(map[string]Module)
)

// RegisterModule so it can be used by any of the front-ends to play pentaGo.
func RegisterModule(name string, module Module) {
	muModules.Lock()
	defer muModules.Unlock()
	keywordToModules[name] = module
}

// Modules returns the names of the registered modules, sorted.
func Modules() []string {
	muModules.Lock()
	defer muModules.Unlock()
	return slices.Collect(generics.SortedKeys(keywordToModules))
}

// DefaultPlayerConfig is used if no configuration was given. The value may be changed by the UI built.
var DefaultPlayerConfig = "random"

// New creates a new automatic player given the configuration string.
//
// Args:
//
//	config: the module name followed by a colon (":"), followed by a comma-separated list of optional parameters
//		with optional values associated, e.g.: "random:seed=7,prefer_goal".
//		If empty, the default is given by DefaultPlayerConfig.
//
// More details on the config are dependent on the module used.
func New(matchName string, player state.PlayerID, config string) (Player, error) {
	if config == "" {
		config = DefaultPlayerConfig
	}
	moduleName, config, _ := strings.Cut(config, ":")
	muModules.Lock()
	module, ok := keywordToModules[moduleName]
	muModules.Unlock()
	if !ok {
		return nil, errors.Errorf("unknown player module %q, registered modules are %q -- "+
			"perhaps you need to import _ \"github.com/janpfeifer/pentaGo/internal/players/default\" to your binary ?",
			moduleName, Modules())
	}

	params := parameters.NewFromConfigString(config)
	p, err := module.NewPlayer(matchName, player, params)
	if err == nil {
		err = parameters.CheckAllUsed(params)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create player %q", moduleName)
	}
	return p, nil
}
