// penta plays a Pentagame match in the terminal, among humans (hotseat) and automatic players.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/janpfeifer/pentaGo/internal/generics"
	"github.com/janpfeifer/pentaGo/internal/players"
	_ "github.com/janpfeifer/pentaGo/internal/players/default"
	"github.com/janpfeifer/pentaGo/internal/session"
	. "github.com/janpfeifer/pentaGo/internal/state"
	"github.com/janpfeifer/pentaGo/internal/ui/cli"
	"github.com/janpfeifer/pentaGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagPlayers  = flag.String("players", "alice,bob", "Comma-separated list of player ids, in turn order. From 1 to 5 players.")
	flagAI       = flag.String("ai", "", "Comma-separated list of the player ids played automatically.")
	flagAIConfig = flag.String("ai_config", "", "Configuration of the automatic players, e.g. \"random:prefer_goal\". "+
		"Defaults to "+players.DefaultPlayerConfig)
	flagRules = flag.String("rules", "", "Rules configuration, e.g. \"goals=2,hostile_swaps=false\".")
	flagLoad  = flag.String("load", "", "Continue the match saved in the given file. "+
		"--players and --rules are taken from the file.")
	flagColor   = flag.Bool("color", true, "Use colors in the terminal.")
	flagClear   = flag.Bool("clear", false, "Clear the screen before printing the board.")
	flagMatch   = flag.String("match", "The Match", "Name of the match, used for logging.")
	flagJournal = flag.String("journal", "", "If set, appends each accepted event of the match to the given file, as JSON lines.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	// Capture Control+C
	ctx, cancel := context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	observer, closeJournal := must.M2(openJournal())
	defer closeJournal()
	replica, ids := must.M2(createReplica(observer))
	automatic := must.M1(createAutomaticPlayers(ids))
	defer func() {
		for _, p := range automatic {
			p.Finalize()
		}
	}()

	ui := cli.New(*flagColor, *flagClear)
	board, err := ui.Run(ctx, replica, ids, automatic)
	if err != nil && !errors.Is(err, cli.ErrQuit) {
		klog.Exitf("Failed to run match: %+v", err)
	}
	if !board.IsFinished() {
		fmt.Printf("\nMatch interrupted at turn %d.\n", board.Turn()+1)
	}
}

// createReplica either for a new match or for the one loaded with --load.
func createReplica(observer session.Observer) (*session.Replica, []PlayerID, error) {
	if *flagLoad == "" {
		rules, err := ParseRules(*flagRules)
		if err != nil {
			return nil, nil, err
		}
		ids := generics.SliceMap(strings.Split(*flagPlayers, ","), func(s string) PlayerID {
			return PlayerID(strings.TrimSpace(s))
		})
		return session.NewReplica(rules, observer), ids, nil
	}

	loaded, err := cli.LoadFile(*flagLoad)
	if err != nil {
		return nil, nil, err
	}
	replica := session.NewReplica(loaded.Rules(), observer)
	for _, move := range loaded.History() {
		if illegal, rejected := replica.Reduce(session.GameEvent{Move: move}).(session.IllegalMove); rejected {
			return nil, nil, errors.Errorf("match %q is corrupt: %s", *flagLoad, illegal.Message)
		}
	}
	ids := generics.SliceMap(loaded.Players(), func(p Player) PlayerID { return p.ID })
	klog.Infof("Loaded %q: %d players, %d moves", *flagLoad, len(ids), len(loaded.History()))
	return replica, ids, nil
}

// openJournal given by --journal, if any. It returns the replica observer and the function to close the file.
func openJournal() (session.Observer, func(), error) {
	if *flagJournal == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(*flagJournal, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open journal %q", *flagJournal)
	}
	return session.Journal(f, *flagMatch), func() { _ = f.Close() }, nil
}

// createAutomaticPlayers listed in --ai.
func createAutomaticPlayers(ids []PlayerID) (map[PlayerID]players.Player, error) {
	automatic := make(map[PlayerID]players.Player)
	if *flagAI == "" {
		return automatic, nil
	}
	known := generics.SetWith(ids...)
	for _, s := range strings.Split(*flagAI, ",") {
		id := PlayerID(strings.TrimSpace(s))
		if !known.Has(id) {
			return nil, errors.Errorf("--ai player %q is not one of the players %q", id, ids)
		}
		p, err := players.New(*flagMatch, id, *flagAIConfig)
		if err != nil {
			return nil, err
		}
		automatic[id] = p
	}
	return automatic, nil
}
