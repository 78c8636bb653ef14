// pentareplay plays random matches and checks that each one replays to the same board after
// its history goes through the wire encoding. Optionally it saves the matches.
package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/janpfeifer/must"
	"github.com/janpfeifer/pentaGo/internal/generics"
	"github.com/janpfeifer/pentaGo/internal/matchstats"
	"github.com/janpfeifer/pentaGo/internal/players"
	_ "github.com/janpfeifer/pentaGo/internal/players/default"
	"github.com/janpfeifer/pentaGo/internal/profilers"
	. "github.com/janpfeifer/pentaGo/internal/state"
	"github.com/janpfeifer/pentaGo/internal/ui/cli"
	"github.com/janpfeifer/pentaGo/internal/ui/spinning"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

var (
	flagNumMatches  = flag.Int("num_matches", 100, "Number of random matches to play and replay.")
	flagNumPlayers  = flag.Int("num_players", 2, "Number of players per match, from 1 to 5.")
	flagMaxMoves    = flag.Int("max_moves", 2000, "Max moves before a match is abandoned and replayed as is.")
	flagAIConfig    = flag.String("ai_config", "random", "Configuration of the automatic players.")
	flagRules       = flag.String("rules", "", "Rules configuration, e.g. \"goals=2\".")
	flagParallelism = flag.Int("parallelism", 0, "If > 0 ignore GOMAXPROCS and play "+
		"these many matches simultaneously.")
	flagOutput = flag.String("output", "", "If set, the directory where to save the matches.")
	flagStats  = flag.String("stats", "", "If set, the Parquet file where to write the statistics of each match.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagNumPlayers < 1 || *flagNumPlayers > MaxPlayers {
		klog.Fatalf("Invalid --num_players=%d", *flagNumPlayers)
	}
	rules := must.M1(ParseRules(*flagRules))

	ctx, cancel := context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()
	onQuit := must.M1(profilers.Setup(ctx))
	defer onQuit()

	stats, err := replayMatches(ctx, rules, *flagNumMatches)
	if err != nil {
		klog.Exitf("Replay failed: %+v", err)
	}
	fmt.Printf("%d matches replayed, %d finished, %d moves in total.\n", stats.matches, stats.finished, stats.moves)
	for id, wins := range generics.SortedKeysAndValues(stats.wins) {
		fmt.Printf("\t%s: %d wins\n", id, wins)
	}
}

var playerIDs = []PlayerID{"alice", "bob", "carol", "dave", "erin"}

type replayStats struct {
	mu                       sync.Mutex
	matches, finished, moves int
	wins                     map[PlayerID]int
}

func getParallelism() int {
	if *flagParallelism > 0 {
		return *flagParallelism
	}
	return runtime.GOMAXPROCS(0)
}

// replayMatches plays numMatches in parallel and checks each of them.
func replayMatches(ctx context.Context, rules Rules, numMatches int) (*replayStats, error) {
	stats := &replayStats{wins: make(map[PlayerID]int)}
	var g errgroup.Group
	g.SetLimit(getParallelism())
	var (
		records     chan matchstats.Record
		statsWriter errgroup.Group
	)
	if *flagStats != "" {
		records = make(chan matchstats.Record, getParallelism())
		statsWriter.Go(func() error {
			err := matchstats.WriteParquet(*flagStats, records, int64(getParallelism()))
			for range records {
				// Drain, so matches don't block after a failure.
			}
			return err
		})
	}
	spinner := spinning.New(ctx)
	defer spinner.Done()
	var done atomic.Int32
	for matchIdx := range numMatches {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			board, err := playMatch(ctx, rules, matchIdx)
			if err != nil {
				return errors.WithMessagef(err, "match #%d", matchIdx)
			}
			if err = checkReplay(board); err != nil {
				return errors.WithMessagef(err, "match #%d", matchIdx)
			}
			if *flagOutput != "" {
				path := filepath.Join(*flagOutput, fmt.Sprintf("match-%05d.gob", matchIdx))
				if err = cli.SaveFile(path, board); err != nil {
					return err
				}
			}
			if records != nil {
				records <- matchstats.New(fmt.Sprintf("Match-%05d", matchIdx), board)
			}
			stats.mu.Lock()
			stats.matches++
			stats.moves += len(board.History())
			if board.IsFinished() {
				stats.finished++
				stats.wins[board.Winner()]++
			}
			stats.mu.Unlock()
			spinner.SetMessage("%d of %d matches replayed", done.Add(1), numMatches)
			return nil
		})
	}
	err := g.Wait()
	if records != nil {
		close(records)
		if statsErr := statsWriter.Wait(); err == nil {
			err = statsErr
		}
	}
	if err == nil {
		err = ctx.Err()
	}
	return stats, err
}

// playMatch with automatic players, until it finishes or reaches --max_moves.
func playMatch(ctx context.Context, rules Rules, matchIdx int) (*Board, error) {
	matchName := fmt.Sprintf("Match-%05d", matchIdx)
	ids := playerIDs[:*flagNumPlayers]
	module, params, _ := strings.Cut(*flagAIConfig, ":")
	if params != "" {
		params += ","
	}
	config := fmt.Sprintf("%s:%sseed=%d", module, params, matchIdx)
	automatic := make(map[PlayerID]players.Player, len(ids))
	for _, id := range ids {
		p, err := players.New(matchName, id, config)
		if err != nil {
			return nil, err
		}
		automatic[id] = p
		defer p.Finalize()
	}

	ps := generics.SliceMap(ids, func(id PlayerID) Player { return Player{ID: id} })
	board, err := NewBoard(rules).Apply(InitGame{Players: ps})
	if err != nil {
		return nil, err
	}
	for range *flagMaxMoves {
		if board.IsFinished() || ctx.Err() != nil {
			break
		}
		move, err := automatic[board.CurrentPlayer()].Play(ctx, board)
		if err != nil {
			return board, err
		}
		if board, err = board.Apply(move); err != nil {
			return board, errors.WithMessagef(err, "%s played an illegal move", board.CurrentPlayer())
		}
	}
	klog.V(1).Infof("%s: %d moves, winner %q", matchName, len(board.History()), board.Winner())
	return board, nil
}

// checkReplay encodes the history of the board, decodes it and replays it, expecting the same board.
func checkReplay(board *Board) error {
	history := board.History()
	decoded := make([]Move, len(history))
	for ii, m := range history {
		data, err := EncodeMove(m)
		if err != nil {
			return err
		}
		if decoded[ii], err = DecodeMove(data); err != nil {
			return err
		}
	}
	replayed, err := Replay(board.Rules(), decoded)
	if err != nil {
		return err
	}
	if !replayed.Equal(board) {
		return errors.Errorf("replayed board differs:\n%s\noriginal:\n%s", replayed, board)
	}
	return replayed.CheckInvariants()
}
