// Package cli implements a command-line UI for the game.
package cli

import (
	"bufio"
	"context"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/janpfeifer/pentaGo/internal/players"
	"github.com/janpfeifer/pentaGo/internal/session"
	. "github.com/janpfeifer/pentaGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"k8s.io/klog/v2"
)

// ErrQuit is returned by Run when the user quits the match.
var ErrQuit = errors.New("user quit")

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return len([]rune(ansiFilter.ReplaceAllString(s, "")))
}

func centerString(s string, fit int) string {
	width := displayWidth(s)
	if width >= fit {
		return s
	}
	marginLeft := (fit - width) / 2
	marginRight := fit - width - marginLeft
	return strings.Repeat(" ", marginLeft) + s + strings.Repeat(" ", marginRight)
}

// UI plays matches in the terminal: humans type piece or field ids to click on them.
type UI struct {
	color, clearScreen bool
	reader             *bufio.Reader
	out                io.Writer
}

// New creates a UI reading from stdin and writing to stdout.
func New(color bool, clearScreen bool) *UI {
	return NewWithIO(os.Stdin, os.Stdout, color, clearScreen)
}

// NewWithIO creates a UI reading commands from in and printing to out.
func NewWithIO(in io.Reader, out io.Writer, color bool, clearScreen bool) *UI {
	return &UI{
		color:       color,
		clearScreen: clearScreen,
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

func (ui *UI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(ui.out, format, args...)
}

// terminalWidth returns the width of the terminal, or 0 if not printing to one.
func (ui *UI) terminalWidth() int {
	f, ok := ui.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func (ui *UI) printCentered(block string) {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	indent := max((ui.terminalWidth()-blockWidth)/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			ui.printf("\n")
			continue
		}
		ui.printf("%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// Run plays the match in the replica until it finishes, the user quits (ErrQuit) or the input ends.
// Players in automatic play by themselves, the others are asked for commands.
// If the match hasn't started yet, it is started with the given players.
func (ui *UI) Run(ctx context.Context, replica *session.Replica, ids []PlayerID, automatic map[PlayerID]players.Player) (*Board, error) {
	clients := make(map[PlayerID]*session.Client, len(ids))
	for _, id := range ids {
		clients[id] = session.NewClient(id, replica, nil)
	}
	if !replica.Board().IsStarted() {
		ps := make([]Player, len(ids))
		for ii, id := range ids {
			ps[ii] = Player{ID: id}
		}
		if err := clients[ids[0]].Submit(ctx, InitGame{Players: ps}); err != nil {
			return replica.Board(), err
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return replica.Board(), err
		}
		board := replica.Board()
		if board.IsFinished() {
			ui.Print(board)
			ui.PrintWinner(board)
			return board, nil
		}
		current := board.CurrentPlayer()
		client, found := clients[current]
		if !found {
			return board, errors.Errorf("no client for current player %q", current)
		}
		if p, isAutomatic := automatic[current]; isAutomatic {
			move, err := p.Play(ctx, board)
			if err != nil {
				return board, errors.WithMessagef(err, "automatic player %s failed", current)
			}
			if err = client.Submit(ctx, move); err != nil {
				return board, err
			}
			ui.printf("  %s plays %s\n", ui.playerName(board, current), move.Notation())
			continue
		}

		ui.Print(board)
		if err := ui.RunCommand(ctx, client); err != nil {
			if errors.Is(err, io.EOF) {
				return replica.Board(), nil
			}
			return replica.Board(), err
		}
	}
}

// RunCommand reads one command from the input and executes it for the client.
// Invalid commands are reported to the user and are not errors.
func (ui *UI) RunCommand(ctx context.Context, client *session.Client) error {
	board := client.Board()
	ui.printf("\n    %s > ", ui.playerName(board, client.Actor()))
	text, err := ui.reader.ReadString('\n')
	if err != nil && (err != io.EOF || strings.TrimSpace(text) == "") {
		return err
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	switch cmd := fields[0]; strings.ToLower(cmd) {
	case "quit", "exit":
		return ErrQuit
	case "help", "?":
		ui.PrintHelp()
	case "moves":
		ui.PrintMoves(board)
	case "history":
		ui.PrintHistory(board)
	case "undo":
		undo, err := client.UndoLastTurn(ctx)
		if err != nil {
			ui.printf("    * Nothing to undo: %v\n", err)
			return nil
		}
		ui.printf("    Undone: %s\n", undo.Notation())
	case "save":
		if len(fields) != 2 {
			ui.printf("    * Usage: save <file>\n")
			return nil
		}
		if err := SaveFile(fields[1], board); err != nil {
			ui.printf("    * Failed to save: %v\n", err)
			return nil
		}
		ui.printf("    Saved %d moves to %s\n", len(board.History()), fields[1])
	default:
		ui.click(ctx, client, cmd)
	}
	return nil
}

// click interprets id as a piece or a field id.
func (ui *UI) click(ctx context.Context, client *session.Client, id string) {
	var (
		move Move
		err  error
	)
	board := client.Board()
	if _, pieceErr := board.Piece(PieceID(id)); pieceErr == nil {
		move, err = client.ClickPiece(ctx, PieceID(id))
	} else if board.Topology().Has(FieldID(id)) {
		move, err = client.ClickField(ctx, FieldID(id))
	} else {
		ui.printf("    * %q is not a piece, a field or a command, type 'help' for the list of commands\n", id)
		return
	}
	switch {
	case errors.Is(err, ErrIllegalClick):
		klog.V(1).Infof("click on %s: %v", id, err)
		ui.printf("    * Clicking on %s has no effect now\n", id)
	case err != nil:
		ui.printf("    * %v\n", err)
	case move != nil:
		ui.printf("    Played %s\n", move.Notation())
	}
}

// SaveFile saves the history of the board to the file, see state.SaveMatch.
func SaveFile(path string, board *Board) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create match file %q", path)
	}
	if err = SaveMatch(gob.NewEncoder(f), board.Rules(), board.History()); err != nil {
		_ = f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "failed to close match file %q", path)
}

// LoadFile loads a match saved with SaveFile, and replays it.
func LoadFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open match file %q", path)
	}
	defer func() { _ = f.Close() }()
	rules, moves, err := LoadMatch(gob.NewDecoder(f))
	if err != nil {
		return nil, errors.WithMessagef(err, "loading %q", path)
	}
	return Replay(rules, moves)
}

// PrintHelp lists the commands.
func (ui *UI) PrintHelp() {
	ui.printf(`    Commands:
      <piece>      click on a piece, e.g. "alice/C", "gray/1" or "black/c"
      <field>      click on a field, e.g. "A", "c" or "A-2-B"
      moves        list the legal moves
      history      list the moves played
      undo         undo the latest turn
      save <file>  save the match
      quit         leave the match
`)
}

// PrintMoves lists the legal moves of the current player.
func (ui *UI) PrintMoves(b *Board) {
	moves := b.LegalMoves()
	ui.printf("    %d legal moves:\n", len(moves))
	for _, m := range moves {
		ui.printf("      %s\n", m.Notation())
	}
}

// PrintHistory lists the moves played.
func (ui *UI) PrintHistory(b *Board) {
	for ii, m := range b.History() {
		ui.printf("    %3d. %s\n", ii+1, m.Notation())
	}
}
