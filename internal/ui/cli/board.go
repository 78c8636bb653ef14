package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	. "github.com/janpfeifer/pentaGo/internal/state"
)

// CharsPerColumn is the width of each field printed in a path line.
const CharsPerColumn = 9

var (
	colorStyles = map[PentaColor]lipgloss.Style{
		ColorA: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		ColorB: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		ColorC: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		ColorD: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		ColorE: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	}
	blackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("0")).Bold(true)
	grayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("250"))
	emptyStyle = lipgloss.NewStyle().Faint(true)
	armedStyle = lipgloss.NewStyle().Underline(true).Reverse(true)
)

// maxLabelPlayer is the max number of characters of the player id shown in a piece label.
const maxLabelPlayer = 5

// pieceLabel returns the short text used for the piece on the board.
func pieceLabel(p *Piece) string {
	if p.Kind != KindPlayer {
		return string(p.ID)
	}
	name := []rune(string(p.Player))
	if len(name) > maxLabelPlayer {
		name = name[:maxLabelPlayer]
	}
	return fmt.Sprintf("%s/%s", string(name), p.Color)
}

// renderPiece returns the label of the piece, colored if the UI is configured with color.
func (ui *UI) renderPiece(b *Board, id PieceID) string {
	p, err := b.Piece(id)
	if err != nil {
		return string(id)
	}
	label := pieceLabel(p)
	if !ui.color {
		if sel := b.Selection(); sel.Piece == id && sel.Kind != Idle {
			return "*" + label
		}
		return label
	}
	var style lipgloss.Style
	switch p.Kind {
	case KindBlackBlocker:
		style = blackStyle
	case KindGrayBlocker:
		style = grayStyle
	default:
		style = colorStyles[p.Color]
	}
	if sel := b.Selection(); sel.Piece == id && sel.Kind != Idle {
		style = style.Inherit(armedStyle)
	}
	return style.Render(label)
}

// renderField returns the id of the field, colored by the field's color for Start and Goal fields.
func (ui *UI) renderField(f *Field) string {
	if !ui.color || f.Role == RoleConnection {
		return string(f.ID)
	}
	return colorStyles[f.Color].Render(string(f.ID))
}

// renderCell returns the contents of a connection field, centered in CharsPerColumn.
func (ui *UI) renderCell(b *Board, field FieldID) string {
	occupants := b.PiecesAt(field)
	if len(occupants) == 0 {
		if ui.color {
			return centerString(emptyStyle.Render("·"), CharsPerColumn)
		}
		return centerString("·", CharsPerColumn)
	}
	return centerString(ui.renderPiece(b, occupants[0]), CharsPerColumn)
}

func (ui *UI) playerName(b *Board, id PlayerID) string {
	if !ui.color {
		return string(id)
	}
	for ii, p := range b.Players() {
		if p.ID == id {
			return colorStyles[Colors[ii%NumColors]].Render(string(id))
		}
	}
	return string(id)
}

// Print the board: status, players, the stops with their occupants, and each path with its fields.
func (ui *UI) Print(b *Board) {
	if ui.clearScreen {
		ui.printf("\033[H\033[2J")
	}
	var sb strings.Builder
	w := func(format string, args ...any) { _, _ = fmt.Fprintf(&sb, format, args...) }
	if !b.IsStarted() {
		w("Match not started\n")
		ui.printCentered(sb.String())
		return
	}

	w("Turn %d: %s to play, %s, %d gray blocker(s) in the supply\n\n",
		b.Turn()+1, ui.playerName(b, b.CurrentPlayer()), b.Selection(), len(b.Supply()))
	for _, p := range b.Players() {
		w("  %-12s %d/%d goals\n", ui.playerName(b, p.ID), b.GoalsReached(p.ID), b.Rules().GoalsToWin)
	}
	w("\n")

	// Stops.
	t := b.Topology()
	for _, c := range Colors {
		for _, id := range []FieldID{t.Start(c), t.Goal(c)} {
			occupants := b.PiecesAt(id)
			labels := make([]string, len(occupants))
			for ii, pieceID := range occupants {
				labels[ii] = ui.renderPiece(b, pieceID)
			}
			w("  %s: %s", ui.renderField(t.MustField(id)), strings.Join(labels, " "))
		}
		w("\n")
	}
	w("\n")

	// Paths.
	for _, path := range Paths() {
		w("%s ", centerString(ui.renderField(t.MustField(path.From)), 2))
		for _, step := range path.Steps {
			w("%s", ui.renderCell(b, step))
		}
		w(" %s\n", ui.renderField(t.MustField(path.To)))
	}
	ui.printCentered(sb.String())
}

// PrintWinner prints the winner of the match, if there is one.
func (ui *UI) PrintWinner(b *Board) {
	if !b.IsFinished() {
		return
	}
	msg := fmt.Sprintf("*** %s wins with %d goals after %d turns! ***",
		b.Winner(), b.GoalsReached(b.Winner()), b.Turn())
	if ui.color {
		banner := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("5")).
			Padding(1, 4).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("13"))
		msg = banner.Render(msg)
	}
	ui.printf("\n")
	ui.printCentered(msg)
	ui.printf("\n")
}
