package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/storage"
)

// palette holds the colours used to draw the board. Highlights follow the
// GUI: green for a move onto an empty square, red for a capture.
type palette struct {
	light, dark *color.Color
	selected    *color.Color
	move        *color.Color
	capture     *color.Color
	check       *color.Color
	err, alert  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		light:    color.New(color.FgBlack, color.BgWhite),
		dark:     color.New(color.FgBlack, color.BgHiBlack),
		selected: color.New(color.FgBlack, color.BgYellow),
		move:     color.New(color.FgBlack, color.BgGreen),
		capture:  color.New(color.FgWhite, color.BgRed),
		check:    color.New(color.FgWhite, color.BgMagenta),
		err:      color.New(color.FgRed),
		alert:    color.New(color.FgYellow, color.Bold),
	}
	for _, c := range []*color.Color{p.light, p.dark, p.selected, p.move, p.capture, p.check, p.err, p.alert} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// cellColor picks the background for sq.
func (c *Console) cellColor(sq board.Square, piece board.Piece) *color.Color {
	g := c.game
	switch {
	case sq == g.Selected():
		return c.palette.selected
	case g.IsHighlighted(sq) && piece.Active:
		return c.palette.capture
	case g.IsHighlighted(sq):
		return c.palette.move
	case piece.Is(board.King) && g.InCheck(piece.Side):
		return c.palette.check
	case (sq.Row()+sq.Col())%2 == 0:
		return c.palette.dark
	}
	return c.palette.light
}

func (c *Console) renderBoard() string {
	var sb strings.Builder
	for row := board.Height - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d ", row+1)
		for col := 0; col < board.Width; col++ {
			sq := board.NewSquare(row, col)
			piece := c.game.PieceAt(sq)
			letter := piece.Letter()
			if letter == '.' && c.game.IsHighlighted(sq) {
				letter = '*'
			}
			sb.WriteString(c.cellColor(sq, piece).Sprintf(" %c ", letter))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")
	return sb.String()
}

func (c *Console) printBoard() {
	fmt.Fprint(c.out, c.renderBoard())
}

func (c *Console) printScore() {
	for _, side := range []board.Side{board.White, board.Black} {
		var taken []string
		for _, p := range c.game.Captures(side) {
			taken = append(taken, string(p.Letter()))
		}
		fmt.Fprintf(c.out, "%s: %d [%s]\n", side, c.game.Score(side), strings.Join(taken, " "))
	}
}

func (c *Console) printStats(s *storage.GameStats) {
	fmt.Fprintf(c.out, "games played:  %d\n", s.GamesPlayed)
	fmt.Fprintf(c.out, "white wins:    %d (%.0f%%)\n", s.WhiteWins, s.WinRate(board.White))
	fmt.Fprintf(c.out, "black wins:    %d (%.0f%%)\n", s.BlackWins, s.WinRate(board.Black))
	fmt.Fprintf(c.out, "stalemates:    %d\n", s.Stalemates)
	fmt.Fprintf(c.out, "longest game:  %d half-moves\n", s.LongestGame)
	fmt.Fprintf(c.out, "time played:   %s\n", s.TotalPlayTime.Round(time.Second))
}
