// Package console implements a line-based front end for playing a game in a
// terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/game"
	"github.com/hailam/chessrules/internal/rules"
	"github.com/hailam/chessrules/internal/storage"
)

// Store records finished games.
type Store interface {
	RecordGame(storage.GameResult) (*storage.GameStats, error)
	LoadStats() (*storage.GameStats, error)
}

// Console reads commands from in and writes responses to out.
type Console struct {
	in  io.Reader
	out io.Writer

	game     *game.Game
	moveNum  int
	started  time.Time
	finished bool

	store    Store
	listener game.Listener
	logger   *log.Logger
	palette  palette
}

// Option configures a Console.
type Option func(*Console)

// WithStore records finished games in s.
func WithStore(s Store) Option {
	return func(c *Console) { c.store = s }
}

// WithColor enables or disables ANSI colours.
func WithColor(enabled bool) Option {
	return func(c *Console) { c.palette = newPalette(enabled) }
}

// WithListener forwards engine events to l.
func WithListener(l game.Listener) Option {
	return func(c *Console) { c.listener = l }
}

// WithLogger passes l to the engine for move tracing.
func WithLogger(l *log.Logger) Option {
	return func(c *Console) { c.logger = l }
}

// New creates a console with a fresh game.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:      in,
		out:     out,
		palette: newPalette(false),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.newGame()
	return c
}

func (c *Console) newGame() {
	var opts []game.Option
	if c.listener != nil {
		opts = append(opts, game.WithListener(c.listener))
	}
	if c.logger != nil {
		opts = append(opts, game.WithLogger(c.logger))
	}
	c.game = game.New(opts...)
	c.moveNum = 0
	c.started = time.Now()
	c.finished = false
}

// Game returns the game being played.
func (c *Console) Game() *game.Game { return c.game }

// MoveNumber returns the current half-move number.
func (c *Console) MoveNumber() int { return c.moveNum }

// Run processes commands until quit or the end of input.
func (c *Console) Run() error {
	scanner := bufio.NewScanner(c.in)

	c.printBoard()
	c.prompt()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			c.prompt()
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "click", "c":
			c.handleClick(args)
		case "move", "m":
			c.handleMove(args)
		case "promote", "p":
			c.handlePromote(args)
		case "moves":
			c.handleMoves(args)
		case "board", "b":
			c.printBoard()
		case "score":
			c.printScore()
		case "new":
			c.newGame()
			c.printBoard()
		case "stats":
			c.handleStats()
		case "help", "?":
			c.printHelp()
		case "quit", "exit", "q":
			return nil
		default:
			c.errorf("unknown command %q, type help", cmd)
		}
		c.prompt()
	}
	return scanner.Err()
}

func (c *Console) prompt() {
	side := game.SideToMove(c.moveNum)
	switch {
	case c.finished:
		fmt.Fprint(c.out, "game over> ")
	case c.game.IsPromotionPending():
		fmt.Fprintf(c.out, "%s promotes (q/r/b/n)> ", c.game.PromotionSide())
	default:
		fmt.Fprintf(c.out, "%s %d> ", side, c.moveNum/2+1)
	}
}

func (c *Console) handleClick(args []string) {
	if len(args) != 1 {
		c.errorf("usage: click <square>")
		return
	}
	sq, ok := c.parseSquare(args[0])
	if !ok || !c.playable() {
		return
	}

	state := c.game.SelectOrMove(sq, c.moveNum)
	if state != rules.NoTurn {
		c.afterMove(state)
		return
	}
	if c.game.Phase() == game.Selected {
		c.printBoard()
		fmt.Fprintf(c.out, "%s: %s\n", sq, squareList(c.game.Highlights()))
		return
	}
	fmt.Fprintln(c.out, "nothing selected")
}

func (c *Console) handleMove(args []string) {
	if len(args) == 1 && len(args[0]) == 4 {
		args = []string{args[0][:2], args[0][2:]}
	}
	if len(args) != 2 {
		c.errorf("usage: move <from> <to>")
		return
	}
	from, ok := c.parseSquare(args[0])
	if !ok {
		return
	}
	to, ok := c.parseSquare(args[1])
	if !ok || !c.playable() {
		return
	}

	state := c.game.Move(from, to, c.moveNum)
	if state == rules.NoTurn {
		c.errorf("illegal move %s-%s", from, to)
		return
	}
	c.afterMove(state)
}

func (c *Console) handlePromote(args []string) {
	if len(args) != 1 || len(args[0]) == 0 {
		c.errorf("usage: promote <q|r|b|n>")
		return
	}
	kind, ok := board.KindFromChar(strings.ToLower(args[0])[0])
	if !ok {
		c.errorf("unknown piece %q", args[0])
		return
	}

	state, err := c.game.ChoosePromotion(kind)
	if err != nil {
		c.errorf("%v", err)
		return
	}
	c.printBoard()
	c.report(state)
}

func (c *Console) handleMoves(args []string) {
	if len(args) != 1 {
		c.errorf("usage: moves <square>")
		return
	}
	sq, ok := c.parseSquare(args[0])
	if !ok {
		return
	}
	moves := c.game.LegalMoves(sq, c.moveNum)
	fmt.Fprintf(c.out, "%s: %s\n", sq, squareList(moves.Squares()))
}

func (c *Console) handleStats() {
	if c.store == nil {
		c.errorf("statistics are not available")
		return
	}
	stats, err := c.store.LoadStats()
	if err != nil {
		c.errorf("load statistics: %v", err)
		return
	}
	c.printStats(stats)
}

// playable returns false when moves are not accepted right now.
func (c *Console) playable() bool {
	switch {
	case c.finished:
		c.errorf("the game is over, type new to start again")
		return false
	case c.game.IsPromotionPending():
		c.errorf("choose a promotion piece first")
		return false
	}
	return true
}

// afterMove advances the turn and reports the new state.
func (c *Console) afterMove(state rules.GameState) {
	c.moveNum++
	c.printBoard()
	if c.game.IsPromotionPending() {
		fmt.Fprintf(c.out, "%s pawn reached %s, choose q, r, b or n\n",
			c.game.PromotionSide(), c.game.PromotionSquare())
		return
	}
	c.report(state)
}

func (c *Console) report(state rules.GameState) {
	mover := game.SideToMove(c.moveNum - 1)
	switch state {
	case rules.Check:
		fmt.Fprintln(c.out, c.palette.alert.Sprintf("%s is in check", mover.Other()))
	case rules.Checkmate:
		fmt.Fprintln(c.out, c.palette.alert.Sprintf("Checkmate, %s wins", mover))
		c.finish(mover)
	case rules.Stalemate:
		fmt.Fprintln(c.out, c.palette.alert.Sprint("Stalemate"))
		c.finish(board.NoSide)
	}
}

func (c *Console) finish(winner board.Side) {
	c.finished = true
	if c.store == nil {
		return
	}
	_, err := c.store.RecordGame(storage.GameResult{
		Winner:   winner,
		Plies:    c.moveNum,
		Duration: time.Since(c.started),
	})
	if err != nil {
		log.Printf("Warning: could not record game: %v", err)
	}
}

func (c *Console) parseSquare(s string) (board.Square, bool) {
	sq, err := board.ParseSquare(strings.ToLower(s))
	if err != nil {
		c.errorf("%v", err)
		return board.NoSquare, false
	}
	return sq, true
}

func (c *Console) errorf(format string, args ...interface{}) {
	fmt.Fprintln(c.out, c.palette.err.Sprintf(format, args...))
}

func squareList(squares []board.Square) string {
	if len(squares) == 0 {
		return "no moves"
	}
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return strings.Join(names, " ")
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `commands:
  click <sq>        select a piece or move the selected piece
  move <from> <to>  move a piece (also: move e2e4)
  promote <q|r|b|n> choose the piece for a promoting pawn
  moves <sq>        list legal destinations of a piece
  board             show the board
  score             show scores and captured pieces
  new               start a new game
  stats             show recorded statistics
  quit              leave
`)
}
