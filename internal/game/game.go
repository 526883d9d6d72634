// Package game drives a chess game through click-style input: select a
// piece, then select one of its legal destinations.
package game

import (
	"fmt"
	"io"
	"log"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/rules"
)

// Phase is the interaction state of a game.
type Phase int

const (
	Idle Phase = iota
	Selected
	AwaitingPromotion
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Selected:
		return "selected"
	case AwaitingPromotion:
		return "awaiting promotion"
	}
	return "unknown"
}

// SideToMove returns the side whose turn it is on half-move moveNum.
func SideToMove(moveNum int) board.Side {
	if moveNum%2 == 0 {
		return board.White
	}
	return board.Black
}

// Game owns a board and the selection state used to play on it.
type Game struct {
	board     *board.Board
	validator *rules.Validator
	executor  *Executor
	listener  Listener
	logger    *log.Logger

	phase      Phase
	selected   board.Square
	highlights rules.MoveSet

	promoSquare  board.Square
	promoSide    board.Side
	promoMoveNum int

	state rules.GameState
}

// Option configures a Game.
type Option func(*Game)

// WithBoard starts the game from b instead of the standard layout.
func WithBoard(b *board.Board) Option {
	return func(g *Game) { g.board = b }
}

// WithListener registers l for move and promotion events.
func WithListener(l Listener) Option {
	return func(g *Game) { g.listener = l }
}

// WithLogger sets the logger used for move tracing.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// New creates a game. Without options it uses the standard starting
// position, no listener and a discarding logger.
func New(opts ...Option) *Game {
	g := &Game{
		selected:    board.NoSquare,
		promoSquare: board.NoSquare,
		state:       rules.None,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.board == nil {
		g.board = board.New()
	}
	if g.listener == nil {
		g.listener = nopListener{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard, "", 0)
	}
	g.validator = rules.NewValidator(g.board)
	g.executor = NewExecutor(g.board, g.validator, g.listener, g.logger)
	return g
}

// SelectOrMove handles a click on sq during half-move moveNum. Even move
// numbers are White's, odd are Black's. It returns the classification of the
// position after a move, or NoTurn when no move was made.
func (g *Game) SelectOrMove(sq board.Square, moveNum int) rules.GameState {
	if g.phase == AwaitingPromotion {
		return rules.NoTurn
	}
	if !sq.IsValid() {
		g.deselect()
		return rules.NoTurn
	}

	if g.phase == Selected {
		from := g.selected
		mk, ok := g.highlights[sq]
		g.deselect()
		if !ok || sq == from {
			return rules.NoTurn
		}
		return g.apply(from, sq, mk, moveNum)
	}

	piece := g.board.PieceAt(sq)
	if !piece.IsOnSide(SideToMove(moveNum)) {
		return rules.NoTurn
	}

	g.validator.SetMoveNumber(moveNum)
	g.selected = sq
	g.highlights = g.validator.PossibleMoves(sq, true)
	g.phase = Selected
	return rules.NoTurn
}

// Move plays from-to directly, as two clicks would.
func (g *Game) Move(from, to board.Square, moveNum int) rules.GameState {
	if g.phase == AwaitingPromotion {
		return rules.NoTurn
	}
	g.deselect()
	g.SelectOrMove(from, moveNum)
	if g.phase != Selected {
		return rules.NoTurn
	}
	return g.SelectOrMove(to, moveNum)
}

func (g *Game) apply(from, to board.Square, mk rules.MoveKind, moveNum int) rules.GameState {
	ev := g.executor.Apply(from, to, mk, moveNum)
	g.state = ev.State
	if ev.Promotion {
		g.phase = AwaitingPromotion
		g.promoSquare = to
		g.promoSide = ev.Piece.Side
		g.promoMoveNum = moveNum
	}
	return ev.State
}

func (g *Game) deselect() {
	g.phase = Idle
	g.selected = board.NoSquare
	g.highlights = nil
}

// IsPromotionPending returns true while a pawn waits on its last row for a
// replacement to be chosen.
func (g *Game) IsPromotionPending() bool {
	return g.phase == AwaitingPromotion
}

// PromotionSide returns the side of the pawn awaiting promotion, or NoSide.
func (g *Game) PromotionSide() board.Side {
	if !g.IsPromotionPending() {
		return board.NoSide
	}
	return g.promoSide
}

// PromotionSquare returns the square of the pawn awaiting promotion, or
// NoSquare.
func (g *Game) PromotionSquare() board.Square {
	if !g.IsPromotionPending() {
		return board.NoSquare
	}
	return g.promoSquare
}

// ChoosePromotion replaces the pending pawn with a piece of kind k and
// returns the new classification of the position.
func (g *Game) ChoosePromotion(k board.Kind) (rules.GameState, error) {
	if !g.IsPromotionPending() {
		return rules.NoTurn, ErrNoPromotionPending
	}
	if !board.IsPromotionKind(k) {
		return rules.NoTurn, fmt.Errorf("promote to %s: %w", k, ErrInvalidPromotion)
	}

	ev := g.executor.Promote(g.promoSquare, k, g.promoMoveNum)
	g.state = ev.State
	g.phase = Idle
	g.promoSquare = board.NoSquare
	g.promoSide = board.NoSide
	return ev.State, nil
}

// Phase returns the current interaction state.
func (g *Game) Phase() Phase { return g.phase }

// State returns the classification produced by the last move or promotion.
func (g *Game) State() rules.GameState { return g.state }

// Selected returns the selected square, or NoSquare.
func (g *Game) Selected() board.Square { return g.selected }

// Highlights returns the legal destinations of the selected piece in square
// order.
func (g *Game) Highlights() []board.Square {
	if g.phase != Selected {
		return nil
	}
	return g.highlights.Squares()
}

// IsHighlighted returns true if sq is a legal destination of the selected
// piece.
func (g *Game) IsHighlighted(sq board.Square) bool {
	return g.phase == Selected && g.highlights.Contains(sq)
}

// LegalMoves returns the legal moves of the piece on sq for half-move
// moveNum without touching the selection.
func (g *Game) LegalMoves(sq board.Square, moveNum int) rules.MoveSet {
	g.validator.SetMoveNumber(moveNum)
	return g.validator.PossibleMoves(sq, true)
}

// InCheck returns true if side's king is attacked.
func (g *Game) InCheck(side board.Side) bool {
	return g.validator.InCheck(side)
}

// PieceAt returns a copy of the piece on sq.
func (g *Game) PieceAt(sq board.Square) board.Piece { return g.board.PieceAt(sq) }

// Score returns the material captured by side.
func (g *Game) Score(side board.Side) int { return g.board.Score(side) }

// Captures returns the pieces captured by side in capture order.
func (g *Game) Captures(side board.Side) []board.Piece { return g.board.Captures(side) }

// EnPassantTarget returns the square an en passant capture would land on, or
// NoSquare.
func (g *Game) EnPassantTarget() board.Square { return g.board.EnPassantTarget() }

// KingSquare returns the square of side's king.
func (g *Game) KingSquare(side board.Side) board.Square { return g.board.KingSquare(side) }

// String renders the board.
func (g *Game) String() string { return g.board.String() }
