package game

import (
	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/rules"
)

// MoveEvent describes a move that was applied to the board.
type MoveEvent struct {
	From, To   board.Square
	Piece      board.Piece // the piece as it stands on To
	Captured   board.Piece // Empty when nothing was taken
	Kind       rules.MoveKind
	State      rules.GameState
	MoveNumber int
	Promotion  bool // a promotion choice is now pending
}

// IsCapture returns true if the move took a piece.
func (e MoveEvent) IsCapture() bool {
	return e.Captured.Active
}

// PromotionEvent describes a completed promotion.
type PromotionEvent struct {
	Square board.Square
	Piece  board.Piece
	State  rules.GameState
}

// Listener receives fire-and-forget notifications from the engine, for
// sounds and rendering. Implementations must not block.
type Listener interface {
	MoveApplied(MoveEvent)
	PromotionApplied(PromotionEvent)
}

// nopListener ignores every event.
type nopListener struct{}

func (nopListener) MoveApplied(MoveEvent)           {}
func (nopListener) PromotionApplied(PromotionEvent) {}

// Listeners fans events out to several listeners in order.
type Listeners []Listener

// MoveApplied forwards the event to every listener.
func (ls Listeners) MoveApplied(e MoveEvent) {
	for _, l := range ls {
		l.MoveApplied(e)
	}
}

// PromotionApplied forwards the event to every listener.
func (ls Listeners) PromotionApplied(e PromotionEvent) {
	for _, l := range ls {
		l.PromotionApplied(e)
	}
}
