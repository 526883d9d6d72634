package game

import (
	"log"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/rules"
)

// Executor applies validated moves to a board and keeps its bookkeeping:
// scores, captures, the en passant target and pending promotions.
type Executor struct {
	board     *board.Board
	validator *rules.Validator
	listener  Listener
	logger    *log.Logger
}

// NewExecutor creates an executor writing to b.
func NewExecutor(b *board.Board, v *rules.Validator, l Listener, logger *log.Logger) *Executor {
	return &Executor{board: b, validator: v, listener: l, logger: logger}
}

// Apply plays the move from-to of the given kind on half-move moveNum and
// returns the resulting event. The move must come from the validator's legal
// set; Apply does not check it again.
func (e *Executor) Apply(from, to board.Square, mk rules.MoveKind, moveNum int) MoveEvent {
	mover := e.board.Cell(from).Piece()
	side := mover.Side

	e.logger.Printf("[MOVE] %d: %s %s-%s (%s)", moveNum, mover, from, to, mk)

	mover.OnMove(abs(int(from)-int(to)), moveNum)
	switch mk {
	case rules.CastleKingside:
		e.board.Cell(from + 3).Piece().OnMove(2, moveNum)
	case rules.CastleQueenside:
		e.board.Cell(from - 4).Piece().OnMove(3, moveNum)
	}

	captured := rules.ApplyToBoard(e.board, from, to, mk)
	if captured.Active {
		e.board.AddScore(side, captured.Value)
		e.board.AddCapture(side, captured)
		e.logger.Printf("[MOVE] %s captured %s", side, captured)
	}

	if mk == rules.DoubleStep {
		e.board.SetEnPassantTarget(from + board.Square(side.Forward()))
	} else {
		e.board.SetEnPassantTarget(board.NoSquare)
	}

	moved := e.board.PieceAt(to)
	promote := moved.Kind == board.Pawn && to.Row() == side.LastRow()

	// Classify from the defender's turn so an en passant reply counts.
	e.validator.SetMoveNumber(moveNum + 1)
	state := e.validator.Check(side, true)

	ev := MoveEvent{
		From:       from,
		To:         to,
		Piece:      moved,
		Captured:   captured,
		Kind:       mk,
		State:      state,
		MoveNumber: moveNum,
		Promotion:  promote,
	}
	e.listener.MoveApplied(ev)
	return ev
}

// Promote replaces the pawn on sq with a fresh piece of kind k and the pawn's
// side, then re-classifies the position from that side's point of view.
// moveNum is the half-move on which the pawn arrived.
func (e *Executor) Promote(sq board.Square, k board.Kind, moveNum int) PromotionEvent {
	pawn := e.board.PieceAt(sq)
	piece := board.NewPiece(k, pawn.Side)
	piece.MoveCount = pawn.MoveCount
	e.board.Place(sq, piece)

	e.logger.Printf("[PROMOTE] %s on %s", piece, sq)

	e.validator.SetMoveNumber(moveNum + 1)
	state := e.validator.Check(pawn.Side, true)

	ev := PromotionEvent{Square: sq, Piece: piece, State: state}
	e.listener.PromotionApplied(ev)
	return ev
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
