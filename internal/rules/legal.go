package rules

import "github.com/hailam/chessrules/internal/board"

// leavesKingAttacked plays the move on a scratch copy of the board and
// reports whether the mover's king is attacked afterwards. The real board is
// untouched.
func (v *Validator) leavesKingAttacked(from, to board.Square, mk MoveKind) bool {
	mover := v.board.PieceAt(from).Side
	scratch := v.board.Clone()
	ApplyToBoard(scratch, from, to, mk)

	king := scratch.KingSquare(mover)
	if king == board.NoSquare {
		return false
	}

	sv := &Validator{board: scratch, moveNum: v.moveNum + 1}
	attacked := sv.Attacks(mover.Other())
	return attacked.Contains(king)
}

// ApplyToBoard relocates the pieces involved in a move: the mover, the rook
// of a castle and the pawn taken en passant. It returns the captured piece
// (the Empty piece when nothing was taken). Move counters, scores and
// captures are left to the caller.
func ApplyToBoard(b *board.Board, from, to board.Square, mk MoveKind) board.Piece {
	mover := b.PieceAt(from)
	captured := b.PieceAt(to)

	b.MovePiece(from, to)

	switch mk {
	case EnPassant:
		victim := to - board.Square(mover.Side.Forward())
		captured = b.PieceAt(victim)
		b.Clear(victim)
	case CastleKingside:
		b.MovePiece(from+3, to-1)
	case CastleQueenside:
		b.MovePiece(from-4, to+1)
	}

	return captured
}
