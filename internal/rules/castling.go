package rules

import "github.com/hailam/chessrules/internal/board"

// Distances from the king to its rooks at the start of the game.
const (
	kingsideRookDistance  = 3
	queensideRookDistance = 4
)

// castleMoves adds the castling destinations available to the king on from.
// The king must never have moved and must not be in check; every square
// between king and rook must be empty; the rook must be of the same side and
// unmoved; and the squares the king starts on, passes and lands on must not be
// attacked.
func (v *Validator) castleMoves(from board.Square, king board.Piece, moves MoveSet) {
	if !king.CanCastle {
		return
	}

	attacked := v.Attacks(king.Side.Other())
	if attacked.Contains(from) {
		return
	}

	if v.clearPathToRook(from, 1, kingsideRookDistance, king.Side) &&
		!attacked.Contains(from+1) && !attacked.Contains(from+2) {
		moves.add(from+2, CastleKingside)
	}
	if v.clearPathToRook(from, -1, queensideRookDistance, king.Side) &&
		!attacked.Contains(from-1) && !attacked.Contains(from-2) {
		moves.add(from-2, CastleQueenside)
	}
}

// clearPathToRook reports whether every square between pos and the square
// dist steps away is empty and that square holds an unmoved rook of side.
// The whole path must lie on pos's row.
func (v *Validator) clearPathToRook(pos board.Square, step, dist int, side board.Side) bool {
	end := pos + board.Square(step*dist)
	if !end.IsValid() || end.Row() != pos.Row() {
		return false
	}

	for sq := pos + board.Square(step); sq != end; sq += board.Square(step) {
		if !v.board.IsEmpty(sq) {
			return false
		}
	}

	rook := v.board.PieceAt(end)
	return rook.Kind == board.Rook && rook.IsOnSide(side) && rook.MoveCount == 0
}
