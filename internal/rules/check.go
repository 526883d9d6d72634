package rules

import "github.com/hailam/chessrules/internal/board"

// Check classifies the position from attacker's point of view. The result is
// Check when the defending king is attacked. With checkAll, a defender
// without any legal move turns Check into Checkmate and None into Stalemate.
func (v *Validator) Check(attacker board.Side, checkAll bool) GameState {
	defender := attacker.Other()
	state := None

	attacked := v.Attacks(attacker)
	if attacked.Contains(v.board.KingSquare(defender)) {
		state = Check
	}

	if checkAll && !v.HasLegalMoves(defender) {
		if state == Check {
			return Checkmate
		}
		return Stalemate
	}

	return state
}

// InCheck returns true if side's king is attacked.
func (v *Validator) InCheck(side board.Side) bool {
	attacked := v.Attacks(side.Other())
	return attacked.Contains(v.board.KingSquare(side))
}

// HasLegalMoves returns true if any piece of side has a legal move.
func (v *Validator) HasLegalMoves(side board.Side) bool {
	for i := 0; i < board.NumSquares; i++ {
		sq := board.Square(i)
		if !v.board.PieceAt(sq).IsOnSide(side) {
			continue
		}
		if len(v.PossibleMoves(sq, true)) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves returns the legal move set of every piece of side, keyed by
// origin square. Pieces without moves are omitted.
func (v *Validator) LegalMoves(side board.Side) map[board.Square]MoveSet {
	all := make(map[board.Square]MoveSet)
	for i := 0; i < board.NumSquares; i++ {
		sq := board.Square(i)
		if !v.board.PieceAt(sq).IsOnSide(side) {
			continue
		}
		if moves := v.PossibleMoves(sq, true); len(moves) > 0 {
			all[sq] = moves
		}
	}
	return all
}
