// Package rules computes legal moves and classifies game states.
package rules

import (
	"sort"

	"github.com/hailam/chessrules/internal/board"
)

// GameState is the classification of a position after a half-move.
type GameState uint8

const (
	None GameState = iota
	Check
	Checkmate
	Stalemate
	// NoTurn means no move was applied.
	NoTurn
)

// String returns the state name.
func (gs GameState) String() string {
	switch gs {
	case None:
		return "None"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case NoTurn:
		return "NoTurn"
	default:
		return "?"
	}
}

// IsTerminal returns true for checkmate and stalemate.
func (gs GameState) IsTerminal() bool {
	return gs == Checkmate || gs == Stalemate
}

// MoveKind tells the executor how to apply a destination.
type MoveKind uint8

const (
	Normal MoveKind = iota
	DoubleStep
	EnPassant
	CastleKingside
	CastleQueenside
)

// String returns the move kind name.
func (mk MoveKind) String() string {
	switch mk {
	case Normal:
		return "Normal"
	case DoubleStep:
		return "DoubleStep"
	case EnPassant:
		return "EnPassant"
	case CastleKingside:
		return "CastleKingside"
	case CastleQueenside:
		return "CastleQueenside"
	default:
		return "?"
	}
}

// IsCastle returns true for either castling kind.
func (mk MoveKind) IsCastle() bool {
	return mk == CastleKingside || mk == CastleQueenside
}

// MoveSet maps each reachable destination to the kind of move reaching it.
type MoveSet map[board.Square]MoveKind

// Contains returns true if sq is a destination in the set.
func (ms MoveSet) Contains(sq board.Square) bool {
	_, ok := ms[sq]
	return ok
}

// Kind returns the move kind for sq and whether sq is in the set.
func (ms MoveSet) Kind(sq board.Square) (MoveKind, bool) {
	mk, ok := ms[sq]
	return mk, ok
}

// Squares returns the destinations in ascending order.
func (ms MoveSet) Squares() []board.Square {
	out := make([]board.Square, 0, len(ms))
	for sq := range ms {
		out = append(out, sq)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// add records sq without downgrading a special kind already present.
func (ms MoveSet) add(sq board.Square, mk MoveKind) {
	if old, ok := ms[sq]; ok && old != Normal {
		return
	}
	ms[sq] = mk
}

// SquareSet is a set of board squares.
type SquareSet [board.NumSquares]bool

// Contains returns true if sq is in the set. NoSquare is never contained.
func (s *SquareSet) Contains(sq board.Square) bool {
	return sq.IsValid() && s[sq]
}

// Len returns the number of squares in the set.
func (s *SquareSet) Len() int {
	n := 0
	for _, ok := range s {
		if ok {
			n++
		}
	}
	return n
}
