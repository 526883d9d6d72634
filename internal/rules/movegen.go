package rules

import "github.com/hailam/chessrules/internal/board"

// axis is one line of travel for sliding pieces.
type axis int

const (
	horizontal axis = iota
	vertical
	diagonalLeft
	diagonalRight
)

// step returns the index delta of one step along the axis.
func (a axis) step() int {
	switch a {
	case horizontal:
		return 1
	case vertical:
		return board.Width
	case diagonalLeft:
		return board.Width + 1
	case diagonalRight:
		return board.Width - 1
	default:
		return 0
	}
}

// axesFor returns the axes a piece's direction permissions allow.
// The diagonal permission covers both diagonals.
func axesFor(d board.Directions) []axis {
	var axes []axis
	if d.Horizontal {
		axes = append(axes, horizontal)
	}
	if d.Vertical {
		axes = append(axes, vertical)
	}
	if d.Diagonal {
		axes = append(axes, diagonalLeft, diagonalRight)
	}
	return axes
}

// Validator computes move sets against a board. It never modifies the board.
type Validator struct {
	board   *board.Board
	moveNum int
}

// NewValidator creates a validator for b at move number 0.
func NewValidator(b *board.Board) *Validator {
	return &Validator{board: b}
}

// SetMoveNumber sets the half-move number used for en passant eligibility.
func (v *Validator) SetMoveNumber(n int) {
	v.moveNum = n
}

// MoveNumber returns the current half-move number.
func (v *Validator) MoveNumber() int {
	return v.moveNum
}

// Board returns the board the validator reads.
func (v *Validator) Board() *board.Board {
	return v.board
}

// PossibleMoves returns the destinations of the piece on from. With
// verifyLegal, moves leaving the mover's king attacked are removed and
// castling is considered.
func (v *Validator) PossibleMoves(from board.Square, verifyLegal bool) MoveSet {
	piece := v.board.PieceAt(from)
	moves := make(MoveSet)
	if !piece.Active {
		return moves
	}

	v.pseudoMoves(from, piece, moves)

	if verifyLegal {
		for to, mk := range moves {
			if v.leavesKingAttacked(from, to, mk) {
				delete(moves, to)
			}
		}
		if piece.Kind == board.King {
			v.castleMoves(from, piece, moves)
		}
	}

	return moves
}

// pseudoMoves adds every destination reachable by the piece's movement
// rules, ignoring self-check.
func (v *Validator) pseudoMoves(from board.Square, piece board.Piece, moves MoveSet) {
	if piece.StrictMotion {
		v.strictMoves(from, piece, moves)
	} else {
		for _, a := range axesFor(piece.Directions) {
			v.slidingMoves(from, piece, a, moves)
		}
	}
}

// slidingMoves walks outward along an axis in both directions. A walk ends
// at the board edge, after Range steps, before a piece of the mover's side,
// or on the first enemy piece.
func (v *Validator) slidingMoves(from board.Square, piece board.Piece, a axis, moves MoveSet) {
	step := a.step()
	for _, dir := range []int{1, -1} {
		prev := from
		for n := 1; n <= piece.Range; n++ {
			next := prev + board.Square(dir*step)
			if !next.IsValid() || !board.NotWrapped(prev, next) {
				break
			}
			occupant := v.board.PieceAt(next)
			if occupant.IsOnSide(piece.Side) {
				break
			}
			moves.add(next, Normal)
			if occupant.Active {
				break
			}
			prev = next
		}
	}
}

// strictMoves handles offset-based pieces: knights and pawns.
func (v *Validator) strictMoves(from board.Square, piece board.Piece, moves MoveSet) {
	for _, off := range piece.StrictMoves {
		to := from + board.Square(off)
		ok := to.IsValid() && board.NotWrapped(from, to)
		if ok {
			occupant := v.board.PieceAt(to)
			ok = !occupant.Active || (piece.StrictCapture && occupant.IsEnemyOf(piece.Side))
		}
		if !ok {
			// Pawns cannot jump over a blocked square.
			if piece.Kind == board.Pawn {
				break
			}
			continue
		}
		mk := Normal
		if piece.Kind == board.Pawn && abs(off) == 2*board.Width {
			mk = DoubleStep
		}
		moves.add(to, mk)
	}

	for _, off := range piece.CaptureMoves {
		to := from + board.Square(off)
		if !to.IsValid() || !board.NotWrapped(from, to) {
			continue
		}
		if v.board.PieceAt(to).IsEnemyOf(piece.Side) {
			moves.add(to, Normal)
		}
	}

	if piece.Kind == board.Pawn {
		v.enPassantMoves(from, piece, moves)
	}
}

// enPassantMoves inspects the two horizontal neighbours of a pawn for an
// enemy pawn that just made its double step.
func (v *Validator) enPassantMoves(from board.Square, piece board.Piece, moves MoveSet) {
	for _, adj := range neighbors(from) {
		neighbor := v.board.PieceAt(adj)
		if !neighbor.IsEnemyOf(piece.Side) || !neighbor.CanBeEnPassanted(v.moveNum) {
			continue
		}
		to := adj + board.Square(piece.Side.Forward())
		if to.IsValid() && v.board.IsEmpty(to) {
			moves.add(to, EnPassant)
		}
	}
}

// neighbors returns the squares directly left and right of sq on its row.
func neighbors(sq board.Square) []board.Square {
	var out []board.Square
	if sq.Col() != 0 {
		out = append(out, sq-1)
	}
	if sq.Col() != board.Width-1 {
		out = append(out, sq+1)
	}
	return out
}

// Attacks returns every square a piece of side could move or capture onto,
// ignoring self-check and castling. Pawn capture offsets count whether or
// not the target is occupied; pawn advances never attack.
func (v *Validator) Attacks(side board.Side) SquareSet {
	var set SquareSet
	for i := 0; i < board.NumSquares; i++ {
		from := board.Square(i)
		piece := v.board.PieceAt(from)
		if !piece.IsOnSide(side) {
			continue
		}

		if piece.Kind == board.Pawn {
			for _, off := range piece.CaptureMoves {
				to := from + board.Square(off)
				if to.IsValid() && board.NotWrapped(from, to) {
					set[to] = true
				}
			}
			continue
		}

		moves := make(MoveSet)
		v.pseudoMoves(from, piece, moves)
		for to := range moves {
			set[to] = true
		}
	}
	return set
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
