package board

import (
	"fmt"
	"strings"
)

// Cell is one square of the board. It owns its piece by value.
type Cell struct {
	piece Piece
}

// Piece returns a pointer to the piece held by the cell.
func (c *Cell) Piece() *Piece {
	return &c.piece
}

// SetPiece replaces the cell's occupant.
func (c *Cell) SetPiece(p Piece) {
	c.piece = p
}

// MovePiece moves the cell's piece into dst, leaving this cell empty.
func (c *Cell) MovePiece(dst *Cell) {
	dst.piece = c.piece
	c.piece = EmptyPiece()
}

// Board is a dumb container for cells, scores, captures and the pending
// en passant target. It performs no legality checking.
type Board struct {
	cells     []Cell
	scores    [2]int
	captures  [2][]Piece
	enPassant Square
}

// NewEmpty creates a board with no pieces.
func NewEmpty() *Board {
	b := &Board{
		cells:     make([]Cell, NumSquares),
		enPassant: NoSquare,
	}
	for i := range b.cells {
		b.cells[i].piece = EmptyPiece()
	}
	return b
}

// New creates a board with the standard opening layout.
func New() *Board {
	b := NewEmpty()
	for j, side := range []Side{White, Black} {
		backRow := CreateStandardBackRow()
		for i := 0; i < Width; i++ {
			back := backRow[i]
			pawn := CreatePiece(Pawn)
			if side == Black {
				back.SwitchSide()
				pawn.SwitchSide()
			}
			b.cells[i+j*(NumSquares-Width)].piece = back
			b.cells[Width+i+j*(NumSquares-3*Width)].piece = pawn
		}
	}
	return b
}

// Cell returns the cell at sq. An out-of-range square is a programming error.
func (b *Board) Cell(sq Square) *Cell {
	if !sq.IsValid() {
		panic(fmt.Sprintf("board: square %d out of range", int(sq)))
	}
	return &b.cells[sq]
}

// PieceAt returns a copy of the piece at sq.
func (b *Board) PieceAt(sq Square) Piece {
	return b.Cell(sq).piece
}

// IsEmpty returns true if no active piece occupies sq.
func (b *Board) IsEmpty(sq Square) bool {
	return !b.Cell(sq).piece.Active
}

// Place puts p on sq, replacing any occupant.
func (b *Board) Place(sq Square, p Piece) {
	b.Cell(sq).SetPiece(p)
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Cell(sq).SetPiece(EmptyPiece())
}

// MovePiece relocates the piece on from to to, leaving from empty.
// Whatever occupied to is discarded.
func (b *Board) MovePiece(from, to Square) {
	b.Cell(from).MovePiece(b.Cell(to))
}

// AddScore adds v to side's material score.
func (b *Board) AddScore(side Side, v int) {
	b.scores[side.Index()] += v
}

// Score returns side's material score.
func (b *Board) Score(side Side) int {
	return b.scores[side.Index()]
}

// AddCapture appends p to the list of pieces captured by side.
func (b *Board) AddCapture(side Side, p Piece) {
	b.captures[side.Index()] = append(b.captures[side.Index()], p)
}

// Captures returns the pieces captured by side, in capture order.
func (b *Board) Captures(side Side) []Piece {
	caps := b.captures[side.Index()]
	out := make([]Piece, len(caps))
	copy(out, caps)
	return out
}

// SetEnPassantTarget records the square a pawn may capture onto en passant,
// or NoSquare.
func (b *Board) SetEnPassantTarget(sq Square) {
	b.enPassant = sq
}

// EnPassantTarget returns the pending en passant square, or NoSquare.
func (b *Board) EnPassantTarget() Square {
	return b.enPassant
}

// KingSquare returns the square of side's king, or NoSquare if absent.
func (b *Board) KingSquare(side Side) Square {
	for i := range b.cells {
		p := &b.cells[i].piece
		if p.Kind == King && p.IsOnSide(side) {
			return Square(i)
		}
	}
	return NoSquare
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := &Board{
		cells:     make([]Cell, len(b.cells)),
		scores:    b.scores,
		enPassant: b.enPassant,
	}
	copy(nb.cells, b.cells)
	for i := range b.captures {
		if b.captures[i] != nil {
			nb.captures[i] = append([]Piece(nil), b.captures[i]...)
		}
	}
	return nb
}

// String returns a diagram of the board with rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for row := Height - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d  ", row+1)
		for col := 0; col < Width; col++ {
			sb.WriteByte(b.PieceAt(NewSquare(row, col)).Letter())
			sb.WriteByte(' ')
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Score: White %d, Black %d\n", b.Score(White), b.Score(Black))
	fmt.Fprintf(&sb, "En passant: %s\n", b.enPassant)
	return sb.String()
}
