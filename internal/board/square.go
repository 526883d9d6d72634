// Package board implements the chess board as a flat grid of cells.
package board

import "fmt"

// Board dimensions.
const (
	Width  = 8
	Height = 8
	// NumSquares is the number of cells on the board.
	NumSquares = Width * Height
	// MaxRange is the step limit used by sliding pieces.
	MaxRange = 8
)

// Square is a row-major cell index (0..NumSquares-1).
// Row 0 is White's back rank: a1=0, h1=7, a8=56, h8=63.
type Square int

// NoSquare marks the absence of a square.
const NoSquare Square = -1

// NewSquare creates a square from row and column (0-indexed).
func NewSquare(row, col int) Square {
	return Square(row*Width + col)
}

// Row returns the row of the square (0 is White's back rank).
func (sq Square) Row() int {
	return int(sq) / Width
}

// Col returns the column of the square (0 is the a-file).
func (sq Square) Col() int {
	return int(sq) % Width
}

// IsValid returns true if the square lies on the board.
func (sq Square) IsValid() bool {
	return sq >= 0 && sq < NumSquares
}

// String returns the square name (e.g., "e4"), or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.Col(), '1'+sq.Row())
}

// ParseSquare parses a square name (e.g., "e4").
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}

	col := int(s[0] - 'a')
	row := int(s[1] - '1')

	if col < 0 || col >= Width || row < 0 || row >= Height {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}

	return NewSquare(row, col), nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// NotWrapped reports whether a step between two squares stays on the board
// without crossing the left or right edge. Flat indexing would otherwise let
// h1+1 land on a2.
func NotWrapped(from, to Square) bool {
	return abs(to.Col()-from.Col()) < Width/2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
