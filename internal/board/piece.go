package board

// Side is the owner of a piece.
type Side uint8

const (
	NoSide Side = iota
	White
	Black
)

// Other returns the opposing side. NoSide has no opponent.
func (s Side) Other() Side {
	switch s {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoSide
	}
}

// Index returns 0 for White and 1 for Black, for per-side arrays.
func (s Side) Index() int {
	if s == Black {
		return 1
	}
	return 0
}

// Forward returns the index delta of one step toward the opponent.
func (s Side) Forward() int {
	if s == Black {
		return -Width
	}
	return Width
}

// LastRow returns the row a pawn of this side promotes on.
func (s Side) LastRow() int {
	if s == Black {
		return 0
	}
	return Height - 1
}

// String returns the side name.
func (s Side) String() string {
	switch s {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Kind is the type of a chess piece.
type Kind uint8

const (
	Empty Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "Empty"
	}
}

// Char returns the lowercase letter for the kind, '.' for Empty.
func (k Kind) Char() byte {
	chars := []byte{'.', 'p', 'n', 'b', 'r', 'q', 'k'}
	if int(k) >= len(chars) {
		return '.'
	}
	return chars[k]
}

// KindFromChar converts a piece letter (either case) to a Kind.
func KindFromChar(c byte) (Kind, bool) {
	switch c {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return Empty, false
	}
}

// Directions holds the axes a sliding piece may travel along.
type Directions struct {
	Horizontal bool
	Vertical   bool
	Diagonal   bool
}

// Piece is a value describing one piece instance: its movement template from
// the catalog plus the per-instance move history.
//
// The offset slices are never modified in place; changes allocate a new slice,
// so copies of a Piece can share them safely.
type Piece struct {
	Kind   Kind
	Side   Side
	Active bool
	Name   string
	Value  int

	// Sliding movement.
	Range      int
	Directions Directions

	// Offset movement (Knight, Pawn).
	StrictMotion  bool
	StrictCapture bool
	StrictMoves   []int
	CaptureMoves  []int

	// Per-instance state.
	MoveCount      int
	LastMoveDelta  int
	DoubleMoveTurn int
	CanCastle      bool
}

// Is returns true if the piece is of the given kind.
func (p Piece) Is(k Kind) bool {
	return p.Kind == k
}

// IsOnSide returns true if the piece is active and belongs to side s.
func (p Piece) IsOnSide(s Side) bool {
	return p.Active && p.Side == s
}

// IsEnemyOf returns true if the piece is active and belongs to the opponent of s.
func (p Piece) IsEnemyOf(s Side) bool {
	return p.Active && p.Side != s
}

// SwitchSide flips the piece to the other side. Offset lists are defined
// relative to White's forward direction and are mirrored.
func (p *Piece) SwitchSide() {
	if !p.Active {
		return
	}
	p.Side = p.Side.Other()
	p.StrictMoves = negated(p.StrictMoves)
	p.CaptureMoves = negated(p.CaptureMoves)
}

// OnMove records that the piece moved by delta squares on half-move moveNum.
// A pawn loses its two-square advance after its first move.
func (p *Piece) OnMove(delta, moveNum int) {
	p.CanCastle = false
	if p.MoveCount == 0 && p.Kind == Pawn {
		if delta == 2*Width {
			p.DoubleMoveTurn = moveNum
		}
		if len(p.StrictMoves) > 1 {
			p.StrictMoves = append([]int{p.StrictMoves[0]}, p.StrictMoves[2:]...)
		}
	}
	p.MoveCount++
	p.LastMoveDelta = delta
}

// CanBeEnPassanted reports whether the piece is a pawn whose only move was a
// double step played on the half-move before moveNum.
func (p Piece) CanBeEnPassanted(moveNum int) bool {
	return p.Kind == Pawn && p.Active && p.MoveCount == 1 &&
		p.LastMoveDelta == 2*Width && moveNum == p.DoubleMoveTurn+1
}

// Letter returns the piece letter, uppercase for White, lowercase for Black,
// '.' for an empty square.
func (p Piece) Letter() byte {
	c := p.Kind.Char()
	if p.Side == White && c != '.' {
		c -= 'a' - 'A'
	}
	return c
}

// String returns a short description such as "White Knight".
func (p Piece) String() string {
	if !p.Active {
		return "Empty"
	}
	return p.Side.String() + " " + p.Kind.String()
}

func negated(v []int) []int {
	if v == nil {
		return nil
	}
	out := make([]int, len(v))
	for i, x := range v {
		out[i] = -x
	}
	return out
}
