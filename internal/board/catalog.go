package board

// templates holds the immutable movement template for each kind.
// It is built once and only ever copied out.
var templates = buildTemplates()

func buildTemplates() map[Kind]Piece {
	return map[Kind]Piece{
		Empty: {
			Kind: Empty,
			Name: "empty",
		},
		Pawn: {
			Kind:         Pawn,
			Side:         White,
			Active:       true,
			Name:         "pawn",
			Value:        1,
			Range:        1,
			StrictMotion: true,
			StrictMoves:  []int{Width, 2 * Width},
			CaptureMoves: []int{Width - 1, Width + 1},
		},
		Knight: {
			Kind:          Knight,
			Side:          White,
			Active:        true,
			Name:          "knight",
			Value:         3,
			Range:         MaxRange,
			StrictMotion:  true,
			StrictCapture: true,
			StrictMoves: []int{
				-2*Width - 1, -2*Width + 1, -Width - 2, -Width + 2,
				Width - 2, Width + 2, 2*Width - 1, 2*Width + 1,
			},
		},
		Bishop: {
			Kind:       Bishop,
			Side:       White,
			Active:     true,
			Name:       "bishop",
			Value:      3,
			Range:      MaxRange,
			Directions: Directions{Diagonal: true},
		},
		Rook: {
			Kind:       Rook,
			Side:       White,
			Active:     true,
			Name:       "rook",
			Value:      5,
			Range:      MaxRange,
			Directions: Directions{Horizontal: true, Vertical: true},
		},
		Queen: {
			Kind:       Queen,
			Side:       White,
			Active:     true,
			Name:       "queen",
			Value:      9,
			Range:      MaxRange,
			Directions: Directions{Horizontal: true, Vertical: true, Diagonal: true},
		},
		King: {
			Kind:       King,
			Side:       White,
			Active:     true,
			Name:       "king",
			Value:      0,
			Range:      1,
			Directions: Directions{Horizontal: true, Vertical: true, Diagonal: true},
			CanCastle:  true,
		},
	}
}

// CreatePiece returns a fresh White piece of the given kind.
func CreatePiece(k Kind) Piece {
	p, ok := templates[k]
	if !ok {
		p = templates[Empty]
	}
	p.DoubleMoveTurn = -1
	return p
}

// NewPiece returns a fresh piece of the given kind owned by side.
func NewPiece(k Kind, s Side) Piece {
	p := CreatePiece(k)
	if s == Black {
		p.SwitchSide()
	}
	return p
}

// EmptyPiece returns the piece value of an unoccupied cell.
func EmptyPiece() Piece {
	return CreatePiece(Empty)
}

// CreateStandardBackRow returns the back rank from the a-file to the h-file.
func CreateStandardBackRow() []Piece {
	return []Piece{
		CreatePiece(Rook),
		CreatePiece(Knight),
		CreatePiece(Bishop),
		CreatePiece(Queen),
		CreatePiece(King),
		CreatePiece(Bishop),
		CreatePiece(Knight),
		CreatePiece(Rook),
	}
}

// PromotionKinds returns the kinds a pawn may be promoted to.
func PromotionKinds() []Kind {
	return []Kind{Rook, Bishop, Knight, Queen}
}

// IsPromotionKind reports whether k is a valid promotion choice.
func IsPromotionKind(k Kind) bool {
	for _, pk := range PromotionKinds() {
		if pk == k {
			return true
		}
	}
	return false
}
