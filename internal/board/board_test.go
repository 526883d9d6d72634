package board

import (
	"strings"
	"testing"
)

func TestSquareArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		sq       Square
		row, col int
	}{
		{"a1", 0, 0, 0},
		{"h1", 7, 0, 7},
		{"e2", 12, 1, 4},
		{"e4", 28, 3, 4},
		{"d5", 35, 4, 3},
		{"d7", 51, 6, 3},
		{"h8", 63, 7, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.sq.Row() != tc.row || tc.sq.Col() != tc.col {
				t.Errorf("%s: got row %d col %d, want row %d col %d",
					tc.name, tc.sq.Row(), tc.sq.Col(), tc.row, tc.col)
			}
			if tc.sq.String() != tc.name {
				t.Errorf("String() = %q, want %q", tc.sq.String(), tc.name)
			}
			parsed, err := ParseSquare(tc.name)
			if err != nil {
				t.Fatalf("ParseSquare(%q): %v", tc.name, err)
			}
			if parsed != tc.sq {
				t.Errorf("ParseSquare(%q) = %d, want %d", tc.name, parsed, tc.sq)
			}
		})
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, s := range []string{"", "e", "e9", "i1", "a0", "e44"} {
		if _, err := ParseSquare(s); err == nil {
			t.Errorf("ParseSquare(%q) expected error", s)
		}
	}
}

func TestNotWrapped(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{"h1", "a2", false}, // h1+1 would land on a2
		{"a2", "h1", false},
		{"g1", "e2", true}, // knight-sized column jump
		{"e4", "e5", true},
		{"a1", "e1", false},
		{"b1", "d1", true},
	}

	for _, tc := range tests {
		got := NotWrapped(MustParseSquare(tc.from), MustParseSquare(tc.to))
		if got != tc.want {
			t.Errorf("NotWrapped(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestCatalog(t *testing.T) {
	values := map[Kind]int{Pawn: 1, Knight: 3, Bishop: 3, Rook: 5, Queen: 9, King: 0}
	for k, v := range values {
		p := CreatePiece(k)
		if p.Value != v {
			t.Errorf("%s value = %d, want %d", k, p.Value, v)
		}
		if p.Side != White || !p.Active {
			t.Errorf("%s should be an active White piece", k)
		}
	}

	if e := CreatePiece(Empty); e.Active || e.Side != NoSide {
		t.Errorf("empty piece should be inactive with no side, got %+v", e)
	}

	if !CreatePiece(King).CanCastle {
		t.Error("fresh king should be able to castle")
	}

	row := CreateStandardBackRow()
	want := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	if len(row) != len(want) {
		t.Fatalf("back row has %d pieces, want %d", len(row), len(want))
	}
	for i, k := range want {
		if row[i].Kind != k {
			t.Errorf("back row[%d] = %s, want %s", i, row[i].Kind, k)
		}
	}
}

func TestCreatePieceDoesNotAliasTemplate(t *testing.T) {
	p := CreatePiece(Pawn)
	p.OnMove(2*Width, 0)
	p.SwitchSide()

	fresh := CreatePiece(Pawn)
	if len(fresh.StrictMoves) != 2 || fresh.StrictMoves[0] != Width {
		t.Errorf("template was modified: %v", fresh.StrictMoves)
	}
}

func TestSwitchSideMirrorsOffsets(t *testing.T) {
	p := NewPiece(Pawn, Black)
	if p.Side != Black {
		t.Fatalf("side = %s, want Black", p.Side)
	}
	if p.StrictMoves[0] != -Width || p.StrictMoves[1] != -2*Width {
		t.Errorf("black pawn strict moves = %v", p.StrictMoves)
	}
	if p.CaptureMoves[0] != -(Width-1) || p.CaptureMoves[1] != -(Width+1) {
		t.Errorf("black pawn capture moves = %v", p.CaptureMoves)
	}
}

func TestPawnOnMove(t *testing.T) {
	p := CreatePiece(Pawn)
	p.OnMove(2*Width, 4)

	if p.DoubleMoveTurn != 4 {
		t.Errorf("DoubleMoveTurn = %d, want 4", p.DoubleMoveTurn)
	}
	if len(p.StrictMoves) != 1 {
		t.Errorf("two-step advance should be removed, got %v", p.StrictMoves)
	}
	if !p.CanBeEnPassanted(5) {
		t.Error("pawn should be capturable en passant on the next half-move")
	}
	if p.CanBeEnPassanted(6) {
		t.Error("en passant window should have closed")
	}

	p.OnMove(Width, 6)
	if p.CanBeEnPassanted(7) {
		t.Error("pawn that moved twice is never capturable en passant")
	}
}

func TestKingLosesCastlingOnMove(t *testing.T) {
	k := CreatePiece(King)
	k.OnMove(1, 0)
	if k.CanCastle {
		t.Error("king should lose castling rights after moving")
	}
}

func TestStandardLayout(t *testing.T) {
	b := New()

	tests := []struct {
		sq   string
		kind Kind
		side Side
	}{
		{"a1", Rook, White},
		{"e1", King, White},
		{"d1", Queen, White},
		{"e2", Pawn, White},
		{"e7", Pawn, Black},
		{"e8", King, Black},
		{"d8", Queen, Black},
		{"h8", Rook, Black},
		{"e4", Empty, NoSide},
	}

	for _, tc := range tests {
		p := b.PieceAt(MustParseSquare(tc.sq))
		if p.Kind != tc.kind || p.Side != tc.side {
			t.Errorf("%s: got %s, want %s %s", tc.sq, p, tc.side, tc.kind)
		}
	}

	if b.KingSquare(White) != MustParseSquare("e1") {
		t.Errorf("white king at %s", b.KingSquare(White))
	}
	if b.KingSquare(Black) != MustParseSquare("e8") {
		t.Errorf("black king at %s", b.KingSquare(Black))
	}
	if b.EnPassantTarget() != NoSquare {
		t.Errorf("en passant target = %s, want none", b.EnPassantTarget())
	}
}

func TestMovePieceLeavesSourceEmpty(t *testing.T) {
	b := New()
	from, to := MustParseSquare("g1"), MustParseSquare("f3")
	b.MovePiece(from, to)

	if !b.IsEmpty(from) {
		t.Errorf("%s should be empty", from)
	}
	if p := b.PieceAt(to); p.Kind != Knight || p.Side != White {
		t.Errorf("%s holds %s, want White Knight", to, p)
	}
}

func TestScoresAndCaptures(t *testing.T) {
	b := NewEmpty()
	b.AddScore(White, 3)
	b.AddCapture(White, NewPiece(Knight, Black))
	b.AddScore(Black, 1)
	b.AddCapture(Black, NewPiece(Pawn, White))

	if b.Score(White) != 3 || b.Score(Black) != 1 {
		t.Errorf("scores = %d/%d, want 3/1", b.Score(White), b.Score(Black))
	}

	caps := b.Captures(White)
	if len(caps) != 1 || caps[0].Kind != Knight {
		t.Errorf("white captures = %v", caps)
	}

	// The returned slice is a copy.
	caps[0] = EmptyPiece()
	if b.Captures(White)[0].Kind != Knight {
		t.Error("Captures should return a copy")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := New()
	c := b.Clone()
	c.MovePiece(MustParseSquare("e2"), MustParseSquare("e4"))
	c.Cell(MustParseSquare("e4")).Piece().OnMove(2*Width, 0)
	c.AddCapture(White, NewPiece(Pawn, Black))

	if b.IsEmpty(MustParseSquare("e2")) {
		t.Error("original board changed after moving on clone")
	}
	if len(b.Captures(White)) != 0 {
		t.Error("original captures changed")
	}
	if b.PieceAt(MustParseSquare("e2")).MoveCount != 0 {
		t.Error("original piece state changed")
	}
}

func TestOutOfRangePanics(t *testing.T) {
	b := NewEmpty()
	for _, sq := range []Square{NoSquare, NumSquares, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Cell(%d) should panic", sq)
				}
			}()
			b.Cell(sq)
		}()
	}
}

func TestString(t *testing.T) {
	s := New().String()
	if !strings.Contains(s, "8  r n b q k b n r") {
		t.Errorf("diagram missing black back rank:\n%s", s)
	}
	if !strings.Contains(s, "1  R N B Q K B N R") {
		t.Errorf("diagram missing white back rank:\n%s", s)
	}
}
