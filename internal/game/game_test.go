package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/rules"
)

// setup builds a board from tokens such as "Ke1 ke8 Pe2". Uppercase letters
// are White, lowercase Black. Pawns off their home row count as moved.
func setup(t *testing.T, layout string) *board.Board {
	t.Helper()
	b := board.NewEmpty()
	for _, tok := range strings.Fields(layout) {
		kind, ok := board.KindFromChar(tok[0])
		if !ok || len(tok) != 3 {
			t.Fatalf("bad token %q", tok)
		}
		side := board.Black
		if tok[0] >= 'A' && tok[0] <= 'Z' {
			side = board.White
		}
		p := board.NewPiece(kind, side)
		at := sq(t, tok[1:])
		home := 1
		if side == board.Black {
			home = board.Height - 2
		}
		if kind == board.Pawn && at.Row() != home {
			p.OnMove(board.Width, -2)
		}
		b.Place(at, p)
	}
	return b
}

func sq(t *testing.T, s string) board.Square {
	t.Helper()
	square, err := board.ParseSquare(s)
	if err != nil {
		t.Fatal(err)
	}
	return square
}

// playAll plays "e2e4"-style moves starting at half-move 0 and returns the
// state after the last one.
func playAll(t *testing.T, g *Game, moves ...string) rules.GameState {
	t.Helper()
	state := rules.None
	for i, m := range moves {
		state = g.Move(sq(t, m[:2]), sq(t, m[2:]), i)
		if state == rules.NoTurn {
			t.Fatalf("move %d (%s) was rejected", i, m)
		}
	}
	return state
}

type recorder struct {
	moves  []MoveEvent
	promos []PromotionEvent
}

func (r *recorder) MoveApplied(e MoveEvent)           { r.moves = append(r.moves, e) }
func (r *recorder) PromotionApplied(e PromotionEvent) { r.promos = append(r.promos, e) }

func TestSelectThenMove(t *testing.T) {
	g := New()

	if got := g.SelectOrMove(sq(t, "e2"), 0); got != rules.NoTurn {
		t.Fatalf("selecting returned %v, want NoTurn", got)
	}
	if g.Phase() != Selected || g.Selected() != sq(t, "e2") {
		t.Fatalf("phase %v selected %v after selecting e2", g.Phase(), g.Selected())
	}
	want := []board.Square{sq(t, "e3"), sq(t, "e4")}
	if diff := cmp.Diff(want, g.Highlights()); diff != "" {
		t.Errorf("highlights mismatch (-want +got):\n%s", diff)
	}

	if got := g.SelectOrMove(sq(t, "e4"), 0); got != rules.None {
		t.Fatalf("moving returned %v, want None", got)
	}
	if !g.PieceAt(sq(t, "e2")).Is(board.Empty) {
		t.Error("e2 is not empty after e2-e4")
	}
	if p := g.PieceAt(sq(t, "e4")); !p.Is(board.Pawn) || p.Side != board.White {
		t.Errorf("e4 holds %v, want White Pawn", p)
	}
	if got := g.EnPassantTarget(); got != sq(t, "e3") {
		t.Errorf("en passant target = %v, want e3", got)
	}
	if g.Phase() != Idle || g.Highlights() != nil {
		t.Errorf("selection not cleared after move: phase %v", g.Phase())
	}

	// Any other move clears the en passant target.
	g.Move(sq(t, "g8"), sq(t, "f6"), 1)
	if got := g.EnPassantTarget(); got != board.NoSquare {
		t.Errorf("en passant target = %v after a knight move, want none", got)
	}
}

func TestSelectionCancels(t *testing.T) {
	tests := []struct {
		name   string
		first  string
		second string
	}{
		{"illegal destination", "e2", "e5"},
		{"same square", "e2", "e2"},
		{"own piece", "e2", "d2"},
		{"enemy piece out of reach", "g1", "g8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			before := g.String()
			g.SelectOrMove(sq(t, tt.first), 0)
			if got := g.SelectOrMove(sq(t, tt.second), 0); got != rules.NoTurn {
				t.Errorf("got %v, want NoTurn", got)
			}
			if g.Phase() != Idle || g.Selected() != board.NoSquare {
				t.Errorf("phase %v selected %v, want idle", g.Phase(), g.Selected())
			}
			if diff := cmp.Diff(before, g.String()); diff != "" {
				t.Errorf("board changed (-before +after):\n%s", diff)
			}
		})
	}
}

func TestSelectRespectsSideToMove(t *testing.T) {
	g := New()
	if g.SelectOrMove(sq(t, "e7"), 0); g.Phase() != Idle {
		t.Error("White to move selected a Black pawn")
	}
	if g.SelectOrMove(sq(t, "e4"), 0); g.Phase() != Idle {
		t.Error("selected an empty square")
	}
	if g.SelectOrMove(board.NoSquare, 0); g.Phase() != Idle {
		t.Error("selected an invalid square")
	}
	if g.SelectOrMove(sq(t, "e7"), 1); g.Phase() != Selected {
		t.Error("Black to move could not select its pawn")
	}
}

func TestCaptureUpdatesScoreAndCaptures(t *testing.T) {
	g := New(WithBoard(setup(t, "Ke1 ke8 Nd4 re6")))
	if got := g.Move(sq(t, "d4"), sq(t, "e6"), 0); got != rules.None {
		t.Fatalf("capture returned %v", got)
	}
	if got := g.Score(board.White); got != 5 {
		t.Errorf("White score = %d, want 5", got)
	}
	if got := g.Score(board.Black); got != 0 {
		t.Errorf("Black score = %d, want 0", got)
	}
	var kinds []board.Kind
	for _, p := range g.Captures(board.White) {
		kinds = append(kinds, p.Kind)
	}
	if diff := cmp.Diff([]board.Kind{board.Rook}, kinds); diff != "" {
		t.Errorf("captures mismatch (-want +got):\n%s", diff)
	}
}

func TestFoolsMate(t *testing.T) {
	g := New()
	state := playAll(t, g, "f2f3", "e7e5", "g2g4", "d8h4")
	if state != rules.Checkmate {
		t.Errorf("state = %v, want Checkmate", state)
	}
	if !g.InCheck(board.White) {
		t.Error("White king is not in check")
	}
}

func TestCastlingMovesRook(t *testing.T) {
	tests := []struct {
		name             string
		layout           string
		from, to         string
		moveNum          int
		rookFrom, rookTo string
	}{
		{"white kingside", "Ke1 Rh1 ke8", "e1", "g1", 0, "h1", "f1"},
		{"white queenside", "Ke1 Ra1 ke8", "e1", "c1", 0, "a1", "d1"},
		{"black kingside", "Ke1 ke8 rh8", "e8", "g8", 1, "h8", "f8"},
		{"black queenside", "Ke1 ke8 ra8", "e8", "c8", 1, "a8", "d8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(WithBoard(setup(t, tt.layout)))
			if got := g.Move(sq(t, tt.from), sq(t, tt.to), tt.moveNum); got == rules.NoTurn {
				t.Fatal("castling rejected")
			}
			if !g.PieceAt(sq(t, tt.to)).Is(board.King) {
				t.Errorf("no king on %s", tt.to)
			}
			if !g.PieceAt(sq(t, tt.rookFrom)).Is(board.Empty) {
				t.Errorf("%s still occupied", tt.rookFrom)
			}
			if !g.PieceAt(sq(t, tt.rookTo)).Is(board.Rook) {
				t.Errorf("no rook on %s", tt.rookTo)
			}
		})
	}
}

func TestCastlingLostAfterKingMoves(t *testing.T) {
	g := New(WithBoard(setup(t, "Ke1 Rh1 ke8")))
	g.Move(sq(t, "e1"), sq(t, "f1"), 0)
	g.Move(sq(t, "e8"), sq(t, "d8"), 1)
	g.Move(sq(t, "f1"), sq(t, "e1"), 2)
	g.Move(sq(t, "d8"), sq(t, "e8"), 3)
	if g.LegalMoves(sq(t, "e1"), 4).Contains(sq(t, "g1")) {
		t.Error("king can castle after having moved")
	}
}

func TestEnPassantCapture(t *testing.T) {
	g := New()
	playAll(t, g, "e2e4", "a7a6", "e4e5", "d7d5")

	mk, ok := g.LegalMoves(sq(t, "e5"), 4).Kind(sq(t, "d6"))
	if !ok || mk != rules.EnPassant {
		t.Fatalf("e5xd6 kind = %v (%v), want en passant", mk, ok)
	}
	if got := g.Move(sq(t, "e5"), sq(t, "d6"), 4); got == rules.NoTurn {
		t.Fatal("en passant rejected")
	}
	if !g.PieceAt(sq(t, "d5")).Is(board.Empty) {
		t.Error("captured pawn still on d5")
	}
	if p := g.PieceAt(sq(t, "d6")); !p.Is(board.Pawn) || p.Side != board.White {
		t.Errorf("d6 holds %v, want White Pawn", p)
	}
	if got := g.Score(board.White); got != 1 {
		t.Errorf("White score = %d, want 1", got)
	}
}

func TestEnPassantExpires(t *testing.T) {
	g := New()
	playAll(t, g, "e2e4", "a7a6", "e4e5", "d7d5", "h2h3", "h7h6")
	if g.LegalMoves(sq(t, "e5"), 6).Contains(sq(t, "d6")) {
		t.Error("en passant still available a full move later")
	}
}

func TestPromotion(t *testing.T) {
	rec := &recorder{}
	g := New(WithBoard(setup(t, "Ke1 ke8 Pa7")), WithListener(rec))

	g.Move(sq(t, "a7"), sq(t, "a8"), 0)
	if !g.IsPromotionPending() {
		t.Fatal("promotion not pending after reaching the last row")
	}
	if g.PromotionSide() != board.White || g.PromotionSquare() != sq(t, "a8") {
		t.Errorf("promotion %v on %v, want White on a8", g.PromotionSide(), g.PromotionSquare())
	}
	if len(rec.moves) != 1 || !rec.moves[0].Promotion {
		t.Errorf("move event did not flag the promotion: %+v", rec.moves)
	}

	// Selection is suspended until a piece is chosen.
	if got := g.SelectOrMove(sq(t, "e8"), 1); got != rules.NoTurn || g.Phase() != AwaitingPromotion {
		t.Errorf("selection during promotion: state %v phase %v", got, g.Phase())
	}
	if got := g.Move(sq(t, "e8"), sq(t, "d8"), 1); got != rules.NoTurn {
		t.Errorf("move during promotion returned %v", got)
	}

	for _, k := range []board.Kind{board.King, board.Pawn, board.Empty} {
		if _, err := g.ChoosePromotion(k); !errors.Is(err, ErrInvalidPromotion) {
			t.Errorf("ChoosePromotion(%v) err = %v, want ErrInvalidPromotion", k, err)
		}
	}
	if !g.IsPromotionPending() {
		t.Fatal("invalid choice cleared the promotion")
	}

	state, err := g.ChoosePromotion(board.Queen)
	if err != nil {
		t.Fatal(err)
	}
	if state != rules.Check {
		t.Errorf("state after promoting to queen = %v, want Check", state)
	}
	if p := g.PieceAt(sq(t, "a8")); !p.Is(board.Queen) || p.Side != board.White {
		t.Errorf("a8 holds %v, want White Queen", p)
	}
	if g.IsPromotionPending() || g.PromotionSquare() != board.NoSquare {
		t.Error("promotion still pending after choosing")
	}
	if len(rec.promos) != 1 || rec.promos[0].State != rules.Check {
		t.Errorf("promotion events = %+v", rec.promos)
	}

	if _, err := g.ChoosePromotion(board.Queen); !errors.Is(err, ErrNoPromotionPending) {
		t.Errorf("second ChoosePromotion err = %v, want ErrNoPromotionPending", err)
	}
	if g.SelectOrMove(sq(t, "e8"), 1); g.Phase() != Selected {
		t.Error("selection not resumed after promotion")
	}
}

func TestBlackPromotesOnFirstRow(t *testing.T) {
	g := New(WithBoard(setup(t, "Ke1 ke8 Ph2 pa2")))
	g.Move(sq(t, "h2"), sq(t, "h3"), 0)
	g.Move(sq(t, "a2"), sq(t, "a1"), 1)
	if g.PromotionSide() != board.Black {
		t.Fatalf("promotion side = %v, want Black", g.PromotionSide())
	}
	state, err := g.ChoosePromotion(board.Knight)
	if err != nil {
		t.Fatal(err)
	}
	if state != rules.None {
		t.Errorf("state = %v, want None", state)
	}
	if p := g.PieceAt(sq(t, "a1")); !p.Is(board.Knight) || p.Side != board.Black {
		t.Errorf("a1 holds %v, want Black Knight", p)
	}
}

func TestMoveEvents(t *testing.T) {
	rec := &recorder{}
	g := New(WithListener(Listeners{rec}))
	playAll(t, g, "e2e4", "d7d5", "e4d5")

	if len(rec.moves) != 3 {
		t.Fatalf("got %d move events, want 3", len(rec.moves))
	}
	if rec.moves[0].Kind != rules.DoubleStep || rec.moves[0].IsCapture() {
		t.Errorf("first event = %+v", rec.moves[0])
	}
	last := rec.moves[2]
	if !last.IsCapture() || last.Captured.Kind != board.Pawn || last.MoveNumber != 2 {
		t.Errorf("capture event = %+v", last)
	}
}
