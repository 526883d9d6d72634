package game

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/notnil/chess"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/rules"
)

// moveTable lists legal destinations per origin square, both sorted.
type moveTable map[int][]int

func oracleMoves(g *chess.Game) moveTable {
	seen := make(map[[2]int]bool)
	table := make(moveTable)
	for _, m := range g.ValidMoves() {
		key := [2]int{int(m.S1()), int(m.S2())}
		if seen[key] {
			continue // one entry per promotion piece
		}
		seen[key] = true
		table[key[0]] = append(table[key[0]], key[1])
	}
	for _, to := range table {
		sort.Ints(to)
	}
	return table
}

func ourMoves(g *Game, moveNum int) moveTable {
	g.validator.SetMoveNumber(moveNum)
	table := make(moveTable)
	for from, moves := range g.validator.LegalMoves(SideToMove(moveNum)) {
		for _, to := range moves.Squares() {
			table[int(from)] = append(table[int(from)], int(to))
		}
	}
	return table
}

var promoKinds = map[chess.PieceType]board.Kind{
	chess.Queen:  board.Queen,
	chess.Rook:   board.Rook,
	chess.Bishop: board.Bishop,
	chess.Knight: board.Knight,
}

// TestAgreesWithReferenceEngine plays seeded random games and compares the
// legal move sets and terminal states against github.com/notnil/chess.
func TestAgreesWithReferenceEngine(t *testing.T) {
	const (
		games    = 12
		maxPlies = 300
	)
	if testing.Short() {
		t.Skip("skipping differential games in short mode")
	}

	for seed := int64(1); seed <= games; seed++ {
		rng := rand.New(rand.NewSource(seed))
		ref := chess.NewGame()
		g := New()

		for ply := 0; ply < maxPlies; ply++ {
			want := oracleMoves(ref)
			got := ourMoves(g, ply)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("seed %d ply %d: legal moves differ (-reference +ours):\n%s\n%s", seed, ply, diff, g)
			}

			valid := ref.ValidMoves()
			m := valid[rng.Intn(len(valid))]
			if err := ref.Move(m); err != nil {
				t.Fatalf("seed %d ply %d: reference rejected %s: %v", seed, ply, m, err)
			}

			state := g.Move(board.Square(m.S1()), board.Square(m.S2()), ply)
			if state == rules.NoTurn {
				t.Fatalf("seed %d ply %d: %s rejected\n%s", seed, ply, m, g)
			}
			if m.Promo() != chess.NoPieceType {
				var err error
				state, err = g.ChoosePromotion(promoKinds[m.Promo()])
				if err != nil {
					t.Fatalf("seed %d ply %d: %v", seed, ply, err)
				}
			} else if g.IsPromotionPending() {
				t.Fatalf("seed %d ply %d: unexpected promotion after %s", seed, ply, m)
			}

			switch ref.Method() {
			case chess.Checkmate:
				if state != rules.Checkmate {
					t.Fatalf("seed %d ply %d: state %v, reference says checkmate", seed, ply, state)
				}
			case chess.Stalemate:
				if state != rules.Stalemate {
					t.Fatalf("seed %d ply %d: state %v, reference says stalemate", seed, ply, state)
				}
			default:
				if state.IsTerminal() {
					t.Fatalf("seed %d ply %d: state %v, reference game goes on", seed, ply, state)
				}
			}

			// Draws by repetition, move count or material end the
			// reference game but are not rules of this engine.
			if ref.Outcome() != chess.NoOutcome {
				break
			}
		}
	}
}
