package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/game"
	"github.com/hailam/chessrules/internal/storage"
)

func run(t *testing.T, script string, opts ...Option) (*Console, string) {
	t.Helper()
	var out bytes.Buffer
	c := New(strings.NewReader(script), &out, opts...)
	require.NoError(t, c.Run())
	return c, out.String()
}

func TestMoveAndClick(t *testing.T) {
	c, out := run(t, "move e2 e4\nclick e7\nclick e5\n")

	assert.Equal(t, 2, c.MoveNumber())
	assert.True(t, c.Game().PieceAt(board.MustParseSquare("e4")).Is(board.Pawn))
	assert.True(t, c.Game().PieceAt(board.MustParseSquare("e5")).Is(board.Pawn))
	assert.Contains(t, out, "e7: e5 e6")
}

func TestIllegalInput(t *testing.T) {
	c, out := run(t, "move e2 e5\nmove z9 e4\nclick e7\nfrobnicate\nmove\n")

	assert.Zero(t, c.MoveNumber())
	assert.Contains(t, out, "illegal move e2-e5")
	assert.Contains(t, out, "nothing selected")
	assert.Contains(t, out, `unknown command "frobnicate"`)
	assert.Contains(t, out, "usage: move")
}

func TestMovesCommand(t *testing.T) {
	_, out := run(t, "moves g1\nmoves e4\n")
	assert.Contains(t, out, "g1: f3 h3")
	assert.Contains(t, out, "e4: no moves")
}

func TestCheckmateIsRecorded(t *testing.T) {
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	c, out := run(t, "move f2f3\nmove e7e5\nmove g2g4\nmove d8h4\nmove a2a3\nstats\n", WithStore(store))

	assert.Contains(t, out, "Checkmate, Black wins")
	assert.Contains(t, out, "the game is over")
	assert.Equal(t, 4, c.MoveNumber())

	stats, err := store.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.GamesPlayed)
	assert.Equal(t, 1, stats.BlackWins)
	assert.Equal(t, 4, stats.LongestGame)
	assert.Contains(t, out, "black wins:    1")
}

func TestPromotionFlow(t *testing.T) {
	script := strings.Join([]string{
		"move h2h4", "move g7g5",
		"move h4g5", "move f8g7",
		"move g5g6", "move e8f8",
		"move g6h7", "move a7a6",
		"move h7g8",
		"move a6a5",
		"promote k",
		"promote q",
		"score",
	}, "\n")
	c, out := run(t, script)

	assert.Contains(t, out, "White pawn reached g8")
	assert.Contains(t, out, "choose a promotion piece first")
	assert.Contains(t, out, "invalid promotion piece")
	assert.Contains(t, out, "Black is in check")
	assert.False(t, c.Game().IsPromotionPending())
	assert.True(t, c.Game().PieceAt(board.MustParseSquare("g8")).Is(board.Queen))
	assert.Equal(t, game.SideToMove(c.MoveNumber()), board.Black)
	assert.Contains(t, out, "White: 5 [p p n]")
}

func TestNewGameResets(t *testing.T) {
	c, _ := run(t, "move e2e4\nnew\n")
	assert.Zero(t, c.MoveNumber())
	assert.True(t, c.Game().PieceAt(board.MustParseSquare("e2")).Is(board.Pawn))
}

func TestQuitStopsReading(t *testing.T) {
	c, _ := run(t, "quit\nmove e2e4\n")
	assert.Zero(t, c.MoveNumber())
}

func TestColorOutput(t *testing.T) {
	_, plain := run(t, "board\n")
	assert.NotContains(t, plain, "\x1b[")

	_, colored := run(t, "board\n", WithColor(true))
	assert.Contains(t, colored, "\x1b[")
}
