package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/game"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	MoveColor      color.RGBA // legal move onto an empty square
	CaptureColor   color.RGBA // legal capture
	CheckColor     color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow
		MoveColor:      color.RGBA{60, 170, 60, 150},   // Green
		CaptureColor:   color.RGBA{210, 50, 50, 150},   // Red
		CheckColor:     color.RGBA{255, 100, 100, 180},
		Background:     color.RGBA{40, 44, 52, 255},
		TextColor:      color.RGBA{220, 220, 220, 255},
	}
}

// Renderer handles all board drawing.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	top        int // y of the board's top edge
	flipped    bool
}

// NewRenderer creates a renderer for a board drawn top pixels below the
// window's top edge.
func NewRenderer(boardSize, squareSize, top int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
		top:        top,
	}
}

// SetFlipped draws the board from Black's side when flipped is true.
func (r *Renderer) SetFlipped(flipped bool) {
	r.flipped = flipped
}

// Flipped reports whether Black is at the bottom.
func (r *Renderer) Flipped() bool {
	return r.flipped
}

// DrawBoard draws the squares and coordinates.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for i := 0; i < board.NumSquares; i++ {
		sq := board.Square(i)
		c := r.theme.LightSquare
		if (sq.Row()+sq.Col())%2 == 0 {
			c = r.theme.DarkSquare
		}
		r.fillSquare(screen, sq, c)
	}
	r.drawCoordinates(screen)
}

// drawCoordinates labels files along the bottom row and ranks along the
// left column.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := GetFaceWithSize(11)
	if face == nil {
		return
	}
	for i := 0; i < board.Width; i++ {
		bottom := board.NewSquare(0, i)
		left := board.NewSquare(i, 0)
		if r.flipped {
			bottom = board.NewSquare(board.Height-1, i)
			left = board.NewSquare(i, board.Width-1)
		}

		x, y := r.SquareToScreen(bottom)
		r.drawLabel(screen, face, string(rune('a'+i)), x+r.squareSize-10, y+r.squareSize-15, bottom)

		x, y = r.SquareToScreen(left)
		r.drawLabel(screen, face, fmt.Sprint(i+1), x+3, y+2, left)
	}
}

func (r *Renderer) drawLabel(screen *ebiten.Image, face *text.GoTextFace, s string, x, y int, sq board.Square) {
	// Use the opposite square colour so the label stays readable.
	c := r.theme.DarkSquare
	if (sq.Row()+sq.Col())%2 == 0 {
		c = r.theme.LightSquare
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// DrawHighlights marks the selected square and, when showMoves is set, the
// legal destinations of the selected piece.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, g *game.Game, showMoves bool) {
	selected := g.Selected()
	if selected == board.NoSquare {
		return
	}
	r.fillSquare(screen, selected, r.theme.SelectedSquare)
	if !showMoves {
		return
	}

	mover := g.PieceAt(selected)
	for _, sq := range g.Highlights() {
		capture := g.PieceAt(sq).Active ||
			(mover.Is(board.Pawn) && sq == g.EnPassantTarget())
		if capture {
			r.fillSquare(screen, sq, r.theme.CaptureColor)
		} else {
			r.drawMoveDot(screen, sq)
		}
	}
}

// DrawCheck highlights the square of a king in check.
func (r *Renderer) DrawCheck(screen *ebiten.Image, kingSq board.Square) {
	if kingSq != board.NoSquare {
		r.fillSquare(screen, kingSq, r.theme.CheckColor)
	}
}

func (r *Renderer) fillSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	x, y := r.SquareToScreen(sq)
	s := float32(r.squareSize)
	vector.DrawFilledRect(screen, float32(x), float32(y), s, s, c, false)
}

func (r *Renderer) drawMoveDot(screen *ebiten.Image, sq board.Square) {
	x, y := r.SquareToScreen(sq)
	half := float32(r.squareSize) / 2
	vector.DrawFilledCircle(screen, float32(x)+half, float32(y)+half, half*0.35, r.theme.MoveColor, false)
}

// DrawPieces draws every piece on the board, offsetting any square listed
// in shakes.
func (r *Renderer) DrawPieces(screen *ebiten.Image, g *game.Game, anims *AnimationManager) {
	for i := 0; i < board.NumSquares; i++ {
		sq := board.Square(i)
		p := g.PieceAt(sq)
		if !p.Active {
			continue
		}
		x, y := r.SquareToScreen(sq)
		if anims != nil {
			dx, dy := anims.GetShakeOffset(sq)
			x += int(dx)
			y += int(dy)
		}
		r.sprites.DrawPieceAt(screen, p, x, y)
	}
}

// DrawCaptureRow draws a side's captured pieces and score in a strip of the
// given height starting at y.
func (r *Renderer) DrawCaptureRow(screen *ebiten.Image, side board.Side, captured []board.Piece, score, y, height int) {
	size := height - 8
	x := 8
	for _, p := range captured {
		r.sprites.DrawPieceSized(screen, p, x, y+4, size)
		x += size * 3 / 4
	}

	face := GetRegularFace()
	if face == nil {
		return
	}
	label := fmt.Sprintf("%s  +%d", side, score)
	w, h := MeasureText(label, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.boardSize)-w-10, float64(y)+float64(height)/2-h/2)
	op.ColorScale.ScaleWithColor(r.theme.TextColor)
	text.Draw(screen, label, face, op)
}

// SquareToScreen returns the top-left pixel of sq.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	col, row := sq.Col(), sq.Row()
	if r.flipped {
		col = board.Width - 1 - col
	} else {
		row = board.Height - 1 - row
	}
	return col * r.squareSize, r.top + row*r.squareSize
}

// ScreenToSquare converts screen coordinates to a board square, or NoSquare
// outside the board.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	y -= r.top
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare
	}
	col := x / r.squareSize
	row := y / r.squareSize
	if r.flipped {
		col = board.Width - 1 - col
	} else {
		row = board.Height - 1 - row
	}
	return board.NewSquare(row, col)
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// Sprites returns the sprite manager.
func (r *Renderer) Sprites() *SpriteManager {
	return r.sprites
}
