package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessrules/internal/board"
)

const (
	pickerCell = 72
	pickerPad  = 16
)

// pickerKeys maps keyboard shortcuts to promotion kinds.
var pickerKeys = map[ebiten.Key]board.Kind{
	ebiten.KeyQ: board.Queen,
	ebiten.KeyR: board.Rook,
	ebiten.KeyB: board.Bishop,
	ebiten.KeyN: board.Knight,
}

// PromotionPicker offers the promotion pieces for a pawn on its last row.
// It stays open until a piece is chosen.
type PromotionPicker struct {
	visible  bool
	side     board.Side
	x, y     int
	w, h     int
	hovered  int
	onChoose func(board.Kind)
}

// NewPromotionPicker creates a hidden picker.
func NewPromotionPicker() *PromotionPicker {
	n := len(board.PromotionKinds())
	p := &PromotionPicker{
		w:       n*pickerCell + (n+1)*pickerPad,
		h:       pickerCell + 44 + pickerPad*2,
		hovered: -1,
	}
	p.x = (BoardSize - p.w) / 2
	p.y = BoardTop + (BoardSize-p.h)/2
	return p
}

// Show opens the picker for side.
func (p *PromotionPicker) Show(side board.Side, onChoose func(board.Kind)) {
	p.visible = true
	p.side = side
	p.onChoose = onChoose
}

// IsVisible reports whether the picker is open.
func (p *PromotionPicker) IsVisible() bool {
	return p.visible
}

func (p *PromotionPicker) cellAt(i int) (int, int) {
	return p.x + pickerPad + i*(pickerCell+pickerPad), p.y + 44 + pickerPad
}

func (p *PromotionPicker) choose(k board.Kind) {
	p.visible = false
	if p.onChoose != nil {
		p.onChoose(k)
	}
}

// Update handles clicks and Q, R, B, N shortcuts.
func (p *PromotionPicker) Update(input *InputHandler) bool {
	if !p.visible {
		return false
	}
	for key, k := range pickerKeys {
		if IsKeyJustPressed(key) {
			p.choose(k)
			return true
		}
	}

	p.hovered = -1
	for i, k := range board.PromotionKinds() {
		x, y := p.cellAt(i)
		if !input.IsInBounds(x, y, pickerCell, pickerCell) {
			continue
		}
		p.hovered = i
		if input.IsLeftJustPressed() {
			p.choose(k)
		}
	}
	return true
}

// Draw renders the picker with one sprite per choice.
func (p *PromotionPicker) Draw(screen *ebiten.Image, sprites *SpriteManager) {
	if !p.visible {
		return
	}
	drawModalFrame(screen, p.x, p.y, p.w, p.h, "Promote pawn")

	for i, k := range board.PromotionKinds() {
		x, y := p.cellAt(i)
		bg := widgetBg
		if i == p.hovered {
			bg = widgetHoverBg
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), pickerCell, pickerCell, bg, false)
		if i == p.hovered {
			vector.StrokeRect(screen, float32(x), float32(y), pickerCell, pickerCell, 2, accentColor, false)
		}
		sprites.DrawPieceSized(screen, board.NewPiece(k, p.side), x+4, y+4, pickerCell-8)
	}
}
