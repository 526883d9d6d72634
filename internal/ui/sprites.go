// Package ui implements the chess game UI using Ebitengine.
package ui

import (
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/chessrules/internal/board"
)

// pieceShapes holds the body of each piece drawn on a 45x45 canvas.
var pieceShapes = map[board.Kind]string{
	board.Pawn: `<circle cx="22.5" cy="13" r="5"/>
<polygon points="16,36 29,36 26.5,20 18.5,20"/>
<rect x="11" y="34" width="23" height="5"/>`,
	board.Knight: `<polygon points="13,37 36,37 35,21 31,11 24,7 21,10 12,19 12,24 15,25 20,22 22,24 15,32"/>
<circle cx="24" cy="14" r="1.5"/>`,
	board.Bishop: `<circle cx="22.5" cy="8" r="2.5"/>
<polygon points="16,33 29,33 27,19 22.5,11 18,19"/>
<rect x="10" y="33" width="25" height="5"/>`,
	board.Rook: `<polygon points="11,9 16,9 16,13 20,13 20,9 25,9 25,13 29,13 29,9 34,9 34,16 11,16"/>
<rect x="14" y="16" width="17" height="17"/>
<rect x="9" y="33" width="27" height="5"/>`,
	board.Queen: `<polygon points="9,14 15,25 18,11 22.5,24 27,11 30,25 36,14 33,33 12,33"/>
<circle cx="9" cy="12" r="2"/><circle cx="18" cy="9" r="2"/><circle cx="27" cy="9" r="2"/><circle cx="36" cy="12" r="2"/>
<rect x="11" y="33" width="23" height="5"/>`,
	board.King: `<rect x="21" y="4" width="3" height="12"/>
<rect x="17" y="7" width="11" height="3"/>
<polygon points="10,22 17,17 22.5,21 28,17 35,22 32,33 13,33"/>
<rect x="11" y="33" width="23" height="5"/>`,
}

// pieceSVG returns a complete SVG document for a piece of kind k and side s.
func pieceSVG(k board.Kind, s board.Side) string {
	fill, stroke := "#ffffff", "#000000"
	if s == board.Black {
		fill, stroke = "#000000", "#ffffff"
	}
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="45" height="45" viewBox="0 0 45 45">
<g fill="%s" stroke="%s" stroke-width="1.5" stroke-linejoin="round">
%s
</g>
</svg>`, fill, stroke, pieceShapes[k])
}

type spriteKey struct {
	kind board.Kind
	side board.Side
}

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[spriteKey]*ebiten.Image
	size        int     // Display size (e.g., 80)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
}

// NewSpriteManager creates a new sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[spriteKey]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
	}
	sm.loadPieces()
	return sm
}

// loadPieces rasterizes every piece once.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for _, side := range []board.Side{board.White, board.Black} {
		for kind := range pieceShapes {
			icon, err := oksvg.ReadIconStream(strings.NewReader(pieceSVG(kind, side)))
			if err != nil {
				log.Printf("Failed to parse %s %s sprite: %v", side, kind, err)
				continue
			}
			icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

			rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
			scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
			raster := rasterx.NewDasher(renderSize, renderSize, scanner)
			icon.Draw(raster, 1.0)

			sm.pieces[spriteKey{kind, side}] = ebiten.NewImageFromImage(rgba)
		}
	}
}

// GetPiece returns the sprite for a piece, or nil for an empty square.
func (sm *SpriteManager) GetPiece(p board.Piece) *ebiten.Image {
	if !p.Active {
		return nil
	}
	return sm.pieces[spriteKey{p.Kind, p.Side}]
}

// DrawPieceAt draws a piece at full size at the given pixel coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y int) {
	sm.DrawPieceSized(screen, p, x, y, sm.size)
}

// DrawPieceSized draws a piece scaled to size pixels.
func (sm *SpriteManager) DrawPieceSized(screen *ebiten.Image, p board.Piece, x, y, size int) {
	sprite := sm.GetPiece(p)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := float64(size) / (float64(sm.size) * sm.renderScale)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
