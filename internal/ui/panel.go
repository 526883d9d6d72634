package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessrules/internal/board"
)

const (
	PanelPadding = 20
	ButtonHeight = 40
)

var (
	statusCheck    = color.RGBA{255, 120, 120, 255}
	statusGameOver = color.RGBA{255, 200, 80, 255}
	statusPromote  = color.RGBA{100, 180, 255, 255}
)

// Panel is the side panel with game controls, status and statistics.
type Panel struct {
	game *Game

	newGameBtn  *Button
	flipBtn     *Button
	settingsBtn *Button
}

// NewPanel creates a new panel for the given game.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}

	x := BoardSize + PanelPadding
	w := PanelWidth - PanelPadding*2
	half := (w - 10) / 2
	y := PanelPadding + 8

	p.newGameBtn = NewButton(x, y, w, ButtonHeight, "New Game", true, g.NewGameAction)
	y += ButtonHeight + 10
	p.flipBtn = NewButton(x, y, half, ButtonHeight, "Flip Board", false, g.FlipAction)
	p.settingsBtn = NewButton(x+half+10, y, half, ButtonHeight, "Settings", false, g.ShowSettings)
	return p
}

// HandleInput updates the panel buttons and reports whether one was clicked.
func (p *Panel) HandleInput(input *InputHandler) bool {
	clicked := false
	for _, b := range []*Button{p.newGameBtn, p.flipBtn, p.settingsBtn} {
		if b.Update(input) {
			clicked = true
		}
	}
	return clicked
}

// AnyButtonHovered reports whether the cursor is over a panel button.
func (p *Panel) AnyButtonHovered() bool {
	return p.newGameBtn.hovered || p.flipBtn.hovered || p.settingsBtn.hovered
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, BoardSize, 0, PanelWidth, ScreenHeight, panelBg, false)

	p.newGameBtn.Draw(screen)
	p.flipBtn.Draw(screen)
	p.settingsBtn.Draw(screen)

	x := BoardSize + PanelPadding
	w := PanelWidth - PanelPadding*2
	y := p.flipBtn.Y + ButtonHeight + 24

	DrawDivider(screen, x, y, w)
	y += 20
	y = p.drawStatus(screen, x, y)

	DrawDivider(screen, x, y, w)
	y += 20
	y = p.drawScores(screen, x, y)

	DrawDivider(screen, x, y, w)
	y += 20
	p.drawStats(screen, x, y)

	p.drawKeyHints(screen, x)
}

func (p *Panel) drawStatus(screen *ebiten.Image, x, y int) int {
	g := p.game
	DrawSectionHeader(screen, "Status", x, y)
	y += 16

	status, c := g.StatusText(), color.Color(textPrimary)
	switch {
	case g.GameOver():
		c = statusGameOver
	case g.engine.IsPromotionPending():
		c = statusPromote
	case g.engine.InCheck(g.SideToMove()):
		c = statusCheck
	}
	drawText(screen, status, GetBoldFace(), float64(x), float64(y), c)
	y += 28

	drawText(screen, fmt.Sprintf("Move %d", g.moveNum/2+1), GetRegularFace(), float64(x), float64(y), textSecondary)
	return y + 32
}

func (p *Panel) drawScores(screen *ebiten.Image, x, y int) int {
	DrawSectionHeader(screen, "Material", x, y)
	y += 16
	face := GetRegularFace()
	for _, side := range []board.Side{board.White, board.Black} {
		line := fmt.Sprintf("%s: %d", side, p.game.engine.Score(side))
		drawText(screen, line, face, float64(x), float64(y), textPrimary)
		y += 22
	}
	return y + 16
}

func (p *Panel) drawStats(screen *ebiten.Image, x, y int) {
	g := p.game
	face := GetRegularFace()
	DrawSectionHeader(screen, "Statistics for "+g.prefs.Username, x, y)
	y += 16

	s := g.stats
	lines := []string{
		fmt.Sprintf("Games played: %d", s.GamesPlayed),
		fmt.Sprintf("White wins: %d (%.0f%%)", s.WhiteWins, s.WinRate(board.White)*100),
		fmt.Sprintf("Black wins: %d (%.0f%%)", s.BlackWins, s.WinRate(board.Black)*100),
		fmt.Sprintf("Stalemates: %d", s.Stalemates),
		fmt.Sprintf("Longest game: %d plies", s.LongestGame),
	}
	for _, line := range lines {
		drawText(screen, line, face, float64(x), float64(y), textSecondary)
		y += 22
	}
}

func (p *Panel) drawKeyHints(screen *ebiten.Image, x int) {
	hint := "N new game   F flip   M mute"
	drawText(screen, hint, GetFaceWithSize(12), float64(x), ScreenHeight-32, textMuted)
}
