package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessrules/internal/storage"
)

const (
	welcomeWidth  = 400
	welcomeHeight = 300
	welcomePadX   = 32
	welcomePadY   = 24
)

// WelcomeScreen asks for a player name on first launch.
type WelcomeScreen struct {
	visible bool
	x, y    int

	nameInput *TextInput
	startBtn  *Button

	suggested  string
	onComplete func(name string)
}

// NewWelcomeScreen creates a hidden welcome screen.
func NewWelcomeScreen() *WelcomeScreen {
	ws := &WelcomeScreen{
		x: (ScreenWidth - welcomeWidth) / 2,
		y: (ScreenHeight - welcomeHeight) / 2,
	}
	contentX := ws.x + welcomePadX
	contentW := welcomeWidth - welcomePadX*2
	ws.nameInput = NewTextInput(contentX, ws.y+130, contentW, 40, "", storage.MaxUsernameLength)

	const btnW, btnH = 160, 44
	ws.startBtn = NewButton(ws.x+(welcomeWidth-btnW)/2, ws.y+welcomeHeight-welcomePadY-btnH, btnW, btnH, "Start Playing", true, ws.start)
	return ws
}

// Show opens the screen with suggested as the placeholder name.
func (ws *WelcomeScreen) Show(suggested string, onComplete func(name string)) {
	ws.visible = true
	ws.suggested = suggested
	ws.onComplete = onComplete
	ws.nameInput.Value = ""
	ws.nameInput.Placeholder = suggested
}

// IsVisible returns true if the screen is visible.
func (ws *WelcomeScreen) IsVisible() bool {
	return ws.visible
}

func (ws *WelcomeScreen) start() {
	name := ws.nameInput.Value
	if name == "" {
		name = ws.suggested
	}
	ws.visible = false
	if ws.onComplete != nil {
		ws.onComplete(name)
	}
}

// Update handles input for the welcome screen.
func (ws *WelcomeScreen) Update(input *InputHandler) bool {
	if !ws.visible {
		return false
	}
	typing := ws.nameInput.Update(input)
	if !typing && IsKeyJustPressed(ebiten.KeyEnter) {
		ws.start()
		return true
	}
	ws.startBtn.Update(input)
	return true
}

// Draw renders the welcome screen.
func (ws *WelcomeScreen) Draw(screen *ebiten.Image) {
	if !ws.visible {
		return
	}
	drawModalFrame(screen, ws.x, ws.y, welcomeWidth, welcomeHeight, "Welcome")

	face := GetRegularFace()
	lines := []string{
		"Two players share this board.",
		"Pick a name for the stats screen.",
	}
	for i, line := range lines {
		w, _ := MeasureText(line, face)
		drawText(screen, line, face, float64(ws.x)+welcomeWidth/2-w/2, float64(ws.y+62+i*22), textSecondary)
	}

	DrawSectionHeader(screen, "Player name", ws.nameInput.X, ws.nameInput.Y-14)
	ws.nameInput.Draw(screen)
	ws.startBtn.Draw(screen)
}
