package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessrules/internal/storage"
)

const (
	modalWidth  = 380
	modalHeight = 420
	modalPadX   = 24
	modalPadY   = 20
)

var (
	modalOverlay = color.RGBA{0, 0, 0, 180}
	modalBg      = color.RGBA{38, 40, 45, 255}
	modalHeader  = color.RGBA{48, 52, 58, 255}
	modalBorder  = color.RGBA{58, 62, 68, 255}
)

// SettingsModal edits the user preferences.
type SettingsModal struct {
	visible bool
	x, y    int

	usernameInput *TextInput
	volumeSlider  *Slider
	soundBox      *Checkbox
	highlightBox  *Checkbox
	flipBox       *Checkbox
	saveBtn       *Button
	cancelBtn     *Button

	// prefs is the copy being edited; fields the modal has no widget for
	// pass through unchanged.
	prefs  storage.UserPreferences
	onSave func(storage.UserPreferences) error
	onFail func(error)
}

// NewSettingsModal creates a hidden settings modal centred on screen.
func NewSettingsModal() *SettingsModal {
	sm := &SettingsModal{
		x: (ScreenWidth - modalWidth) / 2,
		y: (ScreenHeight - modalHeight) / 2,
	}

	contentX := sm.x + modalPadX
	contentW := modalWidth - modalPadX*2

	inputY := sm.y + 76
	sm.usernameInput = NewTextInput(contentX, inputY, contentW, 36, "Enter your name", storage.MaxUsernameLength)
	sm.volumeSlider = NewSlider(contentX, inputY+52, contentW, "Volume", 0.5)

	boxY := inputY + 130
	sm.soundBox = NewCheckbox(contentX, boxY, "Sound effects", true)
	sm.highlightBox = NewCheckbox(contentX, boxY+34, "Highlight legal moves", true)
	sm.flipBox = NewCheckbox(contentX, boxY+68, "Play from Black's side", false)

	const btnW, btnH, gap = 100, 38, 12
	btnY := sm.y + modalHeight - modalPadY - btnH
	sm.cancelBtn = NewButton(sm.x+modalWidth-modalPadX-btnW*2-gap, btnY, btnW, btnH, "Cancel", false, sm.Hide)
	sm.saveBtn = NewButton(sm.x+modalWidth-modalPadX-btnW, btnY, btnW, btnH, "Save", true, sm.save)
	return sm
}

// Show opens the modal on prefs. onSave is called with the edited copy; the
// modal stays open and reports through onFail when onSave returns an error.
func (sm *SettingsModal) Show(prefs *storage.UserPreferences, onSave func(storage.UserPreferences) error, onFail func(error)) {
	sm.visible = true
	sm.prefs = *prefs
	sm.onSave = onSave
	sm.onFail = onFail

	sm.usernameInput.Value = prefs.Username
	sm.volumeSlider.Value = prefs.Volume
	sm.soundBox.Checked = prefs.SoundEnabled
	sm.highlightBox.Checked = prefs.HighlightMoves
	sm.flipBox.Checked = prefs.FlipBoard
}

// Hide closes the modal without saving.
func (sm *SettingsModal) Hide() {
	sm.visible = false
}

// IsVisible returns true if the modal is visible.
func (sm *SettingsModal) IsVisible() bool {
	return sm.visible
}

func (sm *SettingsModal) save() {
	prefs := sm.prefs
	prefs.Username = sm.usernameInput.Value
	prefs.Volume = sm.volumeSlider.Value
	prefs.SoundEnabled = sm.soundBox.Checked
	prefs.HighlightMoves = sm.highlightBox.Checked
	prefs.FlipBoard = sm.flipBox.Checked

	if sm.onSave != nil {
		if err := sm.onSave(prefs); err != nil {
			if sm.onFail != nil {
				sm.onFail(err)
			}
			return
		}
	}
	sm.Hide()
}

// Update handles input while visible and reports whether the modal
// consumed it.
func (sm *SettingsModal) Update(input *InputHandler) bool {
	if !sm.visible {
		return false
	}

	typing := sm.usernameInput.Update(input)
	if !typing {
		switch {
		case IsKeyJustPressed(ebiten.KeyEscape):
			sm.Hide()
			return true
		case IsKeyJustPressed(ebiten.KeyEnter):
			sm.save()
			return true
		}
	}

	sm.volumeSlider.Update(input)
	sm.soundBox.Update(input)
	sm.highlightBox.Update(input)
	sm.flipBox.Update(input)
	sm.saveBtn.Update(input)
	sm.cancelBtn.Update(input)
	return true
}

// Draw renders the modal over a dimmed screen.
func (sm *SettingsModal) Draw(screen *ebiten.Image) {
	if !sm.visible {
		return
	}
	drawModalFrame(screen, sm.x, sm.y, modalWidth, modalHeight, "Settings")

	contentX := sm.x + modalPadX
	DrawSectionHeader(screen, "Player name", contentX, sm.usernameInput.Y-14)
	DrawSectionHeader(screen, "Board", contentX, sm.highlightBox.Y-10)

	sm.usernameInput.Draw(screen)
	sm.volumeSlider.Draw(screen)
	sm.soundBox.Draw(screen)
	sm.highlightBox.Draw(screen)
	sm.flipBox.Draw(screen)
	sm.saveBtn.Draw(screen)
	sm.cancelBtn.Draw(screen)
}

// drawModalFrame dims the screen and draws a titled dialog box.
func drawModalFrame(screen *ebiten.Image, x, y, w, h int, title string) {
	vector.DrawFilledRect(screen, 0, 0, ScreenWidth, ScreenHeight, modalOverlay, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), modalBg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, modalBorder, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 44, modalHeader, false)

	face := GetBoldFace()
	tw, th := MeasureText(title, face)
	drawText(screen, title, face, float64(x)+float64(w)/2-tw/2, float64(y)+22-th/2, textPrimary)
}
