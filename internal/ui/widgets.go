package ui

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	panelBg       = color.RGBA{32, 35, 40, 255}
	dividerColor  = color.RGBA{60, 64, 70, 255}
	accentColor   = color.RGBA{76, 175, 120, 255}
	textPrimary   = color.RGBA{235, 235, 240, 255}
	textSecondary = color.RGBA{170, 175, 185, 255}
	textMuted     = color.RGBA{120, 125, 135, 255}
	buttonBg      = color.RGBA{50, 54, 60, 255}
	buttonHoverBg = color.RGBA{65, 70, 78, 255}

	widgetBg          = color.RGBA{48, 52, 58, 255}
	widgetBorder      = color.RGBA{68, 72, 78, 255}
	widgetFocusBorder = color.RGBA{76, 175, 120, 255}
	widgetHoverBg     = color.RGBA{65, 70, 78, 255}
	inputTextColor    = color.RGBA{240, 240, 245, 255}
	inputPlaceholder  = color.RGBA{120, 125, 135, 255}
)

// TextInput is an editable text field.
type TextInput struct {
	X, Y, W, H  int
	Value       string
	Placeholder string
	MaxLength   int
	focused     bool
	hovered     bool
	cursorBlink int
}

// NewTextInput creates a new text input widget.
func NewTextInput(x, y, w, h int, placeholder string, maxLen int) *TextInput {
	return &TextInput{
		X: x, Y: y, W: w, H: h,
		Placeholder: placeholder,
		MaxLength:   maxLen,
	}
}

// Update consumes typed characters while focused. It reports whether the
// input had focus this frame.
func (ti *TextInput) Update(input *InputHandler) bool {
	ti.hovered = input.IsInBounds(ti.X, ti.Y, ti.W, ti.H)
	if input.IsLeftJustPressed() {
		ti.focused = ti.hovered
	}
	if !ti.focused {
		return false
	}

	ti.cursorBlink = (ti.cursorBlink + 1) % 60

	for _, c := range ebiten.AppendInputChars(nil) {
		if ti.MaxLength == 0 || utf8.RuneCountInString(ti.Value) < ti.MaxLength {
			ti.Value += string(c)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && ti.Value != "" {
		_, size := utf8.DecodeLastRuneInString(ti.Value)
		ti.Value = ti.Value[:len(ti.Value)-size]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ti.focused = false
	}
	return true
}

// Draw renders the text input.
func (ti *TextInput) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(ti.X), float32(ti.Y), float32(ti.W), float32(ti.H), widgetBg, false)

	border := widgetBorder
	switch {
	case ti.focused:
		border = widgetFocusBorder
	case ti.hovered:
		border = accentColor
	}
	vector.StrokeRect(screen, float32(ti.X), float32(ti.Y), float32(ti.W), float32(ti.H), 2, border, false)

	face := GetRegularFace()
	if face == nil {
		return
	}
	s, c := ti.Value, color.Color(inputTextColor)
	if s == "" {
		s, c = ti.Placeholder, inputPlaceholder
	}
	_, h := MeasureText(s, face)
	textX := float64(ti.X + 10)
	drawText(screen, s, face, textX, float64(ti.Y+ti.H/2)-h/2, c)

	if ti.focused && ti.cursorBlink < 30 {
		w, _ := MeasureText(ti.Value, face)
		vector.DrawFilledRect(screen, float32(textX+w+2), float32(ti.Y+8), 2, float32(ti.H-16), inputTextColor, false)
	}
}

// IsFocused returns true if the input is focused.
func (ti *TextInput) IsFocused() bool {
	return ti.focused
}

// Checkbox is a toggleable checkbox.
type Checkbox struct {
	X, Y    int
	Label   string
	Checked bool
	hovered bool
}

// NewCheckbox creates a new checkbox.
func NewCheckbox(x, y int, label string, checked bool) *Checkbox {
	return &Checkbox{X: x, Y: y, Label: label, Checked: checked}
}

// Update toggles the box on click and reports whether it changed.
func (cb *Checkbox) Update(input *InputHandler) bool {
	cb.hovered = input.IsInBounds(cb.X, cb.Y, 200, 24)
	if input.IsLeftJustPressed() && cb.hovered {
		cb.Checked = !cb.Checked
		return true
	}
	return false
}

// Draw renders the checkbox.
func (cb *Checkbox) Draw(screen *ebiten.Image) {
	x, y := float32(cb.X), float32(cb.Y)
	const size = 20

	bg := widgetBg
	if cb.hovered {
		bg = widgetHoverBg
	}
	vector.DrawFilledRect(screen, x, y, size, size, bg, false)

	border := widgetBorder
	if cb.hovered || cb.Checked {
		border = accentColor
	}
	vector.StrokeRect(screen, x, y, size, size, 2, border, false)

	if cb.Checked {
		vector.StrokeLine(screen, x+4, y+10, x+8, y+14, 2, accentColor, false)
		vector.StrokeLine(screen, x+8, y+14, x+16, y+6, 2, accentColor, false)
	}

	face := GetRegularFace()
	_, h := MeasureText(cb.Label, face)
	c := textSecondary
	if cb.Checked {
		c = textPrimary
	}
	drawText(screen, cb.Label, face, float64(cb.X+30), float64(cb.Y+10)-h/2, c)
}

// Slider picks a value in [0, 1] by dragging along a track.
type Slider struct {
	X, Y, W int
	Label   string
	Value   float64
	hovered bool
}

// NewSlider creates a slider of width w.
func NewSlider(x, y, w int, label string, value float64) *Slider {
	return &Slider{X: x, Y: y, W: w, Label: label, Value: value}
}

// Update moves the knob while the left button is held over the track.
func (s *Slider) Update(input *InputHandler) bool {
	s.hovered = input.IsInBounds(s.X, s.Y+16, s.W, 20)
	if !s.hovered || !IsMouseHeld() {
		return false
	}
	mx, _ := input.MousePosition()
	v := float64(mx-s.X) / float64(s.W)
	s.Value = min(1, max(0, v))
	return true
}

// Draw renders the label, track and knob.
func (s *Slider) Draw(screen *ebiten.Image) {
	drawText(screen, s.Label, GetRegularFace(), float64(s.X), float64(s.Y), textSecondary)

	trackY := float32(s.Y + 26)
	vector.DrawFilledRect(screen, float32(s.X), trackY-2, float32(s.W), 4, widgetBorder, false)
	fill := float32(float64(s.W) * s.Value)
	vector.DrawFilledRect(screen, float32(s.X), trackY-2, fill, 4, accentColor, false)

	knob := textSecondary
	if s.hovered {
		knob = textPrimary
	}
	vector.DrawFilledCircle(screen, float32(s.X)+fill, trackY, 7, knob, false)
}

// IsMouseHeld reports whether the left button is down.
func IsMouseHeld() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// Button is a clickable button used by the panel and modals.
type Button struct {
	X, Y, W, H int
	Label      string
	Primary    bool
	OnClick    func()
	hovered    bool
}

// NewButton creates a new button.
func NewButton(x, y, w, h int, label string, primary bool, onClick func()) *Button {
	return &Button{
		X: x, Y: y, W: w, H: h,
		Label:   label,
		Primary: primary,
		OnClick: onClick,
	}
}

// Update fires OnClick on a click inside the button.
func (b *Button) Update(input *InputHandler) bool {
	b.hovered = input.IsInBounds(b.X, b.Y, b.W, b.H)
	if input.IsLeftJustPressed() && b.hovered && b.OnClick != nil {
		b.OnClick()
		return true
	}
	return false
}

// Draw renders the button.
func (b *Button) Draw(screen *ebiten.Image) {
	bg, border := buttonBg, widgetBorder
	switch {
	case b.Primary && b.hovered:
		bg, border = color.RGBA{96, 195, 140, 255}, color.RGBA{116, 215, 160, 255}
	case b.Primary:
		bg, border = accentColor, color.RGBA{56, 155, 100, 255}
	case b.hovered:
		bg, border = buttonHoverBg, accentColor
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, border, false)

	face := GetRegularFace()
	w, h := MeasureText(b.Label, face)
	drawText(screen, b.Label, face, float64(b.X)+float64(b.W)/2-w/2, float64(b.Y)+float64(b.H)/2-h/2, textPrimary)
}

// DrawDivider draws a horizontal divider line.
func DrawDivider(screen *ebiten.Image, x, y, w int) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 1, dividerColor, false)
}

// DrawSectionHeader draws a muted section label centred on y.
func DrawSectionHeader(screen *ebiten.Image, label string, x, y int) {
	face := GetRegularFace()
	_, h := MeasureText(label, face)
	drawText(screen, label, face, float64(x), float64(y)-h/2, textMuted)
}
