package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/game"
	"github.com/hailam/chessrules/internal/rules"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastError
	ToastSuccess
)

var toastColors = map[ToastType]color.RGBA{
	ToastInfo:    {50, 100, 150, 220},
	ToastWarning: {180, 140, 20, 220},
	ToastError:   {180, 50, 50, 220},
	ToastSuccess: {50, 150, 50, 220},
}

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// alpha fades the toast in and out.
func (t *Toast) alpha(now time.Time) float64 {
	const fade = 0.2
	elapsed := now.Sub(t.StartTime).Seconds()
	remaining := t.Duration.Seconds() - elapsed
	return math.Max(0, math.Min(1, math.Min(elapsed/fade, remaining/fade)))
}

// shake is a damped horizontal wobble on one square.
type shake struct {
	square    board.Square
	startTime time.Time
	duration  time.Duration
	intensity float64
}

// AnimationManager manages piece animations.
type AnimationManager struct {
	shakes []*shake
}

// StartShake begins a shake animation on a square.
func (am *AnimationManager) StartShake(sq board.Square) {
	am.shakes = append(am.shakes, &shake{
		square:    sq,
		startTime: time.Now(),
		duration:  300 * time.Millisecond,
		intensity: 8.0,
	})
}

// Update removes expired animations.
func (am *AnimationManager) Update() {
	now := time.Now()
	active := am.shakes[:0]
	for _, s := range am.shakes {
		if now.Sub(s.startTime) < s.duration {
			active = append(active, s)
		}
	}
	am.shakes = active
}

// GetShakeOffset returns the current shake offset for a square.
func (am *AnimationManager) GetShakeOffset(sq board.Square) (float64, float64) {
	for _, s := range am.shakes {
		if s.square != sq {
			continue
		}
		progress := time.Since(s.startTime).Seconds() / s.duration.Seconds()
		if progress >= 1.0 {
			return 0, 0
		}
		amplitude := s.intensity * math.Exp(-5*progress)
		return amplitude * math.Sin(40*progress), 0
	}
	return 0, 0
}

// FeedbackManager turns engine events into sounds, toasts and animations.
// It implements game.Listener.
type FeedbackManager struct {
	toasts     []*Toast
	maxToasts  int
	animations *AnimationManager
	audio      *AudioManager
}

// NewFeedbackManager creates a feedback manager playing through audio.
func NewFeedbackManager(audio *AudioManager) *FeedbackManager {
	return &FeedbackManager{
		maxToasts:  3,
		animations: &AnimationManager{},
		audio:      audio,
	}
}

// Show displays a toast notification.
func (fm *FeedbackManager) Show(message string, toastType ToastType, duration time.Duration) {
	fm.toasts = append(fm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: time.Now(),
		Duration:  duration,
	})
	if len(fm.toasts) > fm.maxToasts {
		fm.toasts = fm.toasts[1:]
	}
}

// Update expires toasts and animations.
func (fm *FeedbackManager) Update() {
	now := time.Now()
	active := fm.toasts[:0]
	for _, t := range fm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	fm.toasts = active
	fm.animations.Update()
}

// Draw renders active toasts centred over the board.
func (fm *FeedbackManager) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	now := time.Now()
	y := float64(BoardTop + 40)
	for _, t := range fm.toasts {
		a := t.alpha(now)
		bg := toastColors[t.Type]
		bg.A = uint8(float64(bg.A) * a)
		fg := color.RGBA{255, 255, 255, uint8(255 * a)}

		const padding = 12.0
		w, h := MeasureText(t.Message, face)
		boxW, boxH := w+padding*2, h+padding*2
		x := float64(BoardSize)/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bg, false)
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+padding, y+padding)
		op.ColorScale.ScaleWithColor(fg)
		text.Draw(screen, t.Message, face, op)

		y += boxH + 8
	}
}

// Animations returns the animation manager for the renderer.
func (fm *FeedbackManager) Animations() *AnimationManager {
	return fm.animations
}

// MoveApplied plays the move sound and announces check or the end of the
// game. States are announced after the promotion when one is pending.
func (fm *FeedbackManager) MoveApplied(e game.MoveEvent) {
	fm.audio.Play(soundForMove(e))
	if e.Promotion {
		fm.Show("Choose a piece for the pawn", ToastInfo, 2*time.Second)
		return
	}
	fm.announce(e.State, e.Piece.Side)
}

// PromotionApplied announces the state after a promotion.
func (fm *FeedbackManager) PromotionApplied(e game.PromotionEvent) {
	fm.audio.Play(soundForPromotion(e))
	fm.announce(e.State, e.Piece.Side)
}

func (fm *FeedbackManager) announce(state rules.GameState, mover board.Side) {
	switch state {
	case rules.Check:
		fm.Show("Check!", ToastWarning, 2*time.Second)
	case rules.Checkmate:
		fm.Show(fmt.Sprintf("Checkmate! %s wins!", mover), ToastSuccess, 5*time.Second)
	case rules.Stalemate:
		fm.Show("Stalemate - Draw", ToastInfo, 5*time.Second)
	}
}

// OnInvalidMove shakes the piece that could not move to to.
func (fm *FeedbackManager) OnInvalidMove(from, to board.Square) {
	fm.animations.StartShake(from)
	fm.audio.Play(SoundInvalid)
}

// OnError shows a problem that needs the user's attention.
func (fm *FeedbackManager) OnError(message string) {
	fm.Show(message, ToastError, 3*time.Second)
}
