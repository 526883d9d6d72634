package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/hailam/chessrules/internal/game"
	"github.com/hailam/chessrules/internal/rules"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundCheck
	SoundCastle
	SoundPromote
	SoundInvalid
	SoundGameEnd
)

const sampleRate = 44100

// AudioManager plays procedural sound effects.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager.
func NewAudioManager() *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte),
		enabled: true,
		volume:  0.5,
	}
	am.generateSounds()
	return am
}

func (am *AudioManager) generateSounds() {
	am.sounds[SoundMove] = click(440, 0.08, 0.3)
	am.sounds[SoundCapture] = click(330, 0.12, 0.5)
	am.sounds[SoundCheck] = synth(0.15, 0.4, attackDecay, 880)
	am.sounds[SoundCastle] = concat(click(400, 0.06, 0.3), silence(0.05), click(440, 0.06, 0.24))
	am.sounds[SoundPromote] = concat(synth(0.08, 0.3, attackDecay, 523.25), synth(0.12, 0.3, attackDecay, 783.99))
	am.sounds[SoundInvalid] = synth(0.1, 0.15, linearDecay, 150, 300)
	am.sounds[SoundGameEnd] = synth(0.4, 0.5, fadeInOut, 261.63, 329.63, 392.00)
}

// envelope maps progress in [0, 1) to an amplitude factor.
type envelope func(progress float64) float64

func attackDecay(p float64) float64 {
	if p < 0.1 {
		return p / 0.1
	}
	return 1 - (p-0.1)/0.9
}

func linearDecay(p float64) float64 { return 1 - p }

func fadeInOut(p float64) float64 {
	switch {
	case p < 0.1:
		return p / 0.1
	case p > 0.7:
		return (1 - p) / 0.3
	}
	return 1
}

// synth mixes sine waves at freqs under env and returns 16-bit stereo PCM.
func synth(duration, amplitude float64, env envelope, freqs ...float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		v := 0.0
		for _, f := range freqs {
			v += math.Sin(2 * math.Pi * f * t)
		}
		v = v / float64(len(freqs)) * env(t/duration) * amplitude
		putSample(data, i, v)
	}
	return data
}

// click is a short percussive knock with a little noise on top.
func click(freq, duration, amplitude float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		noise := (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		putSample(data, i, (math.Sin(2*math.Pi*freq*t)+noise)*math.Exp(-t*30)*amplitude)
	}
	return data
}

func silence(duration float64) []byte {
	return make([]byte, int(sampleRate*duration)*4)
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// putSample writes v to both channels of frame i.
func putSample(data []byte, i int, v float64) {
	v = math.Max(-1, math.Min(1, v))
	s := int16(v * 32767)
	data[i*4] = byte(s)
	data[i*4+1] = byte(s >> 8)
	data[i*4+2] = byte(s)
	data[i*4+3] = byte(s >> 8)
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}
	data, ok := am.sounds[sound]
	if !ok {
		return
	}
	// A new player per call lets sounds overlap.
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// soundForMove picks the effect for an applied move.
func soundForMove(e game.MoveEvent) SoundType {
	switch {
	case e.State.IsTerminal() && !e.Promotion:
		return SoundGameEnd
	case e.State == rules.Check && !e.Promotion:
		return SoundCheck
	case e.Kind.IsCastle():
		return SoundCastle
	case e.IsCapture():
		return SoundCapture
	}
	return SoundMove
}

// soundForPromotion picks the effect for a completed promotion.
func soundForPromotion(e game.PromotionEvent) SoundType {
	switch {
	case e.State.IsTerminal():
		return SoundGameEnd
	case e.State == rules.Check:
		return SoundCheck
	}
	return SoundPromote
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// SetVolume sets the audio volume (0.0 to 1.0).
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = math.Max(0, math.Min(1, volume))
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
