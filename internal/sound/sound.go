// Package sound plays short synthesized effects for gameplay events.
package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Effect is a gameplay sound.
type Effect int

const (
	EffectFire Effect = iota
	EffectExplosion
	EffectGameOver
)

// Player plays effects without blocking the caller.
type Player interface {
	Play(e Effect)
}

// Silent is a Player that plays nothing.
type Silent struct{}

func (Silent) Play(Effect) {}

type tone struct {
	freq float64
	dur  time.Duration
}

// tones returns the notes that make up an effect, played in sequence.
func tones(e Effect) []tone {
	switch e {
	case EffectFire:
		return []tone{{880, 40 * time.Millisecond}}
	case EffectExplosion:
		return []tone{{110, 90 * time.Millisecond}, {70, 120 * time.Millisecond}}
	case EffectGameOver:
		return []tone{{440, 200 * time.Millisecond}, {330, 200 * time.Millisecond}, {220, 400 * time.Millisecond}}
	default:
		return nil
	}
}

// Speaker plays effects on the default audio device.
type Speaker struct {
	rate   beep.SampleRate
	volume float64 // Linear gain, 1.0 = unchanged
}

// New initializes the audio device. The game keeps running without sound
// when this fails, so callers usually fall back to Silent.
func New(volume float64) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Speaker{rate: sampleRate, volume: volume}, nil
}

// Open returns a Speaker when enabled and the device initializes, Silent otherwise.
// The error reports a failed initialization; the returned Player is always usable.
func Open(enabled bool, volume float64) (Player, error) {
	if !enabled {
		return Silent{}, nil
	}
	s, err := New(volume)
	if err != nil {
		return Silent{}, err
	}
	return s, nil
}

func (s *Speaker) Play(e Effect) {
	if st := s.stream(e); st != nil {
		speaker.Play(st)
	}
}

func (s *Speaker) stream(e Effect) beep.Streamer {
	var parts []beep.Streamer
	for _, t := range tones(e) {
		sine, err := generators.SineTone(s.rate, t.freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(s.rate.N(t.dur), sine))
	}
	if len(parts) == 0 {
		return nil
	}
	seq := beep.Seq(parts...)
	if s.volume <= 0 {
		return &effects.Volume{Streamer: seq, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: seq, Base: 2, Volume: math.Log2(s.volume), Silent: false}
}

// Close releases the audio device.
func (s *Speaker) Close() {
	speaker.Close()
}
