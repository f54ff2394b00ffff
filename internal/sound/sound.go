// Package sound synthesizes short audio cues for game events.
package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the rate all cues are synthesized at.
const SampleRate = beep.SampleRate(44100)

// Cue identifies a game event with a sound.
type Cue int

const (
	CueTick Cue = iota
	CueHit
	CueMiss
	CueWin
)

// Player plays cues without blocking the caller.
type Player interface {
	Play(Cue)
}

// Nop is a Player that stays silent.
type Nop struct{}

// Play implements Player.
func (Nop) Play(Cue) {}

// SpeakerPlayer plays cues on the default audio device.
type SpeakerPlayer struct{}

// NewSpeakerPlayer initializes the audio device.
func NewSpeakerPlayer() (*SpeakerPlayer, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &SpeakerPlayer{}, nil
}

// Play implements Player.
func (p *SpeakerPlayer) Play(c Cue) {
	speaker.Play(Streamer(c))
}

// Close stops playback and releases the device.
func (p *SpeakerPlayer) Close() {
	speaker.Clear()
	speaker.Close()
}

// Streamer builds the sound for c.
func Streamer(c Cue) beep.Streamer {
	switch c {
	case CueHit:
		return tone(880, 80*time.Millisecond, waveSine, 0.4)
	case CueMiss:
		return tone(140, 250*time.Millisecond, waveSquare, 0.25)
	case CueWin:
		return beep.Seq(
			tone(523.25, 90*time.Millisecond, waveSine, 0.4),
			tone(659.25, 90*time.Millisecond, waveSine, 0.4),
			tone(783.99, 180*time.Millisecond, waveSine, 0.4),
		)
	default:
		return tone(660, 40*time.Millisecond, waveSine, 0.3)
	}
}

type wave int

const (
	waveSine wave = iota
	waveSquare
)

func tone(freq float64, d time.Duration, w wave, gain float64) beep.Streamer {
	osc := &oscillator{freq: freq, wave: w, total: SampleRate.N(d)}
	return &effects.Volume{
		Streamer: &fade{Streamer: osc, total: osc.total, release: SampleRate.N(10 * time.Millisecond)},
		Base:     2,
		Volume:   math.Log2(gain),
	}
}

type oscillator struct {
	freq  float64
	phase float64
	wave  wave
	pos   int
	total int
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.pos >= o.total {
		return 0, false
	}
	for i := range samples {
		if o.pos >= o.total {
			return i, true
		}
		var v float64
		switch o.wave {
		case waveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		default:
			v = math.Sin(2 * math.Pi * o.phase)
		}
		samples[i][0] = v
		samples[i][1] = v
		o.phase += o.freq / float64(SampleRate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fade ramps the last release samples down to silence to avoid clicks.
type fade struct {
	beep.Streamer
	pos     int
	total   int
	release int
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		remaining := f.total - f.pos
		if remaining < f.release && f.release > 0 {
			g := float64(remaining) / float64(f.release)
			samples[i][0] *= g
			samples[i][1] *= g
		}
		f.pos++
	}
	return n, ok
}
