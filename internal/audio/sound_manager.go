// Package audio plays the runner's sound cues through beep's speaker.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-runner/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)

	jumpDuration  = 120 * time.Millisecond
	crashDuration = 400 * time.Millisecond
)

// SoundManager turns game events into short synthesized cues.
// Every method is safe to call before Initialize, after Cleanup and on a nil
// manager; they do nothing then.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing.
func (sm *SoundManager) Cleanup() {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Handle plays the cue for each event. Events without a cue are ignored.
func (sm *SoundManager) Handle(events []core.Event) {
	for _, ev := range events {
		switch ev {
		case core.EventJump:
			sm.PlayJump()
		case core.EventGameOver:
			sm.PlayCrash()
		}
	}
}

// PlayJump plays a short rising chirp.
func (sm *SoundManager) PlayJump() {
	sm.play(beep.Take(sampleRate.N(jumpDuration), NewJumpGenerator(sampleRate)))
}

// PlayCrash plays a falling buzz.
func (sm *SoundManager) PlayCrash() {
	sm.play(beep.Take(sampleRate.N(crashDuration), NewCrashGenerator(sampleRate)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SweepGenerator produces a tone whose pitch glides from one frequency to
// another over a fixed length, with a decaying envelope.
type SweepGenerator struct {
	sr        beep.SampleRate
	from, to  float64
	length    int
	harmonics bool
	volume    float64

	pos   int
	phase float64
}

// NewJumpGenerator creates the rising chirp used for jumps.
func NewJumpGenerator(sr beep.SampleRate) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: 400, to: 900, length: sr.N(jumpDuration), volume: 0.25}
}

// NewCrashGenerator creates the falling buzz used for game over.
func NewCrashGenerator(sr beep.SampleRate) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: 220, to: 60, length: sr.N(crashDuration), harmonics: true, volume: 0.3}
}

// Frequency returns the pitch at sample position pos.
func (g *SweepGenerator) Frequency(pos int) float64 {
	p := math.Min(float64(pos)/float64(g.length), 1)
	return g.from + (g.to-g.from)*p
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		// Integrate the phase so the glide has no clicks
		g.phase += 2 * math.Pi * g.Frequency(g.pos) / float64(g.sr)

		sample := math.Sin(g.phase)
		if g.harmonics {
			sample = 0.6*sample + 0.3*math.Sin(2*g.phase) + 0.1*math.Sin(3*g.phase)
		}

		// Short attack, then linear decay to silence at the end
		attack := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1)
		decay := math.Max(1-float64(g.pos)/float64(g.length), 0)
		sample *= g.volume * attack * decay

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
