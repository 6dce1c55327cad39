// Package audio plays short optional cues for dashboard transitions
// Every operation is a no-op when no audio device could be opened
package audio

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// CueType identifies a transition sound
type CueType uint8

const (
	CueSelect CueType = iota
	CueClear
	CueInspect
)

// tone is one segment of a cue
type tone struct {
	freq float64
	dur  time.Duration
}

var cueTones = map[CueType][]tone{
	CueSelect:  {{660, 40 * time.Millisecond}, {880, 60 * time.Millisecond}},
	CueClear:   {{440, 80 * time.Millisecond}},
	CueInspect: {{1320, 30 * time.Millisecond}},
}

// Player owns the speaker and mixes cues into it
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool

	muted atomic.Bool
}

// NewPlayer creates a player; volume is linear in [0, 1]
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(1, volume)),
	}
}

// Init opens the speaker. A failure leaves the player silent
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Available reports an open speaker
func (p *Player) Available() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues a cue; returns false when nothing will sound
func (p *Player) Play(c CueType) bool {
	if p.muted.Load() {
		return false
	}
	s := cueStreamer(c, p.volume)
	if s == nil {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return false
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return true
}

// ToggleMute flips mute, returns true if now muted
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted returns current mute state
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Close stops playback and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// cueStreamer builds the finite stream for a cue at a linear volume
func cueStreamer(c CueType, volume float64) beep.Streamer {
	tones, ok := cueTones[c]
	if !ok || volume <= 0 {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil
		}
		n := sampleRate.N(t.dur)
		parts = append(parts, newFade(beep.Take(n, sine), n))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   math.Log2(volume),
	}
}

// fade applies a linear decay over a segment so tones end without a click
type fade struct {
	s     beep.Streamer
	pos   int
	total int
}

func newFade(s beep.Streamer, total int) *fade {
	return &fade{s: s, total: max(total, 1)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := range n {
		gain := 1 - float64(f.pos)/float64(f.total)
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error {
	return f.s.Err()
}
