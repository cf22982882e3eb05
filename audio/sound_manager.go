package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	bumpFreq     = 90.0
	bumpDuration = 90 * time.Millisecond
)

// Player is the cue surface the frame observer drives
type Player interface {
	PlayBump()
	StartScrape()
	StopScrape()
}

// SoundManager plays movement cues through the speaker
// Every method is a no-op until Initialize succeeds, so the game runs without audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	scrape      *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.scrape != nil {
		speaker.Lock()
		sm.scrape.Paused = true
		speaker.Unlock()
		sm.scrape = nil
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlayBump plays a short low thud
func (sm *SoundManager) PlayBump() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	tone, err := generators.SineTone(sampleRate, bumpFreq)
	if err != nil {
		return
	}
	s := beep.Take(sampleRate.N(bumpDuration), NewDecayEnvelope(tone, sampleRate, 30))
	speaker.Lock()
	sm.mixer.Add(&effects.Volume{Streamer: s, Base: 2, Volume: -1})
	speaker.Unlock()
}

// StartScrape starts the looping box-drag sound; repeated calls keep one loop
func (sm *SoundManager) StartScrape() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()

	if sm.scrape != nil {
		sm.scrape.Paused = false
		return
	}
	sm.scrape = &beep.Ctrl{Streamer: NewScrapeGenerator(sampleRate, 1)}
	sm.mixer.Add(sm.scrape)
}

// StopScrape pauses the drag loop
func (sm *SoundManager) StopScrape() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.scrape == nil {
		return
	}
	speaker.Lock()
	sm.scrape.Paused = true
	speaker.Unlock()
}

// DecayEnvelope scales a streamer by exp(-rate*t)
type DecayEnvelope struct {
	s    beep.Streamer
	sr   beep.SampleRate
	rate float64
	pos  int
}

func NewDecayEnvelope(s beep.Streamer, sr beep.SampleRate, rate float64) *DecayEnvelope {
	return &DecayEnvelope{s: s, sr: sr, rate: rate}
}

func (e *DecayEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(e.pos) / float64(e.sr)
		g := math.Exp(-e.rate * t)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *DecayEnvelope) Err() error {
	return e.s.Err()
}

// ScrapeGenerator produces filtered noise over a low rumble, pulsing like a
// crate dragged across boards; it never ends
type ScrapeGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
	prev float64
}

// NewScrapeGenerator creates a scrape generator; seed fixes the noise sequence
func NewScrapeGenerator(sr beep.SampleRate, seed int64) *ScrapeGenerator {
	return &ScrapeGenerator{sr: sr, seed: seed}
}

func (g *ScrapeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		// One-pole low-pass
		g.prev = 0.9*g.prev + 0.1*noise

		rumble := 0.2 * math.Sin(2*math.Pi*55*t)
		pulse := 0.6 + 0.4*math.Sin(2*math.Pi*6*t)
		sample := 0.25 * pulse * (g.prev*2 + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ScrapeGenerator) Err() error {
	return nil
}
