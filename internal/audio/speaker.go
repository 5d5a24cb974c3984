package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/lane-runner/internal/config"
)

// Speaker plays cues on the local sound device through a shared mixer.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
}

// NewSpeaker creates a speaker. Call Init before playing.
func NewSpeaker(cfg config.AudioConfig) *Speaker {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &Speaker{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(rate),
		volume: cfg.Volume,
	}
}

// Init opens the sound device and starts the mixer.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play queues a cue on the mixer and returns immediately.
func (s *Speaker) Play(snd Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	stream := Synthesize(snd, s.rate)
	if stream == nil {
		return
	}

	speaker.Lock()
	s.mixer.Add(newVolume(stream, s.volume))
	speaker.Unlock()
}

// Close silences every playing cue.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// Open returns a Speaker for cfg, or Nop if audio is disabled or the device
// cannot be opened. The error, if any, explains the fallback.
func Open(cfg config.AudioConfig) (Player, func(), error) {
	if !cfg.Enabled {
		return Nop{}, func() {}, nil
	}
	sp := NewSpeaker(cfg)
	if err := sp.Init(); err != nil {
		return Nop{}, func() {}, err
	}
	return sp, sp.Close, nil
}
