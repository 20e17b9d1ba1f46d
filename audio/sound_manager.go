package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/constants"
)

// SoundManager plays one-shot effects through a shared beep mixer
// Without an audio device it stays silent and every call is a no-op
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
	played      atomic.Int64

	// Output sink; nil means the process speaker
	sink func(beep.Streamer)
}

// NewSoundManager creates a sound manager, nil cfg selects the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize opens the speaker and starts the mixer
// Calling it twice is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.sink = func(s beep.Streamer) {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
	sm.initialized = true
	return nil
}

// Cleanup drops queued sounds and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.sink = nil
	sm.initialized = false
}

// SetMuted toggles output without closing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// IsMuted reports whether effects are suppressed
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Played returns how many effects reached the output
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}

// Play starts an effect; ignored when muted, uninitialized or unknown
func (sm *SoundManager) Play(st SoundType) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	sink := sm.sink
	sm.mu.Unlock()
	if sink == nil {
		return
	}

	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return
	}
	sink(s)
	sm.played.Add(1)
}
