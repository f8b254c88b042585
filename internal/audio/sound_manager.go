package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate  = beep.SampleRate(44100)
	ambienceBPM = 100
)

// SoundManager plays effects through the system speaker.
// Every method is safe to call before Initialize and after Close; calls
// are no-ops in that case.
type SoundManager struct {
	mu             sync.Mutex
	mixer          *beep.Mixer
	ambience       *beep.Ctrl
	volume         float64
	ambienceVolume float64
	initialized    bool
}

// NewSoundManager creates a sound manager with effect and ambience gains in
// [0, 1].
func NewSoundManager(volume, ambienceVolume float64) *SoundManager {
	return &SoundManager{
		mixer:          &beep.Mixer{},
		volume:         volume,
		ambienceVolume: ambienceVolume,
	}
}

// Initialize opens the audio device and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open output device: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close stops the ambience and drops every queued effect.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.ambience != nil {
		sm.ambience.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.ambience = nil
	sm.initialized = false
}

// PlayJump plays a short rising chirp.
func (sm *SoundManager) PlayJump() {
	sm.play(newVolume(NewChirpGenerator(sampleRate, 420, 880, 120*time.Millisecond), sm.volume))
}

// PlayCollision plays a falling noisy crash.
func (sm *SoundManager) PlayCollision() {
	sm.play(newVolume(NewCrashGenerator(sampleRate, 400*time.Millisecond), sm.volume))
}

// StartAmbience starts or resumes the background loop.
func (sm *SoundManager) StartAmbience() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if sm.ambience != nil {
		sm.ambience.Paused = false
		return
	}

	streamer := newVolume(NewAmbienceGenerator(sampleRate, ambienceBPM), sm.ambienceVolume)
	sm.ambience = &beep.Ctrl{Streamer: streamer, Paused: false}
	sm.mixer.Add(sm.ambience)
}

// StopAmbience pauses the background loop.
func (sm *SoundManager) StopAmbience() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.ambience == nil {
		return
	}

	speaker.Lock()
	sm.ambience.Paused = true
	speaker.Unlock()
}

// AmbiencePlaying reports whether the background loop is audible.
func (sm *SoundManager) AmbiencePlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.ambience != nil && !sm.ambience.Paused
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
