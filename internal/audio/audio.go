// Package audio is the playback capability effects use for their sound
// cues. A Manager owns the speaker and a mixer; sounds are synthesised
// streamers or decoded WAV chunks. A zero Manager that was never
// initialised plays nothing, which is the documented fallback for effects
// whose audio is optional.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Manager owns the speaker and mixes concurrent sounds.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewManager creates an uninitialised audio manager.
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer. Safe to call more
// than once.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Play adds a streamer to the mixer. A no-op when the speaker never opened.
func (m *Manager) Play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// PlayChomp plays the short bite sound the worms use on collisions.
func (m *Manager) PlayChomp() {
	m.Play(Chomp())
}

// Cleanup silences the mixer and closes the speaker.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.mixer.Clear()
	speaker.Close()
	m.initialized = false
}
