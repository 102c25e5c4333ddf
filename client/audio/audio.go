package audio

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cbodonnell/drizzle/pkg/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate is the sample rate of the audio context. All streams are
// resampled to this rate when they are decoded.
const SampleRate = 44100

// Manager owns the audio context and the players for the game's sound
// effects and music. Missing or unreadable audio files disable the
// corresponding sound instead of failing startup.
type Manager struct {
	ctx   *audio.Context
	catch *audio.Player
	miss  *audio.Player
	music *audio.Player
	muted bool
}

type NewManagerOptions struct {
	// Dir is the directory containing the audio assets.
	Dir string
	// Enabled disables all audio when false.
	Enabled bool
}

// NewManager creates a new Manager and loads the audio assets from
// the configured directory.
func NewManager(opts NewManagerOptions) *Manager {
	m := &Manager{}
	if !opts.Enabled {
		return m
	}
	m.ctx = audio.NewContext(SampleRate)
	m.catch = loadEffect(m.ctx, filepath.Join(opts.Dir, "drop.wav"))
	m.miss = loadEffect(m.ctx, filepath.Join(opts.Dir, "miss.wav"))
	m.music = loadMusic(m.ctx, filepath.Join(opts.Dir, "rain.ogg"))
	return m
}

func loadEffect(ctx *audio.Context, path string) *audio.Player {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("Failed to read audio file %s: %v", path, err)
		return nil
	}
	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		log.Warn("Failed to decode audio file %s: %v", path, err)
		return nil
	}
	player, err := audio.NewPlayer(ctx, stream)
	if err != nil {
		log.Warn("Failed to create audio player for %s: %v", path, err)
		return nil
	}
	return player
}

func loadMusic(ctx *audio.Context, path string) *audio.Player {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("Failed to read audio file %s: %v", path, err)
		return nil
	}
	stream, err := vorbis.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		log.Warn("Failed to decode audio file %s: %v", path, err)
		return nil
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := audio.NewPlayer(ctx, loop)
	if err != nil {
		log.Warn("Failed to create audio player for %s: %v", path, err)
		return nil
	}
	return player
}

// StartMusic starts the background music loop.
func (m *Manager) StartMusic() {
	if m.music == nil || m.muted {
		return
	}
	m.music.Play()
}

// StopMusic pauses the background music loop.
func (m *Manager) StopMusic() {
	if m.music == nil {
		return
	}
	m.music.Pause()
}

// PlayCatch plays the droplet catch effect.
func (m *Manager) PlayCatch() {
	m.play(m.catch)
}

// PlayMiss plays the droplet miss effect.
func (m *Manager) PlayMiss() {
	m.play(m.miss)
}

func (m *Manager) play(p *audio.Player) {
	if p == nil || m.muted {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Debug("Failed to rewind audio player: %v", err)
		return
	}
	p.Play()
}

// SetMuted mutes or unmutes all audio.
func (m *Manager) SetMuted(muted bool) {
	m.muted = muted
	if m.music == nil {
		return
	}
	if muted {
		m.music.Pause()
	} else {
		m.music.Play()
	}
}

// ToggleMuted toggles the muted state.
func (m *Manager) ToggleMuted() {
	m.SetMuted(!m.muted)
}

// Muted returns the muted state.
func (m *Manager) Muted() bool {
	return m.muted
}
