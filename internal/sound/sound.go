// Package sound is the audio feedback collaborator: short generated tones
// played when shapes fuse or a max-size pair annihilates. Triggers only
// enqueue a streamer into the speaker mixer, so calling them from the
// frame callback never blocks.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player owns the speaker and a mixer that live tones are added to.
// The zero value is unusable; call NewPlayer, then Init once.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a silent player. Nothing plays until Init succeeds.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Safe to call once at startup; failure (e.g. no
// audio device) leaves the player permanently silent, which is fine for
// headless or SSH use.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Fuse plays a short blip whose pitch rises with the tier reached.
// Safe on a nil receiver so callers can leave sound unconfigured.
func (p *Player) Fuse(tier int) {
	if p == nil {
		return
	}
	freq := 320.0
	for i := 0; i < tier; i++ {
		freq *= 1.19
	}
	p.play(newBlip(freq, 90*time.Millisecond, 0.5))
}

// MaxSize plays a low boom for a max-tier annihilation. Safe on a nil
// receiver.
func (p *Player) MaxSize() {
	if p == nil {
		return
	}
	p.play(newBlip(82.0, 350*time.Millisecond, 0.8))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	ok := p.initialized
	p.mu.Unlock()
	if !ok {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
