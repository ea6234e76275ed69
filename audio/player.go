package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/planet-defense/event"
	"github.com/lixenwraith/planet-defense/parameter"
)

// Player mixes cue streamers onto the speaker
type Player struct {
	mu          sync.Mutex
	cues        Cues
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates an uninitialized player at the default sample rate
func NewPlayer(volume float64) *Player {
	return &Player{
		cues:  Cues{Rate: beep.SampleRate(parameter.AudioSampleRate), Volume: volume},
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	rate := p.cues.Rate
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a cue, false if uninitialized or the type is unknown
func (p *Player) Play(s event.SoundType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return false
	}
	st := p.cues.Streamer(s)
	if st == nil {
		return false
	}

	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
	return true
}

// Close drops pending cues and releases the device
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
