package audio

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/planet-defense/config"
	"github.com/lixenwraith/planet-defense/event"
)

// Sink plays a single cue
type Sink interface {
	Play(event.SoundType) bool
}

// Service routes sound request events to a sink
// Degrades to a no-op when audio is disabled or no backend is available
type Service struct {
	sink   Sink
	player *Player
	log    zerolog.Logger
}

// NewService opens the speaker when cfg enables audio
// Backend failure is logged and leaves the service disabled
func NewService(cfg config.AudioConfig, log zerolog.Logger) *Service {
	s := &Service{log: log}
	if !cfg.Enabled {
		log.Info().Msg("Audio disabled")
		return s
	}

	p := NewPlayer(cfg.Volume)
	if err := p.Init(); err != nil {
		log.Warn().Err(err).Msg("Audio backend unavailable, continuing without sound")
		return s
	}
	s.player = p
	s.sink = p
	return s
}

// NewServiceWithSink routes cues to an arbitrary sink
func NewServiceWithSink(sink Sink, log zerolog.Logger) *Service {
	return &Service{sink: sink, log: log}
}

// IsDisabled reports whether cues are dropped
func (s *Service) IsDisabled() bool {
	return s.sink == nil
}

// Handle plays every sound request in events and returns how many started
func (s *Service) Handle(events []event.GameEvent) int {
	if s.sink == nil {
		return 0
	}

	played := 0
	for _, ev := range events {
		if ev.Type != event.EventSoundRequest {
			continue
		}
		p, ok := ev.Payload.(*event.SoundRequestPayload)
		if !ok {
			continue
		}
		if s.sink.Play(p.SoundType) {
			played++
		} else {
			s.log.Debug().Stringer("sound", p.SoundType).Msg("Cue dropped")
		}
	}
	return played
}

// Close releases the speaker if this service opened it
func (s *Service) Close() {
	if s.player != nil {
		s.player.Close()
	}
}
