package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/planet-defense/event"
	"github.com/lixenwraith/planet-defense/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-length wave generator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/sustain/release gain curve over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linear gain; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is an enveloped oscillator
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// Cues synthesizes cue streamers at a fixed rate and master volume
type Cues struct {
	Rate   beep.SampleRate
	Volume float64
}

// CreateFireSound generates a short square blip for a launched shot
func (c Cues) CreateFireSound() beep.Streamer {
	blip := tone(880.0, WaveSquare, parameter.FireSoundDuration, parameter.FireSoundAttack, parameter.FireSoundRelease, c.Rate)
	return newVolume(blip, 0.5*c.Volume)
}

// CreateExplosionSound mixes a noise burst over a low rumble
func (c Cues) CreateExplosionSound() beep.Streamer {
	noise := tone(0, WaveNoise, parameter.ExplosionSoundDuration, parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, c.Rate)
	rumble := tone(55.0, WaveSine, parameter.ExplosionSoundDuration, parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, c.Rate)

	mixed := beep.Mix(
		newVolume(noise, 0.6),
		newVolume(rumble, 0.4),
	)
	return newVolume(mixed, c.Volume)
}

// CreateGameStartSound plays a rising C major arpeggio (C5 E5 G5)
func (c Cues) CreateGameStartSound() beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99}
	seq := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		seq[i] = tone(f, WaveSine, parameter.StartSoundNoteDuration, parameter.StartSoundAttack, parameter.StartSoundRelease, c.Rate)
	}
	return newVolume(beep.Seq(seq...), c.Volume)
}

// CreateGameOverSound generates a long falling low drone (A2 with a fifth)
func (c Cues) CreateGameOverSound() beep.Streamer {
	root := tone(110.0, WaveSaw, parameter.GameOverSoundDuration, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, c.Rate)
	fifth := tone(164.81, WaveSine, parameter.GameOverSoundDuration, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, c.Rate)

	mixed := beep.Mix(
		newVolume(root, 0.5),
		newVolume(fifth, 0.5),
	)
	return newVolume(mixed, c.Volume)
}

// Streamer returns the cue for a sound type, nil when unknown
func (c Cues) Streamer(s event.SoundType) beep.Streamer {
	switch s {
	case event.SoundFire:
		return c.CreateFireSound()
	case event.SoundExplosion:
		return c.CreateExplosionSound()
	case event.SoundGameStart:
		return c.CreateGameStartSound()
	case event.SoundGameOver:
		return c.CreateGameOverSound()
	default:
		return nil
	}
}
