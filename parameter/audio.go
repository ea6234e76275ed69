package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master volume in [0,1]
	AudioMasterVolume = 0.6
)

// Fire Sound
const (
	FireSoundDuration = 80 * time.Millisecond
	FireSoundAttack   = 5 * time.Millisecond
	FireSoundRelease  = 50 * time.Millisecond
)

// Explosion Sound
const (
	ExplosionSoundDuration = 300 * time.Millisecond
	ExplosionSoundAttack   = 5 * time.Millisecond
	ExplosionSoundRelease  = 250 * time.Millisecond
)

// Game Start Sound
const (
	StartSoundNoteDuration = 120 * time.Millisecond
	StartSoundAttack       = 5 * time.Millisecond
	StartSoundRelease      = 60 * time.Millisecond
)

// Game Over Sound
const (
	GameOverSoundDuration = 900 * time.Millisecond
	GameOverSoundAttack   = 20 * time.Millisecond
	GameOverSoundRelease  = 600 * time.Millisecond
)
