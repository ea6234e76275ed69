package event

// SoundType identifies an audio cue
type SoundType int

const (
	SoundFire SoundType = iota
	SoundExplosion
	SoundGameStart
	SoundGameOver
)

func (s SoundType) String() string {
	switch s {
	case SoundFire:
		return "fire"
	case SoundExplosion:
		return "explosion"
	case SoundGameStart:
		return "game_start"
	case SoundGameOver:
		return "game_over"
	}
	return "unknown"
}

// SoundRequestPayload contains the sound type to play
type SoundRequestPayload struct {
	SoundType SoundType
}

// ScorePayload carries the score after the change
type ScorePayload struct {
	Score int
}

// StationHealthPayload carries one station's health
type StationHealthPayload struct {
	Label     string
	Health    float32
	MaxHealth float32
}

// StationPayload names a station
type StationPayload struct {
	Label string
}

// ShieldPayload carries shield strength; Level 0 means the shield is down
type ShieldPayload struct {
	Level    int
	MaxLevel int
}

// PlanetHealthPayload carries planet health
type PlanetHealthPayload struct {
	Health    float32
	MaxHealth float32
}

// SelectionPayload carries the selected slot; Index is -1 when no station remains
type SelectionPayload struct {
	Index int
	Label string
}

// RechargePayload carries a station's firing readiness
type RechargePayload struct {
	Label string
	Ready bool
}
