package event

// EventType represents the type of game event
type EventType int

const (
	// EventGameReset signals the world was cleared and the scene reloaded
	// Trigger: restart action | Payload: nil
	EventGameReset EventType = iota

	// EventSoundRequest requests audio playback
	// Trigger: fire, explosion, reset, game over | Consumer: audio.Service | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventScoreChanged reports the new score
	// Trigger: shot hits asteroid | Consumer: HUD | Payload: *ScorePayload
	EventScoreChanged

	// EventStationHealth reports a station's remaining health
	// Trigger: asteroid hits station, reset | Consumer: HUD | Payload: *StationHealthPayload
	EventStationHealth

	// EventStationDestroyed reports a station removed from the slot list
	// Trigger: station health reaches zero | Consumer: HUD | Payload: *StationPayload
	EventStationDestroyed

	// EventShieldLevel reports shield strength
	// Trigger: station destroyed, reset | Consumer: HUD | Payload: *ShieldPayload
	EventShieldLevel

	// EventPlanetHealth reports planet health
	// Trigger: asteroid hits shield or planet, reset | Consumer: HUD | Payload: *PlanetHealthPayload
	EventPlanetHealth

	// EventSelectionChanged reports the selected station
	// Trigger: select actions, selection re-clamp | Consumer: HUD | Payload: *SelectionPayload
	EventSelectionChanged

	// EventRechargeState reports a station's firing readiness
	// Trigger: fire, recharge complete | Consumer: HUD | Payload: *RechargePayload
	EventRechargeState

	// EventGameOver signals planet health reached zero and the end sequence began
	// Consumer: HUD | Payload: nil
	EventGameOver

	// EventGameEnded signals the end sequence finished and the planet is gone
	// Consumer: HUD, binary | Payload: nil
	EventGameEnded
)

var typeNames = [...]string{
	EventGameReset:        "EventGameReset",
	EventSoundRequest:     "EventSoundRequest",
	EventScoreChanged:     "EventScoreChanged",
	EventStationHealth:    "EventStationHealth",
	EventStationDestroyed: "EventStationDestroyed",
	EventShieldLevel:      "EventShieldLevel",
	EventPlanetHealth:     "EventPlanetHealth",
	EventSelectionChanged: "EventSelectionChanged",
	EventRechargeState:    "EventRechargeState",
	EventGameOver:         "EventGameOver",
	EventGameEnded:        "EventGameEnded",
}

func (et EventType) String() string {
	if et < 0 || int(et) >= len(typeNames) {
		return "EventUnknown"
	}
	return typeNames[et]
}

// GameEvent is a single queued notification stamped with the frame that produced it
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
