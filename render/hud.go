package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/planet-defense/event"
)

// StationStatus is one station as the HUD shows it
type StationStatus struct {
	Label     string
	Health    float32
	MaxHealth float32
	Ready     bool
	Destroyed bool
}

// HUD folds status events into displayable values
type HUD struct {
	Score           int
	PlanetHealth    float32
	PlanetMaxHealth float32
	ShieldLevel     int
	ShieldMaxLevel  int
	Selected        string
	Stations        []StationStatus
	GameOver        bool
	GameEnded       bool
}

// NewHUD creates an empty HUD
func NewHUD() *HUD {
	return &HUD{}
}

func (h *HUD) station(label string) *StationStatus {
	for i := range h.Stations {
		if h.Stations[i].Label == label {
			return &h.Stations[i]
		}
	}
	h.Stations = append(h.Stations, StationStatus{Label: label})
	return &h.Stations[len(h.Stations)-1]
}

// Apply folds one event; unrelated events are ignored
func (h *HUD) Apply(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		*h = HUD{}

	case event.EventScoreChanged:
		if p, ok := ev.Payload.(*event.ScorePayload); ok {
			h.Score = p.Score
		}

	case event.EventPlanetHealth:
		if p, ok := ev.Payload.(*event.PlanetHealthPayload); ok {
			h.PlanetHealth = p.Health
			h.PlanetMaxHealth = p.MaxHealth
		}

	case event.EventShieldLevel:
		if p, ok := ev.Payload.(*event.ShieldPayload); ok {
			h.ShieldLevel = p.Level
			h.ShieldMaxLevel = p.MaxLevel
		}

	case event.EventStationHealth:
		if p, ok := ev.Payload.(*event.StationHealthPayload); ok {
			s := h.station(p.Label)
			s.Health = p.Health
			s.MaxHealth = p.MaxHealth
		}

	case event.EventStationDestroyed:
		if p, ok := ev.Payload.(*event.StationPayload); ok {
			s := h.station(p.Label)
			s.Destroyed = true
			s.Ready = false
		}

	case event.EventRechargeState:
		if p, ok := ev.Payload.(*event.RechargePayload); ok {
			h.station(p.Label).Ready = p.Ready
		}

	case event.EventSelectionChanged:
		if p, ok := ev.Payload.(*event.SelectionPayload); ok {
			h.Selected = p.Label
		}

	case event.EventGameOver:
		h.GameOver = true

	case event.EventGameEnded:
		h.GameOver = true
		h.GameEnded = true
	}
}

// ApplyAll folds a batch in order
func (h *HUD) ApplyAll(events []event.GameEvent) {
	for _, ev := range events {
		h.Apply(ev)
	}
}

// Lines renders the status line and the station line
func (h *HUD) Lines() [2]string {
	status := fmt.Sprintf("Score %d  Planet %.0f/%.0f  Shield %d/%d",
		h.Score, h.PlanetHealth, h.PlanetMaxHealth, h.ShieldLevel, h.ShieldMaxLevel)
	switch {
	case h.GameEnded:
		status += "  GAME OVER - press r to restart"
	case h.GameOver:
		status += "  PLANET LOST"
	}

	var sb strings.Builder
	for _, s := range h.Stations {
		marker := "  "
		if s.Label == h.Selected && !s.Destroyed {
			marker = "> "
		}
		sb.WriteString(marker)
		sb.WriteString(s.Label)
		switch {
		case s.Destroyed:
			sb.WriteString(" [X]")
		case s.Ready:
			fmt.Fprintf(&sb, " %.0f/%.0f ready", s.Health, s.MaxHealth)
		default:
			fmt.Fprintf(&sb, " %.0f/%.0f ...", s.Health, s.MaxHealth)
		}
		sb.WriteString("   ")
	}
	return [2]string{status, strings.TrimRight(sb.String(), " ")}
}
