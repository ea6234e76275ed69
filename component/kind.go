package component

import "strings"

// Kind classifies an entity; immutable after spawn
type Kind int

const (
	KindSceneStatic Kind = iota
	KindShot
	KindAsteroid
	KindExplosion
	KindStation
	KindShield
	KindPlanet
	KindMoon
	KindHighlight
)

var kindNames = [...]string{
	KindSceneStatic: "scene",
	KindShot:        "shot",
	KindAsteroid:    "asteroid",
	KindExplosion:   "explosion",
	KindStation:     "station",
	KindShield:      "shield",
	KindPlanet:      "planet",
	KindMoon:        "moon",
	KindHighlight:   "highlight",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a scene description tag; empty or unknown tags are scene statics
func ParseKind(tag string) (Kind, bool) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return KindSceneStatic, true
	}
	for k, name := range kindNames {
		if name == tag {
			return Kind(k), true
		}
	}
	return KindSceneStatic, false
}

// HasHealth reports kinds that carry a health value
func (k Kind) HasHealth() bool {
	return k == KindStation || k == KindMoon
}

// Collidable reports kinds that take part in collision tests
func (k Kind) Collidable() bool {
	switch k {
	case KindShot, KindAsteroid, KindStation, KindShield, KindPlanet, KindMoon:
		return true
	}
	return false
}
