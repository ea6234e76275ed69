package parameter

// Geometry
const (
	// StaticLongitudeSteps tessellates scene ellipsoids (planet, shield, stations, moon)
	StaticLongitudeSteps = 32

	// DynamicLongitudeSteps tessellates spawned ellipsoids (shots, asteroids, explosions)
	DynamicLongitudeSteps = 16
)

// Shot
const (
	// ShotRadius is the semi-axis of every shot on all three axes
	ShotRadius = 0.02

	// ShotSpeed is the translation per frame along the unit direction
	ShotSpeed = 0.05

	// ShotLongevityRate is longevity gained per frame
	ShotLongevityRate = 1.0

	// ShotLifespan is the longevity at which a shot despawns
	ShotLifespan = 100.0

	ShotShininess = 7.0
	ShotTexture   = "shot.png"
)

// Asteroid
const (
	// AsteroidSpawnRadius is the radius of the sphere asteroids spawn on
	AsteroidSpawnRadius = 4.0

	// AsteroidMinRadius and AsteroidMaxRadius bound each random semi-axis
	AsteroidMinRadius = 0.04
	AsteroidMaxRadius = 0.1

	// AsteroidSpeed is the translation per frame along the unit direction
	AsteroidSpeed = 0.01

	// AsteroidLongevityRate is longevity gained per frame
	AsteroidLongevityRate = 0.1

	// AsteroidLifespan is the longevity at which an asteroid that missed everything despawns
	AsteroidLifespan = 100.0

	// AsteroidSpawnIntervalMin and AsteroidSpawnIntervalMax bound the frames between spawns
	AsteroidSpawnIntervalMin = 60
	AsteroidSpawnIntervalMax = 180

	AsteroidTexture = "asteroid.jpg"
)

// Explosion
const (
	// ExplosionRadius is the semi-axis of a small explosion
	ExplosionRadius = 0.06

	// ExplosionLargeScale multiplies radii for large explosions
	ExplosionLargeScale = 5.0

	// ExplosionFrameCount is the number of sprite frames; the explosion despawns on reaching it
	ExplosionFrameCount = 16

	// ExplosionFrameCadence is simulation frames per sprite frame
	ExplosionFrameCadence = 3

	ExplosionAlpha   = 0.9
	ExplosionTexture = "explosion.png"
)

// Station
const (
	// StationHealth is the starting health of every station
	StationHealth = 10.0

	// StationDamage is health lost per asteroid hit
	StationDamage = 2.0

	// StationRechargeFrames is frames between shots from the same station
	StationRechargeFrames = 30
)

// Planet & Shield
const (
	// PlanetHealth is the starting planet health
	PlanetHealth = 100.0

	// PlanetDamage is health lost per unshielded asteroid hit, divided by shield level when shielded
	PlanetDamage = 20.0

	// ShieldAlpha is the shield transparency at full strength
	ShieldAlpha = 0.4
)

// Moon
const (
	// MoonHealth is the starting moon health
	MoonHealth = 3.0

	// MoonDamage is health lost per asteroid hit
	MoonDamage = 1.0

	// MoonOrbitAngle is radians per frame about world Y
	MoonOrbitAngle = 0.005
)

// Scoring
const (
	// ShotReward is score gained per asteroid destroyed by a shot
	ShotReward = 10
)

// Apocalypse
const (
	// ApocalypseFrames is the length of the surface explosion burst before the final blast
	ApocalypseFrames = 90

	// ApocalypseBurstEvery spaces surface explosions in frames
	ApocalypseBurstEvery = 5
)
