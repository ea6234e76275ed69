// Package config loads tunable gameplay, rendering and logging settings
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/lixenwraith/planet-defense/parameter"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full set of tunables; zero values are never used, Load fills defaults
type Config struct {
	Seed       uint64            `mapstructure:"seed"`
	Scene      string            `mapstructure:"scene"`
	Geometry   GeometryConfig    `mapstructure:"geometry"`
	Shot       ShotConfig        `mapstructure:"shot"`
	Asteroid   AsteroidConfig    `mapstructure:"asteroid"`
	Explosion  ExplosionConfig   `mapstructure:"explosion"`
	Station    StationConfig     `mapstructure:"station"`
	Planet     PlanetConfig      `mapstructure:"planet"`
	Moon       MoonConfig        `mapstructure:"moon"`
	Score      ScoreConfig       `mapstructure:"score"`
	Apocalypse ApocalypseConfig  `mapstructure:"apocalypse"`
	Camera     CameraConfig      `mapstructure:"camera"`
	Audio      AudioConfig       `mapstructure:"audio"`
	Log        LogConfig         `mapstructure:"log"`
	Keys       map[string]string `mapstructure:"keys"`
}

type GeometryConfig struct {
	StaticSteps  int `mapstructure:"staticSteps"`
	DynamicSteps int `mapstructure:"dynamicSteps"`
}

type ShotConfig struct {
	Radius        float32 `mapstructure:"radius"`
	Speed         float32 `mapstructure:"speed"`
	LongevityRate float32 `mapstructure:"longevityRate"`
	Lifespan      float32 `mapstructure:"lifespan"`
}

type AsteroidConfig struct {
	SpawnRadius      float32 `mapstructure:"spawnRadius"`
	MinRadius        float32 `mapstructure:"minRadius"`
	MaxRadius        float32 `mapstructure:"maxRadius"`
	Speed            float32 `mapstructure:"speed"`
	LongevityRate    float32 `mapstructure:"longevityRate"`
	Lifespan         float32 `mapstructure:"lifespan"`
	SpawnIntervalMin int     `mapstructure:"spawnIntervalMin"`
	SpawnIntervalMax int     `mapstructure:"spawnIntervalMax"`
}

type ExplosionConfig struct {
	Radius       float32 `mapstructure:"radius"`
	LargeScale   float32 `mapstructure:"largeScale"`
	FrameCount   int     `mapstructure:"frameCount"`
	FrameCadence int     `mapstructure:"frameCadence"`
	Alpha        float32 `mapstructure:"alpha"`
}

type StationConfig struct {
	Health         float32 `mapstructure:"health"`
	Damage         float32 `mapstructure:"damage"`
	RechargeFrames int     `mapstructure:"rechargeFrames"`
}

type PlanetConfig struct {
	Health      float32 `mapstructure:"health"`
	Damage      float32 `mapstructure:"damage"`
	ShieldAlpha float32 `mapstructure:"shieldAlpha"`
}

type MoonConfig struct {
	Health     float32 `mapstructure:"health"`
	Damage     float32 `mapstructure:"damage"`
	OrbitAngle float32 `mapstructure:"orbitAngle"`
}

type ScoreConfig struct {
	ShotReward int `mapstructure:"shotReward"`
}

type ApocalypseConfig struct {
	Frames     int `mapstructure:"frames"`
	BurstEvery int `mapstructure:"burstEvery"`
}

type CameraConfig struct {
	Eye        []float32 `mapstructure:"eye"`
	Center     []float32 `mapstructure:"center"`
	Up         []float32 `mapstructure:"up"`
	RotateStep float32   `mapstructure:"rotateStep"`
	FOV        float32   `mapstructure:"fov"`
	AimRange   float32   `mapstructure:"aimRange"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"`
	File  string `mapstructure:"file"`
}

// setDefaults registers every key so a missing or partial file still yields a full Config
func setDefaults(v *viper.Viper) {
	v.SetDefault("seed", uint64(parameter.DefaultSeed))
	v.SetDefault("scene", "")

	v.SetDefault("geometry.staticSteps", parameter.StaticLongitudeSteps)
	v.SetDefault("geometry.dynamicSteps", parameter.DynamicLongitudeSteps)

	v.SetDefault("shot.radius", parameter.ShotRadius)
	v.SetDefault("shot.speed", parameter.ShotSpeed)
	v.SetDefault("shot.longevityRate", parameter.ShotLongevityRate)
	v.SetDefault("shot.lifespan", parameter.ShotLifespan)

	v.SetDefault("asteroid.spawnRadius", parameter.AsteroidSpawnRadius)
	v.SetDefault("asteroid.minRadius", parameter.AsteroidMinRadius)
	v.SetDefault("asteroid.maxRadius", parameter.AsteroidMaxRadius)
	v.SetDefault("asteroid.speed", parameter.AsteroidSpeed)
	v.SetDefault("asteroid.longevityRate", parameter.AsteroidLongevityRate)
	v.SetDefault("asteroid.lifespan", parameter.AsteroidLifespan)
	v.SetDefault("asteroid.spawnIntervalMin", parameter.AsteroidSpawnIntervalMin)
	v.SetDefault("asteroid.spawnIntervalMax", parameter.AsteroidSpawnIntervalMax)

	v.SetDefault("explosion.radius", parameter.ExplosionRadius)
	v.SetDefault("explosion.largeScale", parameter.ExplosionLargeScale)
	v.SetDefault("explosion.frameCount", parameter.ExplosionFrameCount)
	v.SetDefault("explosion.frameCadence", parameter.ExplosionFrameCadence)
	v.SetDefault("explosion.alpha", parameter.ExplosionAlpha)

	v.SetDefault("station.health", parameter.StationHealth)
	v.SetDefault("station.damage", parameter.StationDamage)
	v.SetDefault("station.rechargeFrames", parameter.StationRechargeFrames)

	v.SetDefault("planet.health", parameter.PlanetHealth)
	v.SetDefault("planet.damage", parameter.PlanetDamage)
	v.SetDefault("planet.shieldAlpha", parameter.ShieldAlpha)

	v.SetDefault("moon.health", parameter.MoonHealth)
	v.SetDefault("moon.damage", parameter.MoonDamage)
	v.SetDefault("moon.orbitAngle", parameter.MoonOrbitAngle)

	v.SetDefault("score.shotReward", parameter.ShotReward)

	v.SetDefault("apocalypse.frames", parameter.ApocalypseFrames)
	v.SetDefault("apocalypse.burstEvery", parameter.ApocalypseBurstEvery)

	v.SetDefault("camera.eye", parameter.CameraEye[:])
	v.SetDefault("camera.center", parameter.CameraCenter[:])
	v.SetDefault("camera.up", parameter.CameraUp[:])
	v.SetDefault("camera.rotateStep", parameter.CameraRotateStep)
	v.SetDefault("camera.fov", parameter.CameraFOV)
	v.SetDefault("camera.aimRange", parameter.AimRange)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", parameter.AudioMasterVolume)

	v.SetDefault("log.level", parameter.LogLevel)
	v.SetDefault("log.dir", parameter.LogDir)
	v.SetDefault("log.file", parameter.LogFile)

	v.SetDefault("keys", map[string]string{})
}

// Default returns the built-in configuration
func Default() *Config {
	cfg, err := decode(newViper())
	if err != nil {
		// Defaults are compile-time constants and always decode
		panic(err)
	}
	return cfg
}

// Load reads a YAML, JSON or TOML file over the defaults
// An empty path yields the defaults
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
