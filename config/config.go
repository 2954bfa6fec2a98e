// Package config loads runtime tuning with viper.
// Defaults come from the parameter package, a file (JSON, TOML or YAML by
// extension) overrides them and SPACEFOLIO_* environment variables override both.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/lixenwraith/spacefolio/audio"
	"github.com/lixenwraith/spacefolio/camera"
	"github.com/lixenwraith/spacefolio/engine"
	"github.com/lixenwraith/spacefolio/input"
	"github.com/lixenwraith/spacefolio/parameter"
	"github.com/lixenwraith/spacefolio/physics"
	"github.com/lixenwraith/spacefolio/proximity"
	"github.com/lixenwraith/spacefolio/terminal"
	"github.com/lixenwraith/spacefolio/vmath"
)

var ErrInvalid = errors.New("invalid configuration")

type FlightConfig struct {
	Speed          float64 `mapstructure:"speed"`
	MaxSpeed       float64 `mapstructure:"maxSpeed"`
	Acceleration   float64 `mapstructure:"acceleration"`
	Friction       float64 `mapstructure:"friction"`
	BackwardFactor float64 `mapstructure:"backwardFactor"`
	StrafeFactor   float64 `mapstructure:"strafeFactor"`
	VerticalFactor float64 `mapstructure:"verticalFactor"`
	BoostFactor    float64 `mapstructure:"boostFactor"`
	BoostThreshold float64 `mapstructure:"boostThreshold"`
	BoostDrain     float64 `mapstructure:"boostDrain"`
	ThrustRegen    float64 `mapstructure:"thrustRegen"`
	IdleRegen      float64 `mapstructure:"idleRegen"`
}

type CameraConfig struct {
	Height      float64 `mapstructure:"height"`
	Distance    float64 `mapstructure:"distance"`
	FollowLerp  float64 `mapstructure:"followLerp"`
	OrbitLerp   float64 `mapstructure:"orbitLerp"`
	Sensitivity float64 `mapstructure:"sensitivity"`
	MinDistance float64 `mapstructure:"minDistance"`
	MaxDistance float64 `mapstructure:"maxDistance"`
	ZoomStep    float64 `mapstructure:"zoomStep"`
	VerticalMax float64 `mapstructure:"verticalMax"` // radians
}

type ProximityConfig struct {
	ActivationRadius float64 `mapstructure:"activationRadius"`
}

type ProgressionConfig struct {
	PerActivation int `mapstructure:"perActivation"`
	PerLevel      int `mapstructure:"perLevel"`
}

type LoopConfig struct {
	FrameInterval     time.Duration `mapstructure:"frameInterval"`
	ProximityInterval time.Duration `mapstructure:"proximityInterval"`
	RegenInterval     time.Duration `mapstructure:"regenInterval"`
	InboxSize         int           `mapstructure:"inboxSize"`
}

type LogConfig struct {
	Enabled           bool          `mapstructure:"enabled"`
	Level             string        `mapstructure:"level"`
	Dir               string        `mapstructure:"dir"`
	MaxSize           int64         `mapstructure:"maxSize"`
	TelemetryInterval time.Duration `mapstructure:"telemetryInterval"`
}

type AudioConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	SampleRate int     `mapstructure:"sampleRate"`
	Volume     float64 `mapstructure:"volume"`
}

type TerminalConfig struct {
	KeyHold        time.Duration `mapstructure:"keyHold"`
	KeyHoldSweep   time.Duration `mapstructure:"keyHoldSweep"`
	RenderInterval time.Duration `mapstructure:"renderInterval"`
	CellAspect     float64       `mapstructure:"cellAspect"`
	Mouse          bool          `mapstructure:"mouse"`
}

type Vec3Config struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
	Z float64 `mapstructure:"z"`
}

// LandmarkConfig is one station, a zero ActivationRadius takes proximity.activationRadius
type LandmarkConfig struct {
	ID               string  `mapstructure:"id"`
	Title            string  `mapstructure:"title"`
	Summary          string  `mapstructure:"summary"`
	X                float64 `mapstructure:"x"`
	Y                float64 `mapstructure:"y"`
	Z                float64 `mapstructure:"z"`
	CardRadius       float64 `mapstructure:"cardRadius"`
	ActivationRadius float64 `mapstructure:"activationRadius"`
}

// Config is the full runtime configuration
type Config struct {
	Flight         FlightConfig        `mapstructure:"flight"`
	Camera         CameraConfig        `mapstructure:"camera"`
	Proximity      ProximityConfig     `mapstructure:"proximity"`
	Progression    ProgressionConfig   `mapstructure:"progression"`
	Loop           LoopConfig          `mapstructure:"loop"`
	Log            LogConfig           `mapstructure:"log"`
	Audio          AudioConfig         `mapstructure:"audio"`
	Terminal       TerminalConfig      `mapstructure:"terminal"`
	Start          Vec3Config          `mapstructure:"start"`
	ResetOnReentry bool                `mapstructure:"resetOnReentry"`
	Landmarks      []LandmarkConfig    `mapstructure:"landmarks"`
	Bindings       map[string][]string `mapstructure:"bindings"`
}

func setDefaults() {
	viper.SetDefault("flight.speed", parameter.FlightSpeed)
	viper.SetDefault("flight.maxSpeed", parameter.FlightMaxSpeed)
	viper.SetDefault("flight.acceleration", parameter.FlightAcceleration)
	viper.SetDefault("flight.friction", parameter.FlightFriction)
	viper.SetDefault("flight.backwardFactor", parameter.FlightBackwardFactor)
	viper.SetDefault("flight.strafeFactor", parameter.FlightStrafeFactor)
	viper.SetDefault("flight.verticalFactor", parameter.FlightVerticalFactor)
	viper.SetDefault("flight.boostFactor", parameter.FlightBoostFactor)
	viper.SetDefault("flight.boostThreshold", parameter.FuelBoostThreshold)
	viper.SetDefault("flight.boostDrain", parameter.FuelBoostDrain)
	viper.SetDefault("flight.thrustRegen", parameter.FuelThrustRegen)
	viper.SetDefault("flight.idleRegen", parameter.FuelIdleRegen)

	viper.SetDefault("camera.height", parameter.CameraBaseHeight)
	viper.SetDefault("camera.distance", parameter.CameraBaseDistance)
	viper.SetDefault("camera.followLerp", parameter.CameraFollowLerp)
	viper.SetDefault("camera.orbitLerp", parameter.CameraOrbitLerp)
	viper.SetDefault("camera.sensitivity", parameter.CameraSensitivity)
	viper.SetDefault("camera.minDistance", parameter.CameraMinDistance)
	viper.SetDefault("camera.maxDistance", parameter.CameraMaxDistance)
	viper.SetDefault("camera.zoomStep", parameter.CameraZoomStep)
	viper.SetDefault("camera.verticalMax", parameter.CameraVerticalLimit)

	viper.SetDefault("proximity.activationRadius", parameter.LandmarkActivationRadius)

	viper.SetDefault("progression.perActivation", parameter.ExperiencePerActivation)
	viper.SetDefault("progression.perLevel", parameter.ExperiencePerLevel)

	viper.SetDefault("loop.frameInterval", parameter.FrameUpdateInterval)
	viper.SetDefault("loop.proximityInterval", parameter.ProximityUpdateInterval)
	viper.SetDefault("loop.regenInterval", parameter.FuelRegenInterval)
	viper.SetDefault("loop.inboxSize", parameter.InboxSize)

	viper.SetDefault("log.enabled", false)
	viper.SetDefault("log.level", parameter.LogLevel)
	viper.SetDefault("log.dir", parameter.LogDir)
	viper.SetDefault("log.maxSize", parameter.LogMaxSize)
	viper.SetDefault("log.telemetryInterval", parameter.TelemetryLogInterval)

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.sampleRate", parameter.AudioSampleRate)
	viper.SetDefault("audio.volume", parameter.AudioMasterVolume)

	viper.SetDefault("terminal.keyHold", parameter.KeyHoldDuration)
	viper.SetDefault("terminal.keyHoldSweep", parameter.KeyHoldSweepInterval)
	viper.SetDefault("terminal.renderInterval", parameter.TerminalRenderInterval)
	viper.SetDefault("terminal.cellAspect", parameter.TerminalCellAspect)
	viper.SetDefault("terminal.mouse", true)

	viper.SetDefault("start.x", parameter.CraftStartX)
	viper.SetDefault("start.y", parameter.CraftStartY)
	viper.SetDefault("start.z", parameter.CraftStartZ)
	viper.SetDefault("resetOnReentry", false)

	landmarks := make([]map[string]any, 0, len(parameter.DefaultLandmarks))
	for _, d := range parameter.DefaultLandmarks {
		landmarks = append(landmarks, map[string]any{
			"id":         d.ID,
			"title":      d.Title,
			"summary":    d.Summary,
			"x":          d.X,
			"y":          d.Y,
			"z":          d.Z,
			"cardRadius": d.CardRadius,
		})
	}
	viper.SetDefault("landmarks", landmarks)

	bindings := make(map[string]any)
	for action, keys := range input.DefaultBindings() {
		bindings[action.String()] = keys
	}
	viper.SetDefault("bindings", bindings)
}

// Load reads configuration from path, an empty path uses defaults and environment only
func Load(path string) (*Config, error) {
	setDefaults()

	viper.SetEnvPrefix(parameter.ConfigEnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	f := c.Flight
	switch {
	case f.Speed <= 0 || f.MaxSpeed <= 0:
		return invalid("flight speed and maxSpeed must be positive")
	case f.Acceleration <= 0 || f.Acceleration > 1:
		return invalid("flight.acceleration %v outside (0,1]", f.Acceleration)
	case f.Friction <= 0 || f.Friction > 1:
		return invalid("flight.friction %v outside (0,1]", f.Friction)
	case f.BoostThreshold < 0 || f.BoostThreshold > parameter.FuelMax:
		return invalid("flight.boostThreshold %v outside [0,%v]", f.BoostThreshold, parameter.FuelMax)
	case f.BoostDrain < 0 || f.ThrustRegen < 0 || f.IdleRegen < 0:
		return invalid("flight fuel rates must not be negative")
	}

	cam := c.Camera
	switch {
	case cam.MinDistance <= 0 || cam.MaxDistance < cam.MinDistance:
		return invalid("camera distance range [%v,%v]", cam.MinDistance, cam.MaxDistance)
	case cam.FollowLerp <= 0 || cam.FollowLerp > 1 || cam.OrbitLerp <= 0 || cam.OrbitLerp > 1:
		return invalid("camera lerp factors must be in (0,1]")
	case cam.VerticalMax <= 0:
		return invalid("camera.verticalMax must be positive")
	}

	if c.Proximity.ActivationRadius <= 0 {
		return invalid("proximity.activationRadius must be positive")
	}
	if c.Progression.PerLevel <= 0 || c.Progression.PerActivation < 0 {
		return invalid("progression perLevel must be positive and perActivation not negative")
	}

	l := c.Loop
	if l.FrameInterval <= 0 || l.ProximityInterval <= 0 || l.RegenInterval <= 0 || l.InboxSize <= 0 {
		return invalid("loop intervals and inbox size must be positive")
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level %q", c.Log.Level)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return invalid("audio.volume %v outside [0,1]", c.Audio.Volume)
	}
	if c.Terminal.CellAspect <= 0 {
		return invalid("terminal.cellAspect must be positive")
	}

	if len(c.Landmarks) == 0 {
		return invalid("no landmarks")
	}
	seen := make(map[string]bool, len(c.Landmarks))
	for _, lm := range c.LandmarkSet() {
		if err := lm.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		if seen[lm.ID] {
			return invalid("duplicate landmark %q", lm.ID)
		}
		seen[lm.ID] = true
	}

	for name := range c.Bindings {
		if _, ok := input.ParseAction(name); !ok {
			return invalid("unknown binding action %q", name)
		}
	}
	return nil
}

// LandmarkSet converts the station list, applying the shared activation radius
func (c *Config) LandmarkSet() []proximity.Landmark {
	out := make([]proximity.Landmark, 0, len(c.Landmarks))
	for _, l := range c.Landmarks {
		radius := l.ActivationRadius
		if radius <= 0 {
			radius = c.Proximity.ActivationRadius
		}
		out = append(out, proximity.Landmark{
			ID:               l.ID,
			Title:            l.Title,
			Summary:          l.Summary,
			Position:         vmath.V3F(l.X, l.Y, l.Z),
			ActivationRadius: radius,
			CardRadius:       l.CardRadius,
		})
	}
	return out
}

// SimulationConfig builds the engine configuration, untouched orientation tuning keeps its defaults
func (c *Config) SimulationConfig() engine.Config {
	flight := physics.DefaultFlightProfile
	flight.Speed = c.Flight.Speed
	flight.MaxSpeed = c.Flight.MaxSpeed
	flight.Acceleration = c.Flight.Acceleration
	flight.Friction = c.Flight.Friction
	flight.BackwardFactor = c.Flight.BackwardFactor
	flight.StrafeFactor = c.Flight.StrafeFactor
	flight.VerticalFactor = c.Flight.VerticalFactor
	flight.BoostFactor = c.Flight.BoostFactor
	flight.BoostThreshold = c.Flight.BoostThreshold
	flight.BoostDrain = c.Flight.BoostDrain
	flight.ThrustRegen = c.Flight.ThrustRegen

	return engine.Config{
		Flight: flight,
		Camera: camera.Settings{
			Offset:      vmath.V3F(0, c.Camera.Height, c.Camera.Distance),
			FollowLerp:  c.Camera.FollowLerp,
			OrbitLerp:   c.Camera.OrbitLerp,
			Sensitivity: c.Camera.Sensitivity,
			MinDistance: c.Camera.MinDistance,
			MaxDistance: c.Camera.MaxDistance,
			ZoomStep:    c.Camera.ZoomStep,
			VerticalMax: c.Camera.VerticalMax,
		},
		Landmarks:               c.LandmarkSet(),
		Bindings:                input.DefaultBindings().Merge(c.Bindings),
		Start:                   vmath.V3F(c.Start.X, c.Start.Y, c.Start.Z),
		ExperiencePerActivation: c.Progression.PerActivation,
		ExperiencePerLevel:      c.Progression.PerLevel,
		FuelIdleRegen:           c.Flight.IdleRegen,
		ResetOnReentry:          c.ResetOnReentry,
	}
}

func (c *Config) SchedulerConfig() engine.SchedulerConfig {
	return engine.SchedulerConfig{
		FrameInterval:     c.Loop.FrameInterval,
		ProximityInterval: c.Loop.ProximityInterval,
		RegenInterval:     c.Loop.RegenInterval,
		InboxSize:         c.Loop.InboxSize,
	}
}

func (c *Config) AudioSettings() audio.Config {
	return audio.Config{
		Enabled:      c.Audio.Enabled,
		SampleRate:   c.Audio.SampleRate,
		MasterVolume: c.Audio.Volume,
	}
}

func (c *Config) TerminalSettings() terminal.Config {
	return terminal.Config{
		KeyHold:        c.Terminal.KeyHold,
		KeyHoldSweep:   c.Terminal.KeyHoldSweep,
		RenderInterval: c.Terminal.RenderInterval,
		CellAspect:     c.Terminal.CellAspect,
		Mouse:          c.Terminal.Mouse,
	}
}

// LogLevel parses log.level, Validate guarantees it succeeds
func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
