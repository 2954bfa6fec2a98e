package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/spacefolio/camera"
	"github.com/lixenwraith/spacefolio/input"
	"github.com/lixenwraith/spacefolio/parameter"
	"github.com/lixenwraith/spacefolio/physics"
	"github.com/lixenwraith/spacefolio/proximity"
	"github.com/lixenwraith/spacefolio/vmath"
)

// ErrNoNearby is returned when opening the nearby overlay with nothing in range
var ErrNoNearby = errors.New("no landmark in range")

// Config carries the tunables the simulation is built from
type Config struct {
	Flight    physics.FlightProfile
	Camera    camera.Settings
	Landmarks []proximity.Landmark
	Bindings  input.Bindings
	Start     vmath.Vec3F

	ExperiencePerActivation int
	ExperiencePerLevel      int
	FuelIdleRegen           float64

	// ResetOnReentry respawns the craft when leaving Professional mode
	ResetOnReentry bool
}

// DefaultConfig returns the stock tuning and landmark set
func DefaultConfig() Config {
	return Config{
		Flight:                  physics.DefaultFlightProfile,
		Camera:                  camera.DefaultSettings,
		Landmarks:               proximity.DefaultLandmarks(),
		Bindings:                input.DefaultBindings(),
		Start:                   vmath.V3F(parameter.CraftStartX, parameter.CraftStartY, parameter.CraftStartZ),
		ExperiencePerActivation: parameter.ExperiencePerActivation,
		ExperiencePerLevel:      parameter.ExperiencePerLevel,
		FuelIdleRegen:           parameter.FuelIdleRegen,
	}
}

// FrameTime is the timing context of one frame
type FrameTime struct {
	Real    time.Time
	Elapsed time.Duration // game time, frozen while paused
}

// Frame is the per-frame output handed to presentation
type Frame struct {
	Seq         uint64
	HUD         physics.HUD
	Intent      input.Intent
	Orientation physics.Orientation
	Camera      camera.Pose
	Orbiting    bool

	Nearby        string
	Cards         []string
	ActiveOverlay string
	Mode          Mode
	Paused        bool

	Experience int
	Level      int
}

// Command is a UI request dispatched into the simulation
type Command interface {
	command()
}

type (
	CommandOpenOverlay  struct{ ID string }
	CommandCloseOverlay struct{}
	CommandToggleMode   struct{}
	CommandOpenNearby   struct{}
)

func (CommandOpenOverlay) command()  {}
func (CommandCloseOverlay) command() {}
func (CommandToggleMode) command()   {}
func (CommandOpenNearby) command()   {}

// Simulation owns every piece of mutable flight state
// All methods must be called from one goroutine, the Scheduler guarantees that
type Simulation struct {
	cfg Config
	log zerolog.Logger

	craft    *physics.Craft
	flight   *physics.FlightModel
	input    *input.State
	rig      *camera.Rig
	tracker  *proximity.Tracker
	progress *proximity.Progression
	modes    *ModeController
	clock    *PausableClock
	metrics  *Metrics

	listeners []Listener
	seq       uint64
	last      Frame
}

// NewSimulation builds a simulation at the spawn point in Exploration mode
// clock may be nil for a wall-clock driven simulation
func NewSimulation(cfg Config, clock *PausableClock, log zerolog.Logger) (*Simulation, error) {
	tracker, err := proximity.NewTracker(cfg.Landmarks)
	if err != nil {
		return nil, fmt.Errorf("landmarks: %w", err)
	}
	if clock == nil {
		clock = NewPausableClock(nil)
	}
	if cfg.Bindings == nil {
		cfg.Bindings = input.DefaultBindings()
	}

	metrics, err := NewMetrics()
	if err != nil {
		log.Warn().Err(err).Msg("metrics unavailable")
	}

	s := &Simulation{
		cfg:      cfg,
		log:      log.With().Str("component", "simulation").Logger(),
		craft:    physics.NewCraft(cfg.Start),
		flight:   physics.NewFlightModel(cfg.Flight),
		input:    input.NewState(),
		rig:      camera.NewRig(cfg.Camera, cfg.Start),
		tracker:  tracker,
		progress: proximity.NewProgression(cfg.ExperiencePerActivation, cfg.ExperiencePerLevel),
		modes:    NewModeController(),
		clock:    clock,
		metrics:  metrics,
	}
	s.last = s.snapshot(s.craft.HUD(), input.Intent{})
	return s, nil
}

// Subscribe registers a listener, not safe once the scheduler is running
func (s *Simulation) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Apply reduces a raw input event, pointer events go to the camera rig
func (s *Simulation) Apply(ev input.Event) {
	if !ev.IsPointer() {
		s.input.Apply(ev)
		return
	}
	switch ev.Type {
	case input.EventPointerDown:
		s.rig.PointerDown(ev.X, ev.Y)
	case input.EventPointerMove:
		s.rig.PointerMove(ev.X, ev.Y)
	case input.EventPointerUp:
		s.rig.PointerUp()
	case input.EventZoom:
		s.rig.Zoom(ev.Y)
	}
}

// Dispatch executes a UI command
func (s *Simulation) Dispatch(cmd Command) error {
	switch c := cmd.(type) {
	case CommandOpenOverlay:
		return s.openOverlay(c.ID)
	case CommandOpenNearby:
		id := s.tracker.Nearby()
		if id == "" {
			return ErrNoNearby
		}
		return s.openOverlay(id)
	case CommandCloseOverlay:
		id, err := s.modes.CloseOverlay()
		if err != nil {
			return err
		}
		s.syncClock()
		s.emit(Event{Type: EventOverlayClosed, ID: id})
		return nil
	case CommandToggleMode:
		s.toggleMode()
		return nil
	default:
		return fmt.Errorf("unknown command %T", cmd)
	}
}

func (s *Simulation) openOverlay(id string) error {
	if _, err := s.tracker.Landmark(id); err != nil {
		return err
	}
	if err := s.modes.OpenOverlay(id); err != nil {
		return err
	}
	s.syncClock()
	s.emit(Event{Type: EventOverlayOpened, ID: id})

	if s.progress.Grant() {
		s.emit(Event{Type: EventLevelUp, Level: s.progress.Level})
	}
	s.log.Debug().Str("landmark", id).Int("xp", s.progress.Experience).Msg("overlay opened")
	return nil
}

func (s *Simulation) toggleMode() {
	if closed := s.modes.Toggle(); closed != "" {
		s.emit(Event{Type: EventOverlayClosed, ID: closed})
	}

	mode := s.modes.Mode()
	if mode == ModeExploration && s.cfg.ResetOnReentry {
		s.craft.Reset(s.cfg.Start)
		s.rig.Snap(s.cfg.Start)
		s.input.Clear()
		if prev := s.tracker.Nearby(); prev != "" {
			s.tracker.Reset()
			s.emit(Event{Type: EventNearbyChanged, Previous: prev})
		}
	}

	s.syncClock()
	s.emit(Event{Type: EventModeChanged, Mode: mode})
	s.log.Info().Stringer("mode", mode).Msg("mode changed")
}

// syncClock mirrors the controller pause flag onto game time
func (s *Simulation) syncClock() {
	s.clock.SetPaused(s.modes.Paused())
}

// Tick advances one frame and returns its snapshot
func (s *Simulation) Tick(ft FrameTime) Frame {
	s.seq++

	intent := input.Aggregate(s.input, s.cfg.Bindings)
	hud := s.flight.Step(s.craft, intent, ft.Elapsed.Seconds(), !s.modes.Running())
	s.rig.Step(s.craft.Position, s.modes.Paused())

	s.metrics.recordFrame(context.Background(), s.craft.Speed(), s.modes.Mode())

	s.last = s.snapshot(hud, intent)
	return s.last
}

// TrackProximity runs the nearest-landmark check, skipped unless running
func (s *Simulation) TrackProximity() {
	if !s.modes.Running() {
		return
	}
	prev := s.tracker.Nearby()
	id, changed := s.tracker.Update(s.craft.Position)
	if changed {
		s.emit(Event{Type: EventNearbyChanged, ID: id, Previous: prev})
	}
}

// RegenFuel applies one idle regeneration step, skipped unless running
func (s *Simulation) RegenFuel() {
	if !s.modes.Running() {
		return
	}
	s.flight.RegenIdle(s.craft, s.cfg.FuelIdleRegen)
}

// GameTime returns the current frame timing from the simulation clock
func (s *Simulation) GameTime() FrameTime {
	return FrameTime{Real: s.clock.RealTime(), Elapsed: s.clock.Elapsed()}
}

// Last returns the most recent frame snapshot
func (s *Simulation) Last() Frame {
	return s.last
}

// Landmark exposes landmark lookup for presentation
func (s *Simulation) Landmark(id string) (proximity.Landmark, error) {
	return s.tracker.Landmark(id)
}

// Landmarks returns the landmark set in order
func (s *Simulation) Landmarks() []proximity.Landmark {
	return s.tracker.Landmarks()
}

func (s *Simulation) snapshot(hud physics.HUD, intent input.Intent) Frame {
	return Frame{
		Seq:           s.seq,
		HUD:           hud,
		Intent:        intent,
		Orientation:   s.craft.Orientation,
		Camera:        s.rig.Pose(),
		Orbiting:      s.rig.Orbiting(),
		Nearby:        s.tracker.Nearby(),
		Cards:         s.tracker.VisibleCards(s.craft.Position),
		ActiveOverlay: s.modes.ActiveOverlay(),
		Mode:          s.modes.Mode(),
		Paused:        s.modes.Paused(),
		Experience:    s.progress.Experience,
		Level:         s.progress.Level,
	}
}

func (s *Simulation) emit(ev Event) {
	ev.Frame = s.seq
	ev.Time = s.clock.RealTime()
	s.metrics.recordEvent(context.Background(), ev)
	for _, l := range s.listeners {
		l(ev)
	}
}
