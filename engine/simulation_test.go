package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/spacefolio/input"
	"github.com/lixenwraith/spacefolio/proximity"
	"github.com/lixenwraith/spacefolio/vmath"
)

type simHarness struct {
	sim    *Simulation
	mock   *MockTimeProvider
	events []Event
}

func newHarness(t *testing.T, mutate func(*Config)) *simHarness {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	mock := NewMockTimeProvider(epoch)
	sim, err := NewSimulation(cfg, NewPausableClock(mock), zerolog.Nop())
	require.NoError(t, err)

	h := &simHarness{sim: sim, mock: mock}
	sim.Subscribe(func(ev Event) { h.events = append(h.events, ev) })
	return h
}

func (h *simHarness) tick(n int) Frame {
	var f Frame
	for i := 0; i < n; i++ {
		h.mock.Advance(16 * time.Millisecond)
		f = h.sim.Tick(h.sim.GameTime())
	}
	return f
}

func (h *simHarness) types() []EventType {
	out := make([]EventType, len(h.events))
	for i, ev := range h.events {
		out[i] = ev.Type
	}
	return out
}

func TestSimulation_ForwardFlight(t *testing.T) {
	h := newHarness(t, nil)

	h.sim.Apply(input.KeyDown("W"))
	f := h.tick(30)

	assert.True(t, f.Intent.Forward)
	assert.True(t, f.HUD.Thrusting)
	assert.Less(t, f.HUD.Position.Z, 0.0)
	assert.Equal(t, uint64(30), f.Seq)
	assert.Equal(t, f.HUD.Position, f.Camera.LookAt)

	h.sim.Apply(input.KeyUp("w"))
	f = h.tick(1)
	assert.False(t, f.Intent.Forward)
}

func TestSimulation_UnknownLandmark(t *testing.T) {
	h := newHarness(t, nil)

	err := h.sim.Dispatch(CommandOpenOverlay{ID: "nowhere"})
	assert.ErrorIs(t, err, proximity.ErrUnknownLandmark)
	assert.Empty(t, h.sim.Last().ActiveOverlay)
}

func TestSimulation_OverlayPausesFlight(t *testing.T) {
	h := newHarness(t, nil)
	h.sim.Apply(input.KeyDown("w"))
	h.tick(20)

	require.NoError(t, h.sim.Dispatch(CommandOpenOverlay{ID: "about"}))
	assert.ErrorIs(t, h.sim.Dispatch(CommandOpenOverlay{ID: "skills"}), ErrOverlayOpen)

	f := h.tick(1)
	require.True(t, f.Paused)
	assert.Equal(t, "about", f.ActiveOverlay)
	assert.Equal(t, vmath.Vec3F{}, f.HUD.Velocity)
	assert.Equal(t, "0.00", f.HUD.Speed)

	pos := f.HUD.Position
	elapsed := h.sim.GameTime().Elapsed
	f = h.tick(50)
	assert.Equal(t, pos, f.HUD.Position)
	assert.Equal(t, elapsed, h.sim.GameTime().Elapsed)
	assert.True(t, f.Orbiting)

	require.NoError(t, h.sim.Dispatch(CommandCloseOverlay{}))
	f = h.tick(1)
	assert.False(t, f.Paused)
	assert.True(t, f.HUD.Thrusting)

	assert.ErrorIs(t, h.sim.Dispatch(CommandCloseOverlay{}), ErrNoOverlay)
	assert.Equal(t, []EventType{EventOverlayOpened, EventOverlayClosed}, h.types())
}

func TestSimulation_NearbyAndOpenNearby(t *testing.T) {
	h := newHarness(t, nil)

	assert.ErrorIs(t, h.sim.Dispatch(CommandOpenNearby{}), ErrNoNearby)

	h.sim.craft.Position = vmath.V3F(0, 0, -55)
	h.sim.TrackProximity()
	h.sim.TrackProximity()

	require.Len(t, h.events, 1)
	assert.Equal(t, EventNearbyChanged, h.events[0].Type)
	assert.Equal(t, "about", h.events[0].ID)

	require.NoError(t, h.sim.Dispatch(CommandOpenNearby{}))
	f := h.tick(1)
	assert.Equal(t, "about", f.ActiveOverlay)
	assert.Equal(t, "about", f.Nearby)
	assert.Equal(t, 25, f.Experience)

	// Paused: proximity is frozen even if the position changes underneath
	h.sim.craft.Position = vmath.Vec3F{}
	h.sim.TrackProximity()
	assert.Len(t, h.events, 2)
}

func TestSimulation_ProfessionalMode(t *testing.T) {
	h := newHarness(t, nil)
	require.NoError(t, h.sim.Dispatch(CommandOpenOverlay{ID: "contact"}))

	require.NoError(t, h.sim.Dispatch(CommandToggleMode{}))
	f := h.tick(1)
	assert.Equal(t, ModeProfessional, f.Mode)
	assert.True(t, f.Paused)
	assert.Empty(t, f.ActiveOverlay)

	assert.ErrorIs(t, h.sim.Dispatch(CommandOpenOverlay{ID: "about"}), ErrNotExploring)

	require.NoError(t, h.sim.Dispatch(CommandToggleMode{}))
	f = h.tick(1)
	assert.Equal(t, ModeExploration, f.Mode)
	assert.False(t, f.Paused)

	assert.Equal(t, []EventType{
		EventOverlayOpened,
		EventOverlayClosed,
		EventModeChanged,
		EventModeChanged,
	}, h.types())
	assert.Equal(t, ModeProfessional, h.events[2].Mode)
	assert.Equal(t, ModeExploration, h.events[3].Mode)
}

func TestSimulation_ReentryPersistsByDefault(t *testing.T) {
	h := newHarness(t, nil)
	h.sim.Apply(input.KeyDown("w"))
	pos := h.tick(40).HUD.Position
	h.sim.Apply(input.KeyUp("w"))

	require.NoError(t, h.sim.Dispatch(CommandToggleMode{}))
	require.NoError(t, h.sim.Dispatch(CommandToggleMode{}))
	assert.Equal(t, pos, h.sim.craft.Position)
}

func TestSimulation_ReentryReset(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.ResetOnReentry = true })
	h.sim.Apply(input.KeyDown("w"))
	h.tick(40)

	require.NoError(t, h.sim.Dispatch(CommandToggleMode{}))
	require.NoError(t, h.sim.Dispatch(CommandToggleMode{}))

	assert.Equal(t, vmath.Vec3F{}, h.sim.craft.Position)
	assert.Equal(t, 100.0, h.sim.craft.Fuel)
	assert.False(t, h.sim.input.Held("w"))
}

func TestSimulation_LevelUp(t *testing.T) {
	h := newHarness(t, nil)

	for i := 0; i < 4; i++ {
		require.NoError(t, h.sim.Dispatch(CommandOpenOverlay{ID: "skills"}))
		require.NoError(t, h.sim.Dispatch(CommandCloseOverlay{}))
	}

	f := h.tick(1)
	assert.Equal(t, 100, f.Experience)
	assert.Equal(t, 2, f.Level)

	var levelUps []Event
	for _, ev := range h.events {
		if ev.Type == EventLevelUp {
			levelUps = append(levelUps, ev)
		}
	}
	require.Len(t, levelUps, 1)
	assert.Equal(t, 2, levelUps[0].Level)
}

func TestSimulation_OverlayImpliesPaused(t *testing.T) {
	h := newHarness(t, nil)
	rng := rand.New(rand.NewSource(7))
	ids := []string{"about", "projects", "skills", "contact"}

	for i := 0; i < 500; i++ {
		switch rng.Intn(4) {
		case 0:
			_ = h.sim.Dispatch(CommandOpenOverlay{ID: ids[rng.Intn(len(ids))]})
		case 1:
			_ = h.sim.Dispatch(CommandCloseOverlay{})
		case 2:
			_ = h.sim.Dispatch(CommandToggleMode{})
		case 3:
			h.sim.Apply(input.KeyDown("w"))
		}
		f := h.tick(1)
		if f.ActiveOverlay != "" {
			require.True(t, f.Paused, "step %d", i)
			require.Equal(t, ModeExploration, f.Mode, "step %d", i)
		}
		if f.Mode == ModeProfessional {
			require.True(t, f.Paused, "step %d", i)
		}
	}
}

func TestSimulation_PointerRoutesToCamera(t *testing.T) {
	h := newHarness(t, nil)
	require.NoError(t, h.sim.Dispatch(CommandOpenOverlay{ID: "about"}))
	h.tick(1)

	before := h.sim.rig.State().Horizontal
	h.sim.Apply(input.Event{Type: input.EventPointerDown, X: 10, Y: 10})
	h.sim.Apply(input.Event{Type: input.EventPointerMove, X: 30, Y: 10})
	h.sim.Apply(input.Event{Type: input.EventPointerUp})
	h.sim.Apply(input.Event{Type: input.EventZoom, Y: 100})

	assert.InDelta(t, before-0.1, h.sim.rig.State().Horizontal, 1e-9)
	assert.Equal(t, 25.0, h.sim.rig.State().Distance)
	assert.Empty(t, h.sim.input.HeldKeys())
}

func TestSimulation_RegenFuel(t *testing.T) {
	h := newHarness(t, nil)
	h.sim.craft.Fuel = 50

	h.sim.RegenFuel()
	assert.Equal(t, 50.5, h.sim.craft.Fuel)

	require.NoError(t, h.sim.Dispatch(CommandOpenOverlay{ID: "about"}))
	h.sim.RegenFuel()
	assert.Equal(t, 50.5, h.sim.craft.Fuel)
}

func TestSimulation_EventQueueListener(t *testing.T) {
	h := newHarness(t, nil)
	q := NewEventQueue()
	h.sim.Subscribe(q.Listener())

	require.NoError(t, h.sim.Dispatch(CommandToggleMode{}))

	got := q.Consume()
	require.Len(t, got, 1)
	assert.Equal(t, EventModeChanged, got[0].Type)
	assert.Equal(t, epoch, got[0].Time)
}

func TestNewSimulation_RejectsBadLandmarks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Landmarks = append(cfg.Landmarks, cfg.Landmarks[0])

	_, err := NewSimulation(cfg, nil, zerolog.Nop())
	assert.ErrorIs(t, err, proximity.ErrDuplicateLandmark)
}
